package parallel

import (
	"crypto/sha256"
	"fmt"
	"sync"
)

// Hasher collects one fixed-size record per index, possibly from many goroutines and in any
// order, and digests them in index order. Equal inputs give equal sums regardless of scheduling.
type Hasher struct {
	mut     sync.Mutex
	width   int
	data    []byte
	written []bool
}

// NewLabelHasher creates a Hasher over n one-byte records
func NewLabelHasher(n int) *Hasher {
	return newHasher(n, 1)
}

// NewHashHasher creates a Hasher over n 32-byte digests
func NewHashHasher(n int) *Hasher {
	return newHasher(n, sha256.Size)
}

func newHasher(n, width int) *Hasher {
	return &Hasher{
		width:   width,
		data:    make([]byte, n*width),
		written: make([]bool, n),
	}
}

func (h *Hasher) put(n int, record []byte) {
	h.mut.Lock()
	defer h.mut.Unlock()

	if h.written[n] {
		panic(fmt.Sprintf("parallel: duplicate write at %d", n))
	}
	h.written[n] = true
	copy(h.data[n*h.width:], record)
}

// MustPutLabel stores a 0/1 class label at position n
func (h *Hasher) MustPutLabel(n int, label float64) {
	if h.width != 1 {
		panic("parallel: label written to a hash hasher")
	}
	var b byte
	if label != 0 {
		b = 1
	}
	h.put(n, []byte{b})
}

// MustPutHash stores a digest at position n
func (h *Hasher) MustPutHash(n int, value [32]byte) {
	if h.width != sha256.Size {
		panic("parallel: hash written to a label hasher")
	}
	h.put(n, value[:])
}

// Sum digests all records. Positions never written count as zero records.
func (h *Hasher) Sum() (ret [32]byte) {
	h.mut.Lock()
	defer h.mut.Unlock()
	return sha256.Sum256(h.data)
}
