package smsspam

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ErrMemberNotFound is wrapped by ArchiveError when the member is absent
var ErrMemberNotFound = errors.New("member not found")

// ErrChecksum is wrapped by ArchiveError when the archive digest does not match
var ErrChecksum = errors.New("checksum mismatch")

// Archive extracts a named text member from archive bytes
type Archive interface {
	Extract(data []byte, member string) (string, error)
}

// ZipArchive reads zip archives
type ZipArchive struct{}

func (ZipArchive) Extract(data []byte, member string) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ArchiveError{Member: member, Err: err}
	}
	for _, f := range r.File {
		if f.Name != member {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &ArchiveError{Member: member, Err: err}
		}
		defer rc.Close()
		var sb strings.Builder
		if _, err := io.Copy(&sb, rc); err != nil {
			return "", &ArchiveError{Member: member, Err: err}
		}
		return sb.String(), nil
	}
	return "", &ArchiveError{Member: member, Err: ErrMemberNotFound}
}

// Verify checks data against a hex SHA-256 digest. An empty digest accepts anything.
func Verify(data []byte, digest string, member string) error {
	if digest == "" {
		return nil
	}
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); !strings.EqualFold(got, digest) {
		return &ArchiveError{Member: member, Err: fmt.Errorf("%w: got %s, want %s", ErrChecksum, got, digest)}
	}
	return nil
}
