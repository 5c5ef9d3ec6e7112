// Package crossval implements deterministic k-fold cross-validation splits.
package crossval

import (
	"errors"
	"fmt"
	"iter"

	"github.com/samber/lo"
)

// ErrFoldCount is returned when the fold count is outside [2, rows].
var ErrFoldCount = errors.New("invalid fold count")

// Fold holds the row indices used to train and to test in one round.
type Fold struct {
	Train []int
	Test  []int
}

// KFold splits n rows into k contiguous test blocks, in original order, without shuffling.
// Block sizes differ by at most one; the first n%k blocks are the larger ones.
type KFold struct {
	n, k int
}

// NewKFold creates a splitter for n rows and k folds.
func NewKFold(n, k int) (*KFold, error) {
	if k < 2 || k > n {
		return nil, fmt.Errorf("%w: %d folds for %d rows", ErrFoldCount, k, n)
	}
	return &KFold{n: n, k: k}, nil
}

// Len returns the number of folds
func (kf *KFold) Len() int {
	return kf.k
}

// bounds returns the test block [start, end) of fold i
func (kf *KFold) bounds(i int) (start, end int) {
	size, remainder := kf.n/kf.k, kf.n%kf.k
	start = i*size + min(i, remainder)
	end = start + size
	if i < remainder {
		end++
	}
	return start, end
}

// Fold returns fold i. Each call allocates fresh index slices.
func (kf *KFold) Fold(i int) Fold {
	if i < 0 || i >= kf.k {
		panic(fmt.Sprintf("crossval: fold %d out of range [0, %d)", i, kf.k))
	}
	start, end := kf.bounds(i)
	return Fold{
		Train: append(lo.RangeFrom(0, start), lo.RangeFrom(end, kf.n-end)...),
		Test:  lo.RangeFrom(start, end-start),
	}
}

// All yields every fold in order. The sequence can be iterated any number of times.
func (kf *KFold) All() iter.Seq2[int, Fold] {
	return func(yield func(int, Fold) bool) {
		for i := 0; i < kf.k; i++ {
			if !yield(i, kf.Fold(i)) {
				return
			}
		}
	}
}
