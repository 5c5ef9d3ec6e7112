package trainer

import "fmt"

import "gonum.org/v1/gonum/stat"

import "github.com/neurlang/smsspam/crossval"
import "github.com/neurlang/smsspam/datasets"
import "github.com/neurlang/smsspam/parallel"

// Result summarizes a cross-validation run
type Result struct {
	TestAccuracy  float64 // unweighted mean over folds
	TrainAccuracy float64 // unweighted mean over folds
	Folds         []FoldResult
	Digest        [32]byte // digest of the fold digests, in fold order
}

// CrossValidate runs k-fold cross-validation of a fresh classifier per fold.
// Folds may be evaluated concurrently, but the result does not depend on it.
func CrossValidate(data *datasets.Dataset, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	kf, err := crossval.NewKFold(data.Len(), opts.Folds)
	if err != nil {
		return nil, err
	}

	folds := make([]crossval.Fold, 0, kf.Len())
	for _, fold := range kf.All() {
		folds = append(folds, fold)
	}

	evaluate := NewEvaluateFunc(data, opts)
	results := make([]FoldResult, len(folds))
	err = parallel.ForEach(len(folds), opts.Workers, func(i int) error {
		r, err := evaluate(i, folds[i])
		if err != nil {
			return fmt.Errorf("fold %d: %w", i, err)
		}
		results[i] = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	test := make([]float64, len(results))
	train := make([]float64, len(results))
	h := parallel.NewHashHasher(len(results))
	for i, r := range results {
		test[i] = r.TestAccuracy
		train[i] = r.TrainAccuracy
		h.MustPutHash(i, r.Digest)
	}

	return &Result{
		TestAccuracy:  stat.Mean(test, nil),
		TrainAccuracy: stat.Mean(train, nil),
		Folds:         results,
		Digest:        h.Sum(),
	}, nil
}
