package trainer

import "github.com/neurlang/smsspam/crossval"
import "github.com/neurlang/smsspam/datasets"
import "github.com/neurlang/smsspam/learning"
import "github.com/neurlang/smsspam/parallel"

// FoldResult is the outcome of training and scoring one fold
type FoldResult struct {
	Fold          int
	TrainSize     int
	TestSize      int
	TrainAccuracy float64
	TestAccuracy  float64
	TrainLoss     float64
	WeightNorm    float64  // euclidean norm of the trained weights
	Digest        [32]byte // digest of the thresholded test predictions
}

// NewEvaluateFunc returns a function that trains a fresh classifier on the fold's training rows
// for opts.Epochs epochs and scores it on both the training and the test rows.
// The dataset is only read; every call works on its own copies.
func NewEvaluateFunc(data *datasets.Dataset, opts Options) func(n int, fold crossval.Fold) (FoldResult, error) {

	return func(n int, fold crossval.Fold) (FoldResult, error) {
		train := data.Slice(fold.Train)
		test := data.Slice(fold.Test)

		model := opts.HyperParameters(data.X.Cols()).Build()
		for epoch := 0; epoch < opts.Epochs; epoch++ {
			if err := model.Fit(train.X, train.Y); err != nil {
				return FoldResult{}, err
			}
		}

		trainScores, err := model.Predict(train.X)
		if err != nil {
			return FoldResult{}, err
		}
		testScores, err := model.Predict(test.X)
		if err != nil {
			return FoldResult{}, err
		}
		loss, err := model.Loss(train.X, train.Y)
		if err != nil {
			return FoldResult{}, err
		}

		h := parallel.NewLabelHasher(len(testScores))
		for i, label := range learning.Classify(testScores) {
			h.MustPutLabel(i, label)
		}

		result := FoldResult{
			Fold:          n,
			TrainSize:     train.Len(),
			TestSize:      test.Len(),
			TrainAccuracy: learning.Accuracy(train.Y, trainScores),
			TestAccuracy:  learning.Accuracy(test.Y, testScores),
			TrainLoss:     loss,
			WeightNorm:    model.WeightNorm(),
			Digest:        h.Sum(),
		}
		opts.logf("fold %d: train %d rows acc %.4f loss %.4f |w| %.4f, test %d rows acc %.4f",
			n, result.TrainSize, result.TrainAccuracy, result.TrainLoss, result.WeightNorm, result.TestSize, result.TestAccuracy)
		return result, nil
	}
}
