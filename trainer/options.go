package trainer

import "fmt"
import "io"
import "log"

import "github.com/neurlang/smsspam/learning"

const (
	DefaultFolds  = 10
	DefaultEpochs = 10
)

// Options configure a cross-validation run
type Options struct {
	Folds   int // number of folds, at least 2
	Epochs  int // Fit calls per fold
	Workers int // folds evaluated concurrently, 0 or 1 is sequential

	LearningRate float64
	L2Penalty    float64

	l *log.Logger
}

// DefaultOptions returns the fixed configuration of the reference run
func DefaultOptions() Options {
	return Options{
		Folds:        DefaultFolds,
		Epochs:       DefaultEpochs,
		Workers:      1,
		LearningRate: learning.DefaultLearningRate,
		L2Penalty:    learning.DefaultL2Penalty,
	}
}

// SetLogger sets where per-fold progress lines are written. Without a logger nothing is logged.
func (o *Options) SetLogger(w io.Writer) {
	o.l = log.New(w, "trainer: ", log.LstdFlags)
}

func (o *Options) logf(format string, args ...any) {
	if o.l != nil {
		o.l.Printf(format, args...)
	}
}

// HyperParameters returns the classifier parameters for a model over features columns
func (o *Options) HyperParameters(features int) *learning.HyperParameters {
	return learning.NewHyperParameters(features).
		WithLearningRate(o.LearningRate).
		WithL2Penalty(o.L2Penalty)
}

func (o *Options) validate() error {
	if o.Epochs < 1 {
		return fmt.Errorf("epochs must be positive, got %d", o.Epochs)
	}
	if o.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be positive, got %v", o.LearningRate)
	}
	if o.L2Penalty < 0 {
		return fmt.Errorf("l2 penalty must not be negative, got %v", o.L2Penalty)
	}
	return nil
}
