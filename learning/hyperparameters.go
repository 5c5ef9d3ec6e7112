package learning

const (
	DefaultLearningRate = 0.05
	DefaultL2Penalty    = 0.01
)

// HyperParameters configure an SGDClassifier. They are copied into the classifier by Build
// and cannot change while it trains.
type HyperParameters struct {
	Features int // number of columns of every matrix passed to Fit and Predict

	LearningRate float64 // step size of each per-example update
	L2Penalty    float64 // weight decay applied to the weights touched by an example
}

// NewHyperParameters returns the defaults for a model over the given number of features.
func NewHyperParameters(features int) *HyperParameters {
	return &HyperParameters{
		Features:     features,
		LearningRate: DefaultLearningRate,
		L2Penalty:    DefaultL2Penalty,
	}
}

func (h *HyperParameters) WithLearningRate(rate float64) *HyperParameters {
	h.LearningRate = rate
	return h
}

func (h *HyperParameters) WithL2Penalty(penalty float64) *HyperParameters {
	h.L2Penalty = penalty
	return h
}

// Build creates a fresh, unfitted classifier with zero weights.
func (h HyperParameters) Build() *SGDClassifier {
	return &SGDClassifier{
		h:       h,
		weights: make([]float64, h.Features),
	}
}
