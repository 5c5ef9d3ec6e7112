package learning

// Threshold is the score at and above which a row is predicted as class 1.0
const Threshold = 0.5

// Classify maps scores to class labels
func Classify(scores []float64) []float64 {
	out := make([]float64, len(scores))
	for i, s := range scores {
		if s >= Threshold {
			out[i] = 1.0
		}
	}
	return out
}

// Accuracy returns the fraction of rows whose thresholded score equals the label.
// It is zero for empty input.
func Accuracy(y, scores []float64) float64 {
	if len(y) != len(scores) {
		panic("learning: accuracy of misaligned vectors")
	}
	if len(y) == 0 {
		return 0
	}
	var hits int
	for i, label := range Classify(scores) {
		if label == y[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(y))
}
