package learning

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/neurlang/smsspam/sparse"
)

// separable builds n rows alternating between feature 0 (label 1) and feature 1 (label 0)
func separable(n int) (*sparse.Matrix, []float64) {
	b := sparse.NewBuilder()
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			b.Add(i, 0, 1)
			y[i] = 1
		} else {
			b.Add(i, 1, 1)
		}
	}
	return b.Build(2), y
}

func TestDefaults(t *testing.T) {
	h := NewHyperParameters(7)
	if h.LearningRate != 0.05 || h.L2Penalty != 0.01 || h.Features != 7 {
		t.Errorf("NewHyperParameters() == %+v", *h)
	}
	c := h.WithLearningRate(0.1).WithL2Penalty(0).Build()
	if got := c.HyperParameters(); got.LearningRate != 0.1 || got.L2Penalty != 0 {
		t.Errorf("Build() kept %+v", got)
	}
	if c.State() != NotFitted {
		t.Errorf("fresh classifier state == %v, want NotFitted", c.State())
	}
	if len(c.Weights()) != 7 || c.Bias() != 0 || c.WeightNorm() != 0 {
		t.Errorf("fresh classifier is not zero initialized")
	}
}

func TestSeparableReachesFullAccuracy(t *testing.T) {
	x, y := separable(20)
	c := NewHyperParameters(x.Cols()).Build()
	for epoch := 0; epoch < 50; epoch++ {
		if err := c.Fit(x, y); err != nil {
			t.Fatalf("Fit() error: %v", err)
		}
	}
	if c.State() != Fitted || c.Epochs() != 50 {
		t.Errorf("state %v after %d epochs", c.State(), c.Epochs())
	}
	scores, err := c.Predict(x)
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	if acc := Accuracy(y, scores); acc != 1.0 {
		t.Errorf("training accuracy == %v, want 1.0", acc)
	}
	w := c.Weights()
	if w[0] <= 0 || w[1] >= 0 {
		t.Errorf("weights %v do not separate the classes", w)
	}
}

func TestLossDoesNotIncrease(t *testing.T) {
	x, y := separable(10)
	c := NewHyperParameters(x.Cols()).WithLearningRate(0.01).WithL2Penalty(0).Build()
	prev, err := c.Loss(x, y)
	if err != nil {
		t.Fatalf("Loss() error: %v", err)
	}
	if math.Abs(prev-math.Ln2) > 1e-12 {
		t.Errorf("initial loss == %v, want ln 2", prev)
	}
	for epoch := 0; epoch < 30; epoch++ {
		if err := c.Fit(x, y); err != nil {
			t.Fatalf("Fit() error: %v", err)
		}
		loss, _ := c.Loss(x, y)
		if loss > prev+1e-12 {
			t.Fatalf("epoch %d: loss rose from %v to %v", epoch, prev, loss)
		}
		prev = loss
	}
}

func TestPredictDoesNotMutate(t *testing.T) {
	x, y := separable(6)
	c := NewHyperParameters(x.Cols()).Build()
	_ = c.Fit(x, y)

	w, b, epochs := c.Weights(), c.Bias(), c.Epochs()
	first, _ := c.Predict(x)
	second, _ := c.Predict(x)

	if !reflect.DeepEqual(first, second) {
		t.Error("two Predict() calls disagree")
	}
	if !reflect.DeepEqual(w, c.Weights()) || b != c.Bias() || epochs != c.Epochs() {
		t.Error("Predict() changed the model")
	}
	for _, s := range first {
		if s <= 0 || s >= 1 {
			t.Errorf("score %v outside (0, 1)", s)
		}
	}
}

func TestFeatureMismatch(t *testing.T) {
	x, y := separable(4)
	c := NewHyperParameters(3).Build()

	var mismatch *ConfigMismatchError
	if err := c.Fit(x, y); !errors.As(err, &mismatch) {
		t.Errorf("Fit() error == %v, want ConfigMismatchError", err)
	} else if mismatch.Expected != 3 || mismatch.Got != 2 {
		t.Errorf("ConfigMismatchError == %+v", *mismatch)
	}
	if _, err := c.Predict(x); !errors.As(err, &mismatch) {
		t.Errorf("Predict() error == %v, want ConfigMismatchError", err)
	}
	if c.State() != NotFitted {
		t.Error("failed Fit() changed the state")
	}
}

func TestLabelCountMismatch(t *testing.T) {
	x, y := separable(4)
	c := NewHyperParameters(x.Cols()).Build()
	if err := c.Fit(x, y[:3]); err == nil {
		t.Error("Fit() with 3 labels for 4 rows should fail")
	}
}

func TestSingleStep(t *testing.T) {
	b := sparse.NewBuilder()
	b.Add(0, 0, 2)
	x := b.Build(1)
	c := NewHyperParameters(1).WithLearningRate(0.1).WithL2Penalty(0.5).Build()
	if err := c.Fit(x, []float64{1}); err != nil {
		t.Fatal(err)
	}
	// p = 0.5, err = -0.5: w = 0 - 0.1*(-0.5*2 + 0.5*0), b = 0 - 0.1*(-0.5)
	if w := c.Weights()[0]; math.Abs(w-0.1) > 1e-12 {
		t.Errorf("weight == %v, want 0.1", w)
	}
	if math.Abs(c.Bias()-0.05) > 1e-12 {
		t.Errorf("bias == %v, want 0.05", c.Bias())
	}
}
