package learning

import "fmt"
import "math"

import "gonum.org/v1/gonum/floats"

import "github.com/neurlang/smsspam/sparse"

// State is the training state of a classifier
type State int

const (
	NotFitted State = iota
	Fitted
)

// ConfigMismatchError reports a matrix whose column count differs from the model's.
type ConfigMismatchError struct {
	Expected int
	Got      int
}

func (e *ConfigMismatchError) Error() string {
	return fmt.Sprintf("feature count mismatch: model has %d, input has %d", e.Expected, e.Got)
}

// SGDClassifier is a binary logistic classifier. Its weights are owned by the instance.
type SGDClassifier struct {
	h       HyperParameters
	weights []float64
	bias    float64
	state   State
	epochs  int
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

func (c *SGDClassifier) check(x *sparse.Matrix) error {
	if x.Cols() != c.h.Features {
		return &ConfigMismatchError{Expected: c.h.Features, Got: x.Cols()}
	}
	return nil
}

func (c *SGDClassifier) checkLabels(x *sparse.Matrix, y []float64) error {
	if err := c.check(x); err != nil {
		return err
	}
	if x.Rows() != len(y) {
		return fmt.Errorf("%d rows but %d labels", x.Rows(), len(y))
	}
	return nil
}

// HyperParameters returns the parameters the classifier was built with
func (c *SGDClassifier) HyperParameters() HyperParameters {
	return c.h
}

// Fit performs one epoch of stochastic gradient descent over the rows in their given order.
// Call it repeatedly for more epochs.
func (c *SGDClassifier) Fit(x *sparse.Matrix, y []float64) error {
	if err := c.checkLabels(x, y); err != nil {
		return err
	}
	lr, l2 := c.h.LearningRate, c.h.L2Penalty
	for i := 0; i < x.Rows(); i++ {
		row := x.Row(i)
		err := sigmoid(row.Dot(c.weights)+c.bias) - y[i]
		for k, j := range row.Indices {
			c.weights[j] -= lr * (err*row.Values[k] + l2*c.weights[j])
		}
		c.bias -= lr * err
	}
	c.state = Fitted
	c.epochs++
	return nil
}

// Predict returns the probability of class 1.0 for every row.
func (c *SGDClassifier) Predict(x *sparse.Matrix) ([]float64, error) {
	if err := c.check(x); err != nil {
		return nil, err
	}
	out := make([]float64, x.Rows())
	for i := range out {
		out[i] = sigmoid(x.Dot(i, c.weights) + c.bias)
	}
	return out, nil
}

// Loss returns the mean logistic loss over the rows, without the penalty term.
func (c *SGDClassifier) Loss(x *sparse.Matrix, y []float64) (float64, error) {
	if err := c.checkLabels(x, y); err != nil {
		return 0, err
	}
	if len(y) == 0 {
		return 0, nil
	}
	const eps = 1e-15
	var sum float64
	for i := range y {
		p := sigmoid(x.Dot(i, c.weights) + c.bias)
		p = math.Min(math.Max(p, eps), 1-eps)
		sum -= y[i]*math.Log(p) + (1-y[i])*math.Log(1-p)
	}
	return sum / float64(len(y)), nil
}

// State reports whether Fit has completed at least once
func (c *SGDClassifier) State() State {
	return c.state
}

// Epochs returns the number of completed Fit calls
func (c *SGDClassifier) Epochs() int {
	return c.epochs
}

// Weights returns a copy of the weight vector
func (c *SGDClassifier) Weights() []float64 {
	return append([]float64(nil), c.weights...)
}

func (c *SGDClassifier) Bias() float64 {
	return c.bias
}

// WeightNorm returns the euclidean norm of the weights.
func (c *SGDClassifier) WeightNorm() float64 {
	return floats.Norm(c.weights, 2)
}
