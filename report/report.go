// Package report renders run summaries for the console.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/neurlang/smsspam/datasets"
	"github.com/neurlang/smsspam/trainer"
)

// Summary holds everything printed about one run
type Summary struct {
	RunID string

	Rows             int
	Cols             int
	Nnz              int
	PositiveFraction float64

	TrainAccuracy float64
	TestAccuracy  float64
	Duration      time.Duration
	Folds         []trainer.FoldResult
	Digest        [32]byte
}

// NewSummary starts a summary for data under a fresh run id
func NewSummary(data *datasets.Dataset) *Summary {
	return &Summary{
		RunID:            uuid.NewString(),
		Rows:             data.X.Rows(),
		Cols:             data.X.Cols(),
		Nnz:              data.X.Nnz(),
		PositiveFraction: data.PositiveFraction(),
	}
}

// SetResult records a finished cross-validation and its wall time
func (s *Summary) SetResult(res *trainer.Result, took time.Duration) {
	s.TrainAccuracy = res.TrainAccuracy
	s.TestAccuracy = res.TestAccuracy
	s.Folds = res.Folds
	s.Digest = res.Digest
	s.Duration = took
}

// Console prints summaries with English number grouping
type Console struct {
	w io.Writer
	p *message.Printer
}

func NewConsole(w io.Writer) *Console {
	return &Console{
		w: w,
		p: message.NewPrinter(language.English),
	}
}

// Hardware prints the CPU the run is using
func (c *Console) Hardware(workers int) {
	c.p.Fprintf(c.w, "CPU: %s, %d logical cores, %d workers\n",
		cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, workers)
}

// Dataset prints the matrix shape and class balance
func (c *Console) Dataset(s *Summary) {
	c.p.Fprintf(c.w, "X: %d rows, %d columns, %d non-zero entries Y: %.2f%% positive class\n",
		s.Rows, s.Cols, s.Nnz, s.PositiveFraction*100)
}

// Results prints timing and the mean accuracies
func (c *Console) Results(s *Summary) {
	c.p.Fprintf(c.w, "Training time: %v\n", s.Duration)
	c.p.Fprintf(c.w, "Test accuracy: %.3f, train accuracy: %.3f\n", s.TestAccuracy, s.TrainAccuracy)
	fmt.Fprintf(c.w, "Run %s digest %x\n", s.RunID, s.Digest)
}

// FoldTable prints one line per fold
func (c *Console) FoldTable(s *Summary) {
	for _, f := range s.Folds {
		c.p.Fprintf(c.w, "  fold %2d: train %d rows %.3f, test %d rows %.3f, |w| %.3f\n",
			f.Fold, f.TrainSize, f.TrainAccuracy, f.TestSize, f.TestAccuracy, f.WeightNorm)
	}
}
