package vectorizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/neurlang/smsspam/datasets"
	"github.com/neurlang/smsspam/sparse"
)

const (
	LabelSpam = "spam"
	LabelHam  = "ham"
)

// maxLine bounds a single corpus line
const maxLine = 1 << 20

// ErrTransformed is returned when a Vectorizer is used after Transform
var ErrTransformed = errors.New("vectorizer already transformed")

// Label converts a label string into its class value: spam is 0, ham is 1.
func Label(s string) (float64, bool) {
	switch s {
	case LabelSpam:
		return 0.0, true
	case LabelHam:
		return 1.0, true
	}
	return 0, false
}

// Vectorizer accumulates token counts per row while growing its vocabulary.
// It is single use: after Transform it accepts no more rows.
type Vectorizer struct {
	vocab   *Vocabulary
	builder *sparse.Builder
	labels  []float64
	done    bool
}

// New creates an empty Vectorizer
func New() *Vectorizer {
	return &Vectorizer{
		vocab:   NewVocabulary(),
		builder: sparse.NewBuilder(),
	}
}

// PartialFit adds value to the cell of token in row, registering the token if unseen.
// It panics after Transform.
func (v *Vectorizer) PartialFit(row int, token string, value float64) {
	if v.done {
		panic("vectorizer: PartialFit after Transform")
	}
	v.builder.Add(row, v.vocab.Index(token), value)
}

// ParseLine consumes one "label<TAB>message" line as the next row. lineno is only used in errors.
func (v *Vectorizer) ParseLine(lineno int, line string) error {
	if v.done {
		return ErrTransformed
	}
	label, text, ok := strings.Cut(line, "\t")
	if !ok {
		return &FormatError{Line: lineno, Text: line}
	}
	y, ok := Label(label)
	if !ok {
		return &InvalidLabelError{Line: lineno, Label: label}
	}

	row := len(v.labels)
	v.labels = append(v.labels, y)
	v.builder.Grow(row + 1)
	for _, token := range strings.Fields(text) {
		v.PartialFit(row, token, 1.0)
	}
	return nil
}

// Vocabulary returns the vocabulary built so far
func (v *Vectorizer) Vocabulary() *Vocabulary {
	return v.vocab
}

// Transform returns the finished dataset. Its column count is the final vocabulary size.
// Rows filled through PartialFit without a parsed label make it fail.
func (v *Vectorizer) Transform() (*datasets.Dataset, error) {
	if v.done {
		return nil, ErrTransformed
	}
	v.done = true
	v.builder.Grow(len(v.labels))
	return datasets.New(v.builder.Build(v.vocab.Len()), v.labels)
}

// Parse reads a whole corpus, one labeled example per line.
func Parse(r io.Reader) (*datasets.Dataset, *Vocabulary, error) {
	v := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	var lineno int
	for scanner.Scan() {
		lineno++
		if err := v.ParseLine(lineno, scanner.Text()); err != nil {
			return nil, nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("line %d: %w", lineno+1, err)
	}
	d, err := v.Transform()
	if err != nil {
		return nil, nil, err
	}
	return d, v.Vocabulary(), nil
}

// ParseString is Parse over an in-memory corpus
func ParseString(s string) (*datasets.Dataset, *Vocabulary, error) {
	return Parse(strings.NewReader(s))
}
