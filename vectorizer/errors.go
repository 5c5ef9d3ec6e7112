package vectorizer

import "fmt"

// FormatError reports a corpus line without a tab between label and message.
type FormatError struct {
	Line int // 1-based
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: missing tab separator: %q", e.Line, e.Text)
}

// InvalidLabelError reports a label other than "spam" or "ham".
type InvalidLabelError struct {
	Line  int // 1-based
	Label string
}

func (e *InvalidLabelError) Error() string {
	return fmt.Sprintf("line %d: invalid label: %q", e.Line, e.Label)
}
