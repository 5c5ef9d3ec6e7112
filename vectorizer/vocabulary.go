package vectorizer

// Vocabulary maps tokens to column indices. Indices are handed out in insertion order
// and never change; the vocabulary only grows.
type Vocabulary struct {
	index  map[string]int
	tokens []string
}

// NewVocabulary creates an empty vocabulary
func NewVocabulary() *Vocabulary {
	return &Vocabulary{index: make(map[string]int)}
}

// Index returns the column of token, inserting it on first sight
func (v *Vocabulary) Index(token string) int {
	if i, ok := v.index[token]; ok {
		return i
	}
	i := len(v.tokens)
	v.index[token] = i
	v.tokens = append(v.tokens, token)
	return i
}

// Lookup returns the column of token without inserting it
func (v *Vocabulary) Lookup(token string) (int, bool) {
	i, ok := v.index[token]
	return i, ok
}

// Len returns the number of distinct tokens
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// Token returns the token owning column i
func (v *Vocabulary) Token(i int) string {
	return v.tokens[i]
}
