package sparse

import "fmt"

// Builder assembles a Matrix one row at a time. Values added to the same cell accumulate.
type Builder struct {
	rows []Row
	pos  map[int]int // column -> entry position in the current (last) row
	max  int         // largest column seen, -1 when empty
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		pos: make(map[int]int),
		max: -1,
	}
}

// Add adds value to the cell (row, col). Rows must be filled in non-decreasing order;
// skipped rows stay empty.
func (b *Builder) Add(row, col int, value float64) {
	if row < 0 || col < 0 {
		panic(fmt.Sprintf("sparse: negative cell (%d, %d)", row, col))
	}
	if row < len(b.rows)-1 {
		panic(fmt.Sprintf("sparse: row %d already completed", row))
	}
	b.Grow(row + 1)
	r := &b.rows[row]
	if p, ok := b.pos[col]; ok {
		r.Values[p] += value
		return
	}
	b.pos[col] = len(r.Indices)
	r.Indices = append(r.Indices, col)
	r.Values = append(r.Values, value)
	if col > b.max {
		b.max = col
	}
}

// Grow makes sure the builder has at least n rows, appending empty ones.
func (b *Builder) Grow(n int) {
	if n > len(b.rows) {
		b.rows = append(b.rows, make([]Row, n-len(b.rows))...)
		clear(b.pos)
	}
}

// Rows returns the number of rows added so far.
func (b *Builder) Rows() int {
	return len(b.rows)
}

// Build returns the matrix with the declared column count. The builder must not be used afterwards.
func (b *Builder) Build(cols int) *Matrix {
	if cols <= b.max {
		panic(fmt.Sprintf("sparse: %d columns declared but column %d is used", cols, b.max))
	}
	m := &Matrix{
		rows: b.rows,
		cols: cols,
	}
	b.rows = nil
	b.pos = nil
	return m
}
