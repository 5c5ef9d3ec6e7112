// Package sparse implements the row-major sparse matrix used as the feature matrix
package sparse

import "fmt"

// Row is one sparse row: parallel slices of column indices and values.
type Row struct {
	Indices []int
	Values  []float64
}

// Nnz returns the number of stored entries of the row.
func (r Row) Nnz() int {
	return len(r.Indices)
}

// Dot computes the dot product with a dense vector.
func (r Row) Dot(dense []float64) (sum float64) {
	for i, idx := range r.Indices {
		sum += r.Values[i] * dense[idx]
	}
	return sum
}

func (r Row) clone() Row {
	return Row{
		Indices: append([]int(nil), r.Indices...),
		Values:  append([]float64(nil), r.Values...),
	}
}

// Matrix is a sparse matrix stored row by row.
type Matrix struct {
	rows []Row
	cols int
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return len(m.rows)
}

// Cols returns the declared number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Nnz returns the number of stored entries.
func (m *Matrix) Nnz() (n int) {
	for _, r := range m.rows {
		n += r.Nnz()
	}
	return n
}

// Row returns row i. The returned slices are shared with the matrix and must not be modified.
func (m *Matrix) Row(i int) Row {
	return m.rows[i]
}

// At returns the value at (i, j), zero when no entry is stored.
func (m *Matrix) At(i, j int) float64 {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("sparse: column %d out of range [0, %d)", j, m.cols))
	}
	r := m.rows[i]
	for k, idx := range r.Indices {
		if idx == j {
			return r.Values[k]
		}
	}
	return 0
}

// Dot computes the dot product of row i with a dense vector of length Cols.
func (m *Matrix) Dot(i int, dense []float64) float64 {
	return m.rows[i].Dot(dense)
}

// SelectRows returns a new matrix made of copies of the given rows, in the given order.
func (m *Matrix) SelectRows(indices []int) *Matrix {
	out := &Matrix{
		rows: make([]Row, len(indices)),
		cols: m.cols,
	}
	for i, idx := range indices {
		out.rows[i] = m.rows[idx].clone()
	}
	return out
}
