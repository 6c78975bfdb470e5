package linalg

import (
	"strings"

	bigint "github.com/shabbyrobe/go-bigint"
)

// Matrix is a dense, row-major rows×cols matrix of bigint.Int values. The
// zero value is an empty matrix.
type Matrix struct {
	rows, cols int
	data       [][]bigint.Int
}

// NewMatrix copies rows into a new Matrix. There must be at least one row,
// and every row must have the same nonzero length.
func NewMatrix(rows [][]bigint.Int) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, ErrBadShape
	}
	cols := len(rows[0])
	data := make([][]bigint.Int, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return Matrix{}, ErrRaggedRows
		}
		data[r] = make([]bigint.Int, cols)
		copy(data[r], row)
	}
	return Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// ZeroMatrix returns a rows×cols Matrix of zero values.
func ZeroMatrix(rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return Matrix{}, ErrBadShape
	}
	data := make([][]bigint.Int, rows)
	for r := range data {
		data[r] = make([]bigint.Int, cols)
	}
	return Matrix{rows: rows, cols: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (Matrix, error) {
	m, err := ZeroMatrix(n, n)
	if err != nil {
		return Matrix{}, err
	}
	one := bigint.IntFrom64(1)
	for i := 0; i < n; i++ {
		m.data[i][i] = one
	}
	return m, nil
}

func (m Matrix) Rows() int { return m.rows }
func (m Matrix) Cols() int { return m.cols }

// At returns the element at row r, column c.
func (m Matrix) At(r, c int) (bigint.Int, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return bigint.Int{}, ErrOutOfRange
	}
	return m.data[r][c], nil
}

// Row returns a copy of row r as a Vector.
func (m Matrix) Row(r int) (Vector, error) {
	if r < 0 || r >= m.rows {
		return Vector{}, ErrOutOfRange
	}
	return NewVector(m.data[r]...), nil
}

// Add returns the element-wise sum m+n. The operands must have the same
// shape.
func (m Matrix) Add(n Matrix) (Matrix, error) {
	return m.combine(n, bigint.Int.Add)
}

// Sub returns the element-wise difference m-n. The operands must have the
// same shape.
func (m Matrix) Sub(n Matrix) (Matrix, error) {
	return m.combine(n, bigint.Int.Sub)
}

func (m Matrix) combine(n Matrix, op func(a, b bigint.Int) bigint.Int) (Matrix, error) {
	if m.rows != n.rows || m.cols != n.cols {
		return Matrix{}, ErrDimensionMismatch
	}
	data := make([][]bigint.Int, m.rows)
	for r := 0; r < m.rows; r++ {
		data[r] = make([]bigint.Int, m.cols)
		for c := 0; c < m.cols; c++ {
			data[r][c] = op(m.data[r][c], n.data[r][c])
		}
	}
	return Matrix{rows: m.rows, cols: m.cols, data: data}, nil
}

// ScalarMul returns m with every element multiplied by k.
func (m Matrix) ScalarMul(k bigint.Int) Matrix {
	data := make([][]bigint.Int, m.rows)
	for r := 0; r < m.rows; r++ {
		data[r] = make([]bigint.Int, m.cols)
		for c := 0; c < m.cols; c++ {
			data[r][c] = m.data[r][c].Mul(k)
		}
	}
	return Matrix{rows: m.rows, cols: m.cols, data: data}
}

// MulVec returns the matrix-vector product m·v. The vector length must
// equal the column count.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.cols != len(v.elems) {
		return Vector{}, ErrDimensionMismatch
	}
	out := make([]bigint.Int, m.rows)
	for r := 0; r < m.rows; r++ {
		var sum bigint.Int
		for c := 0; c < m.cols; c++ {
			sum = sum.Add(m.data[r][c].Mul(v.elems[c]))
		}
		out[r] = sum
	}
	return Vector{elems: out}, nil
}

// Mul returns the matrix product m·n. m's column count must equal n's row
// count.
func (m Matrix) Mul(n Matrix) (Matrix, error) {
	if m.cols != n.rows {
		return Matrix{}, ErrDimensionMismatch
	}
	data := make([][]bigint.Int, m.rows)
	for r := 0; r < m.rows; r++ {
		data[r] = make([]bigint.Int, n.cols)
		for c := 0; c < n.cols; c++ {
			var sum bigint.Int
			for k := 0; k < m.cols; k++ {
				sum = sum.Add(m.data[r][k].Mul(n.data[k][c]))
			}
			data[r][c] = sum
		}
	}
	return Matrix{rows: m.rows, cols: n.cols, data: data}, nil
}

// Transpose returns the cols×rows transpose of m.
func (m Matrix) Transpose() Matrix {
	data := make([][]bigint.Int, m.cols)
	for c := 0; c < m.cols; c++ {
		data[c] = make([]bigint.Int, m.rows)
		for r := 0; r < m.rows; r++ {
			data[c][r] = m.data[r][c]
		}
	}
	return Matrix{rows: m.cols, cols: m.rows, data: data}
}

func (m Matrix) Equal(n Matrix) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if !m.data[r][c].Equal(n.data[r][c]) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteString("; ")
		}
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.data[r][c].String())
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
