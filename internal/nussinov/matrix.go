package nussinov

import "fmt"

// Matrix is a finished score matrix. Cell (i, j) holds the most base pairs
// any structure of the subsequence i..j can form. Cells with i >= j are
// always zero.
//
// A Matrix is never modified after it's built.
type Matrix struct {
	dp [][]int
}

// Compute builds the score matrix of seq.
//
// Subsequences are scored in increasing order of width so every cell's
// dependencies, which are all narrower windows, are already final. Each cell
// takes the best of four options:
//
//  1. i is left unpaired:       dp[i+1][j]
//  2. j is left unpaired:       dp[i][j-1]
//  3. i pairs with j:           dp[i+1][j-1] + 1
//  4. a bifurcation at i<k<j:   dp[i][k] + dp[k+1][j]
func Compute(seq Sequence, minLoop int) *Matrix {
	n := len(seq)
	dp := make([][]int, n)
	for i := range dp {
		dp[i] = make([]int, n)
	}

	for width := 1; width < n; width++ {
		for i := 0; i+width < n; i++ {
			j := i + width

			// when width is 1, dp[i+1][j-1] is below the diagonal and still 0
			best := dp[i+1][j-1]
			if CanPair(seq[i], seq[j], i, j, minLoop) {
				best++
			}
			best = max(best, dp[i+1][j], dp[i][j-1])

			for k := i + 1; k < j; k++ {
				best = max(best, dp[i][k]+dp[k+1][j])
			}

			dp[i][j] = best
		}
	}

	return &Matrix{dp: dp}
}

// NewMatrix wraps an externally supplied table, e.g. one decoded from a
// previous response. The table has to be square and non-negative. It's copied,
// so later changes to rows don't reach the Matrix.
func NewMatrix(rows [][]int) (*Matrix, error) {
	dp := make([][]int, len(rows))
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(row), len(rows))
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("negative score %d at (%d, %d)", v, i, j)
			}
		}
		dp[i] = append([]int(nil), row...)
	}
	return &Matrix{dp: dp}, nil
}

// Len is the side length of the matrix, the length of the folded sequence.
func (m *Matrix) Len() int {
	return len(m.dp)
}

// At returns the score of the subsequence i..j.
func (m *Matrix) At(i, j int) int {
	if i >= j {
		return 0
	}
	return m.dp[i][j]
}

// Score is the most base pairs the whole sequence can form.
func (m *Matrix) Score() int {
	if len(m.dp) == 0 {
		return 0
	}
	return m.At(0, len(m.dp)-1)
}

// Rows returns a copy of the full n x n table.
func (m *Matrix) Rows() [][]int {
	rows := make([][]int, len(m.dp))
	for i, row := range m.dp {
		rows[i] = append([]int(nil), row...)
	}
	return rows
}
