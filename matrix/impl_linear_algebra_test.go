// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linefem/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const algTol = 1e-12

func TestAddSubShapes(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 22}, {33, 44}}, sum.ToRows())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{9, 18}, {27, 36}}, diff.ToRows())

	bad := mustDense(t, 3, 2)
	_, err = matrix.Add(a, bad)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddBroadcastRow: a single row operand is applied to every row of the target.
func TestAddBroadcastRow(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	r, err := matrix.RowVector(10, 100)
	require.NoError(t, err)

	sum, err := matrix.Add(a, r)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 102}, {13, 104}, {15, 106}}, sum.ToRows())

	view, err := a.Row(0)
	require.NoError(t, err)
	diff, err := matrix.Sub(a, view)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {2, 2}, {4, 4}}, diff.ToRows())

	wide, err := matrix.RowVector(1, 2, 3)
	require.NoError(t, err)
	_, err = matrix.Add(a, wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddCommutativeAssociative(t *testing.T) {
	a := randDense(t, 4, 3, 1)
	b := randDense(t, 4, 3, 2)
	c := randDense(t, 4, 3, 3)

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	ba, err := matrix.Add(b, a)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(ab, ba))

	abC, err := matrix.Add(ab, c)
	require.NoError(t, err)
	bc, err := matrix.Add(b, c)
	require.NoError(t, err)
	aBC, err := matrix.Add(a, bc)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(abC, aBC, algTol))
}

func TestMulAssociative(t *testing.T) {
	a := randDense(t, 3, 4, 10)
	b := randDense(t, 4, 2, 11)
	c := randDense(t, 2, 5, 12)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	left, err := matrix.Mul(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Mul(b, c)
	require.NoError(t, err)
	right, err := matrix.Mul(a, bc)
	require.NoError(t, err)

	assert.True(t, matrix.EqualApprox(left, right, algTol))

	_, err = matrix.Mul(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulVectorShapes(t *testing.T) {
	row, err := matrix.RowVector(1, 2)
	require.NoError(t, err)
	col, err := matrix.Column(3, 4)
	require.NoError(t, err)

	inner, err := matrix.Mul(row, col)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11}}, inner.ToRows())

	outer, err := matrix.Mul(col, row)
	require.NoError(t, err)
	want, err := matrix.Outer([]float64{3, 4}, []float64{1, 2})
	require.NoError(t, err)
	assert.True(t, matrix.Equal(outer, want))
}

// TestHiddenOperands checks that non-*Dense operands give the same results.
func TestHiddenOperands(t *testing.T) {
	a := randDense(t, 3, 3, 21)
	b := randDense(t, 3, 3, 22)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	assert.True(t, matrix.Equal(fast, slow))

	sum, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	want, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.True(t, matrix.Equal(sum, want))
}

func TestTransposeInvolution(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 7}} {
		a := randDense(t, shape[0], shape[1], int64(shape[0]*10+shape[1]))
		at, err := matrix.Transpose(a)
		require.NoError(t, err)
		assert.Equal(t, shape[1], at.Rows())
		assert.Equal(t, shape[0], at.Cols())

		att, err := matrix.Transpose(at)
		require.NoError(t, err)
		assert.True(t, matrix.Equal(a, att))
	}
}

func TestTransposeDoesNotMutate(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.NoError(t, at.Set(0, 0, 99))
	assert.Equal(t, [][]float64{{1, 2, 3}}, a.ToRows())
}

func TestScaleNegMatVec(t *testing.T) {
	a := mustRows(t, [][]float64{{1, -1}, {-1, 1}})

	s, err := matrix.Scale(a, 2.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2.5, -2.5}, {-2.5, 2.5}}, s.ToRows())

	n, err := matrix.Neg(a)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{-1, 1}, {1, -1}}, n.ToRows())

	y, err := matrix.MatVec(a, []float64{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEqualNil(t *testing.T) {
	var d *matrix.Dense
	assert.True(t, matrix.Equal(nil, d))
	assert.False(t, matrix.Equal(mustDense(t, 1, 1), nil))
	assert.False(t, matrix.EqualApprox(mustDense(t, 1, 2), mustDense(t, 2, 1), 1))
}
