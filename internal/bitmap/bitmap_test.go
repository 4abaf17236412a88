package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmpty(t *testing.T) {
	b := New(0)
	assert.Equal(t, GridHeight, b.Rows())
	assert.Equal(t, 0, b.Cols())
	assert.Equal(t, 0, b.OnCount())
}

func TestNewIsAllZero(t *testing.T) {
	b := New(5)
	assert.Equal(t, GridHeight, b.Rows())
	assert.Equal(t, 5, b.Cols())
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			assert.Equal(t, 0, b.At(r, c))
		}
	}
}

func TestFromRows(t *testing.T) {
	rows := [][]int{
		{1, 0},
		{0, 1},
		{1, 0},
		{0, 1},
		{1, 0},
		{0, 1},
		{1, 0},
	}
	b, err := FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Cols())
	assert.Equal(t, 7, b.OnCount())
	assert.Equal(t, 1, b.At(0, 0))
	assert.Equal(t, 0, b.At(0, 1))
}

func TestFromRowsWrongHeight(t *testing.T) {
	_, err := FromRows([][]int{{1}, {0}, {1}})
	assert.Error(t, err)
}

func TestFromRowsRagged(t *testing.T) {
	rows := [][]int{
		{1, 0},
		{0},
		{1, 0},
		{0, 1},
		{1, 0},
		{0, 1},
		{1, 0},
	}
	_, err := FromRows(rows)
	assert.Error(t, err)
}

func TestFromRowsNonBinary(t *testing.T) {
	rows := [][]int{
		{1}, {0}, {2}, {0}, {1}, {0}, {1},
	}
	_, err := FromRows(rows)
	assert.Error(t, err)
}

func TestHConcat(t *testing.T) {
	left, err := FromRows([][]int{
		{1}, {1}, {1}, {1}, {1}, {1}, {1},
	})
	require.NoError(t, err)

	right, err := FromRows([][]int{
		{0, 1}, {0, 1}, {0, 1}, {0, 1}, {0, 1}, {0, 1}, {0, 1},
	})
	require.NoError(t, err)

	joined := HConcat(left, New(2), right)
	assert.Equal(t, 5, joined.Cols())
	assert.Equal(t, 14, joined.OnCount())

	// left block, spacer, right block
	assert.Equal(t, 1, joined.At(0, 0))
	assert.Equal(t, 0, joined.At(0, 1))
	assert.Equal(t, 0, joined.At(0, 2))
	assert.Equal(t, 0, joined.At(0, 3))
	assert.Equal(t, 1, joined.At(0, 4))
}

func TestHConcatEmpty(t *testing.T) {
	b := HConcat()
	assert.Equal(t, GridHeight, b.Rows())
	assert.Equal(t, 0, b.Cols())
}
