// Package bitmap provides the fixed-height binary matrix that every rendered
// pattern is built from. The contribution grid has seven rows (Sunday through
// Saturday), so every Bitmap has exactly GridHeight rows; only the column
// count varies.
package bitmap

import "fmt"

// GridHeight is the number of rows in the contribution grid, one per weekday.
const GridHeight = 7

// Bitmap is a GridHeight-row binary matrix. Cells hold 0 or 1 only; that is
// enforced at construction, so consumers never need to re-validate.
//
// A Bitmap built through New or FromRows is rectangular by construction.
type Bitmap struct {
	// data[row][col], always GridHeight rows.
	data [][]int
}

// New returns an all-zero Bitmap with the given number of columns.
// cols may be 0, which yields the empty 7x0 pattern.
func New(cols int) Bitmap {
	if cols < 0 {
		cols = 0
	}
	data := make([][]int, GridHeight)
	for r := range data {
		data[r] = make([]int, cols)
	}
	return Bitmap{data: data}
}

// FromRows builds a Bitmap from raw row data. It returns an error if the
// input does not have exactly GridHeight rows, if the rows are ragged, or if
// any cell is outside {0,1}. Malformed glyph definitions are caught here,
// at data-definition time, rather than at render time.
func FromRows(rows [][]int) (Bitmap, error) {
	if len(rows) != GridHeight {
		return Bitmap{}, fmt.Errorf("bitmap must have exactly %d rows, got %d", GridHeight, len(rows))
	}

	cols := len(rows[0])
	data := make([][]int, GridHeight)
	for r, row := range rows {
		if len(row) != cols {
			return Bitmap{}, fmt.Errorf("bitmap rows are ragged: row %d has %d columns, expected %d", r, len(row), cols)
		}
		data[r] = make([]int, cols)
		for c, cell := range row {
			if cell != 0 && cell != 1 {
				return Bitmap{}, fmt.Errorf("bitmap cell (%d,%d) holds %d, expected 0 or 1", r, c, cell)
			}
			data[r][c] = cell
		}
	}

	return Bitmap{data: data}, nil
}

// Rows returns the row count, always GridHeight for a constructed Bitmap.
func (b Bitmap) Rows() int {
	if b.data == nil {
		return 0
	}
	return len(b.data)
}

// Cols returns the column count.
func (b Bitmap) Cols() int {
	if len(b.data) == 0 {
		return 0
	}
	return len(b.data[0])
}

// At returns the cell value at (row, col). Out-of-range access panics, as
// with a plain slice; callers iterate within Rows/Cols.
func (b Bitmap) At(row, col int) int {
	return b.data[row][col]
}

// OnCount returns the number of 1-cells.
func (b Bitmap) OnCount() int {
	total := 0
	for _, row := range b.data {
		for _, cell := range row {
			total += cell
		}
	}
	return total
}

// HConcat concatenates bitmaps left to right into a single Bitmap.
// HConcat() with no arguments returns the empty 7x0 Bitmap.
func HConcat(parts ...Bitmap) Bitmap {
	cols := 0
	for _, p := range parts {
		cols += p.Cols()
	}

	out := New(cols)
	offset := 0
	for _, p := range parts {
		for r := 0; r < p.Rows(); r++ {
			for c := 0; c < p.Cols(); c++ {
				out.data[r][offset+c] = p.data[r][c]
			}
		}
		offset += p.Cols()
	}
	return out
}
