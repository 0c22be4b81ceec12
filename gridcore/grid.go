package gridcore

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the edge length of the input matrix.
const Size = 3

var ErrBadGrid = errors.New("bad grid")

// Grid is indexed [row][col].
type Grid [Size][Size]Marker

// IsFull is true when no cell is Empty.
func (g Grid) IsFull() bool {
	return g.Count(Empty) == 0
}

func (g Grid) Count(marker Marker) int {
	total := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == marker {
				total++
			}
		}
	}
	return total
}

func (g Grid) Filled() int {
	return Size*Size - g.Count(Empty)
}

func (g Grid) Validate() error {
	for r, row := range g {
		for c, cell := range row {
			if !cell.Valid() {
				return fmt.Errorf("%w: cell %d,%d has value %d", ErrBadGrid, r, c, cell)
			}
		}
	}
	return nil
}

// Rows returns the grid as nested slices, the shape used in layout files.
func (g Grid) Rows() [][]int {
	rows := make([][]int, Size)
	for r, row := range g {
		rows[r] = make([]int, Size)
		for c, cell := range row {
			rows[r][c] = int(cell)
		}
	}
	return rows
}

// String renders the compact notation, rows joined by slashes: "AAA/B.B/BBB".
func (g Grid) String() string {
	parts := make([]string, 0, Size)
	for _, row := range g {
		line := make([]byte, 0, Size)
		for _, cell := range row {
			line = append(line, cell.Symbol())
		}
		parts = append(parts, string(line))
	}
	return strings.Join(parts, "/")
}

// ParseGrid reads the compact notation produced by String. Rows may also be
// separated by whitespace or newlines.
func ParseGrid(text string) (Grid, error) {
	var grid Grid
	rows := strings.FieldsFunc(text, func(r rune) bool {
		return r == '/' || r == '\n' || r == ' ' || r == '\t' || r == '\r'
	})
	if len(rows) != Size {
		return grid, fmt.Errorf("%w: expected %d rows, got %d in %q", ErrBadGrid, Size, len(rows), text)
	}
	for r, row := range rows {
		if len(row) != Size {
			return grid, fmt.Errorf("%w: row %d is %q, expected %d cells", ErrBadGrid, r, row, Size)
		}
		for c := 0; c < Size; c++ {
			marker, err := ParseMarker(row[c : c+1])
			if err != nil {
				return grid, err
			}
			grid[r][c] = marker
		}
	}
	return grid, nil
}

// FromRows is the inverse of Rows.
func FromRows(rows [][]int) (Grid, error) {
	var grid Grid
	if len(rows) != Size {
		return grid, fmt.Errorf("%w: expected %d rows, got %d", ErrBadGrid, Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return grid, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrBadGrid, r, len(row), Size)
		}
		for c, value := range row {
			if value < int(Empty) || value > int(TypeB) {
				return grid, fmt.Errorf("%w: cell %d,%d has value %d", ErrBadGrid, r, c, value)
			}
			grid[r][c] = Marker(value)
		}
	}
	return grid, nil
}

// FilledWith returns a grid with every cell set to marker.
func FilledWith(marker Marker) Grid {
	var grid Grid
	for r := range grid {
		for c := range grid[r] {
			grid[r][c] = marker
		}
	}
	return grid
}
