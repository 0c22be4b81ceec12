package gridcore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridWithFilled(count int) Grid {
	var grid Grid
	for i := 0; i < count; i++ {
		grid[i/Size][i%Size] = TypeA
	}
	return grid
}

func TestGridIsFull(t *testing.T) {
	tests := []struct {
		name   string
		filled int
		want   bool
	}{
		{"empty grid", 0, false},
		{"one cell", 1, false},
		{"eight cells", 8, false},
		{"all nine cells", 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := gridWithFilled(tt.filled)
			assert.Equal(t, tt.want, grid.IsFull())
			assert.Equal(t, tt.filled, grid.Filled())
		})
	}
}

func TestGridIsFullWithMixedMarkers(t *testing.T) {
	grid := FilledWith(TypeB)
	grid[0] = [Size]Marker{TypeA, TypeA, TypeA}
	assert.True(t, grid.IsFull())
	assert.Equal(t, 3, grid.Count(TypeA))
	assert.Equal(t, 6, grid.Count(TypeB))

	grid[2][2] = Empty
	assert.False(t, grid.IsFull())
}

func TestGridCompactNotation(t *testing.T) {
	grid := Grid{
		{TypeA, Empty, TypeB},
		{Empty, TypeA, Empty},
		{TypeB, TypeB, TypeB},
	}
	assert.Equal(t, "A.B/.A./BBB", grid.String())

	parsed, err := ParseGrid("A.B/.A./BBB")
	require.NoError(t, err)
	assert.Equal(t, grid, parsed)

	parsed, err = ParseGrid("a.b\n.a.\nbbb\n")
	require.NoError(t, err)
	assert.Equal(t, grid, parsed)
}

func TestParseGridRejectsMalformedInput(t *testing.T) {
	inputs := []string{"", "AAA/BBB", "AAAA/BBB/BBB", "AAA/BXB/BBB", "AAA/BBB/BBB/AAA"}
	for _, input := range inputs {
		_, err := ParseGrid(input)
		assert.Truef(t, errors.Is(err, ErrBadGrid), "input %q gave %v", input, err)
	}
}

func TestGridRowsRoundTrip(t *testing.T) {
	grid, err := ParseGrid("AB./..A/BBB")
	require.NoError(t, err)

	rows := grid.Rows()
	assert.Equal(t, [][]int{{1, 2, 0}, {0, 0, 1}, {2, 2, 2}}, rows)

	back, err := FromRows(rows)
	require.NoError(t, err)
	assert.Equal(t, grid, back)

	_, err = FromRows([][]int{{1, 2, 3}, {0, 0, 0}, {0, 0, 0}})
	assert.ErrorIs(t, err, ErrBadGrid)
	_, err = FromRows([][]int{{1, 2}})
	assert.ErrorIs(t, err, ErrBadGrid)
}

func TestGridValidate(t *testing.T) {
	grid := FilledWith(TypeA)
	assert.NoError(t, grid.Validate())

	grid[1][1] = Marker(7)
	assert.ErrorIs(t, grid.Validate(), ErrBadGrid)
}

func TestParseKeyAliases(t *testing.T) {
	assert.Equal(t, KeyUp, ParseKey("k"))
	assert.Equal(t, KeyRight, ParseKey("RIGHT"))
	assert.Equal(t, KeyMarkA, ParseKey("w"))
	assert.Equal(t, KeyMarkB, ParseKey("b"))
	assert.Equal(t, KeyConfirm, ParseKey("enter"))
	assert.Equal(t, KeyRestart, ParseKey("tab"))
	assert.Equal(t, KeyQuit, ParseKey("q"))
	assert.Equal(t, KeyNone, ParseKey("space"))
	assert.Equal(t, "mark-a", KeyMarkA.String())
}
