package layout_test

import (
	"errors"
	"testing"

	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPresetsParse(t *testing.T) {
	for _, preset := range layout.Presets() {
		t.Run(preset.Name, func(t *testing.T) {
			grid, err := preset.Matrix()
			require.NoError(t, err)
			assert.Equal(t, preset.Compact, grid.String())
		})
	}
}

func TestFindPresetIgnoresCase(t *testing.T) {
	preset, err := layout.FindPreset("Top-White")
	require.NoError(t, err)

	grid, err := preset.Matrix()
	require.NoError(t, err)
	assert.Equal(t, 3, grid.Count(gridcore.TypeA))
	assert.Equal(t, 6, grid.Count(gridcore.TypeB))
}

func TestFindPresetUnknown(t *testing.T) {
	_, err := layout.FindPreset("stripes")
	assert.True(t, errors.Is(err, layout.ErrBadLayout))
}

func TestPresetBecomesLayout(t *testing.T) {
	preset, err := layout.FindPreset("checker")
	require.NoError(t, err)

	result, err := preset.Layout("morning")
	require.NoError(t, err)
	assert.Equal(t, "morning", result.Name)
	assert.Equal(t, "from preset checker", result.Note)
	assert.Equal(t, [][]int{{1, 2, 1}, {2, 1, 2}, {1, 2, 1}}, result.Grid)
}

func TestPresetsReturnsACopy(t *testing.T) {
	first := layout.Presets()
	first[0].Name = "changed"
	assert.Equal(t, "white", layout.Presets()[0].Name)
}
