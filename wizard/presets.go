package wizard

import (
	"errors"
	"strings"

	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/layout"
	"github.com/joshyorko/sortbot/pretty"
)

// ErrNoPresets is returned when there is nothing to choose from
var ErrNoPresets = errors.New("no layout presets available")

// ChoosePreset presents the presets as numbered actions and returns the
// selected one.
func ChoosePreset(presets []layout.Preset) (*layout.Preset, error) {
	if len(presets) == 0 {
		return nil, ErrNoPresets
	}
	actions := make([]Action, 0, len(presets))
	for _, preset := range presets {
		actions = append(actions, Action{
			Key:         preset.Name,
			Name:        preset.Name,
			Description: preset.Description,
		})
	}
	selected, err := ChooseAction("Available layout presets:", actions)
	if err != nil {
		return nil, err
	}
	for i := range presets {
		if presets[i].Name == selected.Key {
			return &presets[i], nil
		}
	}
	return nil, ErrNoPresets
}

// PreviewGrid prints a grid as three rows of part symbols.
func PreviewGrid(title string, grid gridcore.Grid) {
	common.Stdout("\n%s%s%s%s\n", pretty.Bold, pretty.Cyan, title, pretty.Reset)
	for _, row := range strings.Split(grid.String(), "/") {
		common.Stdout("  %s%s%s\n", pretty.White, strings.Join(strings.Split(row, ""), " "), pretty.Reset)
	}
	common.Stdout("\n")
}

// FilterPresets keeps presets whose name or description contains query,
// ignoring case.
func FilterPresets(presets []layout.Preset, query string) []layout.Preset {
	if query == "" {
		return presets
	}
	lowerQuery := strings.ToLower(query)
	filtered := make([]layout.Preset, 0, len(presets))
	for _, preset := range presets {
		if strings.Contains(strings.ToLower(preset.Name), lowerQuery) ||
			strings.Contains(strings.ToLower(preset.Description), lowerQuery) {
			filtered = append(filtered, preset)
		}
	}
	return filtered
}
