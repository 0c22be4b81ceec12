package layout

import (
	"fmt"
	"strings"

	"github.com/joshyorko/sortbot/gridcore"
)

// Preset is a named starting layout offered by `layout new`.
type Preset struct {
	Name        string
	Description string
	Compact     string
}

var presets = []Preset{
	{"white", "every cell takes a white part", "AAA/AAA/AAA"},
	{"black", "every cell takes a black part", "BBB/BBB/BBB"},
	{"top-white", "white parts on the top row, black elsewhere", "AAA/BBB/BBB"},
	{"checker", "alternating white and black, white corners", "ABA/BAB/ABA"},
	{"empty", "nothing filled in; finish it in the dashboard", ".../.../..."},
}

// Presets lists the built-in layouts.
func Presets() []Preset {
	result := make([]Preset, len(presets))
	copy(result, presets)
	return result
}

// FindPreset looks a preset up by name, ignoring case.
func FindPreset(name string) (Preset, error) {
	for _, preset := range presets {
		if strings.EqualFold(preset.Name, name) {
			return preset, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: no preset named %q", ErrBadLayout, name)
}

// Matrix parses the preset into a grid.
func (it Preset) Matrix() (gridcore.Grid, error) {
	grid, err := gridcore.ParseGrid(it.Compact)
	if err != nil {
		return grid, fmt.Errorf("%w: preset %q: %v", ErrBadLayout, it.Name, err)
	}
	return grid, nil
}

// Layout turns the preset into a named layout ready to save.
func (it Preset) Layout(name string) (*Layout, error) {
	grid, err := it.Matrix()
	if err != nil {
		return nil, err
	}
	result := New(name, grid)
	result.Note = fmt.Sprintf("from preset %s", it.Name)
	return result, nil
}
