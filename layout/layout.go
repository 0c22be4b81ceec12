// Package layout reads and writes prepared matrix layouts so an operator
// can preload a known sorting pattern instead of keying it in.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dchest/siphash"
	"github.com/joshyorko/sortbot/gridcore"
	"gopkg.in/yaml.v2"
)

var ErrBadLayout = errors.New("bad layout")

// Fixed keys: fingerprints must stay stable between runs and machines.
const (
	fingerprintKey0 = 0x736f7274626f7431
	fingerprintKey1 = 0x6d61747269783333
)

// Layout is the on-disk shape. Either Grid or Compact must be present;
// Grid wins when both are.
type Layout struct {
	Name    string  `yaml:"name,omitempty"`
	Note    string  `yaml:"note,omitempty"`
	Grid    [][]int `yaml:"grid,omitempty"`
	Compact string  `yaml:"compact,omitempty"`
}

func New(name string, grid gridcore.Grid) *Layout {
	return &Layout{
		Name:    name,
		Grid:    grid.Rows(),
		Compact: grid.String(),
	}
}

// Matrix converts the layout into a grid.
func (it *Layout) Matrix() (gridcore.Grid, error) {
	var grid gridcore.Grid
	var err error
	switch {
	case len(it.Grid) > 0:
		grid, err = gridcore.FromRows(it.Grid)
	case len(strings.TrimSpace(it.Compact)) > 0:
		grid, err = gridcore.ParseGrid(it.Compact)
	default:
		return grid, fmt.Errorf("%w: %q has neither grid nor compact form", ErrBadLayout, it.Name)
	}
	if err != nil {
		return grid, fmt.Errorf("%w: %q: %v", ErrBadLayout, it.Name, err)
	}
	return grid, nil
}

func Parse(content []byte) (*Layout, error) {
	result := &Layout{}
	if err := yaml.UnmarshalStrict(content, result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLayout, err)
	}
	if _, err := result.Matrix(); err != nil {
		return nil, err
	}
	return result, nil
}

func Load(filename string) (*Layout, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading layout %q failed: %w", filename, err)
	}
	result, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", filename, err)
	}
	if len(result.Name) == 0 {
		result.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return result, nil
}

func (it *Layout) Save(filename string) error {
	content, err := yaml.Marshal(it)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o750); err != nil {
		return err
	}
	return os.WriteFile(filename, content, 0o640)
}

// Fingerprint identifies a grid by content. Equal grids always share a
// fingerprint, so journal entries can be grouped by pattern.
func Fingerprint(grid gridcore.Grid) string {
	content := make([]byte, 0, gridcore.Size*gridcore.Size)
	for _, row := range grid {
		for _, cell := range row {
			content = append(content, byte(cell))
		}
	}
	return fmt.Sprintf("%016x", siphash.Hash(fingerprintKey0, fingerprintKey1, content))
}
