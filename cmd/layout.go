package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/layout"
	"github.com/joshyorko/sortbot/pretty"
	"github.com/joshyorko/sortbot/wizard"

	"github.com/spf13/cobra"
)

var (
	fillOption   string
	presetOption string
	nameOption   string
	layoutYes    bool
)

var layoutCmd = &cobra.Command{
	Use:     "layout",
	Aliases: []string{"layouts"},
	Short:   "Prepare and inspect matrix layout files.",
	Long: `Layout files hold a prepared 3x3 matrix that the dashboard can preload
with --layout instead of keying every cell in.`,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Show a layout file and its fingerprint.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loaded, err := layout.Load(args[0])
		pretty.Guard(err == nil, 2, "%v", err)
		grid, err := loaded.Matrix()
		pretty.Guard(err == nil, 2, "%v", err)

		wizard.PreviewGrid(loaded.Name, grid)
		if len(loaded.Note) > 0 {
			common.Stdout("note:        %s\n", loaded.Note)
		}
		common.Stdout("compact:     %s\n", grid)
		common.Stdout("fingerprint: %s\n", layout.Fingerprint(grid))
		common.Stdout("complete:    %v (%d/%d cells)\n", grid.IsFull(), grid.Filled(), gridcore.Size*gridcore.Size)
	},
}

var layoutNewCmd = &cobra.Command{
	Use:   "new FILE",
	Short: "Write a new layout file from a fill marker or a preset.",
	Long: `Write a new layout file. Use --fill to fill every cell with one part,
or --preset to start from a built-in layout. On a terminal, without either,
you are asked to pick a preset.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]
		if _, err := os.Stat(filename); err == nil {
			confirmed, err := wizard.Confirm("Layout "+filename+" exists. Overwrite?", layoutYes)
			pretty.Guard(err == nil, 1, "%v", err)
			if !confirmed {
				return
			}
		}

		name := nameOption
		if len(name) == 0 {
			defaults := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
			var err error
			name, err = wizard.AskLayoutName(defaults)
			pretty.Guard(err == nil, 1, "%v", err)
		}

		result, err := newLayout(name, fillOption, presetOption)
		pretty.Guard(err == nil, 2, "%v", err)
		err = result.Save(filename)
		pretty.Guard(err == nil, 3, "Could not write %q: %v", filename, err)

		grid, _ := result.Matrix()
		wizard.PreviewGrid(result.Name, grid)
		pretty.Ok()
	},
}

var layoutPresetsCmd = &cobra.Command{
	Use:   "presets [QUERY]",
	Short: "List the built-in layout presets, optionally filtered.",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, preset := range wizard.FilterPresets(layout.Presets(), strings.Join(args, " ")) {
			common.Stdout("%-10s %s  %s%s%s\n", preset.Name, preset.Compact, pretty.Grey, preset.Description, pretty.Reset)
		}
	},
}

// newLayout builds the layout from --fill, --preset or an interactive
// preset choice, in that order.
func newLayout(name, fill, preset string) (*layout.Layout, error) {
	if len(fill) > 0 {
		marker, err := gridcore.ParseMarker(fill)
		if err != nil {
			return nil, err
		}
		return layout.New(name, gridcore.FilledWith(marker)), nil
	}
	if len(preset) > 0 {
		found, err := layout.FindPreset(preset)
		if err != nil {
			return nil, err
		}
		return found.Layout(name)
	}
	chosen, err := wizard.ChoosePreset(layout.Presets())
	if err != nil {
		return nil, err
	}
	return chosen.Layout(name)
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutNewCmd)
	layoutCmd.AddCommand(layoutPresetsCmd)

	layoutNewCmd.Flags().StringVarP(&fillOption, "fill", "", "", "fill every cell with this part: A/white or B/black")
	layoutNewCmd.Flags().StringVarP(&presetOption, "preset", "p", "", "start from a built-in preset (see: layout presets)")
	layoutNewCmd.Flags().StringVarP(&nameOption, "name", "n", "", "layout name (default is the file name)")
	layoutNewCmd.MarkFlagsMutuallyExclusive("fill", "preset")
	wizard.AddYesFlag(layoutNewCmd, &layoutYes)
}
