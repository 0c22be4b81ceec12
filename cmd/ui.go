package cmd

import (
	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/interactive"
	"github.com/joshyorko/sortbot/journal"
	"github.com/joshyorko/sortbot/layout"
	"github.com/joshyorko/sortbot/logbuf"
	"github.com/joshyorko/sortbot/pretty"
	"github.com/joshyorko/sortbot/robot"
	"github.com/joshyorko/sortbot/settings"
	"github.com/joshyorko/sortbot/wizard"

	"github.com/spf13/cobra"
)

var (
	layoutFile  string
	journalFile string
	recordFlag  bool
	speedOption int
	diskOption  int
	beltPolicy  string
	editPolicy  string
)

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui", "dashboard"},
	Short:   "Launch the operator dashboard.",
	Long: `Launch the full-screen operator dashboard.

Keys:
  arrows, h/j/k/l   Move the cursor
  w / b             Put a white / black part in the cell
  Enter             Arm the start, then Enter again to start
  Tab               Restart with an empty matrix
  ?                 Help
  q, Ctrl+C         Quit

Example:
  sortbot ui
  sortbot ui --layout morning.yaml --record`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !pretty.Interactive {
			pretty.ExitMessage(1, "The dashboard requires an interactive terminal (TTY)")
		}
		config := settings.Global

		options := interactive.Options{
			Settings:   config,
			Dispatcher: robot.NewDispatcher(openJournal(config)),
			Layout:     preloadLayout(layoutFile),
		}
		status, err := robot.FindController(config.ControllerProcess)
		common.Uncritical("controller", err)
		options.Controller = status

		result, err := interactive.Run(options)
		pretty.Guard(err == nil, 1, "Dashboard error: %v", err)
		reportSession(result)
	},
}

// openJournal returns the handoff journal the settings ask for, or nil.
func openJournal(config *settings.Settings) *journal.Journal {
	filename := config.JournalPath
	if len(filename) == 0 && recordFlag {
		filename = common.SortbotMode().JournalFile()
	}
	if len(filename) == 0 {
		return nil
	}
	common.Debug("Recording handoffs in %s", filename)
	return journal.Open(filename)
}

// preloadLayout reads the --layout file. A broken file on a terminal asks
// whether to start empty instead.
func preloadLayout(filename string) *gridcore.Grid {
	if len(filename) == 0 {
		return nil
	}
	grid, err := loadGrid(filename)
	if err == nil {
		return &grid
	}
	choice, askErr := wizard.AskRecovery(err, wizard.LayoutRecovery())
	if askErr != nil || choice.Key == wizard.RecoverAbort {
		pretty.Exit(2, "Could not load layout %q: %v", filename, err)
	}
	return nil
}

func loadGrid(filename string) (gridcore.Grid, error) {
	loaded, err := layout.Load(filename)
	if err != nil {
		return gridcore.Grid{}, err
	}
	return loaded.Matrix()
}

func reportSession(result interactive.Result) {
	common.Log("Session ended in phase %s with matrix %s.", result.Phase, result.Grid)
	if result.Dispatched > 0 {
		common.Log("%d handoff(s) sent to the robot.", result.Dispatched)
	}
	if result.Workflow.Failed > 0 {
		pretty.Warning("%d workflow step(s) failed, see the messages below.", result.Workflow.Failed)
	}
	if summary := interactive.OutputSummary(result.Output); len(summary) > 0 {
		common.Log("Machine output had %s:", summary)
	}
	for _, entry := range result.Messages {
		if entry.Level >= logbuf.LogWarn {
			common.Log("%s", interactive.MessageLine(entry))
		}
	}
}

func addBeltFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&speedOption, "speed", "", 0, "frames per belt step (overrides belt.speed)")
	cmd.Flags().IntVarP(&diskOption, "disk-width", "", 0, "disk width in cells, 0 for automatic (overrides belt.disk_width)")
	cmd.Flags().StringVarP(&beltPolicy, "belt-policy", "", "", "loop or hold at the end of the belt (overrides belt.policy)")
	cmd.Flags().StringVarP(&editPolicy, "edit-policy", "", "", "lock or editable after start (overrides grid.edit_policy)")
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVarP(&layoutFile, "layout", "l", "", "preload the matrix from this layout file")
	uiCmd.Flags().StringVarP(&journalFile, "journal", "j", "", "record handoffs into this journal file (overrides robot.journal)")
	uiCmd.Flags().BoolVarP(&recordFlag, "record", "r", false, "record handoffs into the default journal when none is configured")
	addBeltFlags(uiCmd)
}
