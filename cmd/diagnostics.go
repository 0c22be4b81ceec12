package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/pretty"
	"github.com/joshyorko/sortbot/robot"
	"github.com/joshyorko/sortbot/settings"
	"github.com/mattn/go-isatty"

	"github.com/spf13/cobra"
)

var diagnosticsCmd = &cobra.Command{
	Use:     "diagnostics",
	Aliases: []string{"diag"},
	Short:   "Show terminal, settings and controller facts.",
	Long: `Diagnostics reports what the dashboard would run with: whether the
streams are terminals, the terminal size and color support, the resolved
settings and whether the belt controller process is running.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, pair := range diagnosticFacts(settings.Global) {
			common.Stdout("%s%-26s%s %s\n", pretty.Grey, pair[0], pretty.Reset, pair[1])
		}
	},
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func diagnosticFacts(config *settings.Settings) [][2]string {
	width, height := pretty.TerminalSize()
	facts := [][2]string{
		{"product", common.Product + " " + common.Version},
		{"platform", runtime.GOOS + "/" + runtime.GOARCH},
		{"home", common.SortbotMode().Home()},
		{"verbosity", common.VerbosityName()},
		{"stdin is terminal", yesNo(isatty.IsTerminal(os.Stdin.Fd()))},
		{"stdout is terminal", yesNo(isatty.IsTerminal(os.Stdout.Fd()))},
		{"dashboard possible", yesNo(pretty.Interactive)},
		{"terminal size", sizeText(width, height)},
		{"color mode", pretty.DetectColorMode().String()},
		{"icons", yesNo(pretty.Iconic)},
	}
	if config == nil {
		return facts
	}
	for _, pair := range config.Describe() {
		facts = append(facts, [2]string{"setting " + pair[0], pair[1]})
	}
	status, err := robot.FindController(config.ControllerProcess)
	if err != nil {
		facts = append(facts, [2]string{"controller", "unknown: " + err.Error()})
	} else {
		facts = append(facts, [2]string{"controller", status.String()})
	}
	return facts
}

func sizeText(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

func init() {
	rootCmd.AddCommand(diagnosticsCmd)
}
