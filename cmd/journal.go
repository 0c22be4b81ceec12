package cmd

import (
	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/journal"
	"github.com/joshyorko/sortbot/pretty"
	"github.com/joshyorko/sortbot/settings"
	"github.com/joshyorko/sortbot/wizard"

	"github.com/spf13/cobra"
)

var (
	journalYes  bool
	journalTail int
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the handoff journal.",
	Long: `The journal records every grid handed to the robot when recording is
enabled (robot.journal setting, --journal or ui --record).`,
}

var journalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List recorded handoffs, oldest first.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		record := journal.Open(journalPath(settings.Global))
		events, err := record.Events()
		pretty.Guard(err == nil, 2, "%v", err)
		if len(events) == 0 {
			common.Log("Journal %s is empty.", record.Filename())
			return
		}
		if journalTail > 0 && len(events) > journalTail {
			events = events[len(events)-journalTail:]
		}
		for _, event := range events {
			common.Stdout("%s  %-8s %s  %s%s%s\n", event.When, event.Event, event.Compact, pretty.Grey, event.Fingerprint, pretty.Reset)
		}
	},
}

var journalClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every recorded handoff.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		record := journal.Open(journalPath(settings.Global))
		confirmed, err := wizard.ConfirmDangerous("This removes every handoff recorded in "+record.Filename()+".", journalYes)
		pretty.Guard(err == nil, 1, "%v", err)
		if !confirmed {
			return
		}
		err = record.Clear()
		pretty.Guard(err == nil, 3, "%v", err)
		pretty.Ok()
	},
}

// journalPath is the configured journal, or the default location.
func journalPath(config *settings.Settings) string {
	if config != nil && len(config.JournalPath) > 0 {
		return config.JournalPath
	}
	return common.SortbotMode().JournalFile()
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalClearCmd)

	journalCmd.PersistentFlags().StringVarP(&journalFile, "journal", "j", "", "journal file (overrides robot.journal)")
	journalShowCmd.Flags().IntVarP(&journalTail, "tail", "t", 0, "show only the last N handoffs")
	wizard.AddYesFlag(journalClearCmd, &journalYes)
}
