package cmd

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/interactive"
	"github.com/joshyorko/sortbot/logbuf"
	"github.com/joshyorko/sortbot/pretty"
	"github.com/joshyorko/sortbot/robot"
	"github.com/joshyorko/sortbot/settings"

	"github.com/spf13/cobra"
)

var (
	keyScript    string
	frameCount   int
	screenWidth  int
	screenHeight int
	strictKeys   bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run a key script through the dashboard without a terminal.",
	Long: `Replay feeds a key script through the same state machine the dashboard
uses, runs the belt for a number of frames and prints where it ended.

Key names: up down left right (or k j h l), w/white, b/black, enter,
tab (restart), q (quit). Quote names that contain spaces.

Example:
  sortbot replay --keys "w right w right w down b left b left b down b right b right b enter enter" --frames 40`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		keys, err := parseScript(keyScript, strictKeys)
		pretty.Guard(err == nil, 2, "Bad key script: %v", err)

		config := settings.Global
		dispatcher := robot.NewDispatcher(openJournal(config))
		options := interactive.Options{
			Settings:   config,
			Dispatcher: dispatcher,
			Layout:     preloadLayout(layoutFile),
		}
		result := interactive.Replay(options, interactive.Script{
			Keys:   keys,
			Frames: frameCount,
			Width:  screenWidth,
			Height: screenHeight,
		})
		common.Stdout("%s", describeReplay(result))
	},
}

// parseScript splits a key script shell-style and maps each word to a
// key. Unknown words are skipped, or rejected when strict.
func parseScript(script string, strict bool) ([]gridcore.Key, error) {
	words, err := shlex.Split(script)
	if err != nil {
		return nil, err
	}
	keys := make([]gridcore.Key, 0, len(words))
	for at, word := range words {
		key := gridcore.ParseKey(word)
		if key == gridcore.KeyNone {
			if strict {
				return nil, fmt.Errorf("word %d %q is not a key", at+1, word)
			}
			common.Debug("Skipping unknown key %q.", word)
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func describeReplay(result interactive.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[State] %s\n", result.Phase)
	for _, row := range strings.Split(result.Grid.String(), "/") {
		fmt.Fprintf(&b, "  %s\n", strings.Join(strings.Split(row, ""), " "))
	}
	fmt.Fprintf(&b, "cursor: %d,%d\n", result.Cursor.Row, result.Cursor.Col)
	for _, step := range result.Steps {
		fmt.Fprintf(&b, "%s %s\n", step.Status, step.Name)
	}
	fmt.Fprintf(&b, "workflow: %d/%d steps done, %d failed\n",
		result.Workflow.Completed, result.Workflow.Total, result.Workflow.Failed)
	fmt.Fprintf(&b, "handoffs: %d\n", result.Dispatched)
	fmt.Fprintf(&b, "belt: position %d, frame %d/%d after %d frames\n",
		result.Belt.Position, result.Belt.FrameCounter, result.Belt.Speed, result.Frames)
	if result.Quit {
		b.WriteString("quit\n")
	}
	for _, entry := range result.Messages {
		if entry.Level >= logbuf.LogInfo {
			fmt.Fprintf(&b, "%s\n", interactive.MessageLine(entry))
		}
	}
	if summary := interactive.OutputSummary(result.Output); len(summary) > 0 {
		fmt.Fprintf(&b, "machine output: %s\n", summary)
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&keyScript, "keys", "k", "", "key script, words separated by spaces")
	replayCmd.Flags().IntVarP(&frameCount, "frames", "f", 0, "frames to run after the last key")
	replayCmd.Flags().StringVarP(&layoutFile, "layout", "l", "", "preload the matrix from this layout file")
	replayCmd.Flags().StringVarP(&journalFile, "journal", "j", "", "record handoffs into this journal file (overrides robot.journal)")
	replayCmd.Flags().IntVarP(&screenWidth, "width", "", 120, "screen width the belt is sized for")
	replayCmd.Flags().IntVarP(&screenHeight, "height", "", 30, "screen height the belt is sized for")
	replayCmd.Flags().BoolVarP(&strictKeys, "strict", "", false, "fail on unknown key names instead of skipping them")
	replayCmd.MarkFlagRequired("keys")
	addBeltFlags(replayCmd)
}
