package cmd

import (
	"errors"
	"testing"

	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/interactive"
	"github.com/joshyorko/sortbot/layout"
	"github.com/joshyorko/sortbot/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScriptSplitsLikeAShell(t *testing.T) {
	keys, err := parseScript(`w right "b" 'enter'  tab`, true)
	require.NoError(t, err)
	assert.Equal(t, []gridcore.Key{
		gridcore.KeyMarkA, gridcore.KeyRight, gridcore.KeyMarkB, gridcore.KeyConfirm, gridcore.KeyRestart,
	}, keys)
}

func TestParseScriptUnknownWords(t *testing.T) {
	keys, err := parseScript("w jump b", false)
	require.NoError(t, err)
	assert.Equal(t, []gridcore.Key{gridcore.KeyMarkA, gridcore.KeyMarkB}, keys)

	_, err = parseScript("w jump b", true)
	assert.EqualError(t, err, `word 2 "jump" is not a key`)
}

func TestParseScriptUnbalancedQuote(t *testing.T) {
	_, err := parseScript(`w "right`, false)
	assert.Error(t, err)
}

func TestReplayScriptStartsTheBelt(t *testing.T) {
	keys, err := parseScript("w l w l w j b h b h b j b l b l b enter enter", true)
	require.NoError(t, err)

	result := interactive.Replay(interactive.Options{Settings: settings.Default()}, interactive.Script{Keys: keys, Frames: 20})
	assert.Equal(t, gridcore.PhaseStarted, result.Phase)
	assert.Equal(t, "AAA/BBB/BBB", result.Grid.String())

	text := describeReplay(result)
	assert.Contains(t, text, "[State] Running\n")
	assert.Contains(t, text, "  A A A\n")
	assert.Contains(t, text, "workflow: 3/4 steps done, 0 failed\n")
	assert.Contains(t, text, "handoffs: 1\n")
	assert.NotContains(t, text, "machine output:")
	assert.Contains(t, text, "belt: position 2, frame 0/10 after 20 frames\n")
	assert.Contains(t, text, "[message 2] belt: started\n")
}

func TestNewLayoutFromFill(t *testing.T) {
	result, err := newLayout("dark", "black", "")
	require.NoError(t, err)
	assert.Equal(t, "dark", result.Name)
	assert.Equal(t, "BBB/BBB/BBB", result.Compact)
}

func TestNewLayoutFromPreset(t *testing.T) {
	result, err := newLayout("demo", "", "top-white")
	require.NoError(t, err)
	assert.Equal(t, "AAA/BBB/BBB", result.Compact)
}

func TestNewLayoutRejectsBadInput(t *testing.T) {
	_, err := newLayout("x", "purple", "")
	assert.True(t, errors.Is(err, gridcore.ErrBadGrid))

	_, err = newLayout("x", "", "stripes")
	assert.True(t, errors.Is(err, layout.ErrBadLayout))
}

func TestJournalPathFallsBackToDefault(t *testing.T) {
	config := settings.Default()
	assert.Contains(t, journalPath(config), "handoffs.yaml")
	assert.Contains(t, journalPath(nil), "handoffs.yaml")

	config.JournalPath = "/tmp/custom.yaml"
	assert.Equal(t, "/tmp/custom.yaml", journalPath(config))
}

func TestDiagnosticFactsIncludeSettings(t *testing.T) {
	config := settings.Default()
	config.ControllerProcess = ""
	facts := diagnosticFacts(config)

	seen := map[string]string{}
	for _, pair := range facts {
		seen[pair[0]] = pair[1]
	}
	assert.Contains(t, seen, "terminal size")
	assert.Contains(t, seen, "color mode")
	assert.Equal(t, "loop", seen["setting "+settings.BeltPolicy])
	assert.Equal(t, "not configured", seen["controller"])
}

func TestEveryCommandIsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, command := range rootCmd.Commands() {
		names[command.Name()] = true
	}
	for _, expected := range []string{"ui", "replay", "layout", "journal", "diagnostics", "version"} {
		assert.True(t, names[expected], expected)
	}
}
