package settings_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joshyorko/sortbot/beltcore"
	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/settings"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summon(t *testing.T, filename string) (*settings.Settings, error) {
	t.Helper()
	t.Setenv(common.SORTBOT_HOME_VARIABLE, t.TempDir())
	v := viper.New()
	settings.Configure(v, filename)
	require.NoError(t, settings.Read(v))
	return settings.Summon(v)
}

func TestThatSomeDefaultValuesAreVisible(t *testing.T) {
	sut, err := summon(t, "")
	require.NoError(t, err)
	require.NotNil(t, sut)

	assert.Same(t, sut, settings.Global)
	assert.Equal(t, beltcore.DefaultSpeed, sut.Speed)
	assert.Equal(t, beltcore.Loop, sut.BeltPolicy)
	assert.Equal(t, 0, sut.DiskWidth)
	assert.Equal(t, 5*time.Millisecond, sut.FrameInterval)
	assert.Equal(t, 200, sut.MessageLimit)
	assert.Equal(t, gridcore.LockAfterStart, sut.EditPolicy)
	assert.Equal(t, "", sut.JournalPath)
	assert.Equal(t, "sortbot-controller", sut.ControllerProcess)
	assert.Equal(t, "defaults", sut.Describe()[0][1])
}

func TestSettingsFileOverridesDefaults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "belt.yaml")
	content := "belt:\n  speed: 4\n  policy: hold\ngrid:\n  edit_policy: editable\nui:\n  frame_interval: 20ms\n"
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o600))

	sut, err := summon(t, filename)
	require.NoError(t, err)

	assert.Equal(t, 4, sut.Speed)
	assert.Equal(t, beltcore.Hold, sut.BeltPolicy)
	assert.Equal(t, gridcore.EditableAfterStart, sut.EditPolicy)
	assert.Equal(t, 20*time.Millisecond, sut.FrameInterval)
	assert.Equal(t, filename, sut.Source)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "belt.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("belt:\n  speed: 4\n"), 0o600))
	t.Setenv("SORTBOT_BELT_SPEED", "7")

	sut, err := summon(t, filename)
	require.NoError(t, err)
	assert.Equal(t, 7, sut.Speed)
}

func TestInvalidValuesAreRejected(t *testing.T) {
	tests := map[string]string{
		"policy":   "belt:\n  policy: bounce\n",
		"edit":     "grid:\n  edit_policy: maybe\n",
		"speed":    "belt:\n  speed: 0\n",
		"disk":     "belt:\n  disk_width: -2\n",
		"interval": "ui:\n  frame_interval: 10us\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "sortbot.yaml")
			require.NoError(t, os.WriteFile(filename, []byte(content), 0o600))
			_, err := summon(t, filename)
			assert.Error(t, err)
		})
	}
}

func TestMissingExplicitFileIsAnError(t *testing.T) {
	v := viper.New()
	settings.Configure(v, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, settings.Read(v))
}

func TestJournalPathIsExpanded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("BELT_HOME", home)
	t.Setenv("SORTBOT_ROBOT_JOURNAL", "$BELT_HOME/handoffs.yaml")

	sut, err := summon(t, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "handoffs.yaml"), sut.JournalPath)
}

func TestDefaultMatchesUnconfiguredSummon(t *testing.T) {
	sut := settings.Default()
	require.NotNil(t, sut)
	assert.Equal(t, beltcore.DefaultSpeed, sut.Speed)
	assert.Equal(t, beltcore.Loop, sut.BeltPolicy)
	assert.Equal(t, gridcore.LockAfterStart, sut.EditPolicy)
	assert.Equal(t, 5*time.Millisecond, sut.FrameInterval)
	assert.Empty(t, sut.JournalPath)
}
