package common_test

import (
	"path/filepath"
	"testing"

	"github.com/joshyorko/sortbot/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortbotStrategyDefaults(t *testing.T) {
	t.Setenv(common.SORTBOT_HOME_VARIABLE, "")
	t.Setenv(common.SORTBOT_PRODUCT_NAME, "")

	strategy := common.SortbotMode()

	assert.Equal(t, "sortbot", strategy.Name())
	assert.Equal(t, common.SORTBOT_HOME_VARIABLE, strategy.HomeVariable())
	assert.True(t, filepath.IsAbs(strategy.Home()))
	assert.Equal(t, "sortbot.yaml", filepath.Base(strategy.SettingsFile()))
}

func TestSortbotStrategyProductNameOverride(t *testing.T) {
	t.Setenv(common.SORTBOT_PRODUCT_NAME, "Belt Two")

	assert.Equal(t, "Belt Two", common.SortbotMode().Name())
}

func TestSortbotStrategyHomePriority(t *testing.T) {
	envHome := t.TempDir()
	forced := t.TempDir()
	t.Setenv(common.SORTBOT_HOME_VARIABLE, envHome)

	strategy := common.SortbotMode()
	require.Equal(t, envHome, strategy.Home())

	strategy.ForceHome(forced)
	assert.Equal(t, forced, strategy.Home())
	assert.Equal(t, filepath.Join(forced, "journal", "handoffs.yaml"), strategy.JournalFile())
}

func TestVerbosityLevels(t *testing.T) {
	defer common.DefineVerbosity(false, false, false)

	common.DefineVerbosity(false, false, true)
	assert.True(t, common.TraceFlag())
	assert.True(t, common.DebugFlag())
	assert.Equal(t, "trace", common.VerbosityName())

	common.DefineVerbosity(true, true, true)
	assert.True(t, common.Silent())
	assert.False(t, common.DebugFlag())
	assert.Equal(t, "silent", common.VerbosityName())

	common.DefineVerbosity(false, false, false)
	assert.Equal(t, "normal", common.VerbosityName())
}

func TestLogInterceptorCapturesMessages(t *testing.T) {
	defer common.ClearLogInterceptor()

	captured := []string{}
	common.SetLogInterceptor(func(message string) bool {
		captured = append(captured, message)
		return true
	})

	common.Log("belt at %d", 3)
	common.Uncritical("journal", assert.AnError)
	common.WaitLogs()

	require.Len(t, captured, 2)
	assert.Equal(t, "belt at 3", captured[0])
	assert.Contains(t, captured[1], "not critical")
}

func TestLogFileMirror(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sortbot.log")
	require.NoError(t, common.OpenLogFile(filename))
	defer common.CloseLogFile()

	common.SetLogInterceptor(func(string) bool { return true })
	defer common.ClearLogInterceptor()

	common.Log("mirrored line")
	common.WaitLogs()
	assert.FileExists(t, filename)
}
