// Package settings resolves sortbot configuration from the settings file,
// SORTBOT_* environment variables and command line flags, in viper order.
package settings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joshyorko/sortbot/beltcore"
	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/gridcore"
	"github.com/spf13/viper"
)

const (
	BeltSpeed         = `belt.speed`
	BeltPolicy        = `belt.policy`
	BeltDiskWidth     = `belt.disk_width`
	FrameInterval     = `ui.frame_interval`
	MessageLimit      = `ui.message_limit`
	GridEditPolicy    = `grid.edit_policy`
	RobotJournal      = `robot.journal`
	ControllerProcess = `robot.controller_process`

	envPrefix = `SORTBOT`
)

var (
	Global *Settings

	minimumFrameInterval = time.Millisecond
)

type Settings struct {
	Speed             int
	BeltPolicy        beltcore.Policy
	DiskWidth         int
	FrameInterval     time.Duration
	MessageLimit      int
	EditPolicy        gridcore.EditPolicy
	JournalPath       string
	ControllerProcess string
	Source            string
}

// Defaults registers every known key with its default value.
func Defaults(v *viper.Viper) {
	v.SetDefault(BeltSpeed, beltcore.DefaultSpeed)
	v.SetDefault(BeltPolicy, beltcore.Loop.String())
	v.SetDefault(BeltDiskWidth, 0)
	v.SetDefault(FrameInterval, "5ms")
	v.SetDefault(MessageLimit, 200)
	v.SetDefault(GridEditPolicy, gridcore.LockAfterStart.String())
	v.SetDefault(RobotJournal, "")
	v.SetDefault(ControllerProcess, "sortbot-controller")
}

// Configure prepares a viper instance: defaults, environment binding and
// the settings file location. An explicit filename wins over the search path.
func Configure(v *viper.Viper, filename string) {
	Defaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(filename) > 0 {
		v.SetConfigFile(filename)
		return
	}
	v.SetConfigName("sortbot")
	v.SetConfigType("yaml")
	v.AddConfigPath(common.SortbotMode().Home())
	v.AddConfigPath(".")
}

// Read loads the settings file if there is one. A missing file in the
// search path is fine; a missing explicit file is not.
func Read(v *viper.Viper) error {
	err := v.ReadInConfig()
	var missing viper.ConfigFileNotFoundError
	if errors.As(err, &missing) {
		common.Trace("No settings file found, using defaults.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading settings failed: %w", err)
	}
	common.Debug("Settings read from %s", v.ConfigFileUsed())
	return nil
}

// Summon validates the resolved values and publishes them as Global.
func Summon(v *viper.Viper) (*Settings, error) {
	result, err := resolve(v)
	if err != nil {
		return nil, err
	}
	Global = result
	return result, nil
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	v := viper.New()
	Defaults(v)
	result, err := resolve(v)
	if err != nil {
		panic(fmt.Sprintf("default settings are invalid: %v", err))
	}
	return result
}

func resolve(v *viper.Viper) (*Settings, error) {
	beltPolicy, err := beltcore.ParsePolicy(v.GetString(BeltPolicy))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", BeltPolicy, err)
	}
	editPolicy, err := gridcore.ParseEditPolicy(v.GetString(GridEditPolicy))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", GridEditPolicy, err)
	}
	speed := v.GetInt(BeltSpeed)
	if speed < 1 {
		return nil, fmt.Errorf("%s must be at least 1, got %d", BeltSpeed, speed)
	}
	diskWidth := v.GetInt(BeltDiskWidth)
	if diskWidth < 0 {
		return nil, fmt.Errorf("%s cannot be negative, got %d", BeltDiskWidth, diskWidth)
	}
	interval := v.GetDuration(FrameInterval)
	if interval < minimumFrameInterval {
		return nil, fmt.Errorf("%s must be at least %s, got %q", FrameInterval, minimumFrameInterval, v.GetString(FrameInterval))
	}

	result := &Settings{
		Speed:             speed,
		BeltPolicy:        beltPolicy,
		DiskWidth:         diskWidth,
		FrameInterval:     interval,
		MessageLimit:      v.GetInt(MessageLimit),
		EditPolicy:        editPolicy,
		JournalPath:       v.GetString(RobotJournal),
		ControllerProcess: v.GetString(ControllerProcess),
		Source:            v.ConfigFileUsed(),
	}
	if len(result.JournalPath) > 0 {
		result.JournalPath = common.ExpandPath(result.JournalPath)
	}
	return result, nil
}

// Describe lists the resolved values in key order, for diagnostics.
func (it *Settings) Describe() [][2]string {
	source := it.Source
	if len(source) == 0 {
		source = "defaults"
	}
	journal := it.JournalPath
	if len(journal) == 0 {
		journal = "disabled"
	}
	return [][2]string{
		{"source", source},
		{BeltSpeed, fmt.Sprintf("%d frames/cell", it.Speed)},
		{BeltPolicy, it.BeltPolicy.String()},
		{BeltDiskWidth, diskWidthText(it.DiskWidth)},
		{FrameInterval, it.FrameInterval.String()},
		{MessageLimit, fmt.Sprintf("%d", it.MessageLimit)},
		{GridEditPolicy, it.EditPolicy.String()},
		{RobotJournal, journal},
		{ControllerProcess, it.ControllerProcess},
	}
}

func diskWidthText(width int) string {
	if width == 0 {
		return "auto"
	}
	return fmt.Sprintf("%d", width)
}
