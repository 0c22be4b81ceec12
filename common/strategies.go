package common

import (
	"os"
	"path/filepath"
)

const (
	SORTBOT_HOME_VARIABLE = `SORTBOT_HOME`
	SORTBOT_PRODUCT_NAME  = `SORTBOT_PRODUCT_NAME`
	SORTBOT_NAME          = `sortbot`

	defaultHomeLocation = "$HOME/.sortbot"
)

type (
	ProductStrategy interface {
		Name() string
		ForceHome(string)
		HomeVariable() string
		Home() string
		SettingsFile() string
		JournalFile() string
	}

	sortbotStrategy struct {
		forcedHome string
	}
)

func SortbotMode() ProductStrategy {
	return &sortbotStrategy{}
}

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}

func (it *sortbotStrategy) Name() string {
	if value := os.Getenv(SORTBOT_PRODUCT_NAME); len(value) > 0 {
		return value
	}
	return SORTBOT_NAME
}

func (it *sortbotStrategy) ForceHome(value string) {
	it.forcedHome = value
}

func (it *sortbotStrategy) HomeVariable() string {
	return SORTBOT_HOME_VARIABLE
}

func (it *sortbotStrategy) Home() string {
	if len(it.forcedHome) > 0 {
		return ExpandPath(it.forcedHome)
	}
	home := os.Getenv(SORTBOT_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func (it *sortbotStrategy) SettingsFile() string {
	return filepath.Join(it.Home(), "sortbot.yaml")
}

func (it *sortbotStrategy) JournalFile() string {
	return filepath.Join(it.Home(), "journal", "handoffs.yaml")
}
