package wizard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/pretty"
)

var (
	ErrNotInteractive = errors.New("choosing requires an interactive terminal")
	ErrNoActions      = errors.New("nothing to choose from")
)

// Action is one numbered choice.
type Action struct {
	Key         string
	Name        string
	Description string
}

// Recovery keys offered when a layout file cannot be used.
const (
	RecoverEmpty = "empty"
	RecoverAbort = "abort"
)

// LayoutRecovery lists what the operator can do about a broken layout.
func LayoutRecovery() []Action {
	return []Action{
		{Key: RecoverEmpty, Name: "Start with an empty matrix", Description: "Key the parts in on the dashboard."},
		{Key: RecoverAbort, Name: "Abort", Description: "Fix the layout file and start again."},
	}
}

func choiceValidator(count int) Validator {
	return func(input string) bool {
		number, err := strconv.Atoi(input)
		if err != nil || len(input) > 4 || number < 1 || number > count {
			common.Stdout("%sPick a number between 1 and %d.%s\n\n", pretty.Red, count, pretty.Reset)
			return false
		}
		return true
	}
}

// ChooseAction lists actions with numbers and returns the picked one.
// An empty answer picks the first.
func ChooseAction(prompt string, actions []Action) (*Action, error) {
	if !pretty.Interactive {
		return nil, ErrNotInteractive
	}
	if len(actions) == 0 {
		return nil, ErrNoActions
	}

	common.Stdout("%s%s%s\n\n", pretty.White, prompt, pretty.Reset)
	for at, action := range actions {
		common.Stdout("  %s%d)%s %s\n", pretty.Green, at+1, pretty.Reset, action.Name)
		if len(action.Description) > 0 {
			common.Stdout("     %s%s%s\n", pretty.Grey, action.Description, pretty.Reset)
		}
	}
	common.Stdout("\n")

	reply, err := ask(fmt.Sprintf("Choice [1-%d]", len(actions)), "1", choiceValidator(len(actions)))
	if err != nil {
		return nil, err
	}
	index, _ := strconv.Atoi(reply)
	return &actions[index-1], nil
}

// AskRecovery shows err and lets the operator pick how to go on.
func AskRecovery(err error, options []Action) (*Action, error) {
	if !pretty.Interactive {
		return nil, ErrNotInteractive
	}
	common.Stdout("%sError: %v%s\n\n", pretty.Red, err, pretty.Reset)
	return ChooseAction("How do you want to continue?", options)
}
