package common

import "fmt"

// ExitCode is panicked by pretty.Exit and recovered in main, so that
// deferred terminal and log cleanup runs before the process exits.
type ExitCode struct {
	Code    int
	Message string
}

func (it ExitCode) ShowMessage() {
	if len(it.Message) == 0 {
		return
	}
	if it.Code == 0 {
		Log("%s", it.Message)
	} else {
		Fatal("exit", fmt.Errorf("%s", it.Message))
	}
}

func (it ExitCode) Error() string {
	return fmt.Sprintf("exit %d: %s", it.Code, it.Message)
}
