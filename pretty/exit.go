package pretty

import (
	"fmt"

	"github.com/joshyorko/sortbot/common"
)

// ExitMessage unwinds to main's exit protection, which prints message as
// is and exits with code after deferred cleanup has run.
func ExitMessage(code int, message string) {
	panic(common.ExitCode{
		Code:    code,
		Message: message,
	})
}

// Exit is ExitMessage with a printf style message.
func Exit(code int, format string, rest ...interface{}) {
	ExitMessage(code, fmt.Sprintf(format, rest...))
}

// Guard exits with code and message unless truth holds.
func Guard(truth bool, code int, format string, rest ...interface{}) {
	if !truth {
		Exit(code, format, rest...)
	}
}
