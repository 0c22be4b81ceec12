// Package wizard holds the line prompts sortbot asks outside the
// dashboard: confirmations, layout recovery and preset choice. Every
// prompt refuses to block when the terminal is not interactive.
package wizard

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/pretty"
)

const (
	// an answer that is only a line ending takes the default
	UNIX_NEWLINE    = "\n"
	WINDOWS_NEWLINE = "\r\n"

	newline = '\n'
)

var (
	// layout names end up in file names and journal entries
	namePattern = regexp.MustCompile("^[\\w-]+$")

	// one shared reader, so buffered answers are not lost between prompts
	inputMu sync.Mutex
	input   = bufio.NewReader(os.Stdin)
)

// Validator checks a trimmed answer. It prints its own complaint and
// returns false to have the question asked again.
type Validator func(string) bool

// SetInput replaces where answers are read from. Tests and scripted runs
// use it; everyone else reads stdin.
func SetInput(source io.Reader) {
	inputMu.Lock()
	defer inputMu.Unlock()
	input = bufio.NewReader(source)
}

// readReply reads one line, line ending included.
func readReply() (string, error) {
	inputMu.Lock()
	defer inputMu.Unlock()
	return input.ReadString(newline)
}

// memberValidation accepts only the listed answers, case sensitive.
func memberValidation(members []string, erratic string) Validator {
	return func(input string) bool {
		for _, member := range members {
			if input == member {
				return true
			}
		}
		common.Stdout("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
		return false
	}
}

// regexpValidation accepts answers matching validator.
func regexpValidation(validator *regexp.Regexp, erratic string) Validator {
	return func(input string) bool {
		if !validator.MatchString(input) {
			common.Stdout("%s%s%s\n\n", pretty.Red, erratic, pretty.Reset)
			return false
		}
		return true
	}
}

// ask repeats question until validator accepts the answer. An empty
// answer means defaults; a read error (EOF included) ends the loop.
func ask(question, defaults string, validator Validator) (string, error) {
	for {
		common.Stdout("%s? %s%s %s[%s]:%s ", pretty.Green, pretty.White, question, pretty.Grey, defaults, pretty.Reset)
		reply, err := readReply()
		common.Stdout("\n")
		if err != nil {
			return "", err
		}
		if reply == UNIX_NEWLINE || reply == WINDOWS_NEWLINE {
			reply = defaults
		}
		reply = strings.TrimSpace(reply)
		if !validator(reply) {
			continue
		}
		return reply, nil
	}
}

// ValidateLayoutName accepts letters, digits, underscores and hyphens.
func ValidateLayoutName() Validator {
	return regexpValidation(
		namePattern,
		"Invalid layout name. Only alphanumeric characters, underscores, and hyphens are allowed.",
	)
}

// AskLayoutName prompts for a layout name, offering defaults.
func AskLayoutName(defaults string) (string, error) {
	if !pretty.Interactive {
		return defaults, nil
	}
	return ask("Layout name", defaults, ValidateLayoutName())
}
