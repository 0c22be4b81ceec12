package pretty

import (
	"os"

	"github.com/joshyorko/sortbot/common"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// TerminalSize returns the terminal size in columns and rows. It tries the
// standard streams first, then the controlling terminal, and falls back to
// 80x24 when none answers.
func TerminalSize() (width, height int) {
	for _, stream := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		w, h, err := term.GetSize(int(stream.Fd()))
		if err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	w, h, err := controllingTerminalSize()
	if err == nil && w > 0 && h > 0 {
		return w, h
	}
	common.Trace("Failed to get terminal size, using fallback: %v", err)
	return fallbackWidth, fallbackHeight
}
