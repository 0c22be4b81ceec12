package pretty

import (
	"fmt"
	"os"

	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/dashcore"
	"github.com/joshyorko/sortbot/logbuf"
	"github.com/mattn/go-isatty"
)

var (
	Colorless   bool
	Iconic      bool
	Disabled    bool
	Interactive bool
	White       string
	Grey        string
	Black       string
	Red         string
	Green       string
	Blue        string
	Yellow      string
	Cyan        string
	Reset       string
	Bold        string
	Faint       string
)

func csi(value string) string {
	return fmt.Sprintf("\x1b[%s", value)
}

func localSetup(interactive bool) {
	Iconic = interactive && os.Getenv("TERM") != "linux"
	dashcore.Iconic = Iconic
	logbuf.Iconic = Iconic
}

// Setup decides interactivity and color from the attached streams and the
// environment. It must run before any command output.
func Setup(nocolor bool) {
	stdin := isatty.IsTerminal(os.Stdin.Fd())
	stdout := isatty.IsTerminal(os.Stdout.Fd())
	stderr := isatty.IsTerminal(os.Stderr.Fd())

	Disabled = nocolor
	Colorless = os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == ""

	// The dashboard reads keys from stdin and paints to stdout, so all
	// three streams must be terminals for it to run safely.
	Interactive = stdin && stdout && stderr

	localSetup(Interactive)

	common.Trace("Interactive mode enabled: %v; colors enabled: %v; icons enabled: %v", Interactive, !Disabled, Iconic)
	if stdout && !Colorless && !Disabled {
		White = csi("97m")
		Grey = csi("90m")
		Black = csi("30m")
		Red = csi("91m")
		Green = csi("92m")
		Yellow = csi("93m")
		Blue = csi("94m")
		Cyan = csi("96m")
		Reset = csi("0m")
		Bold = csi("1m")
		Faint = csi("2m")
	}
}

// Ok reports a successful command.
func Ok() {
	common.Log("%sOK.%s", Green, Reset)
}

// Warning outputs a yellow warning line.
func Warning(format string, rest ...interface{}) {
	message := format
	if len(rest) > 0 {
		message = fmt.Sprintf(format, rest...)
	}
	common.Log("%sWarning: %s%s", Yellow, message, Reset)
}

// Header outputs a header text in Bold with a newline.
func Header(text string) {
	common.Stdout("%s%s%s\n", Bold, text, Reset)
}
