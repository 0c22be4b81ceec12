//go:build !unix

package pretty

import "errors"

func controllingTerminalSize() (int, int, error) {
	return 0, 0, errors.New("no controlling terminal lookup on this platform")
}
