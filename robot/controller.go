package robot

import (
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// ControllerStatus describes whether a controller process is present.
type ControllerStatus struct {
	Name    string
	Running bool
	Pid     int
}

func (it ControllerStatus) String() string {
	if len(it.Name) == 0 {
		return "not configured"
	}
	if it.Running {
		return it.Name + " running"
	}
	return it.Name + " not running"
}

// Fault is a wiring fault when a configured controller is not running.
func (it ControllerStatus) Fault() error {
	if len(it.Name) == 0 || it.Running {
		return nil
	}
	return Fault{Kind: WiringFault, Detail: it.Name + " is not running"}
}

// FindController looks for a process whose executable matches name. The
// dashboard only reports presence; it never signals the controller.
func FindController(name string) (ControllerStatus, error) {
	status := ControllerStatus{Name: name}
	if len(name) == 0 {
		return status, nil
	}
	processes, err := ps.Processes()
	if err != nil {
		return status, err
	}
	want := normalizeExecutable(name)
	for _, process := range processes {
		if normalizeExecutable(process.Executable()) == want {
			status.Running = true
			status.Pid = process.Pid()
			break
		}
	}
	return status, nil
}

func normalizeExecutable(name string) string {
	base := strings.ToLower(filepath.Base(name))
	return strings.TrimSuffix(base, ".exe")
}
