// Package dashcore provides shared dashboard types used by the interactive
// dashboard and the headless replay output.
package dashcore

import (
	"sync/atomic"
)

// activeDashboard tracks if a dashboard is currently active
// This is used to keep stdout quiet while the dashboard owns the terminal.
var activeDashboard atomic.Int32

// IsDashboardActive returns true if any dashboard is currently rendering
func IsDashboardActive() bool {
	return activeDashboard.Load() > 0
}

// SetDashboardActive increments or decrements the active dashboard counter
func SetDashboardActive(active bool) {
	if active {
		activeDashboard.Add(1)
	} else {
		activeDashboard.Add(-1)
	}
}

// StepStatus represents the current state of a workflow step
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepFailed
	StepSkipped
)

// Iconic controls whether to use Unicode icons or ASCII fallback
var Iconic = true

// String returns the visual representation of a step status
func (s StepStatus) String() string {
	if Iconic {
		switch s {
		case StepPending:
			return "○"
		case StepRunning:
			return "▶"
		case StepComplete:
			return "✓"
		case StepFailed:
			return "✗"
		case StepSkipped:
			return "⊘"
		default:
			return "○"
		}
	}

	switch s {
	case StepPending:
		return "o"
	case StepRunning:
		return ">"
	case StepComplete:
		return "+"
	case StepFailed:
		return "x"
	case StepSkipped:
		return "/"
	default:
		return "o"
	}
}

// Operator workflow, in the order the dashboard walks through it.
const (
	StepFillMatrix = iota
	StepArmStart
	StepHandOff
	StepBelt
)

// WorkflowSteps names the steps indexed by the Step* constants.
var WorkflowSteps = []string{
	"Fill matrix",
	"Arm start",
	"Hand off",
	"Belt",
}
