// Package progresscore tracks the operator workflow shown in the state panel.
// Steps only move forward; a restart is an explicit Reset.
package progresscore

import (
	"fmt"
	"sync"

	"github.com/joshyorko/sortbot/dashcore"
	"github.com/joshyorko/sortbot/gridcore"
)

// ProgressTracker holds the workflow steps. The completed share never
// goes down until Reset.
type ProgressTracker struct {
	mu       sync.RWMutex
	steps    []TrackedStep
	progress float64
}

type TrackedStep struct {
	Name    string
	Status  dashcore.StepStatus
	Message string
}

// ProgressStats counts steps by status.
type ProgressStats struct {
	Total     int
	Completed int
	Failed    int
	Running   int
	Pending   int
	Progress  float64
}

func NewProgressTracker(stepNames []string) *ProgressTracker {
	steps := make([]TrackedStep, 0, len(stepNames))
	for _, name := range stepNames {
		steps = append(steps, TrackedStep{Name: name, Status: dashcore.StepPending})
	}
	return &ProgressTracker{steps: steps}
}

// NewWorkflowTracker tracks the standard operator workflow.
func NewWorkflowTracker() *ProgressTracker {
	return NewProgressTracker(dashcore.WorkflowSteps)
}

// forward lists the allowed moves: pending steps start or get skipped,
// running steps complete or fail; everything else is final.
func forward(from, to dashcore.StepStatus) bool {
	switch from {
	case dashcore.StepPending:
		return to == dashcore.StepRunning || to == dashcore.StepSkipped
	case dashcore.StepRunning:
		return to == dashcore.StepComplete || to == dashcore.StepFailed
	}
	return false
}

func done(status dashcore.StepStatus) bool {
	return status == dashcore.StepComplete || status == dashcore.StepSkipped
}

// SetStep moves step index to status. It refuses backward moves and
// unknown steps.
func (pt *ProgressTracker) SetStep(index int, status dashcore.StepStatus, message string) bool {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if index < 0 || index >= len(pt.steps) || !forward(pt.steps[index].Status, status) {
		return false
	}
	pt.steps[index].Status = status
	pt.steps[index].Message = message

	completed := 0
	for _, step := range pt.steps {
		if done(step.Status) {
			completed++
		}
	}
	if share := float64(completed) / float64(len(pt.steps)); share > pt.progress {
		pt.progress = share
	}
	return true
}

// Note replaces the message of a running step without changing its status.
func (pt *ProgressTracker) Note(index int, message string) bool {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if index < 0 || index >= len(pt.steps) || pt.steps[index].Status != dashcore.StepRunning {
		return false
	}
	pt.steps[index].Message = message
	return true
}

func (pt *ProgressTracker) StartStep(index int, message string) bool {
	return pt.SetStep(index, dashcore.StepRunning, message)
}

func (pt *ProgressTracker) CompleteStep(index int) bool {
	return pt.SetStep(index, dashcore.StepComplete, "")
}

// FailStep ends a step with reason. A pending step is started first so
// the failure shows where the workflow stopped.
func (pt *ProgressTracker) FailStep(index int, reason string) bool {
	pt.StartStep(index, "")
	return pt.SetStep(index, dashcore.StepFailed, reason)
}

func (pt *ProgressTracker) finish(index int) {
	pt.StartStep(index, "")
	pt.CompleteStep(index)
}

// Sync brings the workflow steps up to the given grid phase. It only ever
// moves steps forward; call Reset when the operator restarts.
func (pt *ProgressTracker) Sync(phase gridcore.Phase, filled int) {
	cells := fmt.Sprintf("%d/%d cells", filled, gridcore.Size*gridcore.Size)
	if filled < gridcore.Size*gridcore.Size {
		if !pt.StartStep(dashcore.StepFillMatrix, cells) {
			pt.Note(dashcore.StepFillMatrix, cells)
		}
		return
	}
	pt.finish(dashcore.StepFillMatrix)

	switch phase {
	case gridcore.PhaseEditing:
		pt.StartStep(dashcore.StepArmStart, "press confirm")
	case gridcore.PhaseArmed:
		if !pt.StartStep(dashcore.StepArmStart, "press confirm again") {
			pt.Note(dashcore.StepArmStart, "press confirm again")
		}
	case gridcore.PhaseStarted:
		pt.finish(dashcore.StepArmStart)
		pt.finish(dashcore.StepHandOff)
		pt.StartStep(dashcore.StepBelt, "disk on belt")
	}
}

// Progress is the completed share of the workflow, from 0 to 1.
func (pt *ProgressTracker) Progress() float64 {
	pt.mu.RLock()
	defer pt.mu.RUnlock()
	return pt.progress
}

func (pt *ProgressTracker) Steps() []TrackedStep {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	result := make([]TrackedStep, len(pt.steps))
	copy(result, pt.steps)
	return result
}

// CurrentStep is the first running step, or -1 and nil.
func (pt *ProgressTracker) CurrentStep() (int, *TrackedStep) {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	for index, step := range pt.steps {
		if step.Status == dashcore.StepRunning {
			return index, &step
		}
	}
	return -1, nil
}

func (pt *ProgressTracker) Stats() ProgressStats {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	stats := ProgressStats{Total: len(pt.steps), Progress: pt.progress}
	for _, step := range pt.steps {
		switch {
		case done(step.Status):
			stats.Completed++
		case step.Status == dashcore.StepFailed:
			stats.Failed++
		case step.Status == dashcore.StepRunning:
			stats.Running++
		case step.Status == dashcore.StepPending:
			stats.Pending++
		}
	}
	return stats
}

// Reset puts every step back to pending. The operator restart is the only
// caller.
func (pt *ProgressTracker) Reset() {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	for index := range pt.steps {
		pt.steps[index].Status = dashcore.StepPending
		pt.steps[index].Message = ""
	}
	pt.progress = 0
}
