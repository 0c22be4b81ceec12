package progresscore

import (
	"testing"

	"github.com/joshyorko/sortbot/dashcore"
	"github.com/joshyorko/sortbot/gridcore"
)

func TestNewWorkflowTracker(t *testing.T) {
	tracker := NewWorkflowTracker()

	if tracker == nil {
		t.Fatal("NewWorkflowTracker returned nil")
	}
	if len(tracker.steps) != len(dashcore.WorkflowSteps) {
		t.Errorf("Expected %d steps, got %d", len(dashcore.WorkflowSteps), len(tracker.steps))
	}

	// All steps should start as pending
	for i, step := range tracker.steps {
		if step.Status != dashcore.StepPending {
			t.Errorf("Step %d should be pending, got %v", i, step.Status)
		}
		if step.Name != dashcore.WorkflowSteps[i] {
			t.Errorf("Step %d name mismatch: expected %s, got %s", i, dashcore.WorkflowSteps[i], step.Name)
		}
	}
}

func TestProgressTrackerForwardOnly(t *testing.T) {
	tracker := NewProgressTracker([]string{"Step 1", "Step 2"})

	if !tracker.StartStep(0, "Starting") {
		t.Error("Failed to start step 0")
	}
	if tracker.SetStep(0, dashcore.StepPending, "") {
		t.Error("Should not be able to set running step back to pending")
	}
	if !tracker.CompleteStep(0) {
		t.Error("Failed to complete step 0")
	}
	if tracker.SetStep(0, dashcore.StepRunning, "") {
		t.Error("Should not be able to set completed step back to running")
	}
	if progress := tracker.Progress(); progress < 0.5 {
		t.Errorf("Expected progress >= 0.5, got %f", progress)
	}
}

func TestNoteOnlyTouchesRunningSteps(t *testing.T) {
	tracker := NewProgressTracker([]string{"Step 1"})

	if tracker.Note(0, "early") {
		t.Error("Note should refuse a pending step")
	}
	tracker.StartStep(0, "first")
	if !tracker.Note(0, "second") {
		t.Error("Note should update a running step")
	}
	if got := tracker.Steps()[0].Message; got != "second" {
		t.Errorf("Expected message 'second', got %q", got)
	}
	if tracker.Note(5, "out of range") {
		t.Error("Note should refuse out of range index")
	}
}

func TestSyncFollowsOperatorWorkflow(t *testing.T) {
	tracker := NewWorkflowTracker()

	tracker.Sync(gridcore.PhaseEditing, 4)
	index, step := tracker.CurrentStep()
	if index != dashcore.StepFillMatrix || step.Message != "4/9 cells" {
		t.Errorf("Expected fill step with 4/9 cells, got %d %+v", index, step)
	}

	tracker.Sync(gridcore.PhaseEditing, 5)
	if _, step = tracker.CurrentStep(); step.Message != "5/9 cells" {
		t.Errorf("Expected fill message to follow cell count, got %q", step.Message)
	}

	tracker.Sync(gridcore.PhaseEditing, 9)
	if index, _ = tracker.CurrentStep(); index != dashcore.StepArmStart {
		t.Errorf("Expected arm step to run once matrix is full, got %d", index)
	}

	tracker.Sync(gridcore.PhaseArmed, 9)
	if _, step = tracker.CurrentStep(); step.Message != "press confirm again" {
		t.Errorf("Expected armed prompt, got %q", step.Message)
	}

	tracker.Sync(gridcore.PhaseStarted, 9)
	if index, _ = tracker.CurrentStep(); index != dashcore.StepBelt {
		t.Errorf("Expected belt step to run after start, got %d", index)
	}

	stats := tracker.Stats()
	if stats.Completed != 3 || stats.Running != 1 {
		t.Errorf("Expected 3 completed and 1 running, got %+v", stats)
	}
	if tracker.Progress() != 0.75 {
		t.Errorf("Expected progress 0.75, got %f", tracker.Progress())
	}
}

func TestSyncSkippingArmedPhase(t *testing.T) {
	tracker := NewWorkflowTracker()

	tracker.Sync(gridcore.PhaseStarted, 9)
	steps := tracker.Steps()
	for i := dashcore.StepFillMatrix; i <= dashcore.StepHandOff; i++ {
		if steps[i].Status != dashcore.StepComplete {
			t.Errorf("Step %s should be complete, got %v", steps[i].Name, steps[i].Status)
		}
	}
}

func TestResetAllowsReplay(t *testing.T) {
	tracker := NewWorkflowTracker()

	tracker.Sync(gridcore.PhaseStarted, 9)
	if tracker.Progress() == 0 {
		t.Error("Expected progress after start")
	}

	tracker.Reset()
	if tracker.Progress() != 0 {
		t.Errorf("Expected progress 0 after reset, got %f", tracker.Progress())
	}
	if index, _ := tracker.CurrentStep(); index != -1 {
		t.Errorf("Expected no running step after reset, got %d", index)
	}

	tracker.Sync(gridcore.PhaseEditing, 0)
	if index, _ := tracker.CurrentStep(); index != dashcore.StepFillMatrix {
		t.Errorf("Expected fill step after reset, got %d", index)
	}
}

func TestProgressTrackerFailStep(t *testing.T) {
	tracker := NewProgressTracker([]string{"Step 1", "Step 2"})

	tracker.StartStep(1, "Running")
	tracker.FailStep(1, "Motor fault")

	stats := tracker.Stats()
	if stats.Failed != 1 {
		t.Errorf("Expected failed=1, got %d", stats.Failed)
	}
	if stats.Pending != 1 {
		t.Errorf("Expected pending=1, got %d", stats.Pending)
	}
}

func TestFailedHandoffSurvivesSync(t *testing.T) {
	tracker := NewWorkflowTracker()
	tracker.Sync(gridcore.PhaseArmed, 9)

	if !tracker.FailStep(dashcore.StepHandOff, "journal not writable") {
		t.Fatal("Expected a pending step to be failed")
	}
	tracker.Sync(gridcore.PhaseStarted, 9)

	steps := tracker.Steps()
	if steps[dashcore.StepHandOff].Status != dashcore.StepFailed {
		t.Errorf("Expected hand off to stay failed, got %v", steps[dashcore.StepHandOff].Status)
	}
	if steps[dashcore.StepHandOff].Message != "journal not writable" {
		t.Errorf("Expected failure reason, got %q", steps[dashcore.StepHandOff].Message)
	}
	if index, _ := tracker.CurrentStep(); index != dashcore.StepBelt {
		t.Errorf("Expected belt to run after a failed hand off, got %d", index)
	}
	stats := tracker.Stats()
	if stats.Failed != 1 || stats.Completed != 2 || stats.Running != 1 {
		t.Errorf("Expected 2 completed, 1 failed, 1 running, got %+v", stats)
	}
	if tracker.Progress() != 0.5 {
		t.Errorf("Expected progress 0.5, got %f", tracker.Progress())
	}
}
