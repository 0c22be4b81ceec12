package dashcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepStatusFallsBackToASCII(t *testing.T) {
	defer func() { Iconic = true }()

	assert.Equal(t, "✓", StepComplete.String())
	Iconic = false
	assert.Equal(t, "+", StepComplete.String())
	assert.Equal(t, ">", StepRunning.String())
}

func TestDashboardActiveCounter(t *testing.T) {
	assert.False(t, IsDashboardActive())
	SetDashboardActive(true)
	assert.True(t, IsDashboardActive())
	SetDashboardActive(false)
	assert.False(t, IsDashboardActive())
}

func TestWorkflowStepsMatchIndexes(t *testing.T) {
	assert.Len(t, WorkflowSteps, StepBelt+1)
	assert.Equal(t, "Hand off", WorkflowSteps[StepHandOff])
}
