// Package robot is the hand-off point between the operator dashboard and
// the belt controller. Driving the controller itself is not implemented:
// the dispatcher records and returns the grid unchanged.
package robot

import (
	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/journal"
	"github.com/joshyorko/sortbot/layout"
)

type Dispatcher struct {
	journal    *journal.Journal
	dispatched int
	last       gridcore.Grid
	failure    error
}

// NewDispatcher creates a dispatcher. A nil journal disables recording.
func NewDispatcher(record *journal.Journal) *Dispatcher {
	return &Dispatcher{journal: record}
}

// Dispatch hands the completed grid to the controller and returns the grid
// the controller accepted, which for now is always the input.
func (it *Dispatcher) Dispatch(grid gridcore.Grid) (gridcore.Grid, error) {
	fingerprint := layout.Fingerprint(grid)
	common.Log("robot: dispatching %s [%s]", grid, fingerprint)

	it.dispatched++
	it.last = grid
	it.failure = nil

	if it.journal == nil {
		return grid, nil
	}
	err := it.journal.Post(journal.Event{
		Event:       "handoff",
		Fingerprint: fingerprint,
		Compact:     grid.String(),
		Grid:        grid.Rows(),
	})
	if err != nil {
		it.failure = err
		return grid, err
	}
	common.Debug("journal: handoff %s recorded in %s", fingerprint, it.journal.Filename())
	return grid, nil
}

// Handoff adapts the dispatcher to the grid state machine. Journal failures
// do not stop the belt; they are logged as warnings.
func (it *Dispatcher) Handoff() gridcore.Handoff {
	return func(grid gridcore.Grid) {
		_, err := it.Dispatch(grid)
		common.Uncritical("journal", err)
	}
}

func (it *Dispatcher) Dispatched() int {
	return it.dispatched
}

// Failure is why the last handoff could not be recorded, or nil.
func (it *Dispatcher) Failure() error {
	return it.failure
}

func (it *Dispatcher) Last() gridcore.Grid {
	return it.last
}
