package gridcore

import (
	"fmt"
	"strings"
)

// EditPolicy decides whether the matrix stays editable once the belt runs.
type EditPolicy int

const (
	LockAfterStart EditPolicy = iota
	EditableAfterStart
)

func (p EditPolicy) String() string {
	switch p {
	case LockAfterStart:
		return "lock"
	case EditableAfterStart:
		return "editable"
	default:
		return "unknown"
	}
}

func ParseEditPolicy(name string) (EditPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lock", "locked":
		return LockAfterStart, nil
	case "editable", "open":
		return EditableAfterStart, nil
	}
	return LockAfterStart, fmt.Errorf("unknown edit policy %q (expected lock or editable)", name)
}

// Phase is the operator-visible stage of the start sequence.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseArmed
	PhaseStarted
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "Editing"
	case PhaseArmed:
		return "Armed"
	case PhaseStarted:
		return "Running"
	default:
		return "Unknown"
	}
}

// Outcome tells the caller what a key press did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeChanged
	OutcomeArmed
	OutcomeStarted
	OutcomeQuit
	OutcomeRestart
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeChanged:
		return "changed"
	case OutcomeArmed:
		return "armed"
	case OutcomeStarted:
		return "started"
	case OutcomeQuit:
		return "quit"
	case OutcomeRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Handoff receives the completed grid at the moment the belt starts.
type Handoff func(Grid)

type Cursor struct {
	Row int
	Col int
}

// Move returns the cursor shifted by the deltas, clamped to the grid.
func (c Cursor) Move(rows, cols int) Cursor {
	return Cursor{Row: clamp(c.Row+rows), Col: clamp(c.Col+cols)}
}

func clamp(value int) int {
	if value < 0 {
		return 0
	}
	if value >= Size {
		return Size - 1
	}
	return value
}

// State is the input matrix together with the start latch.
// Invariant: Started implies ConfirmArmed.
type State struct {
	Cells        Grid
	Cursor       Cursor
	ConfirmArmed bool
	Started      bool
	Policy       EditPolicy

	handoff Handoff
}

func NewState(policy EditPolicy, handoff Handoff) *State {
	return &State{
		Policy:  policy,
		handoff: handoff,
	}
}

func (s *State) IsFull() bool {
	return s.Cells.IsFull()
}

func (s *State) Phase() Phase {
	switch {
	case s.Started:
		return PhaseStarted
	case s.ConfirmArmed:
		return PhaseArmed
	default:
		return PhaseEditing
	}
}

// Reset returns to an empty matrix with the cursor at the origin. Policy
// and handoff are kept.
func (s *State) Reset() {
	s.Cells = Grid{}
	s.Cursor = Cursor{}
	s.ConfirmArmed = false
	s.Started = false
}

// Load replaces the matrix with a prepared layout. It is refused once the
// belt has started.
func (s *State) Load(grid Grid) error {
	if s.Started {
		return fmt.Errorf("cannot load layout %s: belt already started", grid)
	}
	if err := grid.Validate(); err != nil {
		return err
	}
	s.Cells = grid
	return nil
}

func (s *State) editable() bool {
	return !s.Started || s.Policy == EditableAfterStart
}

// HandleKey applies one key press. Keys that do not apply in the current
// phase are ignored and report OutcomeNone.
func (s *State) HandleKey(key Key) Outcome {
	switch key {
	case KeyQuit:
		return OutcomeQuit
	case KeyRestart:
		s.Reset()
		return OutcomeRestart
	}

	if !s.editable() {
		return OutcomeNone
	}

	switch key {
	case KeyUp:
		return s.move(-1, 0)
	case KeyDown:
		return s.move(1, 0)
	case KeyLeft:
		return s.move(0, -1)
	case KeyRight:
		return s.move(0, 1)
	case KeyMarkA:
		return s.mark(TypeA)
	case KeyMarkB:
		return s.mark(TypeB)
	case KeyConfirm:
		return s.confirm()
	}
	return OutcomeNone
}

func (s *State) move(rows, cols int) Outcome {
	next := s.Cursor.Move(rows, cols)
	if next == s.Cursor {
		return OutcomeNone
	}
	s.Cursor = next
	return OutcomeChanged
}

func (s *State) mark(marker Marker) Outcome {
	cell := &s.Cells[s.Cursor.Row][s.Cursor.Col]
	if *cell == marker {
		return OutcomeNone
	}
	*cell = marker
	return OutcomeChanged
}

func (s *State) confirm() Outcome {
	if s.Started || !s.IsFull() {
		return OutcomeNone
	}
	if !s.ConfirmArmed {
		s.ConfirmArmed = true
		return OutcomeArmed
	}
	if s.handoff != nil {
		s.handoff(s.Cells)
	}
	s.Started = true
	return OutcomeStarted
}
