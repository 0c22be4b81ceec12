// Package beltcore drives the disk-on-a-belt indicator shown once the
// sorting run has started. Motion is counted in frames, not wall time, so
// the visible speed follows the dashboard frame interval.
package beltcore

import (
	"fmt"
	"strings"
)

// DefaultSpeed is the number of frames per one-cell step of the disk.
const DefaultSpeed = 10

// Policy decides what happens when the disk reaches the end of the belt.
type Policy int

const (
	Loop Policy = iota
	Hold
)

func (p Policy) String() string {
	switch p {
	case Loop:
		return "loop"
	case Hold:
		return "hold"
	default:
		return "unknown"
	}
}

func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "loop":
		return Loop, nil
	case "hold", "stop":
		return Hold, nil
	}
	return Loop, fmt.Errorf("unknown belt policy %q (expected loop or hold)", name)
}

// Animation is the belt state. Position is the left edge of the disk.
// Invariants: 0 <= Position <= trackWidth, 0 <= FrameCounter <= Speed.
type Animation struct {
	Position     int
	Speed        int
	FrameCounter int
	Policy       Policy
}

// NewAnimation starts the disk at the left edge. Speeds below one frame
// per step run at one.
func NewAnimation(speed int, policy Policy) *Animation {
	return &Animation{
		Speed:  atLeastOne(speed),
		Policy: policy,
	}
}

func (a *Animation) Reset() {
	a.Position = 0
	a.FrameCounter = 0
}

// AtEnd is true when the disk has no room left to move right.
func (a *Animation) AtEnd(trackWidth, diskWidth int) bool {
	return a.Position+diskWidth >= trackWidth
}

// AdvanceFrame moves the animation one frame forward on a belt of
// trackWidth cells carrying a disk diskWidth cells wide.
func (a *Animation) AdvanceFrame(trackWidth, diskWidth int) {
	a.Speed = atLeastOne(a.Speed)
	if !a.AtEnd(trackWidth, diskWidth) {
		a.FrameCounter++
		if a.FrameCounter >= a.Speed {
			a.FrameCounter = 0
			a.Position++
		}
		return
	}
	switch a.Policy {
	case Hold:
		a.Position = parking(trackWidth, diskWidth)
	default:
		a.Position = 0
	}
}

func atLeastOne(speed int) int {
	if speed < 1 {
		return 1
	}
	return speed
}

// parking is the last position a disk can take on the belt. A belt that
// shrank under the disk pulls it back.
func parking(trackWidth, diskWidth int) int {
	last := trackWidth - diskWidth
	if last < 0 {
		return 0
	}
	return last
}

// Progress is how far along the belt the disk is, from 0 to 1.
func (a *Animation) Progress(trackWidth, diskWidth int) float64 {
	span := trackWidth - diskWidth
	if span <= 0 {
		return 0
	}
	ratio := float64(a.Position) / float64(span)
	if ratio > 1 {
		return 1
	}
	return ratio
}
