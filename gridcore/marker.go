package gridcore

import (
	"fmt"
	"strings"
)

// Marker is the value of one grid cell.
type Marker uint8

const (
	Empty Marker = iota
	TypeA
	TypeB
)

func (m Marker) String() string {
	switch m {
	case Empty:
		return "empty"
	case TypeA:
		return "A"
	case TypeB:
		return "B"
	default:
		return "???"
	}
}

// Symbol is the single character used in the compact grid notation.
func (m Marker) Symbol() byte {
	switch m {
	case TypeA:
		return 'A'
	case TypeB:
		return 'B'
	default:
		return '.'
	}
}

func (m Marker) Valid() bool {
	return m <= TypeB
}

// ParseMarker accepts the symbol, the name or the numeric form of a marker.
// White and black are the colors the belt operators know them by.
func ParseMarker(text string) (Marker, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case ".", "_", "0", "empty", "":
		return Empty, nil
	case "a", "1", "white", "w":
		return TypeA, nil
	case "b", "2", "black":
		return TypeB, nil
	}
	return Empty, fmt.Errorf("%w: unknown marker %q", ErrBadGrid, text)
}
