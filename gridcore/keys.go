package gridcore

import "strings"

// Key is the logical identity of an operator key press. Modifiers and
// mouse input are resolved by the input layer before reaching the grid.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyMarkA
	KeyMarkB
	KeyConfirm
	KeyQuit
	KeyRestart
)

var keyNames = map[Key]string{
	KeyNone:    "none",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyMarkA:   "mark-a",
	KeyMarkB:   "mark-b",
	KeyConfirm: "confirm",
	KeyQuit:    "quit",
	KeyRestart: "restart",
}

var keyAliases = map[string]Key{
	"up":      KeyUp,
	"k":       KeyUp,
	"down":    KeyDown,
	"j":       KeyDown,
	"left":    KeyLeft,
	"h":       KeyLeft,
	"right":   KeyRight,
	"l":       KeyRight,
	"mark-a":  KeyMarkA,
	"w":       KeyMarkA,
	"a":       KeyMarkA,
	"white":   KeyMarkA,
	"mark-b":  KeyMarkB,
	"b":       KeyMarkB,
	"black":   KeyMarkB,
	"confirm": KeyConfirm,
	"enter":   KeyConfirm,
	"quit":    KeyQuit,
	"q":       KeyQuit,
	"restart": KeyRestart,
	"tab":     KeyRestart,
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}

// ParseKey maps a key name or its usual alias to a Key. Unknown names map
// to KeyNone, which HandleKey ignores.
func ParseKey(name string) Key {
	if key, ok := keyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return key
	}
	return KeyNone
}
