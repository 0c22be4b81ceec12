package interactive

// Rect is the outer size of a panel, borders included.
type Rect struct {
	Width  int
	Height int
}

// Inner is the area inside the border.
func (r Rect) Inner() Rect {
	return Rect{Width: atLeast(r.Width-2, 1), Height: atLeast(r.Height-2, 1)}
}

// Geometry splits the terminal the same way on every frame: the input
// matrix over the belt on the left half; the RGB chart over the state,
// progress and message panels on the right half.
type Geometry struct {
	Matrix   Rect
	Belt     Rect
	Chart    Rect
	State    Rect
	Progress Rect
	Messages Rect
}

const (
	chromeLines = 2 // header + help line
	minWidth    = 40
	minHeight   = 16
)

func atLeast(value, minimum int) int {
	if value < minimum {
		return minimum
	}
	return value
}

func percent(total, share int) int {
	return total * share / 100
}

// Layout computes panel sizes for a terminal of width x height.
func Layout(width, height int) Geometry {
	width = atLeast(width, minWidth)
	body := atLeast(height, minHeight) - chromeLines

	left := width / 2
	right := width - left

	matrix := percent(body, 80)
	top := percent(body, 40)
	bottom := body - top
	stateWidth := right / 2
	state := percent(bottom, 30)

	return Geometry{
		Matrix:   Rect{Width: left, Height: matrix},
		Belt:     Rect{Width: left, Height: body - matrix},
		Chart:    Rect{Width: right, Height: top},
		State:    Rect{Width: stateWidth, Height: state},
		Progress: Rect{Width: stateWidth, Height: bottom - state},
		Messages: Rect{Width: right - stateWidth, Height: bottom},
	}
}

// Track is the belt area: one title row, the rest is the track the disk
// travels along.
func (g Geometry) Track() Rect {
	inner := g.Belt.Inner()
	return Rect{Width: inner.Width, Height: atLeast(inner.Height-1, 1)}
}

// DiskWidth is the configured width, or twice the track height when the
// setting is zero, so the disk looks round in a terminal cell grid.
func (g Geometry) DiskWidth(configured int) int {
	if configured > 0 {
		return configured
	}
	return 2 * g.Track().Height
}
