package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joshyorko/sortbot/dashcore"
	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/layout"
	"github.com/joshyorko/sortbot/logbuf"
)

// RGBSample is the static color reading shown in the chart panel.
type RGBSample struct {
	Label string
	Value int
}

var (
	rgbSamples = []RGBSample{{"R", 2}, {"G", 4}, {"B", 3}}
	rgbMaximum = 4

	// progressGrid is a placeholder until the controller reports sorted parts.
	progressGrid = gridcore.FilledWith(gridcore.TypeB)
)

const (
	barWidth = 3
	barGap   = 2
)

// panel draws a bordered box of exactly r, with the title on the first
// inner line and body clipped to what fits.
func panel(frame, titleStyle lipgloss.Style, title, body string, r Rect) string {
	inner := r.Inner()
	content := titleStyle.Render(title)
	if len(body) > 0 {
		content += "\n" + body
	}
	clipped := lipgloss.NewStyle().
		MaxWidth(inner.Width).
		MaxHeight(inner.Height).
		Render(content)
	return frame.
		Width(inner.Width).
		Height(inner.Height).
		Render(clipped)
}

// fillBlock renders a width x height block in style with label centered.
func fillBlock(style lipgloss.Style, width, height int, label string) string {
	width = atLeast(width, 1)
	height = atLeast(height, 1)
	middle := (height - 1) / 2
	lines := make([]string, height)
	for row := range lines {
		text := strings.Repeat(" ", width)
		if row == middle && len(label) > 0 {
			pad := (width - lipgloss.Width(label)) / 2
			if pad < 0 {
				pad = 0
			}
			text = strings.Repeat(" ", pad) + label + strings.Repeat(" ", atLeast(width-pad-lipgloss.Width(label), 0))
		}
		lines[row] = style.Render(text)
	}
	return strings.Join(lines, "\n")
}

func markerLabel(marker gridcore.Marker) string {
	return string(marker.Symbol())
}

// renderGrid draws a 3x3 matrix into an area of width x height. A cursor
// is drawn only when highlight is set.
func (a *App) renderGrid(grid gridcore.Grid, cursor gridcore.Cursor, highlight bool, width, height int) string {
	cellWidth := atLeast(width/gridcore.Size, 3)
	cellHeight := atLeast(height/gridcore.Size, 3)

	rows := make([]string, 0, gridcore.Size)
	for r := 0; r < gridcore.Size; r++ {
		cells := make([]string, 0, gridcore.Size)
		for c := 0; c < gridcore.Size; c++ {
			marker := grid[r][c]
			frame := a.styles.Cell
			if highlight && cursor.Row == r && cursor.Col == c {
				frame = a.styles.CellCursor
			}
			block := fillBlock(a.styles.MarkerStyle(marker), cellWidth-2, cellHeight-2, markerLabel(marker))
			cells = append(cells, frame.Render(block))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderMatrix(r Rect) string {
	inner := r.Inner()
	body := a.renderGrid(a.grid.Cells, a.grid.Cursor, !a.grid.Started, inner.Width, inner.Height-1)
	return panel(a.styles.Panel, a.styles.PanelTitle, "Input matrix", body, r)
}

func (a *App) renderProgressMatrix(r Rect) string {
	inner := r.Inner()
	body := a.renderGrid(progressGrid, gridcore.Cursor{}, false, inner.Width, inner.Height-1)
	return panel(a.styles.Panel, a.styles.PanelTitle, "Current progress", body, r)
}

// renderChart draws vertical bars scaled to rgbMaximum.
func (a *App) renderChart(r Rect) string {
	inner := r.Inner()
	levels := atLeast(inner.Height-2, 1)

	lines := make([]string, 0, levels+1)
	for row := 0; row < levels; row++ {
		threshold := levels - row
		var b strings.Builder
		for i, sample := range rgbSamples {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", barGap))
			}
			height := sample.Value * levels / rgbMaximum
			if height >= threshold {
				b.WriteString(a.styles.Bar.Render(strings.Repeat(barGlyph(), barWidth)))
			} else {
				b.WriteString(strings.Repeat(" ", barWidth))
			}
		}
		lines = append(lines, b.String())
	}

	labels := make([]string, 0, len(rgbSamples))
	for _, sample := range rgbSamples {
		labels = append(labels, fmt.Sprintf("%-*s", barWidth, fmt.Sprintf("%s%d", sample.Label, sample.Value)))
	}
	lines = append(lines, strings.Join(labels, strings.Repeat(" ", barGap)))

	return panel(a.styles.Panel, a.styles.PanelTitle, "RGB Chart", strings.Join(lines, "\n"), r)
}

func barGlyph() string {
	if dashcore.Iconic {
		return "█"
	}
	return "#"
}

// StateLabel is the one-line phase summary, e.g. "[State] Armed".
func (a *App) StateLabel() string {
	return fmt.Sprintf("[State] %s", a.grid.Phase())
}

func (a *App) renderState(r Rect) string {
	lines := []string{a.StateLabel()}
	if a.grid.IsFull() {
		lines = append(lines, a.styles.Subtle.Render("layout "+layout.Fingerprint(a.grid.Cells)))
	}
	for _, step := range a.tracker.Steps() {
		line := a.styles.StepIcon(step.Status, a.spinner.View()) + " " + step.Name
		if step.Status == dashcore.StepRunning && len(step.Message) > 0 {
			line += " - " + step.Message
		}
		lines = append(lines, a.styles.StepStyle(step.Status).Render(line))
	}
	if len(a.controller.Name) > 0 {
		lines = append(lines, a.styles.Subtle.Render(a.controller.String()))
	}
	if summary := OutputSummary(a.messages.Stats()); len(summary) > 0 {
		lines = append(lines, a.styles.LevelStyle(logbuf.LogWarn).Render(summary))
	}
	return panel(a.styles.Panel, a.styles.PanelTitle, "Current state", strings.Join(lines, "\n"), r)
}

// OutputSummary counts warnings and errors in the machine output, or is
// empty when there are none.
func OutputSummary(stats logbuf.LogStats) string {
	parts := []string{}
	if stats.Warns > 0 {
		parts = append(parts, plural(stats.Warns, "warning"))
	}
	if stats.Errors > 0 {
		parts = append(parts, plural(stats.Errors, "error"))
	}
	return strings.Join(parts, ", ")
}

func plural(count int, noun string) string {
	if count == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", count, noun)
}

// MessageLine formats one entry of the machine output log.
func MessageLine(entry logbuf.LogEntry) string {
	text := entry.Message
	if len(entry.Source) > 0 {
		text = entry.Source + ": " + text
	}
	return fmt.Sprintf("[message %d] %s", entry.Seq, text)
}

func (a *App) renderMessages(r Rect) string {
	visible := atLeast(r.Inner().Height-1, 1)
	entries := a.messages.Recent(visible)
	if len(entries) == 0 {
		return panel(a.styles.Panel, a.styles.PanelTitle, "Machine output", a.styles.Subtle.Render("No messages yet..."), r)
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, a.styles.LevelStyle(entry.Level).Render(entry.Level.Icon()+" "+MessageLine(entry)))
	}
	return panel(a.styles.Panel, a.styles.PanelTitle, "Machine output", strings.Join(lines, "\n"), r)
}

// renderBelt is empty while editing, a warning once armed and the moving
// disk once started.
func (a *App) renderBelt(r Rect) string {
	switch {
	case a.grid.Started:
		return a.renderDisk(r)
	case a.grid.ConfirmArmed:
		text := "About to hand the grid to the robot.\nPress 'Enter' to proceed."
		body := lipgloss.NewStyle().
			Width(r.Inner().Width).
			Align(lipgloss.Center).
			Render(a.styles.Warning.Render(text))
		return panel(a.styles.AlertPanel, a.styles.AlertTitle, "Attention", body, r)
	default:
		return panel(a.styles.Panel, a.styles.PanelTitle, "Disk position", a.styles.Subtle.Render("Belt idle"), r)
	}
}

const diskTitle = "Disk position"

func (a *App) renderDisk(r Rect) string {
	geometry := a.geometry()
	track := geometry.Track()
	disk := geometry.DiskWidth(a.diskWidth)

	header := a.styles.PanelTitle.Render(diskTitle) + " " + a.progress.ViewAs(a.belt.Progress(track.Width, disk))

	position := a.belt.Position
	if position > track.Width {
		position = track.Width
	}
	visible := disk
	if position+visible > track.Width {
		visible = atLeast(track.Width-position, 0)
	}
	row := strings.Repeat(" ", position) +
		a.styles.Disk.Render(strings.Repeat(barGlyph(), visible)) +
		strings.Repeat(" ", atLeast(track.Width-position-visible, 0))

	rows := make([]string, track.Height)
	for i := range rows {
		rows[i] = row
	}

	inner := r.Inner()
	content := lipgloss.NewStyle().
		MaxWidth(inner.Width).
		MaxHeight(inner.Height).
		Render(header + "\n" + strings.Join(rows, "\n"))
	return a.styles.Panel.Width(inner.Width).Height(inner.Height).Render(content)
}
