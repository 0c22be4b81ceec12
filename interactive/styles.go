package interactive

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/joshyorko/sortbot/dashcore"
	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/logbuf"
)

// Styles holds all the lipgloss styles for the dashboard.
type Styles struct {
	theme Theme

	// Text styles
	Title   lipgloss.Style
	Subtle  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Logo/Header
	LogoText    lipgloss.Style
	LogoSubtle  lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style

	// Panels
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	AlertPanel  lipgloss.Style
	AlertTitle  lipgloss.Style
	MessageLine lipgloss.Style

	// Matrix cells
	Cell       lipgloss.Style
	CellCursor lipgloss.Style
	MarkerA    lipgloss.Style
	MarkerB    lipgloss.Style
	MarkerNone lipgloss.Style

	// Belt and chart
	Disk lipgloss.Style
	Bar  lipgloss.Style

	// Spinner
	Spinner lipgloss.Style

	// Step indicators
	StepPending lipgloss.Style
	StepRunning lipgloss.Style
	StepDone    lipgloss.Style
	StepFail    lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// NewStyles creates a new Styles instance using the DefaultTheme
func NewStyles() *Styles {
	theme := DefaultTheme()
	return NewStylesWithTheme(theme)
}

// NewStylesWithTheme creates styles using a specific theme
func NewStylesWithTheme(theme Theme) *Styles {
	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtle: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Info: lipgloss.NewStyle().
			Foreground(theme.Info),

		LogoText: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.TextBright).
			Background(theme.Primary),

		LogoSubtle: lipgloss.NewStyle().
			Foreground(theme.TextMuted).
			PaddingLeft(1),

		StatusKey: lipgloss.NewStyle().
			Foreground(theme.TextMuted),

		StatusValue: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		AlertPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Error),

		AlertTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		MessageLine: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.TextBright),

		Cell: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.BorderDim).
			Align(lipgloss.Center, lipgloss.Center),

		CellCursor: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Cursor).
			Align(lipgloss.Center, lipgloss.Center),

		MarkerA: lipgloss.NewStyle().
			Foreground(theme.MarkerB).
			Background(theme.MarkerA),

		MarkerB: lipgloss.NewStyle().
			Foreground(theme.MarkerA).
			Background(theme.MarkerB),

		MarkerNone: lipgloss.NewStyle().
			Foreground(theme.TextDim),

		Disk: lipgloss.NewStyle().
			Foreground(theme.Disk),

		Bar: lipgloss.NewStyle().
			Foreground(theme.Bar),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		StepPending: lipgloss.NewStyle().
			Foreground(theme.TextDim),

		StepRunning: lipgloss.NewStyle().
			Foreground(theme.Accent),

		StepDone: lipgloss.NewStyle().
			Foreground(theme.Success),

		StepFail: lipgloss.NewStyle().
			Foreground(theme.Error),

		ToastInfo: lipgloss.NewStyle().
			Foreground(theme.Info),

		ToastSuccess: lipgloss.NewStyle().
			Foreground(theme.Success),

		ToastWarning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		ToastError: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),
	}
}

// MarkerStyle returns the fill used for a matrix cell.
func (s *Styles) MarkerStyle(marker gridcore.Marker) lipgloss.Style {
	switch marker {
	case gridcore.TypeA:
		return s.MarkerA
	case gridcore.TypeB:
		return s.MarkerB
	default:
		return s.MarkerNone
	}
}

// StepStyle returns the appropriate style for a step status
func (s *Styles) StepStyle(status dashcore.StepStatus) lipgloss.Style {
	switch status {
	case dashcore.StepRunning:
		return s.StepRunning
	case dashcore.StepComplete:
		return s.StepDone
	case dashcore.StepFailed:
		return s.StepFail
	default:
		return s.StepPending
	}
}

// StepIcon returns the appropriate icon for a step status
func (s *Styles) StepIcon(status dashcore.StepStatus, spinnerFrame string) string {
	if status == dashcore.StepRunning {
		return spinnerFrame
	}
	if dashcore.Iconic {
		switch status {
		case dashcore.StepComplete:
			return "●"
		case dashcore.StepFailed:
			return "✗"
		case dashcore.StepSkipped:
			return "◌"
		default:
			return "○"
		}
	}
	switch status {
	case dashcore.StepComplete:
		return "*"
	case dashcore.StepFailed:
		return "x"
	case dashcore.StepSkipped:
		return "-"
	default:
		return "o"
	}
}

// LevelStyle colors message log lines by severity.
func (s *Styles) LevelStyle(level logbuf.LogLevel) lipgloss.Style {
	switch level {
	case logbuf.LogError:
		return s.Error
	case logbuf.LogWarn:
		return s.Warning
	case logbuf.LogTrace, logbuf.LogDebug:
		return s.Subtle
	default:
		return s.MessageLine
	}
}
