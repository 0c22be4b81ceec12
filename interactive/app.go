package interactive

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joshyorko/sortbot/beltcore"
	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/dashcore"
	"github.com/joshyorko/sortbot/gridcore"
	"github.com/joshyorko/sortbot/logbuf"
	"github.com/joshyorko/sortbot/progresscore"
	"github.com/joshyorko/sortbot/robot"
	"github.com/joshyorko/sortbot/settings"
)

// Options configures a dashboard session.
type Options struct {
	Settings   *settings.Settings
	Layout     *gridcore.Grid
	Dispatcher *robot.Dispatcher
	Controller robot.ControllerStatus
	Messages   *logbuf.LogBuffer
}

// Result is what the session left behind once the dashboard closed.
type Result struct {
	Grid       gridcore.Grid
	Cursor     gridcore.Cursor
	Phase      gridcore.Phase
	Belt       beltcore.Animation
	Frames     int
	Quit       bool
	Dispatched int
	Messages   []logbuf.LogEntry
	Output     logbuf.LogStats
	Steps      []progresscore.TrackedStep
	Workflow   progresscore.ProgressStats
}

// frameMsg drives the belt; one arrives every frame interval.
type frameMsg time.Time

// App is the dashboard model. It is owned by the bubbletea event loop, so
// grid and belt state are only touched from Update.
type App struct {
	grid       *gridcore.State
	belt       *beltcore.Animation
	tracker    *progresscore.ProgressTracker
	messages   *logbuf.LogBuffer
	dispatcher *robot.Dispatcher
	controller robot.ControllerStatus

	styles   *Styles
	spinner  spinner.Model
	progress progress.Model
	help     help.Model

	width     int
	height    int
	interval  time.Duration
	diskWidth int
	frames    int
	quitting  bool
	toast     *Toast
	toastSeq  int64
	startTime time.Time
}

// NewApp creates the dashboard model with an empty matrix, or the given
// layout preloaded.
func NewApp(opts Options) *App {
	config := opts.Settings
	if config == nil {
		config = settings.Default()
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = robot.NewDispatcher(nil)
	}
	messages := opts.Messages
	if messages == nil {
		messages = logbuf.NewLogBuffer(config.MessageLimit)
	}

	styles := NewStyles()

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = styles.Spinner

	app := &App{
		grid:       gridcore.NewState(config.EditPolicy, dispatcher.Handoff()),
		belt:       beltcore.NewAnimation(config.Speed, config.BeltPolicy),
		tracker:    progresscore.NewWorkflowTracker(),
		messages:   messages,
		dispatcher: dispatcher,
		controller: opts.Controller,
		styles:     styles,
		spinner:    s,
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:       help.New(),
		interval:   config.FrameInterval,
		diskWidth:  config.DiskWidth,
		startTime:  time.Now(),
	}
	if opts.Layout != nil {
		if err := app.grid.Load(*opts.Layout); err != nil {
			common.Error("grid", err)
		} else {
			common.Log("grid: layout %s loaded", *opts.Layout)
		}
	}
	app.resize(120, 30)
	app.sync()
	return app
}

func messagesFor(opts Options) *logbuf.LogBuffer {
	if opts.Messages != nil {
		return opts.Messages
	}
	if opts.Settings != nil {
		return logbuf.NewLogBuffer(opts.Settings.MessageLimit)
	}
	return logbuf.NewLogBuffer(settings.Default().MessageLimit)
}

// captureInto is the log interceptor while the dashboard owns the
// terminal: every log line becomes a machine output message.
func captureInto(buffer *logbuf.LogBuffer) func(string) bool {
	return func(message string) bool {
		buffer.AddLine(message)
		return true
	}
}

func (a *App) frame() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.frame())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Help) {
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}
		return a, a.Apply(keys.Resolve(msg))

	case frameMsg:
		a.Advance()
		return a, a.frame()

	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case ToastMsg:
		a.toastSeq++
		a.toast = &Toast{ID: a.toastSeq, Type: msg.Type, Message: msg.Message, Duration: msg.Duration}
		return a, expireToast(a.toastSeq, msg.Duration)

	case ToastTimeoutMsg:
		if a.toast != nil && a.toast.ID == msg.ID {
			a.toast = nil
		}
	}
	return a, nil
}

// Apply feeds one key to the grid state machine and reacts to the outcome.
func (a *App) Apply(k gridcore.Key) tea.Cmd {
	outcome := a.grid.HandleKey(k)
	switch outcome {
	case gridcore.OutcomeQuit:
		a.quitting = true
		return tea.Quit

	case gridcore.OutcomeRestart:
		a.belt.Reset()
		a.tracker.Reset()
		a.sync()
		common.Log("grid: restarted with an empty matrix")
		return ShowInfoToast("Restarted")

	case gridcore.OutcomeArmed:
		a.sync()
		common.Log("grid: layout %s armed, press enter again to start", a.grid.Cells)
		return ShowWarningToast("Armed: press enter again to start")

	case gridcore.OutcomeStarted:
		failure := a.dispatcher.Failure()
		if failure != nil {
			a.tracker.FailStep(dashcore.StepHandOff, failure.Error())
		}
		a.sync()
		common.Log("belt: started")
		if failure != nil {
			return ShowWarningToast("Handed off, but the journal write failed")
		}
		return ShowSuccessToast("Grid handed off to the robot")

	case gridcore.OutcomeChanged:
		if k == gridcore.KeyMarkA || k == gridcore.KeyMarkB {
			cursor := a.grid.Cursor
			common.Debug("grid: cell %d,%d set to %s", cursor.Row, cursor.Col, a.grid.Cells[cursor.Row][cursor.Col])
		}
		a.sync()
	}
	return nil
}

// Advance moves the belt one frame forward. It runs before the next View,
// which only reads the result.
func (a *App) Advance() {
	a.frames++
	if !a.grid.Started {
		return
	}
	geometry := a.geometry()
	track := geometry.Track()
	disk := geometry.DiskWidth(a.diskWidth)
	atEnd := a.belt.AtEnd(track.Width, disk)
	a.belt.AdvanceFrame(track.Width, disk)
	if atEnd {
		common.Trace("belt: disk at the end of the track, now at %d", a.belt.Position)
	}
}

// resize is the only place screen dimensions change; View reads what it
// leaves behind.
func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	a.help.Width = width
	a.progress.Width = atLeast(a.geometry().Track().Width-lipgloss.Width(diskTitle)-1, 4)
}

func (a *App) sync() {
	a.tracker.Sync(a.grid.Phase(), a.grid.Cells.Filled())
}

func (a *App) geometry() Geometry {
	return Layout(a.width, a.height)
}

// State exposes the grid state machine, read-only by convention.
func (a *App) State() *gridcore.State {
	return a.grid
}

// Belt exposes the belt animation, read-only by convention.
func (a *App) Belt() *beltcore.Animation {
	return a.belt
}

// Messages is the machine output log.
func (a *App) Messages() *logbuf.LogBuffer {
	return a.messages
}

// Result summarizes the session.
func (a *App) Result() Result {
	return Result{
		Grid:       a.grid.Cells,
		Cursor:     a.grid.Cursor,
		Phase:      a.grid.Phase(),
		Belt:       *a.belt,
		Frames:     a.frames,
		Quit:       a.quitting,
		Dispatched: a.dispatcher.Dispatched(),
		Messages:   a.messages.All(),
		Output:     a.messages.Stats(),
		Steps:      a.tracker.Steps(),
		Workflow:   a.tracker.Stats(),
	}
}

// View implements tea.Model
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	g := a.geometry()

	left := lipgloss.JoinVertical(lipgloss.Left,
		a.renderMatrix(g.Matrix),
		a.renderBelt(g.Belt),
	)
	stateColumn := lipgloss.JoinVertical(lipgloss.Left,
		a.renderState(g.State),
		a.renderProgressMatrix(g.Progress),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		a.renderChart(g.Chart),
		lipgloss.JoinHorizontal(lipgloss.Top, stateColumn, a.renderMessages(g.Messages)),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), body, a.help.View(keys))
}

func (a *App) renderHeader() string {
	logo := lipgloss.JoinHorizontal(lipgloss.Center,
		a.spinner.View(),
		a.styles.LogoText.Render(" "+common.Product+" "),
		a.styles.LogoSubtle.Render(a.StateLabel()),
	)
	if _, step := a.tracker.CurrentStep(); step != nil {
		logo += a.styles.Subtle.Render(" · " + step.Name)
	}
	if a.toast != nil {
		logo += "  " + a.toastStyle(a.toast.Type).Render(a.toast.Message)
	}

	elapsed := time.Since(a.startTime).Round(time.Second)
	status := a.styles.StatusKey.Render("ver:") + a.styles.StatusValue.Render(common.Version) +
		a.styles.StatusKey.Render(" up:") + a.styles.StatusValue.Render(elapsed.String()) + " "

	gap := a.width - lipgloss.Width(logo) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return logo + strings.Repeat(" ", gap) + status
}

func (a *App) toastStyle(kind ToastType) lipgloss.Style {
	switch kind {
	case ToastSuccess:
		return a.styles.ToastSuccess
	case ToastWarning:
		return a.styles.ToastWarning
	case ToastError:
		return a.styles.ToastError
	default:
		return a.styles.ToastInfo
	}
}

// Run takes over the terminal until the operator quits. The alternate
// screen and raw mode are released by bubbletea on every exit path.
func Run(opts Options) (Result, error) {
	opts.Messages = messagesFor(opts)
	common.SetLogInterceptor(captureInto(opts.Messages))
	defer common.ClearLogInterceptor()

	app := NewApp(opts)
	dashcore.SetDashboardActive(true)
	defer dashcore.SetDashboardActive(false)

	common.Log("grid: fill the matrix with w and b, then press enter twice to start")
	common.Uncritical("controller", opts.Controller.Fault())
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return app.Result(), err
	}
	return app.Result(), nil
}
