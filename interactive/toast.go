package interactive

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastType defines the type of toast notification
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastWarning
	ToastError
)

const toastDuration = 3 * time.Second

// Toast is a short notice shown in the header line.
type Toast struct {
	ID       int64
	Type     ToastType
	Message  string
	Duration time.Duration
}

// ToastMsg is sent to trigger a new toast
type ToastMsg struct {
	Type     ToastType
	Message  string
	Duration time.Duration
}

// ToastTimeoutMsg is sent when a toast expires
type ToastTimeoutMsg struct {
	ID int64
}

// ShowToast creates a command to show a toast
func ShowToast(msg string, t ToastType) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Type:     t,
			Message:  msg,
			Duration: toastDuration,
		}
	}
}

// ShowSuccessToast is a helper for success messages
func ShowSuccessToast(msg string) tea.Cmd {
	return ShowToast(msg, ToastSuccess)
}

// ShowInfoToast is a helper for info messages
func ShowInfoToast(msg string) tea.Cmd {
	return ShowToast(msg, ToastInfo)
}

// ShowWarningToast is a helper for warning messages
func ShowWarningToast(msg string) tea.Cmd {
	return ShowToast(msg, ToastWarning)
}

// ShowErrorToast is a helper for error messages
func ShowErrorToast(msg string) tea.Cmd {
	return ShowToast(msg, ToastError)
}

// expireToast schedules the timeout for the toast with the given id.
func expireToast(id int64, after time.Duration) tea.Cmd {
	if after <= 0 {
		after = toastDuration
	}
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ToastTimeoutMsg{ID: id}
	})
}
