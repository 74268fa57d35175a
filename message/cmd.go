package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd returns a command carrying err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// FetchCmd returns a command to reload the current page
func FetchCmd() tea.Cmd {
	return func() tea.Msg {
		return FetchMsg{}
	}
}
