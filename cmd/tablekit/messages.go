// messages.go - Custom tea.Msg types and tea.Cmd factories for file I/O
package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rootisgod/tablekit/datatable"
	"github.com/rootisgod/tablekit/internal/records"
)

// ─── Result Messages ───────────────────────────────────────────────────────────

// recordsLoadedMsg carries the decoded records file.
type recordsLoadedMsg struct {
	path    string
	records []datatable.Record
	err     error
}

// exportResultMsg carries the outcome of writing the export file.
type exportResultMsg struct {
	path  string
	count int
	err   error
}

// ─── Command Factories ─────────────────────────────────────────────────────────

// loadRecordsCmd decodes path off the update loop.
func loadRecordsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := loadRecords(path)
		return recordsLoadedMsg{path: path, records: data, err: err}
	}
}

// exportCmd writes data to path in the format its extension names.
func exportCmd(path string, data []datatable.Record) tea.Cmd {
	return func() tea.Msg {
		err := records.Save(path, data)
		return exportResultMsg{path: path, count: len(data), err: err}
	}
}
