// model.go - Root bubbletea model: table, export prompt, modals, footer
package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rootisgod/tablekit/datatable"
	"github.com/rootisgod/tablekit/inputfield"
	"github.com/rootisgod/tablekit/theme"
)

// viewState is the screen on top of the table.
type viewState int

const (
	viewTable viewState = iota
	viewExport
	viewHelp
	viewError
)

// Chrome around the table: title bar above, status and help below.
const (
	titleLines  = 1
	footerLines = 2
)

// selectionStatus is written by the table's OnRowSelect observer. It
// is shared by pointer so that copies of the model see the same count.
type selectionStatus struct {
	count int
}

type model struct {
	settings settings
	logger   *slog.Logger

	table  datatable.Model[datatable.Record]
	export inputfield.Model
	help   help.Model
	keys   appKeyMap

	theme  theme.Theme
	styles appStyles

	view         viewState
	selection    *selectionStatus
	notice       string
	errorTitle   string
	errorMessage string

	width  int
	height int
}

func newModel(s settings, logger *slog.Logger) model {
	status := &selectionStatus{}

	table := datatable.New(datatable.Props[datatable.Record]{
		Columns:    s.columns,
		Loading:    true,
		Selectable: s.selectable,
		OnRowSelect: func(selected []datatable.Record) {
			status.count = len(selected)
			logger.Info("selection changed", "selected", len(selected))
		},
	},
		datatable.WithTheme[datatable.Record](s.theme),
		datatable.WithOrigin[datatable.Record](0, titleLines),
	)

	export := inputfield.New(inputfield.Props{
		Label:           "Output file",
		Placeholder:     "selection.json",
		HelperText:      ".json .yaml .toml .cbor, optionally .zst or .lz4",
		ShowClearButton: true,
	})
	export.SetTheme(s.theme)

	return model{
		settings:  s,
		logger:    logger,
		table:     table,
		export:    export,
		help:      help.New(),
		keys:      newAppKeyMap(table.KeyMap()),
		theme:     s.theme,
		styles:    newAppStyles(s.theme),
		selection: status,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.table.Init(), loadRecordsCmd(m.settings.dataPath))
}

// ─── Update ────────────────────────────────────────────────────────────────────

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetSize(msg.Width, max(1, msg.Height-titleLines-footerLines))
		return m, nil

	case recordsLoadedMsg:
		return m.recordsLoaded(msg), nil

	case exportResultMsg:
		if msg.err != nil {
			m.logger.Error("export failed", "path", msg.path, "error", msg.err)
			m.showError("Export failed", msg.err)
			return m, nil
		}
		m.logger.Info("exported records", "path", msg.path, "count", msg.count)
		m.notice = fmt.Sprintf("wrote %d records to %s", msg.count, msg.path)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.view != viewTable {
			return m, nil
		}
	}

	// Spinner ticks, cursor blinks and mouse events.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)
	if m.view == viewExport {
		m.export, cmd = m.export.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m model) recordsLoaded(msg recordsLoadedMsg) model {
	if msg.err != nil {
		m.logger.Error("loading records failed", "path", msg.path, "error", msg.err)
		m.table.SetLoading(false)
		m.showError("Cannot load records", msg.err)
		return m
	}

	data := msg.records
	if m.settings.empty {
		data = nil
	}
	m.logger.Info("records loaded", "path", msg.path, "count", len(data))

	m.table.SetColumns(tableColumns(m.settings, data))
	m.table.SetData(data)
	if m.settings.loading {
		return m
	}

	// Header clicks are inert while loading.
	m.table.SetLoading(false)
	if m.settings.sort.Active() {
		if err := applySort(&m.table, m.table.Props().Columns, m.settings.sort); err != nil {
			m.notice = err.Error()
		}
	}
	return m
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewHelp, viewError:
		if key.Matches(msg, m.keys.Close) {
			m.view = viewTable
		}
		return m, nil

	case viewExport:
		switch msg.String() {
		case "esc":
			m.export.Blur()
			m.view = viewTable
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.export.Value())
			if path == "" {
				m.export.SetErrorMessage("enter a file name")
				return m, nil
			}
			m.export.Blur()
			m.view = viewTable
			return m, exportCmd(path, m.exportRecords())
		}
		m.export.SetErrorMessage("")
		var cmd tea.Cmd
		m.export, cmd = m.export.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.view = viewHelp
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(theme.Next(m.theme))
		return m, nil
	case key.Matches(msg, m.keys.Export):
		if m.table.Mode() != datatable.ModePopulated {
			m.notice = "nothing to export"
			return m, nil
		}
		m.notice = ""
		m.view = viewExport
		return m, m.export.Focus()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// exportRecords is the selection when there is one, otherwise every
// row, in display order.
func (m model) exportRecords() []datatable.Record {
	if m.table.Selection().Len() > 0 {
		return m.table.SelectedRecords()
	}
	return m.table.Sorted()
}

func (m *model) setTheme(t theme.Theme) {
	m.theme = t
	m.styles = newAppStyles(t)
	m.table.SetTheme(t)
	m.export.SetTheme(t)
	m.logger.Debug("theme changed", "theme", t.Name)
}

func (m *model) showError(title string, err error) {
	m.view = viewError
	m.errorTitle = title
	m.errorMessage = err.Error()
}

// ─── View ──────────────────────────────────────────────────────────────────────

func (m model) View() string {
	switch m.view {
	case viewHelp:
		return m.helpView()
	case viewError:
		return m.errorView()
	case viewExport:
		return m.exportView()
	}

	var b strings.Builder
	b.WriteString(m.titleBar() + "\n")
	b.WriteString(m.table.View() + "\n")
	b.WriteString(m.statusLine() + "\n")
	b.WriteString(m.styles.footer.Render(m.help.View(m.keys)))
	return b.String()
}

func (m model) titleBar() string {
	title := m.styles.titleBar.Render(m.settings.title)
	count := ""
	if m.table.Mode() == datatable.ModePopulated {
		count = m.styles.titleCount.Render(fmt.Sprintf("%d rows · %s", len(m.table.Props().Data), m.table.SortState()))
	}
	return title + count
}

func (m model) statusLine() string {
	var parts []string
	if m.settings.selectable {
		parts = append(parts, m.styles.status.Render(fmt.Sprintf("%d selected", m.selection.count)))
	}
	if m.notice != "" {
		parts = append(parts, m.styles.notice.Render(m.notice))
	}
	return strings.Join(parts, " ")
}
