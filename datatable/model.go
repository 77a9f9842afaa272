// model.go - Table component state and interaction handlers
package datatable

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rootisgod/tablekit/theme"
)

// Model is a bubbletea sub-model rendering one table. Sort and
// selection state live in the instance; copies of a Model share
// nothing mutable with each other.
type Model[T any] struct {
	props Props[T]
	field FieldFunc[T]

	sort      SortState
	selection Selection

	cursor      int
	offset      int
	focusColumn int

	width   int
	height  int
	originX int
	originY int

	keys    KeyMap
	theme   theme.Theme
	styles  Styles
	spinner spinner.Model
}

// Option configures a Model at construction.
type Option[T any] func(*Model[T])

// WithFieldFunc replaces the default reflective field accessor.
func WithFieldFunc[T any](field FieldFunc[T]) Option[T] {
	return func(m *Model[T]) {
		if field != nil {
			m.field = field
		}
	}
}

// WithTheme sets the initial theme.
func WithTheme[T any](t theme.Theme) Option[T] {
	return func(m *Model[T]) { m.SetTheme(t) }
}

// WithKeyMap replaces DefaultKeyMap.
func WithKeyMap[T any](keys KeyMap) Option[T] {
	return func(m *Model[T]) { m.keys = keys }
}

// WithSize sets the render area. A zero height shows every row.
func WithSize[T any](width, height int) Option[T] {
	return func(m *Model[T]) { m.SetSize(width, height) }
}

// WithOrigin sets the screen position of the table's top-left corner,
// used to translate mouse coordinates.
func WithOrigin[T any](x, y int) Option[T] {
	return func(m *Model[T]) { m.SetOrigin(x, y) }
}

// New creates a table for props. Sort starts unsorted and the
// selection starts empty.
func New[T any](props Props[T], options ...Option[T]) Model[T] {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model[T]{
		props:   props,
		field:   Lookup[T],
		keys:    DefaultKeyMap,
		spinner: s,
	}
	m.SetTheme(theme.Default())
	for _, option := range options {
		option(&m)
	}
	return m
}

// Init starts the spinner when the table is created in loading state.
func (m Model[T]) Init() tea.Cmd {
	if m.props.Loading {
		return m.spinner.Tick
	}
	return nil
}

// ─── Props ─────────────────────────────────────────────────────────────────────

// SetData replaces the records. The sort state and the selected
// positions are kept; positions beyond the new length select nothing.
func (m *Model[T]) SetData(data []T) {
	m.props.Data = data
	m.clampCursor()
}

// SetColumns replaces the column set.
func (m *Model[T]) SetColumns(columns []Column) {
	m.props.Columns = columns
	if m.focusColumn >= len(columns) {
		m.focusColumn = max(0, len(columns)-1)
	}
}

// SetLoading sets the loading flag. When loading starts it returns the
// command that drives the spinner.
func (m *Model[T]) SetLoading(loading bool) tea.Cmd {
	wasLoading := m.props.Loading
	m.props.Loading = loading
	if loading && !wasLoading {
		return m.spinner.Tick
	}
	return nil
}

// SetSelectable enables or disables the checkbox column.
func (m *Model[T]) SetSelectable(selectable bool) {
	m.props.Selectable = selectable
}

// SetOnRowSelect sets the selection observer.
func (m *Model[T]) SetOnRowSelect(observer func(selected []T)) {
	m.props.OnRowSelect = observer
}

// SetSize sets the render area. A zero height shows every row.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// SetOrigin sets the screen position of the table's top-left corner.
func (m *Model[T]) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetTheme switches the palette.
func (m *Model[T]) SetTheme(t theme.Theme) {
	m.theme = t
	m.styles = NewStyles(t)
	m.spinner.Style = m.styles.Spinner
}

// ─── Accessors ─────────────────────────────────────────────────────────────────

// Props returns the current props.
func (m Model[T]) Props() Props[T] { return m.props }

// SortState returns the active sort.
func (m Model[T]) SortState() SortState { return m.sort }

// Selection returns the selected positions.
func (m Model[T]) Selection() Selection { return m.selection }

func (m Model[T]) Cursor() int { return m.cursor }

func (m Model[T]) FocusedColumn() int { return m.focusColumn }

func (m Model[T]) Theme() theme.Theme { return m.theme }

func (m Model[T]) KeyMap() KeyMap { return m.keys }

// Mode returns the current display mode.
func (m Model[T]) Mode() DisplayMode {
	return DisplayModeFor(m.props.Loading, len(m.props.Data))
}

// Sorted returns the derived sorted sequence.
func (m Model[T]) Sorted() []T {
	return DeriveSorted(m.props.Data, m.sort, m.field)
}

// Projection returns the rows, headers and select-all state of the
// current frame.
func (m Model[T]) Projection() Projection[T] {
	return Project(m.props, m.sort, m.selection, m.field)
}

// SelectedRecords returns the selected records in display order.
func (m Model[T]) SelectedRecords() []T {
	return Materialize(m.selection, m.Sorted())
}

// ─── Interaction handlers ──────────────────────────────────────────────────────

// ClickHeader handles a click on the header of column index. Only
// sortable columns change the sort state.
func (m *Model[T]) ClickHeader(index int) {
	if m.Mode() != ModePopulated || index < 0 || index >= len(m.props.Columns) {
		return
	}
	m.focusColumn = index
	m.sort = ApplySort(m.sort, m.props.Columns[index])
}

// ClickRow handles a click on the body of the row at position.
func (m *Model[T]) ClickRow(position int) {
	m.toggleRow(position)
}

// ClickCheckbox handles a click on the checkbox of the row at
// position. The click is consumed here and does not reach the row, so
// the row is toggled exactly once.
func (m *Model[T]) ClickCheckbox(position int) {
	m.toggleRow(position)
}

// ClickSelectAll handles a click on the header checkbox.
func (m *Model[T]) ClickSelectAll() {
	if !m.props.Selectable || m.Mode() != ModePopulated {
		return
	}
	sorted := m.Sorted()
	m.commitSelection(m.selection.ToggleAll(len(sorted)), sorted)
}

func (m *Model[T]) toggleRow(position int) {
	if !m.props.Selectable || m.Mode() != ModePopulated {
		return
	}
	sorted := m.Sorted()
	if position < 0 || position >= len(sorted) {
		return
	}
	m.cursor = position
	m.ensureCursorVisible()
	m.commitSelection(m.selection.ToggleRow(position), sorted)
}

// commitSelection stores the new selection, then reports it.
func (m *Model[T]) commitSelection(next Selection, sorted []T) {
	m.selection = next
	if m.props.OnRowSelect != nil {
		m.props.OnRowSelect(Materialize(next, sorted))
	}
}

// ─── Update ────────────────────────────────────────────────────────────────────

// Update handles key presses, left mouse clicks, the mouse wheel and
// spinner ticks.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.props.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.Mode() == ModePopulated {
			m.handleKey(msg)
		}

	case tea.MouseMsg:
		if m.Mode() != ModePopulated {
			return m, nil
		}
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.moveCursor(-1)
		case msg.Button == tea.MouseButtonWheelDown:
			m.moveCursor(1)
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			m.handleClick(msg.X-m.originX, msg.Y-m.originY)
		}
	}
	return m, nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	visible := m.visibleRows()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-visible)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(visible)
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.props.Data))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.props.Data))
	case key.Matches(msg, m.keys.PrevColumn):
		if m.focusColumn > 0 {
			m.focusColumn--
		}
	case key.Matches(msg, m.keys.NextColumn):
		if m.focusColumn < len(m.props.Columns)-1 {
			m.focusColumn++
		}
	case key.Matches(msg, m.keys.Sort):
		m.ClickHeader(m.focusColumn)
	case key.Matches(msg, m.keys.ToggleRow):
		m.ClickRow(m.cursor)
	case key.Matches(msg, m.keys.ToggleAll):
		m.ClickSelectAll()
	}
}

// handleClick dispatches a left click at table-relative coordinates.
func (m *Model[T]) handleClick(x, y int) {
	l := m.layout(m.Projection())
	index, onCheckbox, onColumn := l.columnAt(x)

	if y == 0 {
		switch {
		case onCheckbox:
			m.ClickSelectAll()
		case onColumn:
			m.ClickHeader(index)
		}
		return
	}

	line := y - headerLines
	if line < 0 || line >= m.visibleRows() {
		return
	}
	position := m.offset + line
	if position >= len(m.props.Data) {
		return
	}

	if onCheckbox {
		m.ClickCheckbox(position)
		return
	}
	if m.props.Selectable {
		m.ClickRow(position)
		return
	}
	m.cursor = position
}

// ─── Cursor ────────────────────────────────────────────────────────────────────

func (m *Model[T]) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model[T]) clampCursor() {
	m.cursor = max(0, min(m.cursor, len(m.props.Data)-1))
	m.ensureCursorVisible()
}

func (m *Model[T]) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = max(0, min(m.offset, len(m.props.Data)-visible))
}

// visibleRows is the number of body rows that fit under the header.
func (m Model[T]) visibleRows() int {
	if m.height <= 0 {
		return max(1, len(m.props.Data))
	}
	return max(1, m.height-headerLines)
}
