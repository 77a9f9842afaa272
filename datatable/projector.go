// projector.go - Display mode and the projection of props + state into rows
package datatable

import "fmt"

// Props is the input contract of the table.
type Props[T any] struct {
	// Data is the records in input order. May be empty.
	Data []T

	// Columns defines both display order and sortability.
	Columns []Column

	// Loading overrides all other rendering.
	Loading bool

	// Selectable enables the checkbox column and row selection.
	Selectable bool

	// OnRowSelect, when set, receives the selected records in display
	// order every time the selection changes.
	OnRowSelect func(selected []T)
}

// DisplayMode is what the table renders in place of, or as, its rows.
type DisplayMode int

const (
	ModePopulated DisplayMode = iota
	ModeLoading
	ModeEmpty
)

func (m DisplayMode) String() string {
	switch m {
	case ModePopulated:
		return "populated"
	case ModeLoading:
		return "loading"
	case ModeEmpty:
		return "empty"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// DisplayModeFor picks the display mode. The loading flag wins over
// everything, then an empty dataset, then the populated table.
func DisplayModeFor(loading bool, rows int) DisplayMode {
	switch {
	case loading:
		return ModeLoading
	case rows == 0:
		return ModeEmpty
	default:
		return ModePopulated
	}
}

// HeaderCell is one projected column header.
type HeaderCell struct {
	Column    Column
	Indicator Indicator
}

// ProjectedRow is one row as displayed.
type ProjectedRow[T any] struct {
	// Position is the index in the sorted sequence.
	Position int
	Record   T
	Selected bool
	// Cells holds the formatted text of each column, in column order.
	Cells []string
}

// Projection is everything a renderer needs for one frame.
type Projection[T any] struct {
	Mode    DisplayMode
	Headers []HeaderCell
	Rows    []ProjectedRow[T]
	// Sorted is the derived sorted sequence the rows were built from.
	Sorted []T
	// AllSelected drives the "select all" checkbox. It is true with
	// zero rows.
	AllSelected bool
}

// Project combines props with the sort and selection state. It has no
// side effects and is re-run on every render.
func Project[T any](props Props[T], state SortState, selection Selection, field FieldFunc[T]) Projection[T] {
	if field == nil {
		field = Lookup[T]
	}

	sorted := DeriveSorted(props.Data, state, field)

	headers := make([]HeaderCell, len(props.Columns))
	for i, column := range props.Columns {
		headers[i] = HeaderCell{Column: column, Indicator: SortIndicator(state, column)}
	}

	rows := make([]ProjectedRow[T], len(sorted))
	for position, record := range sorted {
		cells := make([]string, len(props.Columns))
		for i, column := range props.Columns {
			value, _ := field(record, column.Field)
			cells[i] = FormatValue(value, column.Format)
		}
		rows[position] = ProjectedRow[T]{
			Position: position,
			Record:   record,
			Selected: selection.Has(position),
			Cells:    cells,
		}
	}

	return Projection[T]{
		Mode:        DisplayModeFor(props.Loading, len(props.Data)),
		Headers:     headers,
		Rows:        rows,
		Sorted:      sorted,
		AllSelected: selection.AllSelected(len(sorted)),
	}
}
