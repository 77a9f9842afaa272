// sort.go - Sort state machine and derivation of the sorted sequence
package datatable

import (
	"fmt"
	"slices"
)

// SortDirection is the direction of the active sort.
type SortDirection int

const (
	// SortNone means the data is shown in input order.
	SortNone SortDirection = iota
	// SortAscending orders by the ascending comparator.
	SortAscending
	// SortDescending orders by the negated ascending comparator.
	SortDescending
)

// String returns the string representation of a SortDirection.
func (d SortDirection) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		return fmt.Sprintf("SortDirection(%d)", int(d))
	}
}

// SortState is the single active sort key. The zero value is unsorted.
type SortState struct {
	Field     string
	Direction SortDirection
}

// Active reports whether a sort is in effect.
func (s SortState) Active() bool {
	return s.Direction != SortNone
}

// On reports whether the sort is active on field.
func (s SortState) On(field string) bool {
	return s.Active() && s.Field == field
}

func (s SortState) String() string {
	if !s.Active() {
		return "unsorted"
	}
	return s.Field + " " + s.Direction.String()
}

// ApplySort returns the state that follows a click on column's header.
// Each sortable column cycles unsorted → ascending → descending →
// unsorted; clicking a column other than the active one starts it at
// ascending. Clicks on non-sortable columns leave the state unchanged.
func ApplySort(current SortState, column Column) SortState {
	if !column.Sortable {
		return current
	}
	if !current.On(column.Field) {
		return SortState{Field: column.Field, Direction: SortAscending}
	}
	if current.Direction == SortAscending {
		return SortState{Field: column.Field, Direction: SortDescending}
	}
	return SortState{}
}

// DeriveSorted returns data ordered by state. When no sort is active
// data itself is returned. Otherwise the result is a new slice and data
// is left untouched.
//
// The sort is stable: records with equal keys keep their input order
// in both directions. Descending uses the exact negation of the
// ascending comparator, so missing values (which sort last ascending)
// come first. Descending is the exact reverse of ascending only when
// the keys are distinct; tied records keep input order either way.
func DeriveSorted[T any](data []T, state SortState, field FieldFunc[T]) []T {
	if !state.Active() {
		return data
	}
	if field == nil {
		field = Lookup[T]
	}

	sorted := slices.Clone(data)
	slices.SortStableFunc(sorted, func(a, b T) int {
		valueA, _ := field(a, state.Field)
		valueB, _ := field(b, state.Field)
		comparison := CompareValues(valueA, valueB)
		if state.Direction == SortDescending {
			return -comparison
		}
		return comparison
	})
	return sorted
}

// ─── Header indicator ──────────────────────────────────────────────────────────

// Indicator is the sort glyph state of one header.
type Indicator int

const (
	// IndicatorNone is used for columns that cannot be sorted.
	IndicatorNone Indicator = iota
	// IndicatorNeutral marks a sortable column that is not the active sort.
	IndicatorNeutral
	IndicatorAscending
	IndicatorDescending
)

// Glyph returns the header glyph, or "" for IndicatorNone.
func (i Indicator) Glyph() string {
	switch i {
	case IndicatorNeutral:
		return GlyphNeutral
	case IndicatorAscending:
		return GlyphAscending
	case IndicatorDescending:
		return GlyphDescending
	default:
		return ""
	}
}

// SortIndicator returns the header indicator of column under state.
func SortIndicator(state SortState, column Column) Indicator {
	if !column.Sortable {
		return IndicatorNone
	}
	if !state.On(column.Field) {
		return IndicatorNeutral
	}
	if state.Direction == SortAscending {
		return IndicatorAscending
	}
	return IndicatorDescending
}
