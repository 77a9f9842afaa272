// selection.go - Position-based row selection
package datatable

import (
	"maps"
	"slices"
)

// Selection is an immutable set of row positions. Positions index the
// sorted sequence currently on screen, so a Selection is reinterpreted,
// not remapped, when the sort changes. The zero value is empty.
type Selection struct {
	positions map[int]struct{}
}

// NewSelection returns a selection holding the given positions.
func NewSelection(positions ...int) Selection {
	if len(positions) == 0 {
		return Selection{}
	}
	set := make(map[int]struct{}, len(positions))
	for _, position := range positions {
		set[position] = struct{}{}
	}
	return Selection{positions: set}
}

// Len returns the number of selected positions.
func (s Selection) Len() int {
	return len(s.positions)
}

// Has reports whether position is selected.
func (s Selection) Has(position int) bool {
	_, ok := s.positions[position]
	return ok
}

// Positions returns the selected positions in ascending order.
func (s Selection) Positions() []int {
	return slices.Sorted(maps.Keys(s.positions))
}

// ToggleRow returns a copy of s with position's membership flipped.
//
// position must index the current sorted sequence. A position left over
// from a longer sequence is not rejected here; Materialize skips it.
func (s Selection) ToggleRow(position int) Selection {
	next := make(map[int]struct{}, len(s.positions)+1)
	maps.Copy(next, s.positions)
	if _, ok := next[position]; ok {
		delete(next, position)
	} else {
		next[position] = struct{}{}
	}
	return Selection{positions: next}
}

// ToggleAll returns the empty selection when every one of length rows
// is selected (vacuously so when length is zero) and the full selection
// {0, ..., length-1} otherwise. Only the size of s is consulted.
func (s Selection) ToggleAll(length int) Selection {
	if s.Len() == length {
		return Selection{}
	}
	all := make(map[int]struct{}, length)
	for position := range length {
		all[position] = struct{}{}
	}
	return Selection{positions: all}
}

// AllSelected reports whether the selection size equals length. With
// zero rows this is true.
func (s Selection) AllSelected(length int) bool {
	return s.Len() == length
}

// Materialize returns the records of sorted at the selected positions,
// in ascending position order. Positions outside sorted are skipped.
func Materialize[T any](s Selection, sorted []T) []T {
	records := make([]T, 0, s.Len())
	for _, position := range s.Positions() {
		if position < 0 || position >= len(sorted) {
			continue
		}
		records = append(records, sorted[position])
	}
	return records
}
