// Package datatable implements a sortable, selectable table component
// for bubbletea programs.
//
// A Model renders an ordered slice of records against a set of Column
// descriptors. Clicking a sortable header cycles that column through
// ascending, descending and unsorted; switching to another column
// restarts at ascending. When the table is selectable, rows carry a
// checkbox and the header carries a "select all" toggle. Every change
// to the selection is reported synchronously to the OnRowSelect
// observer with the selected records in display order.
//
// The sorted sequence is recomputed from the raw data and the current
// SortState on every change. Selection is a set of positions into that
// sorted sequence, not a set of record identities: re-sorting keeps the
// positions and reinterprets them against the new order.
//
// The pure pieces (ApplySort, DeriveSorted, Selection, Project) carry
// all of the logic and can be used without a bubbletea program.
package datatable
