// static.go - One-shot rendering for --print and piped output
package main

import (
	"fmt"

	"github.com/rootisgod/tablekit/datatable"
)

// renderStatic renders the table once with the requested sort applied
// through the same header clicks a user would make.
func renderStatic(data []datatable.Record, s settings, width int) (string, error) {
	if s.empty {
		data = nil
	}
	columns := tableColumns(s, data)

	table := datatable.New(datatable.Props[datatable.Record]{
		Data:       data,
		Columns:    columns,
		Loading:    s.loading,
		Selectable: s.selectable,
	},
		datatable.WithTheme[datatable.Record](s.theme),
		datatable.WithSize[datatable.Record](width, 0),
	)

	if s.sort.Active() && !s.loading {
		if err := applySort(&table, columns, s.sort); err != nil {
			return "", err
		}
	}
	return table.View(), nil
}

// applySort clicks the header of the sort field until the table
// reaches state.
func applySort(table *datatable.Model[datatable.Record], columns []datatable.Column, state datatable.SortState) error {
	index := -1
	for i, column := range columns {
		if column.Field == state.Field || column.Key == state.Field {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("--sort: no column %q", state.Field)
	}
	if !columns[index].Sortable {
		return fmt.Errorf("--sort: column %q is not sortable", state.Field)
	}

	clicks := 1
	if state.Direction == datatable.SortDescending {
		clicks = 2
	}
	for range clicks {
		table.ClickHeader(index)
	}
	return nil
}
