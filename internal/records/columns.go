// columns.go - Column inference for files loaded without a config
package records

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rootisgod/tablekit/datatable"
)

// InferColumns returns one sortable column per key of the first
// record, in key order. Titles are the keys with "_" and "-" read as
// spaces, title-cased.
func InferColumns(records []datatable.Record) []datatable.Column {
	if len(records) == 0 {
		return nil
	}

	keys := slices.Sorted(maps.Keys(records[0]))
	columns := make([]datatable.Column, len(keys))
	for i, k := range keys {
		columns[i] = datatable.Column{
			Key:      k,
			Title:    Title(k),
			Field:    k,
			Sortable: true,
		}
	}
	return columns
}

// Title turns a field key into a header title: "disk_size" → "Disk Size".
func Title(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
