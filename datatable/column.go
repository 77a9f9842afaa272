// column.go - Column descriptors and column-set validation
package datatable

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateColumnKey is returned by ValidateColumns when two
	// columns share a Key.
	ErrDuplicateColumnKey = errors.New("duplicate column key")

	// ErrEmptyColumnField is returned by ValidateColumns when a column
	// does not name the record field it reads.
	ErrEmptyColumnField = errors.New("column field is empty")

	// ErrUnknownFormat is returned by ParseFormat.
	ErrUnknownFormat = errors.New("unknown column format")
)

// Format selects how a cell value is turned into display text.
type Format string

const (
	// FormatDefault renders the value with fmt's %v verb.
	FormatDefault Format = ""

	// FormatBytes renders a byte count as "82 MB".
	FormatBytes Format = "bytes"

	// FormatComma renders an integer with thousands separators.
	FormatComma Format = "comma"

	// FormatFloat renders a number without trailing zeros.
	FormatFloat Format = "float"

	// FormatRelative renders a time.Time as "3 hours ago".
	FormatRelative Format = "relative"
)

// ParseFormat converts a format name from a config file. The empty
// string and "default" both mean FormatDefault.
func ParseFormat(name string) (Format, error) {
	switch format := Format(name); format {
	case FormatDefault, FormatBytes, FormatComma, FormatFloat, FormatRelative:
		return format, nil
	case "default":
		return FormatDefault, nil
	}
	return FormatDefault, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// Column describes one column of the table.
type Column struct {
	// Key identifies the column. Unique within a column set.
	Key string

	// Title is the header label.
	Title string

	// Field names the record field the column reads, both for display
	// and for sorting.
	Field string

	// Sortable enables header clicks on this column.
	Sortable bool

	// Width fixes the rendered width, padding included. Zero sizes the
	// column from its title and content.
	Width int

	// Format controls cell text. Sorting always uses the raw value.
	Format Format
}

// ValidateColumns checks the column-set invariants: every Key is unique
// and every column names a Field.
func ValidateColumns(columns []Column) error {
	seen := make(map[string]bool, len(columns))
	for i, column := range columns {
		if column.Field == "" {
			return fmt.Errorf("column %d (%q): %w", i, column.Key, ErrEmptyColumnField)
		}
		if seen[column.Key] {
			return fmt.Errorf("column %d: %w: %q", i, ErrDuplicateColumnKey, column.Key)
		}
		seen[column.Key] = true
	}
	return nil
}

// ColumnByField returns the first column that reads field.
func ColumnByField(columns []Column, field string) (Column, bool) {
	for _, column := range columns {
		if column.Field == field {
			return column, true
		}
	}
	return Column{}, false
}
