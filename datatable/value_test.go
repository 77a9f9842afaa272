package datatable

import (
	"errors"
	"testing"
	"time"
)

type tagged struct {
	ID       int    `table:"id"`
	FullName string `yaml:"full_name"`
	Hidden   string `json:"-"`
	private  string
	*Embedded
}

type Embedded struct {
	Zone string `json:"zone"`
}

func TestLookup(t *testing.T) {
	value := tagged{ID: 7, FullName: "Ada", Hidden: "h", private: "p"}
	withEmbedded := tagged{Embedded: &Embedded{Zone: "eu"}}

	tests := []struct {
		name   string
		record any
		field  string
		want   any
		wantOK bool
	}{
		{"table tag", value, "id", 7, true},
		{"yaml tag", value, "full_name", "Ada", true},
		{"go name", value, "FullName", "Ada", true},
		{"json dash falls back to name", value, "Hidden", "h", true},
		{"json dash hides tag", value, "-", nil, false},
		{"unexported", value, "private", nil, false},
		{"unknown", value, "nope", nil, false},
		{"pointer to struct", &value, "id", 7, true},
		{"nil embedded pointer", value, "zone", nil, false},
		{"promoted field", withEmbedded, "zone", "eu", true},
		{"map entry", Record{"a": 1}, "a", 1, true},
		{"map missing", Record{"a": 1}, "b", nil, false},
		{"map nil entry", Record{"a": nil}, "a", nil, true},
		{"non-string keys", map[int]string{1: "x"}, "1", nil, false},
		{"nil", nil, "a", nil, false},
		{"scalar", 42, "a", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.record, tt.field)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Lookup(%q) = (%v, %v), want (%v, %v)", tt.field, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLookupNamedStringKeys(t *testing.T) {
	type key string
	got, ok := Lookup(map[key]int{"n": 3}, "n")
	if !ok || got != 3 {
		t.Errorf("Lookup = (%v, %v), want (3, true)", got, ok)
	}
}

func TestCompareValues(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	var nilPtr *int
	five := 5

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 1, 2, -1},
		{"equal ints", 3, 3, 0},
		{"int vs float", 2, 1.5, 1},
		{"int vs uint", int8(-1), uint(0), -1},
		{"large uint vs int", uint64(1 << 63), int64(1), 1},
		{"float32 vs int", float32(2.5), 2, 1},
		{"strings", "apple", "banana", -1},
		{"strings are case sensitive", "B", "a", -1},
		{"bools", false, true, -1},
		{"times", late, early, 1},
		{"pointer deref", &five, 4, 1},
		{"nil last", nil, 1, 1},
		{"nil pointer last", "a", nilPtr, -1},
		{"both missing", nil, nilPtr, 0},
		{"bool before number", true, 0, -1},
		{"number before string", 100, "1", -1},
		{"string before time", "z", early, -1},
		{"time before other", early, []int{1}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareValues(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("CompareValues(%v, %v) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
			if back := CompareValues(tt.b, tt.a); sign(back) != -tt.want {
				t.Errorf("CompareValues(%v, %v) = %d, want sign %d", tt.b, tt.a, back, -tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestFormatValue(t *testing.T) {
	stamp := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name   string
		value  any
		format Format
		want   string
	}{
		{"nil", nil, FormatDefault, ""},
		{"string", "plain", FormatDefault, "plain"},
		{"int", 42, FormatDefault, "42"},
		{"float", 2.5, FormatDefault, "2.5"},
		{"bool", true, FormatDefault, "true"},
		{"time", stamp, FormatDefault, "2024-03-09 14:05"},
		{"newlines flattened", "a\nb\tc", FormatDefault, "a b c"},
		{"bytes", 1500000, FormatBytes, "1.5 MB"},
		{"bytes negative falls back", -3, FormatBytes, "-3"},
		{"comma int", 1234567, FormatComma, "1,234,567"},
		{"comma uint", uint64(1000), FormatComma, "1,000"},
		{"float format", 3.1400, FormatFloat, "3.14"},
		{"format ignored for strings", "x", FormatBytes, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.value, tt.format); got != tt.want {
				t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
			}
		})
	}
}

func TestFormatValueRelative(t *testing.T) {
	got := FormatValue(time.Now().Add(-3*time.Hour), FormatRelative)
	if got != "3 hours ago" {
		t.Errorf("FormatValue(relative) = %q, want %q", got, "3 hours ago")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"", FormatDefault, false},
		{"default", FormatDefault, false},
		{"bytes", FormatBytes, false},
		{"relative", FormatRelative, false},
		{"Bytes", FormatDefault, true},
		{"percent", FormatDefault, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, error %v", tt.name, got, err, tt.want, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.name, err)
		}
	}
}

func TestValidateColumns(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		wantErr error
	}{
		{"valid", sampleColumns(), nil},
		{"empty set", nil, nil},
		{"duplicate key", []Column{{Key: "a", Field: "a"}, {Key: "a", Field: "b"}}, ErrDuplicateColumnKey},
		{"empty field", []Column{{Key: "a"}}, ErrEmptyColumnField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumns(tt.columns)
			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidateColumns() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateColumns() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
