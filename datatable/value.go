// value.go - Field access, value ordering and cell formatting
package datatable

import (
	"cmp"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Record is the loosely-typed record shape produced by decoding JSON,
// YAML, TOML or CBOR documents.
type Record = map[string]any

// FieldFunc reads the named field of a record. The boolean reports
// whether the field exists; a present field holding nil is treated the
// same as a missing one when sorting.
type FieldFunc[T any] func(record T, field string) (any, bool)

// Lookup is the default FieldFunc. It reads string-keyed map entries
// and exported struct fields, matching struct fields by Go name or by
// the name in a `table`, `json` or `yaml` tag. Pointers and interfaces
// are followed; a nil pointer has no fields.
func Lookup[T any](record T, field string) (any, bool) {
	return lookupValue(reflect.ValueOf(record), field)
}

func lookupValue(value reflect.Value, field string) (any, bool) {
	value = indirect(value)
	if !value.IsValid() {
		return nil, false
	}

	switch value.Kind() {
	case reflect.Map:
		keyType := value.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		entry := value.MapIndex(reflect.ValueOf(field).Convert(keyType))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true

	case reflect.Struct:
		index, ok := structFieldIndex(value.Type(), field)
		if !ok {
			return nil, false
		}
		fieldValue, err := value.FieldByIndexErr(index)
		if err != nil || !fieldValue.CanInterface() {
			// Nil embedded pointer on the path.
			return nil, false
		}
		return fieldValue.Interface(), true
	}

	return nil, false
}

// indirect follows pointers and interfaces. It returns the zero Value
// when it meets a nil.
func indirect(value reflect.Value) reflect.Value {
	for value.IsValid() && (value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface) {
		if value.IsNil() {
			return reflect.Value{}
		}
		value = value.Elem()
	}
	return value
}

type structFieldKey struct {
	structType reflect.Type
	field      string
}

// structFieldIndexes caches field lookups by (type, name). Negative
// results are cached as nil.
var structFieldIndexes sync.Map

func structFieldIndex(structType reflect.Type, field string) ([]int, bool) {
	key := structFieldKey{structType: structType, field: field}
	if cached, ok := structFieldIndexes.Load(key); ok {
		index := cached.([]int)
		return index, index != nil
	}

	var found []int
	for _, candidate := range reflect.VisibleFields(structType) {
		if !candidate.IsExported() || candidate.Anonymous {
			continue
		}
		if candidate.Name == field || tagName(candidate.Tag, "table") == field ||
			tagName(candidate.Tag, "json") == field || tagName(candidate.Tag, "yaml") == field {
			found = candidate.Index
			break
		}
	}
	structFieldIndexes.Store(key, found)
	return found, found != nil
}

func tagName(tag reflect.StructTag, key string) string {
	name, _, _ := strings.Cut(tag.Get(key), ",")
	if name == "-" {
		return ""
	}
	return name
}

// ─── Ordering ──────────────────────────────────────────────────────────────────

// Kind ranks used to order values of different kinds against each other.
const (
	rankBool = iota
	rankNumber
	rankString
	rankTime
	rankOther
)

// CompareValues is the ascending comparator used by DeriveSorted. It
// returns a negative number when a sorts before b, zero when they are
// equal and a positive number otherwise.
//
// Numbers of any Go integer or float kind compare numerically with each
// other, strings compare bytewise, false sorts before true and times
// compare chronologically. Missing values (nil, nil pointers) sort
// after every present value. Values of different kinds order by kind:
// bool, number, string, time, then anything else by its %v text.
func CompareValues(a, b any) int {
	a, b = normalize(a), normalize(b)

	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	rankA, rankB := rankOf(a), rankOf(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch x := a.(type) {
	case bool:
		y := b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case string:
		return strings.Compare(x, b.(string))
	case time.Time:
		return x.Compare(b.(time.Time))
	case int64, uint64, float64:
		return compareNumbers(a, b)
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// normalize reduces a value to one of nil, bool, int64, uint64,
// float64, string, time.Time, or the dereferenced value itself.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	if t, ok := v.(time.Time); ok {
		return t
	}

	value := indirect(reflect.ValueOf(v))
	if !value.IsValid() {
		return nil
	}
	if t, ok := value.Interface().(time.Time); ok {
		return t
	}

	switch value.Kind() {
	case reflect.Bool:
		return value.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value.Uint()
	case reflect.Float32, reflect.Float64:
		return value.Float()
	case reflect.String:
		return value.String()
	}
	return value.Interface()
}

func rankOf(v any) int {
	switch v.(type) {
	case bool:
		return rankBool
	case int64, uint64, float64:
		return rankNumber
	case string:
		return rankString
	case time.Time:
		return rankTime
	}
	return rankOther
}

// compareNumbers compares two normalized numbers. Integer pairs compare
// exactly; any float involvement compares as float64.
func compareNumbers(a, b any) int {
	switch x := a.(type) {
	case int64:
		switch y := b.(type) {
		case int64:
			return cmp.Compare(x, y)
		case uint64:
			if x < 0 {
				return -1
			}
			return cmp.Compare(uint64(x), y)
		}
	case uint64:
		switch y := b.(type) {
		case uint64:
			return cmp.Compare(x, y)
		case int64:
			if y < 0 {
				return 1
			}
			return cmp.Compare(x, uint64(y))
		}
	}
	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float64:
		return x
	}
	return 0
}

// ─── Formatting ────────────────────────────────────────────────────────────────

// FormatValue renders a cell value as single-line display text.
// Missing values render as the empty string.
func FormatValue(v any, format Format) string {
	v = normalize(v)
	if v == nil {
		return ""
	}

	switch format {
	case FormatBytes:
		switch x := v.(type) {
		case int64:
			if x >= 0 {
				return humanize.Bytes(uint64(x))
			}
		case uint64:
			return humanize.Bytes(x)
		case float64:
			if x >= 0 {
				return humanize.Bytes(uint64(x))
			}
		}
	case FormatComma:
		switch x := v.(type) {
		case int64:
			return humanize.Comma(x)
		case uint64:
			return humanize.BigComma(new(big.Int).SetUint64(x))
		case float64:
			return humanize.Commaf(x)
		}
	case FormatFloat:
		if x, ok := v.(float64); ok {
			return humanize.Ftoa(x)
		}
	case FormatRelative:
		if t, ok := v.(time.Time); ok {
			return humanize.Time(t)
		}
	}

	return singleLine(defaultText(v))
}

func defaultText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.Format("2006-01-02 15:04")
	}
	return fmt.Sprint(v)
}

func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n\t") {
		return s
	}
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
}
