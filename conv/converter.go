package conv

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"
)

// DefaultTimeLayout is the layout used to render time values
const DefaultTimeLayout = time.RFC3339Nano

var timeType = reflect.TypeOf(time.Time{})

// IsNumeric returns true if value is of any integer or float kind
func IsNumeric(value interface{}) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// AsInt returns an int for integer kinds and integral floats
func AsInt(value interface{}) (int, bool) {
	switch actual := value.(type) {
	case int:
		return actual, true
	case int64:
		return int(actual), true
	case nil:
		return 0, false
	}
	srcValue := reflect.ValueOf(value)
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(srcValue.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v := srcValue.Uint()
		if v > math.MaxInt {
			return 0, false
		}
		return int(v), true
	case reflect.Float32, reflect.Float64:
		f := srcValue.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, false
		}
		if f >= math.MaxInt || f < math.MinInt {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// AsFloat returns a float64 for numeric kinds
func AsFloat(value interface{}) (float64, bool) {
	if value == nil {
		return 0, false
	}
	srcValue := reflect.ValueOf(value)
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(srcValue.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(srcValue.Uint()), true
	case reflect.Float32, reflect.Float64:
		return srcValue.Float(), true
	}
	return 0, false
}

// ToString renders a scalar value as string
func ToString(value interface{}) (string, error) {
	switch actual := value.(type) {
	case string:
		return actual, nil
	case []byte:
		return string(actual), nil
	case time.Time:
		return actual.Format(DefaultTimeLayout), nil
	case *time.Time:
		if actual == nil {
			return "", fmt.Errorf("cannot convert nil %T to string", value)
		}
		return actual.Format(DefaultTimeLayout), nil
	case nil:
		return "", fmt.Errorf("cannot convert nil to string")
	}
	srcValue := reflect.ValueOf(value)
	switch srcValue.Kind() {
	case reflect.String:
		return srcValue.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(srcValue.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(srcValue.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(srcValue.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(srcValue.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(srcValue.Float(), 'f', -1, 64), nil
	}
	return "", fmt.Errorf("cannot convert %T to string", value)
}

// IsTime returns true for time.Time and *time.Time
func IsTime(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t == timeType
}

// Compare orders two scalars: numbers against numbers, strings against strings.
// It returns -1, 0 or 1, or an error when values are not mutually comparable.
func Compare(a, b interface{}) (int, error) {
	if af, ok := AsFloat(a); ok {
		bf, ok := AsFloat(b)
		if !ok {
			return 0, fmt.Errorf("cannot compare %T with %T", a, b)
		}
		ai, aInt := AsInt(a)
		bi, bInt := AsInt(b)
		if aInt && bInt {
			return compareOrdered(ai, bi), nil
		}
		return compareOrdered(af, bf), nil
	}
	as, ok := asString(a)
	if !ok {
		return 0, fmt.Errorf("cannot compare %T with %T", a, b)
	}
	bs, ok := asString(b)
	if !ok {
		return 0, fmt.Errorf("cannot compare %T with %T", a, b)
	}
	return compareOrdered(as, bs), nil
}

func asString(value interface{}) (string, bool) {
	if value == nil {
		return "", false
	}
	srcValue := reflect.ValueOf(value)
	if srcValue.Kind() != reflect.String {
		return "", false
	}
	return srcValue.String(), true
}

func compareOrdered[T int | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
