package validation

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// IsValidID reports whether id is a positive whole number. Integer kinds
// must be > 0; float kinds must additionally be finite and have no
// fractional part. Anything else, strings included, is rejected.
func IsValidID(id any) bool {
	if id == nil {
		return false
	}

	v := reflect.ValueOf(id)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() > 0
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0 && f == math.Trunc(f)
	default:
		return false
	}
}

// ParseID converts a path or query value into an id. ok is false when the
// text is not an integer or the integer is not a valid id.
func ParseID(raw string) (id int, ok bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return id, IsValidID(id)
}

// IsValidStrings reports whether every value is non-empty after trimming.
// Calling it with no values returns false.
func IsValidStrings(values ...string) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// IsValidObject reports whether every field of obj, except the ones named
// in excluded, holds a usable value: strings must be non-blank and numbers
// must be positive. Fields of any other kind fail unless excluded. Fields
// are named by their json tag. obj may be a struct, a pointer to one, or a
// map with string keys.
func IsValidObject(obj any, excluded ...string) bool {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			name, ok := jsonName(t.Field(i))
			if !ok || slices.Contains(excluded, name) {
				continue
			}
			if !isUsableValue(v.Field(i)) {
				return false
			}
		}
		return true

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return false
		}
		iter := v.MapRange()
		for iter.Next() {
			if slices.Contains(excluded, iter.Key().String()) {
				continue
			}
			if !isUsableValue(iter.Value()) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

func isUsableValue(v reflect.Value) bool {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() > 0
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
	default:
		return false
	}
}

// IsPropertyOf reports whether key is the json name of a field declared
// on shape, which must be a struct or a pointer to one.
func IsPropertyOf(key string, shape any) bool {
	return slices.Contains(Fields(shape), key)
}

// Fields lists the json field names declared on a struct type.
func Fields(shape any) []string {
	t := reflect.TypeOf(shape)
	if t == nil {
		return nil
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name, ok := jsonName(t.Field(i)); ok {
			names = append(names, name)
		}
	}
	return names
}

// IsEmptyObject reports whether obj carries nothing: nil, a nil pointer,
// an empty map or slice, or a zero-value struct. Store lookups report
// absence with a found flag instead; this stays for boundary payload
// checks.
func IsEmptyObject(obj any) bool {
	if obj == nil {
		return true
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return v.Len() == 0
	case reflect.Struct:
		return v.IsZero()
	default:
		return false
	}
}

func jsonName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, true
}
