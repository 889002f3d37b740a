package route

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var bracketReplacer = strings.NewReplacer("[", ".", "]", "")

// Lookup walks a dotted path ("user.address.city", "items.0", "items[0]")
// through params. Maps keyed by strings, exported struct fields and slice
// indexes are followed. A missing segment at any depth reports false; it
// never panics.
func Lookup(params Params, path string) (any, bool) {
	if params == nil {
		return nil, false
	}

	var current any = params
	for _, segment := range splitPath(path) {
		next, ok := step(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Get returns the value at path converted to T, or fallback when the path is
// absent. Values that are not already a T are decoded with mapstructure in
// weakly typed mode, so a map can fill a struct and "42" can fill an int.
// A value that cannot be converted also yields fallback.
func Get[T any](params Params, path string, fallback T) T {
	value, ok := Lookup(params, path)
	if !ok {
		return fallback
	}

	if typed, ok := value.(T); ok {
		return typed
	}

	if value == nil {
		var zero T
		return zero
	}

	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fallback
	}
	if err := decoder.Decode(value); err != nil {
		return fallback
	}
	return out
}

func splitPath(path string) []string {
	if strings.ContainsAny(path, "[]") {
		path = bracketReplacer.Replace(path)
	}
	return strings.Split(path, ".")
}

func step(current any, segment string) (any, bool) {
	switch c := current.(type) {
	case nil:
		return nil, false
	case Params:
		v, ok := c[segment]
		return v, ok
	case map[string]any:
		v, ok := c[segment]
		return v, ok
	case []any:
		return index(len(c), segment, func(i int) any { return c[i] })
	}

	rv := reflect.ValueOf(current)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(segment).Convert(keyType))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true

	case reflect.Struct:
		field, ok := rv.Type().FieldByName(segment)
		if !ok || !field.IsExported() {
			return nil, false
		}
		v, err := rv.FieldByIndexErr(field.Index)
		if err != nil {
			return nil, false
		}
		return v.Interface(), true

	case reflect.Slice, reflect.Array:
		return index(rv.Len(), segment, func(i int) any { return rv.Index(i).Interface() })
	}

	return nil, false
}

func index(length int, segment string, at func(int) any) (any, bool) {
	i, err := strconv.Atoi(segment)
	if err != nil || i < 0 || i >= length {
		return nil, false
	}
	return at(i), true
}
