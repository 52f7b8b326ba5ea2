package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// structElem checks that v is a non-nil pointer to a struct and returns
// the addressed struct value. bindErr is wrapped into the failure so
// callers can classify it with errors.Is.
func structElem(v any, bindErr error) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: destination must be a non-nil pointer", bindErr)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: destination must point to a struct", bindErr)
	}
	return rv, nil
}

// bindToStruct binds string values to struct fields using reflection.
// tagName selects the struct tag to read (e.g., "query").
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv, err := structElem(v, bindErr)
	if err != nil {
		return err
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rv.Field(i)
		sf := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(sf, tagName)
		if skip {
			continue
		}

		raw, exists := values[name]
		if !exists || len(raw) == 0 {
			continue
		}

		if err := setFieldValue(field, raw); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, sf.Name, err)
		}
	}

	return nil
}

// parseFieldTag resolves the parameter name for a struct field. Untagged
// fields bind by their lowercased name; a "-" tag skips the field.
func parseFieldTag(field reflect.StructField, tagName string) (paramName string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	// Drop tag options such as "name,omitempty".
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

// setFieldValue assigns string values to a single struct field,
// allocating through pointers and fanning out over slices.
func setFieldValue(field reflect.Value, values []string) error {
	switch field.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setFieldValue(field.Elem(), values)
	case reflect.Slice:
		return setSlice(field, values)
	}
	if len(values) == 0 {
		return nil
	}
	return setScalar(field, values[0])
}

func setScalar(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return conversionError(raw, field)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return conversionError(raw, field)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return conversionError(raw, field)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := parseBoolish(raw)
		if err != nil {
			return conversionError(raw, field)
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}

	return nil
}

func conversionError(raw string, field reflect.Value) error {
	return fmt.Errorf("invalid %s value %q", field.Kind(), raw)
}

// parseBoolish accepts everything strconv.ParseBool does plus the
// checkbox-style spellings HTML forms produce.
func parseBoolish(raw string) (bool, error) {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b, nil
	}
	switch strings.ToLower(raw) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", raw)
}

// setSlice fans multi-value parameters out into a slice field. A single
// value containing commas is treated as a comma-separated list.
func setSlice(field reflect.Value, values []string) error {
	var parts []string
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			parts = append(parts, strings.TrimSpace(p))
		}
	}

	out := reflect.MakeSlice(field.Type(), len(parts), len(parts))
	for i, p := range parts {
		if err := setFieldValue(out.Index(i), []string{p}); err != nil {
			return err
		}
	}

	field.Set(out)
	return nil
}
