// Package toml implements the small TOML subset used by arena
// configuration files: comments, [tables], dotted table headers, and
// key = value pairs of strings, integers, floats, and booleans.
package toml

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Unmarshal parses TOML data into a struct pointer
// Fields map by `toml:"name"` tag, falling back to lowercase field name
func Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("toml: target must be a struct pointer, got %T", v)
	}

	target := rv.Elem()
	current := target

	for lineNo, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return fmt.Errorf("toml: line %d: unterminated table header", lineNo+1)
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			tbl, err := resolveTable(target, name)
			if err != nil {
				return fmt.Errorf("toml: line %d: %w", lineNo+1, err)
			}
			current = tbl
			continue
		}

		key, val, ok := splitKeyValue(line)
		if !ok {
			return fmt.Errorf("toml: line %d: expected key = value", lineNo+1)
		}
		if err := setField(current, key, val); err != nil {
			return fmt.Errorf("toml: line %d: %w", lineNo+1, err)
		}
	}
	return nil
}

func splitKeyValue(line string) (key, val string, ok bool) {
	i := strings.Index(line, "=")
	if i < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	val = strings.TrimSpace(line[i+1:])

	// Strip trailing comment outside of quoted strings
	if !strings.HasPrefix(val, `"`) {
		if j := strings.Index(val, "#"); j >= 0 {
			val = strings.TrimSpace(val[:j])
		}
	}
	return key, val, key != "" && val != ""
}

func resolveTable(root reflect.Value, name string) (reflect.Value, error) {
	current := root
	for _, part := range strings.Split(name, ".") {
		field, err := fieldByKey(current, part)
		if err != nil {
			return reflect.Value{}, err
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("table %q is not a struct", name)
		}
		current = field
	}
	return current, nil
}

func fieldByKey(v reflect.Value, key string) (reflect.Value, error) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("toml")
		if tag == "-" {
			continue
		}
		if tag == key || (tag == "" && strings.EqualFold(f.Name, key)) {
			return v.Field(i), nil
		}
	}
	return reflect.Value{}, fmt.Errorf("unknown key %q", key)
}

func setField(v reflect.Value, key, val string) error {
	field, err := fieldByKey(v, key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set key %q", key)
	}

	switch field.Kind() {
	case reflect.String:
		if !strings.HasPrefix(val, `"`) || !strings.HasSuffix(val, `"`) || len(val) < 2 {
			return fmt.Errorf("key %q: expected quoted string", key)
		}
		s, err := strconv.Unquote(val)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		field.SetString(s)

	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		field.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		field.SetFloat(f)

	default:
		return fmt.Errorf("key %q: unsupported field kind %s", key, field.Kind())
	}
	return nil
}
