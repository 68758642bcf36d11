package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbind/pkg/model"
)

func validFormat(format string) bool {
	switch format {
	case "text", "json", "yaml":
		return true
	default:
		return false
	}
}

func writeItems(w io.Writer, format string, fields []model.Field, items []any) error {
	if format == "text" {
		for _, item := range items {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return err
			}
		}
		return nil
	}

	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		records = append(records, record(fields, item, map[*model.Type]bool{}))
	}
	return encode(w, format, records)
}

func encode(w io.Writer, format string, value any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.New("unsupported output format " + format)
	}
}

// record reads an instance back through its field getters, so unexported
// fields reached by accessor methods are exported too.
func record(fields []model.Field, item any, seen map[*model.Type]bool) map[string]any {
	out := make(map[string]any, len(fields))
	for _, field := range fields {
		if field.Get == nil || field.Kind == nil {
			continue
		}
		value, err := field.Get(item)
		if err != nil {
			continue
		}
		out[field.Name] = plain(field.Kind, value, seen)
	}
	return out
}

func plain(kind model.Kind, value any, seen map[*model.Type]bool) any {
	switch kind := kind.(type) {
	case model.Nested:
		nested, err := model.Resolve(kind.Type)
		if err != nil || len(nested) == 0 || seen[kind.Type] || value == nil {
			return fmt.Sprint(value)
		}
		seen[kind.Type] = true
		defer delete(seen, kind.Type)
		return record(nested, addressable(value), seen)
	case model.Choice:
		for _, option := range kind.Options {
			if option.Value == value {
				return option.Label
			}
		}
		return fmt.Sprint(value)
	default:
		return value
	}
}

// addressable returns a pointer to a copy of value when value is not already
// a pointer, since getters read through pointer receivers.
func addressable(value any) any {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		return value
	}
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	return ptr.Interface()
}
