package openapi

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbind/pkg/model"
)

const (
	// ExtensionKey namespaces the form metadata attached to schemas.
	ExtensionKey = "x-formgen"

	componentsPrefix = "#/components/schemas/"
)

var componentNamePattern = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Options tunes the export.
type Options struct {
	// Labeler supplies titles for fields without an explicit label.
	Labeler model.Labeler
	// Decorators run while resolving fields, as in the form engine.
	Decorators []model.Decorator
}

// Schema returns the object schema for typ with nested marked types inlined.
// A nested type that refers back to a type being exported is emitted as an
// empty object.
func Schema(typ *model.Type, opts Options) (*openapi3.Schema, error) {
	e := &exporter{opts: opts}
	return e.schema(typ, map[*model.Type]bool{})
}

// Document builds an OpenAPI document whose components hold one schema per
// type, nested types included. Nested fields reference their component.
func Document(ctx context.Context, title, version string, types []*model.Type, opts Options) (*openapi3.T, error) {
	if len(types) == 0 {
		return nil, errors.New("openapi: at least one type is required")
	}
	e := &exporter{opts: opts, refs: true, components: openapi3.Schemas{}}
	for _, typ := range types {
		if typ == nil {
			return nil, fmt.Errorf("openapi: %w", model.ErrInvalidType)
		}
		if _, err := e.component(typ); err != nil {
			return nil, err
		}
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: e.components,
		},
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// ComponentName maps a type name onto the character set allowed for
// component keys.
func ComponentName(typ *model.Type) string {
	return componentNamePattern.ReplaceAllString(typ.Name, "_")
}

type exporter struct {
	opts       Options
	refs       bool
	components openapi3.Schemas
	named      map[*model.Type]string
}

func (e *exporter) component(typ *model.Type) (string, error) {
	if name, ok := e.named[typ]; ok {
		return name, nil
	}
	if e.named == nil {
		e.named = make(map[*model.Type]string)
	}
	name := ComponentName(typ)
	if _, ok := e.components[name]; ok {
		return "", fmt.Errorf("openapi: component %q is defined by two types", name)
	}

	// registered before filling so self references resolve
	schema := openapi3.NewObjectSchema()
	e.named[typ] = name
	e.components[name] = openapi3.NewSchemaRef("", schema)

	if err := e.fill(schema, typ, nil); err != nil {
		delete(e.named, typ)
		delete(e.components, name)
		return "", err
	}
	return name, nil
}

func (e *exporter) schema(typ *model.Type, path map[*model.Type]bool) (*openapi3.Schema, error) {
	schema := openapi3.NewObjectSchema()
	if err := e.fill(schema, typ, path); err != nil {
		return nil, err
	}
	return schema, nil
}

func (e *exporter) fill(schema *openapi3.Schema, typ *model.Type, path map[*model.Type]bool) error {
	fields, err := model.Resolve(typ, e.opts.Decorators...)
	if err != nil && !errors.Is(err, model.ErrUnmarkedType) {
		return fmt.Errorf("openapi: resolve %v: %w", typeName(typ), err)
	}

	schema.Title = typ.Name
	schema.Extensions = map[string]any{
		ExtensionKey: map[string]any{"marked": typ.Marked},
	}

	if path != nil {
		path[typ] = true
		defer delete(path, typ)
	}

	for _, field := range fields {
		ref, err := e.property(field, path)
		if err != nil {
			return err
		}
		if ref == nil {
			continue
		}
		schema.WithPropertyRef(field.Name, ref)
	}
	return nil
}

func (e *exporter) property(field model.Field, path map[*model.Type]bool) (*openapi3.SchemaRef, error) {
	var prop *openapi3.Schema
	switch kind := field.Kind.(type) {
	case model.Text:
		prop = openapi3.NewStringSchema()
	case model.Number:
		if kind.Integer {
			prop = openapi3.NewIntegerSchema()
		} else {
			prop = openapi3.NewFloat64Schema()
		}
	case model.Toggle:
		prop = openapi3.NewBoolSchema()
	case model.Choice:
		labels := make([]any, 0, len(kind.Options))
		for _, option := range kind.Options {
			labels = append(labels, option.Label)
		}
		prop = openapi3.NewStringSchema().WithEnum(labels...)
	case model.Nested:
		// unmarked nested types get no input, so they are not exported either
		if kind.Type == nil || !kind.Type.Marked {
			return nil, nil
		}
		if e.refs {
			name, err := e.component(kind.Type)
			if err != nil {
				return nil, err
			}
			return openapi3.NewSchemaRef(componentsPrefix+name, e.components[name].Value), nil
		}
		if path[kind.Type] {
			prop = openapi3.NewObjectSchema()
			prop.Title = kind.Type.Name
			break
		}
		nested, err := e.schema(kind.Type, path)
		if err != nil {
			return nil, err
		}
		prop = nested
	default:
		return nil, nil
	}

	prop.Title = model.DisplayLabel(field, e.opts.Labeler)
	meta := map[string]any{"order": field.Order}
	if prior, ok := prop.Extensions[ExtensionKey].(map[string]any); ok {
		for key, value := range prior {
			meta[key] = value
		}
	}
	prop.Extensions = map[string]any{ExtensionKey: meta}
	return openapi3.NewSchemaRef("", prop), nil
}

func typeName(typ *model.Type) string {
	if typ == nil {
		return "<nil>"
	}
	return typ.Name
}
