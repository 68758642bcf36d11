package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML overlay files.
// When fsys is nil or no overlay files are present, the returned store is
// empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// LoadPath loads a single overlay file, or every overlay file below a
// directory.
func LoadPath(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("uischema: %w", err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uischema: read %s: %w", path, err)
	}
	store := newStore()
	if err := store.add(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the captions configured for the named type.
func (s *Store) Form(name string) (FormConfig, bool) {
	form, ok := s.Lookup(name)
	if !ok {
		return FormConfig{}, false
	}
	return form.Form, true
}

// Lookup returns the full overlay for the named type.
func (s *Store) Lookup(name string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	form, ok := s.forms[name]
	return form, ok
}

// Names lists the configured type names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.forms))
	for name := range s.forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any overlays.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

func newStore() *Store {
	return &Store{forms: make(map[string]Form)}
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Form   FormConfig             `json:"form" yaml:"form"`
	Fields map[string]FieldConfig `json:"fields" yaml:"fields"`
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}

	for rawName, raw := range doc.Forms {
		name := strings.TrimSpace(rawName)
		if name == "" {
			return fmt.Errorf("uischema: file %s defines an empty type name", source)
		}
		if _, exists := s.forms[name]; exists {
			return fmt.Errorf("uischema: duplicate form %q (file %s)", name, source)
		}

		form, err := normaliseForm(raw, name, source)
		if err != nil {
			return err
		}
		s.forms[name] = form
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func normaliseForm(raw formFile, name, source string) (Form, error) {
	form := Form{
		Name:   name,
		Source: source,
		Form: FormConfig{
			Title:       sanitizeLabel(raw.Form.Title),
			SubmitLabel: sanitizeLabel(raw.Form.SubmitLabel),
			DeleteLabel: sanitizeLabel(raw.Form.DeleteLabel),
			DoneLabel:   sanitizeLabel(raw.Form.DoneLabel),
			ListLabel:   sanitizeLabel(raw.Form.ListLabel),
			ClearOnAdd:  raw.Form.ClearOnAdd,
		},
		Fields: make(map[string]FieldConfig, len(raw.Fields)),
	}

	for key, cfg := range raw.Fields {
		normalised := NormalizeFieldName(key)
		if normalised == "" {
			return Form{}, fmt.Errorf("uischema: form %q (file %s) field key %q normalises to empty name", name, source, key)
		}
		if _, exists := form.Fields[normalised]; exists {
			return Form{}, fmt.Errorf("uischema: form %q (file %s) defines duplicate field %q", name, source, normalised)
		}
		cloned := cfg
		cloned.Label = sanitizeLabel(cfg.Label)
		if cfg.Order != nil {
			order := *cfg.Order
			cloned.Order = &order
		}
		cloned.OriginalName = key
		form.Fields[normalised] = cloned
	}

	return form, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
