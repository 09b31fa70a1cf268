package extractor

import (
	"fmt"

	"github.com/andybalholm/cascadia"
)

// FieldKind selects what to pull from a matched element.
type FieldKind string

const (
	KindText      FieldKind = "text"
	KindAttribute FieldKind = "attribute"
)

// FieldSpec describes one output field of a schema. Attribute is required
// for attribute fields and must be empty for text fields.
type FieldSpec struct {
	Name      string    `json:"name"`
	Selector  string    `json:"selector"`
	Kind      FieldKind `json:"type"`
	Attribute string    `json:"attribute,omitempty"`
}

// Schema maps repeating DOM elements to structured records. BaseSelector
// identifies the root element of each record; field selectors are evaluated
// relative to that root.
type Schema struct {
	Name         string      `json:"name"`
	BaseSelector string      `json:"baseSelector"`
	Fields       []FieldSpec `json:"fields"`
}

// Record is one extracted result. Every schema field name is present as a
// key; a nil value means the selector (or attribute) matched nothing.
type Record map[string]*string

// InvalidSelectorError reports a CSS selector that cannot be parsed.
type InvalidSelectorError struct {
	Selector string
	Err      error
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q: %v", e.Selector, e.Err)
}

func (e *InvalidSelectorError) Unwrap() error { return e.Err }

type compiledField struct {
	spec    FieldSpec
	matcher cascadia.Selector
}

// CompiledSchema is a validated schema with all selectors parsed.
type CompiledSchema struct {
	schema Schema
	base   cascadia.Selector
	fields []compiledField
}

// Compile validates the schema and parses every selector. Unparseable
// selectors surface as *InvalidSelectorError.
func (s Schema) Compile() (*CompiledSchema, error) {
	if len(s.Fields) == 0 {
		return nil, fmt.Errorf("schema %q has no fields", s.Name)
	}

	base, err := cascadia.Compile(s.BaseSelector)
	if err != nil {
		return nil, &InvalidSelectorError{Selector: s.BaseSelector, Err: err}
	}

	cs := &CompiledSchema{schema: s, base: base}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("schema %q: field with empty name", s.Name)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("schema %q: duplicate field %q", s.Name, f.Name)
		}
		seen[f.Name] = true

		switch f.Kind {
		case KindText:
			if f.Attribute != "" {
				return nil, fmt.Errorf("schema %q: field %q: attribute set on a text field", s.Name, f.Name)
			}
		case KindAttribute:
			if f.Attribute == "" {
				return nil, fmt.Errorf("schema %q: field %q: attribute kind requires an attribute name", s.Name, f.Name)
			}
		default:
			return nil, fmt.Errorf("schema %q: field %q: unknown kind %q", s.Name, f.Name, f.Kind)
		}

		m, err := cascadia.Compile(f.Selector)
		if err != nil {
			return nil, &InvalidSelectorError{Selector: f.Selector, Err: err}
		}
		cs.fields = append(cs.fields, compiledField{spec: f, matcher: m})
	}

	return cs, nil
}
