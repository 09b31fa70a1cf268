package extractor

import (
	"errors"
	"testing"
)

func TestSchemaCompile_InvalidSelectors(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		want   string // offending selector
	}{
		{
			name: "invalid base selector",
			schema: Schema{
				BaseSelector: "li[",
				Fields:       []FieldSpec{{Name: "t", Selector: "h3", Kind: KindText}},
			},
			want: "li[",
		},
		{
			name: "invalid field selector",
			schema: Schema{
				BaseSelector: "li",
				Fields:       []FieldSpec{{Name: "t", Selector: "h3::", Kind: KindText}},
			},
			want: "h3::",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.schema.Compile()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var selErr *InvalidSelectorError
			if !errors.As(err, &selErr) {
				t.Fatalf("expected InvalidSelectorError, got %T: %v", err, err)
			}
			if selErr.Selector != tt.want {
				t.Fatalf("expected selector %q in error, got %q", tt.want, selErr.Selector)
			}
		})
	}
}

func TestSchemaCompile_Validation(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
	}{
		{
			name:   "no fields",
			schema: Schema{BaseSelector: "li"},
		},
		{
			name: "empty field name",
			schema: Schema{
				BaseSelector: "li",
				Fields:       []FieldSpec{{Selector: "h3", Kind: KindText}},
			},
		},
		{
			name: "duplicate field names",
			schema: Schema{
				BaseSelector: "li",
				Fields: []FieldSpec{
					{Name: "t", Selector: "h3", Kind: KindText},
					{Name: "t", Selector: "h4", Kind: KindText},
				},
			},
		},
		{
			name: "attribute kind without attribute name",
			schema: Schema{
				BaseSelector: "li",
				Fields:       []FieldSpec{{Name: "u", Selector: "a", Kind: KindAttribute}},
			},
		},
		{
			name: "attribute set on text field",
			schema: Schema{
				BaseSelector: "li",
				Fields:       []FieldSpec{{Name: "t", Selector: "h3", Kind: KindText, Attribute: "href"}},
			},
		},
		{
			name: "unknown kind",
			schema: Schema{
				BaseSelector: "li",
				Fields:       []FieldSpec{{Name: "t", Selector: "h3", Kind: "html"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.schema.Compile(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestSchemaCompile_Valid(t *testing.T) {
	schema := Schema{
		Name:         "ok",
		BaseSelector: "li:has(a.x)",
		Fields: []FieldSpec{
			{Name: "t", Selector: "h3.y", Kind: KindText},
			{Name: "u", Selector: "a.x", Kind: KindAttribute, Attribute: "href"},
		},
	}
	cs, err := schema.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(cs.fields) != 2 {
		t.Fatalf("expected 2 compiled fields, got %d", len(cs.fields))
	}
}
