package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extract compiles schema and applies it to html in one call.
//
// One record is produced per element matched by the schema's base selector,
// in document order. Zero base matches is a valid empty result, not an
// error; errors are limited to invalid schemas and unparseable HTML.
func Extract(html string, schema Schema) ([]Record, error) {
	cs, err := schema.Compile()
	if err != nil {
		return nil, err
	}
	return ExtractHTML(html, cs)
}

// ExtractHTML parses html and applies an already compiled schema.
func ExtractHTML(html string, cs *CompiledSchema) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return ExtractDocument(doc, cs), nil
}

// ExtractDocument applies a compiled schema to a parsed document. Pure
// function of its inputs; safe for concurrent use across documents.
func ExtractDocument(doc *goquery.Document, cs *CompiledSchema) []Record {
	records := []Record{}
	doc.FindMatcher(cs.base).Each(func(_ int, root *goquery.Selection) {
		records = append(records, extractRecord(root, cs))
	})
	return records
}

// extractRecord evaluates every field selector scoped to the record root.
// Scoping is what keeps sibling records independent: an unscoped query would
// resolve every record's field to the first match in the whole document.
func extractRecord(root *goquery.Selection, cs *CompiledSchema) Record {
	rec := make(Record, len(cs.fields))
	for _, f := range cs.fields {
		rec[f.spec.Name] = nil

		sel := root.FindMatcher(f.matcher).First()
		if sel.Length() == 0 {
			continue
		}

		switch f.spec.Kind {
		case KindText:
			v := strings.TrimSpace(sel.Text())
			rec[f.spec.Name] = &v
		case KindAttribute:
			// Attribute values are kept raw; a present-but-empty attribute
			// is an empty string, a missing attribute stays nil.
			if v, ok := sel.Attr(f.spec.Attribute); ok {
				rec[f.spec.Name] = &v
			}
		}
	}
	return rec
}
