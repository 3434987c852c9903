package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/specialistvlad/toolprofile/internal/ctxlog"
)

// Decoder is the HCL-specific implementation of the config.Decoder interface.
type Decoder struct {
	json bool
}

// NewDecoder creates a decoder for HCL native syntax.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// NewJSONDecoder creates a decoder for HCL JSON syntax.
func NewJSONDecoder() *Decoder {
	return &Decoder{json: true}
}

// Decode parses src, evaluates every top-level attribute in dependency order
// and returns the entries in declaration order. Null attributes are absent and
// produce no entry.
func (d *Decoder) Decode(ctx context.Context, name string, src []byte) (*config.Declaration, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL decoder started.", "source", name, "json", d.json)

	parser := hclparse.NewParser()
	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if d.json {
		file, diags = parser.ParseJSON(src, name)
	} else {
		file, diags = parser.ParseHCL(src, name)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", config.ErrMalformedProfile, name, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", config.ErrMalformedProfile, name, diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	res := newResolver(attrs)
	decl := &config.Declaration{Source: name}
	for _, attr := range ordered {
		val, err := res.resolve(attr.Name, nil)
		if err != nil {
			return nil, err
		}
		entry, err := entryFromValue(attr.Name, val, position(attr.Range))
		if err != nil {
			return nil, err
		}
		if entry == nil {
			logger.Debug("Attribute is null, treating it as absent.", "key", attr.Name)
			continue
		}
		entry.Alias = aliasOf(attr.Expr)
		decl.Entries = append(decl.Entries, entry)
	}

	logger.Debug("HCL decoding complete.", "source", name, "entries", len(decl.Entries))
	return decl, nil
}

// aliasOf returns the referenced key when expr is a bare reference to another
// top-level attribute. Only native syntax can express one; JSON strings are
// templates and never alias.
func aliasOf(expr hcl.Expression) string {
	st, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	if !ok || len(st.Traversal) != 1 {
		return ""
	}
	return st.Traversal.RootName()
}

func position(rng hcl.Range) string {
	return fmt.Sprintf("%s:%d", rng.Filename, rng.Start.Line)
}
