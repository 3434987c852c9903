package hcl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Encoder writes declarations in HCL native syntax.
type Encoder struct{}

// NewEncoder creates an HCL native syntax encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders one attribute per entry, in declaration order. Aliased
// entries are written back as references when the referenced key still holds
// the same value.
func (e *Encoder) Encode(decl *config.Declaration) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, entry := range decl.Entries {
		if err := checkEntry(entry); err != nil {
			return nil, err
		}
		if target := aliasTarget(decl, entry); target != "" {
			body.SetAttributeTraversal(entry.Key, hcl.Traversal{hcl.TraverseRoot{Name: target}})
			continue
		}
		body.SetAttributeValue(entry.Key, valueOf(entry))
	}
	return f.Bytes(), nil
}

// JSONEncoder writes declarations in HCL JSON syntax.
type JSONEncoder struct{}

// NewJSONEncoder creates an HCL JSON syntax encoder.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

// Encode renders the declaration as a single JSON object with one member per
// entry, in declaration order. Strings are escaped so the JSON decoder does
// not read them as templates; aliases are written as a single interpolation,
// which HCL evaluates to the referenced value.
func (e *JSONEncoder) Encode(decl *config.Declaration) ([]byte, error) {
	if len(decl.Entries) == 0 {
		return []byte("{}\n"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, entry := range decl.Entries {
		if err := checkEntry(entry); err != nil {
			return nil, err
		}
		val := escapeTemplates(valueOf(entry))
		if target := aliasTarget(decl, entry); target != "" {
			val = cty.StringVal("${" + target + "}")
		}
		key, err := ctyjson.Marshal(cty.StringVal(entry.Key), cty.String)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", entry.Key, err)
		}
		out, err := ctyjson.Marshal(val, val.Type())
		if err != nil {
			return nil, fmt.Errorf("marshaling %s: %w", entry.Key, err)
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(out)
		if i < len(decl.Entries)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func checkEntry(entry *config.Entry) error {
	if !config.ValidKey(entry.Key) {
		return config.Malformed("key %q is not an UPPERCASE_IDENTIFIER", entry.Key)
	}
	if entry.Kind != config.KindString && entry.Kind != config.KindList {
		return config.Malformed("key %q has unknown kind %s", entry.Key, entry.Kind)
	}
	return nil
}

func aliasTarget(decl *config.Declaration, entry *config.Entry) string {
	if entry.Alias == "" || entry.Alias == entry.Key {
		return ""
	}
	target, ok := decl.Lookup(entry.Alias)
	if !ok || !target.SameValue(entry) {
		return ""
	}
	return entry.Alias
}

var templateEscaper = strings.NewReplacer("${", "$${", "%{", "%%{")

func escapeTemplates(val cty.Value) cty.Value {
	if val.Type() == cty.String {
		return cty.StringVal(templateEscaper.Replace(val.AsString()))
	}
	if val.LengthInt() == 0 {
		return val
	}
	elems := make([]cty.Value, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		elems = append(elems, cty.StringVal(templateEscaper.Replace(elem.AsString())))
	}
	return cty.ListVal(elems)
}
