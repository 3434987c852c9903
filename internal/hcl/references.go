package hcl

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// resolver evaluates top-level attributes, following references to other
// attributes of the same body. Each attribute is evaluated at most once.
type resolver struct {
	attrs    hcl.Attributes
	values   map[string]cty.Value
	visiting map[string]bool
}

func newResolver(attrs hcl.Attributes) *resolver {
	return &resolver{
		attrs:    attrs,
		values:   make(map[string]cty.Value, len(attrs)),
		visiting: make(map[string]bool),
	}
}

func (r *resolver) resolve(name string, chain []string) (cty.Value, error) {
	if val, ok := r.values[name]; ok {
		return val, nil
	}
	chain = append(chain, name)
	if r.visiting[name] {
		return cty.NilVal, config.Malformed("reference cycle: %s", strings.Join(chain, " -> "))
	}
	attr := r.attrs[name]
	r.visiting[name] = true
	defer delete(r.visiting, name)

	vars := make(map[string]cty.Value)
	for _, traversal := range attr.Expr.Variables() {
		root := traversal.RootName()
		if _, declared := r.attrs[root]; !declared {
			return cty.NilVal, config.Malformed("%s: %s references undeclared key %q", position(traversal.SourceRange()), name, root)
		}
		val, err := r.resolve(root, chain)
		if err != nil {
			return cty.NilVal, err
		}
		vars[root] = val
	}

	val, diags := attr.Expr.Value(&hcl.EvalContext{Variables: vars})
	if diags.HasErrors() {
		return cty.NilVal, config.Malformed("%s: %s", position(attr.Range), diags.Error())
	}
	r.values[name] = val
	return val, nil
}
