package codec

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/specialistvlad/toolprofile/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// yamlCodec reads and writes a flat YAML mapping. An anchored value that is
// referenced by a later key (`SHCXXFLAGS: *cxxflags`) round-trips as an alias.
type yamlCodec struct{}

func (c *yamlCodec) Decode(ctx context.Context, name string, src []byte) (*config.Declaration, error) {
	logger := ctxlog.FromContext(ctx)

	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", config.ErrMalformedProfile, name, err)
	}
	decl := &config.Declaration{Source: name}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return decl, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, config.Malformed("%s:%d: top level must be a mapping of keys to values", name, root.Line)
	}

	owners := make(map[*yaml.Node]string)
	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		pos := fmt.Sprintf("%s:%d", name, k.Line)
		if k.Kind != yaml.ScalarNode {
			return nil, config.Malformed("%s: keys must be scalars", pos)
		}
		key := k.Value
		if seen[key] {
			return nil, config.Malformed("%s: key %s is declared twice", pos, key)
		}
		seen[key] = true

		alias := ""
		if v.Kind == yaml.AliasNode {
			alias = owners[v.Alias]
			v = v.Alias
		} else {
			owners[v] = key
		}

		entry, err := yamlEntry(key, v, pos)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			logger.Debug("YAML value is null, treating it as absent.", "key", key)
			continue
		}
		entry.Alias = alias
		decl.Entries = append(decl.Entries, entry)
	}
	return decl, nil
}

func yamlEntry(key string, v *yaml.Node, pos string) (*config.Entry, error) {
	switch v.Kind {
	case yaml.ScalarNode:
		if v.ShortTag() == "!!null" {
			return nil, nil
		}
		return &config.Entry{Key: key, Kind: config.KindString, Str: v.Value, Pos: pos}, nil
	case yaml.SequenceNode:
		list := make([]string, 0, len(v.Content))
		for _, item := range v.Content {
			if item.Kind == yaml.AliasNode {
				item = item.Alias
			}
			if item.Kind != yaml.ScalarNode || item.ShortTag() == "!!null" {
				return nil, config.Malformed("%s: %s[%d] must be a string", pos, key, len(list))
			}
			list = append(list, item.Value)
		}
		return &config.Entry{Key: key, Kind: config.KindList, List: list, Pos: pos}, nil
	default:
		return nil, config.Malformed("%s: %s must be a string or a list of strings", pos, key)
	}
}

func (c *yamlCodec) Encode(decl *config.Declaration) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	nodes := make(map[string]*yaml.Node, len(decl.Entries))
	owners := make(map[*yaml.Node]string, len(decl.Entries))
	for _, entry := range decl.Entries {
		var v *yaml.Node
		if target, ok := nodes[entry.Alias]; ok && entry.Alias != "" && sameAsDeclared(decl, entry) {
			// An alias cannot carry an anchor; chain to the anchored node.
			if target.Kind == yaml.AliasNode {
				target = target.Alias
			}
			if target.Anchor == "" {
				target.Anchor = strings.ToLower(owners[target])
			}
			v = &yaml.Node{Kind: yaml.AliasNode, Alias: target, Value: target.Anchor}
		} else {
			v = yamlValue(entry)
			owners[v] = entry.Key
		}
		nodes[entry.Key] = v
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: entry.Key}, v)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", decl.Source, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlValue(e *config.Entry) *yaml.Node {
	if e.Kind == config.KindString {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Str}
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, s := range e.List {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
	}
	return seq
}

// sameAsDeclared reports whether the aliased key still holds entry's value.
func sameAsDeclared(decl *config.Declaration, entry *config.Entry) bool {
	target, ok := decl.Lookup(entry.Alias)
	return ok && target.SameValue(entry)
}
