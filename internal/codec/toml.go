package codec

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/toolprofile/internal/config"
)

// tomlCodec reads and writes top-level TOML keys. TOML has no null, so an
// absent key is simply not written. Aliases are expanded on encode.
type tomlCodec struct{}

func (c *tomlCodec) Decode(ctx context.Context, name string, src []byte) (*config.Declaration, error) {
	var raw map[string]any
	md, err := toml.Decode(string(src), &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", config.ErrMalformedProfile, name, err)
	}

	decl := &config.Declaration{Source: name}
	for _, k := range md.Keys() {
		if len(k) != 1 {
			continue
		}
		key := k[0]
		pos := name + ": " + key
		switch v := raw[key].(type) {
		case []any:
			list := make([]string, 0, len(v))
			for i, item := range v {
				s, ok := tomlScalar(item)
				if !ok {
					return nil, config.Malformed("%s[%d] must be a string", pos, i)
				}
				list = append(list, s)
			}
			decl.Entries = append(decl.Entries, &config.Entry{Key: key, Kind: config.KindList, List: list, Pos: name})
		default:
			s, ok := tomlScalar(v)
			if !ok {
				return nil, config.Malformed("%s must be a string or a list of strings", pos)
			}
			decl.Entries = append(decl.Entries, &config.Entry{Key: key, Kind: config.KindString, Str: s, Pos: name})
		}
	}
	return decl, nil
}

func tomlScalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// Encode writes one key per line in declaration order. The TOML encoder sorts
// map keys, so each entry is encoded on its own.
func (c *tomlCodec) Encode(decl *config.Declaration) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	for _, entry := range decl.Entries {
		var value any = entry.Str
		if entry.Kind == config.KindList {
			list := make([]string, len(entry.List))
			copy(list, entry.List)
			value = list
		}
		if err := enc.Encode(map[string]any{entry.Key: value}); err != nil {
			return nil, fmt.Errorf("encoding %s: %w", decl.Source, err)
		}
	}
	return buf.Bytes(), nil
}
