package hcl

import (
	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// entryFromValue converts an evaluated attribute into a declaration entry.
// It returns nil for a null value. Primitives become strings, lists and
// tuples of primitives become string lists; anything else is malformed.
func entryFromValue(key string, val cty.Value, pos string) (*config.Entry, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, config.Malformed("%s: %s has no known value", pos, key)
	}

	ty := val.Type()
	switch {
	case ty.IsPrimitiveType():
		s, err := toString(val)
		if err != nil {
			return nil, config.Malformed("%s: %s: %v", pos, key, err)
		}
		return &config.Entry{Key: key, Kind: config.KindString, Str: s, Pos: pos}, nil

	case ty.IsTupleType() || ty.IsListType():
		list := make([]string, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			if elem.IsNull() || !elem.Type().IsPrimitiveType() {
				return nil, config.Malformed("%s: %s[%d] must be a string, got %s", pos, key, len(list), friendlyName(elem))
			}
			s, err := toString(elem)
			if err != nil {
				return nil, config.Malformed("%s: %s: %v", pos, key, err)
			}
			list = append(list, s)
		}
		return &config.Entry{Key: key, Kind: config.KindList, List: list, Pos: pos}, nil

	case ty.IsSetType():
		return nil, config.Malformed("%s: %s is a set; flag order must be preserved, use a list", pos, key)

	default:
		return nil, config.Malformed("%s: %s must be a string or a list of strings, got %s", pos, key, ty.FriendlyName())
	}
}

func toString(val cty.Value) (string, error) {
	sv, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}
	return sv.AsString(), nil
}

func friendlyName(val cty.Value) string {
	if val.IsNull() {
		return "null"
	}
	return val.Type().FriendlyName()
}

// valueOf converts an entry back into a cty value.
func valueOf(e *config.Entry) cty.Value {
	if e.Kind == config.KindString {
		return cty.StringVal(e.Str)
	}
	if len(e.List) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	elems := make([]cty.Value, len(e.List))
	for i, s := range e.List {
		elems[i] = cty.StringVal(s)
	}
	return cty.ListVal(elems)
}
