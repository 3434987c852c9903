package config

import (
	"fmt"
	"regexp"
	"slices"
)

// Kind is the shape of a declared value.
type Kind int

const (
	KindString Kind = iota + 1
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list of strings"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var keyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// ValidKey reports whether key is an UPPERCASE_IDENTIFIER.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// Entry is one declared key. Absent keys never have an entry.
type Entry struct {
	Key  string
	Kind Kind
	Str  string
	List []string

	// Alias is the key this value was declared as a bare reference to, if any.
	// The value is already expanded.
	Alias string

	// Pos is a human readable source position, e.g. "profile.hcl:12".
	Pos string
}

// NewString builds a string entry.
func NewString(key, value string) *Entry {
	return &Entry{Key: key, Kind: KindString, Str: value}
}

// NewList builds a list entry. A nil values slice yields a present, empty list.
func NewList(key string, values ...string) *Entry {
	list := make([]string, len(values))
	copy(list, values)
	return &Entry{Key: key, Kind: KindList, List: list}
}

// SameValue reports whether e and other carry the same kind and value,
// ignoring alias and position metadata.
func (e *Entry) SameValue(other *Entry) bool {
	if e.Kind != other.Kind {
		return false
	}
	if e.Kind == KindString {
		return e.Str == other.Str
	}
	return slices.Equal(e.List, other.List)
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	c := *e
	if e.List != nil {
		c.List = slices.Clone(e.List)
	}
	return &c
}

// Declaration is the unified, format-agnostic representation of one profile
// source. Entries are kept in declaration order.
type Declaration struct {
	Source  string
	Entries []*Entry
}

// Lookup returns the entry declared for key.
func (d *Declaration) Lookup(key string) (*Entry, bool) {
	for _, e := range d.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return nil, false
}

// Keys returns the declared keys in declaration order.
func (d *Declaration) Keys() []string {
	keys := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}
