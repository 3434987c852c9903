package profile

import "slices"

// Text is an optional string. The zero value is absent.
type Text struct {
	value   string
	present bool
}

// SomeText returns a present Text.
func SomeText(s string) Text {
	return Text{value: s, present: true}
}

// Get returns the value and whether it is present.
func (t Text) Get() (string, bool) {
	return t.value, t.present
}

// IsPresent reports whether the value was declared.
func (t Text) IsPresent() bool {
	return t.present
}

// String returns the value, or "" when absent.
func (t Text) String() string {
	return t.value
}

// Equal reports whether both values are absent or both hold the same string.
func (t Text) Equal(other Text) bool {
	return t.present == other.present && t.value == other.value
}

// List is an optional ordered sequence of opaque tokens. The zero value is
// absent; SomeList() with no arguments is present and empty.
type List struct {
	values  []string
	present bool
}

// SomeList returns a present List holding a copy of values.
func SomeList(values ...string) List {
	return List{values: append(make([]string, 0, len(values)), values...), present: true}
}

// Get returns a copy of the tokens and whether the list is present.
func (l List) Get() ([]string, bool) {
	return l.Values(), l.present
}

// Values returns a copy of the tokens in declaration order, or nil when absent.
func (l List) Values() []string {
	if !l.present {
		return nil
	}
	return append(make([]string, 0, len(l.values)), l.values...)
}

// IsPresent reports whether the list was declared.
func (l List) IsPresent() bool {
	return l.present
}

// Len returns the number of tokens.
func (l List) Len() int {
	return len(l.values)
}

// Equal reports whether both lists are absent or both hold the same tokens
// in the same order.
func (l List) Equal(other List) bool {
	return l.present == other.present && slices.Equal(l.values, other.values)
}

// concat appends other's tokens. The result is present if either side is.
func (l List) concat(other List) List {
	if !other.present {
		return l
	}
	if !l.present {
		return SomeList(other.values...)
	}
	return SomeList(append(l.Values(), other.values...)...)
}
