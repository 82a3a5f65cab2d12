// Package enum decodes single-byte discriminants into closed, explicitly
// numbered enumerations.
package enum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danmuck/rowctl/internal/protocol/wire"
)

var (
	ErrInvalidVariant = errors.New("enum: invalid variant")
	ErrDuplicateValue = errors.New("enum: duplicate value")
	ErrDuplicateName  = errors.New("enum: duplicate name")
	ErrUnknownName    = errors.New("enum: unknown name")
)

// VariantError names the enumeration and the byte it rejected.
type VariantError struct {
	Enum  string
	Value uint8
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("enum: invalid %s variant %d (0x%02x)", e.Enum, e.Value, e.Value)
}

func (e *VariantError) Unwrap() error { return ErrInvalidVariant }

// Member binds one discriminant to its name.
type Member[E ~uint8] struct {
	Value E
	Name  string
}

// Table is the static value to variant mapping of one enumeration. Members
// may be declared in any order and with arbitrary gaps.
type Table[E ~uint8] struct {
	name    string
	known   [256]bool
	names   [256]string
	byName  map[string]E
	members []Member[E]
}

func New[E ~uint8](name string, members ...Member[E]) (*Table[E], error) {
	t := &Table[E]{
		name:    name,
		byName:  make(map[string]E, len(members)),
		members: make([]Member[E], 0, len(members)),
	}
	for _, m := range members {
		v := uint8(m.Value)
		if t.known[v] {
			return nil, fmt.Errorf("%w: %s %d declared as %q and %q", ErrDuplicateValue, name, v, t.names[v], m.Name)
		}
		if _, dup := t.byName[m.Name]; dup {
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateName, name, m.Name)
		}
		t.known[v] = true
		t.names[v] = m.Name
		t.byName[m.Name] = m.Value
		t.members = append(t.members, m)
	}
	return t, nil
}

// Must is New for package-level tables.
func Must[E ~uint8](name string, members ...Member[E]) *Table[E] {
	t, err := New(name, members...)
	if err != nil {
		panic(err)
	}
	return t
}

// seq assigns consecutive values starting at first, in the order given.
func seq[E ~uint8](first E, names ...string) []Member[E] {
	out := make([]Member[E], len(names))
	for i, n := range names {
		out[i] = Member[E]{Value: first + E(i), Name: n}
	}
	return out
}

func (t *Table[E]) Name() string { return t.name }

func (t *Table[E]) Len() int { return len(t.members) }

// Members returns the declared members in declaration order.
func (t *Table[E]) Members() []Member[E] {
	out := make([]Member[E], len(t.members))
	copy(out, t.members)
	return out
}

func (t *Table[E]) Valid(v E) bool { return t.known[uint8(v)] }

// Check maps b to its variant or fails with a *VariantError.
func (t *Table[E]) Check(b uint8) (E, error) {
	if !t.known[b] {
		return 0, &VariantError{Enum: t.name, Value: b}
	}
	return E(b), nil
}

// String never fails; unknown values render as name(value).
func (t *Table[E]) String(v E) string {
	if t.known[uint8(v)] {
		return t.names[uint8(v)]
	}
	return fmt.Sprintf("%s(%d)", t.name, uint8(v))
}

func (t *Table[E]) MarshalText(v E) ([]byte, error) {
	if !t.known[uint8(v)] {
		return nil, &VariantError{Enum: t.name, Value: uint8(v)}
	}
	return []byte(t.names[uint8(v)]), nil
}

// Parse resolves a member name, case-insensitively.
func (t *Table[E]) Parse(name string) (E, error) {
	if v, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, t.name, name)
}

// Decode reads one byte from c and validates it against t.
func Decode[E ~uint8](c *wire.Cursor, t *Table[E]) (E, error) {
	b, err := c.ReadUint8()
	if err != nil {
		return 0, err
	}
	return t.Check(b)
}
