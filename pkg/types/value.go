package types

// Value is the closed union of representable registry values. Only the types
// in this file implement it. Delete is a member so deletions travel through
// the same write path as ordinary values (tombstone semantics resolved at
// serialize time).
type Value interface {
	Type() RegType
	isValue()
}

// Sz is a REG_SZ string value.
type Sz string

// ExpandSz is a REG_EXPAND_SZ string value (environment references unexpanded).
type ExpandSz string

// Dword is a 32-bit unsigned REG_DWORD value.
type Dword uint32

// Binary is a raw REG_BINARY payload.
type Binary []byte

// MultiSz is a REG_MULTI_SZ string list.
type MultiSz []string

// Delete is the tombstone marker: "remove this slot on next save/merge".
type Delete struct{}

func (Sz) Type() RegType       { return REG_SZ }
func (ExpandSz) Type() RegType { return REG_EXPAND_SZ }
func (Dword) Type() RegType    { return REG_DWORD }
func (Binary) Type() RegType   { return REG_BINARY }
func (MultiSz) Type() RegType  { return REG_MULTI_SZ }
func (Delete) Type() RegType   { return REG_NONE }

func (Sz) isValue()       {}
func (ExpandSz) isValue() {}
func (Dword) isValue()    {}
func (Binary) isValue()   {}
func (MultiSz) isValue()  {}
func (Delete) isValue()   {}

// DefaultValueDisplay is how the unnamed (default) slot renders in listings.
const DefaultValueDisplay = "(default)"

// ValueName identifies a slot within a key. The default (unnamed) slot is
// distinct from a named slot whose name happens to be "". ValueName is
// comparable and safe to use as a map key.
type ValueName struct {
	name  string
	named bool
}

// DefaultName returns the identity of the unnamed (default) slot.
func DefaultName() ValueName { return ValueName{} }

// NamedValue returns the identity of the named slot name. NamedValue("") is
// a real named slot, not the default slot.
func NamedValue(name string) ValueName { return ValueName{name: name, named: true} }

// IsDefault reports whether n is the default slot.
func (n ValueName) IsDefault() bool { return !n.named }

// Name returns the raw slot name; "" for the default slot.
func (n ValueName) Name() string { return n.name }

// String renders the default slot as "(default)" and named slots verbatim.
func (n ValueName) String() string {
	if !n.named {
		return DefaultValueDisplay
	}
	return n.name
}
