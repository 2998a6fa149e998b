package types

// Key is an insertion-ordered collection of (ValueName, Value) pairs plus a
// tombstone flag covering the whole key.
type Key struct {
	values  map[ValueName]Value
	order   []ValueName
	deleted bool
}

// NewKey returns an empty key.
func NewKey() *Key {
	return &Key{values: make(map[ValueName]Value)}
}

// DeletedKey returns a key carrying the whole-key tombstone.
func DeletedKey() *Key {
	k := NewKey()
	k.deleted = true
	return k
}

// Deleted reports whether the whole key is tombstoned.
func (k *Key) Deleted() bool { return k.deleted }

// MarkDeleted tombstones the whole key. Existing values are kept in memory;
// serialization emits only the deletion marker.
func (k *Key) MarkDeleted() { k.deleted = true }

// Set inserts or overwrites one slot, preserving first-insertion order.
// Writing into a tombstoned key revives it.
func (k *Key) Set(name ValueName, v Value) {
	k.deleted = false
	if _, ok := k.values[name]; !ok {
		k.order = append(k.order, name)
	}
	k.values[name] = v
}

// Get returns the value in the slot, if present.
func (k *Key) Get(name ValueName) (Value, bool) {
	v, ok := k.values[name]
	return v, ok
}

// Names returns slot identities in insertion order.
func (k *Key) Names() []ValueName {
	out := make([]ValueName, len(k.order))
	copy(out, k.order)
	return out
}

// Len returns the number of slots, tombstones included.
func (k *Key) Len() int { return len(k.values) }

// Registry is the in-memory mirror of one .reg document: keys addressed by
// path string, insertion-ordered, tagged with its dialect. Key paths are
// case-sensitive and compared by exact string equality.
type Registry struct {
	format Format
	keys   map[string]*Key
	order  []string
}

// NewRegistry returns an empty registry in the given dialect.
func NewRegistry(format Format) *Registry {
	return &Registry{format: format, keys: make(map[string]*Key)}
}

// Format returns the dialect tag.
func (r *Registry) Format() Format { return r.format }

// Key returns the key at path, if present.
func (r *Registry) Key(path string) (*Key, bool) {
	k, ok := r.keys[path]
	return k, ok
}

// EnsureKey returns the key at path, creating it if absent.
func (r *Registry) EnsureKey(path string) *Key {
	if k, ok := r.keys[path]; ok {
		return k
	}
	k := NewKey()
	r.keys[path] = k
	r.order = append(r.order, path)
	return k
}

// PutKey installs key at path, replacing any existing key.
func (r *Registry) PutKey(path string, key *Key) {
	if _, ok := r.keys[path]; !ok {
		r.order = append(r.order, path)
	}
	r.keys[path] = key
}

// Paths returns key paths in insertion order.
func (r *Registry) Paths() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of keys, deleted keys included.
func (r *Registry) Len() int { return len(r.keys) }
