package registry

import (
	"context"
	"strings"
	"sync"

	"github.com/winetools/regkit/pkg/types"
)

// WineRegistry is a shared handle over one in-memory registry document.
// Clones share the same underlying state; all mutations are visible to every
// holder (last writer wins). The zero value is not usable; call New.
type WineRegistry struct {
	shared *regState
}

type regState struct {
	mu   sync.RWMutex
	reg  *types.Registry
	path string // file or prefix the registry was loaded from, "" if none
}

// New returns an empty registry handle in the regedit5 dialect.
func New() *WineRegistry {
	return &WineRegistry{shared: &regState{reg: types.NewRegistry(types.Regedit5)}}
}

// Clone returns a handle sharing the same underlying registry.
func (w *WineRegistry) Clone() *WineRegistry {
	return &WineRegistry{shared: w.shared}
}

// Path returns the file or prefix path this registry was loaded from, or ""
// for a registry built in memory.
func (w *WineRegistry) Path() string {
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()
	return w.shared.path
}

// GetValue returns the value in the named slot of the key at keyPath.
// Key paths match by exact string equality; no normalization or wildcarding.
// Returns (nil, false) when the key or slot is absent, the key is deleted,
// or the slot holds a delete tombstone.
func (w *WineRegistry) GetValue(ctx context.Context, keyPath string, name types.ValueName) (types.Value, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()

	key, ok := w.shared.reg.Key(keyPath)
	if !ok || key.Deleted() {
		return nil, false, nil
	}
	v, ok := key.Get(name)
	if !ok {
		return nil, false, nil
	}
	if _, tombstone := v.(types.Delete); tombstone {
		return nil, false, nil
	}
	return v, true, nil
}

// SetValue inserts or overwrites one slot, implicitly creating the key.
func (w *WineRegistry) SetValue(ctx context.Context, keyPath string, name types.ValueName, v types.Value) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.shared.mu.Lock()
	defer w.shared.mu.Unlock()

	w.shared.reg.EnsureKey(keyPath).Set(name, v)
	return nil
}

// DeleteValue writes a Delete tombstone for the slot. The entry stays in the
// key until serialize time, when the format's delete-marker convention
// applies.
func (w *WineRegistry) DeleteValue(ctx context.Context, keyPath string, name types.ValueName) error {
	return w.SetValue(ctx, keyPath, name, types.Delete{})
}

// DeleteKey replaces the key with a whole-key tombstone, discarding its
// values so a later write into the same path starts from a clean key.
func (w *WineRegistry) DeleteKey(ctx context.Context, keyPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.shared.mu.Lock()
	defer w.shared.mu.Unlock()

	w.shared.reg.PutKey(keyPath, types.DeletedKey())
	return nil
}

// FindKeys returns every key path containing substr, in document order.
// The empty substring matches all keys. Intended for diagnostics, not
// hot-path lookups.
func (w *WineRegistry) FindKeys(ctx context.Context, substr string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()

	var out []string
	for _, path := range w.shared.reg.Paths() {
		if strings.Contains(path, substr) {
			out = append(out, path)
		}
	}
	return out, nil
}

// GetKeyValues returns every slot under the key at keyPath, with the default
// slot rendered as "(default)". Absent or deleted keys yield an empty map.
func (w *WineRegistry) GetKeyValues(ctx context.Context, keyPath string) (map[string]types.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()

	out := make(map[string]types.Value)
	key, ok := w.shared.reg.Key(keyPath)
	if !ok || key.Deleted() {
		return out, nil
	}
	for _, name := range key.Names() {
		v, _ := key.Get(name)
		out[name.String()] = v
	}
	return out, nil
}

// KeyExists reports whether a live (non-deleted) key exists at keyPath.
func (w *WineRegistry) KeyExists(ctx context.Context, keyPath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()

	key, ok := w.shared.reg.Key(keyPath)
	return ok && !key.Deleted(), nil
}

// KeyCount returns the number of keys in the document, deleted keys included.
func (w *WineRegistry) KeyCount() int {
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()
	return w.shared.reg.Len()
}

// snapshot returns the current document and source path under a read lock.
func (w *WineRegistry) snapshot() (*types.Registry, string) {
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()
	return w.shared.reg, w.shared.path
}

// install replaces the document under an exclusive lock.
func (w *WineRegistry) install(reg *types.Registry, path string) {
	w.shared.mu.Lock()
	defer w.shared.mu.Unlock()
	w.shared.reg = reg
	w.shared.path = path
}
