// Package editor is the typed entry point for Wine registry configuration:
// one Editor owns a registry store handle (loaded directly or through the
// cache) and exposes a getter/setter pair per logical setting, with
// validation applied before any mutation.
package editor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/winetools/regkit/pkg/cache"
	"github.com/winetools/regkit/pkg/registry"
	"github.com/winetools/regkit/pkg/settings"
	"github.com/winetools/regkit/pkg/types"
)

// Editor combines one shared registry handle with the stateless settings
// schema. Validation failures abort the single call that triggered them and
// leave prior state untouched; there is no cross-call transaction.
type Editor struct {
	registry   *registry.WineRegistry
	cache      cache.RegistryCache
	prefixPath string
}

// New returns an editor over an empty in-memory registry.
func New(c cache.RegistryCache) *Editor {
	return &Editor{registry: registry.New(), cache: c}
}

// WithPrefix returns an editor for the prefix at prefixPath, consulting the
// cache before touching disk and caching the loaded registry on a miss.
func WithPrefix(ctx context.Context, c cache.RegistryCache, prefixPath string) (*Editor, error) {
	if cached, ok, err := c.GetCachedRegistry(ctx, prefixPath); err != nil {
		return nil, err
	} else if ok {
		return &Editor{registry: cached, cache: c, prefixPath: prefixPath}, nil
	}

	reg, err := registry.LoadFromPrefix(ctx, prefixPath)
	if err != nil {
		return nil, err
	}
	if err := c.CacheRegistry(ctx, prefixPath, reg.Clone()); err != nil {
		return nil, err
	}
	return &Editor{registry: reg, cache: c, prefixPath: prefixPath}, nil
}

// Registry exposes the underlying store handle for raw access (CLI,
// diagnostics). Mutations through it bypass setting-level validation.
func (e *Editor) Registry() *registry.WineRegistry { return e.registry }

// PrefixPath returns the prefix this editor operates on, or "".
func (e *Editor) PrefixPath() string { return e.prefixPath }

// userRegPath locates the user.reg file the editor loads and saves.
func userRegPath(prefixPath string) string {
	return filepath.Join(prefixPath, registry.UserRegFile)
}

// LoadRegistry replaces the editor's registry with the prefix's user.reg and
// refreshes the cache entry for that prefix.
func (e *Editor) LoadRegistry(ctx context.Context, prefixPath string) error {
	reg, err := registry.LoadFromFile(ctx, userRegPath(prefixPath))
	if err != nil {
		return err
	}
	e.registry = reg
	e.prefixPath = prefixPath
	return e.cache.CacheRegistry(ctx, prefixPath, reg.Clone())
}

// SaveRegistry writes the registry to the prefix's user.reg and invalidates
// the cache entry so later reads do not see pre-write state.
func (e *Editor) SaveRegistry(ctx context.Context, prefixPath string) error {
	if err := e.registry.SaveToFile(ctx, userRegPath(prefixPath)); err != nil {
		return err
	}
	return e.cache.InvalidateCache(ctx, prefixPath)
}

// Save writes back to the prefix this editor was opened on.
func (e *Editor) Save(ctx context.Context) error {
	if e.prefixPath == "" {
		return types.ErrNoPrefix
	}
	return e.SaveRegistry(ctx, e.prefixPath)
}

// Reload re-reads user.reg from the prefix this editor was opened on,
// discarding unsaved changes.
func (e *Editor) Reload(ctx context.Context) error {
	if e.prefixPath == "" {
		return types.ErrNoPrefix
	}
	return e.LoadRegistry(ctx, e.prefixPath)
}

// -----------------------------------------------------------------------------
// Primitive helpers
// -----------------------------------------------------------------------------

func (e *Editor) getString(ctx context.Context, keyPath string, name types.ValueName) (string, bool, error) {
	v, ok, err := e.registry.GetValue(ctx, keyPath, name)
	if err != nil || !ok {
		return "", false, err
	}
	switch s := v.(type) {
	case types.Sz:
		return string(s), true, nil
	case types.ExpandSz:
		return string(s), true, nil
	default:
		return "", false, nil
	}
}

func (e *Editor) setString(ctx context.Context, keyPath string, name types.ValueName, value string) error {
	return e.registry.SetValue(ctx, keyPath, name, types.Sz(value))
}

func (e *Editor) getDword(ctx context.Context, keyPath string, name types.ValueName) (uint32, bool, error) {
	v, ok, err := e.registry.GetValue(ctx, keyPath, name)
	if err != nil || !ok {
		return 0, false, err
	}
	d, ok := v.(types.Dword)
	if !ok {
		return 0, false, nil
	}
	return uint32(d), true, nil
}

func (e *Editor) setDword(ctx context.Context, keyPath string, name types.ValueName, value uint32) error {
	return e.registry.SetValue(ctx, keyPath, name, types.Dword(value))
}

// validateSlot bundles the path+name checks every setter performs first.
func validateSlot(keyPath string, name types.ValueName) error {
	if err := settings.ValidateKeyPath(keyPath); err != nil {
		return err
	}
	return settings.ValidateValueName(name)
}

// -----------------------------------------------------------------------------
// Simple settings
// -----------------------------------------------------------------------------

// WindowsVersion reads Software\Wine!Version.
func (e *Editor) WindowsVersion(ctx context.Context) (string, bool, error) {
	return e.getString(ctx, settings.KeyWine, types.NamedValue(settings.ValueWindowsVersion))
}

// SetWindowsVersion validates and writes the reported Windows version.
func (e *Editor) SetWindowsVersion(ctx context.Context, version string) error {
	name := types.NamedValue(settings.ValueWindowsVersion)
	if err := validateSlot(settings.KeyWine, name); err != nil {
		return err
	}
	v, ok := settings.ParseWindowsVersion(version)
	if !ok {
		return types.ValidationError(fmt.Sprintf("invalid Windows version %q", version))
	}
	return e.setString(ctx, settings.KeyWine, name, v.String())
}

// D3DRenderer reads Software\Wine\Direct3D!renderer.
func (e *Editor) D3DRenderer(ctx context.Context) (string, bool, error) {
	return e.getString(ctx, settings.KeyDirect3D, types.NamedValue(settings.ValueD3DRenderer))
}

// SetD3DRenderer validates and writes the Direct3D backend.
func (e *Editor) SetD3DRenderer(ctx context.Context, renderer string) error {
	name := types.NamedValue(settings.ValueD3DRenderer)
	if err := validateSlot(settings.KeyDirect3D, name); err != nil {
		return err
	}
	r, ok := settings.ParseD3DRenderer(renderer)
	if !ok {
		return types.ValidationError(fmt.Sprintf("invalid Direct3D renderer %q", renderer))
	}
	return e.setString(ctx, settings.KeyDirect3D, name, r.String())
}

// D3DCSMT reads the csmt toggle through its DWORD codec.
func (e *Editor) D3DCSMT(ctx context.Context) (bool, bool, error) {
	v, ok, err := e.registry.GetValue(ctx, settings.KeyDirect3D, types.NamedValue(settings.CSMTField.Name))
	if err != nil || !ok {
		return false, false, err
	}
	b, ok := settings.CSMTField.Codec.Decode(v)
	return b, ok, nil
}

// SetD3DCSMT writes the csmt toggle through its DWORD codec.
func (e *Editor) SetD3DCSMT(ctx context.Context, enabled bool) error {
	name := types.NamedValue(settings.CSMTField.Name)
	if err := validateSlot(settings.KeyDirect3D, name); err != nil {
		return err
	}
	return e.registry.SetValue(ctx, settings.KeyDirect3D, name, settings.CSMTField.Codec.Encode(enabled))
}

// OffscreenRenderingMode reads Software\Wine\Direct3D!OffscreenRenderingMode.
func (e *Editor) OffscreenRenderingMode(ctx context.Context) (string, bool, error) {
	return e.getString(ctx, settings.KeyDirect3D, types.NamedValue(settings.ValueOffscreenRenderingMode))
}

// SetOffscreenRenderingMode validates and writes the offscreen mode.
func (e *Editor) SetOffscreenRenderingMode(ctx context.Context, mode string) error {
	name := types.NamedValue(settings.ValueOffscreenRenderingMode)
	if err := validateSlot(settings.KeyDirect3D, name); err != nil {
		return err
	}
	m, ok := settings.ParseOffscreenRenderingMode(mode)
	if !ok {
		return types.ValidationError(fmt.Sprintf("invalid offscreen rendering mode %q", mode))
	}
	return e.setString(ctx, settings.KeyDirect3D, name, m.String())
}

// MouseWarpOverride reads Software\Wine\DirectInput!MouseWarpOverride.
func (e *Editor) MouseWarpOverride(ctx context.Context) (string, bool, error) {
	return e.getString(ctx, settings.KeyDirectInput, types.NamedValue(settings.ValueMouseWarpOverride))
}

// SetMouseWarpOverride validates and writes the mouse warp mode.
func (e *Editor) SetMouseWarpOverride(ctx context.Context, mode string) error {
	name := types.NamedValue(settings.ValueMouseWarpOverride)
	if err := validateSlot(settings.KeyDirectInput, name); err != nil {
		return err
	}
	m, ok := settings.ParseMouseWarpOverride(mode)
	if !ok {
		return types.ValidationError(fmt.Sprintf("invalid mouse warp override %q", mode))
	}
	return e.setString(ctx, settings.KeyDirectInput, name, m.String())
}

// AudioDriver reads the default slot of Software\Wine\Drivers\Audio.
func (e *Editor) AudioDriver(ctx context.Context) (string, bool, error) {
	return e.getString(ctx, settings.KeyAudioDriver, types.DefaultName())
}

// SetAudioDriver validates and writes the audio backend into the default
// slot of its key.
func (e *Editor) SetAudioDriver(ctx context.Context, driver string) error {
	if err := validateSlot(settings.KeyAudioDriver, types.DefaultName()); err != nil {
		return err
	}
	d, ok := settings.ParseAudioDriver(driver)
	if !ok {
		return types.ValidationError(fmt.Sprintf("invalid audio driver %q", driver))
	}
	return e.setString(ctx, settings.KeyAudioDriver, types.DefaultName(), d.String())
}

// GraphicsDriver reads the default slot of Software\Wine\Drivers\Graphics.
func (e *Editor) GraphicsDriver(ctx context.Context) (string, bool, error) {
	return e.getString(ctx, settings.KeyGraphicsDriver, types.DefaultName())
}

// SetGraphicsDriver validates and writes the display backend.
func (e *Editor) SetGraphicsDriver(ctx context.Context, driver string) error {
	if err := validateSlot(settings.KeyGraphicsDriver, types.DefaultName()); err != nil {
		return err
	}
	d, ok := settings.ParseGraphicsDriver(driver)
	if !ok {
		return types.ValidationError(fmt.Sprintf("invalid graphics driver %q", driver))
	}
	return e.setString(ctx, settings.KeyGraphicsDriver, types.DefaultName(), d.String())
}

// VideoMemorySize reads Software\Wine\Direct3D!VideoMemorySize in MB.
func (e *Editor) VideoMemorySize(ctx context.Context) (uint32, bool, error) {
	return e.getDword(ctx, settings.KeyDirect3D, types.NamedValue(settings.ValueVideoMemorySize))
}

// SetVideoMemorySize validates the MB range before writing.
func (e *Editor) SetVideoMemorySize(ctx context.Context, sizeMB uint32) error {
	name := types.NamedValue(settings.ValueVideoMemorySize)
	if err := validateSlot(settings.KeyDirect3D, name); err != nil {
		return err
	}
	if err := settings.ValidateVideoMemory(sizeMB); err != nil {
		return err
	}
	return e.setDword(ctx, settings.KeyDirect3D, name, sizeMB)
}

// FontReplacements lists Software\Wine\Fonts\Replacements.
func (e *Editor) FontReplacements(ctx context.Context) ([]settings.FontReplacement, error) {
	values, err := e.registry.GetKeyValues(ctx, settings.KeyFontReplacements)
	if err != nil {
		return nil, err
	}
	var out []settings.FontReplacement
	for original, v := range values {
		if s, ok := v.(types.Sz); ok {
			out = append(out, settings.FontReplacement{Original: original, Replacement: string(s)})
		}
	}
	return out, nil
}

// AddFontReplacement maps original to replacement.
func (e *Editor) AddFontReplacement(ctx context.Context, original, replacement string) error {
	name := types.NamedValue(original)
	if err := validateSlot(settings.KeyFontReplacements, name); err != nil {
		return err
	}
	return e.setString(ctx, settings.KeyFontReplacements, name, replacement)
}

// RemoveFontReplacement tombstones a replacement.
func (e *Editor) RemoveFontReplacement(ctx context.Context, original string) error {
	name := types.NamedValue(original)
	if err := validateSlot(settings.KeyFontReplacements, name); err != nil {
		return err
	}
	return e.registry.DeleteValue(ctx, settings.KeyFontReplacements, name)
}

// DllOverrides lists Software\Wine\DllOverrides. Values with unknown modes
// are skipped rather than surfaced as errors.
func (e *Editor) DllOverrides(ctx context.Context) ([]settings.DllOverride, error) {
	values, err := e.registry.GetKeyValues(ctx, settings.KeyDllOverrides)
	if err != nil {
		return nil, err
	}
	var out []settings.DllOverride
	for dll, v := range values {
		s, ok := v.(types.Sz)
		if !ok {
			continue
		}
		if mode, ok := settings.ParseDllOverrideMode(string(s)); ok {
			out = append(out, settings.DllOverride{Dll: dll, Mode: mode})
		}
	}
	return out, nil
}

// AddDllOverride sets the load order for one DLL.
func (e *Editor) AddDllOverride(ctx context.Context, dll string, mode settings.DllOverrideMode) error {
	name := types.NamedValue(dll)
	if err := validateSlot(settings.KeyDllOverrides, name); err != nil {
		return err
	}
	return e.setString(ctx, settings.KeyDllOverrides, name, mode.String())
}

// RemoveDllOverride tombstones one DLL's override.
func (e *Editor) RemoveDllOverride(ctx context.Context, dll string) error {
	name := types.NamedValue(dll)
	if err := validateSlot(settings.KeyDllOverrides, name); err != nil {
		return err
	}
	return e.registry.DeleteValue(ctx, settings.KeyDllOverrides, name)
}

// -----------------------------------------------------------------------------
// Diagnostics
// -----------------------------------------------------------------------------

// ValidateRegistry walks every key and value and collects all violations of
// the schema's path and name rules; it never short-circuits. Intended for
// diagnostics, not enforced at load time.
func (e *Editor) ValidateRegistry(ctx context.Context) ([]types.ValidationIssue, error) {
	paths, err := e.registry.FindKeys(ctx, "")
	if err != nil {
		return nil, err
	}
	var issues []types.ValidationIssue
	for _, keyPath := range paths {
		if err := settings.ValidateKeyPath(keyPath); err != nil {
			issues = append(issues, types.ValidationIssue{KeyPath: keyPath, Message: err.Error()})
			continue
		}
		values, err := e.registry.GetKeyValues(ctx, keyPath)
		if err != nil {
			return nil, err
		}
		for valueName := range values {
			if valueName == types.DefaultValueDisplay {
				continue
			}
			if err := settings.ValidateValueName(types.NamedValue(valueName)); err != nil {
				issues = append(issues, types.ValidationIssue{
					KeyPath:   keyPath,
					ValueName: valueName,
					Message:   err.Error(),
				})
			}
		}
	}
	return issues, nil
}

// AllKeys returns every key path, for inspection tooling.
func (e *Editor) AllKeys(ctx context.Context) ([]string, error) {
	return e.registry.FindKeys(ctx, "")
}
