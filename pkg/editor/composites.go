package editor

import (
	"context"

	"github.com/winetools/regkit/pkg/settings"
	"github.com/winetools/regkit/pkg/types"
)

// Composite getters return nil when every constituent value is absent, a
// partially filled struct otherwise. Composite setters validate every slot
// they will touch before the first write so a rejected call leaves the
// registry exactly as it was.

// DesktopSettings assembles Software\Wine\Explorer and its Desktops subkey.
func (e *Editor) DesktopSettings(ctx context.Context) (*settings.DesktopSettings, error) {
	var out settings.DesktopSettings

	if desktop, ok, err := e.getString(ctx, settings.KeyExplorer, types.NamedValue(settings.ValueDesktop)); err != nil {
		return nil, err
	} else if ok {
		out.Desktop = &desktop
	}

	if v, ok, err := e.registry.GetValue(ctx, settings.KeyExplorer, types.NamedValue(settings.ShowSystrayField.Name)); err != nil {
		return nil, err
	} else if ok {
		if b, ok := settings.ShowSystrayField.Codec.Decode(v); ok {
			out.ShowSystray = &b
		}
	}

	values, err := e.registry.GetKeyValues(ctx, settings.KeyExplorerDesktops)
	if err != nil {
		return nil, err
	}
	for name, v := range values {
		s, ok := v.(types.Sz)
		if !ok {
			continue
		}
		if size, ok := settings.ParseDesktopSize(string(s)); ok {
			if out.Desktops == nil {
				out.Desktops = make(map[string]settings.DesktopSize)
			}
			out.Desktops[name] = size
		}
	}

	if out.Empty() {
		return nil, nil
	}
	return &out, nil
}

// SetDesktopSettings writes the explorer desktop block. Nil fields are left
// untouched rather than cleared.
func (e *Editor) SetDesktopSettings(ctx context.Context, s settings.DesktopSettings) error {
	if s.Desktop != nil {
		if err := validateSlot(settings.KeyExplorer, types.NamedValue(settings.ValueDesktop)); err != nil {
			return err
		}
	}
	if s.ShowSystray != nil {
		if err := validateSlot(settings.KeyExplorer, types.NamedValue(settings.ShowSystrayField.Name)); err != nil {
			return err
		}
	}
	for name := range s.Desktops {
		if err := validateSlot(settings.KeyExplorerDesktops, types.NamedValue(name)); err != nil {
			return err
		}
	}

	if s.Desktop != nil {
		if err := e.setString(ctx, settings.KeyExplorer, types.NamedValue(settings.ValueDesktop), *s.Desktop); err != nil {
			return err
		}
	}
	if s.ShowSystray != nil {
		v := settings.ShowSystrayField.Codec.Encode(*s.ShowSystray)
		if err := e.registry.SetValue(ctx, settings.KeyExplorer, types.NamedValue(settings.ShowSystrayField.Name), v); err != nil {
			return err
		}
	}
	for name, size := range s.Desktops {
		if err := e.setString(ctx, settings.KeyExplorerDesktops, types.NamedValue(name), size.String()); err != nil {
			return err
		}
	}
	return nil
}

// VirtualDesktop reports whether a virtual desktop is active and, when it
// is, the geometry registered for it.
func (e *Editor) VirtualDesktop(ctx context.Context) (*settings.VirtualDesktopSettings, error) {
	desk, err := e.DesktopSettings(ctx)
	if err != nil {
		return nil, err
	}
	if desk == nil || desk.Desktop == nil {
		return &settings.VirtualDesktopSettings{Enabled: false}, nil
	}
	out := settings.VirtualDesktopSettings{Enabled: true}
	if size, ok := desk.Desktops[*desk.Desktop]; ok {
		out.Width = size.Width
		out.Height = size.Height
	}
	return &out, nil
}

// SetVirtualDesktop enables a virtual desktop named "Default" with the given
// geometry, or tombstones the Desktop selector to disable it. Enabling also
// hides the systray, matching winecfg behavior.
func (e *Editor) SetVirtualDesktop(ctx context.Context, enabled bool, width, height uint32) error {
	if !enabled {
		if err := validateSlot(settings.KeyExplorer, types.NamedValue(settings.ValueDesktop)); err != nil {
			return err
		}
		return e.registry.DeleteValue(ctx, settings.KeyExplorer, types.NamedValue(settings.ValueDesktop))
	}

	name := "Default"
	hide := false
	return e.SetDesktopSettings(ctx, settings.DesktopSettings{
		Desktop:     &name,
		Desktops:    map[string]settings.DesktopSize{name: {Width: width, Height: height}},
		ShowSystray: &hide,
	})
}

// shaderModelSlots pairs value names with struct fields in one fixed order.
func shaderModelSlots(s *settings.ShaderModelSettings) []struct {
	name  string
	field **uint32
} {
	return []struct {
		name  string
		field **uint32
	}{
		{settings.ValueMaxShaderModelVS, &s.MaxShaderModelVS},
		{settings.ValueMaxShaderModelPS, &s.MaxShaderModelPS},
		{settings.ValueMaxShaderModelGS, &s.MaxShaderModelGS},
		{settings.ValueMaxShaderModelHS, &s.MaxShaderModelHS},
		{settings.ValueMaxShaderModelDS, &s.MaxShaderModelDS},
		{settings.ValueMaxShaderModelCS, &s.MaxShaderModelCS},
	}
}

// ShaderModelSettings assembles the MaxShaderModel* limits.
func (e *Editor) ShaderModelSettings(ctx context.Context) (*settings.ShaderModelSettings, error) {
	var out settings.ShaderModelSettings
	for _, slot := range shaderModelSlots(&out) {
		v, ok, err := e.getDword(ctx, settings.KeyDirect3D, types.NamedValue(slot.name))
		if err != nil {
			return nil, err
		}
		if ok {
			limit := v
			*slot.field = &limit
		}
	}
	if out.Empty() {
		return nil, nil
	}
	return &out, nil
}

// SetShaderModelSettings writes the set shader model limits, leaving unset
// ones untouched.
func (e *Editor) SetShaderModelSettings(ctx context.Context, s settings.ShaderModelSettings) error {
	slots := shaderModelSlots(&s)
	for _, slot := range slots {
		if *slot.field == nil {
			continue
		}
		if err := validateSlot(settings.KeyDirect3D, types.NamedValue(slot.name)); err != nil {
			return err
		}
	}
	for _, slot := range slots {
		if *slot.field == nil {
			continue
		}
		if err := e.setDword(ctx, settings.KeyDirect3D, types.NamedValue(slot.name), **slot.field); err != nil {
			return err
		}
	}
	return nil
}

// getFlags walks a codec table and fills the matching flag pointers.
func (e *Editor) getFlags(ctx context.Context, keyPath string, fields []settings.BoolField, ptrs []**bool) error {
	for i, field := range fields {
		v, ok, err := e.registry.GetValue(ctx, keyPath, types.NamedValue(field.Name))
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if b, ok := field.Codec.Decode(v); ok {
			flag := b
			*ptrs[i] = &flag
		}
	}
	return nil
}

// setFlags validates then writes the set entries of a codec table.
func (e *Editor) setFlags(ctx context.Context, keyPath string, fields []settings.BoolField, ptrs []**bool) error {
	for i, field := range fields {
		if *ptrs[i] == nil {
			continue
		}
		if err := validateSlot(keyPath, types.NamedValue(field.Name)); err != nil {
			return err
		}
	}
	for i, field := range fields {
		if *ptrs[i] == nil {
			continue
		}
		v := field.Codec.Encode(**ptrs[i])
		if err := e.registry.SetValue(ctx, keyPath, types.NamedValue(field.Name), v); err != nil {
			return err
		}
	}
	return nil
}

// X11DriverSettings assembles the Software\Wine\X11 Driver flags.
func (e *Editor) X11DriverSettings(ctx context.Context) (*settings.X11DriverSettings, error) {
	var out settings.X11DriverSettings
	if err := e.getFlags(ctx, settings.KeyX11Driver, settings.X11DriverFields, out.FlagPointers()); err != nil {
		return nil, err
	}
	if out.Empty() {
		return nil, nil
	}
	return &out, nil
}

// SetX11DriverSettings writes the set X11 driver flags.
func (e *Editor) SetX11DriverSettings(ctx context.Context, s settings.X11DriverSettings) error {
	return e.setFlags(ctx, settings.KeyX11Driver, settings.X11DriverFields, s.FlagPointers())
}

// DpiSettings reads Control Panel\Desktop!LogPixels.
func (e *Editor) DpiSettings(ctx context.Context) (*settings.DpiSettings, error) {
	v, ok, err := e.getDword(ctx, settings.KeyControlPanelDesktop, types.NamedValue(settings.ValueLogPixels))
	if err != nil || !ok {
		return nil, err
	}
	dpi := v
	return &settings.DpiSettings{LogPixels: &dpi}, nil
}

// SetDpiSettings validates the DPI floor before writing LogPixels.
func (e *Editor) SetDpiSettings(ctx context.Context, s settings.DpiSettings) error {
	if s.LogPixels == nil {
		return nil
	}
	name := types.NamedValue(settings.ValueLogPixels)
	if err := validateSlot(settings.KeyControlPanelDesktop, name); err != nil {
		return err
	}
	if err := settings.ValidateDPI(*s.LogPixels); err != nil {
		return err
	}
	return e.setDword(ctx, settings.KeyControlPanelDesktop, name, *s.LogPixels)
}

// MacDriverSettings assembles the Software\Wine\Mac Driver block.
func (e *Editor) MacDriverSettings(ctx context.Context) (*settings.MacDriverSettings, error) {
	var out settings.MacDriverSettings
	if err := e.getFlags(ctx, settings.KeyMacDriver, settings.MacDriverFields, out.FlagPointers()); err != nil {
		return nil, err
	}
	if raw, ok, err := e.getString(ctx, settings.KeyMacDriver, types.NamedValue(settings.ValueWindowsFloatWhenInactive)); err != nil {
		return nil, err
	} else if ok {
		if mode, ok := settings.ParseWindowsFloatWhenInactive(raw); ok {
			out.WindowsFloatWhenInactive = &mode
		}
	}
	if out.Empty() {
		return nil, nil
	}
	return &out, nil
}

// SetMacDriverSettings writes the set Mac driver fields.
func (e *Editor) SetMacDriverSettings(ctx context.Context, s settings.MacDriverSettings) error {
	if s.WindowsFloatWhenInactive != nil {
		if err := validateSlot(settings.KeyMacDriver, types.NamedValue(settings.ValueWindowsFloatWhenInactive)); err != nil {
			return err
		}
	}
	if err := e.setFlags(ctx, settings.KeyMacDriver, settings.MacDriverFields, s.FlagPointers()); err != nil {
		return err
	}
	if s.WindowsFloatWhenInactive != nil {
		name := types.NamedValue(settings.ValueWindowsFloatWhenInactive)
		if err := e.setString(ctx, settings.KeyMacDriver, name, s.WindowsFloatWhenInactive.String()); err != nil {
			return err
		}
	}
	return nil
}

// appKeyPath returns the per-application override key for app.
func appKeyPath(app string) string {
	return settings.KeyAppDefaults + `\` + app
}

// AppSettings assembles the override block for one application, nil when the
// application has no overrides at all.
func (e *Editor) AppSettings(ctx context.Context, app string) (*settings.AppSettings, error) {
	base := appKeyPath(app)

	out := settings.NewAppSettings(app)
	found := false

	dllKey := base + `\DllOverrides`
	if values, err := e.registry.GetKeyValues(ctx, dllKey); err != nil {
		return nil, err
	} else {
		for dll, v := range values {
			s, ok := v.(types.Sz)
			if !ok {
				continue
			}
			if mode, ok := settings.ParseDllOverrideMode(string(s)); ok {
				out.DllOverrides = append(out.DllOverrides, settings.DllOverride{Dll: dll, Mode: mode})
				found = true
			}
		}
	}

	d3dKey := base + `\Direct3D`
	if raw, ok, err := e.getString(ctx, d3dKey, types.NamedValue(settings.ValueD3DRenderer)); err != nil {
		return nil, err
	} else if ok {
		if r, ok := settings.ParseD3DRenderer(raw); ok {
			out.D3DRenderer = &r
			found = true
		}
	}
	if raw, ok, err := e.getString(ctx, d3dKey, types.NamedValue(settings.ValueOffscreenRenderingMode)); err != nil {
		return nil, err
	} else if ok {
		if m, ok := settings.ParseOffscreenRenderingMode(raw); ok {
			out.OffscreenRenderingMode = &m
			found = true
		}
	}

	if values, err := e.registry.GetKeyValues(ctx, base); err != nil {
		return nil, err
	} else {
		for name, v := range values {
			if name == types.DefaultValueDisplay {
				continue
			}
			if s, ok := v.(types.Sz); ok {
				out.CustomSettings[name] = string(s)
				found = true
			}
		}
	}

	if !found {
		return nil, nil
	}
	return &out, nil
}

// SetAppSettings writes an application override block.
func (e *Editor) SetAppSettings(ctx context.Context, s settings.AppSettings) error {
	if s.Name == "" {
		return types.ValidationError("application name must not be empty")
	}
	base := appKeyPath(s.Name)
	dllKey := base + `\DllOverrides`
	d3dKey := base + `\Direct3D`

	if err := settings.ValidateKeyPath(base); err != nil {
		return err
	}
	for _, o := range s.DllOverrides {
		if err := validateSlot(dllKey, types.NamedValue(o.Dll)); err != nil {
			return err
		}
	}
	for name := range s.CustomSettings {
		if err := validateSlot(base, types.NamedValue(name)); err != nil {
			return err
		}
	}

	for _, o := range s.DllOverrides {
		if err := e.setString(ctx, dllKey, types.NamedValue(o.Dll), o.Mode.String()); err != nil {
			return err
		}
	}
	if s.D3DRenderer != nil {
		if err := e.setString(ctx, d3dKey, types.NamedValue(settings.ValueD3DRenderer), s.D3DRenderer.String()); err != nil {
			return err
		}
	}
	if s.OffscreenRenderingMode != nil {
		if err := e.setString(ctx, d3dKey, types.NamedValue(settings.ValueOffscreenRenderingMode), s.OffscreenRenderingMode.String()); err != nil {
			return err
		}
	}
	for name, value := range s.CustomSettings {
		if err := e.setString(ctx, base, types.NamedValue(name), value); err != nil {
			return err
		}
	}
	return nil
}

// RemoveAppSettings tombstones every key of an application's override block.
func (e *Editor) RemoveAppSettings(ctx context.Context, app string) error {
	if app == "" {
		return types.ValidationError("application name must not be empty")
	}
	base := appKeyPath(app)
	matches, err := e.registry.FindKeys(ctx, base)
	if err != nil {
		return err
	}
	for _, keyPath := range matches {
		if keyPath != base && !isSubkeyOf(keyPath, base) {
			continue
		}
		if err := e.registry.DeleteKey(ctx, keyPath); err != nil {
			return err
		}
	}
	return nil
}

func isSubkeyOf(keyPath, base string) bool {
	return len(keyPath) > len(base) &&
		keyPath[:len(base)] == base &&
		keyPath[len(base)] == '\\'
}
