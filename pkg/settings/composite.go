package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// Composite settings are transient views assembled from several primitive
// registry reads and decomposed back into several primitive writes. Fields
// are pointers so "set but partial" round-trips without inventing defaults.

// DesktopSize is a "WIDTHxHEIGHT" virtual desktop geometry.
type DesktopSize struct {
	Width  uint32
	Height uint32
}

func (s DesktopSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseDesktopSize decodes the "WIDTHxHEIGHT" registry spelling.
func ParseDesktopSize(s string) (DesktopSize, bool) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return DesktopSize{}, false
	}
	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return DesktopSize{}, false
	}
	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return DesktopSize{}, false
	}
	return DesktopSize{Width: uint32(width), Height: uint32(height)}, true
}

// DesktopSettings mirrors Software\Wine\Explorer and its Desktops subkey.
type DesktopSettings struct {
	Desktop     *string
	Desktops    map[string]DesktopSize
	ShowSystray *bool
}

// Empty reports whether no constituent read produced a value.
func (s DesktopSettings) Empty() bool {
	return s.Desktop == nil && s.ShowSystray == nil && len(s.Desktops) == 0
}

// VirtualDesktopSettings is the convenience view over DesktopSettings used
// by the virtual-desktop toggle.
type VirtualDesktopSettings struct {
	Enabled bool
	Width   uint32
	Height  uint32
}

// ShaderModelSettings mirrors the MaxShaderModel* limits under
// Software\Wine\Direct3D.
type ShaderModelSettings struct {
	MaxShaderModelVS *uint32
	MaxShaderModelPS *uint32
	MaxShaderModelGS *uint32
	MaxShaderModelHS *uint32
	MaxShaderModelDS *uint32
	MaxShaderModelCS *uint32
}

// Empty reports whether every field is unset.
func (s ShaderModelSettings) Empty() bool {
	return s.MaxShaderModelVS == nil && s.MaxShaderModelPS == nil &&
		s.MaxShaderModelGS == nil && s.MaxShaderModelHS == nil &&
		s.MaxShaderModelDS == nil && s.MaxShaderModelCS == nil
}

// X11DriverSettings mirrors the boolean flags of Software\Wine\X11 Driver.
// Field order matches X11DriverFields.
type X11DriverSettings struct {
	Decorated                     *bool
	ClientSideGraphics            *bool
	ClientSideWithRender          *bool
	ClientSideAntiAliasWithRender *bool
	ClientSideAntiAliasWithCore   *bool
	GrabFullscreen                *bool
	GrabPointer                   *bool
	Managed                       *bool
	UseXRandR                     *bool
	UseXVidMode                   *bool
}

// FlagPointers returns pointers to the flag fields in X11DriverFields table
// order so callers can walk struct and codec table in lockstep.
func (s *X11DriverSettings) FlagPointers() []**bool {
	return []**bool{
		&s.Decorated,
		&s.ClientSideGraphics,
		&s.ClientSideWithRender,
		&s.ClientSideAntiAliasWithRender,
		&s.ClientSideAntiAliasWithCore,
		&s.GrabFullscreen,
		&s.GrabPointer,
		&s.Managed,
		&s.UseXRandR,
		&s.UseXVidMode,
	}
}

// Empty reports whether every flag is unset.
func (s X11DriverSettings) Empty() bool {
	return s.Decorated == nil && s.ClientSideGraphics == nil &&
		s.ClientSideWithRender == nil && s.ClientSideAntiAliasWithRender == nil &&
		s.ClientSideAntiAliasWithCore == nil && s.GrabFullscreen == nil &&
		s.GrabPointer == nil && s.Managed == nil &&
		s.UseXRandR == nil && s.UseXVidMode == nil
}

// DpiSettings mirrors Control Panel\Desktop's LogPixels value.
type DpiSettings struct {
	LogPixels *uint32
}

// MacDriverSettings mirrors Software\Wine\Mac Driver.
type MacDriverSettings struct {
	AllowVerticalSync            *bool
	CaptureDisplaysForFullscreen *bool
	UsePreciseScrolling          *bool
	RetinaMode                   *bool
	WindowsFloatWhenInactive     *WindowsFloatWhenInactive
}

// FlagPointers returns pointers to the boolean fields in MacDriverFields
// table order.
func (s *MacDriverSettings) FlagPointers() []**bool {
	return []**bool{
		&s.AllowVerticalSync,
		&s.CaptureDisplaysForFullscreen,
		&s.UsePreciseScrolling,
		&s.RetinaMode,
	}
}

// Empty reports whether every field is unset.
func (s MacDriverSettings) Empty() bool {
	return s.AllowVerticalSync == nil && s.CaptureDisplaysForFullscreen == nil &&
		s.UsePreciseScrolling == nil && s.RetinaMode == nil &&
		s.WindowsFloatWhenInactive == nil
}

// DllOverride is one DLL's load-order override.
type DllOverride struct {
	Dll  string
	Mode DllOverrideMode
}

// FontReplacement maps an original font name to its substitute.
type FontReplacement struct {
	Original    string
	Replacement string
}

// AppSettings is the per-application override block stored under
// Software\Wine\AppDefaults\<app.exe>.
type AppSettings struct {
	Name                   string
	DllOverrides           []DllOverride
	D3DRenderer            *D3DRenderer
	OffscreenRenderingMode *OffscreenRenderingMode
	CustomSettings         map[string]string
}

// NewAppSettings returns an empty override block for the named application.
func NewAppSettings(name string) AppSettings {
	return AppSettings{Name: name, CustomSettings: make(map[string]string)}
}
