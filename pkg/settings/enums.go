package settings

// WindowsVersion enumerates the Windows versions a prefix can report.
type WindowsVersion int

const (
	Win10 WindowsVersion = iota
	Win81
	Win8
	Win7
	Win2008
	Vista
	Win2003
	WinXP
	Win2K
	NT40
	WinME
	Win98
	Win95
	Win31
)

var windowsVersionNames = map[WindowsVersion]string{
	Win10:   "win10",
	Win81:   "win81",
	Win8:    "win8",
	Win7:    "win7",
	Win2008: "win2008",
	Vista:   "vista",
	Win2003: "win2003",
	WinXP:   "winxp",
	Win2K:   "win2k",
	NT40:    "nt40",
	WinME:   "winme",
	Win98:   "win98",
	Win95:   "win95",
	Win31:   "win31",
}

func (v WindowsVersion) String() string { return windowsVersionNames[v] }

// ParseWindowsVersion decodes the registry spelling of a Windows version.
// Unknown strings report ok=false so callers can treat on-disk surprises as
// unset rather than failing.
func ParseWindowsVersion(s string) (WindowsVersion, bool) {
	for v, name := range windowsVersionNames {
		if name == s {
			return v, true
		}
	}
	return 0, false
}

// D3DRenderer enumerates Direct3D rendering backends.
type D3DRenderer int

const (
	RendererGDI D3DRenderer = iota
	RendererOpenGL
	RendererVulkan
)

func (r D3DRenderer) String() string {
	switch r {
	case RendererGDI:
		return "gdi"
	case RendererOpenGL:
		return "gl"
	case RendererVulkan:
		return "vulkan"
	default:
		return ""
	}
}

// ParseD3DRenderer decodes the registry spelling of a renderer. "no3d" is an
// accepted alias for the GDI backend.
func ParseD3DRenderer(s string) (D3DRenderer, bool) {
	switch s {
	case "gdi", "no3d":
		return RendererGDI, true
	case "gl":
		return RendererOpenGL, true
	case "vulkan":
		return RendererVulkan, true
	default:
		return 0, false
	}
}

// OffscreenRenderingMode enumerates Direct3D offscreen rendering modes.
type OffscreenRenderingMode int

const (
	Backbuffer OffscreenRenderingMode = iota
	FBO
)

func (m OffscreenRenderingMode) String() string {
	if m == Backbuffer {
		return "backbuffer"
	}
	return "fbo"
}

func ParseOffscreenRenderingMode(s string) (OffscreenRenderingMode, bool) {
	switch s {
	case "backbuffer":
		return Backbuffer, true
	case "fbo":
		return FBO, true
	default:
		return 0, false
	}
}

// MouseWarpOverride enumerates DirectInput mouse warp modes.
type MouseWarpOverride int

const (
	MouseWarpEnable MouseWarpOverride = iota
	MouseWarpDisable
	MouseWarpForce
)

func (m MouseWarpOverride) String() string {
	switch m {
	case MouseWarpEnable:
		return "enable"
	case MouseWarpDisable:
		return "disable"
	case MouseWarpForce:
		return "force"
	default:
		return ""
	}
}

func ParseMouseWarpOverride(s string) (MouseWarpOverride, bool) {
	switch s {
	case "enable":
		return MouseWarpEnable, true
	case "disable":
		return MouseWarpDisable, true
	case "force":
		return MouseWarpForce, true
	default:
		return 0, false
	}
}

// DllOverrideMode enumerates DLL load-order overrides. The disabled mode
// serializes as the empty string.
type DllOverrideMode int

const (
	DllNative DllOverrideMode = iota
	DllBuiltin
	DllNativeBuiltin
	DllBuiltinNative
	DllDisabled
)

func (m DllOverrideMode) String() string {
	switch m {
	case DllNative:
		return "native"
	case DllBuiltin:
		return "builtin"
	case DllNativeBuiltin:
		return "native,builtin"
	case DllBuiltinNative:
		return "builtin,native"
	case DllDisabled:
		return ""
	default:
		return ""
	}
}

func ParseDllOverrideMode(s string) (DllOverrideMode, bool) {
	switch s {
	case "native":
		return DllNative, true
	case "builtin":
		return DllBuiltin, true
	case "native,builtin":
		return DllNativeBuiltin, true
	case "builtin,native":
		return DllBuiltinNative, true
	case "":
		return DllDisabled, true
	default:
		return 0, false
	}
}

// AudioDriver enumerates audio backends. Disabled serializes as "".
type AudioDriver int

const (
	AudioPulse AudioDriver = iota
	AudioALSA
	AudioOSS
	AudioCoreAudio
	AudioDisabled
)

func (d AudioDriver) String() string {
	switch d {
	case AudioPulse:
		return "pulse"
	case AudioALSA:
		return "alsa"
	case AudioOSS:
		return "oss"
	case AudioCoreAudio:
		return "coreaudio"
	case AudioDisabled:
		return ""
	default:
		return ""
	}
}

func ParseAudioDriver(s string) (AudioDriver, bool) {
	switch s {
	case "pulse":
		return AudioPulse, true
	case "alsa":
		return AudioALSA, true
	case "oss":
		return AudioOSS, true
	case "coreaudio":
		return AudioCoreAudio, true
	case "":
		return AudioDisabled, true
	default:
		return 0, false
	}
}

// GraphicsDriver enumerates display backends.
type GraphicsDriver int

const (
	GraphicsX11 GraphicsDriver = iota
	GraphicsMac
	GraphicsNull
)

func (d GraphicsDriver) String() string {
	switch d {
	case GraphicsX11:
		return "x11"
	case GraphicsMac:
		return "mac"
	case GraphicsNull:
		return "null"
	default:
		return ""
	}
}

func ParseGraphicsDriver(s string) (GraphicsDriver, bool) {
	switch s {
	case "x11":
		return GraphicsX11, true
	case "mac":
		return GraphicsMac, true
	case "null":
		return GraphicsNull, true
	default:
		return 0, false
	}
}

// WindowsFloatWhenInactive enumerates the Mac driver's inactive-window
// float behavior.
type WindowsFloatWhenInactive int

const (
	FloatNone WindowsFloatWhenInactive = iota
	FloatAll
	FloatNonFullscreen
)

func (w WindowsFloatWhenInactive) String() string {
	switch w {
	case FloatNone:
		return "none"
	case FloatAll:
		return "all"
	case FloatNonFullscreen:
		return "nonfullscreen"
	default:
		return ""
	}
}

func ParseWindowsFloatWhenInactive(s string) (WindowsFloatWhenInactive, bool) {
	switch s {
	case "none":
		return FloatNone, true
	case "all":
		return FloatAll, true
	case "nonfullscreen":
		return FloatNonFullscreen, true
	default:
		return 0, false
	}
}
