package settings

// Registry key paths of the known settings. Paths are relative to the
// current-user hive the way Wine's user.reg stores them.
const (
	KeyWine                = `Software\Wine`
	KeyDirect3D            = `Software\Wine\Direct3D`
	KeyDirectInput         = `Software\Wine\DirectInput`
	KeyAudioDriver         = `Software\Wine\Drivers\Audio`
	KeyGraphicsDriver      = `Software\Wine\Drivers\Graphics`
	KeyExplorer            = `Software\Wine\Explorer`
	KeyExplorerDesktops    = `Software\Wine\Explorer\Desktops`
	KeyFontReplacements    = `Software\Wine\Fonts\Replacements`
	KeyDllOverrides        = `Software\Wine\DllOverrides`
	KeyX11Driver           = `Software\Wine\X11 Driver`
	KeyMacDriver           = `Software\Wine\Mac Driver`
	KeyControlPanelDesktop = `Control Panel\Desktop`
	KeyAppDefaults         = `Software\Wine\AppDefaults`
)

// Value names of the simple (non-composite) settings.
const (
	ValueWindowsVersion         = "Version"
	ValueD3DRenderer            = "renderer"
	ValueCSMT                   = "csmt"
	ValueOffscreenRenderingMode = "OffscreenRenderingMode"
	ValueMouseWarpOverride      = "MouseWarpOverride"
	ValueVideoMemorySize        = "VideoMemorySize"
	ValueDesktop                = "Desktop"
	ValueShowSystray            = "ShowSystray"
	ValueLogPixels              = "LogPixels"
)

// Shader model limit value names under Software\Wine\Direct3D.
const (
	ValueMaxShaderModelVS = "MaxShaderModelVS"
	ValueMaxShaderModelPS = "MaxShaderModelPS"
	ValueMaxShaderModelGS = "MaxShaderModelGS"
	ValueMaxShaderModelHS = "MaxShaderModelHS"
	ValueMaxShaderModelDS = "MaxShaderModelDS"
	ValueMaxShaderModelCS = "MaxShaderModelCS"
)

// Mac driver value names under Software\Wine\Mac Driver.
const (
	ValueAllowVerticalSync            = "AllowVerticalSync"
	ValueCaptureDisplaysForFullscreen = "CaptureDisplaysForFullscreen"
	ValueUsePreciseScrolling          = "UsePreciseScrolling"
	ValueRetinaMode                   = "RetinaMode"
	ValueWindowsFloatWhenInactive     = "WindowsFloatWhenInactive"
)
