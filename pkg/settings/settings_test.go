package settings

import (
	"testing"

	"github.com/winetools/regkit/pkg/types"
)

func TestEnumRoundTrip(t *testing.T) {
	t.Run("windows versions", func(t *testing.T) {
		for v, name := range windowsVersionNames {
			got, ok := ParseWindowsVersion(name)
			if !ok || got != v {
				t.Errorf("ParseWindowsVersion(%q) = (%v, %v)", name, got, ok)
			}
		}
		if _, ok := ParseWindowsVersion("win12"); ok {
			t.Error("unknown version accepted")
		}
	})

	t.Run("renderer aliases", func(t *testing.T) {
		for _, s := range []string{"gdi", "no3d"} {
			r, ok := ParseD3DRenderer(s)
			if !ok || r != RendererGDI {
				t.Errorf("ParseD3DRenderer(%q) = (%v, %v)", s, r, ok)
			}
		}
		// The alias normalizes on write.
		if RendererGDI.String() != "gdi" {
			t.Errorf("RendererGDI renders as %q", RendererGDI.String())
		}
	})

	t.Run("dll override modes", func(t *testing.T) {
		modes := []DllOverrideMode{DllNative, DllBuiltin, DllNativeBuiltin, DllBuiltinNative, DllDisabled}
		for _, m := range modes {
			got, ok := ParseDllOverrideMode(m.String())
			if !ok || got != m {
				t.Errorf("mode %v round-trips to (%v, %v)", m, got, ok)
			}
		}
		if _, ok := ParseDllOverrideMode("native, builtin"); ok {
			t.Error("spaced spelling should be rejected")
		}
	})

	t.Run("empty string drivers", func(t *testing.T) {
		if d, ok := ParseAudioDriver(""); !ok || d != AudioDisabled {
			t.Errorf("ParseAudioDriver(\"\") = (%v, %v)", d, ok)
		}
		if _, ok := ParseGraphicsDriver(""); ok {
			t.Error("graphics driver has no disabled spelling")
		}
	})
}

func TestParseDesktopSize(t *testing.T) {
	tests := []struct {
		in   string
		want DesktopSize
		ok   bool
	}{
		{"800x600", DesktopSize{800, 600}, true},
		{"1920x1080", DesktopSize{1920, 1080}, true},
		{"800", DesktopSize{}, false},
		{"800x", DesktopSize{}, false},
		{"x600", DesktopSize{}, false},
		{"800X600", DesktopSize{}, false},
		{"-1x600", DesktopSize{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseDesktopSize(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseDesktopSize(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if (DesktopSize{1024, 768}).String() != "1024x768" {
		t.Error("DesktopSize.String mismatch")
	}
}

func TestBoolCodecEncodings(t *testing.T) {
	tests := []struct {
		name      string
		codec     BoolCodec
		wantTrue  types.Value
		wantFalse types.Value
	}{
		{"dword toggle", CSMTField.Codec, types.Dword(1), types.Dword(0)},
		{"uppercase lenient", upperNotN, types.Sz("Y"), types.Sz("N")},
		{"uppercase strict", upperIsY, types.Sz("Y"), types.Sz("N")},
		{"lowercase strict", lowerIsY, types.Sz("y"), types.Sz("n")},
		{"retina mixed case", retinaYn, types.Sz("Y"), types.Sz("n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.codec.Encode(true); got != tt.wantTrue {
				t.Errorf("Encode(true) = %#v, want %#v", got, tt.wantTrue)
			}
			if got := tt.codec.Encode(false); got != tt.wantFalse {
				t.Errorf("Encode(false) = %#v, want %#v", got, tt.wantFalse)
			}
		})
	}
}

func TestBoolCodecDecodeLeniency(t *testing.T) {
	// Lenient flags read anything but "N" as enabled; strict flags only "Y".
	if v, ok := upperNotN.Decode(types.Sz("garbage")); !ok || !v {
		t.Errorf("lenient decode of garbage = (%v, %v), want (true, true)", v, ok)
	}
	if v, ok := upperIsY.Decode(types.Sz("garbage")); !ok || v {
		t.Errorf("strict decode of garbage = (%v, %v), want (false, true)", v, ok)
	}
	if v, ok := upperIsY.Decode(types.Sz("y")); !ok || v {
		t.Errorf("strict uppercase decode of lowercase y = (%v, %v)", v, ok)
	}
	if v, ok := lowerIsY.Decode(types.Sz("Y")); !ok || v {
		t.Errorf("lowercase strict decode of uppercase Y = (%v, %v)", v, ok)
	}
	// RetinaMode writes "n" for false but only reads "Y" as true.
	if v, ok := retinaYn.Decode(types.Sz("n")); !ok || v {
		t.Errorf("retina decode of n = (%v, %v)", v, ok)
	}

	// Wrong value types are uninterpretable, not false.
	if _, ok := upperNotN.Decode(types.Dword(1)); ok {
		t.Error("string codec decoded a DWORD")
	}
	if _, ok := CSMTField.Codec.Decode(types.Sz("1")); ok {
		t.Error("dword codec decoded a string")
	}
}

func TestCodecTablesCoverCompositeFields(t *testing.T) {
	var x11 X11DriverSettings
	if got, want := len(x11.FlagPointers()), len(X11DriverFields); got != want {
		t.Fatalf("X11 flag pointer count %d, field table %d", got, want)
	}
	var mac MacDriverSettings
	if got, want := len(mac.FlagPointers()), len(MacDriverFields); got != want {
		t.Fatalf("Mac flag pointer count %d, field table %d", got, want)
	}
}

func TestValidateKeyPath(t *testing.T) {
	valid := []string{
		`Software\Wine`,
		`Software\Wine\Direct3D`,
		`Software`,
		`Control Panel\Desktop`,
	}
	for _, p := range valid {
		if err := ValidateKeyPath(p); err != nil {
			t.Errorf("ValidateKeyPath(%q) = %v", p, err)
		}
	}

	invalid := []string{
		"",
		`System\CurrentControlSet`,
		`software\wine`,
		`Hardware`,
	}
	for _, p := range invalid {
		if err := ValidateKeyPath(p); err == nil {
			t.Errorf("ValidateKeyPath(%q) accepted", p)
		}
	}
}

func TestValidateValueName(t *testing.T) {
	if err := ValidateValueName(types.DefaultName()); err != nil {
		t.Errorf("default slot rejected: %v", err)
	}
	if err := ValidateValueName(types.NamedValue("Version")); err != nil {
		t.Errorf("plain name rejected: %v", err)
	}
	if err := ValidateValueName(types.NamedValue("")); err == nil {
		t.Error("empty named value accepted")
	}
	for _, c := range []string{`a\b`, "a/b", "a:b", "a*b", "a?b", `a"b`, "a<b", "a>b", "a|b"} {
		if err := ValidateValueName(types.NamedValue(c)); err == nil {
			t.Errorf("name %q accepted", c)
		}
	}
}

func TestValidateRanges(t *testing.T) {
	if err := ValidateDPI(96); err != nil {
		t.Errorf("ValidateDPI(96) = %v", err)
	}
	if err := ValidateDPI(95); err == nil {
		t.Error("ValidateDPI(95) accepted")
	}
	if err := ValidateVideoMemory(1); err != nil {
		t.Errorf("ValidateVideoMemory(1) = %v", err)
	}
	for _, mb := range []uint32{0, 16385} {
		if err := ValidateVideoMemory(mb); err == nil {
			t.Errorf("ValidateVideoMemory(%d) accepted", mb)
		}
	}
}
