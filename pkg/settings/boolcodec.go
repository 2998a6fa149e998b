package settings

import "github.com/winetools/regkit/pkg/types"

// BoolCodec is one field's boolean wire convention. Wine settings use three
// incompatible encodings (DWORD 0/1, "Y"/"N", "y"/"n"), and some fields
// decode leniently ("anything but N") while others decode strictly ("only
// Y"). Each field gets its own entry so the convention is never unified by
// accident.
type BoolCodec struct {
	// Encode renders the boolean as its on-disk value.
	Encode func(bool) types.Value
	// Decode interprets an on-disk value; ok=false means the value is not
	// interpretable for this field (wrong type, unexpected payload).
	Decode func(types.Value) (v, ok bool)
	// DefaultWhenAbsent is the documented behavior when the value is
	// missing; nil means "unset", not false.
	DefaultWhenAbsent *bool
}

func stringValue(v types.Value) (string, bool) {
	switch s := v.(type) {
	case types.Sz:
		return string(s), true
	case types.ExpandSz:
		return string(s), true
	default:
		return "", false
	}
}

// dwordBool encodes as REG_DWORD 0/1 and decodes any nonzero as true.
func dwordBool() BoolCodec {
	return BoolCodec{
		Encode: func(b bool) types.Value {
			if b {
				return types.Dword(1)
			}
			return types.Dword(0)
		},
		Decode: func(v types.Value) (bool, bool) {
			d, ok := v.(types.Dword)
			if !ok {
				return false, false
			}
			return d != 0, true
		},
	}
}

// yesNoBool encodes as the given yes/no strings and decodes with the given
// predicate over the raw string.
func yesNoBool(yes, no string, decode func(string) bool, defaultWhenAbsent *bool) BoolCodec {
	return BoolCodec{
		Encode: func(b bool) types.Value {
			if b {
				return types.Sz(yes)
			}
			return types.Sz(no)
		},
		Decode: func(v types.Value) (bool, bool) {
			s, ok := stringValue(v)
			if !ok {
				return false, false
			}
			return decode(s), true
		},
		DefaultWhenAbsent: defaultWhenAbsent,
	}
}

func boolPtr(b bool) *bool { return &b }

// X11 driver flags store uppercase "Y"/"N". Most decode as "anything but N"
// (so an absent or garbage value leans enabled); GrabFullscreen and
// UseXVidMode decode strictly as "Y".
var (
	upperNotN = yesNoBool("Y", "N", func(s string) bool { return s != "N" }, boolPtr(true))
	upperIsY  = yesNoBool("Y", "N", func(s string) bool { return s == "Y" }, nil)

	// Mac driver flags store lowercase "y"/"n" and decode strictly.
	lowerIsY = yesNoBool("y", "n", func(s string) bool { return s == "y" }, nil)

	// RetinaMode is the historical odd one out: writes "Y"/"n", reads "Y".
	retinaYn = yesNoBool("Y", "n", func(s string) bool { return s == "Y" }, nil)

	// CSMT is a DWORD toggle.
	csmtBool = dwordBool()
)

// BoolField binds a registry value name to its codec.
type BoolField struct {
	Name  string
	Codec BoolCodec
}

// X11DriverFields is the codec table for Software\Wine\X11 Driver, one entry
// per flag, in the order the composite struct lists them.
var X11DriverFields = []BoolField{
	{"Decorated", upperNotN},
	{"ClientSideGraphics", upperNotN},
	{"ClientSideWithRender", upperNotN},
	{"ClientSideAntiAliasWithRender", upperNotN},
	{"ClientSideAntiAliasWithCore", upperNotN},
	{"GrabFullscreen", upperIsY},
	{"GrabPointer", upperNotN},
	{"Managed", upperNotN},
	{"UseXRandR", upperNotN},
	{"UseXVidMode", upperIsY},
}

// MacDriverFields is the codec table for Software\Wine\Mac Driver booleans.
var MacDriverFields = []BoolField{
	{ValueAllowVerticalSync, lowerIsY},
	{ValueCaptureDisplaysForFullscreen, lowerIsY},
	{ValueUsePreciseScrolling, lowerIsY},
	{ValueRetinaMode, retinaYn},
}

// CSMTField is the Direct3D csmt toggle.
var CSMTField = BoolField{ValueCSMT, csmtBool}

// ShowSystrayField is the Explorer systray toggle (DWORD, shown when absent).
var ShowSystrayField = BoolField{ValueShowSystray, BoolCodec{
	Encode:            csmtBool.Encode,
	Decode:            csmtBool.Decode,
	DefaultWhenAbsent: boolPtr(true),
}}
