package regtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winetools/regkit/pkg/types"
)

func TestSerializeBasic(t *testing.T) {
	reg := types.NewRegistry(types.Regedit5)
	key := reg.EnsureKey(`Software\Wine`)
	key.Set(types.DefaultName(), types.Sz("d"))
	key.Set(types.NamedValue("Version"), types.Sz("win10"))
	key.Set(types.NamedValue("csmt"), types.Dword(1))
	key.Set(types.NamedValue("renderer"), types.ExpandSz("vulkan"))

	out := string(Serialize(reg))

	assert.True(t, strings.HasPrefix(out, RegFileHeader+CRLF), "header first")
	assert.Contains(t, out, `[Software\Wine]`+CRLF)
	assert.Contains(t, out, `@="d"`+CRLF)
	assert.Contains(t, out, `"Version"="win10"`+CRLF)
	assert.Contains(t, out, `"csmt"=dword:00000001`+CRLF)
	assert.Contains(t, out, `"renderer"=str(2):"vulkan"`+CRLF)
}

func TestSerializeDeleteMarkers(t *testing.T) {
	reg := types.NewRegistry(types.Regedit5)
	reg.PutKey(`Software\Wine\Gone`, types.DeletedKey())
	key := reg.EnsureKey(`Software\Wine`)
	key.Set(types.NamedValue("removed"), types.Delete{})

	out := string(Serialize(reg))

	assert.Contains(t, out, `[-Software\Wine\Gone]`+CRLF)
	assert.Contains(t, out, `"removed"=-`+CRLF)
}

func TestSerializeOrderStable(t *testing.T) {
	reg := types.NewRegistry(types.Regedit5)
	reg.EnsureKey(`Software\Zeta`).Set(types.NamedValue("z"), types.Sz("1"))
	reg.EnsureKey(`Software\Alpha`).Set(types.NamedValue("a"), types.Sz("2"))

	out := string(Serialize(reg))
	zeta := strings.Index(out, `[Software\Zeta]`)
	alpha := strings.Index(out, `[Software\Alpha]`)
	require.True(t, zeta >= 0 && alpha >= 0)
	assert.Less(t, zeta, alpha, "keys keep insertion order")
}

func TestSerializeWrapsLongHex(t *testing.T) {
	reg := types.NewRegistry(types.Regedit5)
	blob := make([]byte, 64)
	for i := range blob {
		blob[i] = byte(i)
	}
	reg.EnsureKey(`Software\Wine`).Set(types.NamedValue("blob"), types.Binary(blob))

	out := string(Serialize(reg))

	for _, line := range strings.Split(out, CRLF) {
		assert.LessOrEqual(t, len(line), HexWrapColumn+len(HexByteSeparator+Backslash),
			"line too long: %q", line)
	}
	assert.Contains(t, out, Backslash+CRLF+"  ", "continuation marker present")
}

func TestRoundTrip(t *testing.T) {
	reg := types.NewRegistry(types.Regedit5)

	wine := reg.EnsureKey(`Software\Wine`)
	wine.Set(types.DefaultName(), types.Sz("default"))
	wine.Set(types.NamedValue("Version"), types.Sz("win10"))
	wine.Set(types.NamedValue("Path"), types.Sz(`C:\Program Files\"App"`))

	d3d := reg.EnsureKey(`Software\Wine\Direct3D`)
	d3d.Set(types.NamedValue("csmt"), types.Dword(0))
	d3d.Set(types.NamedValue("VideoMemorySize"), types.Dword(2048))
	d3d.Set(types.NamedValue("shader"), types.ExpandSz("%WINEPREFIX%\\x"))

	misc := reg.EnsureKey(`Software\Wine\Misc`)
	misc.Set(types.NamedValue("blob"), types.Binary(make([]byte, 100)))
	misc.Set(types.NamedValue("list"), types.MultiSz{"alpha", "beta", "gamma"})
	misc.Set(types.NamedValue(""), types.Sz("empty name"))

	reg.PutKey(`Software\Wine\Dead`, types.DeletedKey())

	first := Serialize(reg)
	parsed, err := Parse(first, ParseOptions{})
	require.NoError(t, err)
	second := Serialize(parsed)

	assert.Equal(t, string(first), string(second), "serialize/parse/serialize must be a fixed point")
}

func TestRoundTripDropsValueTombstones(t *testing.T) {
	reg := types.NewRegistry(types.Regedit5)
	key := reg.EnsureKey(`Software\Wine`)
	key.Set(types.NamedValue("kept"), types.Sz("x"))
	key.Set(types.NamedValue("gone"), types.Delete{})

	parsed, err := Parse(Serialize(reg), ParseOptions{})
	require.NoError(t, err)

	k, ok := parsed.Key(`Software\Wine`)
	require.True(t, ok)
	_, kept := k.Get(types.NamedValue("kept"))
	_, gone := k.Get(types.NamedValue("gone"))
	assert.True(t, kept)
	assert.False(t, gone, "tombstone resolves to absence on re-parse")
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    types.Value
		want string
	}{
		{types.Sz("hi"), `REG_SZ "hi"`},
		{types.ExpandSz("%TMP%"), `REG_EXPAND_SZ "%TMP%"`},
		{types.Dword(255), "REG_DWORD 0x000000ff (255)"},
		{types.Binary{0x01, 0x02}, "REG_BINARY 01,02"},
		{types.MultiSz{"a", "b"}, "REG_MULTI_SZ [a, b]"},
		{types.Delete{}, "<deleted>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValueString(tt.v))
	}
}
