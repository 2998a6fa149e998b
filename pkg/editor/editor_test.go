package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winetools/regkit/pkg/cache"
	"github.com/winetools/regkit/pkg/registry"
	"github.com/winetools/regkit/pkg/settings"
	"github.com/winetools/regkit/pkg/types"
)

func newTestEditor() *Editor {
	return New(cache.NewInMemoryCache(time.Minute))
}

func TestWindowsVersion(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor()

	if _, ok, err := e.WindowsVersion(ctx); ok || err != nil {
		t.Fatalf("fresh registry: got ok=%v err=%v", ok, err)
	}

	require.NoError(t, e.SetWindowsVersion(ctx, "win10"))
	v, ok, err := e.WindowsVersion(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "win10", v)

	// Setter is idempotent.
	require.NoError(t, e.SetWindowsVersion(ctx, "win10"))
	v, _, _ = e.WindowsVersion(ctx)
	assert.Equal(t, "win10", v)

	err = e.SetWindowsVersion(ctx, "windows95")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrValidation)
	// The rejected write left the old value in place.
	v, _, _ = e.WindowsVersion(ctx)
	assert.Equal(t, "win10", v)
}

func TestSimpleSettings(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor()

	require.NoError(t, e.SetD3DRenderer(ctx, "vulkan"))
	r, ok, _ := e.D3DRenderer(ctx)
	assert.True(t, ok)
	assert.Equal(t, "vulkan", r)

	// no3d normalizes to gdi on write.
	require.NoError(t, e.SetD3DRenderer(ctx, "no3d"))
	r, _, _ = e.D3DRenderer(ctx)
	assert.Equal(t, "gdi", r)

	require.NoError(t, e.SetOffscreenRenderingMode(ctx, "fbo"))
	m, _, _ := e.OffscreenRenderingMode(ctx)
	assert.Equal(t, "fbo", m)

	require.NoError(t, e.SetMouseWarpOverride(ctx, "force"))
	w, _, _ := e.MouseWarpOverride(ctx)
	assert.Equal(t, "force", w)

	assert.Error(t, e.SetOffscreenRenderingMode(ctx, "pbuffer"))
	assert.Error(t, e.SetMouseWarpOverride(ctx, "sometimes"))
}

func TestCSMTStoredAsDword(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor()

	require.NoError(t, e.SetD3DCSMT(ctx, true))
	v, ok, err := e.Registry().GetValue(ctx, settings.KeyDirect3D, types.NamedValue("csmt"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.Dword(1), v)

	on, ok, _ := e.D3DCSMT(ctx)
	assert.True(t, ok)
	assert.True(t, on)

	require.NoError(t, e.SetD3DCSMT(ctx, false))
	on, _, _ = e.D3DCSMT(ctx)
	assert.False(t, on)
}

func TestDriversUseDefaultSlot(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor()

	require.NoError(t, e.SetAudioDriver(ctx, "pulse"))
	require.NoError(t, e.SetGraphicsDriver(ctx, "x11"))

	v, ok, err := e.Registry().GetValue(ctx, settings.KeyAudioDriver, types.DefaultName())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.Sz("pulse"), v)

	d, ok, _ := e.GraphicsDriver(ctx)
	assert.True(t, ok)
	assert.Equal(t, "x11", d)

	// The empty string disables audio, but is not a graphics driver.
	require.NoError(t, e.SetAudioDriver(ctx, ""))
	assert.Error(t, e.SetGraphicsDriver(ctx, ""))
}

func TestVideoMemoryRange(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor()

	require.NoError(t, e.SetVideoMemorySize(ctx, 2048))
	mb, ok, _ := e.VideoMemorySize(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint32(2048), mb)

	for _, bad := range []uint32{0, 16385} {
		err := e.SetVideoMemorySize(ctx, bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrValidation)
	}
	mb, _, _ = e.VideoMemorySize(ctx)
	assert.Equal(t, uint32(2048), mb, "rejected writes must not change state")
}

func TestFontReplacements(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor()

	reps, err := e.FontReplacements(ctx)
	require.NoError(t, err)
	assert.Empty(t, reps)

	require.NoError(t, e.AddFontReplacement(ctx, "Arial", "Liberation Sans"))
	require.NoError(t, e.AddFontReplacement(ctx, "Times New Roman", "Liberation Serif"))

	reps, err = e.FontReplacements(ctx)
	require.NoError(t, err)
	assert.Len(t, reps, 2)

	require.NoError(t, e.RemoveFontReplacement(ctx, "Arial"))
	reps, _ = e.FontReplacements(ctx)
	require.Len(t, reps, 1)
	assert.Equal(t, "Times New Roman", reps[0].Original)
}

func TestDllOverrides(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor()

	require.NoError(t, e.AddDllOverride(ctx, "d3d11", settings.DllNativeBuiltin))
	require.NoError(t, e.AddDllOverride(ctx, "winemenubuilder.exe", settings.DllDisabled))

	overrides, err := e.DllOverrides(ctx)
	require.NoError(t, err)
	require.Len(t, overrides, 2)

	byDll := map[string]settings.DllOverrideMode{}
	for _, o := range overrides {
		byDll[o.Dll] = o.Mode
	}
	assert.Equal(t, settings.DllNativeBuiltin, byDll["d3d11"])
	assert.Equal(t, settings.DllDisabled, byDll["winemenubuilder.exe"])

	require.NoError(t, e.RemoveDllOverride(ctx, "d3d11"))
	overrides, _ = e.DllOverrides(ctx)
	assert.Len(t, overrides, 1)
}

func TestLoadSaveRegistry(t *testing.T) {
	ctx := context.Background()
	prefix := t.TempDir()
	e := newTestEditor()

	require.NoError(t, e.SetWindowsVersion(ctx, "win7"))
	require.NoError(t, e.SaveRegistry(ctx, prefix))

	if _, err := os.Stat(filepath.Join(prefix, registry.UserRegFile)); err != nil {
		t.Fatalf("user.reg not written: %v", err)
	}

	other := newTestEditor()
	require.NoError(t, other.LoadRegistry(ctx, prefix))
	v, ok, err := other.WindowsVersion(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "win7", v)
	assert.Equal(t, prefix, other.PrefixPath())
}

func TestWithPrefixUsesCache(t *testing.T) {
	ctx := context.Background()
	prefix := t.TempDir()
	c := cache.NewInMemoryCache(time.Minute)

	seed := newTestEditor()
	require.NoError(t, seed.SetWindowsVersion(ctx, "winxp"))
	require.NoError(t, seed.SaveRegistry(ctx, prefix))

	first, err := WithPrefix(ctx, c, prefix)
	require.NoError(t, err)
	v, _, _ := first.WindowsVersion(ctx)
	assert.Equal(t, "winxp", v)

	// Remove the backing file; a second open must be served from cache.
	require.NoError(t, os.Remove(filepath.Join(prefix, registry.UserRegFile)))
	second, err := WithPrefix(ctx, c, prefix)
	require.NoError(t, err)
	v, ok, _ := second.WindowsVersion(ctx)
	assert.True(t, ok)
	assert.Equal(t, "winxp", v)
}

func TestSaveInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	prefix := t.TempDir()
	c := cache.NewInMemoryCache(time.Minute)

	seed := New(c)
	require.NoError(t, seed.SetWindowsVersion(ctx, "win8"))
	require.NoError(t, seed.SaveRegistry(ctx, prefix))

	if _, ok, _ := c.GetCachedRegistry(ctx, prefix); ok {
		t.Fatal("save must leave no cache entry behind")
	}
}

func TestSaveWithoutPrefix(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor()

	err := e.Save(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNoPrefix)
	assert.ErrorIs(t, e.Reload(ctx), types.ErrNoPrefix)
}

func TestSaveReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	prefix := t.TempDir()
	c := cache.NewInMemoryCache(time.Minute)

	seed := New(c)
	require.NoError(t, seed.SetWindowsVersion(ctx, "win10"))
	require.NoError(t, seed.SaveRegistry(ctx, prefix))

	e, err := WithPrefix(ctx, c, prefix)
	require.NoError(t, err)
	require.NoError(t, e.SetWindowsVersion(ctx, "win7"))
	require.NoError(t, e.Save(ctx))

	// Reload after an external-style revert sees the saved state.
	require.NoError(t, e.Reload(ctx))
	v, _, _ := e.WindowsVersion(ctx)
	assert.Equal(t, "win7", v)
}

func TestValidateRegistry(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor()

	require.NoError(t, e.SetWindowsVersion(ctx, "win10"))
	issues, err := e.ValidateRegistry(ctx)
	require.NoError(t, err)
	assert.Empty(t, issues)

	// Inject out-of-schema entries through the raw handle.
	require.NoError(t, e.Registry().SetValue(ctx, `System\Rogue`, types.NamedValue("x"), types.Sz("1")))
	require.NoError(t, e.Registry().SetValue(ctx, settings.KeyWine, types.NamedValue("bad|name"), types.Sz("1")))

	issues, err = e.ValidateRegistry(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 2)
}

func TestAllKeys(t *testing.T) {
	ctx := context.Background()
	e := newTestEditor()
	require.NoError(t, e.SetWindowsVersion(ctx, "win10"))
	require.NoError(t, e.SetD3DCSMT(ctx, true))

	keys, err := e.AllKeys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{settings.KeyWine, settings.KeyDirect3D}, keys)
}
