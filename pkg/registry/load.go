package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/winetools/regkit/internal/regtext"
	"github.com/winetools/regkit/pkg/types"
)

// Registry file names inside a Wine prefix, in ascending precedence order
// for the wholesale-replace rule applied by LoadFromPrefix.
const (
	SystemRegFile  = "system.reg"
	UserDefRegFile = "userdef.reg"
	UserRegFile    = "user.reg"
)

// LoadFromFile parses one .reg file into a fresh registry handle. The parse
// runs synchronously in the calling goroutine; callers on a latency-critical
// path should invoke it from a worker goroutine.
func LoadFromFile(ctx context.Context, path string) (*WineRegistry, error) {
	reg, err := parseFile(ctx, path)
	if err != nil {
		return nil, err
	}
	w := New()
	w.install(reg, path)
	return w, nil
}

// LoadFromPrefix loads the registry files of a Wine prefix concurrently.
//
// A missing file is treated as absent; a present-but-unparseable file is
// logged and treated as absent. Precedence is wholesale, not per-key: the
// result starts as system.reg's document, is replaced in its entirety by
// userdef.reg's only when the current result has zero keys, and is then
// replaced in its entirety by user.reg's whenever user.reg loaded. The final
// document is always the full content of exactly one file. If no file could
// be loaded at all, the call fails with ErrNoRegistryFiles.
func LoadFromPrefix(ctx context.Context, prefixDir string) (*WineRegistry, error) {
	var system, userdef, user *types.Registry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		system = parseOptional(gctx, filepath.Join(prefixDir, SystemRegFile))
		return gctx.Err()
	})
	g.Go(func() error {
		userdef = parseOptional(gctx, filepath.Join(prefixDir, UserDefRegFile))
		return gctx.Err()
	})
	g.Go(func() error {
		user = parseOptional(gctx, filepath.Join(prefixDir, UserRegFile))
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	loaded := 0
	merged := types.NewRegistry(types.Regedit5)
	if system != nil {
		slog.Debug("loaded system.reg", "prefix", prefixDir, "keys", system.Len())
		merged = system
		loaded++
	}
	if userdef != nil {
		slog.Debug("loaded userdef.reg", "prefix", prefixDir, "keys", userdef.Len())
		if merged.Len() == 0 {
			merged = userdef
		}
		loaded++
	}
	if user != nil {
		// user.reg wins outright; it carries the per-user settings the
		// editor operates on.
		slog.Debug("loaded user.reg", "prefix", prefixDir, "keys", user.Len())
		merged = user
		loaded++
	}
	if loaded == 0 {
		return nil, &types.Error{Kind: types.ErrKindNotFound,
			Msg: "no valid registry files found in prefix " + prefixDir, Err: types.ErrNoRegistryFiles}
	}

	w := New()
	w.install(merged, prefixDir)
	return w, nil
}

// SaveToFile serializes the current document to path. Serialization happens
// under a shared lock; the file write happens outside any lock, against a
// temporary file that is renamed into place while holding an advisory flock
// on the destination.
func (w *WineRegistry) SaveToFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.shared.mu.RLock()
	data := regtext.Serialize(w.shared.reg)
	w.shared.mu.RUnlock()

	return writeFileLocked(path, data)
}

// parseFile reads and parses one .reg file, classifying failures.
func parseFile(ctx context.Context, path string) (*types.Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &types.Error{Kind: types.ErrKindNotFound, Msg: "registry file not found: " + path, Err: err}
		}
		return nil, types.IOError("read registry file "+path, err)
	}
	reg, err := regtext.Parse(data, regtext.ParseOptions{})
	if err != nil {
		return nil, types.FormatError("parse registry file "+path, err)
	}
	return reg, nil
}

// parseOptional returns nil for a missing or unparseable file. Parse
// failures are logged rather than surfaced; loading only fails when no
// file parses at all.
func parseOptional(ctx context.Context, path string) *types.Registry {
	reg, err := parseFile(ctx, path)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) && !errors.Is(err, context.Canceled) {
			slog.Warn("skipping unparseable registry file", "path", path, "error", err)
		}
		return nil
	}
	return reg
}

// writeFileLocked writes data to path atomically: flock on the destination,
// write a sibling temp file, rename over the target.
func writeFileLocked(path string, data []byte) error {
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return types.IOError("open registry file "+path, err)
	}
	defer dst.Close()

	if err := unix.Flock(int(dst.Fd()), unix.LOCK_EX); err != nil {
		return types.IOError("lock registry file "+path, err)
	}
	defer unix.Flock(int(dst.Fd()), unix.LOCK_UN) //nolint:errcheck // released on close anyway

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return types.IOError("create temp registry file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return types.IOError("write registry file "+path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return types.IOError("sync registry file "+path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return types.IOError("close temp registry file", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return types.IOError(fmt.Sprintf("rename %s into place", tmpName), err)
	}
	return nil
}
