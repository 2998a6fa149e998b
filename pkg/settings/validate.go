package settings

import (
	"fmt"
	"strings"

	"github.com/winetools/regkit/pkg/types"
)

// Numeric setting bounds.
const (
	MinDPI           = 96
	MinVideoMemoryMB = 1
	MaxVideoMemoryMB = 16384
)

// invalidNameChars are forbidden in value names.
const invalidNameChars = `\/:*?"<>|`

// ValidateKeyPath rejects empty paths and paths outside the per-user roots
// the editor manages. Keys live under Software (including AppDefaults app
// blocks) or Control Panel (the DPI key).
func ValidateKeyPath(keyPath string) error {
	if keyPath == "" {
		return types.ValidationError("key path cannot be empty")
	}
	if !strings.HasPrefix(keyPath, "Software") && !strings.HasPrefix(keyPath, "Control Panel") {
		return types.ValidationError(fmt.Sprintf(
			"invalid key path %q: expected to start with 'Software'", keyPath))
	}
	return nil
}

// ValidateValueName rejects named slots that are empty or contain the
// characters \ / : * ? " < > |. The default slot always passes; settings
// that intentionally target it (audio/graphics drivers) use it explicitly.
func ValidateValueName(name types.ValueName) error {
	if name.IsDefault() {
		return nil
	}
	if name.Name() == "" {
		return types.ValidationError("value name cannot be empty")
	}
	if i := strings.IndexAny(name.Name(), invalidNameChars); i >= 0 {
		return types.ValidationError(fmt.Sprintf(
			"invalid character %q in value name %q", name.Name()[i], name.Name()))
	}
	return nil
}

// ValidateDPI enforces the LogPixels floor.
func ValidateDPI(dpi uint32) error {
	if dpi < MinDPI {
		return types.ValidationError(fmt.Sprintf("DPI must be at least %d, got %d", MinDPI, dpi))
	}
	return nil
}

// ValidateVideoMemory enforces the VideoMemorySize range in MB.
func ValidateVideoMemory(sizeMB uint32) error {
	if sizeMB < MinVideoMemoryMB || sizeMB > MaxVideoMemoryMB {
		return types.ValidationError(fmt.Sprintf(
			"video memory size must be between %d and %d MB, got %d",
			MinVideoMemoryMB, MaxVideoMemoryMB, sizeMB))
	}
	return nil
}
