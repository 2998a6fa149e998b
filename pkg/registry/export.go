package registry

import (
	"context"

	"github.com/winetools/regkit/internal/regtext"
	"github.com/winetools/regkit/pkg/types"
)

// Export renders the current document as regedit5 text.
func (w *WineRegistry) Export(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w.shared.mu.RLock()
	defer w.shared.mu.RUnlock()
	return regtext.Serialize(w.shared.reg), nil
}

// ParseText parses regedit5 text into a fresh registry handle. The optional
// encoding names the input byte encoding when no BOM is present.
func ParseText(data []byte, encoding string) (*WineRegistry, error) {
	reg, err := regtext.Parse(data, regtext.ParseOptions{InputEncoding: encoding})
	if err != nil {
		return nil, err
	}
	w := New()
	w.install(reg, "")
	return w, nil
}

// FormatValue renders a value for human-facing listings.
func FormatValue(v types.Value) string {
	return regtext.ValueString(v)
}
