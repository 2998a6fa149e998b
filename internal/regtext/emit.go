package regtext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/winetools/regkit/pkg/types"
)

// Serialize renders a registry document as regedit5 text. Keys and values
// appear in insertion order; deleted keys emit the [-Path] marker and Delete
// values emit the bare "-" token.
func Serialize(r *types.Registry) []byte {
	var buf bytes.Buffer
	buf.WriteString(RegFileHeader + CRLF + CRLF)

	for _, path := range r.Paths() {
		key, _ := r.Key(path)
		if key.Deleted() {
			buf.WriteString(KeyOpenBracket + DeleteKeyPrefix)
			buf.WriteString(path)
			buf.WriteString(KeyCloseBracket + CRLF + CRLF)
			continue
		}
		buf.WriteString(KeyOpenBracket)
		buf.WriteString(path)
		buf.WriteString(KeyCloseBracket + CRLF)
		for _, name := range key.Names() {
			v, _ := key.Get(name)
			emitValue(&buf, name, v)
		}
		buf.WriteString(CRLF)
	}
	return buf.Bytes()
}

func emitValue(buf *bytes.Buffer, name types.ValueName, v types.Value) {
	if name.IsDefault() {
		buf.WriteString(DefaultValuePrefix)
	} else {
		buf.WriteString(Quote)
		buf.WriteString(escapeRegString(name.Name()))
		buf.WriteString(Quote + ValueAssignment)
	}

	switch val := v.(type) {
	case types.Sz:
		buf.WriteString(Quote)
		buf.WriteString(escapeRegString(string(val)))
		buf.WriteString(Quote)
	case types.ExpandSz:
		buf.WriteString(StrExpandSZPrefix)
		buf.WriteString(Quote)
		buf.WriteString(escapeRegString(string(val)))
		buf.WriteString(Quote)
	case types.Dword:
		buf.WriteString(DWORDPrefix)
		fmt.Fprintf(buf, DWORDHexFormat, uint32(val))
	case types.MultiSz:
		buf.WriteString(HexMultiSZPrefix)
		writeWrappedHex(buf, encodeMultiString(val), lineLength(buf))
	case types.Binary:
		buf.WriteString(HexPrefix)
		writeWrappedHex(buf, val, lineLength(buf))
	case types.Delete:
		buf.WriteString(DeleteValueToken)
	}
	buf.WriteString(CRLF)
}

// lineLength returns the length of the line currently being built.
func lineLength(buf *bytes.Buffer) int {
	b := buf.Bytes()
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return len(b) - i - 1
	}
	return len(b)
}

// writeWrappedHex emits comma-separated hex bytes, continuing long payloads
// on the next line with a backslash the way regedit does. indent is the
// column the first byte starts at.
func writeWrappedHex(buf *bytes.Buffer, data []byte, indent int) {
	col := indent
	for i, b := range data {
		part := fmt.Sprintf(HexByteFormat, b)
		if i > 0 {
			part = HexByteSeparator + part
		}
		if col+len(part) > HexWrapColumn && i > 0 {
			buf.WriteString(HexByteSeparator + Backslash + CRLF + "  ")
			col = 2
			part = fmt.Sprintf(HexByteFormat, b)
		}
		buf.WriteString(part)
		col += len(part)
	}
}

// ValueString renders a value for human-facing listings (CLI, diagnostics).
func ValueString(v types.Value) string {
	switch val := v.(type) {
	case types.Sz:
		return fmt.Sprintf("%s %q", types.REG_SZ, string(val))
	case types.ExpandSz:
		return fmt.Sprintf("%s %q", types.REG_EXPAND_SZ, string(val))
	case types.Dword:
		return fmt.Sprintf("%s 0x%08x (%d)", types.REG_DWORD, uint32(val), uint32(val))
	case types.Binary:
		return fmt.Sprintf("%s %s", types.REG_BINARY, formatHex(val))
	case types.MultiSz:
		return fmt.Sprintf("%s [%s]", types.REG_MULTI_SZ, strings.Join(val, ", "))
	case types.Delete:
		return "<deleted>"
	default:
		return "<unknown>"
	}
}
