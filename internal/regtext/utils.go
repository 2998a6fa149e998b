package regtext

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// unescapeRegString unescapes a string from .reg format.
// .reg files escape backslashes as \\ and quotes as \".
func unescapeRegString(s string) string {
	// Fast path: no backslashes means no escapes.
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	s = strings.ReplaceAll(s, EscapedBackslash, Backslash)
	s = strings.ReplaceAll(s, EscapedQuote, Quote)
	return s
}

// escapeRegString escapes a string for .reg output.
func escapeRegString(s string) string {
	s = strings.ReplaceAll(s, Backslash, EscapedBackslash)
	s = strings.ReplaceAll(s, Quote, EscapedQuote)
	return s
}

// findClosingQuote finds the position of the closing quote in a line,
// accounting for escaped quotes (preceded by an odd number of backslashes).
// Returns -1 if no valid closing quote is found. The search starts at
// position 1, assuming the opening quote is at position 0.
func findClosingQuote(line string) int {
	for i := 1; i < len(line); i++ {
		if line[i] == '"' {
			numBackslashes := 0
			for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
				numBackslashes++
			}
			if numBackslashes%2 == 1 {
				continue // escaped quote, keep looking
			}
			return i
		}
	}
	return -1
}

// parseHexBytes parses hex data from .reg format (hex:01,02,03,...).
// It handles:
// - Removing the prefix (hex:, hex(7):, etc.) via the colon position
// - Line continuation characters and whitespace
// - Comma-separated hex bytes
// - Single-digit bytes (auto-pads with 0).
func parseHexBytes(hexStr string) ([]byte, error) {
	colonPos := strings.Index(hexStr, ":")
	if colonPos == -1 {
		return nil, errors.New("invalid hex data format: missing colon")
	}
	hexStr = hexStr[colonPos+1:]

	hexStr = removeHexWhitespace(hexStr)

	parts := strings.Split(hexStr, HexByteSeparator)
	buf := make([]byte, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if len(p) == 1 {
			p = "0" + p
		}
		b, err := hex.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q: %w", p, err)
		}
		buf = append(buf, b...)
	}

	return buf, nil
}

// removeHexWhitespace removes whitespace and line continuation characters
// from hex data that may span multiple lines.
func removeHexWhitespace(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, ch := range s {
		if ch != ' ' && ch != '\t' && ch != '\n' && ch != '\r' && ch != '\\' {
			result.WriteRune(ch)
		}
	}
	return result.String()
}

// formatHex renders data as comma-separated two-digit hex bytes.
func formatHex(data []byte) string {
	if len(data) == 0 {
		return "00"
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf(HexByteFormat, b)
	}
	return strings.Join(parts, HexByteSeparator)
}

// hexTypeNumber extracts the type digit from a hex(N): prefix.
// Returns the digit as a string ("2", "7", ...) and whether it was found.
func hexTypeNumber(payload string) (string, bool) {
	openParen := strings.Index(payload, "(")
	closeParen := strings.Index(payload, ")")
	if openParen >= 0 && closeParen > openParen {
		return payload[openParen+1 : closeParen], true
	}
	return "", false
}
