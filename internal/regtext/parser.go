package regtext

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/winetools/regkit/pkg/types"
)

// ParseOptions controls .reg input handling.
type ParseOptions struct {
	// InputEncoding names the byte encoding of the input when no BOM is
	// present: "UTF-8" (default), "UTF-16LE", or "WINDOWS-1252".
	InputEncoding string
}

// Parse converts regedit5 .reg text into a registry document. Malformed
// input fails with an ErrKindFormat error. Value tombstones ("name"=-) are
// resolved by dropping the slot; key tombstones ([-Path]) are kept as
// deleted keys so a re-save preserves the marker.
func Parse(data []byte, opts ParseOptions) (*types.Registry, error) {
	text, err := decodeInput(data, opts.InputEncoding)
	if err != nil {
		return nil, types.FormatError("decode .reg input", err)
	}

	reg := types.NewRegistry(types.Regedit5)
	scanner := bufio.NewScanner(strings.NewReader(string(text)))
	scanner.Buffer(make([]byte, 0, ScannerInitialBufferSize), ScannerMaxLineSize)

	seenHeader := false
	var current *types.Key
	var pending string // continuation accumulator for multi-line hex payloads

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), CR)
		trim := strings.TrimSpace(line)

		if pending != "" {
			if strings.HasSuffix(trim, Backslash) {
				pending += strings.TrimSpace(strings.TrimSuffix(trim, Backslash))
				continue
			}
			pending += trim
			if err := parseValueLine(current, pending); err != nil {
				return nil, err
			}
			pending = ""
			continue
		}

		if trim == "" || strings.HasPrefix(trim, CommentPrefix) {
			continue
		}
		if !seenHeader {
			if trim != RegFileHeader {
				return nil, types.FormatError(fmt.Sprintf("regtext: missing or unsupported header %q", trim), nil)
			}
			seenHeader = true
			continue
		}
		if strings.HasPrefix(trim, KeyOpenBracket) {
			if !strings.HasSuffix(trim, KeyCloseBracket) {
				return nil, types.FormatError(fmt.Sprintf("regtext: malformed section %q", trim), nil)
			}
			section := strings.TrimSuffix(strings.TrimPrefix(trim, KeyOpenBracket), KeyCloseBracket)
			if strings.HasPrefix(section, DeleteKeyPrefix) {
				path := strings.TrimSpace(section[1:])
				reg.PutKey(path, types.DeletedKey())
				current = nil
				continue
			}
			current = reg.EnsureKey(section)
			continue
		}
		if current == nil {
			return nil, types.FormatError(fmt.Sprintf("regtext: value without section: %q", trim), nil)
		}
		if strings.HasSuffix(trim, Backslash) {
			pending = strings.TrimSpace(strings.TrimSuffix(trim, Backslash))
			continue
		}
		if err := parseValueLine(current, trim); err != nil {
			return nil, err
		}
	}
	if pending != "" {
		if err := parseValueLine(current, pending); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, types.FormatError("regtext: scan .reg input", err)
	}
	if !seenHeader {
		return nil, types.FormatError("regtext: missing header", nil)
	}
	return reg, nil
}

func parseValueLine(key *types.Key, line string) error {
	if strings.HasPrefix(line, DefaultValuePrefix) {
		return setParsedValue(key, types.DefaultName(), line[len(DefaultValuePrefix):])
	}
	if !strings.HasPrefix(line, Quote) {
		return types.FormatError(fmt.Sprintf("regtext: malformed value line %q", line), nil)
	}
	end := findClosingQuote(line)
	if end < 0 {
		return types.FormatError(fmt.Sprintf("regtext: unterminated value name in %q", line), nil)
	}
	name := unescapeRegString(line[1:end])
	rest := line[end+1:]
	if !strings.HasPrefix(rest, ValueAssignment) {
		return types.FormatError(fmt.Sprintf("regtext: missing '=' in %q", line), nil)
	}
	return setParsedValue(key, types.NamedValue(name), rest[1:])
}

func setParsedValue(key *types.Key, name types.ValueName, payload string) error {
	v, tombstone, err := parsePayload(payload)
	if err != nil {
		return err
	}
	if tombstone {
		// A freshly parsed document has nothing to delete.
		return nil
	}
	key.Set(name, v)
	return nil
}

func parsePayload(payload string) (types.Value, bool, error) {
	payload = strings.TrimSpace(payload)
	if payload == DeleteValueToken {
		return nil, true, nil
	}
	if strings.HasPrefix(payload, Quote) {
		s, err := parseQuoted(payload)
		if err != nil {
			return nil, false, err
		}
		return types.Sz(s), false, nil
	}
	if strings.HasPrefix(payload, StrExpandSZPrefix) {
		s, err := parseQuoted(payload[len(StrExpandSZPrefix):])
		if err != nil {
			return nil, false, err
		}
		return types.ExpandSz(s), false, nil
	}
	if strings.HasPrefix(payload, DWORDPrefix) {
		hexPart := payload[len(DWORDPrefix):]
		if len(hexPart) != DWORDHexLength {
			return nil, false, types.FormatError(fmt.Sprintf("regtext: invalid dword %q", payload), nil)
		}
		n, err := strconv.ParseUint(hexPart, 16, 32)
		if err != nil {
			return nil, false, types.FormatError(fmt.Sprintf("regtext: invalid dword %q", payload), err)
		}
		return types.Dword(uint32(n)), false, nil
	}
	if strings.HasPrefix(payload, "hex") {
		return parseHexPayload(payload)
	}
	return nil, false, types.FormatError(fmt.Sprintf("regtext: unsupported value %q", payload), nil)
}

func parseQuoted(payload string) (string, error) {
	if len(payload) < 2 || !strings.HasPrefix(payload, Quote) || !strings.HasSuffix(payload, Quote) {
		return "", types.FormatError(fmt.Sprintf("regtext: unterminated string %q", payload), nil)
	}
	return unescapeRegString(payload[1 : len(payload)-1]), nil
}

func parseHexPayload(payload string) (types.Value, bool, error) {
	data, err := parseHexBytes(payload)
	if err != nil {
		return nil, false, types.FormatError("regtext: invalid hex payload", err)
	}
	if typeNum, found := hexTypeNumber(payload[:strings.Index(payload, ":")+1]); found {
		switch typeNum {
		case "2":
			s := decodeMultiString(data)
			if len(s) == 0 {
				return types.ExpandSz(""), false, nil
			}
			return types.ExpandSz(s[0]), false, nil
		case "7":
			return types.MultiSz(decodeMultiString(data)), false, nil
		}
	}
	return types.Binary(data), false, nil
}
