package regtext

import (
	"encoding/binary"
	"errors"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

var errUnsupportedEncoding = errors.New("regtext: unsupported encoding")

// decodeInput converts raw .reg bytes to UTF-8. BOMs win over the declared
// encoding; with no BOM the declared encoding applies (UTF-8 when empty).
// Wine writes UTF-8, but files exported by other tooling are frequently
// UTF-16LE or Windows-1252.
func decodeInput(data []byte, enc string) ([]byte, error) {
	if len(data) >= len(UTF16LEBOM) && data[0] == UTF16LEBOM[0] && data[1] == UTF16LEBOM[1] {
		return utf16LEToBytes(data[len(UTF16LEBOM):]), nil
	}
	if len(data) >= len(UTF8BOM) && data[0] == UTF8BOM[0] && data[1] == UTF8BOM[1] && data[2] == UTF8BOM[2] {
		return data[len(UTF8BOM):], nil
	}
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return data, nil
	case EncodingUTF16LE:
		return utf16LEToBytes(data), nil
	case EncodingWindows1252:
		return charmap.Windows1252.NewDecoder().Bytes(data)
	default:
		return nil, errUnsupportedEncoding
	}
}

// utf16LEToBytes converts UTF-16LE data to UTF-8 bytes.
func utf16LEToBytes(data []byte) []byte {
	if len(data)%UTF16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return nil
	}
	words := make([]uint16, len(data)/UTF16CodeUnitSize)
	for i := 0; i < len(words); i++ {
		words[i] = binary.LittleEndian.Uint16(data[i*UTF16CodeUnitSize:])
	}
	return []byte(string(utf16.Decode(words)))
}

// encodeUTF16LEZeroTerminated encodes a string to UTF-16LE with a trailing
// NUL code unit, the element encoding inside hex(7) payloads.
func encodeUTF16LEZeroTerminated(s string) []byte {
	words := utf16.Encode([]rune(s))
	buf := make([]byte, (len(words)+1)*UTF16CodeUnitSize)
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[i*UTF16CodeUnitSize:], w)
	}
	return buf
}

// encodeMultiString encodes a REG_MULTI_SZ list as UTF-16LE with a final
// double-NUL terminator.
func encodeMultiString(values []string) []byte {
	var buf []byte
	for _, v := range values {
		buf = append(buf, encodeUTF16LEZeroTerminated(v)...)
	}
	return append(buf, DoubleNullTerminator...)
}

// decodeMultiString splits a UTF-16LE double-NUL-terminated payload into its
// component strings. Tolerates a missing final terminator.
func decodeMultiString(data []byte) []string {
	if len(data)%UTF16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	var out []string
	var current []uint16
	for i := 0; i+UTF16CodeUnitSize <= len(data); i += UTF16CodeUnitSize {
		w := binary.LittleEndian.Uint16(data[i:])
		if w == 0 {
			if len(current) == 0 {
				break // double NUL terminator
			}
			out = append(out, string(utf16.Decode(current)))
			current = current[:0]
			continue
		}
		current = append(current, w)
	}
	if len(current) > 0 {
		out = append(out, string(utf16.Decode(current)))
	}
	return out
}
