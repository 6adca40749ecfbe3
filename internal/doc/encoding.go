package doc

import (
	"golang.org/x/text/encoding/unicode"
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

func detectUnicodeEncoding(content []byte) unicodeEncoding {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(content) >= 2 {
		switch {
		case content[0] == 0xFF && content[1] == 0xFE:
			return encodingUTF16LE
		case content[0] == 0xFE && content[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

// normalizeContent converts known BOM-encoded content into plain
// UTF-8. Content without a byte order mark passes through untouched,
// byte for byte.
func normalizeContent(content []byte) ([]byte, error) {
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		return content[3:], nil
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return content, nil
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) ([]byte, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	return decoder.Bytes(content)
}
