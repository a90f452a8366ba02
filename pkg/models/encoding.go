package models

// Encoding identifies a text encoding family detected from a byte-order mark
type Encoding string

const (
	// EncodingUTF7 is UTF-7 (BOM 2B 2F 76)
	EncodingUTF7 Encoding = "utf-7"
	// EncodingUTF8 is UTF-8 with a BOM (EF BB BF)
	EncodingUTF8 Encoding = "utf-8"
	// EncodingUTF16LE is little-endian UTF-16 (BOM FF FE)
	EncodingUTF16LE Encoding = "utf-16le"
	// EncodingUTF16BE is big-endian UTF-16 (BOM FE FF)
	EncodingUTF16BE Encoding = "utf-16be"
	// EncodingUTF32 is big-endian UTF-32 (BOM 00 00 FE FF)
	EncodingUTF32 Encoding = "utf-32"
	// EncodingUnmarked means no BOM was found; content is treated as an
	// ASCII-compatible single-byte scheme
	EncodingUnmarked Encoding = "unmarked"
)

// String returns the encoding name
func (e Encoding) String() string {
	return string(e)
}

// HasBOM reports whether the encoding carries a byte-order mark
func (e Encoding) HasBOM() bool {
	return e != EncodingUnmarked
}

// BOMLength returns the length in bytes of the encoding's byte-order mark
func (e Encoding) BOMLength() int {
	switch e {
	case EncodingUTF7:
		return 3
	case EncodingUTF8:
		return 3
	case EncodingUTF16LE, EncodingUTF16BE:
		return 2
	case EncodingUTF32:
		return 4
	default:
		return 0
	}
}
