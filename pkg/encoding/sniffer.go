// Package encoding detects text encodings from byte-order marks and
// transcodes file content to UTF-8.
package encoding

import (
	"fmt"
	"io"
	"os"

	"github.com/sbogaert/bomsweep/pkg/models"
)

// bomPrefixLen is the number of bytes read to classify a file.
// The longest recognized mark (UTF-32) is 4 bytes.
const bomPrefixLen = 4

// DetectBOM classifies a byte prefix into an encoding tag. Prefixes shorter
// than 4 bytes are padded with zeros. The checks run in a fixed precedence
// order; the 4-byte UTF-32 mark is tested before the 2-byte UTF-16 marks.
func DetectBOM(prefix []byte) models.Encoding {
	var b [bomPrefixLen]byte
	copy(b[:], prefix)

	switch {
	case b[0] == 0x2B && b[1] == 0x2F && b[2] == 0x76:
		return models.EncodingUTF7
	case b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF:
		return models.EncodingUTF8
	case b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xFE && b[3] == 0xFF:
		return models.EncodingUTF32
	case b[0] == 0xFF && b[1] == 0xFE:
		return models.EncodingUTF16LE
	case b[0] == 0xFE && b[1] == 0xFF:
		return models.EncodingUTF16BE
	}
	return models.EncodingUnmarked
}

// SniffFile reads the first bytes of a file and classifies its encoding.
// The file handle is released before returning so the caller can reopen the
// file for a full read without contention. Empty and short files are not an
// error; they classify as unmarked.
func SniffFile(path string) (models.Encoding, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.EncodingUnmarked, fmt.Errorf("failed to open file for sniffing: %w", err)
	}
	defer f.Close()

	prefix := make([]byte, bomPrefixLen)
	n, err := io.ReadFull(f, prefix)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return models.EncodingUnmarked, fmt.Errorf("failed to read file prefix: %w", err)
	}

	return DetectBOM(prefix[:n]), nil
}
