package encoding

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/sbogaert/bomsweep/pkg/models"
)

// utf8BOM is the UTF-8 byte-order mark
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToUTF8 transcodes content from the given source encoding into UTF-8.
// When keepBOM is set a source mark is carried over as the UTF-8 mark,
// otherwise it is stripped. Unmarked content that is already valid UTF-8
// passes through byte-for-byte; other unmarked content is decoded as
// Windows-1252. Content that carried no mark never gains one.
func ToUTF8(content []byte, enc models.Encoding, keepBOM bool) ([]byte, error) {
	switch enc {
	case models.EncodingUTF7:
		return nil, fmt.Errorf("utf-7 content cannot be transcoded: no decoder available")

	case models.EncodingUTF8:
		body := bytes.TrimPrefix(content, utf8BOM)
		if !utf8.Valid(body) {
			return nil, fmt.Errorf("content is not valid utf-8 despite utf-8 byte-order mark")
		}
		if keepBOM {
			return content, nil
		}
		return body, nil

	case models.EncodingUTF16LE:
		return decode(content, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), keepBOM)

	case models.EncodingUTF16BE:
		return decode(content, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), keepBOM)

	case models.EncodingUTF32:
		return decode(content, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM), keepBOM)

	case models.EncodingUnmarked:
		if utf8.Valid(content) {
			return content, nil
		}
		return decode(content, charmap.Windows1252, false)

	default:
		return nil, fmt.Errorf("unknown source encoding %q", enc)
	}
}

// decode runs content through the decoder of an x/text encoding and
// optionally prepends the UTF-8 byte-order mark
func decode(content []byte, e textencoding.Encoding, keepBOM bool) ([]byte, error) {
	reader := transform.NewReader(bytes.NewReader(content), e.NewDecoder())
	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	if keepBOM {
		withBOM := make([]byte, 0, len(utf8BOM)+len(out))
		withBOM = append(withBOM, utf8BOM...)
		withBOM = append(withBOM, out...)
		return withBOM, nil
	}
	return out, nil
}
