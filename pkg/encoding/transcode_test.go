package encoding

import (
	"bytes"
	"testing"

	"github.com/sbogaert/bomsweep/pkg/models"
)

func TestToUTF8FromUTF16LE(t *testing.T) {
	// "hi" as UTF-16LE with BOM
	content := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}

	got, err := ToUTF8(content, models.EncodingUTF16LE, false)
	if err != nil {
		t.Fatalf("ToUTF8() = %v", err)
	}
	if !bytes.Equal(got, []byte("hi")) {
		t.Errorf("output = % X, want %q", got, "hi")
	}
}

func TestToUTF8FromUTF16BE(t *testing.T) {
	content := []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}

	got, err := ToUTF8(content, models.EncodingUTF16BE, false)
	if err != nil {
		t.Fatalf("ToUTF8() = %v", err)
	}
	if !bytes.Equal(got, []byte("hi")) {
		t.Errorf("output = % X, want %q", got, "hi")
	}
}

func TestToUTF8FromUTF32(t *testing.T) {
	// "hi" as UTF-32BE with BOM
	content := []byte{
		0x00, 0x00, 0xFE, 0xFF,
		0x00, 0x00, 0x00, 'h',
		0x00, 0x00, 0x00, 'i',
	}

	got, err := ToUTF8(content, models.EncodingUTF32, false)
	if err != nil {
		t.Fatalf("ToUTF8() = %v", err)
	}
	if !bytes.Equal(got, []byte("hi")) {
		t.Errorf("output = % X, want %q", got, "hi")
	}
}

func TestToUTF8NonASCII(t *testing.T) {
	// "é" (U+00E9) as UTF-16LE with BOM
	content := []byte{0xFF, 0xFE, 0xE9, 0x00}

	got, err := ToUTF8(content, models.EncodingUTF16LE, false)
	if err != nil {
		t.Fatalf("ToUTF8() = %v", err)
	}
	if string(got) != "é" {
		t.Errorf("output = % X, want é (C3 A9)", got)
	}
}

func TestToUTF8StripsBOM(t *testing.T) {
	content := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}

	got, err := ToUTF8(content, models.EncodingUTF8, false)
	if err != nil {
		t.Fatalf("ToUTF8() = %v", err)
	}
	if !bytes.Equal(got, []byte("hi")) {
		t.Errorf("output = % X, want BOM stripped %q", got, "hi")
	}
}

func TestToUTF8KeepsBOM(t *testing.T) {
	t.Run("utf-8 source unchanged", func(t *testing.T) {
		content := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
		got, err := ToUTF8(content, models.EncodingUTF8, true)
		if err != nil {
			t.Fatalf("ToUTF8() = %v", err)
		}
		if !bytes.Equal(got, content) {
			t.Errorf("output = % X, want input unchanged", got)
		}
	})

	t.Run("utf-16le source gains utf-8 mark", func(t *testing.T) {
		content := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
		got, err := ToUTF8(content, models.EncodingUTF16LE, true)
		if err != nil {
			t.Fatalf("ToUTF8() = %v", err)
		}
		want := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
		if !bytes.Equal(got, want) {
			t.Errorf("output = % X, want % X", got, want)
		}
	})
}

func TestToUTF8UnmarkedPassThrough(t *testing.T) {
	content := []byte("already utf-8: héllo")

	got, err := ToUTF8(content, models.EncodingUnmarked, false)
	if err != nil {
		t.Fatalf("ToUTF8() = %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("valid utf-8 content was altered: % X", got)
	}
}

// Content that never carried a byte-order mark must not gain one, even when
// the keep-BOM preference is set; the preference only retains existing marks.
func TestToUTF8UnmarkedNeverGainsBOM(t *testing.T) {
	t.Run("valid utf-8", func(t *testing.T) {
		content := []byte("plain text")
		got, err := ToUTF8(content, models.EncodingUnmarked, true)
		if err != nil {
			t.Fatalf("ToUTF8() = %v", err)
		}
		if !bytes.Equal(got, content) {
			t.Errorf("output = % X, want input unchanged", got)
		}
	})

	t.Run("windows-1252", func(t *testing.T) {
		content := []byte{'c', 'a', 'f', 0xE9}
		got, err := ToUTF8(content, models.EncodingUnmarked, true)
		if err != nil {
			t.Fatalf("ToUTF8() = %v", err)
		}
		if bytes.HasPrefix(got, utf8BOM) {
			t.Errorf("output = % X, unmarked source gained a byte-order mark", got)
		}
		if string(got) != "café" {
			t.Errorf("output = % X, want café", got)
		}
	})
}

func TestToUTF8UnmarkedWindows1252(t *testing.T) {
	// 0xE9 is é in Windows-1252 and invalid as standalone UTF-8
	content := []byte{'c', 'a', 'f', 0xE9}

	got, err := ToUTF8(content, models.EncodingUnmarked, false)
	if err != nil {
		t.Fatalf("ToUTF8() = %v", err)
	}
	if string(got) != "café" {
		t.Errorf("output = % X, want café", got)
	}
}

func TestToUTF8UTF7Unsupported(t *testing.T) {
	content := []byte{0x2B, 0x2F, 0x76, 0x38, '-'}

	if _, err := ToUTF8(content, models.EncodingUTF7, false); err == nil {
		t.Error("ToUTF8() on utf-7 = nil error, want unsupported error")
	}
}

func TestToUTF8InvalidUTF8AfterBOM(t *testing.T) {
	content := []byte{0xEF, 0xBB, 0xBF, 0xFF, 0xFF}

	if _, err := ToUTF8(content, models.EncodingUTF8, false); err == nil {
		t.Error("ToUTF8() on invalid utf-8 body = nil error, want error")
	}
}

func TestToUTF8MissingExpectedBOM(t *testing.T) {
	// Tagged UTF-16LE but no mark present
	content := []byte{'h', 0x00, 'i', 0x00}

	if _, err := ToUTF8(content, models.EncodingUTF16LE, false); err == nil {
		t.Error("ToUTF8() without expected mark = nil error, want error")
	}
}

// Converting already-converted output again must be byte-identical.
func TestToUTF8Idempotence(t *testing.T) {
	original := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}

	for _, keepBOM := range []bool{false, true} {
		first, err := ToUTF8(original, models.EncodingUTF16LE, keepBOM)
		if err != nil {
			t.Fatalf("first pass (keepBOM=%v) = %v", keepBOM, err)
		}

		// Second pass sees whatever the sniffer reports for the new bytes
		enc := DetectBOM(first)
		second, err := ToUTF8(first, enc, keepBOM)
		if err != nil {
			t.Fatalf("second pass (keepBOM=%v) = %v", keepBOM, err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("keepBOM=%v: second pass altered bytes: % X -> % X", keepBOM, first, second)
		}
	}
}
