// Package detect classifies candidate files into source formats.
// Extension-bearing formats are recognised by extension alone; legacy
// DOS text files have no extension and are recognised by a content
// probe that decodes a fixed prefix under CP862 and measures how much
// of it is Hebrew.
package detect

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
)

// Probe holds the tunables of the DOS text content probe. The default
// values were tuned against one corpus; they are deliberately
// configurable rather than baked in.
type Probe struct {
	// PrefixBytes is how much of the file the probe reads.
	PrefixBytes int

	// HebrewRatio is the minimum share of Hebrew runes among printable
	// non-space runes for a strict CP862 decode to count as a hit.
	HebrewRatio float64

	// MinHebrewRunes is the absolute fallback threshold used when
	// strict decoding fails and the prefix is decoded leniently.
	// It compensates for short files where a ratio is unreliable.
	MinHebrewRunes int
}

// DefaultProbe returns the probe tuning used when no configuration
// overrides it.
func DefaultProbe() Probe {
	return Probe{
		PrefixBytes:    2048,
		HebrewRatio:    0.05,
		MinHebrewRunes: 10,
	}
}

// Detect classifies path into one of the source formats.
func Detect(path string, probe Probe) domain.Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".docx":
		return domain.FormatDocx
	case ".doc":
		return domain.FormatDoc
	case ".idml":
		return domain.FormatIDML
	}
	if ext != "" {
		return domain.FormatUnknown
	}
	if IsDOSText(path, probe) {
		return domain.FormatDOSText
	}
	return domain.FormatUnknown
}

// IsDOSText reports whether an extensionless file looks like a
// CP862-encoded Hebrew text file.
func IsDOSText(path string, probe Probe) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, probe.PrefixBytes)
	n, err := f.Read(buf)
	if n == 0 || (err != nil && n <= 0) {
		return false
	}
	buf = buf[:n]

	if text, ok := decodeStrict(buf); ok {
		hebrew, printable := countRunes(text)
		return printable > 0 && float64(hebrew) > float64(printable)*probe.HebrewRatio
	}

	// Strict decode failed; retry with invalid-byte substitution and
	// fall back to an absolute count.
	text := DecodeLenient(buf)
	hebrew, _ := countRunes(text)
	return hebrew >= probe.MinHebrewRunes
}

// decodeStrict decodes CP862 bytes, reporting failure on any byte the
// codepage does not map.
func decodeStrict(b []byte) (string, bool) {
	out, err := charmap.CodePage862.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	// The decoder substitutes unmappable bytes with U+FFFD rather than
	// failing; treat any replacement rune as a strict failure.
	if strings.ContainsRune(string(out), unicode.ReplacementChar) {
		return "", false
	}
	return string(out), true
}

// DecodeLenient decodes CP862 bytes, dropping unmappable bytes.
func DecodeLenient(b []byte) string {
	out, err := charmap.CodePage862.NewDecoder().Bytes(b)
	if err != nil {
		// The charmap decoder does not error in practice; keep the
		// decodable prefix if it somehow does.
		return string(out)
	}
	return strings.Map(func(r rune) rune {
		if r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, string(out))
}

// Decode decodes a whole CP862 file body. It reports whether strict
// decoding succeeded; on strict failure the lenient result is
// returned along with ok=false so callers can decide.
func Decode(b []byte) (text string, strict bool) {
	if s, ok := decodeStrict(b); ok {
		return s, true
	}
	return DecodeLenient(b), false
}

// IsHebrew reports whether r is in the Hebrew Unicode block.
func IsHebrew(r rune) bool {
	return r >= 0x0590 && r <= 0x05FF
}

// countRunes counts Hebrew runes and printable non-space runes.
func countRunes(s string) (hebrew, printable int) {
	for _, r := range s {
		if IsHebrew(r) {
			hebrew++
		}
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			printable++
		}
	}
	return hebrew, printable
}
