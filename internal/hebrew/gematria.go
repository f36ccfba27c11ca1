// Package hebrew provides gematria numeral conversion and the
// filename-to-heading derivation used for converted documents.
package hebrew

import (
	"strings"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
)

// Letter tables per place value. Index 0 is unused.
var (
	gematriaOnes     = []string{"", "א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט"}
	gematriaTens     = []string{"", "י", "כ", "ל", "מ", "נ", "ס", "ע", "פ", "צ"}
	gematriaHundreds = []string{"", "ק", "ר", "ש", "ת"}
)

// MaxGematria is the largest numeral the converter supports. Four
// hundred (ת) is the highest single hundreds letter, so 499 is the
// practical ceiling for this domain.
const MaxGematria = 499

// Gematria converts n to its Hebrew numeral string.
// 15 and 16 use the reserved combinations טו and טז rather than the
// literal decompositions, which would spell a sacred name.
func Gematria(n int) (string, error) {
	if n < 1 || n > MaxGematria {
		return "", domain.ErrRangeExceeded
	}

	var b strings.Builder
	if n >= 100 {
		b.WriteString(gematriaHundreds[n/100])
		n %= 100
	}

	// The overrides apply to the remainder, so 115 is קטו.
	switch n {
	case 15:
		b.WriteString("טו")
		return b.String(), nil
	case 16:
		b.WriteString("טז")
		return b.String(), nil
	}

	if n >= 10 {
		b.WriteString(gematriaTens[n/10])
		n %= 10
	}
	if n > 0 {
		b.WriteString(gematriaOnes[n])
	}
	return b.String(), nil
}
