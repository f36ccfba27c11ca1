package dostext

import (
	"regexp"
	"strings"

	"github.com/otzar-labs/ketav-cli/internal/detect"
)

// The cleaner strips the control codes a DOS-era Hebrew word processor
// left behind while keeping the scholarly footnote markers intact.
// Markers are >digits< tokens; they superficially resemble the
// coordinate codes that ARE garbage, so they are extracted into
// placeholders before any stripping and substituted back afterwards.
var (
	// markerRe matches the protected footnote markers.
	markerRe = regexp.MustCompile(`>\d+<`)

	// refTokenRe matches reference-system tokens: fixed prefix, one or
	// two capital letters, a numeric code, optional asterisk.
	refTokenRe = regexp.MustCompile(`(?:BNARF|OISAR|BSNF)\s+[A-Z]{1,2}\s+\d+(?:\.\d+)?\*?`)

	// mixedBracketRe matches bracketed runs that mix digits with
	// Hebrew letters, such as >3ל<. These are corrupted marker
	// syntax, not markers; genuine >digits< tokens are already
	// protected when this runs, so the whole run is garbage.
	mixedBracketRe = regexp.MustCompile(`>[\d\p{Hebrew}]*\p{Hebrew}[\d\p{Hebrew}]*<`)

	// coordRe matches coordinate-style angle-bracket decimal codes
	// such as >6.31< or a dangling 550.0<.
	coordRe = regexp.MustCompile(`>?\d+\.\d+<?`)

	// numberRe matches standalone leftover numbers.
	numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// orphanBracketRe matches brackets orphaned by the removals above.
	orphanBracketRe = regexp.MustCompile(`[<>]`)

	// spaceRe collapses whitespace runs.
	spaceRe = regexp.MustCompile(`\s+`)
)

// placeholder builds a collision-free token for marker i. NUL bytes
// cannot survive the XML sanitisation pass that runs before cleaning,
// so they cannot occur in input text; the index is written in letters
// so the number-stripping pass cannot eat it.
func placeholder(i int) string {
	var b strings.Builder
	b.WriteByte(0)
	for i >= 0 {
		b.WriteByte(byte('a' + i%26))
		i = i/26 - 1
	}
	b.WriteByte(0)
	return b.String()
}

// Clean normalises decoded DOS text. Line structure is preserved:
// blank lines mark paragraph breaks and are kept, garbage-only lines
// are dropped, and every >digits< marker survives verbatim in order.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		cleaned, keep := cleanLine(line)
		if keep {
			out = append(out, cleaned)
		}
	}
	return strings.Join(out, "\n")
}

// cleanLine runs the protect/strip/restore/finalise passes on one
// physical line. keep=false drops the line entirely.
func cleanLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)

	// Deliberately blank lines preserve paragraph spacing.
	if trimmed == "" {
		return "", true
	}

	// Legacy formatting directives occupy whole lines starting with a
	// period.
	if strings.HasPrefix(trimmed, ".") {
		return "", false
	}

	// Protect: pull the footnote markers out before stripping.
	markers := make([]string, 0, 4)
	protected := markerRe.ReplaceAllStringFunc(trimmed, func(m string) string {
		markers = append(markers, m)
		return placeholder(len(markers) - 1)
	})

	// Strip: mixed bracketed runs go first, before the number and
	// bracket passes dismantle them; the remaining classes are
	// disjoint.
	stripped := mixedBracketRe.ReplaceAllString(protected, " ")
	stripped = refTokenRe.ReplaceAllString(stripped, " ")
	stripped = coordRe.ReplaceAllString(stripped, " ")
	stripped = numberRe.ReplaceAllString(stripped, " ")
	stripped = orphanBracketRe.ReplaceAllString(stripped, " ")

	// Restore: markers return unchanged, in position.
	for i, m := range markers {
		stripped = strings.Replace(stripped, placeholder(i), m, 1)
	}

	// Finalise: collapse whitespace; keep the line only if something
	// meaningful survived.
	final := strings.TrimSpace(spaceRe.ReplaceAllString(stripped, " "))
	if final == "" {
		return "", false
	}
	if !containsHebrew(final) && !markerRe.MatchString(final) {
		return "", false
	}
	return final, true
}

func containsHebrew(s string) bool {
	for _, r := range s {
		if detect.IsHebrew(r) {
			return true
		}
	}
	return false
}

// SanitizeXML removes runes that are not valid in XML 1.0 documents.
// DOS files carry control bytes that would otherwise poison any
// downstream XML-based output.
func SanitizeXML(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
			return r
		case r >= 0x20 && r <= 0xD7FF:
			return r
		case r >= 0xE000 && r <= 0xFFFD:
			return r
		default:
			return -1
		}
	}, text)
}

// Markers returns the footnote markers of text in order. Exposed for
// verification and tests.
func Markers(text string) []string {
	return markerRe.FindAllString(text, -1)
}
