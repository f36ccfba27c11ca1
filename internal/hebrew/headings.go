package hebrew

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Filename token patterns, checked in priority order. Leading zeros in
// the numeric part are tolerated (PEREK01 and PEREK1 are the same).
var (
	mekorosRe  = regexp.MustCompile(`(?i)^me?koros0*(\d*)$`)
	hakdomoRe  = regexp.MustCompile(`(?i)^hakdomo0*(\d*)$`)
	chelekRe   = regexp.MustCompile(`(?i)^(?:chelek|חלק)0*(\d+)([a-z])?$`)
	perekRe    = regexp.MustCompile(`(?i)^perek0*(\d+)([a-z])?$`)
	trailNumRe = regexp.MustCompile(`^(.*?)(\d+)$`)
)

// ExtractHeadings derives the heading 3/4 pair from a source filename.
// It never fails: unrecognised names yield the display form of the
// filename as heading 3 with an empty heading 4.
//
//	PEREK11  -> ("פרק יא", "")
//	PEREK1A  -> ("פרק א", "חלק א")
//	CHELEK2  -> ("חלק ב", "")
//	MEKOROS  -> ("מקורות", "")
//	HAKDOMO3 -> ("הקדמה ג", "")
func ExtractHeadings(filename string) (h3, h4 string) {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	key := strings.ToLower(strings.TrimSpace(stem))

	if m := mekorosRe.FindStringSubmatch(key); m != nil {
		return keywordHeading("מקורות", m[1]), ""
	}
	if m := hakdomoRe.FindStringSubmatch(key); m != nil {
		return keywordHeading("הקדמה", m[1]), ""
	}
	if m := chelekRe.FindStringSubmatch(key); m != nil {
		return numberedHeading("חלק", m[1], m[2])
	}
	if m := perekRe.FindStringSubmatch(key); m != nil {
		return numberedHeading("פרק", m[1], m[2])
	}

	// Fallback: the filename itself. An extensionless name keeps its
	// full form, since the stem would be indistinguishable from it.
	if ext == "" {
		h3 = base
	} else {
		h3 = stem
	}
	if m := trailNumRe.FindStringSubmatch(key); m != nil {
		if g, err := gematriaFromDigits(m[2]); err == nil {
			return m[1], "חלק " + g
		}
	}
	return h3, ""
}

// keywordHeading renders an exact-keyword heading with an optional
// trailing numeral.
func keywordHeading(label, digits string) string {
	if digits == "" {
		return label
	}
	g, err := gematriaFromDigits(digits)
	if err != nil {
		return label
	}
	return label + " " + g
}

// numberedHeading renders "<label> <numeral>" as heading 3 and maps a
// trailing sub-part letter (a=1, b=2, …) to a "חלק <numeral>" heading 4.
func numberedHeading(label, digits, letter string) (h3, h4 string) {
	g, err := gematriaFromDigits(digits)
	if err != nil {
		return label, ""
	}
	h3 = label + " " + g
	if letter != "" {
		idx := int(letter[0]-'a') + 1
		if sub, err := Gematria(idx); err == nil {
			h4 = "חלק " + sub
		}
	}
	return h3, h4
}

func gematriaFromDigits(digits string) (string, error) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return "", err
	}
	return Gematria(n)
}
