package rollparser

import "regexp"

// lineClass tags each OCR line with the single field it feeds. The
// checks in classifyLine are ordered and mutually exclusive; the first
// match wins.
type lineClass int

const (
	lineUnclassified lineClass = iota
	lineVoterID
	lineName
	lineRelative
	lineHouse
	lineAge
)

// Field label patterns as they survive Tesseract. The zero-width
// joiner/non-joiner escapes match the marks OCR carries through from
// the printed chillu forms.
var (
	idLineRe     = regexp.MustCompile(`[A-Z]{2,3}\d{6,}`)
	nameLabelRe  = regexp.MustCompile(`പേര്?[്\x{200C}]*\s*[:+]`)
	relMarkerRe  = regexp.MustCompile(`(അച്ഛ|ഭര്\x{200D}ത്താ|മറ്റ)`)
	relLabelRe   = regexp.MustCompile(`(അച്ഛന്റെ|ഭര്\x{200D}ത്താവിന്റെ|മറ്റുള്ളവ)`)
	houseLabelRe = regexp.MustCompile(`(വീട്ടു|വിട്ടു)\s*നമ്പ`)
	ageLabelRe   = regexp.MustCompile(`പ്രായം`)
)

// classifyLine routes one block line to the field accumulator it
// belongs to. Identifier lines are recognized first (their text was
// already consumed for IDs and serials); a name label only counts when
// no relative marker shares the line, since the relative-name label
// embeds the word for name.
func classifyLine(line string) lineClass {
	switch {
	case idLineRe.MatchString(line):
		return lineVoterID
	case nameLabelRe.MatchString(line) && !relMarkerRe.MatchString(line):
		return lineName
	case relLabelRe.MatchString(line):
		return lineRelative
	case houseLabelRe.MatchString(line):
		return lineHouse
	case ageLabelRe.MatchString(line):
		return lineAge
	default:
		return lineUnclassified
	}
}
