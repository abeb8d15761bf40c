// Package rollparser reconstructs structured voter records from the
// OCR text of Kerala electoral-roll pages. A page lays out up to three
// voter "cards" per row; the parser slices the page into row blocks,
// classifies each line by its field label, splits the label-delimited
// columns apart and zips them back into per-voter records. Malformed
// input degrades to fewer or narrower records, never an error.
package rollparser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sreehari-kl/ocr-voter-extraction/dto"
)

var (
	voterIDRe    = regexp.MustCompile(`[A-Za-z]{2,3}\d{6,10}`)
	dataStartRe  = regexp.MustCompile(`\d+\s+[A-Z]{2,3}\d{6,}`)
	serialRe     = regexp.MustCompile(`(?:^|\s)(\d{1,4})\s+[A-Za-z]{2,3}\d`)
	blockStartRe = regexp.MustCompile(`(?:^|\s)\d{1,4}\s+[A-Za-z]{2,3}\d{6,}`)
	photoLineRe  = regexp.MustCompile(`^(ഫോട്ടോ\s*)+$`)

	// Column delimiters: each field label splits its accumulator line
	// into one segment per co-located voter.
	nameSplitRe  = regexp.MustCompile(`പേര്?[്\x{200C}]*\s*[:+]\s*`)
	relSplitRe   = regexp.MustCompile(`(?:അച്ഛന്റെ|ഭര്\x{200D}ത്താവിന്റെ|മറ്റുള്ളവ)\s*(?:പേര്?[്\x{200C}]*\s*)?[:+]?\s*`)
	houseSplitRe = regexp.MustCompile(`(?:വീട്ടു|വിട്ടു)\s*നമ്പര്?[്\x{200D}]*\s*[:+]\s*`)
	ageSplitRe   = regexp.MustCompile(`പ്രായം\s*[:+]\s*`)

	// Common OCR misreads of card borders and photo captions that end
	// up glued to the last field of a column.
	houseNoiseRe = regexp.MustCompile(`\s*(ടോ|oes|ലു|ല്ല|ലല|llo)\s*$`)
	nameNoiseRe  = regexp.MustCompile(`\s*(ഫോട്ടോ|ടോ|oes|ലു|ല്ല)\s*$`)
	pipeNoiseRe  = regexp.MustCompile(`\s*\|\s*$`)
	ageNumRe     = regexp.MustCompile(`(\d{2,3})`)
)

// Age bounds: anything outside is an OCR misread, discarded rather
// than clamped.
const (
	minAge = 18
	maxAge = 120
)

// blockTerminators mark the page footer (age-declaration note, total
// pages, supplement header). A line carrying one ends the current block
// without being consumed into it.
var blockTerminators = []string{"വയസ്സ്", "ആകെ പേജ", "സപ്പിമെന്റ"}

// IsDataPage reports whether a page's OCR text looks like it carries
// tabular voter rows: a voter-id pattern plus a name label (native or
// its frequent Latin misreads).
func IsDataPage(text string) bool {
	if !voterIDRe.MatchString(text) {
		return false
	}
	return strings.Contains(text, "പേര") || strings.Contains(text, "പേർ") ||
		strings.Contains(text, "Gald") || strings.Contains(text, "Cad")
}

// ParseText splits raw page text into trimmed non-blank lines and
// parses them.
func ParseText(text string) []dto.VoterRecord {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return Parse(lines)
}

// Parse turns one page's trimmed OCR lines into voter records with
// Malayalam fields only. Lines before the first serial+id row are
// header noise; each block runs until the next such row or a footer
// terminator. A page with no identifiers yields an empty result.
func Parse(lines []string) []dto.VoterRecord {
	var voters []dto.VoterRecord
	if len(lines) == 0 {
		return voters
	}

	start := 0
	for i, line := range lines {
		if dataStartRe.MatchString(line) {
			start = i
			break
		}
	}

	i := start
	for i < len(lines) {
		line := lines[i]
		ids := voterIDRe.FindAllString(line, -1)
		if len(ids) == 0 {
			i++
			continue
		}

		var serials []string
		for _, m := range serialRe.FindAllStringSubmatch(line, -1) {
			serials = append(serials, m[1])
		}

		block := []string{line}
		j := i + 1
		for j < len(lines) {
			next := lines[j]
			if blockStartRe.MatchString(next) || isBlockTerminator(next) {
				break
			}
			if photoLineRe.MatchString(next) {
				j++
				continue
			}
			block = append(block, next)
			j++
		}

		voters = append(voters, parseBlock(block, ids, serials)...)
		i = j
	}

	return voters
}

func isBlockTerminator(line string) bool {
	for _, marker := range blockTerminators {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

// parseBlock resolves one row block (1-3 voters side by side) into
// records. Field columns are positionally aligned with the identifier
// list; a short column degrades the corresponding field to its zero
// value instead of shifting neighbours.
func parseBlock(lines []string, ids, serials []string) []dto.VoterRecord {
	var nameLine, relLine, houseLine, ageLine string

	for _, line := range lines {
		switch classifyLine(line) {
		case lineVoterID:
			// Already consumed for IDs and serials.
		case lineName:
			nameLine += " " + line
		case lineRelative:
			relLine += " " + line
		case lineHouse:
			houseLine += " " + line
		case lineAge:
			ageLine += " " + line
		}
	}

	names := splitColumn(nameSplitRe, nameLine)
	relNames := splitColumn(relSplitRe, relLine)
	relTypes := relationTypes(relLine)

	houses := splitColumn(houseSplitRe, houseLine)
	for k := range houses {
		houses[k] = strings.TrimSpace(houseNoiseRe.ReplaceAllString(houses[k], ""))
	}

	ages, genders := parseAgeGender(splitColumn(ageSplitRe, ageLine))

	var voters []dto.VoterRecord
	for k, id := range ids {
		rec := dto.VoterRecord{
			VoterID:      strings.ToUpper(id),
			RelationType: dto.RelationFather,
		}
		if k < len(serials) {
			if v, err := strconv.Atoi(serials[k]); err == nil {
				rec.SerialNo = &v
			}
		}
		if k < len(names) {
			rec.NameML = stripNameNoise(names[k])
		}
		if k < len(relNames) {
			rec.RelativeNameML = stripNameNoise(relNames[k])
		}
		if k < len(relTypes) {
			rec.RelationType = relTypes[k]
		}
		if k < len(houses) {
			rec.HouseNumber = houses[k]
		}
		if k < len(ages) {
			rec.Age = ages[k]
		}
		if k < len(genders) {
			rec.Gender = genders[k]
		}
		if rec.VoterID == "" {
			continue
		}
		voters = append(voters, rec)
	}

	return voters
}

// splitColumn splits an accumulator line on its own field label and
// drops empty segments.
func splitColumn(re *regexp.Regexp, line string) []string {
	var out []string
	for _, part := range re.Split(strings.TrimSpace(line), -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// relationTypes reads the relation keyword per column in order of
// appearance on the relative-name line.
func relationTypes(relLine string) []dto.RelationType {
	var types []dto.RelationType
	for _, m := range relLabelRe.FindAllString(relLine, -1) {
		switch {
		case strings.Contains(m, "അച്ഛ"):
			types = append(types, dto.RelationFather)
		case strings.Contains(m, "ഭര"):
			types = append(types, dto.RelationHusband)
		default:
			types = append(types, dto.RelationOther)
		}
	}
	return types
}

// parseAgeGender extracts a 2-3 digit age (nil outside 18-120) and a
// gender per column segment. Only the feminine marker is ever printed
// legibly, so Male is the unmarked default.
func parseAgeGender(parts []string) ([]*int, []dto.Gender) {
	ages := make([]*int, 0, len(parts))
	genders := make([]dto.Gender, 0, len(parts))

	for _, part := range parts {
		var age *int
		if m := ageNumRe.FindStringSubmatch(part); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil && v >= minAge && v <= maxAge {
				age = &v
			}
		}
		ages = append(ages, age)

		if strings.Contains(part, "സ്ത്രീ") || strings.Contains(part, "സ്രീ") ||
			strings.Contains(strings.ToLower(part), "ay)") {
			genders = append(genders, dto.GenderFemale)
		} else {
			genders = append(genders, dto.GenderMale)
		}
	}

	return ages, genders
}

// stripNameNoise removes border and photo-caption misreads glued to the
// end of a name column. Relative names get the same treatment: the card
// border renders as a trailing "|" on whichever name row sits lowest.
func stripNameNoise(s string) string {
	s = nameNoiseRe.ReplaceAllString(s, "")
	s = pipeNoiseRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
