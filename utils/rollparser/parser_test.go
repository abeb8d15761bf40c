package rollparser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sreehari-kl/ocr-voter-extraction/dto"
)

func TestParseFullRow(t *testing.T) {
	lines := []string{
		"കേരള സംസ്ഥാനം നിയമസഭാ മണ്ഡലം", // header noise
		"1 ABC1234567 2 ABC1234568 3 ABC1234569",
		"പേര് : രാജൻ പേര് : മീര പേര് : കമല",
		"അച്ഛന്റെ പേര് : കേശവൻ ഭര്‍ത്താവിന്റെ പേര് : രാജൻ അച്ഛന്റെ പേര് : കേശവൻ",
		"ഫോട്ടോ ഫോട്ടോ ഫോട്ടോ",
		"വീട്ടു നമ്പര്‍ : 12എ ടോ വീട്ടു നമ്പര്‍ : 14 വിട്ടു നമ്പര്‍ : 15",
		"പ്രായം : 45 പുരുഷൻ പ്രായം : 38 സ്ത്രീ പ്രായം : 25 പുരുഷൻ",
	}

	voters := Parse(lines)
	assert.Len(t, voters, 3)

	v := voters[0]
	assert.Equal(t, 1, *v.SerialNo)
	assert.Equal(t, "ABC1234567", v.VoterID)
	assert.Equal(t, "രാജൻ", v.NameML)
	assert.Equal(t, "കേശവൻ", v.RelativeNameML)
	assert.Equal(t, dto.RelationFather, v.RelationType)
	assert.Equal(t, "12എ", v.HouseNumber) // trailing OCR noise stripped
	assert.Equal(t, 45, *v.Age)
	assert.Equal(t, dto.GenderMale, v.Gender)

	v = voters[1]
	assert.Equal(t, 2, *v.SerialNo)
	assert.Equal(t, "ABC1234568", v.VoterID)
	assert.Equal(t, "മീര", v.NameML)
	assert.Equal(t, "രാജൻ", v.RelativeNameML)
	assert.Equal(t, dto.RelationHusband, v.RelationType)
	assert.Equal(t, "14", v.HouseNumber)
	assert.Equal(t, 38, *v.Age)
	assert.Equal(t, dto.GenderFemale, v.Gender)

	v = voters[2]
	assert.Equal(t, 3, *v.SerialNo)
	assert.Equal(t, "ABC1234569", v.VoterID)
	assert.Equal(t, "കമല", v.NameML)
	assert.Equal(t, dto.RelationFather, v.RelationType)
	assert.Equal(t, "15", v.HouseNumber)
	assert.Equal(t, 25, *v.Age)
	assert.Equal(t, dto.GenderMale, v.Gender)
}

func TestParseColumnAlignment(t *testing.T) {
	// Three identifiers but only two names and one house number: short
	// columns degrade to zero values without shifting neighbours.
	lines := []string{
		"1 ABC123456 2 ABC123457 3 ABC123458",
		"പേര് : രാജൻ പേര് : മീര",
		"വീട്ടു നമ്പര്‍ : 7",
	}

	voters := Parse(lines)
	assert.Len(t, voters, 3)

	assert.Equal(t, "ABC123456", voters[0].VoterID)
	assert.Equal(t, "രാജൻ", voters[0].NameML)
	assert.Equal(t, "7", voters[0].HouseNumber)

	assert.Equal(t, "ABC123457", voters[1].VoterID)
	assert.Equal(t, "മീര", voters[1].NameML)
	assert.Empty(t, voters[1].HouseNumber)

	assert.Equal(t, "ABC123458", voters[2].VoterID)
	assert.Empty(t, voters[2].NameML)
	assert.Empty(t, voters[2].HouseNumber)

	// Every emitted record carries an identifier, and no block can
	// produce more records than identifiers.
	for _, v := range voters {
		assert.NotEmpty(t, v.VoterID)
	}
}

func TestParseMultipleBlocks(t *testing.T) {
	lines := []string{
		"1 ABC1234567",
		"പേര് : രാജൻ",
		"2 ABC1234568",
		"പേര് : മീര",
	}

	voters := Parse(lines)
	assert.Len(t, voters, 2)
	assert.Equal(t, "രാജൻ", voters[0].NameML)
	assert.Equal(t, "മീര", voters[1].NameML)
}

func TestParseBlockTerminator(t *testing.T) {
	// The footer note carrying the age-declaration marker terminates
	// the block; nothing after it is swallowed into field lines.
	lines := []string{
		"1 ABC1234567",
		"പേര് : രാജൻ",
		"വയസ്സ് 01-01-2026 പ്രകാരം",
		"പേര് : മീര", // past the footer, never reached as a block line
	}

	voters := Parse(lines)
	assert.Len(t, voters, 1)
	assert.Equal(t, "രാജൻ", voters[0].NameML)
}

func TestParseAgeBounds(t *testing.T) {
	lines := []string{
		"1 ABC1234567 2 ABC1234568 3 ABC1234569",
		"പ്രായം : 15 പ്രായം : 121 പ്രായം : 45",
	}

	voters := Parse(lines)
	assert.Len(t, voters, 3)
	assert.Nil(t, voters[0].Age) // below 18
	assert.Nil(t, voters[1].Age) // above 120
	assert.Equal(t, 45, *voters[2].Age)
}

func TestParseLowercaseIDNormalized(t *testing.T) {
	voters := Parse([]string{"1 kl1234567", "പേര് : രാജൻ"})
	assert.Len(t, voters, 1)
	assert.Equal(t, "KL1234567", voters[0].VoterID)
}

func TestParseNoIdentifiers(t *testing.T) {
	assert.Empty(t, Parse(nil))
	assert.Empty(t, Parse([]string{"ചില ഹെഡർ വരികൾ", "പേര് : രാജൻ"}))
}

func TestParseNameNoiseStripped(t *testing.T) {
	voters := Parse([]string{
		"1 ABC1234567 2 ABC1234568",
		"പേര് : രാജൻ ഫോട്ടോ പേര് : മീര |",
	})
	assert.Len(t, voters, 2)
	assert.Equal(t, "രാജൻ", voters[0].NameML)
	assert.Equal(t, "മീര", voters[1].NameML)
}

func TestParseRelativeNameNoiseStripped(t *testing.T) {
	// The card border trails the relative row when it is the lowest name
	// row on the card; it gets the same cleanup as the name row.
	voters := Parse([]string{
		"1 ABC1234567",
		"അച്ഛന്റെ പേര് : കേശവൻ |",
	})
	assert.Len(t, voters, 1)
	assert.Equal(t, "കേശവൻ", voters[0].RelativeNameML)
}

func TestParseText(t *testing.T) {
	text := "\n  1 ABC1234567  \n\n  പേര് : രാജൻ  \n"
	voters := ParseText(text)
	assert.Len(t, voters, 1)
	assert.Equal(t, "ABC1234567", voters[0].VoterID)
}

func TestClassifyLine(t *testing.T) {
	assert.Equal(t, lineVoterID, classifyLine("1 ABC1234567"))
	assert.Equal(t, lineName, classifyLine("പേര് : രാജൻ"))
	assert.Equal(t, lineRelative, classifyLine("അച്ഛന്റെ പേര് : കേശവൻ"))
	assert.Equal(t, lineRelative, classifyLine("ഭര്‍ത്താവിന്റെ പേര് : രാജൻ"))
	assert.Equal(t, lineHouse, classifyLine("വീട്ടു നമ്പര്‍ : 12"))
	assert.Equal(t, lineAge, classifyLine("പ്രായം : 45"))
	assert.Equal(t, lineUnclassified, classifyLine("ocr garbage ###"))
}

func TestIsDataPage(t *testing.T) {
	assert.True(t, IsDataPage("1 ABC1234567 പേര് : രാജൻ"))
	// Latin misread of the name label still counts.
	assert.True(t, IsDataPage("1 ABC1234567 Gald : something"))
	// Name label without a voter id is a header page.
	assert.False(t, IsDataPage("പേര് : രാജൻ"))
	assert.False(t, IsDataPage("plain cover page"))
}
