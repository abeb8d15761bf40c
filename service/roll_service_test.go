package service

import (
	"context"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sreehari-kl/ocr-voter-extraction/dto"
	"github.com/sreehari-kl/ocr-voter-extraction/utils/rollparser"
	"github.com/sreehari-kl/ocr-voter-extraction/utils/translit"
)

// stubPDFProcessor serves a canned text layer so the service can be
// exercised without a real PDF.
type stubPDFProcessor struct {
	text string
}

func (s *stubPDFProcessor) ExtractText(pdfData []byte, password string) (string, error) {
	return s.text, nil
}

func (s *stubPDFProcessor) ExtractPageImages(pdfData []byte, password string) ([]image.Image, error) {
	return nil, nil
}

func TestDeduplicateVoters(t *testing.T) {
	voters := []dto.VoterRecord{
		{VoterID: "ABC1234567", NameML: "രാജൻ"},
		{VoterID: "ABC1234568"},
		{VoterID: "ABC1234567", NameML: "duplicate, later page"},
		{VoterID: "ABC1234569"},
	}

	unique := DeduplicateVoters(voters)

	assert.Len(t, unique, 3)
	assert.Equal(t, "ABC1234567", unique[0].VoterID)
	assert.Equal(t, "രാജൻ", unique[0].NameML) // first occurrence wins
	assert.Equal(t, "ABC1234568", unique[1].VoterID)
	assert.Equal(t, "ABC1234569", unique[2].VoterID)
}

func TestAttachTransliterations(t *testing.T) {
	v := dto.VoterRecord{NameML: "രാജൻ", RelativeNameML: "കമല"}
	attachTransliterations(&v)

	assert.Equal(t, "Rajan", v.NameEN)
	assert.Equal(t, "Kamala", v.RelativeNameEN)

	// Records without native names stay without Latin ones.
	empty := dto.VoterRecord{}
	attachTransliterations(&empty)
	assert.Empty(t, empty.NameEN)
	assert.Empty(t, empty.RelativeNameEN)
}

func TestPageScenario(t *testing.T) {
	pageText := "ഏതോ ഹെഡർ വരി\n" +
		"1 AB123456\n" +
		"പേര് : രാജൻ\n" +
		"അച്ഛന്റെ പേര് : ചന്ദ്രിക\n" +
		"പ്രായം : 25 പുരുഷൻ\n"

	assert.True(t, rollparser.IsDataPage(pageText))

	voters := rollparser.ParseText(pageText)
	assert.Len(t, voters, 1)

	v := &voters[0]
	attachTransliterations(v)

	assert.Equal(t, "AB123456", v.VoterID)
	assert.Equal(t, "രാജൻ", v.NameML)
	assert.Equal(t, 25, *v.Age)
	assert.Equal(t, dto.GenderMale, v.Gender)
	assert.Equal(t, dto.RelationFather, v.RelationType)

	// The Latin fields must match the transliterator's own output, and
	// for these inputs that output is known.
	assert.Equal(t, translit.Transliterate(v.NameML), v.NameEN)
	assert.Equal(t, "Rajan", v.NameEN)
	assert.Equal(t, "Chandrik", v.RelativeNameEN)
}

func TestExtractFromPDFPageAccounting(t *testing.T) {
	// Three document pages: two data pages around one empty page, as a
	// PDF with a blank or null middle page extracts. Processed plus
	// skipped must add up to the document's page count.
	dataPage1 := "കേരള സംസ്ഥാനം നിയമസഭാ മണ്ഡലം\n" +
		"സംസ്ഥാന തിരഞ്ഞെടുപ്പ് കമ്മീഷൻ\n" +
		"1 ABC1234567\n" +
		"പേര് : രാജൻ\n"
	dataPage2 := "2 ABC1234568\n" +
		"പേര് : മീര\n"
	proc := &stubPDFProcessor{text: strings.Join([]string{dataPage1, "", dataPage2}, "\f")}

	svc := NewRollService(nil, proc)
	result, err := svc.ExtractFromPDF(context.Background(), []byte("%PDF"), "roll.pdf", "")

	assert.NoError(t, err)
	assert.Equal(t, 2, result.PagesProcessed)
	assert.Equal(t, 1, result.PagesSkipped)
	assert.Len(t, result.Voters, 2)
	assert.Equal(t, "ABC1234567", result.Voters[0].VoterID)
	assert.Equal(t, "ABC1234568", result.Voters[1].VoterID)
}
