package dto

// RelationType identifies whose name the relative-name field carries.
type RelationType string

const (
	RelationFather  RelationType = "Father"
	RelationHusband RelationType = "Husband"
	RelationOther   RelationType = "Other"
)

// Gender as printed on the roll. The OCR text only ever carries an
// explicit feminine marker, so Male doubles as the unmarked default.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// VoterRecord is one voter entry reconstructed from a roll page.
// Malayalam fields come straight from OCR; the English counterparts are
// derived by transliteration and never authored by hand.
type VoterRecord struct {
	SerialNo       *int         `json:"serial_no"`
	VoterID        string       `json:"voter_id"`
	NameML         string       `json:"name_ml"`
	NameEN         string       `json:"name_en"`
	RelativeNameML string       `json:"relative_name_ml"`
	RelativeNameEN string       `json:"relative_name_en"`
	RelationType   RelationType `json:"relation_type"`
	HouseNumber    string       `json:"house_number"`
	Age            *int         `json:"age"`
	Gender         Gender       `json:"gender"`
	PdfSource      string       `json:"pdf_source,omitempty"`
}

// RollExtractionResult is the outcome of processing one PDF.
type RollExtractionResult struct {
	Source         string        `json:"source"`
	PartInfo       string        `json:"part_info,omitempty"`
	PagesProcessed int           `json:"pages_processed"`
	PagesSkipped   int           `json:"pages_skipped"`
	Voters         []VoterRecord `json:"voters"`
}

// ExtractionMetadata heads the batch output file.
type ExtractionMetadata struct {
	ExtractedAt   string   `json:"extracted_at"`
	TotalVoters   int      `json:"total_voters"`
	Source        string   `json:"source"`
	PdfsProcessed []string `json:"pdfs_processed"`
}

// ExtractionFile is the on-disk JSON envelope written by batch mode.
// Its layout is what the resume path reads back.
type ExtractionFile struct {
	Metadata ExtractionMetadata `json:"metadata"`
	Voters   []VoterRecord      `json:"voters"`
}
