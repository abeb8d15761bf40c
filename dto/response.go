package dto

import "errors"

// Custom errors
var (
	ErrNoFileProvided = errors.New("no PDF file provided")
	ErrNotAPDF        = errors.New("uploaded file must be a PDF")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// RollExtractionResponse is the final response structure
type RollExtractionResponse struct {
	Source         string        `json:"source"`
	PartInfo       string        `json:"part_info,omitempty"`
	TotalVoters    int           `json:"total_voters"`
	PagesProcessed int           `json:"pages_processed"`
	PagesSkipped   int           `json:"pages_skipped"`
	Voters         []VoterRecord `json:"voters"`
	ProcessedAt    string        `json:"processed_at"`
}
