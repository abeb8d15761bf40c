package dto

import (
	"mime/multipart"
	"strings"
)

// RollExtractionRequest represents the incoming extraction request
type RollExtractionRequest struct {
	File     *multipart.FileHeader `form:"file" binding:"required"`
	Password string                `form:"password"`
}

// Validate performs basic validation on the request
func (r *RollExtractionRequest) Validate() error {
	if r.File == nil {
		return ErrNoFileProvided
	}
	if !strings.HasSuffix(strings.ToLower(r.File.Filename), ".pdf") {
		return ErrNotAPDF
	}
	return nil
}
