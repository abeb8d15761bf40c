package handler

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sreehari-kl/ocr-voter-extraction/dto"
	"github.com/sreehari-kl/ocr-voter-extraction/service"
)

type RollHandler struct {
	rollService *service.RollService
}

func NewRollHandler(rollService *service.RollService) *RollHandler {
	return &RollHandler{
		rollService: rollService,
	}
}

// ExtractRoll handles the POST /rolls/extract endpoint
func (h *RollHandler) ExtractRoll(c *gin.Context) {
	log.Println("Received roll extraction request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	request := &dto.RollExtractionRequest{
		File:     fileHeader,
		Password: c.PostForm("password"),
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	pdfData, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}

	log.Printf("Extracting %s (%d bytes)", fileHeader.Filename, len(pdfData))

	result, err := h.rollService.ExtractFromPDF(c.Request.Context(), pdfData, fileHeader.Filename, request.Password)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to extract roll", err)
		return
	}

	log.Printf("Extraction completed: %d voters from %s", len(result.Voters), fileHeader.Filename)
	c.JSON(http.StatusOK, dto.RollExtractionResponse{
		Source:         result.Source,
		PartInfo:       result.PartInfo,
		TotalVoters:    len(result.Voters),
		PagesProcessed: result.PagesProcessed,
		PagesSkipped:   result.PagesSkipped,
		Voters:         result.Voters,
		ProcessedAt:    time.Now().Format(time.RFC3339),
	})
}

// sendError sends a structured error response
func (h *RollHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
