package service

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/sreehari-kl/ocr-voter-extraction/client"
	"github.com/sreehari-kl/ocr-voter-extraction/dto"
	"github.com/sreehari-kl/ocr-voter-extraction/utils/rollparser"
	"github.com/sreehari-kl/ocr-voter-extraction/utils/translit"
)

// minTextLayerLen is the point below which an embedded text layer is
// considered absent and the pipeline switches to page-image OCR.
const minTextLayerLen = 200

type RollService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
}

func NewRollService(tesseractClient *client.TesseractClient, pdfProcessor PDFProcessor) *RollService {
	return &RollService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
	}
}

// ExtractFromPDF turns one electoral-roll PDF into deduplicated voter
// records. Born-digital rolls are read from the text layer; scanned
// rolls go through per-page Tesseract OCR. Pages that do not look like
// data pages are skipped, and every record is tagged with sourceName
// for provenance.
func (s *RollService) ExtractFromPDF(ctx context.Context, pdfData []byte, sourceName, password string) (*dto.RollExtractionResult, error) {
	result := &dto.RollExtractionResult{Source: sourceName}

	pages, partInfo, err := s.pageTexts(ctx, pdfData, password)
	if err != nil {
		return nil, err
	}
	result.PartInfo = partInfo

	var voters []dto.VoterRecord
	for idx, pageText := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(pageText) == "" || !rollparser.IsDataPage(pageText) {
			result.PagesSkipped++
			continue
		}

		pageVoters := rollparser.ParseText(pageText)
		for i := range pageVoters {
			pageVoters[i].PdfSource = sourceName
			attachTransliterations(&pageVoters[i])
		}
		voters = append(voters, pageVoters...)
		result.PagesProcessed++

		log.Printf("%s: page %d/%d yielded %d voters (total %d)",
			sourceName, idx+1, len(pages), len(pageVoters), len(voters))
	}

	result.Voters = DeduplicateVoters(voters)
	return result, nil
}

// pageTexts produces one text per page, preferring the embedded text
// layer and falling back to OCR over extracted page images. The second
// return value is part metadata decoded from a cover-page QR, when one
// exists.
func (s *RollService) pageTexts(ctx context.Context, pdfData []byte, password string) ([]string, string, error) {
	text, err := s.pdfProcessor.ExtractText(pdfData, password)
	if err != nil {
		log.Printf("PDF text extraction failed, falling back to OCR: %v", err)
	}
	if len(strings.TrimSpace(text)) >= minTextLayerLen {
		return strings.Split(text, "\f"), "", nil
	}

	images, err := s.pdfProcessor.ExtractPageImages(pdfData, password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to extract page images: %w", err)
	}
	if len(images) == 0 {
		return nil, "", fmt.Errorf("PDF has no text layer and no page images")
	}

	// Newer rolls carry a QR with part metadata on the cover page.
	// Absence is normal and non-fatal.
	partInfo := decodePartQR(images[0])

	pages, err := s.ocrPages(ctx, images)
	if err != nil {
		return nil, "", err
	}
	return pages, partInfo, nil
}

// ocrPages runs Tesseract over every page image concurrently. Results
// keep page order; a failed page degrades to empty text rather than
// aborting the document.
func (s *RollService) ocrPages(ctx context.Context, images []image.Image) ([]string, error) {
	pages := make([]string, len(images))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for idx, img := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		wg.Add(1)
		go func(idx int, img image.Image) {
			defer wg.Done()

			tempImgFile, err := saveImageToTempFile(img)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to save page %d image: %w", idx+1, err)
				}
				mu.Unlock()
				return
			}
			defer os.Remove(tempImgFile)

			pageText, err := s.tesseractClient.ExtractTextFromImage(tempImgFile)
			if err != nil {
				log.Printf("OCR failed for page %d: %v", idx+1, err)
				return
			}
			pages[idx] = pageText
		}(idx, img)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return pages, nil
}

// attachTransliterations derives the English name fields. They are
// recomputed from the Malayalam fields, never hand-edited.
func attachTransliterations(v *dto.VoterRecord) {
	if v.NameML != "" {
		v.NameEN = translit.Transliterate(v.NameML)
	}
	if v.RelativeNameML != "" {
		v.RelativeNameEN = translit.Transliterate(v.RelativeNameML)
	}
}

// DeduplicateVoters drops repeated voter ids, keeping the first
// occurrence and the original order. Records without an id pass
// through untouched.
func DeduplicateVoters(voters []dto.VoterRecord) []dto.VoterRecord {
	seen := make(map[string]bool, len(voters))
	unique := make([]dto.VoterRecord, 0, len(voters))
	for _, v := range voters {
		if v.VoterID != "" {
			if seen[v.VoterID] {
				continue
			}
			seen[v.VoterID] = true
		}
		unique = append(unique, v)
	}
	return unique
}

// decodePartQR reads the part-metadata QR printed on recent roll cover
// pages. Older rolls have none; any decode failure just means no part
// info.
func decodePartQR(img image.Image) string {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return ""
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(result.GetText())
}

// saveImageToTempFile saves an image.Image to a temporary PNG file.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "roll-page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}
