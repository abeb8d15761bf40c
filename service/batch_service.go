package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/sreehari-kl/ocr-voter-extraction/dto"
)

const sourceLabel = "Kerala Electoral Roll PDF (OCR extraction)"

// duplicateCopyRe matches the " (1)" suffix browsers append to
// re-downloaded files, so the same roll is not processed twice.
var duplicateCopyRe = regexp.MustCompile(`\s*\(\d+\)`)

// BatchService processes a directory of roll PDFs into one JSON file,
// deduplicating across documents and saving progress after every PDF
// so an interrupted run can resume.
type BatchService struct {
	rollService *RollService
}

func NewBatchService(rollService *RollService) *BatchService {
	return &BatchService{rollService: rollService}
}

// ProcessDirectory extracts every PDF under inputPath (or the single
// PDF it names) into outputPath. With resume set, PDFs already listed
// in an existing output file are skipped and its records are kept.
// One failing PDF is logged and skipped, not fatal.
func (s *BatchService) ProcessDirectory(ctx context.Context, inputPath, outputPath string, resume bool) error {
	pdfFiles, err := collectPDFs(inputPath)
	if err != nil {
		return err
	}
	if len(pdfFiles) == 0 {
		return fmt.Errorf("no PDFs found in %q", inputPath)
	}
	log.Printf("Found %d PDF(s) under %s", len(pdfFiles), inputPath)

	var allVoters []dto.VoterRecord
	var processed []string
	if resume {
		if existing, err := loadExtractionFile(outputPath); err == nil {
			allVoters = existing.Voters
			processed = existing.Metadata.PdfsProcessed
			log.Printf("Resuming: %d voters already extracted from %d PDFs", len(allVoters), len(processed))
		} else if !os.IsNotExist(err) {
			log.Printf("Could not resume from %s: %v", outputPath, err)
		}
	}

	processedSet := make(map[string]bool, len(processed))
	for _, name := range processed {
		processedSet[name] = true
	}

	for _, pdfPath := range pdfFiles {
		if err := ctx.Err(); err != nil {
			return err
		}

		pdfName := filepath.Base(pdfPath)
		if processedSet[pdfName] {
			log.Printf("Skipping already processed PDF: %s", pdfName)
			continue
		}

		pdfData, err := os.ReadFile(pdfPath)
		if err != nil {
			log.Printf("Failed to read %s: %v", pdfName, err)
			continue
		}

		result, err := s.rollService.ExtractFromPDF(ctx, pdfData, pdfName, "")
		if err != nil {
			log.Printf("Failed to extract %s: %v", pdfName, err)
			continue
		}
		log.Printf("%s: %d voters (%d pages, %d skipped)",
			pdfName, len(result.Voters), result.PagesProcessed, result.PagesSkipped)

		allVoters = DeduplicateVoters(append(allVoters, result.Voters...))
		processed = append(processed, pdfName)
		processedSet[pdfName] = true

		// Progressive save: an interrupted batch loses at most one PDF
		// of work.
		if err := saveExtractionFile(outputPath, allVoters, processed); err != nil {
			return fmt.Errorf("failed to save progress: %w", err)
		}
	}

	log.Printf("Batch complete: %d voters from %d PDFs -> %s", len(allVoters), len(processed), outputPath)
	return nil
}

// collectPDFs returns the PDFs named by path (file or directory),
// sorted, with duplicate download copies filtered out.
func collectPDFs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access input path: %w", err)
	}

	if !info.IsDir() {
		if strings.HasSuffix(strings.ToLower(path), ".pdf") {
			return []string{path}, nil
		}
		return nil, fmt.Errorf("%q is not a PDF", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read input directory: %w", err)
	}

	var files []string
	seen := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		cleanName := duplicateCopyRe.ReplaceAllString(name, "")
		if seen[cleanName] {
			continue
		}
		seen[cleanName] = true
		files = append(files, filepath.Join(path, name))
	}
	return files, nil
}

func loadExtractionFile(path string) (*dto.ExtractionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file dto.ExtractionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("malformed output file: %w", err)
	}
	return &file, nil
}

func saveExtractionFile(path string, voters []dto.VoterRecord, processed []string) error {
	file := dto.ExtractionFile{
		Metadata: dto.ExtractionMetadata{
			ExtractedAt:   time.Now().Format(time.RFC3339),
			TotalVoters:   len(voters),
			Source:        sourceLabel,
			PdfsProcessed: processed,
		},
		Voters: voters,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
