package client

import (
	"fmt"
	"log"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// pageSegMode 4 (single column of text of variable sizes) handles the
// three-card row layout of electoral-roll pages far better than the
// default full-auto segmentation.
const pageSegMode = "4"

type TesseractClient struct {
	dataPath  string
	languages []string
}

// NewTesseractClient creates a Tesseract wrapper. languages is a
// tesseract language spec such as "mal+eng"; every listed traineddata
// file must be present under dataPath.
func NewTesseractClient(dataPath, languages string) *TesseractClient {
	return &TesseractClient{
		dataPath:  dataPath,
		languages: strings.Split(languages, "+"),
	}
}

// ExtractTextFromImage extracts text from a page image file
func (tc *TesseractClient) ExtractTextFromImage(imagePath string) (string, error) {
	text, _, err := tc.ExtractTextAndQuality(imagePath)
	return text, err
}

// ExtractTextAndQuality extracts text and the mean word confidence from
// a page image file
func (tc *TesseractClient) ExtractTextAndQuality(imagePath string) (string, float64, error) {
	client := gosseract.NewClient()
	defer client.Close()

	client.SetTessdataPrefix(tc.dataPath)

	if err := client.SetLanguage(tc.languages...); err != nil {
		return "", 0, fmt.Errorf("failed to set languages: %w", err)
	}
	if err := client.SetVariable(gosseract.SettableVariable("tessedit_pageseg_mode"), pageSegMode); err != nil {
		return "", 0, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImage(imagePath); err != nil {
		return "", 0, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", 0, fmt.Errorf("failed to extract text: %w", err)
	}

	// Mean word confidence from the bounding boxes; the text alone is
	// still usable when the boxes are unavailable.
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return text, 0, nil
	}

	var totalConf float64
	for _, box := range boxes {
		totalConf += box.Confidence
	}

	return text, totalConf / float64(len(boxes)), nil
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}
