package config

import "os"

type Config struct {
	ServerPort        string
	TesseractDataPath string
	OCRLanguages      string
	OutputPath        string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	// Malayalam plus English: voter ids, ages and house numbers are
	// Latin/ASCII even on Malayalam pages.
	ocrLanguages := os.Getenv("OCR_LANGUAGES")
	if ocrLanguages == "" {
		ocrLanguages = "mal+eng"
	}

	outputPath := os.Getenv("OUTPUT_PATH")
	if outputPath == "" {
		outputPath = "voters_data.json"
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		OCRLanguages:      ocrLanguages,
		OutputPath:        outputPath,
		MaxFileSize:       64 * 1024 * 1024, // scanned rolls run large
	}
}
