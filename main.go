package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/sreehari-kl/ocr-voter-extraction/client"
	"github.com/sreehari-kl/ocr-voter-extraction/config"
	"github.com/sreehari-kl/ocr-voter-extraction/handler"
	"github.com/sreehari-kl/ocr-voter-extraction/service"
)

func main() {
	inputPath := flag.String("input", "", "PDF file or folder to extract in batch mode")
	outputPath := flag.String("output", "", "JSON output file for batch mode")
	resume := flag.Bool("resume", false, "resume batch mode from an existing output file")
	flag.Parse()

	// Initialize configuration
	cfg := config.LoadConfig()
	log.Println("TESSDATA_PREFIX:", cfg.TesseractDataPath)
	if os.Getenv("TESSDATA_PREFIX") == "" {
		os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)
	}

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguages)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	rollService := service.NewRollService(tesseractClient, pdfProcessor)

	// Batch mode: extract a file or folder of rolls and exit.
	if *inputPath != "" {
		out := *outputPath
		if out == "" {
			out = cfg.OutputPath
		}
		batchService := service.NewBatchService(rollService)
		if err := batchService.ProcessDirectory(context.Background(), *inputPath, out, *resume); err != nil {
			log.Fatalf("Batch extraction failed: %v", err)
		}
		return
	}

	// Initialize handler layer
	rollHandler := handler.NewRollHandler(rollService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory to the configured upload cap
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Electoral Roll OCR Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		rolls := api.Group("/rolls")
		{
			rolls.POST("/extract", rollHandler.ExtractRoll)
		}
	}

	// Start server
	log.Printf("Starting Electoral Roll OCR Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
