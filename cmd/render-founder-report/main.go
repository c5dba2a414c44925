package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zarlabs/survey-insights/internal/insights"
	"github.com/zarlabs/survey-insights/internal/report"
	"github.com/zarlabs/survey-insights/internal/survey"
)

func main() {
	dataPath := flag.String("data", "data/data.md", "Path to the survey markdown table")
	transcriptsDir := flag.String("transcripts", "transcripts", "Directory of transcript .txt files")
	outputPath := flag.String("output", "", "Path to write the report markdown (defaults to stdout)")
	pdfPath := flag.String("pdf", "", "Optional path to write a rendered PDF")
	flag.Parse()

	interviews, err := survey.LoadInterviews(*dataPath)
	if err != nil {
		log.Fatalf("load interviews: %v", err)
	}
	transcripts, err := survey.LoadTranscripts(*transcriptsDir)
	if err != nil {
		log.Printf("load transcripts: %v (continuing without transcripts)", err)
	}

	snapshot := insights.BuildSnapshot(interviews, transcripts)
	markdown := report.BuildFounderReport(snapshot)

	if err := writeMarkdown(*outputPath, markdown); err != nil {
		log.Fatalf("write markdown: %v", err)
	}

	if *pdfPath != "" {
		renderer := report.NewPDFRenderer()
		pdf, err := renderer.Render(context.Background(), markdown)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(*pdfPath, pdf, 0o644); err != nil {
			log.Fatalf("write pdf: %v", err)
		}
		log.Printf("wrote %s (%d bytes)", *pdfPath, len(pdf))
	}
}

func writeMarkdown(outputPath, markdown string) error {
	if outputPath == "" {
		_, err := fmt.Print(markdown)
		return err
	}
	return os.WriteFile(outputPath, []byte(markdown), 0o644)
}
