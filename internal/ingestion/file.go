package ingestion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

var (
	// ErrFileNotFound is returned when the résumé file does not exist
	ErrFileNotFound = errors.New("resume file not found")
	// ErrUnsupportedFormat is returned for file extensions we cannot read
	ErrUnsupportedFormat = errors.New("unsupported resume format")
	// ErrEmptyDocument is returned when no text could be extracted
	ErrEmptyDocument = errors.New("no text extracted from resume")
)

// IngestResumeFile reads a résumé file, extracts its plain text, cleans it,
// and returns the cleaned text with metadata. PDF files are extracted page
// by page through MuPDF; .txt and .md files are read directly.
func IngestResumeFile(path string) (string, *Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", nil, fmt.Errorf("failed to stat resume file: %w", err)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFormat, path)
	}

	var (
		text   string
		format string
		pages  int
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		text, pages, err = extractPDFText(path)
		if err != nil {
			return "", nil, err
		}
		format = "pdf"
	case ".txt", ".md", "":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read resume file: %w", err)
		}
		text = string(content)
		format = "text"
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrEmptyDocument, path)
	}

	metadata := NewMetadata(cleaned, path)
	metadata.Format = format
	metadata.Pages = pages

	return cleaned, metadata, nil
}

// extractPDFText concatenates the text content of every page.
func extractPDFText(path string) (string, int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "", 0, fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		pageText = strings.TrimSpace(pageText)
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n\n")
		}
	}

	return sb.String(), doc.NumPage(), nil
}
