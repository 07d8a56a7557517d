package docproc

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// File types reported by ExtractTextFromFile.
const (
	TypePDF     = "pdf"
	TypeDOCX    = "docx"
	TypeTXT     = "txt"
	TypeUnknown = "unknown"
	TypeError   = "error"
)

// MaxFileSize is the upload size ceiling (10MB).
const MaxFileSize = 10 * 1024 * 1024

// Processor extracts plain text from uploaded documents. The pipeline
// only ever sees the extracted text; format parsing stops here.
type Processor struct {
	logger *log.Logger
}

func NewProcessor(logger *log.Logger) *Processor {
	return &Processor{logger: logger}
}

// ExtractTextFromFile returns the extracted text and detected file type.
// Extraction failures return a descriptive text and the "error" type
// instead of an error value; callers branch on the type.
func (p *Processor) ExtractTextFromFile(filePath, filename string) (string, string) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDF(filePath)
		if err != nil {
			p.logger.Printf("[ERROR] Failed to extract text from %s: %v", filename, err)
			return fmt.Sprintf("Error extracting text from %s: %v", filename, err), TypeError
		}
		return text, TypePDF
	case ".docx", ".doc":
		text, err := extractDOCX(filePath)
		if err != nil {
			p.logger.Printf("[ERROR] Failed to extract text from %s: %v", filename, err)
			return fmt.Sprintf("Error extracting text from %s: %v", filename, err), TypeError
		}
		return text, TypeDOCX
	case ".txt":
		text, err := extractTXT(filePath)
		if err != nil {
			p.logger.Printf("[ERROR] Failed to extract text from %s: %v", filename, err)
			return fmt.Sprintf("Error extracting text from %s: %v", filename, err), TypeError
		}
		return text, TypeTXT
	default:
		// Unknown extensions are read as plain text on a best-effort
		// basis.
		text, err := extractTXT(filePath)
		if err != nil {
			p.logger.Printf("[ERROR] Failed to extract text from %s: %v", filename, err)
			return fmt.Sprintf("Error extracting text from %s: %v", filename, err), TypeError
		}
		return text, TypeUnknown
	}
}

// IsSupportedFormat reports whether the filename has an accepted
// extension.
func IsSupportedFormat(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".doc", ".txt":
		return true
	}
	return false
}

// ValidateFileSize reports whether size fits the upload ceiling.
func ValidateFileSize(size int64) bool {
	return size <= MaxFileSize
}

func extractPDF(filePath string) (string, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// docxDocument models the minimal subset of word/document.xml needed to
// pull paragraph text out of a DOCX archive.
type docxDocument struct {
	Paragraphs []struct {
		Runs []struct {
			Text string `xml:"t"`
		} `xml:"r"`
	} `xml:"body>p"`
}

func extractDOCX(filePath string) (string, error) {
	archive, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()

		var doc docxDocument
		if err := xml.NewDecoder(rc).Decode(&doc); err != nil {
			return "", fmt.Errorf("decode document.xml: %w", err)
		}

		lines := make([]string, 0, len(doc.Paragraphs))
		for _, para := range doc.Paragraphs {
			var b strings.Builder
			for _, run := range para.Runs {
				b.WriteString(run.Text)
			}
			lines = append(lines, b.String())
		}
		return strings.Join(lines, "\n"), nil
	}
	return "", fmt.Errorf("document.xml not found in archive")
}

func extractTXT(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}
