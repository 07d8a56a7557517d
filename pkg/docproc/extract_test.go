package docproc

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testProcessor() *Processor {
	return NewProcessor(log.New(io.Discard, "", 0))
}

func TestExtractTextFromTxtFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.txt")
	content := "AI Governance Policy\n\nAll models require human oversight."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	text, fileType := testProcessor().ExtractTextFromFile(path, "policy.txt")
	if fileType != TypeTXT {
		t.Errorf("fileType = %s, want %s", fileType, TypeTXT)
	}
	if text != content {
		t.Errorf("text = %q, want file content", text)
	}
}

func TestExtractTextFromUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(path, []byte("# Heading"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, fileType := testProcessor().ExtractTextFromFile(path, "notes.md")
	if fileType != TypeUnknown {
		t.Errorf("fileType = %s, want %s", fileType, TypeUnknown)
	}
	if text != "# Heading" {
		t.Errorf("text = %q", text)
	}
}

func TestExtractTextFromMissingFile(t *testing.T) {
	text, fileType := testProcessor().ExtractTextFromFile("/nonexistent/file.txt", "file.txt")
	if fileType != TypeError {
		t.Errorf("fileType = %s, want %s", fileType, TypeError)
	}
	if !strings.Contains(text, "Error extracting text") {
		t.Errorf("text = %q, want an error description", text)
	}
}

func TestExtractTextFromCorruptPdf(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, fileType := testProcessor().ExtractTextFromFile(path, "broken.pdf")
	if fileType != TypeError {
		t.Errorf("fileType = %s, want %s", fileType, TypeError)
	}
}

func TestIsSupportedFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"regulation.pdf", true},
		{"policy.DOCX", true},
		{"legacy.doc", true},
		{"evidence.txt", true},
		{"photo.png", false},
		{"archive.zip", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		if got := IsSupportedFormat(tt.filename); got != tt.want {
			t.Errorf("IsSupportedFormat(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestValidateFileSize(t *testing.T) {
	if !ValidateFileSize(MaxFileSize) {
		t.Error("size at the ceiling should be accepted")
	}
	if ValidateFileSize(MaxFileSize + 1) {
		t.Error("size over the ceiling should be rejected")
	}
	if !ValidateFileSize(0) {
		t.Error("zero size should be accepted")
	}
}
