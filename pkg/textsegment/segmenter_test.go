package textsegment

import (
	"strings"
	"testing"
)

func TestSegmentShortText(t *testing.T) {
	chunks := Segment("short document", 6000)
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
	if chunks[0] != "short document" {
		t.Errorf("chunk = %q, want original text", chunks[0])
	}
}

func TestSegmentEmptyText(t *testing.T) {
	chunks := Segment("", 6000)
	if len(chunks) != 1 {
		t.Fatalf("chunks = %d, want 1", len(chunks))
	}
}

func TestSegmentStructuralBoundaries(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 20; i++ {
		sb.WriteString("Section ")
		sb.WriteString(strings.Repeat("x", 10))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("a", 180))
		sb.WriteString("\n1. Numbered clause follows here\n")
	}
	text := sb.String()

	chunks := Segment(text, 500)
	if len(chunks) < 2 {
		t.Fatalf("chunks = %d, want multiple", len(chunks))
	}

	limit := int(float64(500) * 1.5)
	for i, c := range chunks {
		if len(c) > limit {
			t.Errorf("chunk %d length = %d, exceeds hard limit %d", i, len(c), limit)
		}
	}
}

func TestSegmentParagraphFallback(t *testing.T) {
	paragraphs := make([]string, 10)
	for i := range paragraphs {
		paragraphs[i] = strings.Repeat("word ", 40)
	}
	text := strings.Join(paragraphs, "\n\n")

	chunks := Segment(text, 600)
	if len(chunks) < 2 {
		t.Fatalf("chunks = %d, want multiple", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 900 {
			t.Errorf("chunk %d length = %d, exceeds hard limit", i, len(c))
		}
	}
}

func TestSegmentPathologicalInput(t *testing.T) {
	// No paragraph breaks, no sentences, no structure at all.
	text := strings.Repeat("x", 5000)

	chunks := Segment(text, 1000)
	limit := 1500
	total := 0
	for i, c := range chunks {
		if len(c) > limit {
			t.Errorf("chunk %d length = %d, exceeds hard limit %d", i, len(c), limit)
		}
		total += len(c)
	}
	if total != len(text) {
		t.Errorf("total chunk length = %d, want %d (no content lost)", total, len(text))
	}
}
