package assessment

import (
	"testing"

	"ai-compliance-be/pkg/compliance"
)

func TestParseAssessments(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKind  ParseKind
		wantCount int
	}{
		{
			name:      "valid verdicts",
			raw:       `{"assessments": [{"requirement_id": "Article_9", "status": "COMPLIANT", "evidence": "risk register maintained", "confidence": 0.9}]}`,
			wantKind:  ParseOK,
			wantCount: 1,
		},
		{
			name: "fenced response",
			raw: "```json\n" +
				`{"assessments": [{"requirement_id": "R1", "status": "PARTIAL", "gap_description": "missing reviews", "recommendation": "schedule reviews", "confidence": 0.6}]}` +
				"\n```",
			wantKind:  ParseOK,
			wantCount: 1,
		},
		{
			name:     "explicitly empty",
			raw:      `{"assessments": []}`,
			wantKind: ParseEmpty,
		},
		{
			name:     "missing assessments key",
			raw:      `{"verdicts": []}`,
			wantKind: ParseMalformed,
		},
		{
			name:     "no JSON",
			raw:      "The document looks compliant overall.",
			wantKind: ParseMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseAssessments(tt.raw)
			if result.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", result.Kind, tt.wantKind)
			}
			if len(result.Assessments) != tt.wantCount {
				t.Errorf("count = %d, want %d", len(result.Assessments), tt.wantCount)
			}
		})
	}
}

func TestParseAssessmentsNormalization(t *testing.T) {
	raw := `{"assessments": [
		{"requirement_id": "R1", "status": "compliant", "confidence": 85},
		{"requirement_id": "R2", "status": "MOSTLY_FINE", "confidence": "0.4"},
		{"requirement_id": "R3", "status": "NON_COMPLIANT", "confidence": "junk"}
	]}`

	result := ParseAssessments(raw)
	if result.Kind != ParseOK {
		t.Fatalf("Kind = %v, want ParseOK", result.Kind)
	}

	a := result.Assessments
	if a[0].Status != compliance.StatusCompliant {
		t.Errorf("lowercase status = %s, want COMPLIANT", a[0].Status)
	}
	if a[0].ConfidenceScore != 0.85 {
		t.Errorf("percentage confidence = %v, want 0.85", a[0].ConfidenceScore)
	}
	if a[1].Status != compliance.StatusNotAddressed {
		t.Errorf("unknown status = %s, want NOT_ADDRESSED", a[1].Status)
	}
	if a[1].ConfidenceScore != 0.4 {
		t.Errorf("string confidence = %v, want 0.4", a[1].ConfidenceScore)
	}
	if a[2].ConfidenceScore != 0 {
		t.Errorf("junk confidence = %v, want 0", a[2].ConfidenceScore)
	}
}
