package extraction

import (
	"testing"

	"ai-compliance-be/pkg/compliance"
)

func TestParseRequirements(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKind  ParseKind
		wantCount int
	}{
		{
			name:      "plain JSON",
			raw:       `{"requirements": [{"requirement_id": "Article_5", "title": "Prohibited Practices", "description": "No subliminal techniques", "criticality": "CRITICAL"}]}`,
			wantKind:  ParseOK,
			wantCount: 1,
		},
		{
			name: "code fenced JSON",
			raw: "```json\n" +
				`{"requirements": [{"requirement_id": "A.4.2", "title": "AI Policy", "description": "Establish policy", "criticality": "HIGH"}]}` +
				"\n```",
			wantKind:  ParseOK,
			wantCount: 1,
		},
		{
			name:      "prose wrapped JSON",
			raw:       `Here are the requirements I found: {"requirements": [{"requirement_id": "R1", "title": "T", "description": "D", "criticality": "LOW"}]} Hope that helps!`,
			wantKind:  ParseOK,
			wantCount: 1,
		},
		{
			name:     "explicitly empty list",
			raw:      `{"requirements": []}`,
			wantKind: ParseEmpty,
		},
		{
			name:     "missing requirements key",
			raw:      `{"data": []}`,
			wantKind: ParseMalformed,
		},
		{
			name:     "no JSON at all",
			raw:      "I could not find any requirements in this text.",
			wantKind: ParseMalformed,
		},
		{
			name:     "invalid JSON",
			raw:      `{"requirements": [{"requirement_id": }`,
			wantKind: ParseMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseRequirements(tt.raw)
			if result.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", result.Kind, tt.wantKind)
			}
			if len(result.Requirements) != tt.wantCount {
				t.Errorf("count = %d, want %d", len(result.Requirements), tt.wantCount)
			}
		})
	}
}

func TestParseRequirementsFieldCoercion(t *testing.T) {
	raw := `{"requirements": [
		{"requirement_id": " Article_9 ", "title": "Risk Management", "description": "desc", "page_number": 12, "criticality": "high"},
		{"requirement_id": "Article_10", "title": "Data Governance", "description": "desc", "page_number": "34", "criticality": "nonsense"},
		{"requirement_id": "Article_13", "title": "Transparency", "description": "desc", "page_number": "n/a", "criticality": ""}
	]}`

	result := ParseRequirements(raw)
	if result.Kind != ParseOK {
		t.Fatalf("Kind = %v, want ParseOK", result.Kind)
	}

	r := result.Requirements
	if r[0].RequirementID != "Article_9" {
		t.Errorf("RequirementID = %q, want trimmed", r[0].RequirementID)
	}
	if r[0].PageNumber == nil || *r[0].PageNumber != 12 {
		t.Errorf("numeric page_number not coerced: %v", r[0].PageNumber)
	}
	if r[0].Criticality != compliance.CriticalityHigh {
		t.Errorf("criticality = %q, want HIGH (case normalized)", r[0].Criticality)
	}
	if r[1].PageNumber == nil || *r[1].PageNumber != 34 {
		t.Errorf("string page_number not coerced: %v", r[1].PageNumber)
	}
	if r[1].Criticality != compliance.CriticalityMedium {
		t.Errorf("unknown criticality = %q, want MEDIUM default", r[1].Criticality)
	}
	if r[2].PageNumber != nil {
		t.Errorf("junk page_number should be nil, got %v", r[2].PageNumber)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"wrapped object", `noise {"a": 1} noise`, `{"a": 1}`},
		{"no object", "nothing here", ""},
		{"reversed braces", "} {", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.raw); got != tt.want {
				t.Errorf("ExtractJSON = %q, want %q", got, tt.want)
			}
		})
	}
}
