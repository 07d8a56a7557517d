package assessment

import (
	"encoding/json"
	"strconv"
	"strings"

	"ai-compliance-be/pkg/compliance"
	"ai-compliance-be/pkg/extraction"
)

// ParseKind tags the outcome of parsing an LLM assessment response.
type ParseKind int

const (
	ParseOK ParseKind = iota
	ParseEmpty
	ParseMalformed
)

// ParseResult is the tagged union returned by ParseAssessments.
type ParseResult struct {
	Kind        ParseKind
	Assessments []compliance.AssessmentRecord
}

type wireAssessment struct {
	RequirementID  string `json:"requirement_id"`
	Status         string `json:"status"`
	Evidence       string `json:"evidence"`
	GapDescription string `json:"gap_description"`
	Recommendation string `json:"recommendation"`
	Confidence     any    `json:"confidence"`
}

type wireVerdicts struct {
	Assessments *[]wireAssessment `json:"assessments"`
}

// ParseAssessments decodes the assessments list embedded in a raw model
// response. Statuses outside the closed set degrade to NOT_ADDRESSED and
// confidence is normalized to [0,1] here so no other scale leaks
// downstream.
func ParseAssessments(raw string) ParseResult {
	jsonStr := extraction.ExtractJSON(raw)
	if jsonStr == "" {
		return ParseResult{Kind: ParseMalformed}
	}

	var payload wireVerdicts
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return ParseResult{Kind: ParseMalformed}
	}
	if payload.Assessments == nil {
		return ParseResult{Kind: ParseMalformed}
	}
	if len(*payload.Assessments) == 0 {
		return ParseResult{Kind: ParseEmpty}
	}

	records := make([]compliance.AssessmentRecord, 0, len(*payload.Assessments))
	for _, w := range *payload.Assessments {
		status := compliance.Status(strings.ToUpper(strings.TrimSpace(w.Status)))
		if !status.IsValid() {
			status = compliance.StatusNotAddressed
		}
		records = append(records, compliance.AssessmentRecord{
			RequirementID:   strings.TrimSpace(w.RequirementID),
			Status:          status,
			EvidenceText:    strings.TrimSpace(w.Evidence),
			GapDescription:  strings.TrimSpace(w.GapDescription),
			Recommendation:  strings.TrimSpace(w.Recommendation),
			ConfidenceScore: compliance.NormalizeConfidence(coerceConfidence(w.Confidence)),
		})
	}
	return ParseResult{Kind: ParseOK, Assessments: records}
}

func coerceConfidence(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}
