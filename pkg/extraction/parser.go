package extraction

import (
	"encoding/json"
	"strconv"
	"strings"

	"ai-compliance-be/pkg/compliance"
)

// ParseKind tags the outcome of parsing an LLM extraction response.
// Every caller handles all three cases explicitly instead of relying on
// silent fallthrough.
type ParseKind int

const (
	// ParseOK: the response contained a requirements list with at least one entry.
	ParseOK ParseKind = iota
	// ParseEmpty: a well-formed response that explicitly contains zero requirements.
	ParseEmpty
	// ParseMalformed: no JSON object found, invalid JSON, or missing "requirements" key.
	ParseMalformed
)

// ParseResult is the tagged union returned by ParseRequirements.
type ParseResult struct {
	Kind         ParseKind
	Requirements []compliance.RequirementRecord
}

// wireRequirement tolerates the loosely-typed payloads models actually
// produce: page_number may arrive as a number, a numeric string, or junk.
type wireRequirement struct {
	RequirementID    string `json:"requirement_id"`
	Title            string `json:"title"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	PageNumber       any    `json:"page_number"`
	SectionReference string `json:"section_reference"`
	Criticality      string `json:"criticality"`
}

type wireExtraction struct {
	Requirements *[]wireRequirement `json:"requirements"`
}

// ParseRequirements extracts the JSON object embedded in a raw model
// response (models routinely wrap JSON in prose or code fences) and
// decodes the requirements list. Never returns an error: malformed
// output degrades to ParseMalformed.
func ParseRequirements(raw string) ParseResult {
	jsonStr := ExtractJSON(raw)
	if jsonStr == "" {
		return ParseResult{Kind: ParseMalformed}
	}

	var payload wireExtraction
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return ParseResult{Kind: ParseMalformed}
	}
	if payload.Requirements == nil {
		return ParseResult{Kind: ParseMalformed}
	}
	if len(*payload.Requirements) == 0 {
		return ParseResult{Kind: ParseEmpty}
	}

	records := make([]compliance.RequirementRecord, 0, len(*payload.Requirements))
	for _, w := range *payload.Requirements {
		records = append(records, compliance.RequirementRecord{
			RequirementID:    strings.TrimSpace(w.RequirementID),
			Title:            strings.TrimSpace(w.Title),
			Category:         strings.TrimSpace(w.Category),
			Description:      strings.TrimSpace(w.Description),
			PageNumber:       coercePage(w.PageNumber),
			SectionReference: strings.TrimSpace(w.SectionReference),
			Criticality:      compliance.NormalizeCriticality(strings.ToUpper(strings.TrimSpace(w.Criticality))),
		})
	}
	return ParseResult{Kind: ParseOK, Requirements: records}
}

// ExtractJSON locates the first '{' and the last '}' in a raw response
// and returns the substring between them, or "" when no object is found.
func ExtractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}

func coercePage(v any) *int {
	switch n := v.(type) {
	case float64:
		p := int(n)
		return &p
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			p := int(f)
			return &p
		}
	}
	return nil
}
