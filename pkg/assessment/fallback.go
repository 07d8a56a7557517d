package assessment

import (
	"fmt"
	"strings"

	"ai-compliance-be/pkg/compliance"
)

// FallbackConfidence is the fixed confidence attached to every
// keyword-derived verdict. Deliberately lower than typical LLM
// confidences so downstream consumers can tell the paths apart.
const FallbackConfidence = 0.7

// Fixed vocabulary checked against requirement descriptions before
// resorting to generic word extraction.
var keyTerms = []string{
	"human oversight", "bias testing", "transparency", "risk assessment",
	"data governance", "monitoring", "documentation", "training",
	"approval process", "review", "audit", "compliance", "policy",
	"procedure", "control", "measure", "assessment", "evaluation",
}

// Generic regulatory verbs that carry no signal about the requirement's
// subject matter.
var conceptStoplist = map[string]bool{
	"shall": true, "must": true, "should": true,
	"will": true, "system": true, "systems": true,
}

// KeywordAssess scores requirements against evidence by concept
// matching, used when no LLM is available or the LLM returned nothing
// usable. It never returns NON_COMPLIANT: absence of a concept is
// evidence of silence, not of contradiction, and this path has no means
// to detect contradiction.
func KeywordAssess(evidenceText string, requirements []compliance.RequirementRecord) []compliance.AssessmentRecord {
	evidenceLower := strings.ToLower(evidenceText)
	sentences := strings.Split(evidenceText, ".")

	records := make([]compliance.AssessmentRecord, 0, len(requirements))
	for _, req := range requirements {
		concepts := extractKeyConcepts(req.Description)

		var matches []string
		for _, concept := range concepts {
			if !strings.Contains(evidenceLower, concept) {
				continue
			}
			// Quote the first sentence containing the concept.
			for _, sentence := range sentences {
				if strings.Contains(strings.ToLower(sentence), concept) {
					matches = append(matches, strings.TrimSpace(sentence))
					break
				}
			}
		}

		rec := compliance.AssessmentRecord{
			RequirementID:   req.RequirementID,
			ConfidenceScore: FallbackConfidence,
		}
		switch {
		case len(concepts) > 0 && float64(len(matches)) >= float64(len(concepts))*0.7:
			rec.Status = compliance.StatusCompliant
			rec.EvidenceText = strings.Join(firstN(matches, 2), ". ")
			rec.Recommendation = "Continue current practices"
		case len(matches) > 0:
			rec.Status = compliance.StatusPartial
			rec.EvidenceText = strings.Join(matches, ". ")
			rec.GapDescription = "Some aspects of the requirement are addressed but implementation may be incomplete"
			rec.Recommendation = fmt.Sprintf("Expand implementation to fully address all aspects of %s", req.Title)
		default:
			rec.Status = compliance.StatusNotAddressed
			rec.EvidenceText = "No evidence found in the document"
			rec.GapDescription = "This requirement is not addressed in the provided documentation"
			rec.Recommendation = fmt.Sprintf("Implement policies and procedures to address %s", req.Title)
		}
		records = append(records, rec)
	}

	return records
}

// extractKeyConcepts pulls matchable concepts from a requirement
// description: fixed vocabulary hits first, else the first three content
// words longer than four characters that are not generic regulatory
// verbs.
func extractKeyConcepts(description string) []string {
	descriptionLower := strings.ToLower(description)

	var concepts []string
	for _, term := range keyTerms {
		if strings.Contains(descriptionLower, term) {
			concepts = append(concepts, term)
		}
	}
	if len(concepts) > 0 {
		return concepts
	}

	for _, word := range strings.Fields(descriptionLower) {
		if len(word) > 4 && !conceptStoplist[word] {
			concepts = append(concepts, word)
			if len(concepts) == 3 {
				break
			}
		}
	}
	return concepts
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
