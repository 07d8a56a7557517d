package assessment

import (
	"strings"

	"ai-compliance-be/pkg/compliance"
)

// MergeChunkResults folds per-evidence-chunk verdicts into one record per
// requirement. Status escalates to the most severe value seen across
// chunks: one strong negative signal anywhere in the evidence corpus must
// not be diluted by a positive signal found elsewhere. Distinct evidence
// quotes are concatenated with " | ". Requirements with no verdict at all
// stay NOT_ADDRESSED.
func MergeChunkResults(requirements []compliance.RequirementRecord, chunkResults [][]compliance.AssessmentRecord) []compliance.AssessmentRecord {
	merged := make(map[string]*compliance.AssessmentRecord, len(requirements))
	order := make([]string, 0, len(requirements))

	for _, req := range requirements {
		if _, ok := merged[req.RequirementID]; ok {
			continue
		}
		merged[req.RequirementID] = &compliance.AssessmentRecord{
			RequirementID: req.RequirementID,
			Status:        compliance.StatusNotAddressed,
		}
		order = append(order, req.RequirementID)
	}

	for _, results := range chunkResults {
		for _, rec := range results {
			current, ok := merged[rec.RequirementID]
			if !ok {
				// Verdict for a requirement we never asked about;
				// hallucinated id, drop it.
				continue
			}
			mergeRecord(current, rec)
		}
	}

	out := make([]compliance.AssessmentRecord, 0, len(order))
	for _, id := range order {
		out = append(out, *merged[id])
	}
	return out
}

func mergeRecord(current *compliance.AssessmentRecord, next compliance.AssessmentRecord) {
	if next.Status.Severity() > current.Status.Severity() {
		// The more severe verdict carries its explanation with it.
		current.Status = next.Status
		current.GapDescription = next.GapDescription
		current.Recommendation = next.Recommendation
		current.ConfidenceScore = next.ConfidenceScore
	} else if current.GapDescription == "" && next.GapDescription != "" {
		current.GapDescription = next.GapDescription
		current.Recommendation = next.Recommendation
	}

	current.EvidenceText = appendEvidence(current.EvidenceText, next.EvidenceText)
	if next.ConfidenceScore > current.ConfidenceScore && next.Status == current.Status {
		current.ConfidenceScore = next.ConfidenceScore
	}
}

// appendEvidence joins distinct quotes with " | ", skipping duplicates
// already present verbatim.
func appendEvidence(existing, quote string) string {
	quote = strings.TrimSpace(quote)
	if quote == "" {
		return existing
	}
	if existing == "" {
		return quote
	}
	for _, part := range strings.Split(existing, " | ") {
		if part == quote {
			return existing
		}
	}
	return existing + " | " + quote
}
