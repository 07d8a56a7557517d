package assessment

import (
	"testing"

	"ai-compliance-be/pkg/compliance"
)

func TestMergeChunkResultsEscalation(t *testing.T) {
	requirements := []compliance.RequirementRecord{
		{RequirementID: "Article_9", Title: "Risk Management"},
	}
	chunkResults := [][]compliance.AssessmentRecord{
		{
			{RequirementID: "Article_9", Status: compliance.StatusCompliant, EvidenceText: "risk register exists", ConfidenceScore: 0.9},
		},
		{
			{RequirementID: "Article_9", Status: compliance.StatusNonCompliant, EvidenceText: "no mitigation plan", GapDescription: "mitigation missing", Recommendation: "define mitigation plan", ConfidenceScore: 0.8},
		},
	}

	merged := MergeChunkResults(requirements, chunkResults)
	if len(merged) != 1 {
		t.Fatalf("len = %d, want 1", len(merged))
	}

	got := merged[0]
	if got.Status != compliance.StatusNonCompliant {
		t.Errorf("Status = %s, want NON_COMPLIANT (escalation)", got.Status)
	}
	if got.GapDescription != "mitigation missing" {
		t.Errorf("GapDescription = %q, want the escalated verdict's gap", got.GapDescription)
	}
	if got.Recommendation != "define mitigation plan" {
		t.Errorf("Recommendation = %q, want the escalated verdict's recommendation", got.Recommendation)
	}
	if got.EvidenceText != "risk register exists | no mitigation plan" {
		t.Errorf("EvidenceText = %q, want both quotes joined", got.EvidenceText)
	}
}

func TestMergeChunkResultsDuplicateEvidenceSkipped(t *testing.T) {
	requirements := []compliance.RequirementRecord{{RequirementID: "R1"}}
	chunkResults := [][]compliance.AssessmentRecord{
		{{RequirementID: "R1", Status: compliance.StatusCompliant, EvidenceText: "same quote"}},
		{{RequirementID: "R1", Status: compliance.StatusCompliant, EvidenceText: "same quote"}},
	}

	merged := MergeChunkResults(requirements, chunkResults)
	if merged[0].EvidenceText != "same quote" {
		t.Errorf("EvidenceText = %q, duplicate quote should not repeat", merged[0].EvidenceText)
	}
}

func TestMergeChunkResultsHallucinatedIDDropped(t *testing.T) {
	requirements := []compliance.RequirementRecord{{RequirementID: "R1"}}
	chunkResults := [][]compliance.AssessmentRecord{
		{{RequirementID: "R99", Status: compliance.StatusNonCompliant}},
	}

	merged := MergeChunkResults(requirements, chunkResults)
	if len(merged) != 1 {
		t.Fatalf("len = %d, want 1", len(merged))
	}
	if merged[0].RequirementID != "R1" {
		t.Errorf("RequirementID = %s, want R1", merged[0].RequirementID)
	}
	if merged[0].Status != compliance.StatusNotAddressed {
		t.Errorf("Status = %s, want NOT_ADDRESSED (no valid verdict)", merged[0].Status)
	}
}

func TestMergeChunkResultsNoVerdict(t *testing.T) {
	requirements := []compliance.RequirementRecord{
		{RequirementID: "R1"},
		{RequirementID: "R2"},
	}
	chunkResults := [][]compliance.AssessmentRecord{
		{{RequirementID: "R1", Status: compliance.StatusCompliant, EvidenceText: "covered"}},
	}

	merged := MergeChunkResults(requirements, chunkResults)
	if len(merged) != 2 {
		t.Fatalf("len = %d, want one record per requirement", len(merged))
	}
	if merged[1].RequirementID != "R2" || merged[1].Status != compliance.StatusNotAddressed {
		t.Errorf("unassessed requirement should stay NOT_ADDRESSED, got %s/%s", merged[1].RequirementID, merged[1].Status)
	}
}

func TestMergeChunkResultsConfidenceSameStatus(t *testing.T) {
	requirements := []compliance.RequirementRecord{{RequirementID: "R1"}}
	chunkResults := [][]compliance.AssessmentRecord{
		{{RequirementID: "R1", Status: compliance.StatusPartial, ConfidenceScore: 0.5}},
		{{RequirementID: "R1", Status: compliance.StatusPartial, ConfidenceScore: 0.8}},
	}

	merged := MergeChunkResults(requirements, chunkResults)
	if merged[0].ConfidenceScore != 0.8 {
		t.Errorf("ConfidenceScore = %v, want the higher confidence at equal status", merged[0].ConfidenceScore)
	}
}
