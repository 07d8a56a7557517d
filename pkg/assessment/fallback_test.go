package assessment

import (
	"testing"

	"ai-compliance-be/pkg/compliance"
)

func TestKeywordAssessCompliant(t *testing.T) {
	evidence := "We maintain a risk assessment process. Human oversight is enforced for all deployments."
	requirements := []compliance.RequirementRecord{
		{
			RequirementID: "Article_9",
			Title:         "Risk Management System",
			Description:   "Providers shall establish a risk assessment process with human oversight.",
		},
	}

	records := KeywordAssess(evidence, requirements)
	if len(records) != 1 {
		t.Fatalf("len = %d, want 1", len(records))
	}

	got := records[0]
	if got.Status != compliance.StatusCompliant {
		t.Errorf("Status = %s, want COMPLIANT (all concepts matched)", got.Status)
	}
	if got.Recommendation != "Continue current practices" {
		t.Errorf("Recommendation = %q", got.Recommendation)
	}
	if got.ConfidenceScore != FallbackConfidence {
		t.Errorf("ConfidenceScore = %v, want %v", got.ConfidenceScore, FallbackConfidence)
	}
	if got.EvidenceText == "" {
		t.Error("matched sentences should be quoted as evidence")
	}
}

func TestKeywordAssessPartial(t *testing.T) {
	// One of two vocabulary concepts present: below the 70% bar.
	evidence := "Our team performs bias testing on every model release."
	requirements := []compliance.RequirementRecord{
		{
			RequirementID: "R1",
			Title:         "Fairness Controls",
			Description:   "The organization shall perform bias testing and maintain human oversight of automated decisions.",
		},
	}

	records := KeywordAssess(evidence, requirements)
	got := records[0]
	if got.Status != compliance.StatusPartial {
		t.Fatalf("Status = %s, want PARTIAL", got.Status)
	}
	if got.GapDescription == "" || got.Recommendation == "" {
		t.Error("partial verdict should carry a gap and a recommendation")
	}
}

func TestKeywordAssessNotAddressed(t *testing.T) {
	evidence := "This document covers office seating arrangements."
	requirements := []compliance.RequirementRecord{
		{
			RequirementID: "R1",
			Title:         "Incident Reporting",
			Description:   "Serious incidents shall be reported through documentation and monitoring channels.",
		},
	}

	records := KeywordAssess(evidence, requirements)
	got := records[0]
	if got.Status != compliance.StatusNotAddressed {
		t.Fatalf("Status = %s, want NOT_ADDRESSED", got.Status)
	}
	if got.EvidenceText != "No evidence found in the document" {
		t.Errorf("EvidenceText = %q", got.EvidenceText)
	}
	if got.GapDescription != "This requirement is not addressed in the provided documentation" {
		t.Errorf("GapDescription = %q", got.GapDescription)
	}
	if got.Recommendation != "Implement policies and procedures to address Incident Reporting" {
		t.Errorf("Recommendation = %q", got.Recommendation)
	}
}

func TestKeywordAssessEmptyDescription(t *testing.T) {
	records := KeywordAssess("any evidence text", []compliance.RequirementRecord{
		{RequirementID: "R1", Title: "Empty", Description: ""},
	})
	if records[0].Status != compliance.StatusNotAddressed {
		t.Errorf("Status = %s, want NOT_ADDRESSED (no concepts means no compliant verdict)", records[0].Status)
	}
}

func TestKeywordAssessNeverNonCompliant(t *testing.T) {
	evidences := []string{
		"",
		"completely unrelated content",
		"risk assessment and human oversight and bias testing everywhere",
	}
	requirements := []compliance.RequirementRecord{
		{RequirementID: "R1", Title: "T1", Description: "risk assessment with human oversight"},
		{RequirementID: "R2", Title: "T2", Description: "unrelatable gibberish wording"},
	}

	for _, evidence := range evidences {
		for _, rec := range KeywordAssess(evidence, requirements) {
			if rec.Status == compliance.StatusNonCompliant {
				t.Errorf("keyword path produced NON_COMPLIANT for %s", rec.RequirementID)
			}
		}
	}
}
