package extraction

import "ai-compliance-be/pkg/compliance"

// MockRequirements returns a small deterministic requirement set per
// framework so the pipeline stays exercisable without an LLM credential.
// Callers may request mock extraction explicitly; this is a design
// contract, not a test shim.
func MockRequirements(framework compliance.Framework) []compliance.RequirementRecord {
	if recs, ok := mockData[framework]; ok {
		return cloneRecords(recs)
	}
	return cloneRecords(mockData[compliance.FrameworkEUAIAct])
}

func cloneRecords(recs []compliance.RequirementRecord) []compliance.RequirementRecord {
	out := make([]compliance.RequirementRecord, len(recs))
	copy(out, recs)
	return out
}

func intPtr(n int) *int { return &n }

var mockData = map[compliance.Framework][]compliance.RequirementRecord{
	compliance.FrameworkEUAIAct: {
		{
			RequirementID:    "Article_5.1.a",
			Title:            "Prohibition of subliminal techniques",
			Category:         "Prohibited Practices",
			Description:      "AI systems that deploy subliminal techniques beyond a person's consciousness to materially distort their behaviour are prohibited.",
			PageNumber:       intPtr(23),
			SectionReference: "Article 5(1)(a)",
			Criticality:      compliance.CriticalityCritical,
		},
		{
			RequirementID:    "Article_6.1",
			Title:            "High-risk AI system classification",
			Category:         "High-Risk Systems",
			Description:      "AI systems listed in Annex III shall be considered high-risk AI systems.",
			PageNumber:       intPtr(25),
			SectionReference: "Article 6(1)",
			Criticality:      compliance.CriticalityHigh,
		},
	},
	compliance.FrameworkISO42001: {
		{
			RequirementID:    "Clause_4.1",
			Title:            "Understanding the organization and its context",
			Category:         "Context",
			Description:      "The organization shall determine external and internal issues relevant to its purpose and strategic direction.",
			PageNumber:       intPtr(12),
			SectionReference: "4.1",
			Criticality:      compliance.CriticalityHigh,
		},
		{
			RequirementID:    "Clause_5.1",
			Title:            "Leadership and commitment",
			Category:         "Leadership",
			Description:      "Top management shall demonstrate leadership and commitment with respect to the AI management system.",
			PageNumber:       intPtr(16),
			SectionReference: "5.1",
			Criticality:      compliance.CriticalityHigh,
		},
	},
	compliance.FrameworkUSAIGovernance: {
		{
			RequirementID:    "GOVERN-1.1",
			Title:            "AI governance structure",
			Category:         "Governance",
			Description:      "Policies, processes, procedures, and practices across the organization related to the mapping, measuring, and managing of AI risks are in place.",
			PageNumber:       intPtr(8),
			SectionReference: "GOVERN-1.1",
			Criticality:      compliance.CriticalityHigh,
		},
		{
			RequirementID:    "MAP-1.1",
			Title:            "AI system identification",
			Category:         "Risk Management",
			Description:      "Context and business value of AI systems are documented.",
			PageNumber:       intPtr(12),
			SectionReference: "MAP-1.1",
			Criticality:      compliance.CriticalityMedium,
		},
	},
}
