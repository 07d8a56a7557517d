package extraction

import (
	"strings"
	"testing"

	"ai-compliance-be/pkg/compliance"
)

func TestAggregateExactIDDuplicate(t *testing.T) {
	short := compliance.RequirementRecord{
		RequirementID: "Article_5",
		Title:         "Prohibited Practices",
		Description:   "Short description",
	}
	long := compliance.RequirementRecord{
		RequirementID: "Article_5",
		Title:         "Prohibited Practices",
		Description:   strings.Repeat("A much longer and more complete description. ", 3),
	}

	result := Aggregate(
		[]compliance.RequirementRecord{short},
		[]compliance.RequirementRecord{long},
	)
	if len(result) != 1 {
		t.Fatalf("len = %d, want 1", len(result))
	}
	if result[0].Description != long.Description {
		t.Error("longer description should survive an exact-id collision")
	}

	// Order of arrival must not matter.
	result = Aggregate(
		[]compliance.RequirementRecord{long},
		[]compliance.RequirementRecord{short},
	)
	if len(result) != 1 || result[0].Description != long.Description {
		t.Error("longer description should survive regardless of arrival order")
	}
}

func TestAggregateTitleContainment(t *testing.T) {
	a := compliance.RequirementRecord{
		RequirementID: "R1",
		Title:         "Risk Management",
		Description:   "short",
	}
	b := compliance.RequirementRecord{
		RequirementID: "R2",
		Title:         "Risk Management System Requirements For Providers",
		Description:   "a considerably longer description of the same obligation",
	}

	result := Aggregate([]compliance.RequirementRecord{a}, []compliance.RequirementRecord{b})
	if len(result) != 1 {
		t.Fatalf("len = %d, want 1 (title containment dedup)", len(result))
	}
	if result[0].RequirementID != "R2" {
		t.Errorf("kept id = %s, want R2 (longer description wins)", result[0].RequirementID)
	}
}

func TestAggregateTitleLengthSimilarity(t *testing.T) {
	a := compliance.RequirementRecord{
		RequirementID: "R1",
		Title:         "Data governance obligations",
		Description:   "desc one",
	}
	// Different words, nearly identical title length.
	b := compliance.RequirementRecord{
		RequirementID: "R2",
		Title:         "Human oversight obligations1",
		Description:   "d",
	}

	result := Aggregate([]compliance.RequirementRecord{a, b})
	if len(result) != 1 {
		t.Fatalf("len = %d, want 1 (length-similarity dedup)", len(result))
	}
	if result[0].RequirementID != "R1" {
		t.Errorf("kept id = %s, want R1 (shorter description loses)", result[0].RequirementID)
	}
}

func TestAggregateDistinctRequirementsKept(t *testing.T) {
	lists := [][]compliance.RequirementRecord{
		{
			{RequirementID: "Article_5", Title: "Prohibited Practices Summary Overview", Description: "d1"},
		},
		{
			{RequirementID: "Article_9", Title: "Risk", Description: "d2"},
		},
	}

	result := Aggregate(lists...)
	if len(result) != 2 {
		t.Fatalf("len = %d, want 2 distinct requirements", len(result))
	}
}

func TestAggregateEmptyIDsOnlyTitleDedup(t *testing.T) {
	a := compliance.RequirementRecord{Title: "Transparency Obligations For Deployers Of AI", Description: "d1"}
	b := compliance.RequirementRecord{Title: "Record Keeping", Description: "d2"}

	result := Aggregate([]compliance.RequirementRecord{a, b})
	if len(result) != 2 {
		t.Fatalf("len = %d, want 2 (empty ids never collide by id)", len(result))
	}
}

func TestAggregateIdempotent(t *testing.T) {
	list := []compliance.RequirementRecord{
		{RequirementID: "Article_5", Title: "Prohibited Practices Of Providers Here", Description: "d1"},
		{RequirementID: "Article_13", Title: "Transparency", Description: "d2"},
	}

	once := Aggregate(list)
	twice := Aggregate(once)
	if len(once) != len(twice) {
		t.Errorf("aggregation is not idempotent: %d then %d", len(once), len(twice))
	}
}
