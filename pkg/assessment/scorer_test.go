package assessment

import (
	"testing"

	"ai-compliance-be/pkg/compliance"
)

func TestAggregateScores(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []compliance.Status
		wantScore float64
	}{
		{
			name: "mixed statuses",
			statuses: []compliance.Status{
				compliance.StatusCompliant, compliance.StatusCompliant, compliance.StatusCompliant,
				compliance.StatusCompliant, compliance.StatusCompliant, compliance.StatusCompliant,
				compliance.StatusPartial, compliance.StatusPartial, compliance.StatusPartial,
				compliance.StatusNonCompliant,
			},
			wantScore: 75.0,
		},
		{
			name:      "all compliant",
			statuses:  []compliance.Status{compliance.StatusCompliant, compliance.StatusCompliant},
			wantScore: 100.0,
		},
		{
			name:      "all non-compliant",
			statuses:  []compliance.Status{compliance.StatusNonCompliant, compliance.StatusNotAddressed},
			wantScore: 0.0,
		},
		{
			name:      "rounded to one decimal",
			statuses:  []compliance.Status{compliance.StatusCompliant, compliance.StatusNonCompliant, compliance.StatusNotAddressed},
			wantScore: 33.3,
		},
		{
			name:      "empty input",
			statuses:  nil,
			wantScore: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessments := make([]compliance.AssessmentRecord, len(tt.statuses))
			for i, s := range tt.statuses {
				assessments[i] = compliance.AssessmentRecord{Status: s}
			}

			summary := AggregateScores(assessments)
			if summary.OverallScore != tt.wantScore {
				t.Errorf("OverallScore = %v, want %v", summary.OverallScore, tt.wantScore)
			}
			if summary.Total != len(tt.statuses) {
				t.Errorf("Total = %d, want %d", summary.Total, len(tt.statuses))
			}
		})
	}
}

func TestAggregateScoresCounts(t *testing.T) {
	assessments := []compliance.AssessmentRecord{
		{Status: compliance.StatusCompliant},
		{Status: compliance.StatusPartial},
		{Status: compliance.StatusNonCompliant},
		{Status: compliance.StatusNotAddressed},
		{Status: compliance.Status("GARBAGE")},
	}

	summary := AggregateScores(assessments)
	if summary.Compliant != 1 || summary.Partial != 1 || summary.NonCompliant != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", summary.Compliant, summary.Partial, summary.NonCompliant)
	}
	if summary.NotAddressed != 2 {
		t.Errorf("NotAddressed = %d, want 2 (unknown status counts as not addressed)", summary.NotAddressed)
	}
}
