package assessment

import (
	"math"

	"ai-compliance-be/pkg/compliance"
)

// AggregateScores folds per-requirement assessments into the session
// summary. The weighting is a business rule consumed by reports and must
// stay exactly: compliant counts 100, partial counts 50, everything else
// counts 0, divided by total and rounded to one decimal place. Empty
// input scores 0, never NaN.
func AggregateScores(assessments []compliance.AssessmentRecord) compliance.ScoreSummary {
	summary := compliance.ScoreSummary{Total: len(assessments)}
	if summary.Total == 0 {
		return summary
	}

	for _, a := range assessments {
		switch a.Status {
		case compliance.StatusCompliant:
			summary.Compliant++
		case compliance.StatusPartial:
			summary.Partial++
		case compliance.StatusNonCompliant:
			summary.NonCompliant++
		default:
			summary.NotAddressed++
		}
	}

	raw := float64(summary.Compliant*100+summary.Partial*50) / float64(summary.Total)
	summary.OverallScore = math.Round(raw*10) / 10
	return summary
}
