package compliance

// Status is the compliance verdict for a single requirement.
type Status string

const (
	StatusCompliant    Status = "COMPLIANT"
	StatusPartial      Status = "PARTIAL"
	StatusNonCompliant Status = "NON_COMPLIANT"
	StatusNotAddressed Status = "NOT_ADDRESSED"
)

// statusSeverity orders statuses for escalation when merging verdicts
// across evidence chunks. A negative finding anywhere outweighs a
// positive finding elsewhere.
var statusSeverity = map[Status]int{
	StatusNotAddressed: 0,
	StatusCompliant:    1,
	StatusPartial:      2,
	StatusNonCompliant: 3,
}

// Severity returns the escalation rank of a status. Unknown values rank
// lowest so a malformed LLM verdict never overrides a real one.
func (s Status) Severity() int {
	return statusSeverity[s]
}

// IsValid reports whether s is one of the four closed statuses.
func (s Status) IsValid() bool {
	_, ok := statusSeverity[s]
	return ok
}

// MoreSevere returns the more severe of two statuses.
func MoreSevere(a, b Status) Status {
	if b.Severity() > a.Severity() {
		return b
	}
	return a
}

// Criticality is the ordered severity label on a requirement.
type Criticality string

const (
	CriticalityLow      Criticality = "LOW"
	CriticalityMedium   Criticality = "MEDIUM"
	CriticalityHigh     Criticality = "HIGH"
	CriticalityCritical Criticality = "CRITICAL"
)

var criticalityRank = map[Criticality]int{
	CriticalityLow:      0,
	CriticalityMedium:   1,
	CriticalityHigh:     2,
	CriticalityCritical: 3,
}

// Rank returns the ordering of a criticality (LOW < MEDIUM < HIGH < CRITICAL).
func (c Criticality) Rank() int {
	return criticalityRank[c]
}

// NormalizeCriticality maps any out-of-set value to MEDIUM rather than
// rejecting the record. LLM output is error-tolerant by contract.
func NormalizeCriticality(raw string) Criticality {
	c := Criticality(raw)
	if _, ok := criticalityRank[c]; ok {
		return c
	}
	return CriticalityMedium
}

// Framework identifies the regulatory framework a document belongs to.
type Framework string

const (
	FrameworkEUAIAct        Framework = "eu_ai_act"
	FrameworkISO42001       Framework = "iso_42001"
	FrameworkUSAIGovernance Framework = "us_ai_governance"
)

// RequirementRecord is one extracted regulatory obligation as emitted by
// the extraction pipeline, before persistence.
type RequirementRecord struct {
	RequirementID    string      `json:"requirement_id"`
	Title            string      `json:"title"`
	Category         string      `json:"category"`
	Description      string      `json:"description"`
	PageNumber       *int        `json:"page_number,omitempty"`
	SectionReference string      `json:"section_reference,omitempty"`
	Criticality      Criticality `json:"criticality"`
}

// AssessmentRecord is the pipeline verdict for one requirement against
// one evidence corpus. ConfidenceScore is always in [0, 1].
type AssessmentRecord struct {
	RequirementID   string  `json:"requirement_id"`
	Status          Status  `json:"status"`
	EvidenceText    string  `json:"evidence"`
	GapDescription  string  `json:"gap_description"`
	Recommendation  string  `json:"recommendation"`
	ConfidenceScore float64 `json:"confidence"`
}

// ScoreSummary aggregates per-requirement assessments into the
// session-level weighted score and status counts.
type ScoreSummary struct {
	Total        int
	Compliant    int
	Partial      int
	NonCompliant int
	NotAddressed int
	OverallScore float64
}

// NormalizeConfidence clamps a confidence value to [0, 1]. Call sites
// historically mix 0-1 and 0-100 scales; anything above 1 is treated as
// a percentage.
func NormalizeConfidence(v float64) float64 {
	if v > 1 {
		v = v / 100
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
