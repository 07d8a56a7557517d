package compliance

import "testing"

func TestMoreSevere(t *testing.T) {
	tests := []struct {
		name string
		a    Status
		b    Status
		want Status
	}{
		{"non-compliant beats compliant", StatusCompliant, StatusNonCompliant, StatusNonCompliant},
		{"partial beats compliant", StatusPartial, StatusCompliant, StatusPartial},
		{"compliant beats not addressed", StatusNotAddressed, StatusCompliant, StatusCompliant},
		{"equal keeps first", StatusPartial, StatusPartial, StatusPartial},
		{"unknown never wins", StatusCompliant, Status("GARBAGE"), StatusCompliant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoreSevere(tt.a, tt.b); got != tt.want {
				t.Errorf("MoreSevere(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusCompliant, StatusPartial, StatusNonCompliant, StatusNotAddressed} {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("MAYBE").IsValid() {
		t.Error("out-of-set status should be invalid")
	}
}

func TestNormalizeConfidence(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already normalized", 0.85, 0.85},
		{"percentage scale", 85, 0.85},
		{"negative clamps to zero", -0.3, 0},
		{"over one hundred clamps to one", 250, 1},
		{"boundary one", 1, 1},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeConfidence(tt.in); got != tt.want {
				t.Errorf("NormalizeConfidence(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeCriticality(t *testing.T) {
	tests := []struct {
		raw  string
		want Criticality
	}{
		{"CRITICAL", CriticalityCritical},
		{"LOW", CriticalityLow},
		{"urgent", CriticalityMedium},
		{"", CriticalityMedium},
	}

	for _, tt := range tests {
		if got := NormalizeCriticality(tt.raw); got != tt.want {
			t.Errorf("NormalizeCriticality(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestCriticalityRankOrdering(t *testing.T) {
	if !(CriticalityLow.Rank() < CriticalityMedium.Rank() &&
		CriticalityMedium.Rank() < CriticalityHigh.Rank() &&
		CriticalityHigh.Rank() < CriticalityCritical.Rank()) {
		t.Error("criticality ranks are not strictly ordered")
	}
}
