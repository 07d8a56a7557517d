package assessment

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"ai-compliance-be/pkg/compliance"
	"ai-compliance-be/pkg/llm"
)

// fakeProvider returns a canned response (or error) for every call.
type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) Generate(_ context.Context, _ string, _ ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testRequirements() []compliance.RequirementRecord {
	return []compliance.RequirementRecord{
		{RequirementID: "Article_9", Title: "Risk Management", Description: "A risk assessment process shall be established."},
		{RequirementID: "Article_14", Title: "Human Oversight", Description: "High-risk systems require human oversight measures."},
	}
}

func TestAssessWithProvider(t *testing.T) {
	provider := &fakeProvider{
		response: `{"assessments": [
			{"requirement_id": "Article_9", "status": "COMPLIANT", "evidence": "risk register in place", "confidence": 0.9},
			{"requirement_id": "Article_14", "status": "PARTIAL", "gap_description": "oversight informal", "recommendation": "formalize review", "confidence": 0.6}
		]}`,
	}
	assessor := NewAssessor(provider, discardLogger(), 8000, 0, time.Minute)

	records, method := assessor.Assess(context.Background(), "evidence text", compliance.FrameworkEUAIAct, testRequirements())
	if method != MethodLLM {
		t.Fatalf("method = %s, want %s", method, MethodLLM)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].Status != compliance.StatusCompliant {
		t.Errorf("Article_9 status = %s, want COMPLIANT", records[0].Status)
	}
	if records[1].Status != compliance.StatusPartial {
		t.Errorf("Article_14 status = %s, want PARTIAL", records[1].Status)
	}
}

func TestAssessProviderFailureFallsBack(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	assessor := NewAssessor(provider, discardLogger(), 8000, 0, time.Minute)

	records, method := assessor.Assess(context.Background(), "risk assessment exists", compliance.FrameworkEUAIAct, testRequirements())
	if method != MethodFallback {
		t.Fatalf("method = %s, want %s", method, MethodFallback)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want one verdict per requirement", len(records))
	}
	for _, rec := range records {
		if rec.ConfidenceScore != FallbackConfidence {
			t.Errorf("%s confidence = %v, want %v", rec.RequirementID, rec.ConfidenceScore, FallbackConfidence)
		}
	}
}

func TestAssessMalformedResponsesFallBack(t *testing.T) {
	provider := &fakeProvider{response: "I cannot answer in JSON, sorry."}
	assessor := NewAssessor(provider, discardLogger(), 8000, 0, time.Minute)

	_, method := assessor.Assess(context.Background(), "some evidence", compliance.FrameworkEUAIAct, testRequirements())
	if method != MethodFallback {
		t.Errorf("method = %s, want %s (no usable verdicts)", method, MethodFallback)
	}
}

func TestAssessNilProvider(t *testing.T) {
	assessor := NewAssessor(nil, discardLogger(), 8000, 0, time.Minute)

	records, method := assessor.Assess(context.Background(), "risk assessment evidence", compliance.FrameworkISO42001, testRequirements())
	if method != MethodFallback {
		t.Fatalf("method = %s, want %s", method, MethodFallback)
	}
	if len(records) != 2 {
		t.Errorf("len = %d, want 2", len(records))
	}
}

func TestAssessNoRequirements(t *testing.T) {
	assessor := NewAssessor(&fakeProvider{}, discardLogger(), 8000, 0, time.Minute)

	records, method := assessor.Assess(context.Background(), "evidence", compliance.FrameworkEUAIAct, nil)
	if len(records) != 0 {
		t.Errorf("len = %d, want 0", len(records))
	}
	if method != MethodFallback {
		t.Errorf("method = %s, want %s", method, MethodFallback)
	}
}

func TestBatchRequirements(t *testing.T) {
	reqs := make([]compliance.RequirementRecord, 45)
	batches := batchRequirements(reqs, MaxRequirementsPerCall)

	if len(batches) != 3 {
		t.Fatalf("batches = %d, want 3 for 45 requirements at %d per call", len(batches), MaxRequirementsPerCall)
	}
	if len(batches[0]) != MaxRequirementsPerCall || len(batches[2]) != 5 {
		t.Errorf("batch sizes = %d/%d/%d", len(batches[0]), len(batches[1]), len(batches[2]))
	}
}
