package extraction

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

func TestExtractDocumentMockMode(t *testing.T) {
	extractor := NewExtractor(nil, discardLogger(), 6000, 0, time.Minute)

	records, meta := extractor.ExtractDocument(context.Background(), "any regulation text", compliance.FrameworkISO42001)
	if meta.Method != MethodMock {
		t.Fatalf("Method = %s, want %s", meta.Method, MethodMock)
	}
	if len(records) == 0 {
		t.Fatal("mock mode should return the fixed requirement set")
	}
	if records[0].RequirementID != "Clause_4.1" {
		t.Errorf("RequirementID = %s, want the ISO set", records[0].RequirementID)
	}
}

func TestExtractDocumentWithProvider(t *testing.T) {
	provider := &fakeProvider{
		response: `{"requirements": [{"requirement_id": "Article_9", "title": "Risk Management System", "category": "Risk Management", "description": "A risk management system shall be established.", "criticality": "HIGH"}]}`,
	}
	extractor := NewExtractor(provider, discardLogger(), 6000, 0, time.Minute)

	records, meta := extractor.ExtractDocument(context.Background(), "short regulation text", compliance.FrameworkEUAIAct)
	if meta.Method != MethodChunking {
		t.Fatalf("Method = %s, want %s", meta.Method, MethodChunking)
	}
	if meta.ChunkCount != 1 {
		t.Errorf("ChunkCount = %d, want 1", meta.ChunkCount)
	}
	if len(records) != 1 {
		t.Fatalf("len = %d, want 1", len(records))
	}
	if records[0].RequirementID != "Article_9" {
		t.Errorf("RequirementID = %s, want Article_9", records[0].RequirementID)
	}
	if records[0].Criticality != compliance.CriticalityHigh {
		t.Errorf("Criticality = %s, want HIGH", records[0].Criticality)
	}
}

func TestExtractDocumentProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("model unavailable")}
	extractor := NewExtractor(provider, discardLogger(), 6000, 0, time.Minute)

	records, meta := extractor.ExtractDocument(context.Background(), "regulation text", compliance.FrameworkEUAIAct)
	if meta.Method != MethodChunking {
		t.Errorf("Method = %s, want %s", meta.Method, MethodChunking)
	}
	if len(records) != 0 {
		t.Errorf("len = %d, want 0 (failed calls degrade to empty)", len(records))
	}
}

func TestExtractChunkMalformedResponse(t *testing.T) {
	provider := &fakeProvider{response: "no JSON here"}
	extractor := NewExtractor(provider, discardLogger(), 6000, 0, time.Minute)

	records := extractor.ExtractChunk(context.Background(), "chunk", compliance.FrameworkEUAIAct, 1, 1)
	if records != nil {
		t.Errorf("records = %v, want nil for malformed response", records)
	}
}

func TestMockRequirementsUnknownFramework(t *testing.T) {
	records := MockRequirements(compliance.Framework("unknown"))
	if len(records) == 0 {
		t.Fatal("unknown framework should fall back to the EU AI Act set")
	}
	if records[0].RequirementID != "Article_5.1.a" {
		t.Errorf("RequirementID = %s, want the EU fallback set", records[0].RequirementID)
	}
}
