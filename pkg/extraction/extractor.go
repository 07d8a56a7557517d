package extraction

import (
	"context"
	"log"
	"time"

	"ai-compliance-be/pkg/compliance"
	"ai-compliance-be/pkg/llm"
	"ai-compliance-be/pkg/textsegment"
)

// Extraction methods reported in Metadata.
const (
	MethodChunking = "chunking"
	MethodMock     = "mock"
)

// Metadata describes how a document extraction ran. Persisted alongside
// the source document so operators can tell mock output from real output.
type Metadata struct {
	Method     string               `json:"method"`
	Framework  compliance.Framework `json:"framework"`
	TextLength int                  `json:"text_length"`
	ChunkCount int                  `json:"chunk_count"`
}

// Extractor turns document text into structured requirement records via
// chunked LLM calls. A nil provider switches the extractor into mock
// mode, returning the fixed per-framework example set.
type Extractor struct {
	provider       llm.LLMProvider
	logger         *log.Logger
	chunkSize      int
	titleThreshold int
	callTimeout    time.Duration
}

func NewExtractor(provider llm.LLMProvider, logger *log.Logger, chunkSize, titleThreshold int, callTimeout time.Duration) *Extractor {
	if titleThreshold <= 0 {
		titleThreshold = DefaultTitleSimilarityThreshold
	}
	return &Extractor{
		provider:       provider,
		logger:         logger,
		chunkSize:      chunkSize,
		titleThreshold: titleThreshold,
		callTimeout:    callTimeout,
	}
}

// MockMode reports whether the extractor has no live provider.
func (e *Extractor) MockMode() bool {
	return e.provider == nil
}

// ExtractDocument runs the full Segment -> per-chunk Extract -> Aggregate
// pipeline over one document. Per-chunk failures are absorbed; an entirely
// empty result is the caller's signal to report extraction failure.
func (e *Extractor) ExtractDocument(ctx context.Context, text string, framework compliance.Framework) ([]compliance.RequirementRecord, Metadata) {
	meta := Metadata{
		Framework:  framework,
		TextLength: len(text),
	}

	if e.MockMode() {
		meta.Method = MethodMock
		e.logger.Printf("[WARN] No LLM provider configured, using mock requirements for %s", framework)
		return MockRequirements(framework), meta
	}

	chunks := textsegment.Segment(text, e.chunkSize)
	meta.Method = MethodChunking
	meta.ChunkCount = len(chunks)
	e.logger.Printf("[INFO] Processing %d chunks for %s", len(chunks), framework)

	// Bound the whole run in proportion to chunk count so one document
	// cannot hang the pipeline indefinitely.
	runCtx, cancel := context.WithTimeout(ctx, e.callTimeout*time.Duration(len(chunks)+1))
	defer cancel()

	lists := make([][]compliance.RequirementRecord, 0, len(chunks))
	for i, chunk := range chunks {
		records := e.ExtractChunk(runCtx, chunk, framework, i+1, len(chunks))
		if len(records) > 0 {
			e.logger.Printf("[INFO] Extracted %d requirements from chunk %d", len(records), i+1)
		}
		lists = append(lists, records)
	}

	final := AggregateWithThreshold(e.titleThreshold, lists...)
	e.logger.Printf("[INFO] Final extraction: %d unique requirements", len(final))
	return final, meta
}

// ExtractChunk extracts requirements from one chunk. Never returns an
// error: a failed call or malformed response degrades to zero
// requirements for this chunk and the pipeline continues.
func (e *Extractor) ExtractChunk(ctx context.Context, chunk string, framework compliance.Framework, chunkNum, totalChunks int) []compliance.RequirementRecord {
	if e.MockMode() {
		return MockRequirements(framework)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	prompt := BuildChunkPrompt(chunk, framework, chunkNum, totalChunks)
	response, err := e.provider.Chat(callCtx, []llm.Message{
		{Role: "system", Content: SystemInstructions},
		{Role: "user", Content: prompt},
	}, llm.WithTemperature(0.1), llm.WithMaxTokens(4000))
	if err != nil {
		e.logger.Printf("[ERROR] Failed to process chunk %d/%d: %v", chunkNum, totalChunks, err)
		return nil
	}

	result := ParseRequirements(response)
	switch result.Kind {
	case ParseOK:
		return result.Requirements
	case ParseEmpty:
		return nil
	default:
		e.logger.Printf("[WARN] Malformed extraction response for chunk %d/%d, skipping", chunkNum, totalChunks)
		return nil
	}
}
