package assessment

import (
	"context"
	"log"
	"time"

	"ai-compliance-be/pkg/compliance"
	"ai-compliance-be/pkg/llm"
	"ai-compliance-be/pkg/textsegment"
)

// Assessment methods reported in session metadata.
const (
	MethodLLM      = "llm"
	MethodFallback = "keyword_fallback"
)

// Assessor scores organizational evidence against a requirement set.
// Evidence larger than the chunk budget is segmented and the verdicts
// merged per requirement; a nil provider or an entirely unusable LLM run
// degrades to the keyword fallback.
type Assessor struct {
	provider          llm.LLMProvider
	logger            *log.Logger
	evidenceChunkSize int
	batchSize         int
	callTimeout       time.Duration
}

func NewAssessor(provider llm.LLMProvider, logger *log.Logger, evidenceChunkSize, batchSize int, callTimeout time.Duration) *Assessor {
	if batchSize <= 0 {
		batchSize = MaxRequirementsPerCall
	}
	return &Assessor{
		provider:          provider,
		logger:            logger,
		evidenceChunkSize: evidenceChunkSize,
		batchSize:         batchSize,
		callTimeout:       callTimeout,
	}
}

// MockMode reports whether the assessor has no live provider.
func (a *Assessor) MockMode() bool {
	return a.provider == nil
}

// Assess produces one assessment record per requirement. The returned
// method tag tells callers which strategy produced the verdicts.
func (a *Assessor) Assess(ctx context.Context, evidenceText string, framework compliance.Framework, requirements []compliance.RequirementRecord) ([]compliance.AssessmentRecord, string) {
	if len(requirements) == 0 {
		return nil, MethodFallback
	}

	if a.MockMode() {
		a.logger.Printf("[WARN] No LLM provider configured, using keyword analysis for %d requirements", len(requirements))
		return KeywordAssess(evidenceText, requirements), MethodFallback
	}

	chunks := textsegment.Segment(evidenceText, a.evidenceChunkSize)
	batches := batchRequirements(requirements, a.batchSize)
	a.logger.Printf("[INFO] Assessing %d requirements over %d evidence chunks (%d batches)", len(requirements), len(chunks), len(batches))

	calls := len(chunks) * len(batches)
	runCtx, cancel := context.WithTimeout(ctx, a.callTimeout*time.Duration(calls+1))
	defer cancel()

	usable := 0
	chunkResults := make([][]compliance.AssessmentRecord, 0, len(chunks))
	for ci, chunk := range chunks {
		var verdicts []compliance.AssessmentRecord
		for _, batch := range batches {
			records := a.assessChunkBatch(runCtx, chunk, framework, batch, ci+1, len(chunks))
			usable += len(records)
			verdicts = append(verdicts, records...)
		}
		chunkResults = append(chunkResults, verdicts)
	}

	if usable == 0 {
		a.logger.Printf("[WARN] LLM returned no usable assessments, using keyword fallback")
		return KeywordAssess(evidenceText, requirements), MethodFallback
	}

	return MergeChunkResults(requirements, chunkResults), MethodLLM
}

// assessChunkBatch runs one LLM call for one evidence chunk against one
// requirement batch. Failures degrade to zero verdicts and the run
// continues.
func (a *Assessor) assessChunkBatch(ctx context.Context, chunk string, framework compliance.Framework, batch []compliance.RequirementRecord, chunkNum, totalChunks int) []compliance.AssessmentRecord {
	callCtx, cancel := context.WithTimeout(ctx, a.callTimeout)
	defer cancel()

	prompt := BuildAssessmentPrompt(chunk, batch)
	response, err := a.provider.Chat(callCtx, []llm.Message{
		{Role: "system", Content: FrameworkInstructions(framework)},
		{Role: "user", Content: prompt},
	}, llm.WithTemperature(0.1), llm.WithMaxTokens(4000))
	if err != nil {
		a.logger.Printf("[ERROR] Assessment call failed for chunk %d/%d: %v", chunkNum, totalChunks, err)
		return nil
	}

	result := ParseAssessments(response)
	switch result.Kind {
	case ParseOK:
		return result.Assessments
	case ParseEmpty:
		return nil
	default:
		a.logger.Printf("[WARN] Malformed assessment response for chunk %d/%d, skipping", chunkNum, totalChunks)
		return nil
	}
}

func batchRequirements(requirements []compliance.RequirementRecord, size int) [][]compliance.RequirementRecord {
	var batches [][]compliance.RequirementRecord
	for start := 0; start < len(requirements); start += size {
		end := start + size
		if end > len(requirements) {
			end = len(requirements)
		}
		batches = append(batches, requirements[start:end])
	}
	return batches
}
