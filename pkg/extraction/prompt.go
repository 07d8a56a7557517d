package extraction

import (
	"fmt"
	"strings"

	"ai-compliance-be/pkg/compliance"
)

// SystemInstructions primes the model for the extraction role.
const SystemInstructions = "You are an expert compliance analyst specializing in extracting structured requirements from regulatory documents."

type frameworkGuidance struct {
	Pattern    string
	Categories []string
}

// Closed category sets and identifier patterns per framework. Unknown
// frameworks fall back to the EU AI Act guidance.
var guidanceByFramework = map[compliance.Framework]frameworkGuidance{
	compliance.FrameworkEUAIAct: {
		Pattern:    "Article X.Y.Z",
		Categories: []string{"Prohibited Practices", "High-Risk Systems", "Transparency", "Human Oversight", "Conformity Assessment"},
	},
	compliance.FrameworkISO42001: {
		Pattern:    "Clause X.Y",
		Categories: []string{"Context", "Leadership", "Planning", "Support", "Operation", "Performance Evaluation", "Improvement"},
	},
	compliance.FrameworkUSAIGovernance: {
		Pattern:    "Section X.Y",
		Categories: []string{"Governance", "Risk Management", "Testing", "Monitoring", "Accountability"},
	},
}

func guidanceFor(framework compliance.Framework) frameworkGuidance {
	if g, ok := guidanceByFramework[framework]; ok {
		return g
	}
	return guidanceByFramework[compliance.FrameworkEUAIAct]
}

// BuildChunkPrompt builds the extraction prompt for one chunk. The
// instruction to return an empty list when the chunk has no regulatory
// content is what keeps the model from hallucinating requirements out of
// general knowledge.
func BuildChunkPrompt(chunk string, framework compliance.Framework, chunkNum, totalChunks int) string {
	g := guidanceFor(framework)

	var b strings.Builder
	fmt.Fprintf(&b, "Extract structured compliance requirements from this %s regulatory document chunk %d of %d.\n\n",
		strings.ToUpper(string(framework)), chunkNum, totalChunks)
	fmt.Fprintf(&b, "DOCUMENT TEXT:\n%s\n\n", chunk)
	b.WriteString("Please extract requirements following this JSON structure:\n")
	b.WriteString("{\n  \"requirements\": [\n    {\n")
	fmt.Fprintf(&b, "      \"requirement_id\": \"%s (e.g., Article 5.1.c)\",\n", g.Pattern)
	b.WriteString("      \"title\": \"Brief requirement title\",\n")
	fmt.Fprintf(&b, "      \"category\": \"One of: %s\",\n", strings.Join(g.Categories, ", "))
	b.WriteString("      \"description\": \"Complete requirement description\",\n")
	b.WriteString("      \"page_number\": <page number if found>,\n")
	b.WriteString("      \"section_reference\": \"Section/Article reference\",\n")
	b.WriteString("      \"criticality\": \"LOW|MEDIUM|HIGH|CRITICAL\"\n")
	b.WriteString("    }\n  ]\n}\n\n")
	b.WriteString("EXTRACTION RULES:\n")
	b.WriteString("1. Extract only explicit regulatory requirements found in this chunk, not explanatory text\n")
	b.WriteString("2. Use the exact article/section numbers as they appear in the document\n")
	b.WriteString("3. Categorize each requirement appropriately\n")
	b.WriteString("4. Set criticality based on:\n")
	b.WriteString("   - CRITICAL: Prohibited practices, mandatory compliance\n")
	b.WriteString("   - HIGH: Core requirements with legal consequences\n")
	b.WriteString("   - MEDIUM: Important procedural requirements\n")
	b.WriteString("   - LOW: Recommended practices or guidelines\n")
	b.WriteString("5. Include page numbers when identifiable\n")
	b.WriteString("6. Focus on actionable compliance requirements\n")
	b.WriteString("7. If this chunk contains no requirements, return {\"requirements\": []}\n\n")
	b.WriteString("Return only the JSON structure, no additional text.\n")

	return b.String()
}
