package assessment

import (
	"fmt"
	"strings"

	"ai-compliance-be/pkg/compliance"
)

// MaxRequirementsPerCall caps how many requirements are packed into one
// assessment prompt so the prompt stays inside model token limits.
const MaxRequirementsPerCall = 20

var frameworkInstructions = map[compliance.Framework]string{
	compliance.FrameworkEUAIAct:        "You are an expert on the EU AI Act compliance. You understand all articles, annexes, and implementation requirements. You can extract precise compliance requirements and assess company policies against them. Focus on prohibited practices, high-risk systems, transparency, human oversight, and conformity assessments.",
	compliance.FrameworkUSAIGovernance: "You are an expert on US AI governance including NIST AI Risk Management Framework, Executive Order 14110, and OMB guidance. You understand the GOVERN, MAP, MEASURE, MANAGE functions and can assess organizational AI governance practices against federal requirements.",
	compliance.FrameworkISO42001:       "You are an expert on ISO/IEC 42001 AI management systems standard. You understand all clauses related to context, leadership, planning, support, operation, performance evaluation, and improvement. You can assess AI management system documentation and practices.",
}

// FrameworkInstructions returns the system message used for assessment
// calls against the given framework. Unknown frameworks fall back to the
// EU AI Act instructions.
func FrameworkInstructions(framework compliance.Framework) string {
	if s, ok := frameworkInstructions[framework]; ok {
		return s
	}
	return frameworkInstructions[compliance.FrameworkEUAIAct]
}

// BuildAssessmentPrompt builds the prompt that asks for a structured
// verdict per requirement against one evidence chunk. Callers must have
// already capped requirements at MaxRequirementsPerCall; the slice is
// truncated here as a second line of defense.
func BuildAssessmentPrompt(evidenceChunk string, requirements []compliance.RequirementRecord) string {
	if len(requirements) > MaxRequirementsPerCall {
		requirements = requirements[:MaxRequirementsPerCall]
	}

	var b strings.Builder
	b.WriteString("Please assess the following company document against the compliance requirements listed below.\n\n")
	fmt.Fprintf(&b, "COMPANY DOCUMENT:\n%s\n\n", evidenceChunk)
	b.WriteString("REQUIREMENTS TO ASSESS:\n")
	for i, req := range requirements {
		fmt.Fprintf(&b, "\nRequirement %d:\n", i+1)
		fmt.Fprintf(&b, "- ID: %s\n", req.RequirementID)
		fmt.Fprintf(&b, "- Title: %s\n", req.Title)
		fmt.Fprintf(&b, "- Description: %s\n", req.Description)
		b.WriteString("- Evidence Needed: Documented implementation\n")
	}
	b.WriteString("\nFor EACH requirement, determine:\n")
	b.WriteString("1. Compliance Status: COMPLIANT, PARTIAL, NON_COMPLIANT, or NOT_ADDRESSED\n")
	b.WriteString("2. Evidence: Exact quotes from the company document that support the assessment\n")
	b.WriteString("3. Gap Description: What's missing or insufficient (if not fully compliant)\n")
	b.WriteString("4. Recommendation: Specific actions to achieve full compliance\n\n")
	b.WriteString("Return JSON in this format:\n")
	b.WriteString("{\n  \"assessments\": [\n    {\n")
	b.WriteString("      \"requirement_id\": \"requirement_id\",\n")
	b.WriteString("      \"status\": \"COMPLIANT|PARTIAL|NON_COMPLIANT|NOT_ADDRESSED\",\n")
	b.WriteString("      \"evidence\": \"Exact quote from company document\",\n")
	b.WriteString("      \"gap_description\": \"What's missing or needs improvement\",\n")
	b.WriteString("      \"recommendation\": \"Specific action to take\",\n")
	b.WriteString("      \"confidence\": 0.95\n")
	b.WriteString("    }\n  ]\n}\n\n")
	b.WriteString("Be thorough and precise. Quote exact text as evidence. Provide actionable recommendations.\n")

	return b.String()
}
