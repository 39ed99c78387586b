package testutil

import "github.com/hupe1980/taskmesh/core"

// Raw JSON fixtures matching the specialist result schemas, for registering
// as mock model responses.
const (
	ResearchJSON = `{
		"topic": "quantum computing trends",
		"summary": "Quantum hardware is scaling while error correction matures.",
		"key_points": ["Qubit counts are rising", "Error correction is improving", "Cloud access is broadening"],
		"confidence_level": "Medium",
		"sources_needed": ["peer-reviewed journals"]
	}`

	CodeAnalysisJSON = `{
		"language": "Python",
		"complexity_score": 3,
		"issues_found": ["No input validation"],
		"suggestions": ["Add an iterative variant"],
		"security_concerns": []
	}`

	CreativeJSON = `{
		"content_type": "report",
		"title": "Findings Report",
		"content": "A concise report on the research findings and their implications.",
		"target_audience": "professional",
		"tone": "analytical",
		"word_count": 10
	}`

	RouteResearchJSON = `{"action": "research", "topic": "quantum computing trends"}`
)

// ValidResearchResult returns a schema-conformant research result.
func ValidResearchResult() *core.ResearchResult {
	return &core.ResearchResult{
		Topic:      "quantum computing trends",
		Summary:    "Quantum hardware is scaling while error correction matures.",
		KeyPoints:  []string{"Qubit counts are rising", "Error correction is improving", "Cloud access is broadening"},
		Confidence: core.ConfidenceMedium,
	}
}

// ValidCodeAnalysisResult returns a schema-conformant code analysis result.
func ValidCodeAnalysisResult() *core.CodeAnalysisResult {
	return &core.CodeAnalysisResult{
		Language:        "Python",
		ComplexityScore: 3,
		Issues:          []string{"No input validation"},
		Suggestions:     []string{"Add an iterative variant"},
	}
}

// ValidCreativeResult returns a schema-conformant creative content result.
func ValidCreativeResult() *core.CreativeContentResult {
	return &core.CreativeContentResult{
		ContentType:    "report",
		Title:          "Findings Report",
		Body:           "A concise report on the research findings and their implications.",
		TargetAudience: "professional",
		Tone:           "analytical",
		WordCount:      10,
	}
}
