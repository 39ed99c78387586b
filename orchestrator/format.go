package orchestrator

import (
	"fmt"
	"strings"

	"github.com/hupe1980/taskmesh/core"
)

// Section markers used when composing the composite response.
const (
	researchSectionMarker = "RESEARCH FINDINGS"
	reportSectionMarker   = "ANALYSIS REPORT"
)

// FormatResearch renders a research result for display.
func FormatResearch(r *core.ResearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", r.Topic)
	fmt.Fprintf(&b, "Summary: %s\n", r.Summary)
	b.WriteString("Key Points:\n")
	for i, point := range r.KeyPoints {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, point)
	}
	fmt.Fprintf(&b, "Confidence: %s\n", r.Confidence)
	if len(r.SourcesNeeded) > 0 {
		fmt.Fprintf(&b, "Recommended Sources: %s\n", strings.Join(r.SourcesNeeded, ", "))
	}
	return b.String()
}

// FormatCodeAnalysis renders a code analysis result for display.
func FormatCodeAnalysis(r *core.CodeAnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", r.Language)
	fmt.Fprintf(&b, "Complexity Score: %d/10\n", r.ComplexityScore)
	writeBulletList(&b, "Issues Found", r.Issues)
	writeBulletList(&b, "Suggestions", r.Suggestions)
	writeBulletList(&b, "Security Concerns", r.SecurityConcerns)
	return b.String()
}

// FormatCreative renders a creative content result for display.
func FormatCreative(r *core.CreativeContentResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Content Type: %s\n", r.ContentType)
	fmt.Fprintf(&b, "Title: %s\n", r.Title)
	fmt.Fprintf(&b, "Audience: %s | Tone: %s\n", r.TargetAudience, r.Tone)
	fmt.Fprintf(&b, "Word Count: %d\n", r.WordCount)
	fmt.Fprintf(&b, "Content:\n%s\n", r.Body)
	return b.String()
}

// FormatResult dispatches to the appropriate renderer for the concrete result
// type.
func FormatResult(result core.SpecialistResult) string {
	switch r := result.(type) {
	case *core.ResearchResult:
		return FormatResearch(r)
	case *core.CodeAnalysisResult:
		return FormatCodeAnalysis(r)
	case *core.CreativeContentResult:
		return FormatCreative(r)
	default:
		return result.ResultSummary()
	}
}

func writeBulletList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}
