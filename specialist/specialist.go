package specialist

import (
	"fmt"

	"github.com/hupe1980/taskmesh/core"
	"github.com/hupe1980/taskmesh/internal/util"
	"github.com/hupe1980/taskmesh/model"
)

// Payload is the specialization-specific input to a delegation. The three
// concrete payload types form a closed set matching the available
// specializations.
type Payload interface {
	// Specialization names the specialist this payload targets.
	Specialization() core.Specialization

	// Render produces the user-facing input text sent to the model.
	Render() (string, error)
}

// ResearchInput asks the research specialist to investigate a topic.
type ResearchInput struct {
	Topic string
}

// Specialization implements Payload.
func (p ResearchInput) Specialization() core.Specialization { return core.SpecializationResearch }

// Render implements Payload.
func (p ResearchInput) Render() (string, error) {
	return util.RenderTemplate("Research this topic: {{.Topic}}", map[string]any{"Topic": p.Topic})
}

// CodeAnalysisInput asks the code specialist to review a code snippet.
// Language defaults to auto-detect when empty.
type CodeAnalysisInput struct {
	Code     string
	Language string
}

// Specialization implements Payload.
func (p CodeAnalysisInput) Specialization() core.Specialization {
	return core.SpecializationCodeAnalysis
}

// Render implements Payload.
func (p CodeAnalysisInput) Render() (string, error) {
	lang := p.Language
	if lang == "" {
		lang = "auto-detect"
	}
	return util.RenderTemplate(
		"Analyze this {{.Language}} code:\n\n```\n{{.Code}}\n```",
		map[string]any{"Language": lang, "Code": p.Code},
	)
}

// ContentInput asks the creative specialist to produce written content.
// ContentType, Audience and Tone default to article, general and professional
// respectively when empty.
type ContentInput struct {
	Request     string
	ContentType string
	Audience    string
	Tone        string
}

// Specialization implements Payload.
func (p ContentInput) Specialization() core.Specialization {
	return core.SpecializationContentCreation
}

// Render implements Payload.
func (p ContentInput) Render() (string, error) {
	return util.RenderTemplate(
		"Create {{.ContentType}} content about: {{.Request}}. Target audience: {{.Audience}}. Tone: {{.Tone}}",
		map[string]any{
			"ContentType": defaultString(p.ContentType, "article"),
			"Request":     p.Request,
			"Audience":    defaultString(p.Audience, "general"),
			"Tone":        defaultString(p.Tone, "professional"),
		},
	)
}

func defaultString(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}

// Fixed role descriptions for the three specialists.
const (
	researchInstructions = `You are a RESEARCH SPECIALIST AI agent. Your expertise includes
comprehensive topic analysis and investigation, identifying key insights and
patterns, evaluating information reliability and confidence, suggesting
additional research sources, and synthesizing complex information into clear
summaries.

Your tasks:
 1. Thoroughly research the given topic
 2. Provide clear, accurate summaries
 3. Extract 3-5 most important findings
 4. Assess confidence level honestly (High, Medium, or Low)
 5. Recommend sources for verification

Be objective, thorough, and indicate when information needs verification.`

	codeAnalysisInstructions = `You are a SENIOR SOFTWARE ENGINEER AI agent specializing in code
analysis. Your expertise covers multi-language code review and assessment,
security vulnerability detection, performance optimization recommendations,
code complexity evaluation on a 1-10 scale, and best practices and design
pattern suggestions.

Your tasks:
 1. Identify the programming language and frameworks
 2. Analyze code complexity and structure
 3. Find bugs, issues, and vulnerabilities
 4. Provide actionable improvement suggestions
 5. Highlight security concerns

Prioritize security, performance, maintainability, and code quality.`

	contentCreationInstructions = `You are a CREATIVE WRITING AI agent with expertise in content
creation: blog posts, articles and marketing copy, email templates and
business communications, social media content, technical documentation and
guides, storytelling and narrative writing.

Your tasks:
 1. Create engaging, original content
 2. Match tone and style to the target audience
 3. Optimize for readability and engagement
 4. Ensure proper structure and flow
 5. Provide an appropriate title and report the word count

Create high-quality, engaging content that serves the intended purpose.`
)

// Instructions returns the fixed role description for a specialization.
func Instructions(spec core.Specialization) (string, error) {
	switch spec {
	case core.SpecializationResearch:
		return researchInstructions, nil
	case core.SpecializationCodeAnalysis:
		return codeAnalysisInstructions, nil
	case core.SpecializationContentCreation:
		return contentCreationInstructions, nil
	default:
		return "", fmt.Errorf("unknown specialization %q", spec)
	}
}

// SchemaFor returns the output schema descriptor a specialization's results
// must conform to. The JSON Schema is derived by reflection from the typed
// result struct so the contract shown to the model and the invariants
// enforced after decoding cannot drift apart.
func SchemaFor(spec core.Specialization) (*model.SchemaDef, error) {
	switch spec {
	case core.SpecializationResearch:
		return &model.SchemaDef{
			Name:        "ResearchResult",
			Description: "Structured findings of a research task",
			Parameters:  util.CreateSchema(core.ResearchResult{}),
		}, nil
	case core.SpecializationCodeAnalysis:
		return &model.SchemaDef{
			Name:        "CodeAnalysisResult",
			Description: "Structured outcome of a code review",
			Parameters:  util.CreateSchema(core.CodeAnalysisResult{}),
		}, nil
	case core.SpecializationContentCreation:
		return &model.SchemaDef{
			Name:        "CreativeContentResult",
			Description: "Structured written content with metadata",
			Parameters:  util.CreateSchema(core.CreativeContentResult{}),
		}, nil
	default:
		return nil, fmt.Errorf("unknown specialization %q", spec)
	}
}
