package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Bandicoot/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// TemplateService generates structured-answer templates (Pydantic class
// sources) for benchmark questions with an LLM.
type TemplateService interface {
	GenerateAnswerTemplate(question, rawAnswer string) (string, error)
}

type geminiTemplateService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewTemplateService(cfg *config.Config) (TemplateService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. TemplateService will be non-functional.")
		return &geminiTemplateService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiTemplateService{client: model, cfg: cfg}, nil
}

// GenerateAnswerTemplate asks the model for a Pydantic class capturing the
// structure of the expected answer. The returned source becomes the item's
// original_answer_template; curators edit it into answer_template afterwards.
func (s *geminiTemplateService) GenerateAnswerTemplate(question, rawAnswer string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	prompt.WriteString("You are an expert at modeling benchmark answers as structured data.\n")
	prompt.WriteString("Given a benchmark question and its expected answer, write a Python Pydantic class named `Answer` ")
	prompt.WriteString("(subclassing `BaseModel`) whose fields capture the verifiable parts of the answer.\n\n")
	prompt.WriteString("Guidelines:\n")
	prompt.WriteString("- One field per independently checkable fact; use precise types (str, int, float, bool, list).\n")
	prompt.WriteString("- Every field gets a `description` via `Field(...)` explaining what a correct value looks like.\n")
	prompt.WriteString("- Add a `model_post_init`-free `verify(self) -> bool` method comparing fields against the expected answer.\n")
	prompt.WriteString("- Respond with a single Python code block and nothing else.\n\n")
	prompt.WriteString("Question:\n---\n")
	prompt.WriteString(question)
	prompt.WriteString("\n---\n\nExpected answer:\n---\n")
	prompt.WriteString(rawAnswer)
	prompt.WriteString("\n---\n")

	ctx := context.Background()
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during template generation")
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}

	template := extractCodeBlock(fullResponseText)
	if !strings.Contains(template, "class Answer") {
		log.Warn().Str("rawResponse", fullResponseText).Msg("Gemini response does not define an Answer class")
		return "", fmt.Errorf("generated template does not define an Answer class")
	}
	return template, nil
}

// extractCodeBlock pulls the first fenced code block out of an LLM response,
// tolerating a language tag on the opening fence. Responses without fences
// are returned trimmed as-is.
func extractCodeBlock(raw string) string {
	start := strings.Index(raw, "```")
	if start == -1 {
		return strings.TrimSpace(raw)
	}
	rest := raw[start+3:]
	if newline := strings.Index(rest, "\n"); newline != -1 {
		// Drop the language tag line ("python").
		firstLine := strings.TrimSpace(rest[:newline])
		if firstLine != "" && !strings.Contains(firstLine, " ") && len(firstLine) < 20 {
			rest = rest[newline+1:]
		}
	}
	end := strings.Index(rest, "```")
	if end == -1 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}
