package curriculum

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/SAP-F-2025/curriculum-interview/internal/llm"
	"github.com/SAP-F-2025/curriculum-interview/internal/models"
)

const (
	defaultTimeout   = 30 * time.Second
	summaryMaxTokens = 2048
	defaultName      = "Learner"
)

var fencedJSON = regexp.MustCompile("(?s)```json(.*?)```")

// summarySchema only insists on an object; field shapes are checked during
// the merge so one bad field does not discard the rest.
var summarySchema = llm.Schema{
	Name: "curriculum-summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"level_estimate":   map[string]any{},
			"agent_readiness":  map[string]any{},
			"module_order":     map[string]any{},
			"focus_topics":     map[string]any{},
			"starter_projects": map[string]any{},
			"next_steps":       map[string]any{},
		},
	},
}

// Synthesizer builds curriculum summaries. With a nil provider it only runs
// the heuristic stage.
type Synthesizer struct {
	provider llm.Provider
	timeout  time.Duration
	logger   *slog.Logger
}

func NewSynthesizer(provider llm.Provider, timeout time.Duration, logger *slog.Logger) *Synthesizer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{provider: provider, timeout: timeout, logger: logger}
}

// Enabled reports whether summaries are refined by a provider.
func (s *Synthesizer) Enabled() bool {
	return s != nil && s.provider != nil
}

// Build always returns a summary. Provider failures degrade to the heuristic
// draft and are only logged.
func (s *Synthesizer) Build(ctx context.Context, name string, answers models.AnswerMap) models.CurriculumSummary {
	draft := BuildHeuristicSummary(name, answers)
	if !s.Enabled() {
		return draft
	}

	model := s.provider.ModelID()
	prompt, err := buildPrompt(name, answers, draft)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to build curriculum prompt", "error", err)
		return draft
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      prompt,
		JSON:        true,
		MaxTokens:   summaryMaxTokens,
		Temperature: 0.4,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Curriculum enhancement failed, using heuristic summary",
			"model", model,
			"error", err)
		draft.GenerationNotes = &models.GenerationNotes{UsedLLM: true, Model: model}
		return draft
	}

	notes := &models.GenerationNotes{UsedLLM: true, Model: model, RawOutput: resp.Text}

	parsed, err := llm.ValidateJSON(summarySchema, []byte(extractJSON(resp.Text)))
	if err != nil {
		s.logger.WarnContext(ctx, "Unable to parse curriculum summary JSON",
			"model", model,
			"error", err)
		draft.GenerationNotes = notes
		return draft
	}

	merged := mergeSummary(draft, parsed.(map[string]any))
	merged.GenerationNotes = notes
	return merged
}

// extractJSON returns the body of the first ```json fence, or the whole text.
func extractJSON(text string) string {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

func buildPrompt(name string, answers models.AnswerMap, draft models.CurriculumSummary) (string, error) {
	if name == "" {
		name = defaultName
	}
	answersJSON, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}
	draftJSON, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal heuristic plan: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are an AI mentor designing a personalized AI learning curriculum for a student.\n")
	fmt.Fprintf(&b, "Student name: %s\n", name)
	fmt.Fprintf(&b, "Interview answers (raw JSON): %s\n", answersJSON)
	fmt.Fprintf(&b, "Existing heuristic plan: %s\n\n", draftJSON)
	b.WriteString(`Return a short JSON object that refines the heuristic plan.
Respond with:
{
  "level_estimate": string,
  "agent_readiness": string,
  "module_order": string[],
  "focus_topics": string[],
  "starter_projects": [
    { "title": string, "description": string, "why_it_matters": string }
  ],
  "next_steps": string[]
}
Keep module_order to 10 entries or fewer. Make the tone supportive and actionable. Do not add commentary outside JSON.`)
	return b.String(), nil
}
