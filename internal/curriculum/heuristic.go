package curriculum

import (
	"fmt"
	"strings"

	"github.com/SAP-F-2025/curriculum-interview/internal/catalog"
	"github.com/SAP-F-2025/curriculum-interview/internal/models"
)

const maxNextSteps = 5

// BuildHeuristicSummary derives the summary from the answers alone. It is
// pure and never fails. name may be empty.
func BuildHeuristicSummary(name string, answers models.AnswerMap) models.CurriculumSummary {
	return models.CurriculumSummary{
		LevelEstimate:   describeLevel(answers),
		AgentReadiness:  describeAgentReadiness(answers),
		ModuleOrder:     moduleOrder(answers),
		FocusTopics:     focusTopics(answers),
		StarterProjects: pickStarterProjects(answers),
		NextSteps:       nextSteps(name, answers),
	}
}

func describeLevel(answers models.AnswerMap) string {
	switch answers.Text(models.QuestionCodingHistory) {
	case "confident":
		languages := optionLabels(models.QuestionCodingLanguages, answers.Values(models.QuestionCodingLanguages))
		if len(languages) > 0 {
			return fmt.Sprintf("Experienced coder with recent work in %s. Ready to move quickly into AI-first projects.",
				strings.Join(languages, ", "))
		}
		return "Experienced coder. Ready to move quickly into AI-first projects."
	case "dabbling":
		return "Emerging coder – familiar with basics and ready for guided practice plus project reps."
	default:
		return "New to coding – focus on foundational skills and confidence loops before heavy automation."
	}
}

func describeAgentReadiness(answers models.AnswerMap) string {
	switch answers.Text(models.QuestionAIRole) {
	case "coworker":
		return "Sees AI as a collaborative coworker. Great candidate for rapid delegation exercises and agent playbooks."
	case "replacement":
		return "Views AI as a potential replacement. Spend time on responsible rollout, change management, and future-of-work discussions."
	case "helper":
		return "Treats AI as a helper. Emphasize copilot techniques and fast idea-to-prototype loops."
	}

	if excitement := answers.Text(models.QuestionAIExcites); excitement != "" {
		return fmt.Sprintf("Open to AI exploration. Anchor the plan on what excites them: %s.", truncate(excitement, 120))
	}
	return "Still forming an AI mindset. Use early wins to build trust and curiosity."
}

func focusTopics(answers models.AnswerMap) []string {
	var topics orderedSet

	switch answers.Text(models.QuestionCodingHistory) {
	case "none":
		topics.add("Build fluency with core programming patterns and debugging rituals.")
	case "dabbling":
		topics.add("Reinforce fundamentals through coached mini-projects.")
	}
	if answers[models.QuestionLearningStyle].Contains("hands_on") {
		topics.add("Weekly hands-on sprints with a mentor for rapid feedback.")
	}
	if answers.Text(models.QuestionAIRole) == "replacement" {
		topics.add("Responsibly evaluate automation impact and career positioning.")
	}
	if automation := answers.Text(models.QuestionAutomationTarget); automation != "" {
		topics.add(fmt.Sprintf("Scope an automation prototype for \"%s\".", truncate(automation, 80)))
	}
	if excitement := answers.Text(models.QuestionAIExcites); excitement != "" {
		topics.add(fmt.Sprintf("Channel excitement around %s into the first project.", truncate(excitement, 80)))
	}
	for _, label := range optionLabels(models.QuestionBuildTopics, answers.Values(models.QuestionBuildTopics)) {
		topics.add(fmt.Sprintf("Tailor starter builds around %s.", strings.ToLower(label)))
	}

	if len(topics) == 0 {
		topics.add("Establish a shared language for AI capabilities and limits.")
	}
	return topics
}

func nextSteps(name string, answers models.AnswerMap) []string {
	steps := orderedSet{"Share these notes with the mentor team and schedule the kickoff debrief."}

	if weekly := answers.Text(models.QuestionWeeklyTime); weekly != "" {
		if label, ok := catalog.OptionLabel(models.QuestionWeeklyTime, weekly); ok {
			steps.add(fmt.Sprintf("Block recurring time (~%s) on the calendar for build sessions.", strings.ToLower(label)))
		}
	}
	if automation := answers.Text(models.QuestionAutomationTarget); automation != "" {
		steps.add(fmt.Sprintf("Document the workflow you want to automate (\"%s\") for the Rapid Projects phase.", truncate(automation, 60)))
	}
	if success := answers.Text(models.QuestionSuccessCriteria); success != "" {
		steps.add(fmt.Sprintf("Translate the success statement (\"%s\") into a measurable milestone.", truncate(success, 60)))
	}
	if name != "" {
		steps.add(fmt.Sprintf("Send %s the priming pack with 1-2 framing resources before Phase 1.", name))
	}

	if len(steps) > maxNextSteps {
		steps = steps[:maxNextSteps]
	}
	return steps
}

func optionLabels(id models.QuestionID, values []string) []string {
	labels := make([]string, 0, len(values))
	for _, value := range values {
		if label, ok := catalog.OptionLabel(id, value); ok {
			labels = append(labels, label)
		}
	}
	return labels
}

// truncate shortens s to at most limit characters, marking the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "..."
}

// orderedSet keeps the first occurrence of each string.
type orderedSet []string

func (s *orderedSet) add(value string) {
	for _, existing := range *s {
		if existing == value {
			return
		}
	}
	*s = append(*s, value)
}
