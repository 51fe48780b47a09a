package catalog

import "github.com/SAP-F-2025/curriculum-interview/internal/models"

var questions = map[models.QuestionID]models.QuestionNode{
	models.QuestionConsent: {
		ID:         models.QuestionConsent,
		Title:      "Consent & Expectations",
		Prompt:     "Before we start, do you consent to share these answers with the mentor team so we can personalize your curriculum?",
		Type:       models.SingleChoice,
		Required:   true,
		HelperText: "We use these answers only to design your learning plan. You can pause or request deletion anytime by emailing support.",
		Options: []models.QuestionOption{
			{Value: models.ConsentGranted, Label: "I consent"},
			{Value: "no", Label: "I do not consent"},
		},
	},
	models.QuestionCodingHistory: {
		ID:       models.QuestionCodingHistory,
		Title:    "Coding Background",
		Prompt:   "Have you written code before?",
		Type:     models.SingleChoice,
		Required: true,
		Options: []models.QuestionOption{
			{Value: "none", Label: "No - this is brand new for me"},
			{Value: "dabbling", Label: "A little - tutorials or small scripts"},
			{Value: "confident", Label: "Yes - coursework or shipped projects"},
		},
	},
	models.QuestionCodingLanguages: {
		ID:            models.QuestionCodingLanguages,
		Title:         "Languages & Tools",
		Prompt:        "Which languages or tools have you used recently? Select all that apply.",
		Type:          models.MultiChoice,
		HelperText:    `If you choose "Other", jot the tool in the notes field on the next screen.`,
		MinSelections: 1,
		Options: []models.QuestionOption{
			{Value: "python", Label: "Python"},
			{Value: "javascript", Label: "JavaScript / TypeScript"},
			{Value: "java", Label: "Java"},
			{Value: "csharp", Label: "C#"},
			{Value: "cpp", Label: "C / C++"},
			{Value: "sql", Label: "SQL"},
			{Value: "no_code", Label: "No-code tools (Zapier, Airtable, etc.)"},
			{Value: "other", Label: "Other"},
		},
	},
	models.QuestionResearchTools: {
		ID:            models.QuestionResearchTools,
		Title:         "Research Habits",
		Prompt:        "Which tools do you use for research or learning right now?",
		Type:          models.MultiChoice,
		MinSelections: 1,
		Options: []models.QuestionOption{
			{Value: "google", Label: "Search engines"},
			{Value: "youtube", Label: "YouTube"},
			{Value: "reddit", Label: "Reddit / community forums"},
			{Value: "twitter", Label: "Twitter / X"},
			{Value: "notebooklm", Label: "NotebookLM"},
			{Value: "podcasts", Label: "Podcasts"},
			{Value: "other", Label: "Other"},
		},
	},
	models.QuestionAIExcites: {
		ID:          models.QuestionAIExcites,
		Title:       "AI Excitement",
		Prompt:      "What excites you most about AI right now?",
		Type:        models.FreeText,
		Placeholder: "Tell us about a breakthrough, product, or workflow that caught your attention...",
		Required:    true,
	},
	models.QuestionAIRole: {
		ID:       models.QuestionAIRole,
		Title:    "AI Mindset",
		Prompt:   "Do you see AI more as a helper, coworker, or replacement?",
		Type:     models.SingleChoice,
		Required: true,
		Options: []models.QuestionOption{
			{Value: "helper", Label: "Helper - it boosts what I can do"},
			{Value: "coworker", Label: "Coworker - we build together"},
			{Value: "replacement", Label: "Replacement - it will automate most jobs"},
		},
	},
	models.QuestionAIRoleReason: {
		ID:          models.QuestionAIRoleReason,
		Title:       "Mindset Rationale",
		Prompt:      "Why do you feel that way about AI's role?",
		Type:        models.FreeText,
		Placeholder: "Give a quick story or example that shaped your view...",
		Required:    true,
	},
	models.QuestionBuildTopics: {
		ID:            models.QuestionBuildTopics,
		Title:         "Build Interests",
		Prompt:        "Pick 2-3 topics you would enjoy building around.",
		Type:          models.MultiChoice,
		MinSelections: 1,
		Options: []models.QuestionOption{
			{Value: "games", Label: "Games"},
			{Value: "music", Label: "Music"},
			{Value: "sports", Label: "Sports"},
			{Value: "finance", Label: "Finance / investing"},
			{Value: "productivity", Label: "Productivity tools"},
			{Value: "creativity", Label: "Creativity & art"},
			{Value: "social_impact", Label: "Social impact / community"},
			{Value: "other", Label: "Other"},
		},
	},
	models.QuestionAutomationTarget: {
		ID:          models.QuestionAutomationTarget,
		Title:       "Automation Wish",
		Prompt:      "If you could automate one part of your day, what would it be?",
		Type:        models.FreeText,
		Placeholder: "Briefly describe the task you would hand off to an agent...",
		Required:    true,
	},
	models.QuestionLearningStyle: {
		ID:            models.QuestionLearningStyle,
		Title:         "Learning Preferences",
		Prompt:        "How do you prefer to learn?",
		Type:          models.MultiChoice,
		MinSelections: 1,
		Options: []models.QuestionOption{
			{Value: "watch", Label: "Watch first, then try it"},
			{Value: "read", Label: "Read guides or docs"},
			{Value: "hands_on", Label: "Hands-on - jump into projects"},
			{Value: "pairing", Label: "Paired sessions with a coach"},
		},
	},
	models.QuestionLessonStructure: {
		ID:       models.QuestionLessonStructure,
		Title:    "Structure Fit",
		Prompt:   "Do you want structured lessons or a tinker-first approach?",
		Type:     models.SingleChoice,
		Required: true,
		Options: []models.QuestionOption{
			{Value: "structured", Label: "Structured lessons with clear checkpoints"},
			{Value: "tinker_first", Label: "Tinker-first with light guardrails"},
			{Value: "hybrid", Label: "A mix of structured and exploratory"},
		},
	},
	models.QuestionWeeklyTime: {
		ID:       models.QuestionWeeklyTime,
		Title:    "Time Commitment",
		Prompt:   "How many hours per week can you commit to this program?",
		Type:     models.SingleChoice,
		Required: true,
		Options: []models.QuestionOption{
			{Value: "lt5", Label: "Less than 5 hours"},
			{Value: "5_7", Label: "5-7 hours"},
			{Value: "8_12", Label: "8-12 hours"},
			{Value: "13_plus", Label: "13+ hours"},
		},
	},
	models.QuestionSuccessCriteria: {
		ID:          models.QuestionSuccessCriteria,
		Title:       "Definition of Success",
		Prompt:      "What would make this course a win for you in four weeks?",
		Type:        models.FreeText,
		Placeholder: `Complete the sentence: "Four weeks from now, I want to"`,
		Required:    true,
	},
}
