package models

type StarterProject struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	WhyItMatters string `json:"whyItMatters"`
}

// GenerationNotes records whether a text-generation service refined the summary.
type GenerationNotes struct {
	UsedLLM   bool   `json:"usedLLM"`
	Model     string `json:"model,omitempty"`
	RawOutput string `json:"rawOutput,omitempty"`
}

type CurriculumSummary struct {
	LevelEstimate   string           `json:"levelEstimate"`
	AgentReadiness  string           `json:"agentReadiness"`
	ModuleOrder     []string         `json:"moduleOrder"`
	FocusTopics     []string         `json:"focusTopics"`
	StarterProjects []StarterProject `json:"starterProjects"`
	NextSteps       []string         `json:"nextSteps"`
	GenerationNotes *GenerationNotes `json:"generationNotes,omitempty"`
}
