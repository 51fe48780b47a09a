package curriculum

import "github.com/SAP-F-2025/curriculum-interview/internal/models"

const starterProjectCount = 3

var interestProjects = map[string]models.StarterProject{
	"games": {
		Title:        "Game Strategy Scout",
		Description:  "Build an agent that scrapes match data and surfaces tactics for a favorite game.",
		WhyItMatters: "Pairs data wrangling with prompting so Drew sees AI impact on a hobby immediately.",
	},
	"music": {
		Title:        "AI Remix Studio",
		Description:  "Use a local model to suggest chord progressions and lyrics, then arrange in a DAW.",
		WhyItMatters: "Connects creative flow with model fine-tuning and eval loops.",
	},
	"sports": {
		Title:        "Performance Tracker Bot",
		Description:  "Aggregate sports APIs and build a dashboard that surfaces training insights.",
		WhyItMatters: "Demonstrates end-to-end data pipelines plus UX polish.",
	},
	"finance": {
		Title:        "Budget Copilot",
		Description:  "Ingest statements, categorize spend, and surface weekly coach-style summaries.",
		WhyItMatters: "Reinforces privacy-minded design and practical automation value.",
	},
	"productivity": {
		Title:        "Daily Standup Agent",
		Description:  "Summarize notes across tools and draft a priorities brief every morning.",
		WhyItMatters: "Shows how AI can remove friction from routine planning.",
	},
	"creativity": {
		Title:        "Concept Sketch Partner",
		Description:  "Combine image prompts with idea boards to iterate on designs rapidly.",
		WhyItMatters: "Links visual ideation with prompt engineering craft.",
	},
	"social_impact": {
		Title:        "Community Resource Concierge",
		Description:  "Route community questions to the right city services with a retrieval-augmented bot.",
		WhyItMatters: "Highlights ethical deployment and inclusive design choices.",
	},
	"other": {
		Title:        "Personal Passion Project",
		Description:  "Co-design a build that matches the topic you listed in the interview.",
		WhyItMatters: "Ensures the roadmap anchors on intrinsic motivation.",
	},
}

var fallbackProjects = [...]models.StarterProject{
	{
		Title:        "Learning Log & Reflection App",
		Description:  "Track daily lessons, questions, and AI experiments in one place.",
		WhyItMatters: "Builds the meta-learning muscle that Phase 1 emphasizes.",
	},
	{
		Title:        "Agent-Powered Research Assistant",
		Description:  "Use NotebookLM or a local model to summarize sources into an actionable brief.",
		WhyItMatters: "Connects Phase 2 concepts to real research workflows.",
	},
	{
		Title:        "Automation Blueprint",
		Description:  "Document a high-value task, then outline how an agent would complete it.",
		WhyItMatters: "Transforms the automation wish into a scoped build for later weeks.",
	},
}

func fallbackProject(index int) models.StarterProject {
	return fallbackProjects[index%len(fallbackProjects)]
}

// pickStarterProjects maps build interests to curated projects and pads with
// the fallback list so exactly three are returned.
func pickStarterProjects(answers models.AnswerMap) []models.StarterProject {
	projects := make([]models.StarterProject, 0, starterProjectCount)
	seen := make(map[string]bool)
	for _, interest := range answers.Values(models.QuestionBuildTopics) {
		if seen[interest] {
			continue
		}
		seen[interest] = true
		if project, ok := interestProjects[interest]; ok {
			projects = append(projects, project)
		}
	}

	if len(projects) == 0 {
		projects = append(projects, fallbackProjects[:]...)
	}
	for len(projects) < starterProjectCount {
		projects = append(projects, fallbackProject(len(projects)))
	}
	return projects[:starterProjectCount]
}
