// Package curriculum turns a completed interview into a learning-plan summary:
// a deterministic heuristic draft, optionally refined by a text-generation
// provider.
package curriculum

import "github.com/SAP-F-2025/curriculum-interview/internal/models"

type moduleID string

const (
	modulePrimers       moduleID = "primers"
	moduleFoundations   moduleID = "foundations"
	moduleEnvironment   moduleID = "environment"
	moduleAIConcepts    moduleID = "ai_concepts"
	moduleAgents        moduleID = "agents"
	moduleFutureWork    moduleID = "future_work"
	moduleRapidProjects moduleID = "rapid_projects"
	moduleArchitecture  moduleID = "architecture"
	moduleDatabases     moduleID = "databases"
	moduleCapstone      moduleID = "capstone"
)

type module struct {
	id    moduleID
	label string
}

var baseModules = [...]module{
	{modulePrimers, "Phase 0 · Primers & Baseline Interview"},
	{moduleFoundations, "Phase 1 · Foundations – Build Confidence Fast"},
	{moduleEnvironment, "Coding Environment Setup (VS Code + Git + Copilot)"},
	{moduleAIConcepts, "Phase 2 · AI Concepts in Action – Local LLMs"},
	{moduleAgents, "Evolution of Agents & Multi-Agent Systems"},
	{moduleFutureWork, "Phase 3 · Connecting to the Real World"},
	{moduleRapidProjects, "Rapid Iteration Projects (2-hour build sprints)"},
	{moduleArchitecture, "Phase 4 · From Prototype to Architecture"},
	{moduleDatabases, "Databases & Advanced Infrastructure"},
	{moduleCapstone, "Phase 5 · Capstone Project & Reflection"},
}

type moduleList []module

// moveTo removes id and reinserts it at index, so later moves see the
// effect of earlier ones.
func (l *moduleList) moveTo(id moduleID, index int) {
	from := -1
	for i, m := range *l {
		if m.id == id {
			from = i
			break
		}
	}
	if from == -1 {
		return
	}

	moved := (*l)[from]
	rest := append((*l)[:from:from], (*l)[from+1:]...)
	if index > len(rest) {
		index = len(rest)
	}
	if index < 0 {
		index = 0
	}

	out := make(moduleList, 0, len(rest)+1)
	out = append(out, rest[:index]...)
	out = append(out, moved)
	*l = append(out, rest[index:]...)
}

// moduleOrder applies the relocation rules to the baseline sequence and
// returns the module labels.
func moduleOrder(answers models.AnswerMap) []string {
	modules := make(moduleList, len(baseModules))
	copy(modules, baseModules[:])

	switch answers.Text(models.QuestionCodingHistory) {
	case "confident":
		modules.moveTo(moduleAIConcepts, 2)
		modules.moveTo(moduleAgents, 3)
		modules.moveTo(moduleRapidProjects, 4)
		modules.moveTo(moduleEnvironment, 5)
	case "dabbling":
		modules.moveTo(moduleEnvironment, 2)
		modules.moveTo(moduleAIConcepts, 3)
	case "none":
		modules.moveTo(moduleEnvironment, 2)
		modules.moveTo(moduleAIConcepts, 5)
	}

	if answers[models.QuestionLearningStyle].Contains("hands_on") {
		modules.moveTo(moduleRapidProjects, 3)
	}
	if answers.Text(models.QuestionAIRole) == "replacement" {
		modules.moveTo(moduleFutureWork, 4)
	}
	if answers.Text(models.QuestionWeeklyTime) == "lt5" {
		modules.moveTo(moduleRapidProjects, len(modules)-3)
	}

	labels := make([]string, len(modules))
	for i, m := range modules {
		labels[i] = m.label
	}
	return labels
}
