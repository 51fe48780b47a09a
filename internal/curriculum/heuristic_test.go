package curriculum

import (
	"strings"
	"testing"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) models.AnswerValue { return models.TextAnswer(s) }

func list(values ...string) models.AnswerValue { return models.ListAnswer(values) }

func labels(ids ...moduleID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, m := range baseModules {
			if m.id == id {
				out = append(out, m.label)
			}
		}
	}
	return out
}

func TestModuleOrder_Baseline(t *testing.T) {
	order := moduleOrder(models.AnswerMap{})

	require.Len(t, order, 10)
	assert.Equal(t, "Phase 0 · Primers & Baseline Interview", order[0])
	assert.Equal(t, "Phase 5 · Capstone Project & Reflection", order[9])
}

func TestModuleOrder_Confident(t *testing.T) {
	order := moduleOrder(models.AnswerMap{models.QuestionCodingHistory: text("confident")})

	assert.Equal(t, labels(
		modulePrimers, moduleFoundations, moduleAIConcepts, moduleAgents, moduleRapidProjects,
		moduleEnvironment, moduleFutureWork, moduleArchitecture, moduleDatabases, moduleCapstone,
	), order)
}

func TestModuleOrder_Novice(t *testing.T) {
	order := moduleOrder(models.AnswerMap{models.QuestionCodingHistory: text("none")})

	assert.Equal(t, labels(
		modulePrimers, moduleFoundations, moduleEnvironment, moduleAgents, moduleFutureWork,
		moduleAIConcepts, moduleRapidProjects, moduleArchitecture, moduleDatabases, moduleCapstone,
	), order)
}

func TestModuleOrder_RulesAreCumulative(t *testing.T) {
	order := moduleOrder(models.AnswerMap{
		models.QuestionCodingHistory: text("dabbling"),
		models.QuestionLearningStyle: list("read", "hands_on"),
		models.QuestionAIRole:        text("replacement"),
		models.QuestionWeeklyTime:    text("lt5"),
	})

	// hands_on pulls rapid_projects to 3, replacement then pulls future_work
	// to 4 and lt5 finally pushes rapid_projects to 7.
	assert.Equal(t, labels(
		modulePrimers, moduleFoundations, moduleEnvironment, moduleFutureWork, moduleAIConcepts,
		moduleAgents, moduleArchitecture, moduleRapidProjects, moduleDatabases, moduleCapstone,
	), order)
}

func TestDescribeLevel(t *testing.T) {
	assert.Equal(t,
		"Experienced coder with recent work in Python, SQL. Ready to move quickly into AI-first projects.",
		describeLevel(models.AnswerMap{
			models.QuestionCodingHistory:   text("confident"),
			models.QuestionCodingLanguages: list("python", "unknown", "sql"),
		}))
	assert.Equal(t, "Experienced coder. Ready to move quickly into AI-first projects.",
		describeLevel(models.AnswerMap{models.QuestionCodingHistory: text("confident")}))
	assert.True(t, strings.HasPrefix(describeLevel(models.AnswerMap{models.QuestionCodingHistory: text("dabbling")}), "Emerging coder"))
	assert.True(t, strings.HasPrefix(describeLevel(models.AnswerMap{}), "New to coding"))
}

func TestDescribeAgentReadiness(t *testing.T) {
	assert.True(t, strings.HasPrefix(
		describeAgentReadiness(models.AnswerMap{models.QuestionAIRole: text("helper")}), "Treats AI as a helper."))

	excited := describeAgentReadiness(models.AnswerMap{models.QuestionAIExcites: text(strings.Repeat("x", 200))})
	assert.Equal(t, "Open to AI exploration. Anchor the plan on what excites them: "+strings.Repeat("x", 119)+"....", excited)

	assert.Equal(t, "Still forming an AI mindset. Use early wins to build trust and curiosity.",
		describeAgentReadiness(models.AnswerMap{}))
}

func TestFocusTopics(t *testing.T) {
	topics := focusTopics(models.AnswerMap{
		models.QuestionCodingHistory:    text("dabbling"),
		models.QuestionLearningStyle:    list("hands_on"),
		models.QuestionAutomationTarget: text("Invoice triage"),
		models.QuestionAIExcites:        text("music generation"),
		models.QuestionBuildTopics:      list("music", "social_impact", "music"),
	})

	assert.Equal(t, []string{
		"Reinforce fundamentals through coached mini-projects.",
		"Weekly hands-on sprints with a mentor for rapid feedback.",
		`Scope an automation prototype for "Invoice triage".`,
		"Channel excitement around music generation into the first project.",
		"Tailor starter builds around music.",
		"Tailor starter builds around social impact / community.",
	}, topics)
}

func TestFocusTopics_Fallback(t *testing.T) {
	assert.Equal(t, []string{"Establish a shared language for AI capabilities and limits."},
		focusTopics(models.AnswerMap{models.QuestionCodingHistory: text("confident")}))
}

func TestPickStarterProjects_InterestsThenFallback(t *testing.T) {
	projects := pickStarterProjects(models.AnswerMap{models.QuestionBuildTopics: list("games", "music")})

	require.Len(t, projects, 3)
	assert.Equal(t, "Game Strategy Scout", projects[0].Title)
	assert.Equal(t, "AI Remix Studio", projects[1].Title)
	assert.Equal(t, "Automation Blueprint", projects[2].Title)
}

func TestPickStarterProjects_NoInterests(t *testing.T) {
	projects := pickStarterProjects(models.AnswerMap{})

	assert.Equal(t, fallbackProjects[:], projects)
}

func TestPickStarterProjects_CapsAtThree(t *testing.T) {
	projects := pickStarterProjects(models.AnswerMap{
		models.QuestionBuildTopics: list("sports", "finance", "finance", "creativity", "other"),
	})

	require.Len(t, projects, 3)
	assert.Equal(t, []string{"Performance Tracker Bot", "Budget Copilot", "Concept Sketch Partner"},
		[]string{projects[0].Title, projects[1].Title, projects[2].Title})
}

func TestNextSteps(t *testing.T) {
	steps := nextSteps("Drew", models.AnswerMap{
		models.QuestionWeeklyTime:       text("5_7"),
		models.QuestionAutomationTarget: text("Sorting receipts"),
		models.QuestionSuccessCriteria:  text("Ship a budgeting bot"),
	})

	assert.Equal(t, []string{
		"Share these notes with the mentor team and schedule the kickoff debrief.",
		"Block recurring time (~5-7 hours) on the calendar for build sessions.",
		`Document the workflow you want to automate ("Sorting receipts") for the Rapid Projects phase.`,
		`Translate the success statement ("Ship a budgeting bot") into a measurable milestone.`,
		"Send Drew the priming pack with 1-2 framing resources before Phase 1.",
	}, steps)

	assert.Len(t, nextSteps("", models.AnswerMap{}), 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("  short  ", 20))
	assert.Equal(t, "abcd...", truncate("abcdefgh", 5))
	assert.Equal(t, "ab...", truncate("ab   cdefgh", 5))
	assert.Equal(t, "héll...", truncate("héllo wörld", 5))
}

func TestBuildHeuristicSummary_Deterministic(t *testing.T) {
	answers := models.AnswerMap{
		models.QuestionCodingHistory: text("confident"),
		models.QuestionBuildTopics:   list("productivity"),
		models.QuestionAIRole:        text("coworker"),
	}

	first := BuildHeuristicSummary("Sam", answers)
	assert.Equal(t, first, BuildHeuristicSummary("Sam", answers))
	assert.Nil(t, first.GenerationNotes)
	assert.Len(t, first.StarterProjects, 3)
	assert.LessOrEqual(t, len(first.NextSteps), 5)
}
