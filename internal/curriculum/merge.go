package curriculum

import (
	"strings"

	"github.com/SAP-F-2025/curriculum-interview/internal/models"
)

// mergeSummary overlays the refined fields onto base. A field that is
// missing, blank or of the wrong shape keeps the base value.
func mergeSummary(base models.CurriculumSummary, refined map[string]any) models.CurriculumSummary {
	merged := base
	merged.LevelEstimate = stringOr(refined["level_estimate"], base.LevelEstimate)
	merged.AgentReadiness = stringOr(refined["agent_readiness"], base.AgentReadiness)
	merged.ModuleOrder = stringsOr(refined["module_order"], base.ModuleOrder)
	merged.FocusTopics = stringsOr(refined["focus_topics"], base.FocusTopics)
	merged.StarterProjects = mergeProjects(refined["starter_projects"], base.StarterProjects)
	merged.NextSteps = stringsOr(refined["next_steps"], base.NextSteps)
	if len(merged.NextSteps) > maxNextSteps {
		merged.NextSteps = merged.NextSteps[:maxNextSteps]
	}
	return merged
}

func stringOr(value any, fallback string) string {
	if s, ok := value.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

// stringsOr keeps the non-blank strings of value, falling back when value is
// not an array or nothing survives.
func stringsOr(value any, fallback []string) []string {
	items, ok := value.([]any)
	if !ok {
		return fallback
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

// mergeProjects merges per index: refined field, then the heuristic project
// at the same index, then the fallback list.
func mergeProjects(value any, base []models.StarterProject) []models.StarterProject {
	items, ok := value.([]any)
	if !ok || len(items) == 0 {
		return base
	}
	if len(items) > starterProjectCount {
		items = items[:starterProjectCount]
	}

	out := make([]models.StarterProject, len(items))
	for i, item := range items {
		fields, _ := item.(map[string]any)
		fallback := fallbackProject(i)
		if i < len(base) {
			fallback = base[i]
		}
		out[i] = models.StarterProject{
			Title:        stringOr(fields["title"], fallback.Title),
			Description:  stringOr(fields["description"], fallback.Description),
			WhyItMatters: stringOr(fields["why_it_matters"], fallback.WhyItMatters),
		}
	}
	return out
}
