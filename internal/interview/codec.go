package interview

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/SAP-F-2025/curriculum-interview/internal/catalog"
	"github.com/SAP-F-2025/curriculum-interview/internal/models"
)

// SerializeAnswers returns the stored form of answers in catalog order.
// Answers for ids outside the catalog are kept and appended afterwards.
func SerializeAnswers(answers models.AnswerMap) []models.StoredAnswerEntry {
	entries := make([]models.StoredAnswerEntry, 0, len(answers))
	seen := make(map[models.QuestionID]bool, len(answers))

	for _, id := range catalog.Order() {
		if value, ok := answers[id]; ok {
			entries = append(entries, models.StoredAnswerEntry{ID: id, Value: copyValue(value)})
			seen[id] = true
		}
	}

	var extra []models.QuestionID
	for id := range answers {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, id := range extra {
		entries = append(entries, models.StoredAnswerEntry{ID: id, Value: copyValue(answers[id])})
	}

	return entries
}

// DeserializeAnswers decodes stored answers. Three shapes are accepted:
//
//   - a list of {"id", "value"} entries (current format);
//   - a positional list of bare values, paired with order;
//   - an object keyed by question id.
//
// Anything else decodes to an empty map.
func DeserializeAnswers(raw json.RawMessage, order []models.QuestionID) models.AnswerMap {
	answers := models.AnswerMap{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return answers
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return answers
		}
		if decodeEntries(items, answers) {
			return answers
		}
		decodePositional(items, order, answers)
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return answers
		}
		for id, value := range fields {
			if normalized, ok := normalizeValue(value); ok {
				answers[models.QuestionID(id)] = normalized
			}
		}
	}

	return answers
}

// decodeEntries fills answers from {"id","value"} items and reports whether
// any item had that shape.
func decodeEntries(items []json.RawMessage, answers models.AnswerMap) bool {
	parsed := false
	for _, item := range items {
		var entry map[string]json.RawMessage
		if err := json.Unmarshal(item, &entry); err != nil || entry == nil {
			continue
		}
		rawID, ok := entry["id"]
		if !ok {
			continue
		}
		parsed = true

		var id string
		if err := json.Unmarshal(rawID, &id); err != nil {
			continue
		}
		if normalized, ok := normalizeValue(entry["value"]); ok {
			answers[models.QuestionID(id)] = normalized
		}
	}
	return parsed
}

func decodePositional(items []json.RawMessage, order []models.QuestionID, answers models.AnswerMap) {
	for i, item := range items {
		if i >= len(order) {
			return
		}
		if order[i] == "" {
			continue
		}
		if normalized, ok := normalizeValue(item); ok {
			answers[order[i]] = normalized
		}
	}
}

// normalizeValue maps a stored JSON value onto an AnswerValue: arrays become
// string lists, null is dropped, strings pass through and anything else is
// kept as its JSON text.
func normalizeValue(raw json.RawMessage) (models.AnswerValue, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return models.AnswerValue{}, false
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return models.AnswerValue{}, false
		}
		return models.TextAnswer(s), true
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return models.AnswerValue{}, false
		}
		values := make([]string, 0, len(items))
		for _, item := range items {
			values = append(values, stringify(item))
		}
		return models.ListAnswer(values), true
	default:
		return models.TextAnswer(stringify(raw)), true
	}
}

func stringify(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	var s string
	if len(raw) > 0 && raw[0] == '"' && json.Unmarshal(raw, &s) == nil {
		return s
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}

func copyValue(v models.AnswerValue) models.AnswerValue {
	if v.IsList() {
		return models.ListAnswer(v.Values())
	}
	return v
}

// DecodeQuestionIDs reads the stored list of completed question ids. Invalid
// input yields an empty list.
func DecodeQuestionIDs(raw json.RawMessage) []models.QuestionID {
	var ids []models.QuestionID
	if len(bytes.TrimSpace(raw)) == 0 {
		return ids
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil
	}
	return ids
}

// DecodeSummaryState reads the stored summary column. A missing or unreadable
// value is treated as an in-progress session; a missing current question in
// an in-progress session falls back to fallback, then to the first question.
func DecodeSummaryState(raw json.RawMessage, fallback *models.QuestionID) models.SessionSummaryState {
	var state models.SessionSummaryState
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' || json.Unmarshal(raw, &state) != nil {
		state = models.SessionSummaryState{}
		if fallback == nil {
			initial := catalog.Initial()
			fallback = &initial
		}
	}

	if state.Status != models.SessionCompleted {
		state.Status = models.SessionInProgress
	}
	if state.CurrentQuestionID != nil && *state.CurrentQuestionID == "" {
		state.CurrentQuestionID = nil
	}
	if state.CurrentQuestionID == nil && state.Status == models.SessionInProgress && fallback != nil {
		current := *fallback
		state.CurrentQuestionID = &current
	}
	return state
}
