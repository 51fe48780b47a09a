package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// AnswerValue is either a single string (chosen option or trimmed free text)
// or an ordered list of strings (multi-choice selections).
type AnswerValue struct {
	text   string
	list   []string
	isList bool
}

func TextAnswer(s string) AnswerValue {
	return AnswerValue{text: s}
}

func ListAnswer(values []string) AnswerValue {
	out := make([]string, len(values))
	copy(out, values)
	return AnswerValue{list: out, isList: true}
}

func (a AnswerValue) IsList() bool {
	return a.isList
}

// Text returns the single string value, or "" for list answers.
func (a AnswerValue) Text() string {
	if a.isList {
		return ""
	}
	return a.text
}

// Values returns the answer as a list: list answers are copied, a non-empty
// single value becomes a one-element list.
func (a AnswerValue) Values() []string {
	if a.isList {
		out := make([]string, len(a.list))
		copy(out, a.list)
		return out
	}
	if a.text == "" {
		return nil
	}
	return []string{a.text}
}

// Contains reports whether value is one of the answer's values.
func (a AnswerValue) Contains(value string) bool {
	for _, v := range a.Values() {
		if v == value {
			return true
		}
	}
	return false
}

func (a AnswerValue) String() string {
	if a.isList {
		return strings.Join(a.list, ", ")
	}
	return a.text
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	if a.isList {
		return json.Marshal(a.list)
	}
	return json.Marshal(a.text)
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var values []string
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return err
		}
		*a = ListAnswer(values)
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return err
	}
	*a = TextAnswer(s)
	return nil
}

// AnswerMap holds answers keyed by question. Only answered questions have keys.
type AnswerMap map[QuestionID]AnswerValue

// Text returns the single string answer for id, or "" when absent or a list.
func (m AnswerMap) Text(id QuestionID) string {
	if v, ok := m[id]; ok {
		return v.Text()
	}
	return ""
}

// Values returns the answer for id as a list.
func (m AnswerMap) Values(id QuestionID) []string {
	if v, ok := m[id]; ok {
		return v.Values()
	}
	return nil
}

func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		if v.isList {
			v = ListAnswer(v.list)
		}
		out[k] = v
	}
	return out
}

// StoredAnswerEntry is the canonical persisted form of one answer.
type StoredAnswerEntry struct {
	ID    QuestionID  `json:"id"`
	Value AnswerValue `json:"value"`
}
