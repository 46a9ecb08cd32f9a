package session

import (
	"strings"

	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/level"
)

// Field names a required form field.
type Field string

const (
	FieldPlace     Field = "place"
	FieldSituation Field = "situation"
	FieldRole      Field = "role"
	FieldLevel     Field = "level"
)

var fieldLabels = map[Field]string{
	FieldPlace:     "장소",
	FieldSituation: "상황",
	FieldRole:      "역할",
	FieldLevel:     "레벨",
}

// Label returns the Korean form label of the field.
func (f Field) Label() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// Form is the raw user input of one submission.
type Form struct {
	Language     convgen.Language
	QuestionType convgen.QuestionType
	Formal       bool
	Place        string
	Situation    string
	Role         string
	Level        level.Level
}

// FormResult is either Valid, carrying the request to send, or Invalid,
// listing the required fields that were missing.
type FormResult struct {
	Request *convgen.Request
	Missing []Field
}

// Valid reports whether the form produced a request.
func (r FormResult) Valid() bool {
	return r.Request != nil
}

// MissingLabels returns the Korean labels of the missing fields joined
// for display.
func (r FormResult) MissingLabels() string {
	labels := make([]string, len(r.Missing))
	for i, f := range r.Missing {
		labels[i] = f.Label()
	}
	return strings.Join(labels, ", ")
}

// Validate checks that place, situation, role and level are present.
// Whitespace-only text counts as missing, and so does a level outside
// the catalog. Unknown language or question type selections fall back
// to the defaults. Formal mode is dropped for languages without it.
func Validate(f Form) FormResult {
	var missing []Field
	if strings.TrimSpace(f.Place) == "" {
		missing = append(missing, FieldPlace)
	}
	if strings.TrimSpace(f.Situation) == "" {
		missing = append(missing, FieldSituation)
	}
	if strings.TrimSpace(f.Role) == "" {
		missing = append(missing, FieldRole)
	}
	if !f.Level.Valid() {
		missing = append(missing, FieldLevel)
	}
	if len(missing) > 0 {
		return FormResult{Missing: missing}
	}

	lang := f.Language
	if !lang.Valid() {
		lang = convgen.Chinese
	}
	qt := f.QuestionType
	if !qt.Valid() {
		qt = convgen.QuestionOnly
	}

	return FormResult{Request: &convgen.Request{
		Language:     lang,
		Level:        f.Level,
		Formal:       f.Formal && lang.SupportsFormal(),
		Place:        f.Place,
		Situation:    f.Situation,
		Role:         f.Role,
		QuestionType: qt,
	}}
}
