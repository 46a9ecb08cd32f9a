package convgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/hoehwa/internal/level"
)

var (
	// ErrUnknownLanguage is returned when a language is not supported.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrUnknownQuestionType is returned when a question type is not supported.
	ErrUnknownQuestionType = errors.New("unknown question type")
)

// Language is the target language questions are translated into.
type Language string

const (
	Chinese Language = "zh"
	English Language = "en"
)

var languageNames = map[Language]string{
	Chinese: "중국어",
	English: "영어",
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{Chinese, English}
}

// Name returns the Korean name of the language as used in prompts.
func (l Language) Name() string {
	if n, ok := languageNames[l]; ok {
		return n
	}
	return string(l)
}

// SupportsFormal reports whether formal vocabulary mode applies to l.
// Only Chinese has a formal block.
func (l Language) SupportsFormal() bool {
	return l == Chinese
}

// Valid reports whether l is supported.
func (l Language) Valid() bool {
	_, ok := languageNames[l]
	return ok
}

// ParseLanguage resolves a language from its code or Korean name.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range Languages() {
		if strings.EqualFold(s, string(l)) || s == l.Name() {
			return l, nil
		}
	}
	switch strings.ToLower(s) {
	case "chinese":
		return Chinese, nil
	case "english":
		return English, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// QuestionType selects between questions alone and question/answer pairs.
type QuestionType string

const (
	QuestionOnly      QuestionType = "question"
	QuestionAndAnswer QuestionType = "qa"
)

// QuestionTypes returns the supported question types in display order.
func QuestionTypes() []QuestionType {
	return []QuestionType{QuestionOnly, QuestionAndAnswer}
}

// Label returns the Korean label of the question type.
func (q QuestionType) Label() string {
	if q == QuestionAndAnswer {
		return "질문&답변"
	}
	return "질문"
}

// Title is the heading shown above generated content.
func (q QuestionType) Title() string {
	if q == QuestionAndAnswer {
		return "생성된 질문과 답변"
	}
	return "생성된 질문"
}

// ItemCount is the number of items the model is asked for.
func (q QuestionType) ItemCount() int {
	if q == QuestionAndAnswer {
		return 5
	}
	return 10
}

// Valid reports whether q is supported.
func (q QuestionType) Valid() bool {
	return q == QuestionOnly || q == QuestionAndAnswer
}

// ParseQuestionType resolves a question type from its identifier or Korean label.
func ParseQuestionType(s string) (QuestionType, error) {
	s = strings.TrimSpace(s)
	for _, q := range QuestionTypes() {
		if strings.EqualFold(s, string(q)) || s == q.Label() {
			return q, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuestionType, s)
}

// Request is one fully validated conversation generation request.
type Request struct {
	Language     Language
	Level        level.Level
	Formal       bool
	Place        string
	Situation    string
	Role         string
	QuestionType QuestionType
}

// FormalApplies reports whether the formal block is added for this request.
func (r Request) FormalApplies() bool {
	return r.Formal && r.Language.SupportsFormal()
}

// Content is the text generated for one request.
type Content struct {
	Text  string
	Model string
}
