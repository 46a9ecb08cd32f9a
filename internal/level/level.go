package level

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when a level is not in the catalog.
var ErrUnknownLevel = errors.New("unknown level")

// Level identifies a difficulty level.
type Level string

const (
	Basic        Level = "basic"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Rubric describes the expected sentence and vocabulary complexity of a level.
type Rubric struct {
	Level       Level
	Label       string // Korean label shown to learners and embedded in prompts
	Description string
}

// catalog is ordered from easiest to hardest.
var catalog = []Rubric{
	{
		Level:       Basic,
		Label:       "초급",
		Description: "초급 수준: 간단하고 기본적인 문장 구조, 일반적인 어휘 사용.",
	},
	{
		Level:       Intermediate,
		Label:       "중급",
		Description: "중급 수준: 더 구체적인 표현, 부가적인 요청 포함, 약간 복잡한 어휘 사용.",
	},
	{
		Level:       Advanced,
		Label:       "고급",
		Description: "고급 수준: 복잡한 문장 구조, 전문 용어 사용, 상세한 설명과 질문, 높은 수준의 대화 능력 필요.",
	},
}

// All returns every rubric in catalog order.
func All() []Rubric {
	out := make([]Rubric, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the rubric for l.
func Lookup(l Level) (Rubric, error) {
	for _, r := range catalog {
		if r.Level == l {
			return r, nil
		}
	}
	return Rubric{}, fmt.Errorf("%w: %q", ErrUnknownLevel, string(l))
}

// Parse resolves a level from its identifier or its Korean label.
// Matching on the identifier is case-insensitive.
func Parse(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for _, r := range catalog {
		if strings.EqualFold(s, string(r.Level)) || s == r.Label {
			return r.Level, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Label returns the Korean label for l, or the raw identifier when l is
// not in the catalog.
func (l Level) Label() string {
	if r, err := Lookup(l); err == nil {
		return r.Label
	}
	return string(l)
}

// Valid reports whether l is in the catalog.
func (l Level) Valid() bool {
	_, err := Lookup(l)
	return err == nil
}
