package session

import (
	"github.com/google/uuid"

	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/level"
)

// Phase is the controller phase of one session.
type Phase int

const (
	PhaseIdle    Phase = iota // No request outstanding
	PhasePending              // Model call outstanding
)

func (p Phase) String() string {
	if p == PhasePending {
		return "pending"
	}
	return "idle"
}

// Generated is the most recent successful generation of a session.
type Generated struct {
	Content      convgen.Content
	QuestionType convgen.QuestionType
}

// Title is the heading shown above the generated text.
func (g Generated) Title() string {
	return g.QuestionType.Title()
}

// State is the isolated, mutable state of one interactive session.
// It is owned by a single surface at a time and is not safe for
// concurrent use.
type State struct {
	// ID identifies the session in logs and cookies.
	ID string

	// Form holds the current form selections and field values.
	Form Form

	// Phase is Idle or Pending.
	Phase Phase

	// Latest is the last successfully generated content, nil before the
	// first success.
	Latest *Generated

	// Missing lists the required fields that were empty on the last
	// rejected submission.
	Missing []Field

	// Failure describes the last failed model call. Cleared on the next
	// accepted submission.
	Failure *Failure

	// Log holds every successful interaction of the session.
	Log *Log
}

// NewState returns a session in its initial state: Chinese, questions
// only, basic level, formal mode off and empty text fields.
func NewState() *State {
	return &State{
		ID:    uuid.New().String(),
		Form:  DefaultForm(),
		Phase: PhaseIdle,
		Log:   NewLog(),
	}
}

// DefaultForm returns the initial form selections.
func DefaultForm() Form {
	return Form{
		Language:     convgen.Chinese,
		QuestionType: convgen.QuestionOnly,
		Level:        level.Basic,
	}
}

// ClearFields empties the free-text fields and any pending warning.
// Selections, the displayed content and the log are kept.
func (s *State) ClearFields() {
	s.Form.Place = ""
	s.Form.Situation = ""
	s.Form.Role = ""
	s.Missing = nil
}
