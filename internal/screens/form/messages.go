package form

import "github.com/abhisek/hoehwa/internal/session"

// generationDoneMsg carries the result of a model call back to the UI.
type generationDoneMsg struct {
	Completion session.Completion
}
