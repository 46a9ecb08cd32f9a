package web

import (
	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/level"
	"github.com/abhisek/hoehwa/internal/session"
)

type option struct {
	Value    string
	Label    string
	Selected bool
}

type pageData struct {
	Languages     []option
	QuestionTypes []option
	Levels        []option
	Form          session.Form
	FormalEnabled bool
	Pending       bool
	Missing       string
	Failure       *session.Failure
	Latest        *session.Generated
	LogEntries    int
}

func newPageData(st *session.State, result *session.FormResult) pageData {
	d := pageData{
		Form:          st.Form,
		FormalEnabled: st.Form.Language.SupportsFormal(),
		Pending:       st.Phase == session.PhasePending,
		Failure:       st.Failure,
		Latest:        st.Latest,
		LogEntries:    st.Log.Len(),
	}
	if result != nil && !result.Valid() {
		d.Missing = result.MissingLabels()
	}

	for _, l := range convgen.Languages() {
		d.Languages = append(d.Languages, option{string(l), l.Name(), l == st.Form.Language})
	}
	for _, q := range convgen.QuestionTypes() {
		d.QuestionTypes = append(d.QuestionTypes, option{string(q), q.Label(), q == st.Form.QuestionType})
	}
	for _, r := range level.All() {
		d.Levels = append(d.Levels, option{string(r.Level), r.Label, r.Level == st.Form.Level})
	}
	return d
}
