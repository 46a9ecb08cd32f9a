package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/level"
	"github.com/abhisek/hoehwa/internal/llm"
)

// ErrBusy is returned when a submission arrives while a request is pending.
var ErrBusy = errors.New("a generation request is already pending")

// ErrGeneratorPanic wraps a panic recovered from the generator.
var ErrGeneratorPanic = errors.New("generator panicked")

// FailureKind classifies a failed model call.
type FailureKind string

const (
	FailureTransport     FailureKind = "transport"
	FailureAPI           FailureKind = "api"
	FailureConfiguration FailureKind = "configuration"
	FailureUnknown       FailureKind = "unknown"
)

// Failure is the error state rendered after a failed model call.
type Failure struct {
	Kind    FailureKind
	Message string

	// API is the provider rejection behind a FailureAPI, nil otherwise.
	API *llm.APIError
}

// Summary returns a short Korean description for display.
func (f Failure) Summary() string {
	switch f.Kind {
	case FailureTransport:
		return "모델 서버에 연결하지 못했습니다."
	case FailureAPI:
		switch {
		case f.API == nil:
		case f.API.Unauthorized():
			return "API 키가 거부되었습니다."
		case f.API.RateLimited():
			return "요청 한도를 초과했습니다. 잠시 후 다시 시도하세요."
		}
		return "모델이 요청을 거부했습니다."
	case FailureConfiguration:
		return "설정 오류가 있습니다."
	}
	return "알 수 없는 오류가 발생했습니다."
}

// classify maps a generator error onto a Failure.
func classify(err error) *Failure {
	var tErr *llm.TransportError
	var apiErr *llm.APIError
	switch {
	case errors.As(err, &apiErr):
		return &Failure{Kind: FailureAPI, Message: err.Error(), API: apiErr}
	case errors.As(err, &tErr):
		return &Failure{Kind: FailureTransport, Message: err.Error()}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &Failure{Kind: FailureTransport, Message: err.Error()}
	case errors.Is(err, level.ErrUnknownLevel), errors.Is(err, convgen.ErrUnknownLanguage):
		return &Failure{Kind: FailureConfiguration, Message: err.Error()}
	}
	return &Failure{Kind: FailureUnknown, Message: err.Error()}
}

// Pending is an accepted submission waiting on the model.
type Pending struct {
	InteractionID string
	Request       convgen.Request
}

// Completion is the outcome of running a Pending submission.
type Completion struct {
	Pending Pending
	Content *convgen.Content
	Err     error
}

// Outcome reports what a synchronous submission did.
type Outcome struct {
	Result  FormResult
	Content *convgen.Content
	Failure *Failure
}

// Controller drives the Idle/Pending cycle of a session. It holds no
// session state itself and may be shared across sessions.
type Controller struct {
	gen    convgen.Generator
	logger *zap.Logger
	now    func() time.Time
}

// NewController creates a Controller. logger may be nil.
func NewController(gen convgen.Generator, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{gen: gen, logger: logger, now: time.Now}
}

// Begin records the form on st and validates it. An invalid form leaves
// st Idle with Missing set and returns a nil Pending. A valid form moves
// st to Pending. Begin fails with ErrBusy while st is Pending.
func (c *Controller) Begin(st *State, form Form) (*Pending, FormResult, error) {
	if st.Phase == PhasePending {
		return nil, FormResult{}, ErrBusy
	}

	st.Form = form
	result := Validate(form)
	if !result.Valid() {
		st.Missing = result.Missing
		st.Failure = nil
		c.logger.Info("submission rejected",
			zap.String("session_id", st.ID),
			zap.Strings("missing", fieldNames(result.Missing)))
		return nil, result, nil
	}

	st.Missing = nil
	st.Failure = nil
	st.Phase = PhasePending

	p := &Pending{InteractionID: uuid.New().String(), Request: *result.Request}
	c.logger.Info("submission accepted",
		zap.String("session_id", st.ID),
		zap.String("interaction_id", p.InteractionID),
		zap.String("language", string(p.Request.Language)),
		zap.String("level", string(p.Request.Level)),
		zap.String("question_type", string(p.Request.QuestionType)),
		zap.Bool("formal", p.Request.Formal))
	return p, result, nil
}

// Run makes the model call for p. It touches no session state and is
// safe to run off the UI goroutine. A generator panic is returned as
// a completion error wrapping ErrGeneratorPanic.
func (c *Controller) Run(ctx context.Context, p Pending) (comp Completion) {
	comp.Pending = p
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("generator panicked",
				zap.String("interaction_id", p.InteractionID),
				zap.Any("panic", r),
				zap.Stack("stack"))
			comp.Content = nil
			comp.Err = fmt.Errorf("%w: %v", ErrGeneratorPanic, r)
		}
	}()

	ctx = llm.WithInteraction(ctx, p.InteractionID)
	comp.Content, comp.Err = c.gen.Generate(ctx, p.Request)
	return comp
}

// Finish applies a completion to st and returns st to Idle. On success
// the content replaces Latest and one entry is appended to the log. On
// failure only Failure is set.
func (c *Controller) Finish(st *State, comp Completion) *Failure {
	st.Phase = PhaseIdle

	if comp.Err != nil {
		f := classify(comp.Err)
		st.Failure = f
		c.logger.Warn("generation failed",
			zap.String("session_id", st.ID),
			zap.String("interaction_id", comp.Pending.InteractionID),
			zap.String("kind", string(f.Kind)),
			zap.Error(comp.Err))
		return f
	}
	if comp.Content == nil {
		f := &Failure{Kind: FailureUnknown, Message: "generator returned no content"}
		st.Failure = f
		return f
	}

	req := comp.Pending.Request
	st.Latest = &Generated{Content: *comp.Content, QuestionType: req.QuestionType}
	st.Log.Append(Entry{
		Timestamp: c.now(),
		Place:     req.Place,
		Situation: req.Situation,
		Role:      req.Role,
		Level:     req.Level,
		Output:    comp.Content.Text,
	})
	c.logger.Info("generation completed",
		zap.String("session_id", st.ID),
		zap.String("interaction_id", comp.Pending.InteractionID),
		zap.Int("log_entries", st.Log.Len()))
	return nil
}

// Submit runs Begin, Run and Finish in sequence.
func (c *Controller) Submit(ctx context.Context, st *State, form Form) (Outcome, error) {
	p, result, err := c.Begin(st, form)
	if err != nil {
		return Outcome{}, err
	}
	if p == nil {
		return Outcome{Result: result}, nil
	}

	comp := c.Run(ctx, *p)
	if f := c.Finish(st, comp); f != nil {
		return Outcome{Result: result, Failure: f}, nil
	}
	return Outcome{Result: result, Content: comp.Content}, nil
}

func fieldNames(fs []Field) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}

// String renders a failure for logs and CLI output.
func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}
