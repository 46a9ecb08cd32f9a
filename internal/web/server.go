// Package web serves the conversation form over HTTP.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/abhisek/hoehwa/internal/convgen"
	"github.com/abhisek/hoehwa/internal/level"
	"github.com/abhisek/hoehwa/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Server is the web surface over a shared Controller.
type Server struct {
	controller *session.Controller
	sessions   *Sessions
	logger     *zap.Logger
}

// NewServer creates a Server. logger may be nil.
func NewServer(controller *session.Controller, sessions *Sessions, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{controller: controller, sessions: sessions, logger: logger}
}

// Handler returns the router with every route and middleware installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/generate", s.handleGenerate)
	r.Get("/download", s.handleDownload)
	r.Post("/reset", s.handleReset)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			s.logger.Error("failed to write health check response", zap.Error(err))
		}
	})

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("web server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("web server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	e := s.sessions.resolve(w, r)
	e.mu.Lock()
	data := newPageData(e.state, nil)
	e.mu.Unlock()
	s.render(w, http.StatusOK, data)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	e := s.sessions.resolve(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := formFromRequest(r)

	e.mu.Lock()
	pending, result, err := s.controller.Begin(e.state, form)
	if errors.Is(err, session.ErrBusy) {
		data := newPageData(e.state, nil)
		e.mu.Unlock()
		s.render(w, http.StatusConflict, data)
		return
	}
	if pending == nil {
		data := newPageData(e.state, &result)
		e.mu.Unlock()
		s.render(w, http.StatusUnprocessableEntity, data)
		return
	}
	e.mu.Unlock()

	comp := s.controller.Run(r.Context(), *pending)

	e.mu.Lock()
	failure := s.controller.Finish(e.state, comp)
	data := newPageData(e.state, nil)
	e.mu.Unlock()

	status := http.StatusOK
	if failure != nil {
		status = http.StatusBadGateway
	}
	s.render(w, status, data)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	e := s.sessions.resolve(w, r)
	e.mu.Lock()
	body := e.state.Log.Export()
	e.mu.Unlock()

	w.Header().Set("Content-Type", session.ExportMIMEType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+session.ExportFileName+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		s.logger.Warn("failed to write export", zap.Error(err))
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	e := s.sessions.resolve(w, r)
	e.mu.Lock()
	if e.state.Phase == session.PhasePending {
		data := newPageData(e.state, nil)
		e.mu.Unlock()
		s.render(w, http.StatusConflict, data)
		return
	}
	e.state.ClearFields()
	e.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
	}
}

func formFromRequest(r *http.Request) session.Form {
	f := session.Form{
		Place:     r.PostFormValue("place"),
		Situation: r.PostFormValue("situation"),
		Role:      r.PostFormValue("role"),
		Formal:    r.PostFormValue("formal") != "",
	}
	if lang, err := convgen.ParseLanguage(r.PostFormValue("language")); err == nil {
		f.Language = lang
	}
	if qt, err := convgen.ParseQuestionType(r.PostFormValue("question_type")); err == nil {
		f.QuestionType = qt
	}
	if lvl, err := level.Parse(r.PostFormValue("level")); err == nil {
		f.Level = lvl
	}
	return f
}

// requestLogger logs one line per request with zap.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
