package main

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gotemplate "github.com/goliatone/go-template"
	"go.uber.org/zap"

	"github.com/goliatone/go-formcontent/pkg/content"
	"github.com/goliatone/go-formcontent/pkg/convert"
	"github.com/goliatone/go-formcontent/pkg/govuk"
	"github.com/goliatone/go-formcontent/pkg/render"
	"github.com/goliatone/go-formcontent/pkg/render/template"
)

//go:embed templates/*.tpl
var serverTemplates embed.FS

const indexTitle = "Questions"

type server struct {
	manifest *content.Manifest
	renderer *render.Renderer
	views    template.TemplateRenderer
	store    *answerStore
	logger   *zap.Logger
}

func newServer(manifest *content.Manifest, renderer *render.Renderer, logger *zap.Logger) (*server, error) {
	sub, err := fs.Sub(serverTemplates, "templates")
	if err != nil {
		return nil, err
	}
	views, err := gotemplate.NewRenderer(
		gotemplate.WithFS(sub),
		gotemplate.WithExtension(".tpl"),
		gotemplate.WithGlobalData(map[string]any{"title": indexTitle}),
	)
	if err != nil {
		return nil, fmt.Errorf("create view engine: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &server{
		manifest: manifest,
		renderer: renderer,
		views:    views,
		store:    newAnswerStore(),
		logger:   logger,
	}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.requestLogger, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/questions", http.StatusFound)
	})
	r.Route("/questions", func(r chi.Router) {
		r.Get("/", s.handleIndex)
		r.Route("/{questionID}", func(r chi.Router) {
			r.Get("/", s.handleQuestion)
			r.Post("/", s.handleSubmit)
		})
	})
	return r
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	answers := s.store.Snapshot()
	items := make([]any, 0, s.manifest.Len())
	for _, q := range s.questions() {
		value, answered := answers[q.ID]
		items = append(items, map[string]any{
			"href":     "/questions/" + q.ID,
			"name":     q.DisplayName(),
			"answered": answered,
			"value":    render.DisplayValue(value),
		})
	}

	out, err := s.views.RenderTemplate("index", map[string]any{"questions": items})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, http.StatusOK, []byte(out))
}

func (s *server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	q, ok := s.lookup(w, r)
	if !ok {
		return
	}
	data := govuk.Data{}
	if value, ok := s.store.Get(q.ID); ok {
		data[q.ID] = value
	}
	s.renderQuestion(w, r, http.StatusOK, q, data, nil)
}

func (s *server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	q, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	raw := strings.TrimSpace(r.PostForm.Get(q.ID))
	value, validationErr := coerceAnswer(q, raw)
	if validationErr != nil {
		s.logger.Debug("answer rejected",
			zap.String("question", q.ID),
			zap.String("reason", validationErr.Message),
		)
		s.renderQuestion(w, r, http.StatusUnprocessableEntity, q,
			govuk.Data{q.ID: raw},
			govuk.Errors{q.ID: *validationErr},
		)
		return
	}

	if raw == "" {
		s.store.Delete(q.ID)
	} else {
		s.store.Set(q.ID, value)
	}
	http.Redirect(w, r, s.nextLocation(q.ID), http.StatusSeeOther)
}

// coerceAnswer applies the question's coercion rule and reports a validation
// error for blank required answers or values that fail to coerce.
func coerceAnswer(q content.Question, raw string) (any, *govuk.ValidationError) {
	if raw == "" {
		if q.Optional {
			return nil, nil
		}
		return nil, &govuk.ValidationError{
			Message:   "Enter " + strings.ToLower(q.DisplayName()),
			InputName: q.ID,
		}
	}

	rule, ok := q.CoercionRule()
	if !ok {
		return raw, nil
	}
	value := rule.Apply(raw)
	switch rule.Kind {
	case convert.RuleNumber:
		if _, isText := value.(string); isText {
			return nil, &govuk.ValidationError{
				Message:   q.DisplayName() + " must be a number",
				InputName: q.ID,
			}
		}
	case convert.RuleBoolean:
		if _, isBool := value.(bool); !isBool {
			return nil, &govuk.ValidationError{
				Message:   "Answer yes or no",
				InputName: q.ID,
			}
		}
	}
	return value, nil
}

func (s *server) renderQuestion(w http.ResponseWriter, r *http.Request, status int, q content.Question, data govuk.Data, errs govuk.Errors) {
	out, err := s.renderer.RenderPage(r.Context(), render.Page{
		Title:     q.DisplayName(),
		Action:    "/questions/" + q.ID,
		Questions: []content.Question{q},
		Data:      data,
		Errors:    errs,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, status, out)
}

func (s *server) lookup(w http.ResponseWriter, r *http.Request) (content.Question, bool) {
	id := chi.URLParam(r, "questionID")
	q, ok := s.manifest.Question(id)
	if !ok || !renderable(q) {
		http.NotFound(w, r)
		return content.Question{}, false
	}
	return q, true
}

// questions lists the manifest questions that render a control, in manifest
// order. Questions without a rendering strategy cannot be answered here.
func (s *server) questions() []content.Question {
	all := s.manifest.Questions()
	out := make([]content.Question, 0, len(all))
	for _, q := range all {
		if renderable(q) {
			out = append(out, q)
		}
	}
	return out
}

func renderable(q content.Question) bool {
	_, ok := govuk.StrategyFor(q.Type)
	return ok
}

// nextLocation points at the renderable question after id in manifest order,
// or the index after the last one.
func (s *server) nextLocation(id string) string {
	questions := s.questions()
	for i, q := range questions {
		if q.ID == id && i+1 < len(questions) {
			return "/questions/" + questions[i+1].ID
		}
	}
	return "/questions"
}

func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("render failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
