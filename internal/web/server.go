// Package web serves the four-step quotation wizard as server-rendered HTML.
// Each browser session is identified by a cookie and owns one wizard.Store.
package web

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/quote-wizard/internal/i18n"
	"github.com/sells-group/quote-wizard/internal/lookup"
	"github.com/sells-group/quote-wizard/internal/wizard"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "wizard_session"

// Options configures a Server.
type Options struct {
	Sessions       *Sessions
	Catalog        *lookup.Catalog
	Localizer      *i18n.Localizer
	AllowedOrigins []string
	CookieSecure   bool
	SessionTTL     time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// Server renders the wizard steps.
type Server struct {
	sessions     *Sessions
	catalog      *lookup.Catalog
	loc          *i18n.Localizer
	origins      []string
	cookieSecure bool
	sessionTTL   time.Duration
	now          func() time.Time
	pages        *pages
}

// NewServer parses the page templates and creates a Server.
func NewServer(opts Options) (*Server, error) {
	if opts.Sessions == nil || opts.Catalog == nil {
		return nil, eris.New("web: sessions and catalog are required")
	}
	if opts.Localizer == nil {
		opts.Localizer = i18n.New("en")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	p, err := parsePages(opts.Localizer)
	if err != nil {
		return nil, err
	}
	return &Server{
		sessions:     opts.Sessions,
		catalog:      opts.Catalog,
		loc:          opts.Localizer,
		origins:      opts.AllowedOrigins,
		cookieSecure: opts.CookieSecure,
		sessionTTL:   opts.SessionTTL,
		now:          opts.Now,
		pages:        p,
	}, nil
}

// Routes returns the HTTP handler of the wizard.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.withSession)

		r.Get("/", redirectTo(wizard.StepQuotation.Path()))
		r.Get("/quotation", s.getQuotation)
		r.Post("/quotation", s.postQuotation)
		r.Get("/beneficiaries", s.getBeneficiaries)
		r.Post("/beneficiaries", s.postBeneficiary)
		r.Post("/beneficiaries/continue", s.postContinue)
		r.Post("/beneficiaries/{id}/remove", s.postRemoveBeneficiary)
		r.Get("/payment", s.getPayment)
		r.Post("/payment", s.postPayment)
		r.Get("/policy-result", s.getResult)
		r.Get("/policy-result/document", s.getDocument)
		r.Post("/reset", s.postReset)

		r.Route("/api", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   s.origins,
				AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				AllowCredentials: !allowsAnyOrigin(s.origins),
				MaxAge:           300,
			}))
			r.Get("/state", s.getState)
		})
	})

	r.NotFound(redirectTo(wizard.StepQuotation.Path()))
	return r
}

// allowsAnyOrigin reports a wildcard origin list. Credentials are never
// shared with arbitrary origins.
func allowsAnyOrigin(origins []string) bool {
	return slices.Contains(origins, "*")
}

func redirectTo(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, path, http.StatusFound)
	}
}

// requestLogger logs one line per request with zap.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		zap.L().Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

type (
	storeKey     struct{}
	sessionIDKey struct{}
)

// withSession resolves the session cookie, issuing a new id when it is
// missing or malformed, and puts the session's store in the request context.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(SessionCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.New().String()
		}
		cookie := &http.Cookie{
			Name:     SessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   s.cookieSecure,
			SameSite: http.SameSiteLaxMode,
		}
		if s.sessionTTL > 0 {
			cookie.MaxAge = int(s.sessionTTL.Seconds())
		}
		http.SetCookie(w, cookie)

		st := s.sessions.Get(r.Context(), id)
		ctx := context.WithValue(r.Context(), storeKey{}, st)
		ctx = context.WithValue(ctx, sessionIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func storeFrom(r *http.Request) *wizard.Store {
	return r.Context().Value(storeKey{}).(*wizard.Store)
}

func sessionIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(sessionIDKey{}).(string)
	return id
}
