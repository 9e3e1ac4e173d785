package userui

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"TennisLeaguewebserver/internal/auth"
	"TennisLeaguewebserver/internal/domain"
	"TennisLeaguewebserver/internal/service"
)

type Opts struct {
	Logger *slog.Logger

	Auth         *service.AuthService
	League       *service.LeagueService
	Matches      *service.MatchService
	CookieCodec  auth.CookieCodec
	CookieSecure bool
	SessionTTL   time.Duration
}

func New(opts Opts) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if opts.Auth == nil || opts.League == nil || opts.Matches == nil {
		logger.Warn("userui: missing services", "auth", opts.Auth != nil, "league", opts.League != nil, "matches", opts.Matches != nil)
	}

	app := &app{
		logger:       logger,
		authSvc:      opts.Auth,
		leagueSvc:    opts.League,
		matchSvc:     opts.Matches,
		cookieCodec:  opts.CookieCodec,
		cookieSecure: opts.CookieSecure,
		sessionTTL:   opts.SessionTTL,
	}

	t, err := parseTemplates()
	if err != nil {
		logger.Error("userui: parse templates failed", "err", err)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal server error", http.StatusInternalServerError)
		})
	}
	app.templates = t

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", app.handleStandings)
	mux.HandleFunc("GET /history/", app.handleHistory)
	mux.HandleFunc("POST /history/{id}/delete", app.handleDeleteHistory)
	mux.HandleFunc("GET /players/{id}", app.handlePlayerDetails)
	mux.HandleFunc("GET /report/", app.requireAuth(app.handleReport))
	mux.HandleFunc("GET /report/singles/", app.requireAuth(app.handleReportSingles))
	mux.HandleFunc("GET /report/doubles/", app.requireAuth(app.handleReportDoubles))
	mux.HandleFunc("POST /report/make_singles/", app.requireAuth(app.handleMakeSingles))
	mux.HandleFunc("POST /report/make_doubles/", app.requireAuth(app.handleMakeDoubles))
	mux.HandleFunc("GET /register/", app.handleRegisterGet)
	mux.HandleFunc("POST /register/", app.handleRegisterPost)
	mux.HandleFunc("GET /login/", app.handleLoginGet)
	mux.HandleFunc("POST /login/", app.handleLoginPost)
	mux.HandleFunc("POST /logout/", app.requireAuth(app.handleLogout))

	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		logger.Error("userui: static fs setup failed", "err", err)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal server error", http.StatusInternalServerError)
		})
	}
	static := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
	mux.Handle("GET /static/", static)
	mux.Handle("HEAD /static/", static)

	return mux
}

type app struct {
	logger *slog.Logger

	authSvc   *service.AuthService
	leagueSvc *service.LeagueService
	matchSvc  *service.MatchService

	cookieCodec  auth.CookieCodec
	cookieSecure bool
	sessionTTL   time.Duration

	templates *templates
}

func (a *app) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := a.currentUser(r)
		if !ok {
			http.Redirect(w, r, "/login/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	}
}

func (a *app) currentUser(r *http.Request) (domain.User, string, bool) {
	if a.authSvc == nil {
		return domain.User{}, "", false
	}
	c, err := r.Cookie(auth.SessionCookieName)
	if err != nil || c.Value == "" {
		return domain.User{}, "", false
	}
	sessID, ok := a.cookieCodec.DecodeSessionID(c.Value)
	if !ok {
		return domain.User{}, "", false
	}
	u, err := a.authSvc.GetUserForSession(r.Context(), sessID)
	if err != nil {
		return domain.User{}, "", false
	}
	return u, sessID, true
}
