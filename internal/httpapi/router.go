package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"TennisLeaguewebserver/internal/auth"
	"TennisLeaguewebserver/internal/service"
)

type RouterOpts struct {
	Logger *slog.Logger
	IsProd bool

	DBPing func(context.Context) error

	Auth         *service.AuthService
	League       *service.LeagueService
	Matches      *service.MatchService
	CookieCodec  auth.CookieCodec
	CookieSecure bool
	SessionTTL   time.Duration
}

// NewRouter serves the JSON API under /v1 plus the health endpoint. The
// caller mounts it next to the HTML UIs and applies the shared middleware.
func NewRouter(opts RouterOpts) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	api := &api{
		logger:       logger,
		isProd:       opts.IsProd,
		dbPing:       opts.DBPing,
		authSvc:      opts.Auth,
		leagueSvc:    opts.League,
		matchSvc:     opts.Matches,
		cookieCodec:  opts.CookieCodec,
		cookieSecure: opts.CookieSecure,
		sessionTTL:   opts.SessionTTL,
		loginLimiter: newLoginLimiter(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", api.handleHealthz)

	if api.authSvc == nil || api.leagueSvc == nil || api.matchSvc == nil {
		mux.HandleFunc("/v1/", handleNotImplemented)
		return mux
	}

	mux.HandleFunc("POST /v1/auth/register", api.handleAuthRegister)
	mux.HandleFunc("POST /v1/auth/login", api.handleAuthLogin)
	mux.HandleFunc("POST /v1/auth/logout", api.requireAuth(api.handleAuthLogout))
	mux.HandleFunc("GET /v1/users/me", api.requireAuth(api.handleUsersMe))

	mux.HandleFunc("GET /v1/standings", api.handleStandings)
	mux.HandleFunc("GET /v1/players/{id}", api.handlePlayerDetail)
	mux.HandleFunc("GET /v1/stadiums", api.handleStadiumsList)

	mux.HandleFunc("GET /v1/matches", api.handleMatchesList)
	mux.HandleFunc("GET /v1/matches/{id}", api.handleMatchesGet)
	mux.HandleFunc("POST /v1/matches/singles", api.requireAuth(api.handleMatchesCreateSingles))
	mux.HandleFunc("POST /v1/matches/doubles", api.requireAuth(api.handleMatchesCreateDoubles))
	mux.HandleFunc("DELETE /v1/matches/{id}", api.handleMatchesDelete)

	mux.HandleFunc("/v1/", handleV1NotFound)

	return mux
}

func handleNotImplemented(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, http.StatusNotImplemented, "not_implemented", "not implemented")
}

func handleV1NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, http.StatusNotFound, "not_found", "not found")
}

type api struct {
	logger *slog.Logger
	isProd bool

	dbPing func(context.Context) error

	authSvc   *service.AuthService
	leagueSvc *service.LeagueService
	matchSvc  *service.MatchService

	cookieCodec  auth.CookieCodec
	cookieSecure bool
	sessionTTL   time.Duration

	loginLimiter *loginLimiter
}

func (a *api) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if a.dbPing != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()
		if err := a.dbPing(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("db down"))
			return
		}
	}

	_, _ = w.Write([]byte("ok"))
}
