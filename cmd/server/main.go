package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"TennisLeaguewebserver/internal/adminui"
	"TennisLeaguewebserver/internal/auth"
	"TennisLeaguewebserver/internal/config"
	"TennisLeaguewebserver/internal/domain"
	"TennisLeaguewebserver/internal/httpapi"
	"TennisLeaguewebserver/internal/metrics"
	"TennisLeaguewebserver/internal/service"
	"TennisLeaguewebserver/internal/store/postgres"
	"TennisLeaguewebserver/internal/userui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	logger := newLogger(cfg)
	recorder := metrics.NewService()
	codec := auth.NewCookieCodec([]byte(cfg.CookieSecret))

	var (
		authSvc   *service.AuthService
		leagueSvc *service.LeagueService
		matchSvc  *service.MatchService
		dbPing    func(context.Context) error
	)

	if cfg.DBDSN != "" {
		pgPool, err := postgres.Open(context.Background(), cfg.DBDSN)
		if err != nil {
			logger.Error("db open failed", "err", err)
			os.Exit(1)
		}
		defer pgPool.Close()

		if err := postgres.Migrate(context.Background(), pgPool); err != nil {
			logger.Error("db migrate failed", "err", err)
			os.Exit(1)
		}

		users := postgres.NewUsersStore(pgPool)
		sessions := postgres.NewSessionsStore(pgPool)
		players := postgres.NewPlayersStore(pgPool)
		stadiums := postgres.NewStadiumsStore(pgPool)
		matches := postgres.NewMatchesStore(pgPool)

		if err := bootstrapAdminUser(context.Background(), logger, users, cfg.AdminBootstrapEmail, cfg.AdminBootstrapUsername, cfg.AdminBootstrapPassword); err != nil {
			logger.Error("bootstrap admin failed", "err", err)
			os.Exit(1)
		}

		authSvc = &service.AuthService{
			Users:      users,
			Sessions:   sessions,
			SessionTTL: cfg.SessionTTL,
			Metrics:    recorder,
		}
		leagueSvc = &service.LeagueService{
			Players:  players,
			Stadiums: stadiums,
			Matches:  matches,
		}
		matchSvc = &service.MatchService{
			Players:  players,
			Stadiums: stadiums,
			Matches:  matches,
			Metrics:  recorder,
		}
		dbPing = pgPool.Ping
	}

	apiRouter := httpapi.NewRouter(httpapi.RouterOpts{
		Logger:       logger,
		IsProd:       cfg.IsProd(),
		DBPing:       dbPing,
		Auth:         authSvc,
		League:       leagueSvc,
		Matches:      matchSvc,
		CookieCodec:  codec,
		CookieSecure: cfg.CookieSecure(),
		SessionTTL:   cfg.SessionTTL,
	})

	siteRouter := userui.New(userui.Opts{
		Logger:       logger,
		Auth:         authSvc,
		League:       leagueSvc,
		Matches:      matchSvc,
		CookieCodec:  codec,
		CookieSecure: cfg.CookieSecure(),
		SessionTTL:   cfg.SessionTTL,
	})

	root := http.NewServeMux()
	root.Handle("/", siteRouter)
	root.Handle("/v1/", apiRouter)
	root.Handle("/healthz", apiRouter)
	root.Handle("/metrics", metrics.Handler())

	if authSvc != nil && leagueSvc != nil && len(cfg.AdminEmails) > 0 {
		logger.Info("admin ui enabled", "admin_emails", len(cfg.AdminEmails))
		adminRouter := adminui.New(adminui.Opts{
			Logger:       logger,
			Auth:         authSvc,
			League:       leagueSvc,
			CookieCodec:  codec,
			CookieSecure: cfg.CookieSecure(),
			SessionTTL:   cfg.SessionTTL,
			AdminEmails:  cfg.AdminEmails,
		})
		root.Handle("/admin", adminRouter)
		root.Handle("/admin/", adminRouter)
	} else {
		logger.Info("admin ui disabled", "admin_emails", len(cfg.AdminEmails), "db_enabled", cfg.DBDSN != "")
		root.HandleFunc("/admin", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/admin/", http.StatusFound)
		})
		root.HandleFunc("/admin/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("admin ui disabled: set APP_DB_DSN and APP_ADMIN_EMAILS (and restart the server)\n"))
		})
	}

	handler := httpapi.RequestID()(httpapi.RequestLogger(logger)(httpapi.Recoverer(logger, cfg.IsProd())(root)))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "env", cfg.Env, "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}
}

// bootstrapAdminUser creates the allowlisted admin account on first start so
// the admin ui is reachable without touching the database by hand. The
// account is a regular user plus player row; admin rights come from the
// APP_ADMIN_EMAILS allowlist.
func bootstrapAdminUser(ctx context.Context, logger *slog.Logger, users *postgres.UsersStore, email, username, password string) error {
	if password == "" {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	if len(password) < 12 {
		return errors.New("APP_ADMIN_BOOTSTRAP_PASSWORD: must be at least 12 characters")
	}
	if email == "" || username == "" {
		return errors.New("admin bootstrap: email and username are required")
	}

	_, err := users.GetUserByUsername(ctx, username)
	if err == nil {
		logger.Info("admin bootstrap: user already exists", "username", username)
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("admin bootstrap: lookup user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("admin bootstrap: hash password: %w", err)
	}

	_, _, err = users.CreateUserWithPlayer(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			logger.Info("admin bootstrap: user already exists", "username", username)
			return nil
		}
		return fmt.Errorf("admin bootstrap: create user: %w", err)
	}

	logger.Info("admin bootstrap: created admin user", "username", username)
	return nil
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProd() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
