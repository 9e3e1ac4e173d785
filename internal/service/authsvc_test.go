package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"TennisLeaguewebserver/internal/auth"
	"TennisLeaguewebserver/internal/domain"
	"TennisLeaguewebserver/internal/metrics"
)

func TestRegisterCreatesUserAndSession(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := metrics.NewMock()

	users := &stubUsersStore{
		t: t,
		getUserByUsernameFunc: func(_ context.Context, _ string) (domain.User, error) {
			return domain.User{}, domain.ErrNotFound
		},
		createUserWithPlayerFunc: func(_ context.Context, username, email, passwordHash string) (domain.User, domain.Player, error) {
			if username != "serena" {
				t.Fatalf("username: got %q, want serena", username)
			}
			if email != "serena@example.com" {
				t.Fatalf("email: got %q", email)
			}
			ok, err := auth.VerifyPassword(passwordHash, "topspin1")
			if err != nil || !ok {
				t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
			}
			u := domain.User{ID: "u1", Username: username, Email: email, Status: domain.UserStatusActive}
			return u, domain.Player{ID: "p1", UserID: "u1", Username: username}, nil
		},
	}
	sessions := &stubSessionsStore{
		t: t,
		createSessionFunc: func(_ context.Context, userID string, expiresAt time.Time, ip, userAgent string) (domain.Session, error) {
			if userID != "u1" {
				t.Fatalf("session userID: got %q", userID)
			}
			if want := now.Add(24 * time.Hour); !expiresAt.Equal(want) {
				t.Fatalf("expiresAt: got %v, want %v", expiresAt, want)
			}
			return domain.Session{ID: "sess1", UserID: userID, ExpiresAt: expiresAt}, nil
		},
	}

	svc := &AuthService{
		Users:      users,
		Sessions:   sessions,
		SessionTTL: 24 * time.Hour,
		Metrics:    rec,
		Now:        func() time.Time { return now },
	}

	u, sess, err := svc.Register(context.Background(), "Serena", "serena@example.com", "topspin1", "topspin1", "1.2.3.4", "test-agent")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID != "u1" || sess.ID != "sess1" {
		t.Fatalf("got user %q session %q", u.ID, sess.ID)
	}
	if rec.Registrations() != 1 {
		t.Fatalf("registrations counter: got %d", rec.Registrations())
	}
}

func TestRegisterChecksRunInOrder(t *testing.T) {
	taken := map[string]bool{"taken": true, "used@example.com": true}

	lookups := &stubUsersStore{
		t: t,
		getUserByUsernameFunc: func(_ context.Context, name string) (domain.User, error) {
			if taken[name] {
				return domain.User{ID: "other"}, nil
			}
			return domain.User{}, domain.ErrNotFound
		},
	}

	cases := []struct {
		name     string
		username string
		email    string
		password string
		confirm  string
		users    UsersStore
		wantMsg  string
	}{
		{
			name:     "invalid username rejected before any lookup",
			username: "has spaces",
			users:    &stubUsersStore{t: t},
			wantMsg:  "Please enter a valid username",
		},
		{
			name:     "username taken",
			username: "taken",
			users:    lookups,
			wantMsg:  "Username taken, please select another",
		},
		{
			name:     "invalid email",
			username: "fresh",
			email:    "way too long to be an acceptable email entry",
			users:    lookups,
			wantMsg:  "Please enter a valid e-mail",
		},
		{
			name:     "email already in use",
			username: "fresh",
			email:    "used@example.com",
			users:    lookups,
			wantMsg:  "Email already in use",
		},
		{
			name:     "invalid password",
			username: "fresh",
			email:    "fresh@example.com",
			password: "",
			users:    lookups,
			wantMsg:  "Please enter a valid password",
		},
		{
			name:     "missing confirmation",
			username: "fresh",
			email:    "fresh@example.com",
			password: "topspin1",
			confirm:  "",
			users:    lookups,
			wantMsg:  "Please confirm your password",
		},
		{
			name:     "mismatched confirmation",
			username: "fresh",
			email:    "fresh@example.com",
			password: "topspin1",
			confirm:  "topspin2",
			users:    lookups,
			wantMsg:  "Your passwords did not match.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &AuthService{Users: tc.users, Sessions: &stubSessionsStore{t: t}, SessionTTL: time.Hour}
			_, _, err := svc.Register(context.Background(), tc.username, tc.email, tc.password, tc.confirm, "", "")
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if got := domain.ValidationMessage(err); got != tc.wantMsg {
				t.Fatalf("message: got %q, want %q", got, tc.wantMsg)
			}
		})
	}
}

func TestRegisterLowercasesUsername(t *testing.T) {
	var lookedUp []string
	users := &stubUsersStore{
		t: t,
		getUserByUsernameFunc: func(_ context.Context, name string) (domain.User, error) {
			lookedUp = append(lookedUp, name)
			if name == "mixedcase" {
				return domain.User{ID: "other"}, nil
			}
			return domain.User{}, domain.ErrNotFound
		},
	}

	svc := &AuthService{Users: users, Sessions: &stubSessionsStore{t: t}, SessionTTL: time.Hour}
	_, _, err := svc.Register(context.Background(), "MixedCase", "a@b.com", "pw123456", "pw123456", "", "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(lookedUp) != 1 || lookedUp[0] != "mixedcase" {
		t.Fatalf("lookups: got %v", lookedUp)
	}
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("topspin1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	newUsers := func(status domain.UserStatus) *stubUsersStore {
		return &stubUsersStore{
			t: t,
			getUserByLoginFunc: func(_ context.Context, login string) (domain.UserWithPassword, error) {
				if login != "serena" {
					return domain.UserWithPassword{}, domain.ErrNotFound
				}
				return domain.UserWithPassword{
					User:         domain.User{ID: "u1", Username: "serena", Status: status},
					PasswordHash: hash,
				}, nil
			},
			setLastLoginFunc: func(_ context.Context, _ string, _ time.Time) error { return nil },
		}
	}
	sessions := &stubSessionsStore{
		t: t,
		createSessionFunc: func(_ context.Context, userID string, _ time.Time, _, _ string) (domain.Session, error) {
			return domain.Session{ID: "sess1", UserID: userID}, nil
		},
	}

	t.Run("success", func(t *testing.T) {
		rec := metrics.NewMock()
		svc := &AuthService{Users: newUsers(domain.UserStatusActive), Sessions: sessions, SessionTTL: time.Hour, Metrics: rec}
		u, sess, err := svc.Login(context.Background(), " Serena ", "topspin1", "", "")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if u.ID != "u1" || sess.ID != "sess1" {
			t.Fatalf("got user %q session %q", u.ID, sess.ID)
		}
		if rec.Logins() != 1 {
			t.Fatalf("logins counter: got %d", rec.Logins())
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := &AuthService{Users: newUsers(domain.UserStatusActive), Sessions: &stubSessionsStore{t: t}, SessionTTL: time.Hour}
		_, _, err := svc.Login(context.Background(), "serena", "slice", "", "")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := &AuthService{Users: newUsers(domain.UserStatusActive), Sessions: &stubSessionsStore{t: t}, SessionTTL: time.Hour}
		_, _, err := svc.Login(context.Background(), "nobody", "topspin1", "", "")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		svc := &AuthService{Users: newUsers(domain.UserStatusDisabled), Sessions: &stubSessionsStore{t: t}, SessionTTL: time.Hour}
		_, _, err := svc.Login(context.Background(), "serena", "topspin1", "", "")
		if !errors.Is(err, domain.ErrUserDisabled) {
			t.Fatalf("expected ErrUserDisabled, got %v", err)
		}
	})
}

func TestGetUserForSession(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	revoked := now.Add(-time.Minute)

	users := &stubUsersStore{
		t: t,
		getUserByIDFunc: func(_ context.Context, id string) (domain.User, error) {
			return domain.User{ID: id, Username: "serena", Status: domain.UserStatusActive}, nil
		},
	}

	cases := []struct {
		name    string
		sess    domain.Session
		sessErr error
		wantErr error
	}{
		{
			name: "valid",
			sess: domain.Session{ID: "s1", UserID: "u1", ExpiresAt: now.Add(time.Hour)},
		},
		{
			name:    "unknown session",
			sessErr: domain.ErrNotFound,
			wantErr: domain.ErrUnauthorized,
		},
		{
			name:    "expired",
			sess:    domain.Session{ID: "s1", UserID: "u1", ExpiresAt: now.Add(-time.Hour)},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name:    "revoked",
			sess:    domain.Session{ID: "s1", UserID: "u1", ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked},
			wantErr: domain.ErrUnauthorized,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions := &stubSessionsStore{
				t: t,
				getSessionFunc: func(_ context.Context, _ string) (domain.Session, error) {
					if tc.sessErr != nil {
						return domain.Session{}, tc.sessErr
					}
					return tc.sess, nil
				},
			}
			svc := &AuthService{Users: users, Sessions: sessions, Now: func() time.Time { return now }}
			u, err := svc.GetUserForSession(context.Background(), "s1")
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetUserForSession: %v", err)
			}
			if u.ID != "u1" {
				t.Fatalf("user: got %q", u.ID)
			}
		})
	}
}
