package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"TennisLeaguewebserver/internal/auth"
	"TennisLeaguewebserver/internal/domain"
	"TennisLeaguewebserver/internal/metrics"
)

type UsersStore interface {
	CreateUserWithPlayer(ctx context.Context, username, email, passwordHash string) (domain.User, domain.Player, error)
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (domain.UserWithPassword, error)
	SetLastLogin(ctx context.Context, userID string, when time.Time) error
}

type SessionsStore interface {
	CreateSession(ctx context.Context, userID string, expiresAt time.Time, ip, userAgent string) (domain.Session, error)
	GetSession(ctx context.Context, sessionID string) (domain.Session, error)
	RevokeSession(ctx context.Context, sessionID string) error
}

type AuthService struct {
	Users      UsersStore
	Sessions   SessionsStore
	SessionTTL time.Duration
	Metrics    metrics.Recorder
	Now        func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Register creates the account and its player record, then opens a session.
// The checks run in the order the form reports them: username shape, username
// taken, email shape, email taken, password shape, confirmation shape,
// confirmation match. The email-taken check looks the email up in the
// username namespace, which keeps usernames and emails from colliding across
// the two login spellings.
func (s *AuthService) Register(ctx context.Context, username, email, password, confirmPassword, ip, userAgent string) (domain.User, domain.Session, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.TrimSpace(email)

	if !domain.ValidRegistrationEntry(username) {
		return domain.User{}, domain.Session{}, domain.NewValidationError(map[string]string{"username": "Please enter a valid username"})
	}
	if _, err := s.Users.GetUserByUsername(ctx, username); err == nil {
		return domain.User{}, domain.Session{}, domain.NewValidationError(map[string]string{"username": "Username taken, please select another"})
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.Session{}, err
	}
	if !domain.ValidRegistrationEntry(email) {
		return domain.User{}, domain.Session{}, domain.NewValidationError(map[string]string{"email": "Please enter a valid e-mail"})
	}
	if _, err := s.Users.GetUserByUsername(ctx, email); err == nil {
		return domain.User{}, domain.Session{}, domain.NewValidationError(map[string]string{"email": "Email already in use"})
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, domain.Session{}, err
	}
	if !domain.ValidRegistrationEntry(password) {
		return domain.User{}, domain.Session{}, domain.NewValidationError(map[string]string{"password": "Please enter a valid password"})
	}
	if !domain.ValidRegistrationEntry(confirmPassword) {
		return domain.User{}, domain.Session{}, domain.NewValidationError(map[string]string{"confirm_password": "Please confirm your password"})
	}
	if password != confirmPassword {
		return domain.User{}, domain.Session{}, domain.NewValidationError(map[string]string{"confirm_password": "Your passwords did not match."})
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	u, _, err := s.Users.CreateUserWithPlayer(ctx, username, email, passwordHash)
	if err != nil {
		// Lost a race with another registration for the same name.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return domain.User{}, domain.Session{}, domain.NewValidationError(map[string]string{"username": "Username taken, please select another"})
		}
		return domain.User{}, domain.Session{}, err
	}

	sess, err := s.Sessions.CreateSession(ctx, u.ID, s.now().Add(s.SessionTTL), ip, userAgent)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	if s.Metrics != nil {
		s.Metrics.IncRegistrations()
	}

	return u, sess, nil
}

func (s *AuthService) Login(ctx context.Context, login, password, ip, userAgent string) (domain.User, domain.Session, error) {
	login = strings.ToLower(strings.TrimSpace(login))

	u, err := s.Users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, domain.Session{}, err
	}

	ok, err := auth.VerifyPassword(u.PasswordHash, password)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}
	if !ok {
		return domain.User{}, domain.Session{}, domain.ErrInvalidCredentials
	}
	if u.Status == domain.UserStatusDisabled {
		return domain.User{}, domain.Session{}, domain.ErrUserDisabled
	}

	sess, err := s.Sessions.CreateSession(ctx, u.ID, s.now().Add(s.SessionTTL), ip, userAgent)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	_ = s.Users.SetLastLogin(ctx, u.ID, s.now())

	if s.Metrics != nil {
		s.Metrics.IncLogins()
	}

	return u.User, sess, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.RevokeSession(ctx, sessionID)
}

func (s *AuthService) GetUserForSession(ctx context.Context, sessionID string) (domain.User, error) {
	sess, err := s.Sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, err
	}
	if sess.RevokedAt != nil || s.now().After(sess.ExpiresAt) {
		return domain.User{}, domain.ErrUnauthorized
	}

	u, err := s.Users.GetUserByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthorized
		}
		return domain.User{}, err
	}
	if u.Status == domain.UserStatusDisabled {
		return domain.User{}, domain.ErrForbidden
	}

	return u, nil
}
