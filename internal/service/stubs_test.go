package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"TennisLeaguewebserver/internal/domain"
)

type stubUsersStore struct {
	t *testing.T

	createUserWithPlayerFunc func(context.Context, string, string, string) (domain.User, domain.Player, error)
	getUserByIDFunc          func(context.Context, string) (domain.User, error)
	getUserByUsernameFunc    func(context.Context, string) (domain.User, error)
	getUserByLoginFunc       func(context.Context, string) (domain.UserWithPassword, error)
	setLastLoginFunc         func(context.Context, string, time.Time) error
}

func (s *stubUsersStore) CreateUserWithPlayer(ctx context.Context, username, email, passwordHash string) (domain.User, domain.Player, error) {
	if s.createUserWithPlayerFunc != nil {
		return s.createUserWithPlayerFunc(ctx, username, email, passwordHash)
	}
	s.t.Fatalf("CreateUserWithPlayer called unexpectedly")
	return domain.User{}, domain.Player{}, errors.New("unexpected call")
}

func (s *stubUsersStore) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	if s.getUserByIDFunc != nil {
		return s.getUserByIDFunc(ctx, id)
	}
	s.t.Fatalf("GetUserByID called unexpectedly")
	return domain.User{}, errors.New("unexpected call")
}

func (s *stubUsersStore) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	if s.getUserByUsernameFunc != nil {
		return s.getUserByUsernameFunc(ctx, username)
	}
	s.t.Fatalf("GetUserByUsername called unexpectedly")
	return domain.User{}, errors.New("unexpected call")
}

func (s *stubUsersStore) GetUserByLogin(ctx context.Context, login string) (domain.UserWithPassword, error) {
	if s.getUserByLoginFunc != nil {
		return s.getUserByLoginFunc(ctx, login)
	}
	s.t.Fatalf("GetUserByLogin called unexpectedly")
	return domain.UserWithPassword{}, errors.New("unexpected call")
}

func (s *stubUsersStore) SetLastLogin(ctx context.Context, userID string, when time.Time) error {
	if s.setLastLoginFunc != nil {
		return s.setLastLoginFunc(ctx, userID, when)
	}
	s.t.Fatalf("SetLastLogin called unexpectedly")
	return errors.New("unexpected call")
}

type stubSessionsStore struct {
	t *testing.T

	createSessionFunc func(context.Context, string, time.Time, string, string) (domain.Session, error)
	getSessionFunc    func(context.Context, string) (domain.Session, error)
	revokeSessionFunc func(context.Context, string) error
}

func (s *stubSessionsStore) CreateSession(ctx context.Context, userID string, expiresAt time.Time, ip, userAgent string) (domain.Session, error) {
	if s.createSessionFunc != nil {
		return s.createSessionFunc(ctx, userID, expiresAt, ip, userAgent)
	}
	s.t.Fatalf("CreateSession called unexpectedly")
	return domain.Session{}, errors.New("unexpected call")
}

func (s *stubSessionsStore) GetSession(ctx context.Context, sessionID string) (domain.Session, error) {
	if s.getSessionFunc != nil {
		return s.getSessionFunc(ctx, sessionID)
	}
	s.t.Fatalf("GetSession called unexpectedly")
	return domain.Session{}, errors.New("unexpected call")
}

func (s *stubSessionsStore) RevokeSession(ctx context.Context, sessionID string) error {
	if s.revokeSessionFunc != nil {
		return s.revokeSessionFunc(ctx, sessionID)
	}
	s.t.Fatalf("RevokeSession called unexpectedly")
	return errors.New("unexpected call")
}

type stubPlayersStore struct {
	t *testing.T

	getPlayerFunc          func(context.Context, string) (domain.Player, error)
	getPlayerByUserIDFunc  func(context.Context, string) (domain.Player, error)
	listPlayersByPointFunc func(context.Context) ([]domain.Player, error)
}

func (s *stubPlayersStore) GetPlayer(ctx context.Context, id string) (domain.Player, error) {
	if s.getPlayerFunc != nil {
		return s.getPlayerFunc(ctx, id)
	}
	s.t.Fatalf("GetPlayer called unexpectedly")
	return domain.Player{}, errors.New("unexpected call")
}

func (s *stubPlayersStore) GetPlayerByUserID(ctx context.Context, userID string) (domain.Player, error) {
	if s.getPlayerByUserIDFunc != nil {
		return s.getPlayerByUserIDFunc(ctx, userID)
	}
	s.t.Fatalf("GetPlayerByUserID called unexpectedly")
	return domain.Player{}, errors.New("unexpected call")
}

func (s *stubPlayersStore) ListPlayersByPoint(ctx context.Context) ([]domain.Player, error) {
	if s.listPlayersByPointFunc != nil {
		return s.listPlayersByPointFunc(ctx)
	}
	s.t.Fatalf("ListPlayersByPoint called unexpectedly")
	return nil, errors.New("unexpected call")
}

type stubStadiumsStore struct {
	t *testing.T

	createStadiumFunc func(context.Context, domain.Surface, string) (domain.Stadium, error)
	getStadiumFunc    func(context.Context, string) (domain.Stadium, error)
	listStadiumsFunc  func(context.Context) ([]domain.Stadium, error)
}

func (s *stubStadiumsStore) CreateStadium(ctx context.Context, surface domain.Surface, locationName string) (domain.Stadium, error) {
	if s.createStadiumFunc != nil {
		return s.createStadiumFunc(ctx, surface, locationName)
	}
	s.t.Fatalf("CreateStadium called unexpectedly")
	return domain.Stadium{}, errors.New("unexpected call")
}

func (s *stubStadiumsStore) GetStadium(ctx context.Context, id string) (domain.Stadium, error) {
	if s.getStadiumFunc != nil {
		return s.getStadiumFunc(ctx, id)
	}
	s.t.Fatalf("GetStadium called unexpectedly")
	return domain.Stadium{}, errors.New("unexpected call")
}

func (s *stubStadiumsStore) ListStadiums(ctx context.Context) ([]domain.Stadium, error) {
	if s.listStadiumsFunc != nil {
		return s.listStadiumsFunc(ctx)
	}
	s.t.Fatalf("ListStadiums called unexpectedly")
	return nil, errors.New("unexpected call")
}

type stubMatchesStore struct {
	t *testing.T

	recordMatchFunc          func(context.Context, domain.Match) (domain.Match, error)
	deleteMatchFunc          func(context.Context, string) error
	getMatchFunc             func(context.Context, string) (domain.Match, error)
	listMatchesFunc          func(context.Context) ([]domain.Match, error)
	listMatchesForPlayerFunc func(context.Context, string) ([]domain.Match, error)
}

func (s *stubMatchesStore) RecordMatch(ctx context.Context, m domain.Match) (domain.Match, error) {
	if s.recordMatchFunc != nil {
		return s.recordMatchFunc(ctx, m)
	}
	s.t.Fatalf("RecordMatch called unexpectedly")
	return domain.Match{}, errors.New("unexpected call")
}

func (s *stubMatchesStore) DeleteMatch(ctx context.Context, id string) error {
	if s.deleteMatchFunc != nil {
		return s.deleteMatchFunc(ctx, id)
	}
	s.t.Fatalf("DeleteMatch called unexpectedly")
	return errors.New("unexpected call")
}

func (s *stubMatchesStore) GetMatch(ctx context.Context, id string) (domain.Match, error) {
	if s.getMatchFunc != nil {
		return s.getMatchFunc(ctx, id)
	}
	s.t.Fatalf("GetMatch called unexpectedly")
	return domain.Match{}, errors.New("unexpected call")
}

func (s *stubMatchesStore) ListMatches(ctx context.Context) ([]domain.Match, error) {
	if s.listMatchesFunc != nil {
		return s.listMatchesFunc(ctx)
	}
	s.t.Fatalf("ListMatches called unexpectedly")
	return nil, errors.New("unexpected call")
}

func (s *stubMatchesStore) ListMatchesForPlayer(ctx context.Context, playerID string) ([]domain.Match, error) {
	if s.listMatchesForPlayerFunc != nil {
		return s.listMatchesForPlayerFunc(ctx, playerID)
	}
	s.t.Fatalf("ListMatchesForPlayer called unexpectedly")
	return nil, errors.New("unexpected call")
}
