package service

import (
	"context"
	"time"

	"TennisLeaguewebserver/internal/domain"
	"TennisLeaguewebserver/internal/metrics"
)

type PlayersStore interface {
	GetPlayer(ctx context.Context, id string) (domain.Player, error)
	GetPlayerByUserID(ctx context.Context, userID string) (domain.Player, error)
	ListPlayersByPoint(ctx context.Context) ([]domain.Player, error)
}

type StadiumsStore interface {
	CreateStadium(ctx context.Context, surface domain.Surface, locationName string) (domain.Stadium, error)
	GetStadium(ctx context.Context, id string) (domain.Stadium, error)
	ListStadiums(ctx context.Context) ([]domain.Stadium, error)
}

type MatchesStore interface {
	RecordMatch(ctx context.Context, m domain.Match) (domain.Match, error)
	DeleteMatch(ctx context.Context, id string) error
	GetMatch(ctx context.Context, id string) (domain.Match, error)
	ListMatches(ctx context.Context) ([]domain.Match, error)
	ListMatchesForPlayer(ctx context.Context, playerID string) ([]domain.Match, error)
}

// SinglesReport is one submitted singles result.
type SinglesReport struct {
	WinnerID    string
	LoserID     string
	StadiumID   string
	MatchDate   time.Time
	WinnerGames int
	LoserGames  int
}

// DoublesReport is one submitted doubles result.
type DoublesReport struct {
	Winner1ID   string
	Winner2ID   string
	Loser1ID    string
	Loser2ID    string
	StadiumID   string
	MatchDate   time.Time
	WinnerGames int
	LoserGames  int
}

type MatchService struct {
	Players  PlayersStore
	Stadiums StadiumsStore
	Matches  MatchesStore
	Metrics  metrics.Recorder
}

// ReportSingles validates and records a singles result on behalf of
// submitterUserID, who must be one of the two participants. The player
// counters are updated in the same transaction as the match insert.
func (s *MatchService) ReportSingles(ctx context.Context, submitterUserID string, r SinglesReport) (domain.Match, error) {
	if err := domain.ValidateSinglesResult(r.WinnerID, r.LoserID, r.WinnerGames, r.LoserGames); err != nil {
		return domain.Match{}, err
	}

	winner, err := s.Players.GetPlayer(ctx, r.WinnerID)
	if err != nil {
		return domain.Match{}, err
	}
	loser, err := s.Players.GetPlayer(ctx, r.LoserID)
	if err != nil {
		return domain.Match{}, err
	}
	if _, err := s.Stadiums.GetStadium(ctx, r.StadiumID); err != nil {
		return domain.Match{}, err
	}

	if err := domain.AuthorizeParticipant(submitterUserID, winner, loser); err != nil {
		return domain.Match{}, err
	}

	m, err := s.Matches.RecordMatch(ctx, domain.Match{
		Type:        domain.MatchSingles,
		MatchDate:   r.MatchDate,
		StadiumID:   r.StadiumID,
		Winner1ID:   r.WinnerID,
		Loser1ID:    r.LoserID,
		WinnerGames: r.WinnerGames,
		LoserGames:  r.LoserGames,
	})
	if err != nil {
		return domain.Match{}, err
	}

	if s.Metrics != nil {
		s.Metrics.IncMatchesReported()
	}
	return m, nil
}

// ReportDoubles validates and records a doubles result. Both sides gain the
// same game deltas per participant as the singles case.
func (s *MatchService) ReportDoubles(ctx context.Context, submitterUserID string, r DoublesReport) (domain.Match, error) {
	if err := domain.ValidateDoublesResult(r.Winner1ID, r.Winner2ID, r.Loser1ID, r.Loser2ID, r.WinnerGames, r.LoserGames); err != nil {
		return domain.Match{}, err
	}

	participants := make([]domain.Player, 0, 4)
	for _, id := range []string{r.Winner1ID, r.Winner2ID, r.Loser1ID, r.Loser2ID} {
		p, err := s.Players.GetPlayer(ctx, id)
		if err != nil {
			return domain.Match{}, err
		}
		participants = append(participants, p)
	}
	if _, err := s.Stadiums.GetStadium(ctx, r.StadiumID); err != nil {
		return domain.Match{}, err
	}

	if err := domain.AuthorizeParticipant(submitterUserID, participants...); err != nil {
		return domain.Match{}, err
	}

	m, err := s.Matches.RecordMatch(ctx, domain.Match{
		Type:        domain.MatchDoubles,
		MatchDate:   r.MatchDate,
		StadiumID:   r.StadiumID,
		Winner1ID:   r.Winner1ID,
		Winner2ID:   r.Winner2ID,
		Loser1ID:    r.Loser1ID,
		Loser2ID:    r.Loser2ID,
		WinnerGames: r.WinnerGames,
		LoserGames:  r.LoserGames,
	})
	if err != nil {
		return domain.Match{}, err
	}

	if s.Metrics != nil {
		s.Metrics.IncMatchesReported()
	}
	return m, nil
}

// DeleteMatch removes a recorded result and rolls its effect out of every
// participant's counters.
func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	if err := s.Matches.DeleteMatch(ctx, matchID); err != nil {
		return err
	}
	if s.Metrics != nil {
		s.Metrics.IncMatchesDeleted()
	}
	return nil
}
