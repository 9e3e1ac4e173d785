package service

import (
	"context"

	"TennisLeaguewebserver/internal/domain"
)

type LeagueService struct {
	Players  PlayersStore
	Stadiums StadiumsStore
	Matches  MatchesStore
}

// Standings returns all players ordered by point, best first.
func (s *LeagueService) Standings(ctx context.Context) ([]domain.Player, error) {
	return s.Players.ListPlayersByPoint(ctx)
}

// History returns the full match history, newest first.
func (s *LeagueService) History(ctx context.Context) ([]domain.Match, error) {
	return s.Matches.ListMatches(ctx)
}

// PlayerMatch pairs a match with whether the viewed player won it.
type PlayerMatch struct {
	Match domain.Match
	Won   bool
}

// PlayerDetail returns a player together with their matches, newest first,
// each annotated with the outcome from that player's side.
func (s *LeagueService) PlayerDetail(ctx context.Context, playerID string) (domain.Player, []PlayerMatch, error) {
	p, err := s.Players.GetPlayer(ctx, playerID)
	if err != nil {
		return domain.Player{}, nil, err
	}

	matches, err := s.Matches.ListMatchesForPlayer(ctx, playerID)
	if err != nil {
		return domain.Player{}, nil, err
	}

	annotated := make([]PlayerMatch, 0, len(matches))
	for _, m := range matches {
		annotated = append(annotated, PlayerMatch{Match: m, Won: m.WonBy(playerID)})
	}
	return p, annotated, nil
}

func (s *LeagueService) ListStadiums(ctx context.Context) ([]domain.Stadium, error) {
	return s.Stadiums.ListStadiums(ctx)
}

// CreateStadium validates and adds a venue to the pool offered on the report
// forms.
func (s *LeagueService) CreateStadium(ctx context.Context, surface domain.Surface, locationName string) (domain.Stadium, error) {
	fields := map[string]string{}
	if !surface.Valid() {
		fields["surface"] = "Please choose a valid surface"
	}
	if len(locationName) < 1 || len(locationName) > 20 {
		fields["location_name"] = "Location must be between 1 and 20 characters"
	}
	if len(fields) > 0 {
		return domain.Stadium{}, domain.NewValidationError(fields)
	}
	return s.Stadiums.CreateStadium(ctx, surface, locationName)
}
