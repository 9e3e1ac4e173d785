package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"TennisLeaguewebserver/internal/domain"
	"TennisLeaguewebserver/internal/metrics"
)

func playersByID(t *testing.T, players map[string]domain.Player) *stubPlayersStore {
	return &stubPlayersStore{
		t: t,
		getPlayerFunc: func(_ context.Context, id string) (domain.Player, error) {
			p, ok := players[id]
			if !ok {
				return domain.Player{}, domain.ErrNotFound
			}
			return p, nil
		},
	}
}

func stadiumCentreCourt(t *testing.T) *stubStadiumsStore {
	return &stubStadiumsStore{
		t: t,
		getStadiumFunc: func(_ context.Context, id string) (domain.Stadium, error) {
			if id != "st1" {
				return domain.Stadium{}, domain.ErrNotFound
			}
			return domain.Stadium{ID: "st1", Surface: domain.SurfaceHard, LocationName: "Centre Court"}, nil
		},
	}
}

func TestReportSinglesRecordsMatch(t *testing.T) {
	players := playersByID(t, map[string]domain.Player{
		"p1": {ID: "p1", UserID: "u1", Username: "serena"},
		"p2": {ID: "p2", UserID: "u2", Username: "venus"},
	})

	var recorded domain.Match
	matches := &stubMatchesStore{
		t: t,
		recordMatchFunc: func(_ context.Context, m domain.Match) (domain.Match, error) {
			recorded = m
			m.ID = "m1"
			return m, nil
		},
	}

	rec := metrics.NewMock()
	svc := &MatchService{Players: players, Stadiums: stadiumCentreCourt(t), Matches: matches, Metrics: rec}

	date := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	m, err := svc.ReportSingles(context.Background(), "u1", SinglesReport{
		WinnerID:    "p1",
		LoserID:     "p2",
		StadiumID:   "st1",
		MatchDate:   date,
		WinnerGames: 6,
		LoserGames:  2,
	})
	if err != nil {
		t.Fatalf("ReportSingles: %v", err)
	}
	if m.ID != "m1" {
		t.Fatalf("match id: got %q", m.ID)
	}

	if recorded.Type != domain.MatchSingles {
		t.Fatalf("type: got %q", recorded.Type)
	}
	if recorded.Winner1ID != "p1" || recorded.Loser1ID != "p2" {
		t.Fatalf("participants: got winner %q loser %q", recorded.Winner1ID, recorded.Loser1ID)
	}
	if recorded.Winner2ID != "" || recorded.Loser2ID != "" {
		t.Fatalf("singles match must not carry partners: %+v", recorded)
	}
	if recorded.WinnerGames != 6 || recorded.LoserGames != 2 {
		t.Fatalf("score: got %d-%d", recorded.WinnerGames, recorded.LoserGames)
	}
	if !recorded.MatchDate.Equal(date) {
		t.Fatalf("date: got %v", recorded.MatchDate)
	}
	if rec.MatchesReported() != 1 {
		t.Fatalf("matches reported counter: got %d", rec.MatchesReported())
	}
}

func TestReportSinglesRejectsInvalidResultBeforeStores(t *testing.T) {
	// No stub funcs are set: any store call fails the test.
	svc := &MatchService{Players: &stubPlayersStore{t: t}, Stadiums: &stubStadiumsStore{t: t}, Matches: &stubMatchesStore{t: t}}

	cases := []struct {
		name    string
		report  SinglesReport
		wantMsg string
	}{
		{
			name:    "same player on both sides",
			report:  SinglesReport{WinnerID: "p1", LoserID: "p1", WinnerGames: 6, LoserGames: 2},
			wantMsg: "You selected the same person to win and lose. Try again.",
		},
		{
			name:    "zero winner games",
			report:  SinglesReport{WinnerID: "p1", LoserID: "p2", WinnerGames: 0, LoserGames: 0},
			wantMsg: "You selected winner game 0. Try again.",
		},
		{
			name:    "winner behind loser",
			report:  SinglesReport{WinnerID: "p1", LoserID: "p2", WinnerGames: 3, LoserGames: 6},
			wantMsg: "Winner game is smaller than loser game. Try again.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ReportSingles(context.Background(), "u1", tc.report)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if got := domain.ValidationMessage(err); got != tc.wantMsg {
				t.Fatalf("message: got %q, want %q", got, tc.wantMsg)
			}
		})
	}
}

func TestReportSinglesRequiresParticipant(t *testing.T) {
	players := playersByID(t, map[string]domain.Player{
		"p1": {ID: "p1", UserID: "u1"},
		"p2": {ID: "p2", UserID: "u2"},
	})
	svc := &MatchService{Players: players, Stadiums: stadiumCentreCourt(t), Matches: &stubMatchesStore{t: t}}

	_, err := svc.ReportSingles(context.Background(), "u3", SinglesReport{
		WinnerID: "p1", LoserID: "p2", StadiumID: "st1", WinnerGames: 6, LoserGames: 2,
	})
	if !errors.Is(err, domain.ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
}

func TestReportSinglesUnknownPlayerOrStadium(t *testing.T) {
	players := playersByID(t, map[string]domain.Player{
		"p1": {ID: "p1", UserID: "u1"},
		"p2": {ID: "p2", UserID: "u2"},
	})
	svc := &MatchService{Players: players, Stadiums: stadiumCentreCourt(t), Matches: &stubMatchesStore{t: t}}

	_, err := svc.ReportSingles(context.Background(), "u1", SinglesReport{
		WinnerID: "p1", LoserID: "ghost", StadiumID: "st1", WinnerGames: 6, LoserGames: 2,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown player: expected ErrNotFound, got %v", err)
	}

	_, err = svc.ReportSingles(context.Background(), "u1", SinglesReport{
		WinnerID: "p1", LoserID: "p2", StadiumID: "nowhere", WinnerGames: 6, LoserGames: 2,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown stadium: expected ErrNotFound, got %v", err)
	}
}

func TestReportDoublesRecordsMatch(t *testing.T) {
	players := playersByID(t, map[string]domain.Player{
		"p1": {ID: "p1", UserID: "u1"},
		"p2": {ID: "p2", UserID: "u2"},
		"p3": {ID: "p3", UserID: "u3"},
		"p4": {ID: "p4", UserID: "u4"},
	})

	var recorded domain.Match
	matches := &stubMatchesStore{
		t: t,
		recordMatchFunc: func(_ context.Context, m domain.Match) (domain.Match, error) {
			recorded = m
			m.ID = "m1"
			return m, nil
		},
	}

	svc := &MatchService{Players: players, Stadiums: stadiumCentreCourt(t), Matches: matches, Metrics: metrics.NewMock()}

	// Any of the four participants may submit.
	_, err := svc.ReportDoubles(context.Background(), "u4", DoublesReport{
		Winner1ID: "p1", Winner2ID: "p2", Loser1ID: "p3", Loser2ID: "p4",
		StadiumID: "st1", WinnerGames: 7, LoserGames: 5,
	})
	if err != nil {
		t.Fatalf("ReportDoubles: %v", err)
	}
	if recorded.Type != domain.MatchDoubles {
		t.Fatalf("type: got %q", recorded.Type)
	}
	if recorded.Winner2ID != "p2" || recorded.Loser2ID != "p4" {
		t.Fatalf("partners: got %q and %q", recorded.Winner2ID, recorded.Loser2ID)
	}
}

func TestReportDoublesRejectsDuplicatePlayers(t *testing.T) {
	svc := &MatchService{Players: &stubPlayersStore{t: t}, Stadiums: &stubStadiumsStore{t: t}, Matches: &stubMatchesStore{t: t}}

	cases := []struct {
		name    string
		report  DoublesReport
		wantMsg string
	}{
		{
			name:    "player on both sides",
			report:  DoublesReport{Winner1ID: "p1", Winner2ID: "p2", Loser1ID: "p1", Loser2ID: "p4", WinnerGames: 6, LoserGames: 2},
			wantMsg: "You selected the same person to win and lose. Try again.",
		},
		{
			name:    "duplicate winner",
			report:  DoublesReport{Winner1ID: "p1", Winner2ID: "p1", Loser1ID: "p3", Loser2ID: "p4", WinnerGames: 6, LoserGames: 2},
			wantMsg: "You selected the same person to win. Try again.",
		},
		{
			name:    "duplicate loser",
			report:  DoublesReport{Winner1ID: "p1", Winner2ID: "p2", Loser1ID: "p3", Loser2ID: "p3", WinnerGames: 6, LoserGames: 2},
			wantMsg: "You selected the same person to lose. Try again.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ReportDoubles(context.Background(), "u1", tc.report)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if got := domain.ValidationMessage(err); got != tc.wantMsg {
				t.Fatalf("message: got %q, want %q", got, tc.wantMsg)
			}
		})
	}
}

func TestDeleteMatch(t *testing.T) {
	var deleted string
	matches := &stubMatchesStore{
		t: t,
		deleteMatchFunc: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	rec := metrics.NewMock()
	svc := &MatchService{Matches: matches, Metrics: rec}

	if err := svc.DeleteMatch(context.Background(), "m1"); err != nil {
		t.Fatalf("DeleteMatch: %v", err)
	}
	if deleted != "m1" {
		t.Fatalf("deleted: got %q", deleted)
	}
	if rec.MatchesDeleted() != 1 {
		t.Fatalf("matches deleted counter: got %d", rec.MatchesDeleted())
	}
}

func TestDeleteMatchNotFound(t *testing.T) {
	matches := &stubMatchesStore{
		t: t,
		deleteMatchFunc: func(_ context.Context, _ string) error {
			return domain.ErrNotFound
		},
	}

	rec := metrics.NewMock()
	svc := &MatchService{Matches: matches, Metrics: rec}

	if err := svc.DeleteMatch(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if rec.MatchesDeleted() != 0 {
		t.Fatalf("counter must not move on failure: got %d", rec.MatchesDeleted())
	}
}
