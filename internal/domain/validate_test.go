package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidRegistrationEntry(t *testing.T) {
	cases := []struct {
		entry string
		want  bool
	}{
		{"ab", true},
		{"a", true},
		{"user@example.com", true},
		{"o'brien-99_x.y", true},
		{strings.Repeat("a", 30), true},
		{strings.Repeat("a", 31), false},
		{"", false},
		{"has space", false},
		{"semi;colon", false},
		{"ünïcode", false},
	}

	for _, tc := range cases {
		if got := ValidRegistrationEntry(tc.entry); got != tc.want {
			t.Errorf("ValidRegistrationEntry(%q) = %v, want %v", tc.entry, got, tc.want)
		}
	}
}

func expectFieldError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if _, ok := vErr.Fields[field]; !ok {
		t.Fatalf("expected error on field %q, got %v", field, vErr.Fields)
	}
}

func TestValidateSinglesResult(t *testing.T) {
	if err := ValidateSinglesResult("p1", "p2", 6, 2); err != nil {
		t.Fatalf("valid result rejected: %v", err)
	}

	expectFieldError(t, ValidateSinglesResult("p1", "p1", 6, 2), "players")
	expectFieldError(t, ValidateSinglesResult("p1", "p2", 0, 0), "winner_games")
	expectFieldError(t, ValidateSinglesResult("p1", "p2", 3, 6), "winner_games")
	expectFieldError(t, ValidateSinglesResult("p1", "p2", 6, 6), "winner_games")
}

func TestValidateResultRejectsNegativeScores(t *testing.T) {
	// 1 vs -5 satisfies winner > 0 and winner > loser but both game counts
	// must still be non-negative.
	expectFieldError(t, ValidateSinglesResult("p1", "p2", 1, -5), "winner_games")
	expectFieldError(t, ValidateSinglesResult("p1", "p2", -1, -5), "winner_games")
	expectFieldError(t, ValidateDoublesResult("w1", "w2", "l1", "l2", 1, -5), "winner_games")
	expectFieldError(t, ValidateDoublesResult("w1", "w2", "l1", "l2", -1, -5), "winner_games")
}

func TestValidateSinglesResultCheckOrder(t *testing.T) {
	// A self-match with a zero score must be reported as a self-match.
	err := ValidateSinglesResult("p1", "p1", 0, 0)
	expectFieldError(t, err, "players")
}

func TestValidateDoublesResult(t *testing.T) {
	if err := ValidateDoublesResult("w1", "w2", "l1", "l2", 6, 4); err != nil {
		t.Fatalf("valid result rejected: %v", err)
	}

	expectFieldError(t, ValidateDoublesResult("w1", "w2", "w1", "l2", 6, 4), "players")
	expectFieldError(t, ValidateDoublesResult("w1", "w2", "l1", "w2", 6, 4), "players")
	expectFieldError(t, ValidateDoublesResult("w1", "w1", "l1", "l2", 6, 4), "winners")
	expectFieldError(t, ValidateDoublesResult("w1", "w2", "l1", "l1", 6, 4), "losers")
	expectFieldError(t, ValidateDoublesResult("w1", "w2", "l1", "l2", 0, 0), "winner_games")
	expectFieldError(t, ValidateDoublesResult("w1", "w2", "l1", "l2", 4, 6), "winner_games")
}

func TestValidateDoublesResultCheckOrder(t *testing.T) {
	// Cross-side duplicates win over same-side duplicates, which win over
	// score problems.
	expectFieldError(t, ValidateDoublesResult("p", "p", "p", "p", 0, 0), "players")
	expectFieldError(t, ValidateDoublesResult("w", "w", "l", "l", 0, 0), "winners")
	expectFieldError(t, ValidateDoublesResult("w1", "w2", "l", "l", 0, 0), "losers")
}

func TestAuthorizeParticipant(t *testing.T) {
	winner := Player{ID: "p1", UserID: "u1"}
	loser := Player{ID: "p2", UserID: "u2"}

	if err := AuthorizeParticipant("u1", winner, loser); err != nil {
		t.Fatalf("winner's account rejected: %v", err)
	}
	if err := AuthorizeParticipant("u2", winner, loser); err != nil {
		t.Fatalf("loser's account rejected: %v", err)
	}
	if err := AuthorizeParticipant("u3", winner, loser); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
	if err := AuthorizeParticipant("", Player{ID: "p1"}); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant for anonymous submitter, got %v", err)
	}
}

func TestMatchWonBy(t *testing.T) {
	singles := Match{Type: MatchSingles, Winner1ID: "a", Loser1ID: "b"}
	if !singles.WonBy("a") || singles.WonBy("b") {
		t.Fatal("singles won flag wrong")
	}

	doubles := Match{Type: MatchDoubles, Winner1ID: "a", Winner2ID: "b", Loser1ID: "c", Loser2ID: "d"}
	for _, id := range []string{"a", "b"} {
		if !doubles.WonBy(id) {
			t.Fatalf("expected %s to have won", id)
		}
	}
	for _, id := range []string{"c", "d"} {
		if doubles.WonBy(id) {
			t.Fatalf("expected %s to have lost", id)
		}
	}
}

func TestMatchParticipantIDs(t *testing.T) {
	singles := Match{Winner1ID: "a", Loser1ID: "b"}
	if got := singles.ParticipantIDs(); len(got) != 2 {
		t.Fatalf("singles participants: got %v", got)
	}
	doubles := Match{Winner1ID: "a", Winner2ID: "b", Loser1ID: "c", Loser2ID: "d"}
	if got := doubles.ParticipantIDs(); len(got) != 4 {
		t.Fatalf("doubles participants: got %v", got)
	}
}
