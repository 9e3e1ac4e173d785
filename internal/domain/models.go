package domain

import (
	"fmt"
	"time"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

type User struct {
	ID          string
	Email       string
	Username    string
	Status      UserStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

type UserWithPassword struct {
	User
	PasswordHash string
}

type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

type Surface string

const (
	SurfaceClay Surface = "CLAY"
	SurfaceHard Surface = "HARD"
)

func (s Surface) Valid() bool {
	return s == SurfaceClay || s == SurfaceHard
}

type Stadium struct {
	ID           string
	Surface      Surface
	LocationName string
	CreatedAt    time.Time
}

// Player extends a user with the league counters. Every player is backed by
// exactly one user account, created together at registration.
type Player struct {
	ID       string
	UserID   string
	Username string

	GameWins    int
	GameLosses  int
	MatchWins   int
	MatchLosses int

	// Point is a maintained cache of GameWins - GameLosses. Only the ledger
	// functions recompute it.
	Point int
}

// GameWinPercent formats the player's game win rate, or "N/A" when the player
// has no recorded games.
func (p Player) GameWinPercent() string {
	return winPercent(p.GameWins, p.GameLosses)
}

func (p Player) MatchWinPercent() string {
	return winPercent(p.MatchWins, p.MatchLosses)
}

func winPercent(wins, losses int) string {
	total := wins + losses
	if total == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", float64(wins)/float64(total)*100)
}

type MatchType string

const (
	MatchSingles MatchType = "SINGLES"
	MatchDoubles MatchType = "DOUBLES"
)

type Match struct {
	ID        string
	Type      MatchType
	MatchDate time.Time

	StadiumID   string
	StadiumName string

	Winner1ID string
	Winner2ID string
	Loser1ID  string
	Loser2ID  string

	Winner1Name string
	Winner2Name string
	Loser1Name  string
	Loser2Name  string

	WinnerGames int
	LoserGames  int

	CreatedAt time.Time
}

func (m Match) IsSingles() bool { return m.Type == MatchSingles }

// ParticipantIDs returns the two (singles) or four (doubles) player ids
// referenced by the match.
func (m Match) ParticipantIDs() []string {
	ids := []string{m.Winner1ID, m.Loser1ID}
	if m.Winner2ID != "" {
		ids = append(ids, m.Winner2ID)
	}
	if m.Loser2ID != "" {
		ids = append(ids, m.Loser2ID)
	}
	return ids
}

// WonBy reports whether the given player was on the winning side. For singles
// matches only winner1 is considered, since winner2 is absent.
func (m Match) WonBy(playerID string) bool {
	if m.Winner1ID == playerID {
		return true
	}
	return m.Winner2ID != "" && m.Winner2ID == playerID
}
