package domain

// Submission messages shown to the reporter when a match result is rejected.
const (
	msgSelfMatch       = "You selected the same person to win and lose. Try again."
	msgDuplicateWinner = "You selected the same person to win. Try again."
	msgDuplicateLoser  = "You selected the same person to lose. Try again."
	msgZeroScore       = "You selected winner game 0. Try again."
	msgNegativeScore   = "You selected a negative game count. Try again."
	msgNonWinningScore = "Winner game is smaller than loser game. Try again."
)

// ValidRegistrationEntry reports whether a registration field is acceptable:
// 1-30 characters from letters, digits and - _ @ . '
func ValidRegistrationEntry(s string) bool {
	if len(s) < 1 || len(s) > 30 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '@' || r == '.' || r == '\'':
		default:
			return false
		}
	}
	return true
}

// ValidateSinglesResult checks a singles submission. The check order is
// user-visible: self-match before score checks, negative then zero scores
// before the non-winning score comparison.
func ValidateSinglesResult(winnerID, loserID string, winnerGames, loserGames int) error {
	switch {
	case winnerID == loserID:
		return NewValidationError(map[string]string{"players": msgSelfMatch})
	case winnerGames < 0 || loserGames < 0:
		return NewValidationError(map[string]string{"winner_games": msgNegativeScore})
	case winnerGames == 0:
		return NewValidationError(map[string]string{"winner_games": msgZeroScore})
	case winnerGames <= loserGames:
		return NewValidationError(map[string]string{"winner_games": msgNonWinningScore})
	}
	return nil
}

// ValidateDoublesResult checks a doubles submission. All four participants
// must be pairwise distinct; cross-side duplicates are reported before
// same-side ones, then the score checks apply as for singles.
func ValidateDoublesResult(winner1ID, winner2ID, loser1ID, loser2ID string, winnerGames, loserGames int) error {
	switch {
	case winner1ID == loser1ID || winner1ID == loser2ID || winner2ID == loser1ID || winner2ID == loser2ID:
		return NewValidationError(map[string]string{"players": msgSelfMatch})
	case winner1ID == winner2ID:
		return NewValidationError(map[string]string{"winners": msgDuplicateWinner})
	case loser1ID == loser2ID:
		return NewValidationError(map[string]string{"losers": msgDuplicateLoser})
	case winnerGames < 0 || loserGames < 0:
		return NewValidationError(map[string]string{"winner_games": msgNegativeScore})
	case winnerGames == 0:
		return NewValidationError(map[string]string{"winner_games": msgZeroScore})
	case winnerGames <= loserGames:
		return NewValidationError(map[string]string{"winner_games": msgNonWinningScore})
	}
	return nil
}

// AuthorizeParticipant fails with ErrNotParticipant unless the submitting
// user's account backs one of the match participants.
func AuthorizeParticipant(submitterUserID string, participants ...Player) error {
	for _, p := range participants {
		if p.UserID != "" && p.UserID == submitterUserID {
			return nil
		}
	}
	return ErrNotParticipant
}
