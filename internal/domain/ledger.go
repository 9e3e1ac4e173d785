package domain

// The ledger is the only code that mutates player counters. Every operation
// recomputes Point so that Point == GameWins - GameLosses holds after each
// call, and every apply has an exact reverse: applying and then reversing a
// result with the same arguments restores the counters bit for bit.
//
// winnerGames/loserGames are the match score as recorded: the games taken by
// the winning side and the losing side. A losing player therefore gains
// loserGames game wins and winnerGames game losses. For doubles the same
// deltas are applied once per participant on each side.

func ApplyWin(p *Player, winnerGames, loserGames int) {
	p.MatchWins++
	p.GameWins += winnerGames
	p.GameLosses += loserGames
	p.Point = p.GameWins - p.GameLosses
}

func ApplyLoss(p *Player, winnerGames, loserGames int) {
	p.MatchLosses++
	p.GameWins += loserGames
	p.GameLosses += winnerGames
	p.Point = p.GameWins - p.GameLosses
}

func ReverseWin(p *Player, winnerGames, loserGames int) {
	p.MatchWins--
	p.GameWins -= winnerGames
	p.GameLosses -= loserGames
	p.Point = p.GameWins - p.GameLosses
}

func ReverseLoss(p *Player, winnerGames, loserGames int) {
	p.MatchLosses--
	p.GameWins -= loserGames
	p.GameLosses -= winnerGames
	p.Point = p.GameWins - p.GameLosses
}

// WinDeltas returns the counter deltas a win produces, expressed as a Player
// whose counters start at zero. Stores use this to persist ledger output as
// relative updates.
func WinDeltas(winnerGames, loserGames int) Player {
	var p Player
	ApplyWin(&p, winnerGames, loserGames)
	return p
}

func LossDeltas(winnerGames, loserGames int) Player {
	var p Player
	ApplyLoss(&p, winnerGames, loserGames)
	return p
}
