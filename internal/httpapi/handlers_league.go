package httpapi

import (
	"net/http"

	"TennisLeaguewebserver/internal/domain"
)

type playerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`

	GameWins    int `json:"game_wins"`
	GameLosses  int `json:"game_losses"`
	MatchWins   int `json:"match_wins"`
	MatchLosses int `json:"match_losses"`
	Point       int `json:"point"`

	GameWinPercent  string `json:"game_win_percent"`
	MatchWinPercent string `json:"match_win_percent"`
}

func toPlayerResponse(p domain.Player) playerResponse {
	return playerResponse{
		ID:              p.ID,
		Username:        p.Username,
		GameWins:        p.GameWins,
		GameLosses:      p.GameLosses,
		MatchWins:       p.MatchWins,
		MatchLosses:     p.MatchLosses,
		Point:           p.Point,
		GameWinPercent:  p.GameWinPercent(),
		MatchWinPercent: p.MatchWinPercent(),
	}
}

func (a *api) handleStandings(w http.ResponseWriter, r *http.Request) {
	players, err := a.leagueSvc.Standings(r.Context())
	if err != nil {
		a.logger.Error("httpapi: standings failed", "err", err)
		WriteDomainError(w, err)
		return
	}

	out := make([]playerResponse, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerResponse(p))
	}
	WriteJSON(w, http.StatusOK, map[string]any{"players": out})
}

type playerDetailResponse struct {
	Player  playerResponse        `json:"player"`
	Matches []playerMatchResponse `json:"matches"`
}

type playerMatchResponse struct {
	Won   bool          `json:"won"`
	Match matchResponse `json:"match"`
}

func (a *api) handlePlayerDetail(w http.ResponseWriter, r *http.Request) {
	p, matches, err := a.leagueSvc.PlayerDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	out := playerDetailResponse{
		Player:  toPlayerResponse(p),
		Matches: make([]playerMatchResponse, 0, len(matches)),
	}
	for _, pm := range matches {
		out.Matches = append(out.Matches, playerMatchResponse{Won: pm.Won, Match: toMatchResponse(pm.Match)})
	}
	WriteJSON(w, http.StatusOK, out)
}

type stadiumResponse struct {
	ID           string `json:"id"`
	Surface      string `json:"surface"`
	LocationName string `json:"location_name"`
}

func (a *api) handleStadiumsList(w http.ResponseWriter, r *http.Request) {
	stadiums, err := a.leagueSvc.ListStadiums(r.Context())
	if err != nil {
		a.logger.Error("httpapi: list stadiums failed", "err", err)
		WriteDomainError(w, err)
		return
	}

	out := make([]stadiumResponse, 0, len(stadiums))
	for _, st := range stadiums {
		out = append(out, stadiumResponse{ID: st.ID, Surface: string(st.Surface), LocationName: st.LocationName})
	}
	WriteJSON(w, http.StatusOK, map[string]any{"stadiums": out})
}
