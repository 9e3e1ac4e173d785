package httpapi

import (
	"net/http"
	"time"

	"TennisLeaguewebserver/internal/domain"
	"TennisLeaguewebserver/internal/service"
)

type matchResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	MatchDate   string `json:"match_date"`
	StadiumID   string `json:"stadium_id"`
	StadiumName string `json:"stadium_name,omitempty"`

	Winner1ID   string `json:"winner1_id"`
	Winner2ID   string `json:"winner2_id,omitempty"`
	Loser1ID    string `json:"loser1_id"`
	Loser2ID    string `json:"loser2_id,omitempty"`
	Winner1Name string `json:"winner1_name,omitempty"`
	Winner2Name string `json:"winner2_name,omitempty"`
	Loser1Name  string `json:"loser1_name,omitempty"`
	Loser2Name  string `json:"loser2_name,omitempty"`

	WinnerGames int `json:"winner_games"`
	LoserGames  int `json:"loser_games"`
}

func toMatchResponse(m domain.Match) matchResponse {
	return matchResponse{
		ID:          m.ID,
		Type:        string(m.Type),
		MatchDate:   m.MatchDate.Format("2006-01-02"),
		StadiumID:   m.StadiumID,
		StadiumName: m.StadiumName,
		Winner1ID:   m.Winner1ID,
		Winner2ID:   m.Winner2ID,
		Loser1ID:    m.Loser1ID,
		Loser2ID:    m.Loser2ID,
		Winner1Name: m.Winner1Name,
		Winner2Name: m.Winner2Name,
		Loser1Name:  m.Loser1Name,
		Loser2Name:  m.Loser2Name,
		WinnerGames: m.WinnerGames,
		LoserGames:  m.LoserGames,
	}
}

type singlesRequest struct {
	WinnerID    string `json:"winner_id"`
	LoserID     string `json:"loser_id"`
	StadiumID   string `json:"stadium_id"`
	MatchDate   string `json:"match_date"`
	WinnerGames int    `json:"winner_games"`
	LoserGames  int    `json:"loser_games"`
}

func (a *api) handleMatchesCreateSingles(w http.ResponseWriter, r *http.Request) {
	u, ok := CurrentUser(r.Context())
	if !ok {
		WriteDomainError(w, domain.ErrUnauthorized)
		return
	}

	var req singlesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad_json", "invalid json")
		return
	}

	matchDate, err := time.Parse("2006-01-02", req.MatchDate)
	if err != nil {
		WriteDomainError(w, domain.NewValidationError(map[string]string{"match_date": "must be YYYY-MM-DD"}))
		return
	}

	m, err := a.matchSvc.ReportSingles(r.Context(), u.ID, service.SinglesReport{
		WinnerID:    req.WinnerID,
		LoserID:     req.LoserID,
		StadiumID:   req.StadiumID,
		MatchDate:   matchDate,
		WinnerGames: req.WinnerGames,
		LoserGames:  req.LoserGames,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, toMatchResponse(m))
}

type doublesRequest struct {
	Winner1ID   string `json:"winner1_id"`
	Winner2ID   string `json:"winner2_id"`
	Loser1ID    string `json:"loser1_id"`
	Loser2ID    string `json:"loser2_id"`
	StadiumID   string `json:"stadium_id"`
	MatchDate   string `json:"match_date"`
	WinnerGames int    `json:"winner_games"`
	LoserGames  int    `json:"loser_games"`
}

func (a *api) handleMatchesCreateDoubles(w http.ResponseWriter, r *http.Request) {
	u, ok := CurrentUser(r.Context())
	if !ok {
		WriteDomainError(w, domain.ErrUnauthorized)
		return
	}

	var req doublesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad_json", "invalid json")
		return
	}

	matchDate, err := time.Parse("2006-01-02", req.MatchDate)
	if err != nil {
		WriteDomainError(w, domain.NewValidationError(map[string]string{"match_date": "must be YYYY-MM-DD"}))
		return
	}

	m, err := a.matchSvc.ReportDoubles(r.Context(), u.ID, service.DoublesReport{
		Winner1ID:   req.Winner1ID,
		Winner2ID:   req.Winner2ID,
		Loser1ID:    req.Loser1ID,
		Loser2ID:    req.Loser2ID,
		StadiumID:   req.StadiumID,
		MatchDate:   matchDate,
		WinnerGames: req.WinnerGames,
		LoserGames:  req.LoserGames,
	})
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, toMatchResponse(m))
}

func (a *api) handleMatchesList(w http.ResponseWriter, r *http.Request) {
	matches, err := a.leagueSvc.History(r.Context())
	if err != nil {
		a.logger.Error("httpapi: list matches failed", "err", err)
		WriteDomainError(w, err)
		return
	}

	out := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, toMatchResponse(m))
	}
	WriteJSON(w, http.StatusOK, map[string]any{"matches": out})
}

func (a *api) handleMatchesGet(w http.ResponseWriter, r *http.Request) {
	m, err := a.matchSvc.Matches.GetMatch(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, toMatchResponse(m))
}

func (a *api) handleMatchesDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.matchSvc.DeleteMatch(r.Context(), r.PathValue("id")); err != nil {
		WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
