package userui

import (
	"errors"
	"net/http"
	"strings"

	"TennisLeaguewebserver/internal/auth"
	"TennisLeaguewebserver/internal/domain"
	"TennisLeaguewebserver/internal/service"
)

const siteTitle = "Tennis Manager"

func (a *app) handleStandings(w http.ResponseWriter, r *http.Request) {
	user, _, loggedIn := a.currentUser(r)

	players, err := a.leagueSvc.Standings(r.Context())
	if err != nil {
		a.logger.Error("userui: standings failed", "err", err)
		a.templates.renderError(w, http.StatusInternalServerError, siteTitle, "Could not load standings.")
		return
	}

	var notice string
	switch r.URL.Query().Get("notice") {
	case "submitted":
		notice = "Submission successful!"
	case "login_success":
		if loggedIn {
			notice = "Welcome to the Tennis Manager, " + user.Username
		}
	}

	a.templates.renderStandings(w, http.StatusOK, standingsViewData{
		Title:    siteTitle,
		LoggedIn: loggedIn,
		Players:  players,
		Notice:   notice,
	})
}

func (a *app) handleHistory(w http.ResponseWriter, r *http.Request) {
	_, _, loggedIn := a.currentUser(r)

	matches, err := a.leagueSvc.History(r.Context())
	if err != nil {
		a.logger.Error("userui: history failed", "err", err)
		a.templates.renderError(w, http.StatusInternalServerError, siteTitle, "Could not load match history.")
		return
	}

	a.templates.renderHistory(w, http.StatusOK, historyViewData{
		Title:    siteTitle,
		LoggedIn: loggedIn,
		Matches:  matches,
	})
}

func (a *app) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("id")

	if err := a.matchSvc.DeleteMatch(r.Context(), matchID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.templates.renderError(w, http.StatusNotFound, siteTitle, "Match not found.")
			return
		}
		a.logger.Error("userui: delete match failed", "err", err, "match_id", matchID)
		a.templates.renderError(w, http.StatusInternalServerError, siteTitle, "Could not delete the match.")
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (a *app) handlePlayerDetails(w http.ResponseWriter, r *http.Request) {
	_, _, loggedIn := a.currentUser(r)
	playerID := r.PathValue("id")

	player, matches, err := a.leagueSvc.PlayerDetail(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.templates.renderError(w, http.StatusNotFound, siteTitle, "Player not found.")
			return
		}
		a.logger.Error("userui: player details failed", "err", err, "player_id", playerID)
		a.templates.renderError(w, http.StatusInternalServerError, siteTitle, "Could not load player details.")
		return
	}

	a.templates.renderPlayer(w, http.StatusOK, playerViewData{
		Title:    siteTitle,
		LoggedIn: loggedIn,
		Player:   player,
		Matches:  matches,
	})
}

func (a *app) handleReport(w http.ResponseWriter, r *http.Request) {
	a.templates.renderReport(w, http.StatusOK, viewData{Title: siteTitle, LoggedIn: true})
}

// reportFormData loads the selects shown on both report forms. On error the
// forms come back empty: the reporter picks everything again.
func (a *app) reportFormData(r *http.Request, status string) (reportViewData, error) {
	players, err := a.leagueSvc.Standings(r.Context())
	if err != nil {
		return reportViewData{}, err
	}
	stadiums, err := a.leagueSvc.ListStadiums(r.Context())
	if err != nil {
		return reportViewData{}, err
	}
	return reportViewData{
		Title:    siteTitle,
		LoggedIn: true,
		Players:  players,
		Stadiums: stadiums,
		Error:    status,
	}, nil
}

func (a *app) handleReportSingles(w http.ResponseWriter, r *http.Request) {
	a.renderSinglesForm(w, r, http.StatusOK, "")
}

func (a *app) handleReportDoubles(w http.ResponseWriter, r *http.Request) {
	a.renderDoublesForm(w, r, http.StatusOK, "")
}

func (a *app) renderSinglesForm(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data, err := a.reportFormData(r, msg)
	if err != nil {
		a.logger.Error("userui: report form failed", "err", err)
		a.templates.renderError(w, http.StatusInternalServerError, siteTitle, "Could not load the report form.")
		return
	}
	a.templates.renderReportSingles(w, status, data)
}

func (a *app) renderDoublesForm(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data, err := a.reportFormData(r, msg)
	if err != nil {
		a.logger.Error("userui: report form failed", "err", err)
		a.templates.renderError(w, http.StatusInternalServerError, siteTitle, "Could not load the report form.")
		return
	}
	a.templates.renderReportDoubles(w, status, data)
}

func (a *app) handleMakeSingles(w http.ResponseWriter, r *http.Request) {
	user, _, _ := a.currentUser(r)

	if err := r.ParseForm(); err != nil {
		a.renderSinglesForm(w, r, http.StatusBadRequest, "Invalid form submission. Try again.")
		return
	}

	matchDate, dateOK := formDate(r, "match_date")
	winnerGames, wgOK := formInt(r, "winner_games")
	loserGames, lgOK := formInt(r, "loser_games")
	if !dateOK || !wgOK || !lgOK {
		a.renderSinglesForm(w, r, http.StatusBadRequest, "Please fill in every field. Try again.")
		return
	}

	_, err := a.matchSvc.ReportSingles(r.Context(), user.ID, service.SinglesReport{
		WinnerID:    r.FormValue("winner1"),
		LoserID:     r.FormValue("loser1"),
		StadiumID:   r.FormValue("stadium"),
		MatchDate:   matchDate,
		WinnerGames: winnerGames,
		LoserGames:  loserGames,
	})
	if err != nil {
		a.renderReportError(w, r, err, a.renderSinglesForm)
		return
	}

	http.Redirect(w, r, "/?notice=submitted", http.StatusFound)
}

func (a *app) handleMakeDoubles(w http.ResponseWriter, r *http.Request) {
	user, _, _ := a.currentUser(r)

	if err := r.ParseForm(); err != nil {
		a.renderDoublesForm(w, r, http.StatusBadRequest, "Invalid form submission. Try again.")
		return
	}

	matchDate, dateOK := formDate(r, "match_date")
	winnerGames, wgOK := formInt(r, "winner_games")
	loserGames, lgOK := formInt(r, "loser_games")
	if !dateOK || !wgOK || !lgOK {
		a.renderDoublesForm(w, r, http.StatusBadRequest, "Please fill in every field. Try again.")
		return
	}

	_, err := a.matchSvc.ReportDoubles(r.Context(), user.ID, service.DoublesReport{
		Winner1ID:   r.FormValue("winner1"),
		Winner2ID:   r.FormValue("winner2"),
		Loser1ID:    r.FormValue("loser1"),
		Loser2ID:    r.FormValue("loser2"),
		StadiumID:   r.FormValue("stadium"),
		MatchDate:   matchDate,
		WinnerGames: winnerGames,
		LoserGames:  loserGames,
	})
	if err != nil {
		a.renderReportError(w, r, err, a.renderDoublesForm)
		return
	}

	http.Redirect(w, r, "/?notice=submitted", http.StatusFound)
}

func (a *app) renderReportError(w http.ResponseWriter, r *http.Request, err error, renderForm func(http.ResponseWriter, *http.Request, int, string)) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		renderForm(w, r, http.StatusBadRequest, domain.ValidationMessage(err))
	case errors.Is(err, domain.ErrNotParticipant):
		renderForm(w, r, http.StatusForbidden, "You can only report a match that you are involved in.")
	case errors.Is(err, domain.ErrNotFound):
		renderForm(w, r, http.StatusBadRequest, "Please pick players and a stadium from the lists. Try again.")
	default:
		a.logger.Error("userui: report match failed", "err", err)
		a.templates.renderError(w, http.StatusInternalServerError, siteTitle, "Could not record the match.")
	}
}

func (a *app) handleRegisterGet(w http.ResponseWriter, r *http.Request) {
	_, _, loggedIn := a.currentUser(r)
	a.templates.renderRegister(w, http.StatusOK, registerViewData{Title: siteTitle, LoggedIn: loggedIn})
}

func (a *app) handleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.templates.renderRegister(w, http.StatusBadRequest, registerViewData{Title: siteTitle, Error: "Invalid form submission. Try again."})
		return
	}

	username := strings.ToLower(r.FormValue("username"))
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	_, sess, err := a.authSvc.Register(r.Context(), username, email, password, confirm, clientIP(r), r.UserAgent())
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			a.templates.renderRegister(w, http.StatusBadRequest, registerViewData{Title: siteTitle, Error: domain.ValidationMessage(err)})
			return
		}
		a.logger.Error("userui: register failed", "err", err)
		a.templates.renderRegister(w, http.StatusInternalServerError, registerViewData{Title: siteTitle, Error: "Registration failed. Try again."})
		return
	}

	auth.SetSessionCookie(w, a.cookieCodec.EncodeSessionID(sess.ID), a.sessionTTL, a.cookieSecure)
	a.templates.renderRegister(w, http.StatusOK, registerViewData{Title: siteTitle, LoggedIn: true, Registered: true})
}

func (a *app) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := a.currentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	a.templates.renderLogin(w, http.StatusOK, loginViewData{Title: siteTitle})
}

func (a *app) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.templates.renderLogin(w, http.StatusBadRequest, loginViewData{Title: siteTitle, Error: "Invalid form submission. Try again."})
		return
	}

	username := strings.ToLower(r.FormValue("username"))
	password := r.FormValue("password")

	_, sess, err := a.authSvc.Login(r.Context(), username, password, clientIP(r), r.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserDisabled):
			a.templates.renderLogin(w, http.StatusForbidden, loginViewData{Title: siteTitle, Username: username, Error: "This account is disabled, try again."})
		case errors.Is(err, domain.ErrInvalidCredentials):
			a.templates.renderLogin(w, http.StatusUnauthorized, loginViewData{Title: siteTitle, Username: username, Error: "Either your username or password is incorrect. Try again."})
		default:
			a.logger.Error("userui: login failed", "err", err)
			a.templates.renderLogin(w, http.StatusInternalServerError, loginViewData{Title: siteTitle, Username: username, Error: "Login failed. Try again."})
		}
		return
	}

	auth.SetSessionCookie(w, a.cookieCodec.EncodeSessionID(sess.ID), a.sessionTTL, a.cookieSecure)
	http.Redirect(w, r, "/?notice=login_success", http.StatusFound)
}

func (a *app) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, sessID, ok := a.currentUser(r); ok {
		if err := a.authSvc.Logout(r.Context(), sessID); err != nil {
			a.logger.Error("userui: logout failed", "err", err)
		}
	}
	auth.ClearSessionCookie(w, a.cookieSecure)
	http.Redirect(w, r, "/", http.StatusFound)
}
