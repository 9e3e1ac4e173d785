package userui

import (
	"fmt"
	"html/template"
	"net/http"

	"TennisLeaguewebserver/internal/domain"
	"TennisLeaguewebserver/internal/service"
)

type templates struct {
	standings     *template.Template
	history       *template.Template
	player        *template.Template
	report        *template.Template
	reportSingles *template.Template
	reportDoubles *template.Template
	register      *template.Template
	login         *template.Template
	errorT        *template.Template
}

type viewData struct {
	Title    string
	LoggedIn bool
	Error    string
	Notice   string
}

type standingsViewData struct {
	Title    string
	LoggedIn bool
	Players  []domain.Player
	Error    string
	Notice   string
}

type historyViewData struct {
	Title    string
	LoggedIn bool
	Matches  []domain.Match
	Error    string
	Notice   string
}

type playerViewData struct {
	Title    string
	LoggedIn bool
	Player   domain.Player
	Matches  []service.PlayerMatch
	Error    string
	Notice   string
}

type reportViewData struct {
	Title    string
	LoggedIn bool
	Players  []domain.Player
	Stadiums []domain.Stadium
	Error    string
	Notice   string
}

type registerViewData struct {
	Title      string
	LoggedIn   bool
	Registered bool
	Error      string
	Notice     string
}

type loginViewData struct {
	Title    string
	LoggedIn bool
	Username string
	Error    string
	Notice   string
}

func parseTemplates() (*templates, error) {
	parse := func(files ...string) (*template.Template, error) {
		return template.New("base").ParseFS(assets, files...)
	}

	standings, err := parse("templates/layout.html", "templates/standings.html")
	if err != nil {
		return nil, fmt.Errorf("parse standings: %w", err)
	}
	history, err := parse("templates/layout.html", "templates/history.html")
	if err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	player, err := parse("templates/layout.html", "templates/player.html")
	if err != nil {
		return nil, fmt.Errorf("parse player: %w", err)
	}
	report, err := parse("templates/layout.html", "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	reportSingles, err := parse("templates/layout.html", "templates/report_singles.html")
	if err != nil {
		return nil, fmt.Errorf("parse report_singles: %w", err)
	}
	reportDoubles, err := parse("templates/layout.html", "templates/report_doubles.html")
	if err != nil {
		return nil, fmt.Errorf("parse report_doubles: %w", err)
	}
	register, err := parse("templates/layout.html", "templates/register.html")
	if err != nil {
		return nil, fmt.Errorf("parse register: %w", err)
	}
	login, err := parse("templates/layout.html", "templates/login.html")
	if err != nil {
		return nil, fmt.Errorf("parse login: %w", err)
	}
	errorT, err := parse("templates/layout.html", "templates/error.html")
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return &templates{
		standings:     standings,
		history:       history,
		player:        player,
		report:        report,
		reportSingles: reportSingles,
		reportDoubles: reportDoubles,
		register:      register,
		login:         login,
		errorT:        errorT,
	}, nil
}

func render(w http.ResponseWriter, t *template.Template, name string, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = t.ExecuteTemplate(w, name, data)
}

func (t *templates) renderStandings(w http.ResponseWriter, status int, data any) {
	render(w, t.standings, "standings.html", status, data)
}

func (t *templates) renderHistory(w http.ResponseWriter, status int, data any) {
	render(w, t.history, "history.html", status, data)
}

func (t *templates) renderPlayer(w http.ResponseWriter, status int, data any) {
	render(w, t.player, "player.html", status, data)
}

func (t *templates) renderReport(w http.ResponseWriter, status int, data any) {
	render(w, t.report, "report.html", status, data)
}

func (t *templates) renderReportSingles(w http.ResponseWriter, status int, data any) {
	render(w, t.reportSingles, "report_singles.html", status, data)
}

func (t *templates) renderReportDoubles(w http.ResponseWriter, status int, data any) {
	render(w, t.reportDoubles, "report_doubles.html", status, data)
}

func (t *templates) renderRegister(w http.ResponseWriter, status int, data any) {
	render(w, t.register, "register.html", status, data)
}

func (t *templates) renderLogin(w http.ResponseWriter, status int, data any) {
	render(w, t.login, "login.html", status, data)
}

func (t *templates) renderError(w http.ResponseWriter, status int, title, msg string) {
	render(w, t.errorT, "error.html", status, viewData{Title: title, Error: msg})
}
