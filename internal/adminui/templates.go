package adminui

import (
	"fmt"
	"html/template"
	"net/http"

	"TennisLeaguewebserver/internal/domain"
)

type templates struct {
	login    *template.Template
	stadiums *template.Template
	errorT   *template.Template
}

type viewData struct {
	Title string
	Error string
}

type stadiumsViewData struct {
	Title    string
	Stadiums []domain.Stadium
	Error    string
	Notice   string
}

func parseTemplates() (*templates, error) {
	parse := func(files ...string) (*template.Template, error) {
		return template.New("base").ParseFS(assets, files...)
	}

	login, err := parse("templates/login.html")
	if err != nil {
		return nil, fmt.Errorf("parse login: %w", err)
	}
	stadiums, err := parse("templates/layout.html", "templates/stadiums.html")
	if err != nil {
		return nil, fmt.Errorf("parse stadiums: %w", err)
	}
	errorT, err := parse("templates/error.html")
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return &templates{login: login, stadiums: stadiums, errorT: errorT}, nil
}

func (t *templates) renderLogin(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = t.login.ExecuteTemplate(w, "login.html", data)
}

func (t *templates) renderStadiums(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = t.stadiums.ExecuteTemplate(w, "stadiums.html", data)
}

func (t *templates) renderError(w http.ResponseWriter, status int, title, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = t.errorT.ExecuteTemplate(w, "error.html", viewData{Title: title, Error: msg})
}
