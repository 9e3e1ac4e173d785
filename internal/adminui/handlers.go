package adminui

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"TennisLeaguewebserver/internal/auth"
	"TennisLeaguewebserver/internal/domain"
)

func (a *app) handleStadiums(w http.ResponseWriter, r *http.Request) {
	a.renderStadiumsPage(w, r, http.StatusOK, "", "")
}

func (a *app) renderStadiumsPage(w http.ResponseWriter, r *http.Request, status int, errMsg, notice string) {
	stadiums, err := a.leagueSvc.ListStadiums(r.Context())
	if err != nil {
		a.logger.Error("adminui: list stadiums failed", "err", err)
		a.templates.renderError(w, http.StatusInternalServerError, "Error", "Failed to load stadiums")
		return
	}
	a.templates.renderStadiums(w, status, stadiumsViewData{
		Title:    "Stadiums",
		Stadiums: stadiums,
		Error:    errMsg,
		Notice:   notice,
	})
}

func (a *app) handleCreateStadium(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.renderStadiumsPage(w, r, http.StatusBadRequest, "Invalid form", "")
		return
	}

	surface := domain.Surface(strings.ToUpper(strings.TrimSpace(r.Form.Get("surface"))))
	location := strings.TrimSpace(r.Form.Get("location_name"))

	st, err := a.leagueSvc.CreateStadium(r.Context(), surface, location)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			a.renderStadiumsPage(w, r, http.StatusBadRequest, domain.ValidationMessage(err), "")
			return
		}
		a.logger.Error("adminui: create stadium failed", "err", err)
		a.renderStadiumsPage(w, r, http.StatusInternalServerError, "Failed to create stadium", "")
		return
	}

	a.renderStadiumsPage(w, r, http.StatusOK, "", "Added "+st.LocationName)
}

func (a *app) handleLoginGet(w http.ResponseWriter, _ *http.Request) {
	a.templates.renderLogin(w, http.StatusOK, viewData{Title: "Admin Login"})
}

func (a *app) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.templates.renderLogin(w, http.StatusBadRequest, viewData{Title: "Admin Login", Error: "Invalid form"})
		return
	}

	username := strings.TrimSpace(strings.ToLower(r.Form.Get("username")))
	password := r.Form.Get("password")
	if username == "" || password == "" {
		a.templates.renderLogin(w, http.StatusBadRequest, viewData{Title: "Admin Login", Error: "Username and password are required"})
		return
	}

	u, sess, err := a.authSvc.Login(r.Context(), username, password, clientIP(r), r.UserAgent())
	if err != nil {
		a.templates.renderLogin(w, http.StatusUnauthorized, viewData{Title: "Admin Login", Error: "Invalid credentials"})
		return
	}
	if !a.adminEmails[strings.ToLower(u.Email)] {
		a.templates.renderLogin(w, http.StatusForbidden, viewData{Title: "Admin Login", Error: "Not allowed"})
		return
	}

	auth.SetSessionCookie(w, a.cookieCodec.EncodeSessionID(sess.ID), a.sessionTTL, a.cookieSecure)
	http.Redirect(w, r, "/admin/", http.StatusFound)
}

func (a *app) handleLogoutPost(w http.ResponseWriter, r *http.Request) {
	_, sessID, ok := a.currentUser(r)
	if ok {
		_ = a.authSvc.Logout(r.Context(), sessID)
	}
	auth.ClearSessionCookie(w, a.cookieSecure)
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if len(parts) > 0 {
			ip := strings.TrimSpace(parts[0])
			if ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
