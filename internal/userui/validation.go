package userui

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

func formInt(r *http.Request, field string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(r.FormValue(field)))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func formDate(r *http.Request, field string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(r.FormValue(field)))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
