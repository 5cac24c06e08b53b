package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"worktime/core"
)

// redirectError sends the user back to path with a displayable message in
// the query string.
func redirectError(w http.ResponseWriter, r *http.Request, path, message string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(message), http.StatusSeeOther)
}

func redirectSuccess(w http.ResponseWriter, r *http.Request, path, message string) {
	http.Redirect(w, r, path+"?success="+url.QueryEscape(message), http.StatusSeeOther)
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// parseClock parses an optional HH:MM form value; empty means absent.
func parseClock(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseOptionalFloat parses an optional decimal form value; empty means
// absent.
func parseOptionalFloat(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func parseID(value string) uint {
	if value == "" {
		return 0
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// parseFilters builds the shared filter specification from query
// parameters. Malformed dates are dropped rather than rejected, matching
// how the filter form treats them.
func parseFilters(r *http.Request) core.Filters {
	q := r.URL.Query()
	var filters core.Filters

	if v := q.Get("start_date"); v != "" {
		if d, err := parseDate(v); err == nil {
			filters.StartDate = &d
		}
	}
	if v := q.Get("end_date"); v != "" {
		if d, err := parseDate(v); err == nil {
			filters.EndDate = &d
		}
	}
	filters.ProjectID = parseID(q.Get("project_id"))
	filters.PersonID = parseID(q.Get("person_id"))
	switch q.Get("include_inactive") {
	case "1", "true", "on":
		filters.IncludeInactive = true
	}
	return filters
}
