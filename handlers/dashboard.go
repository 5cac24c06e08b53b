package handlers

import (
	"html/template"
	"net/http"

	"worktime/config"
	"worktime/core"
	"worktime/database"
	"worktime/middleware"
	"worktime/models"
)

type DashboardHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewDashboardHandler(cfg *config.Config, templates map[string]*template.Template) *DashboardHandler {
	return &DashboardHandler{
		config:    cfg,
		templates: templates,
	}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	filters := parseFilters(r)
	if filters.StartDate == nil || filters.EndDate == nil {
		start, end := core.DefaultPeriod(h.config.DashboardRangeDays)
		filters.StartDate = &start
		filters.EndDate = &end
	}
	// Non-admins are scoped to their own entries, as on the listing and
	// export views; the dashboard surfaces cost figures.
	if !person.IsAdmin() {
		filters.PersonID = person.ID
	}

	repo := database.NewRepository(database.GetDB())
	entries, err := repo.FindEntries(filters)
	if err != nil {
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	stats := core.Aggregate(entries)
	totalCost := core.TotalCost(entries)

	var projects []models.Project
	var people []models.Person
	database.GetDB().Order("name").Find(&projects)
	database.GetDB().Order("full_name").Find(&people)

	data := map[string]interface{}{
		"Person":    person,
		"Stats":     stats,
		"TotalCost": totalCost,
		"Filters":   filters,
		"Projects":  projects,
		"People":    people,
		"Error":     r.URL.Query().Get("error"),
		"Success":   r.URL.Query().Get("success"),
	}
	h.templates["dashboard"].ExecuteTemplate(w, "base", data)
}
