package handlers

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"worktime/config"
	"worktime/core"
	"worktime/database"
	"worktime/middleware"
	"worktime/models"
)

type TimesheetHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewTimesheetHandler(cfg *config.Config, templates map[string]*template.Template) *TimesheetHandler {
	return &TimesheetHandler{
		config:    cfg,
		templates: templates,
	}
}

// entryInput carries the already-typed values of a submitted entry form.
// Parsing and coercion happen here; the core only ever sees typed values.
type entryInput struct {
	projectID uint
	personID  uint
	date      time.Time
	start     *time.Time
	end       *time.Time
	explicit  *float64
	notes     string
}

func parseEntryForm(r *http.Request) (entryInput, string) {
	var in entryInput

	in.projectID = parseID(r.FormValue("project_id"))
	if in.projectID == 0 {
		return in, "Select a project"
	}
	in.personID = parseID(r.FormValue("person_id"))

	date, err := parseDate(r.FormValue("date"))
	if err != nil {
		return in, "Invalid date format"
	}
	in.date = date

	if in.start, err = parseClock(r.FormValue("start_time")); err != nil {
		return in, "Invalid start time"
	}
	if in.end, err = parseClock(r.FormValue("end_time")); err != nil {
		return in, "Invalid end time"
	}
	if in.explicit, err = parseOptionalFloat(r.FormValue("duration_hours")); err != nil {
		return in, "Invalid duration"
	}
	in.notes = r.FormValue("notes")
	return in, ""
}

// validateEntry runs the submission pipeline: active-entity guard, then
// duration resolution, then the overlap check. excludeID is the entry
// being edited, zero on create.
func validateEntry(repo core.Repository, in entryInput, excludeID uint) (float64, error) {
	project, err := repo.GetProject(in.projectID)
	if err != nil {
		return 0, fmt.Errorf("project not found")
	}
	person, err := repo.GetPerson(in.personID)
	if err != nil {
		return 0, fmt.Errorf("person not found")
	}

	if err := core.EnsureEntitiesActive(project, person); err != nil {
		return 0, err
	}

	duration, err := core.ResolveDuration(in.date, in.start, in.end, in.explicit)
	if err != nil {
		return 0, err
	}

	validator := core.OverlapValidator{Entries: repo}
	if err := validator.Validate(in.personID, in.date, in.start, in.end, excludeID); err != nil {
		return 0, err
	}

	return duration, nil
}

func (h *TimesheetHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	filters := parseFilters(r)
	if !person.IsAdmin() {
		filters.PersonID = person.ID
	}

	repo := database.NewRepository(database.GetDB())
	entries, err := repo.FindEntries(filters)
	if err != nil {
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}
	totalCost := core.TotalCost(entries)

	var projects []models.Project
	var people []models.Person
	database.GetDB().Order("name").Find(&projects)
	database.GetDB().Order("full_name").Find(&people)

	data := map[string]interface{}{
		"Person":    person,
		"Entries":   entries,
		"TotalCost": totalCost,
		"Filters":   filters,
		"Projects":  projects,
		"People":    people,
		"Error":     r.URL.Query().Get("error"),
		"Success":   r.URL.Query().Get("success"),
	}
	h.templates["timesheet-list"].ExecuteTemplate(w, "base", data)
}

func (h *TimesheetHandler) NewEntryPage(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())

	// Inactive projects and people are not offered as targets for new
	// entries.
	var projects []models.Project
	database.GetDB().Where("is_active = ?", true).Order("name").Find(&projects)

	var people []models.Person
	if person.IsAdmin() {
		database.GetDB().Where("is_active = ?", true).Order("full_name").Find(&people)
	}

	data := map[string]interface{}{
		"Person":   person,
		"Projects": projects,
		"People":   people,
		"Error":    r.URL.Query().Get("error"),
		"Today":    time.Now().Format("2006-01-02"),
	}
	h.templates["timeentry-form"].ExecuteTemplate(w, "base", data)
}

func (h *TimesheetHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/timesheet/new", "Invalid form data")
		return
	}

	in, msg := parseEntryForm(r)
	if msg != "" {
		redirectError(w, r, "/timesheet/new", msg)
		return
	}

	if in.personID == 0 || !person.IsAdmin() {
		in.personID = person.ID
	}
	if !person.CanManageEntriesFor(in.personID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	repo := database.NewRepository(database.GetDB())
	duration, err := validateEntry(repo, in, 0)
	if err != nil {
		redirectError(w, r, "/timesheet/new", err.Error())
		return
	}

	entry := models.TimeEntry{
		ProjectID:     in.projectID,
		PersonID:      in.personID,
		Date:          in.date,
		StartTime:     in.start,
		EndTime:       in.end,
		DurationHours: duration,
		Notes:         in.notes,
	}

	if err := database.GetDB().Create(&entry).Error; err != nil {
		redirectError(w, r, "/timesheet/new", "Failed to create entry")
		return
	}

	redirectSuccess(w, r, "/timesheet", "Entry recorded")
}

func (h *TimesheetHandler) EditEntryPage(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	id := parseID(r.URL.Query().Get("id"))
	if id == 0 {
		redirectError(w, r, "/timesheet", "Invalid entry ID")
		return
	}

	var entry models.TimeEntry
	if err := database.GetDB().Preload("Project").Preload("Person").First(&entry, id).Error; err != nil {
		redirectError(w, r, "/timesheet", "Entry not found")
		return
	}

	if !person.CanManageEntriesFor(entry.PersonID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	// Editing keeps inactive projects and people selectable so existing
	// entries stay readable; the guard still rejects them on save.
	var projects []models.Project
	database.GetDB().Order("name").Find(&projects)

	var people []models.Person
	if person.IsAdmin() {
		database.GetDB().Order("full_name").Find(&people)
	}

	data := map[string]interface{}{
		"Person":   person,
		"Entry":    &entry,
		"Projects": projects,
		"People":   people,
		"Error":    r.URL.Query().Get("error"),
	}
	h.templates["timeentry-edit"].ExecuteTemplate(w, "base", data)
}

func (h *TimesheetHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/timesheet", "Invalid form data")
		return
	}

	id := parseID(r.FormValue("id"))
	if id == 0 {
		redirectError(w, r, "/timesheet", "Invalid entry ID")
		return
	}

	var entry models.TimeEntry
	if err := database.GetDB().First(&entry, id).Error; err != nil {
		redirectError(w, r, "/timesheet", "Entry not found")
		return
	}

	if !person.CanManageEntriesFor(entry.PersonID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	in, msg := parseEntryForm(r)
	if msg != "" {
		redirectError(w, r, fmt.Sprintf("/timesheet/edit?id=%d", id), msg)
		return
	}

	if in.personID == 0 || !person.IsAdmin() {
		in.personID = entry.PersonID
	}
	if !person.CanManageEntriesFor(in.personID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	repo := database.NewRepository(database.GetDB())
	duration, err := validateEntry(repo, in, entry.ID)
	if err != nil {
		redirectError(w, r, fmt.Sprintf("/timesheet/edit?id=%d", id), err.Error())
		return
	}

	entry.ProjectID = in.projectID
	entry.PersonID = in.personID
	entry.Date = in.date
	entry.StartTime = in.start
	entry.EndTime = in.end
	entry.DurationHours = duration
	entry.Notes = in.notes

	if err := database.GetDB().Save(&entry).Error; err != nil {
		redirectError(w, r, fmt.Sprintf("/timesheet/edit?id=%d", id), "Failed to update entry")
		return
	}

	redirectSuccess(w, r, "/timesheet", "Entry updated")
}

func (h *TimesheetHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/timesheet", "Invalid form data")
		return
	}

	id := parseID(r.FormValue("id"))
	if id == 0 {
		redirectError(w, r, "/timesheet", "Invalid entry ID")
		return
	}

	var entry models.TimeEntry
	if err := database.GetDB().First(&entry, id).Error; err != nil {
		redirectError(w, r, "/timesheet", "Entry not found")
		return
	}

	if !person.CanManageEntriesFor(entry.PersonID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	// Deletion is unconditional for an authorized actor; no invariant
	// blocks it.
	if err := database.GetDB().Delete(&entry).Error; err != nil {
		redirectError(w, r, "/timesheet", "Failed to delete entry")
		return
	}

	redirectSuccess(w, r, "/timesheet", "Entry deleted")
}

func (h *TimesheetHandler) DuplicateEntry(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/timesheet", "Invalid form data")
		return
	}

	id := parseID(r.FormValue("id"))
	if id == 0 {
		redirectError(w, r, "/timesheet", "Invalid entry ID")
		return
	}

	var entry models.TimeEntry
	if err := database.GetDB().First(&entry, id).Error; err != nil {
		redirectError(w, r, "/timesheet", "Entry not found")
		return
	}

	if !person.CanManageEntriesFor(entry.PersonID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	duplicate := models.TimeEntry{
		ProjectID:     entry.ProjectID,
		PersonID:      entry.PersonID,
		Date:          entry.Date,
		StartTime:     entry.StartTime,
		EndTime:       entry.EndTime,
		DurationHours: entry.DurationHours,
		Notes:         entry.Notes,
	}

	if err := database.GetDB().Create(&duplicate).Error; err != nil {
		redirectError(w, r, "/timesheet", "Failed to duplicate entry")
		return
	}

	redirectSuccess(w, r, "/timesheet", "Entry duplicated")
}

func (h *TimesheetHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	filters := parseFilters(r)
	if !person.IsAdmin() {
		filters.PersonID = person.ID
	}

	repo := database.NewRepository(database.GetDB())
	entries, err := repo.FindEntries(filters)
	if err != nil {
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=timesheet.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"Date", "Project", "Person", "Hours", "Start", "End", "Notes", "Cost"})

	for _, entry := range entries {
		start := ""
		if entry.StartTime != nil {
			start = entry.StartTime.Format("15:04")
		}
		end := ""
		if entry.EndTime != nil {
			end = entry.EndTime.Format("15:04")
		}
		cost := ""
		if c := core.EntryCost(entry); c != 0 {
			cost = fmt.Sprintf("%.2f", c)
		}
		writer.Write([]string{
			entry.Date.Format("2006-01-02"),
			entry.Project.Name,
			entry.Person.FullName,
			fmt.Sprintf("%.2f", entry.DurationHours),
			start,
			end,
			entry.Notes,
			cost,
		})
	}
}
