package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"worktime/config"
	"worktime/database"
	"worktime/middleware"
	"worktime/models"
)

type PeopleHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewPeopleHandler(cfg *config.Config, templates map[string]*template.Template) *PeopleHandler {
	return &PeopleHandler{
		config:    cfg,
		templates: templates,
	}
}

func (h *PeopleHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())

	var people []models.Person
	database.GetDB().Order("full_name").Find(&people)

	data := map[string]interface{}{
		"Person":  person,
		"People":  people,
		"Error":   r.URL.Query().Get("error"),
		"Success": r.URL.Query().Get("success"),
	}
	h.templates["people"].ExecuteTemplate(w, "base", data)
}

func (h *PeopleHandler) NewPersonPage(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	data := map[string]interface{}{
		"Person": person,
		"Error":  r.URL.Query().Get("error"),
	}
	h.templates["person-form"].ExecuteTemplate(w, "base", data)
}

func (h *PeopleHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/people/new", "Invalid form data")
		return
	}

	fullName := strings.TrimSpace(r.FormValue("full_name"))
	email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	password := r.FormValue("password")
	role := parseRole(r.FormValue("role"))

	if fullName == "" || email == "" {
		redirectError(w, r, "/people/new", "Name and email are required")
		return
	}
	if len(password) < 8 {
		redirectError(w, r, "/people/new", "Password must be at least 8 characters")
		return
	}

	rate, err := parseOptionalFloat(r.FormValue("hourly_rate"))
	if err != nil || (rate != nil && *rate < 0) {
		redirectError(w, r, "/people/new", "Invalid hourly rate")
		return
	}

	var existing models.Person
	if err := database.GetDB().Where("email = ?", email).First(&existing).Error; err == nil {
		redirectError(w, r, "/people/new", "Email already registered")
		return
	}

	person := models.Person{
		FullName:   fullName,
		Email:      email,
		HourlyRate: rate,
		IsActive:   r.FormValue("is_active") == "on",
		Role:       role,
	}
	if err := person.SetPassword(password); err != nil {
		redirectError(w, r, "/people/new", "Failed to create person")
		return
	}

	if err := database.GetDB().Create(&person).Error; err != nil {
		redirectError(w, r, "/people/new", "Failed to create person")
		return
	}

	redirectSuccess(w, r, "/people", "Person created")
}

func (h *PeopleHandler) EditPersonPage(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	id := parseID(r.URL.Query().Get("id"))
	if id == 0 {
		redirectError(w, r, "/people", "Invalid person ID")
		return
	}

	var target models.Person
	if err := database.GetDB().First(&target, id).Error; err != nil {
		redirectError(w, r, "/people", "Person not found")
		return
	}

	data := map[string]interface{}{
		"Person": person,
		"Target": &target,
		"Error":  r.URL.Query().Get("error"),
	}
	h.templates["person-form"].ExecuteTemplate(w, "base", data)
}

func (h *PeopleHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/people", "Invalid form data")
		return
	}

	id := parseID(r.FormValue("id"))
	if id == 0 {
		redirectError(w, r, "/people", "Invalid person ID")
		return
	}

	var target models.Person
	if err := database.GetDB().First(&target, id).Error; err != nil {
		redirectError(w, r, "/people", "Person not found")
		return
	}

	fullName := strings.TrimSpace(r.FormValue("full_name"))
	email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
	if fullName == "" || email == "" {
		redirectError(w, r, fmt.Sprintf("/people/edit?id=%d", id), "Name and email are required")
		return
	}

	rate, err := parseOptionalFloat(r.FormValue("hourly_rate"))
	if err != nil || (rate != nil && *rate < 0) {
		redirectError(w, r, fmt.Sprintf("/people/edit?id=%d", id), "Invalid hourly rate")
		return
	}

	var existing models.Person
	if err := database.GetDB().Where("email = ? AND id <> ?", email, target.ID).First(&existing).Error; err == nil {
		redirectError(w, r, fmt.Sprintf("/people/edit?id=%d", id), "Email already registered")
		return
	}

	target.FullName = fullName
	target.Email = email
	target.HourlyRate = rate
	target.IsActive = r.FormValue("is_active") == "on"
	target.Role = parseRole(r.FormValue("role"))

	if password := r.FormValue("password"); password != "" {
		if len(password) < 8 {
			redirectError(w, r, fmt.Sprintf("/people/edit?id=%d", id), "Password must be at least 8 characters")
			return
		}
		if err := target.SetPassword(password); err != nil {
			redirectError(w, r, fmt.Sprintf("/people/edit?id=%d", id), "Failed to update person")
			return
		}
	}

	if err := database.GetDB().Save(&target).Error; err != nil {
		redirectError(w, r, fmt.Sprintf("/people/edit?id=%d", id), "Failed to update person")
		return
	}

	redirectSuccess(w, r, "/people", "Person updated")
}

func (h *PeopleHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/people", "Invalid form data")
		return
	}

	id := parseID(r.FormValue("id"))
	if id == 0 {
		redirectError(w, r, "/people", "Invalid person ID")
		return
	}

	var target models.Person
	if err := database.GetDB().First(&target, id).Error; err != nil {
		redirectError(w, r, "/people", "Person not found")
		return
	}

	if err := database.GetDB().Delete(&target).Error; err != nil {
		redirectError(w, r, "/people", "Failed to delete person")
		return
	}

	redirectSuccess(w, r, "/people", "Person deleted")
}

func parseRole(value string) models.Role {
	if value == string(models.RoleAdmin) {
		return models.RoleAdmin
	}
	return models.RoleUser
}
