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

type ProjectsHandler struct {
	config    *config.Config
	templates map[string]*template.Template
}

func NewProjectsHandler(cfg *config.Config, templates map[string]*template.Template) *ProjectsHandler {
	return &ProjectsHandler{
		config:    cfg,
		templates: templates,
	}
}

func (h *ProjectsHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())

	var projects []models.Project
	database.GetDB().Order("name").Find(&projects)

	data := map[string]interface{}{
		"Person":   person,
		"Projects": projects,
		"Error":    r.URL.Query().Get("error"),
		"Success":  r.URL.Query().Get("success"),
	}
	h.templates["projects"].ExecuteTemplate(w, "base", data)
}

func (h *ProjectsHandler) NewProjectPage(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	data := map[string]interface{}{
		"Person": person,
		"Error":  r.URL.Query().Get("error"),
	}
	h.templates["project-form"].ExecuteTemplate(w, "base", data)
}

func (h *ProjectsHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/projects/new", "Invalid form data")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		redirectError(w, r, "/projects/new", "Name is required")
		return
	}

	project := models.Project{
		Name:     name,
		Code:     strings.TrimSpace(r.FormValue("code")),
		Client:   strings.TrimSpace(r.FormValue("client")),
		IsActive: r.FormValue("is_active") == "on",
	}

	if err := database.GetDB().Create(&project).Error; err != nil {
		redirectError(w, r, "/projects/new", "Failed to create project")
		return
	}

	redirectSuccess(w, r, "/projects", "Project created")
}

func (h *ProjectsHandler) EditProjectPage(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	id := parseID(r.URL.Query().Get("id"))
	if id == 0 {
		redirectError(w, r, "/projects", "Invalid project ID")
		return
	}

	var project models.Project
	if err := database.GetDB().First(&project, id).Error; err != nil {
		redirectError(w, r, "/projects", "Project not found")
		return
	}

	data := map[string]interface{}{
		"Person":  person,
		"Project": &project,
		"Error":   r.URL.Query().Get("error"),
	}
	h.templates["project-form"].ExecuteTemplate(w, "base", data)
}

func (h *ProjectsHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/projects", "Invalid form data")
		return
	}

	id := parseID(r.FormValue("id"))
	if id == 0 {
		redirectError(w, r, "/projects", "Invalid project ID")
		return
	}

	var project models.Project
	if err := database.GetDB().First(&project, id).Error; err != nil {
		redirectError(w, r, "/projects", "Project not found")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		redirectError(w, r, fmt.Sprintf("/projects/edit?id=%d", id), "Name is required")
		return
	}

	project.Name = name
	project.Code = strings.TrimSpace(r.FormValue("code"))
	project.Client = strings.TrimSpace(r.FormValue("client"))
	project.IsActive = r.FormValue("is_active") == "on"

	if err := database.GetDB().Save(&project).Error; err != nil {
		redirectError(w, r, fmt.Sprintf("/projects/edit?id=%d", id), "Failed to update project")
		return
	}

	redirectSuccess(w, r, "/projects", "Project updated")
}

func (h *ProjectsHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/projects", "Invalid form data")
		return
	}

	id := parseID(r.FormValue("id"))
	if id == 0 {
		redirectError(w, r, "/projects", "Invalid project ID")
		return
	}

	var project models.Project
	if err := database.GetDB().First(&project, id).Error; err != nil {
		redirectError(w, r, "/projects", "Project not found")
		return
	}

	if err := database.GetDB().Delete(&project).Error; err != nil {
		redirectError(w, r, "/projects", "Failed to delete project")
		return
	}

	redirectSuccess(w, r, "/projects", "Project deleted")
}
