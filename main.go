package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"

	"worktime/config"
	"worktime/database"
	"worktime/handlers"
	"worktime/middleware"
	"worktime/models"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize JWT secret
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize database
	if err := database.Init(cfg.DatabaseURL); err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Define template functions
	funcMap := template.FuncMap{
		"derefFloat": func(p *float64) float64 {
			if p == nil {
				return 0
			}
			return *p
		},
	}

	// Parse templates - each page template paired with base
	templates := make(map[string]*template.Template)
	pages := []string{
		"login", "forgot-password", "reset-password", "change-password",
		"dashboard", "timesheet-list", "timeentry-form", "timeentry-edit",
		"people", "person-form", "projects", "project-form",
	}
	for _, page := range pages {
		templates[page] = template.Must(template.New("").Funcs(funcMap).ParseFiles(
			"templates/base.html",
			"templates/"+page+".html",
		))
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, templates)
	timesheetHandler := handlers.NewTimesheetHandler(cfg, templates)
	dashboardHandler := handlers.NewDashboardHandler(cfg, templates)
	peopleHandler := handlers.NewPeopleHandler(cfg, templates)
	projectsHandler := handlers.NewProjectsHandler(cfg, templates)

	// Setup router
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	// Public routes
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
	router.Get("/login", authHandler.LoginPage)
	router.Post("/login", authHandler.Login)
	router.Get("/forgot-password", authHandler.ForgotPasswordPage)
	router.Post("/forgot-password", authHandler.RequestPasswordReset)
	router.Get("/reset-password", authHandler.ResetPasswordPage)
	router.Post("/reset-password", authHandler.ResetPassword)

	// Protected routes
	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware)

		r.Get("/logout", authHandler.Logout)
		r.Get("/change-password", authHandler.ChangePasswordPage)
		r.Post("/change-password", authHandler.ChangePassword)

		// Dashboard
		r.Get("/dashboard", dashboardHandler.Dashboard)

		// Timesheet (all authenticated users)
		r.Get("/timesheet", timesheetHandler.ListEntries)
		r.Get("/timesheet/new", timesheetHandler.NewEntryPage)
		r.Post("/timesheet/new", timesheetHandler.CreateEntry)
		r.Get("/timesheet/edit", timesheetHandler.EditEntryPage)
		r.Post("/timesheet/edit", timesheetHandler.UpdateEntry)
		r.Post("/timesheet/delete", timesheetHandler.DeleteEntry)
		r.Post("/timesheet/duplicate", timesheetHandler.DuplicateEntry)
		r.Get("/timesheet/export", timesheetHandler.ExportCSV)

		// Listing pages are open to everyone logged in
		r.Get("/people", peopleHandler.ListPeople)
		r.Get("/projects", projectsHandler.ListProjects)

		// Admin only routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Get("/people/new", peopleHandler.NewPersonPage)
			r.Post("/people/new", peopleHandler.CreatePerson)
			r.Get("/people/edit", peopleHandler.EditPersonPage)
			r.Post("/people/edit", peopleHandler.UpdatePerson)
			r.Post("/people/delete", peopleHandler.DeletePerson)
			r.Get("/projects/new", projectsHandler.NewProjectPage)
			r.Post("/projects/new", projectsHandler.CreateProject)
			r.Get("/projects/edit", projectsHandler.EditProjectPage)
			r.Post("/projects/edit", projectsHandler.UpdateProject)
			r.Post("/projects/delete", projectsHandler.DeleteProject)
		})
	})

	slog.Info("server starting", "port", cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, router); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
