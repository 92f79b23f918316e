package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/handler/http/middleware"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/jwt"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/metrics"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	Metrics        *metrics.Metrics
	// UploadsDir is served under /uploads when set.
	UploadsDir string
}

type Handlers struct {
	Auth    AuthHandler
	User    UserHandler
	Task    TaskHandler
	Project ProjectHandler
	Leave   LeaveHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(middleware.Metrics(m))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Method(http.MethodGet, "/metrics", m.Handler())

	if opts.UploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadsDir))))
	}

	authenticated := func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password", h.Auth.ResetPassword)

			r.Group(func(r chi.Router) {
				authenticated(r)
				r.Get("/me", h.Auth.Me)
				r.Get("/profile", h.Auth.Profile)
				r.Get("/roles", h.Auth.Roles)
				r.Put("/mobile", h.Auth.UpdateMobile)
				r.Post("/avatar", h.Auth.UploadAvatar)
				r.With(middleware.RequireRoles(access.RoleSuperAdmin)).Get("/admins", h.User.ListAdmins)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			authenticated(r)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.User.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(access.RoleSuperAdmin, access.RoleAdmin, access.RoleEmployee))
					r.Get("/{id}", h.User.Get)
					r.Put("/{id}", h.User.Update)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(access.RoleSuperAdmin, access.RoleAdmin))
					r.Post("/", h.User.Create)
					r.Delete("/{id}", h.User.Delete)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Get("/{id}", h.Task.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(access.RoleEmployee, access.RoleAdmin, access.RoleSuperAdmin))
					r.Post("/", h.Task.Create)
					r.Put("/{id}", h.Task.Update)
					r.Delete("/{id}", h.Task.Delete)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(access.RoleSuperAdmin, access.RoleAdmin))
					r.Get("/employees", h.User.ListEmployees)
					r.Delete("/employees/{id}", h.User.Delete)
					r.Get("/employees/{id}/tasks", h.Task.ListEmployeeTasks)
					r.Get("/tasks/employees", h.Task.ListAllEmployeeTasks)
					r.Post("/check-email", h.User.CheckSubordinateEmail)
					r.Post("/reset-password", h.User.ResetSubordinatePassword)
				})
				r.With(middleware.RequireRoles(access.RoleSuperAdmin)).Get("/tasks/admins", h.Task.ListAdminTasks)

				r.Get("/projects", h.Project.ListProjects)
				r.Get("/projects/{id}/sub-projects", h.Project.ListSubProjectsByProject)
				r.Get("/sub-projects", h.Project.ListSubProjects)
				r.With(middleware.RequireRoles(access.RoleAdmin)).Post("/projects", h.Project.CreateProject)
				r.With(middleware.RequireRoles(access.RoleAdmin, access.RoleSuperAdmin)).Delete("/projects/{id}", h.Project.DeactivateProject)
				r.With(middleware.RequireRoles(access.RoleAdmin, access.RoleEmployee)).Post("/sub-projects", h.Project.CreateSubProject)
			})

			r.Route("/hrms", func(r chi.Router) {
				r.Get("/leave-types", h.Leave.ListTypes)
				r.Post("/apply-leave", h.Leave.Apply)
				r.Get("/my-leaves", h.Leave.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(access.RoleHR, access.RoleSuperAdmin))
					r.Get("/pending", h.Leave.ListPending)
					r.Put("/decide", h.Leave.Decide)
				})
			})
		})
	})

	return r
}
