package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workgrid-hq/hr-portal/internal/config"
	"github.com/workgrid-hq/hr-portal/internal/handler/http/middleware"
	"github.com/workgrid-hq/hr-portal/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Employee   EmployeeHandler
	Asset      AssetHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/check-email", h.Auth.CheckEmail)
			r.Post("/register-company", h.Auth.RegisterCompany)
			r.Post("/register-employee", h.Auth.RegisterEmployee)
		})

		// Requires a portal session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/summary", h.Attendance.Summary)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/types", h.Leave.Types)
				r.Get("/requests", h.Leave.MyRequests)
				r.Post("/requests", h.Leave.Apply)
				r.Get("/balance", h.Leave.Balance)
				r.Post("/requests/{id}/cancel", h.Leave.Cancel)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/admin/requests", h.Leave.AllRequests)
					r.Post("/requests/{id}/approve", h.Leave.Approve)
					r.Post("/requests/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.Me)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/assets", func(r chi.Router) {
				r.Get("/my", h.Asset.MyAssets)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Asset.List)
					r.Post("/", h.Asset.Create)
					r.Put("/{id}", h.Asset.Update)
					r.Delete("/{id}", h.Asset.Delete)
					r.Get("/assignments", h.Asset.Assignments)
					r.Post("/assign", h.Asset.Assign)
					r.Post("/return", h.Asset.Return)
				})
			})
		})
	})
	return r
}
