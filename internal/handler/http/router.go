package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/krooster/krooster-backend-go/internal/config"
	"github.com/krooster/krooster-backend-go/internal/handler/http/middleware"
	"github.com/krooster/krooster-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	planningHandler PlanningHandler,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	absenceHandler AbsenceHandler,
	swapHandler SwapHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "krooster-planning"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/planning", func(r chi.Router) {
				r.Post("/validate", planningHandler.ValidateSchedule)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/hours", employeeHandler.WeeklyHours)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/restaurants", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListRestaurants)
				r.Get("/{id}", scheduleHandler.GetRestaurant)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListShifts)
				r.Post("/", scheduleHandler.CreateShift)
				r.Get("/{id}", scheduleHandler.GetShift)
				r.Delete("/{id}", scheduleHandler.DeleteShift)
			})

			r.Route("/missions", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListMissions)
				r.Post("/", scheduleHandler.CreateMission)
				r.Put("/{id}/status", scheduleHandler.UpdateMissionStatus)
			})

			r.Route("/absences", func(r chi.Router) {
				r.Get("/", absenceHandler.List)
				r.Post("/", absenceHandler.Create)
				r.Get("/{id}", absenceHandler.Get)
				r.Post("/{id}/approve", absenceHandler.Approve)
				r.Post("/{id}/reject", absenceHandler.Reject)
				r.Post("/{id}/readjust", planningHandler.ReadjustAbsence)
			})

			r.Route("/swaps", func(r chi.Router) {
				r.Get("/pending", swapHandler.ListPending)
				r.Post("/{id}/readjust", swapHandler.Readjust)
			})
		})
	})

	return r
}
