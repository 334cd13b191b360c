package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/allahdad01/construction-erp-go/internal/handler/http/middleware"
	"github.com/allahdad01/construction-erp-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Company    CompanyHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
	Machine    MachineHandler
	RentalArea RentalAreaHandler
	Dashboard  DashboardHandler
}

func NewRouter(jwtService jwt.Service, subscription *middleware.SubscriptionMiddleware, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "construction-erp"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Public
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})
		r.Post("/companies/register", h.Company.Register)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.ResolveIdentity)

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", h.Company.List)
				r.Get("/my", h.Company.GetMine)
				r.Put("/my", h.Company.Update)
				r.Get("/{id}", h.Company.Get)
			})

			r.Get("/dashboard", h.Dashboard.Stats)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Get("/{id}", h.Employee.GetEmployee)
				r.Get("/{id}/attendance", h.Attendance.ListForEmployee)
				r.Get("/{id}/accrual", h.Payroll.Accrual)
				r.Get("/{id}/payments", h.Payroll.ListPayments)

				// Mutations require an operational subscription
				r.Group(func(r chi.Router) {
					r.Use(subscription.RequireOperational)
					r.Post("/", h.Employee.CreateEmployee)
					r.Put("/{id}", h.Employee.UpdateEmployee)
					r.Post("/{id}/deactivate", h.Employee.DeactivateEmployee)
					r.Delete("/{id}", h.Employee.DeleteEmployee)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(subscription.RequireOperational)
				r.Post("/attendance", h.Attendance.Mark)
				r.Post("/payments", h.Payroll.RecordPayment)
			})

			r.Route("/machines", func(r chi.Router) {
				r.Get("/", h.Machine.List)
				r.Get("/{id}", h.Machine.Get)

				r.Group(func(r chi.Router) {
					r.Use(subscription.RequireOperational)
					r.Post("/", h.Machine.Create)
					r.Put("/{id}", h.Machine.Update)
					r.Delete("/{id}", h.Machine.Delete)
				})
			})

			r.Route("/rental-areas", func(r chi.Router) {
				r.Get("/", h.RentalArea.List)
				r.Get("/{id}", h.RentalArea.Get)

				r.Group(func(r chi.Router) {
					r.Use(subscription.RequireOperational)
					r.Post("/", h.RentalArea.Create)
					r.Put("/{id}", h.RentalArea.Update)
					r.Delete("/{id}", h.RentalArea.Delete)
				})
			})
		})
	})
	return r
}
