package http

import (
	"log/slog"
	"os"

	"github.com/albapay/albapay-backend-go/internal/handler/http/middleware"
	"github.com/albapay/albapay-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	storeHandler StoreHandler,
	employeeHandler EmployeeHandler,
	templateHandler TemplateHandler,
	exceptionHandler ExceptionHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "albapay"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Salary calculator needs no store context.
			r.Post("/salary/estimate", payrollHandler.EstimateSalary)

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", storeHandler.List)
				r.Post("/", storeHandler.Create)

				r.Route("/{storeID}", func(r chi.Router) {
					r.Get("/", storeHandler.GetByID)
					r.Put("/", storeHandler.Update)
					r.Delete("/", storeHandler.Delete)

					r.Route("/employees", func(r chi.Router) {
						r.Get("/", employeeHandler.List)
						r.Post("/", employeeHandler.Create)

						r.Route("/{employeeID}", func(r chi.Router) {
							r.Get("/", employeeHandler.GetByID)
							r.Put("/", employeeHandler.Update)
							r.Delete("/", employeeHandler.Delete)
							r.Post("/payroll", payrollHandler.CalculateEmployee)
						})
					})

					r.Route("/templates", func(r chi.Router) {
						r.Get("/", templateHandler.List)
						r.Post("/", templateHandler.Create)

						r.Route("/{templateID}", func(r chi.Router) {
							r.Get("/", templateHandler.GetByID)
							r.Put("/", templateHandler.Update)
							r.Delete("/", templateHandler.Delete)
						})
					})

					r.Route("/exceptions", func(r chi.Router) {
						r.Get("/", exceptionHandler.ListByMonth)
						r.Post("/", exceptionHandler.Create)

						r.Route("/{exceptionID}", func(r chi.Router) {
							r.Get("/", exceptionHandler.GetByID)
							r.Put("/", exceptionHandler.Update)
							r.Delete("/", exceptionHandler.Delete)
						})
					})

					r.Post("/payroll", payrollHandler.CalculateMonthly)
				})
			})
		})
	})
	return r
}
