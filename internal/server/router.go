package server

import (
	"net/http"
	"time"

	"github.com/godofwar007/Store-income-control/internal/config"
	"github.com/godofwar007/Store-income-control/internal/handler"
	"github.com/godofwar007/Store-income-control/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
)

// NewRouter wires HTTP routes and middleware.
func NewRouter(cfg config.Config,
	logger *slog.Logger,
	shops *service.ShopDirectory,
	health handler.HealthHandler,
	auth handler.AuthHandler,
	shopList handler.ShopHandler,
	report handler.ReportHandler,
	employees handler.EmployeeHandler,
	workdays handler.WorkdayHandler,
	incomes handler.IncomeHandler,
	returns handler.ReturnHandler,
	expenses handler.ExpenseHandler,
	salesReturns handler.SalesReturnHandler,
	expenseBuckets handler.ShopExpenseHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	health.RegisterRoutes(r)
	auth.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(cfg.JWTSecret))

		auth.RegisterProtectedRoutes(pr)
		shopList.RegisterRoutes(pr)
		report.RegisterRoutes(pr)
		employees.RegisterRoutes(pr)
		workdays.RegisterRoutes(pr)

		// cross-shop listings
		pr.Group(func(ar chi.Router) {
			ar.Use(RequireUnrestricted())
			employees.RegisterAdminRoutes(ar)
			incomes.RegisterAdminRoutes(ar)
			returns.RegisterAdminRoutes(ar)
			expenses.RegisterAdminRoutes(ar)
		})

		pr.Route("/shop/{shopID}", func(sr chi.Router) {
			sr.Use(ShopAccessMiddleware(shops))
			employees.RegisterShopRoutes(sr)
			incomes.RegisterShopRoutes(sr)
			returns.RegisterShopRoutes(sr)
			expenses.RegisterShopRoutes(sr)
			salesReturns.RegisterShopRoutes(sr)
			expenseBuckets.RegisterShopRoutes(sr)
		})
	})

	return r
}
