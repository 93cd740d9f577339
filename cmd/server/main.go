package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/godofwar007/Store-income-control/internal/config"
	"github.com/godofwar007/Store-income-control/internal/db"
	"github.com/godofwar007/Store-income-control/internal/handler"
	"github.com/godofwar007/Store-income-control/internal/repository"
	"github.com/godofwar007/Store-income-control/internal/server"
	"github.com/godofwar007/Store-income-control/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	// repositories
	shopRepo := repository.ShopRepository{DB: pg}
	userRepo := repository.UserRepository{DB: pg}
	sessionRepo := repository.SessionRepository{DB: pg}
	employeeRepo := repository.EmployeeRepository{DB: pg}
	workdayRepo := repository.WorkdayRepository{DB: pg}
	incomeRepo := repository.IncomeRepository{DB: pg}
	returnRepo := repository.ReturnRepository{DB: pg}
	expenseRepo := repository.ExpenseRepository{DB: pg}
	salesReturnRepo := repository.SalesReturnRepository{DB: pg}
	shopExpenseRepo := repository.ShopExpenseRepository{DB: pg}
	reportRepo := repository.ReportRepository{DB: pg}

	if cfg.SeedOnStart {
		if err := shopRepo.SeedDefaults(ctx); err != nil {
			logger.Error("failed to seed shops", "err", err)
			os.Exit(1)
		}
		if err := userRepo.SeedDefaults(ctx); err != nil {
			logger.Error("failed to seed users", "err", err)
			os.Exit(1)
		}
	}

	// Expired sessions accumulate between restarts; sweep them hourly.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := sessionRepo.DeleteExpired(ctx); err != nil {
					logger.Warn("session sweep failed", "err", err)
				}
			}
		}
	}()

	shops, err := service.LoadShopDirectory(ctx, shopRepo)
	if err != nil {
		logger.Error("failed to load shops", "err", err)
		os.Exit(1)
	}

	// services
	authSvc := service.AuthService{Config: cfg, Users: userRepo, Sessions: sessionRepo, Logger: logger}
	reportSvc := service.ReportService{Store: reportRepo, Shops: shops}
	workdaySvc := service.WorkdayService{Store: workdayRepo}

	// handlers
	healthHandler := handler.HealthHandler{DB: pg}
	authHandler := handler.AuthHandler{Service: &authSvc}
	shopHandler := handler.ShopHandler{Shops: shops}
	reportHandler := handler.ReportHandler{Service: reportSvc}
	employeeHandler := handler.EmployeeHandler{Repo: employeeRepo, Shops: shops}
	workdayHandler := handler.WorkdayHandler{Service: workdaySvc, Employees: employeeRepo}
	incomeHandler := handler.IncomeHandler{Store: incomeRepo}
	returnHandler := handler.ReturnHandler{Store: returnRepo}
	expenseHandler := handler.ExpenseHandler{Store: expenseRepo}
	salesReturnHandler := handler.SalesReturnHandler{Repo: salesReturnRepo}
	shopExpenseHandler := handler.ShopExpenseHandler{Repo: shopExpenseRepo}

	router := server.NewRouter(cfg, logger, shops,
		healthHandler, authHandler, shopHandler, reportHandler,
		employeeHandler, workdayHandler,
		incomeHandler, returnHandler, expenseHandler,
		salesReturnHandler, shopExpenseHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
