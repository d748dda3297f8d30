package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ashiqdev/taka/internal/account"
	accountStore "github.com/ashiqdev/taka/internal/account/store"
	"github.com/ashiqdev/taka/internal/auth"
	"github.com/ashiqdev/taka/internal/budget"
	budgetStore "github.com/ashiqdev/taka/internal/budget/store"
	"github.com/ashiqdev/taka/internal/category"
	categoryStore "github.com/ashiqdev/taka/internal/category/store"
	"github.com/ashiqdev/taka/internal/config"
	"github.com/ashiqdev/taka/internal/database"
	takaHttp "github.com/ashiqdev/taka/internal/http"
	accountHandler "github.com/ashiqdev/taka/internal/http/account"
	"github.com/ashiqdev/taka/internal/http/authn"
	budgetHandler "github.com/ashiqdev/taka/internal/http/budget"
	categoryHandler "github.com/ashiqdev/taka/internal/http/category"
	liabilityHandler "github.com/ashiqdev/taka/internal/http/liability"
	loanHandler "github.com/ashiqdev/taka/internal/http/loan"
	preferenceHandler "github.com/ashiqdev/taka/internal/http/preference"
	recurringHandler "github.com/ashiqdev/taka/internal/http/recurring"
	savingsGoalHandler "github.com/ashiqdev/taka/internal/http/savingsgoal"
	txHandler "github.com/ashiqdev/taka/internal/http/transaction"
	"github.com/ashiqdev/taka/internal/liability"
	liabilityStore "github.com/ashiqdev/taka/internal/liability/store"
	"github.com/ashiqdev/taka/internal/loan"
	loanStore "github.com/ashiqdev/taka/internal/loan/store"
	"github.com/ashiqdev/taka/internal/preference"
	preferenceStore "github.com/ashiqdev/taka/internal/preference/store"
	"github.com/ashiqdev/taka/internal/recurring"
	recurringStore "github.com/ashiqdev/taka/internal/recurring/store"
	"github.com/ashiqdev/taka/internal/savingsgoal"
	savingsGoalStore "github.com/ashiqdev/taka/internal/savingsgoal/store"
	"github.com/ashiqdev/taka/internal/transaction"
	txStore "github.com/ashiqdev/taka/internal/transaction/store"
	"github.com/ashiqdev/taka/internal/user"
	userStore "github.com/ashiqdev/taka/internal/user/store"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		userService        = user.NewService(userStore.New(db), cfg.Auth.BcryptCost)
		accountService     = account.NewService(accountStore.New(db))
		txService          = transaction.NewService(txStore.New(db))
		budgetService      = budget.NewService(budgetStore.New(db))
		liabilityService   = liability.NewService(liabilityStore.New(db))
		loanService        = loan.NewService(loanStore.New(db))
		recurringService   = recurring.NewService(recurringStore.New(db))
		savingsGoalService = savingsgoal.NewService(savingsGoalStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		preferenceService  = preference.NewService(preferenceStore.New(db))
	)

	if err := categoryService.SeedDefaults(ctx); err != nil {
		slog.Error("failed to seed default categories", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	router := takaHttp.New(tokens, takaHttp.Handlers{
		Auth:         authn.NewHandler(userService, tokens),
		Accounts:     accountHandler.NewHandler(accountService),
		Transactions: txHandler.NewHandler(txService),
		Budgets:      budgetHandler.NewHandler(budgetService),
		Liabilities:  liabilityHandler.NewHandler(liabilityService),
		Loans:        loanHandler.NewHandler(loanService),
		Recurring:    recurringHandler.NewHandler(recurringService),
		SavingsGoals: savingsGoalHandler.NewHandler(savingsGoalService),
		Categories:   categoryHandler.NewHandler(categoryService),
		Preferences:  preferenceHandler.NewHandler(preferenceService),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
