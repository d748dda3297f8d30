package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ashiqdev/taka/internal/http/account"
	"github.com/ashiqdev/taka/internal/http/authmw"
	"github.com/ashiqdev/taka/internal/http/authn"
	"github.com/ashiqdev/taka/internal/http/budget"
	"github.com/ashiqdev/taka/internal/http/category"
	"github.com/ashiqdev/taka/internal/http/liability"
	"github.com/ashiqdev/taka/internal/http/loan"
	"github.com/ashiqdev/taka/internal/http/preference"
	"github.com/ashiqdev/taka/internal/http/recurring"
	"github.com/ashiqdev/taka/internal/http/savingsgoal"
	"github.com/ashiqdev/taka/internal/http/transaction"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Auth         *authn.Handler
	Accounts     *account.Handler
	Transactions *transaction.Handler
	Budgets      *budget.Handler
	Liabilities  *liability.Handler
	Loans        *loan.Handler
	Recurring    *recurring.Handler
	SavingsGoals *savingsgoal.Handler
	Categories   *category.Handler
	Preferences  *preference.Handler
}

func New(verifier authmw.TokenVerifier, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})

	// Unauthenticated index so clients can discover where things live.
	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "taka bookkeeping API",
			"endpoints": map[string]string{
				"auth":                   "/auth",
				"accounts":               "/api/v1/accounts",
				"transactions":           "/api/v1/transactions",
				"budgets":                "/api/v1/budgets",
				"liabilities":            "/api/v1/liabilities",
				"loans":                  "/api/v1/loans",
				"recurring_transactions": "/api/v1/recurring-transactions",
				"savings_goals":          "/api/v1/savings-goals",
				"categories":             "/api/v1/categories",
				"preferences":            "/api/v1/preferences",
				"health":                 "/health",
			},
		})
	})

	router.Route("/auth", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		h.Auth.Routes(r)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authmw.RequireUser(verifier))

		r.Route("/accounts", h.Accounts.Routes)
		r.Route("/transactions", h.Transactions.Routes)
		r.Route("/budgets", h.Budgets.Routes)
		r.Route("/liabilities", h.Liabilities.Routes)
		r.Route("/loans", h.Loans.Routes)
		r.Route("/recurring-transactions", h.Recurring.Routes)
		r.Route("/savings-goals", h.SavingsGoals.Routes)
		r.Route("/categories", h.Categories.Routes)
		r.Route("/preferences", h.Preferences.Routes)
	})

	return router
}
