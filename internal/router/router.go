// Package router arma el dev server que imita el contrato HTTP del
// backend FurEver Pals, para desarrollo offline y tests de contrato.
package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "furever-pals/internal/adapters/storage/memory"
	pg "furever-pals/internal/adapters/storage/postgres"
	"furever-pals/internal/domain/accounts"
	"furever-pals/internal/domain/feed"
	"furever-pals/internal/domain/listings"
	"furever-pals/internal/middleware"
	"furever-pals/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: logger de requests. Nil = silencioso (tests).
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Log != nil {
		r.Use(middleware.RequestLogger(opts.Log))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		accountsRepo accounts.Repository
		listingsRepo listings.Repository
		feedRepo     feed.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		accountsRepo = pg.NewAccountsRepo(db)
		listingsRepo = pg.NewListingsRepo(db)
		feedRepo = pg.NewFeedRepo(db)
	} else {
		accountsRepo = mem.NewAccountsRepo()
		listingsRepo = mem.NewListingsRepo()
		feedRepo = mem.NewFeedRepo()
	}

	// Services por módulo
	accountsSvc := accounts.NewService(accountsRepo)
	listingsSvc := listings.NewService(listingsRepo)
	feedSvc := feed.NewService(feedRepo)

	// Rutas por módulo
	accounts.RegisterRoutes(r, accountsSvc)
	listings.RegisterRoutes(r, listingsSvc, accountsSvc)
	feed.RegisterRoutes(r, feedSvc, accountsSvc)

	return r
}
