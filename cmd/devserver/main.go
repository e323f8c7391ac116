package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"furever-pals/internal/platform/logger"
	"furever-pals/internal/router"
)

func main() {
	addr := ":8000"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Sin DB explícita: NewRouter cae a Postgres vía DB_DSN o a memoria.
	r := router.NewRouter(router.Options{Log: logger.NewFromEnv()})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("starting dev server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
