// Package main implements the bookserver service: a small book
// catalog with per-user reviews behind a token-gated HTTP/JSON API.
//
// The server exposes:
//
//	GET    /health                  - Liveness check
//	GET    /books                   - Full catalog
//	GET    /books/isbn/:isbn        - Lookup by ISBN (dash-insensitive)
//	GET    /books/author/:author    - Case-insensitive author search
//	GET    /books/title/:title      - Case-insensitive title search
//	GET    /books/:isbn/review      - Reviews for one book
//	POST   /register                - Create an account
//	POST   /login                   - Obtain an x-auth-token
//	POST   /books/:isbn/review      - Add or replace own review (token)
//	DELETE /books/:isbn/review      - Remove own review (token)
//
// Configuration:
//   - BOOKSHELF_ADDR: listen address (default ":3000")
//   - BOOKSHELF_DATA_DIR: data directory (default "data")
//   - LOGGING_LEVEL: "DEVELOPMENT" for console logs, anything else
//     for production JSON
//
// State lives in two JSON documents under the data directory,
// seeded on first run.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dreamware/bookshelf/internal/store"
)

func main() {
	logger := newLogger(os.Getenv("LOGGING_LEVEL"))
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	addr := getenv("BOOKSHELF_ADDR", ":3000")
	dataDir := getenv("BOOKSHELF_DATA_DIR", "data")

	gin.SetMode(gin.ReleaseMode)

	st, err := store.Open(dataDir)
	if err != nil {
		zap.S().Fatalf("open store: %v", err)
	}
	srv := &server{store: st}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zap.S().Infof("bookserver listening on %s", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)
	zap.S().Info("bookserver stopped")
}

func newLogger(level string) *zap.Logger {
	var logger *zap.Logger
	var err error
	switch level {
	case "DEVELOPMENT":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
