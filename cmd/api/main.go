package main

import (
	"log"
	"net/http"
	"time"

	"gutengate/internal/config"
	"gutengate/internal/content"
	"gutengate/internal/gutenberg"
	"gutengate/internal/gutendex"
	"gutengate/internal/httpx"
	"gutengate/internal/textstorage"

	"github.com/joho/godotenv"
)

func main() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	catalog := gutendex.NewClient(cfg.GutendexURL, 2)
	fetcher := content.NewClient()
	storage := textstorage.NewClient(cfg.TextStorageURL)

	service := gutenberg.NewService(catalog, fetcher, storage, cfg.GutenbergURL)
	handler := gutenberg.NewHandler(service)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	authed := httpx.AuthMiddleware(cfg.JWTSecret)
	router.Handle("/gutenberg/search", authed(http.HandlerFunc(handler.Search)))
	router.Handle("/gutenberg/save/", authed(http.HandlerFunc(handler.Save)))

	chain := httpx.RequestIDMiddleware(
		httpx.AccessLogMiddleware(
			httpx.RecoveryMiddleware(router)))

	httpServer := &http.Server{
		Addr:        cfg.Addr,
		Handler:     chain,
		ReadTimeout: 5 * time.Second,
		// Saving a book streams a whole text through one request.
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
