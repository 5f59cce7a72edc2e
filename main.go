package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"midnight-auction/internal/api"
	"midnight-auction/internal/config"
	"midnight-auction/internal/notify"
	"midnight-auction/internal/repository"
	"midnight-auction/internal/server"
	"midnight-auction/internal/session"
	"midnight-auction/services/auction/handler"
	"midnight-auction/utils"

	"github.com/joho/godotenv"
)

func main() {
	path := flag.String("config", os.Getenv("AUCTION_CONFIG"), "path to a YAML or TOML config file")
	flag.Parse()

	// a missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load(*path)
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"path": *path, "error": err.Error()})
	}
	utils.ConfigureLogger(cfg.Log.Level, os.Stdout)

	notices := notify.NewCenter(0)
	store := session.NewStore(newStorage(cfg.Storage.Path), notices, session.WithNavigator(func(path string) {
		utils.Info("navigate", map[string]any{"to": path})
	}))
	store.Restore()

	client := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.APIKey,
		Timeout: cfg.API.Timeout,
	})

	stats, err := api.NewStatsCache(cfg.Cache.StatsSize, cfg.Cache.StatsTTL)
	if err != nil {
		utils.Fatal("failed to create stats cache", map[string]any{"error": err.Error()})
	}

	auctionHandler := handler.NewAuctionHandler(store, client.Factory(), stats, notices)
	router := server.SetupRouter(auctionHandler)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.API.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		utils.Info("starting auction client", map[string]any{
			"addr":      srv.Addr,
			"api":       cfg.API.BaseURL,
			"logged_in": store.IsAuthenticated(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed to start", map[string]any{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Info("shutting down", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("server forced to shutdown", map[string]any{"error": err.Error()})
	}
	utils.Info("server exited", nil)
}

// newStorage persists the session to a file, or keeps it in memory when no path is set
func newStorage(path string) repository.KVStore {
	if path == "" {
		return repository.NewMemoryRepo()
	}
	return repository.NewFileRepo(path)
}
