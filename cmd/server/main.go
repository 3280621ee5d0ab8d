package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/config"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/core"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/handler"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/kv"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/middleware"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/queue"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/router"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/state"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/utils"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cfg := config.Load()

	ownerHash, err := utils.HashPassword(cfg.OwnerPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash owner password: %v", err)
	}
	owner := core.OwnerCredential{Username: cfg.OwnerUsername, PasswordHash: ownerHash}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open kv store (%s): %v", cfg.KVDriver, err)
	}
	defer store.Close()

	st := state.New(store, owner, cfg.BcryptCost)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	if err := st.Load(loadCtx); err != nil {
		cancelLoad()
		log.Fatalf("load state: %v", err)
	}
	cancelLoad()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), config.NewRedisClient()))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, st), cfg.JWTSecret)
	router.RegisterOwner(e, handler.NewOwnerHandler(st), cfg.JWTSecret)
	router.RegisterCustomer(e, handler.NewCustomerHandler(cfg, st), cfg.JWTSecret)

	if cfg.QueueURL != "" {
		go queue.StartPurchaseConsumer(cfg.QueueURL)
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, kv=%s)", addr, cfg.Env, cfg.KVDriver)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// Save on the way out so an idle session's state survives.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := st.Save(ctx); err != nil {
		log.Printf("shutdown save failed: %v", err)
	}
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// openStore builds the persistence adapter selected by KV_DRIVER.
func openStore(cfg config.Config) (kv.Store, error) {
	switch cfg.KVDriver {
	case "sqlite":
		return kv.OpenSQLite(cfg.SQLitePath)
	case "mysql":
		return kv.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	case "redis":
		client := config.NewRedisClient()
		if client == nil {
			return nil, errors.New("redis unreachable")
		}
		return kv.NewRedisStore(client, "bookstore"), nil
	case "memory":
		return kv.NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown KV_DRIVER %q", cfg.KVDriver)
	}
}
