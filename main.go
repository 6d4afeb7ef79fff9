package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/internal/config"
	router "voyago/internal/http"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ledger, cleanup, err := buildLedger(env)
	if err != nil {
		utils.Log.Fatal().Err(err).Str("driver", env.LedgerDriver).Msg("ledger init failed")
	}
	defer cleanup()

	provider := services.NewAvailabilityService(time.Now().UnixNano())
	session := services.NewBookingSession(provider, ledger)

	r := router.NewRouter(session, ledger)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		utils.Log.Info().Str("addr", env.AppAddr).Str("ledger", env.LedgerDriver).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	utils.Log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.Fatal().Err(err).Msg("shutdown failed")
	}

	utils.Log.Info().Msg("server stopped")
}

func buildLedger(env config.Env) (repositories.BookingLedger, func(), error) {
	switch env.LedgerDriver {
	case config.LedgerDriverMySQL:
		db, err := config.ConnectDB(env.DBDSN)
		if err != nil {
			return nil, func() {}, err
		}
		ledger := repositories.NewSQLLedger(db)
		if err := ledger.EnsureSchema(); err != nil {
			_ = db.Close()
			return nil, func() {}, err
		}
		return ledger, func() { _ = db.Close() }, nil
	default:
		return repositories.NewCSVLedger(env.LedgerFile), func() {}, nil
	}
}
