// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tollwise/internal/config"
	httptransport "tollwise/internal/http"
	"tollwise/internal/infra"
	"tollwise/internal/logging"
	"tollwise/internal/maps"
	"tollwise/internal/modules/assist"
	"tollwise/internal/modules/estimate"
	"tollwise/internal/modules/rates"
	"tollwise/internal/modules/tripplan"
	"tollwise/internal/tollguru"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logging.Init(cfg.Log.Level, cfg.Log.Format)
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var ratesStore *rates.Store
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logging.Logger.Fatal("db init", zap.Error(err))
		}
		defer dbPool.Close()
		ratesStore = rates.NewStore(dbPool)
	}

	rateSvc, err := rates.NewService(ctx, ratesStore)
	if err != nil {
		logging.Logger.Fatal("rate table init", zap.Error(err))
	}

	var lookup estimate.TollLookup
	if cfg.TollGuru.UseMock || cfg.TollGuru.APIKey == "" {
		logging.Logger.Info("toll lookup running in mock mode")
		lookup = tollguru.NewMock()
	} else {
		lookup = tollguru.NewClient(cfg.TollGuru.BaseURL, cfg.TollGuru.APIKey, nil)
	}
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		defer redisClient.Close()
		lookup = tollguru.NewCache(lookup, redisClient, cfg.TollGuru.CacheTTL)
	}

	estimateSvc := estimate.NewService(estimate.NewAggregator(lookup), rateSvc)
	planSvc := tripplan.NewService()

	var assistSvc *assist.Service
	if cfg.AI.GeminiKey != "" {
		provider, err := assist.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logging.Logger.Fatal("gemini init", zap.Error(err))
		}
		defer provider.Close()
		assistSvc = assist.NewService(provider)
	}

	var routeSvc *maps.RouteService
	if cfg.Maps.APIKey != "" {
		routeSvc, err = maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			logging.Logger.Fatal("maps init", zap.Error(err))
		}
	}

	router := httptransport.NewRouter(httptransport.Services{
		Estimates: estimateSvc,
		Rates:     rateSvc,
		Plans:     planSvc,
		Assist:    assistSvc,
		Routes:    routeSvc,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Logger.Error("shutdown", zap.Error(err))
		}
	}()

	logging.Logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Logger.Fatal("serve", zap.Error(err))
	}
}
