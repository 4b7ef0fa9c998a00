// README: Entry point; loads config, wires the pipeline and serves HTTP.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"yatra/internal/ai"
	"yatra/internal/config"
	httptransport "yatra/internal/http"
	"yatra/internal/infra"
	"yatra/internal/maps"
	"yatra/internal/planner"
	"yatra/internal/trip"
	"yatra/internal/usage"
)

func main() {
	// Best effort: a missing .env just means real env vars are in use.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("YATRA_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	var provider ai.Provider
	switch cfg.AI.Provider {
	case config.ProviderGateway:
		provider, err = ai.NewGatewayProvider(cfg.AI.GatewayURL, cfg.AI.GatewayKey, cfg.AI.GatewayModel, cfg.AI.Timeout)
		if err != nil {
			log.Fatalf("gateway provider init: %v", err)
		}
	default:
		gemini, gerr := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if gerr != nil {
			log.Fatalf("gemini provider init: %v", gerr)
		}
		defer gemini.Close()
		provider = gemini
	}

	var routes planner.RouteEstimator
	if cfg.Maps.APIKey != "" {
		routeSvc, rerr := maps.NewRouteService(cfg.Maps.APIKey)
		if rerr != nil {
			log.Fatalf("maps init: %v", rerr)
		}
		routes = routeSvc
	}

	usageSvc := usage.NewService(usage.NewStore(dbPool))
	guard := planner.NewGuard(redisClient)
	plannerSvc := planner.NewService(provider, guard, usageSvc, routes, cfg.AI.Timeout)
	tripSvc := trip.NewService(trip.NewStore(dbPool))

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Planner:        plannerSvc,
		Trips:          tripSvc,
		Verifier:       verifier,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
