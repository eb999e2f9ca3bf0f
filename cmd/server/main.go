package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookflow/internal/api"
	"bookflow/internal/api/middleware"
	"bookflow/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Could not build application factory: %v\n", err)
		os.Exit(1)
	}
	defer appFactory.Close()

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()

	log.Info("Starting application", map[string]interface{}{
		"env":   cfg.AppEnv,
		"store": cfg.Store.Driver,
	})

	authorHandler := api.NewAuthorHandler(appFactory.GetAuthorRepository(), log)
	categoryHandler := api.NewCategoryHandler(appFactory.GetCategoryRepository(), log)
	bookHandler := api.NewBookHandler(appFactory.GetBookRepository(), log)
	memberHandler := api.NewMemberHandler(appFactory.GetMemberRepository(), log)
	loanHandler := api.NewLoanHandler(appFactory.GetLoanRepository(), log)
	statsHandler := api.NewStatsHandler(appFactory.GetStatsService(), log)
	backupHandler := api.NewBackupHandler(appFactory.GetBackupService(), log)
	healthHandler := api.NewHealthHandler(appFactory.GetStore(), log)

	mux := http.NewServeMux()

	authorHandler.RegisterRoutes(mux)
	categoryHandler.RegisterRoutes(mux)
	bookHandler.RegisterRoutes(mux)
	memberHandler.RegisterRoutes(mux)
	loanHandler.RegisterRoutes(mux)
	statsHandler.RegisterRoutes(mux)
	backupHandler.RegisterRoutes(mux)
	healthHandler.RegisterRoutes(mux)

	mux.Handle("GET /metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: middleware.MetricsMiddleware(mux),
	}

	go func() {
		log.Info("Starting HTTP server", map[string]interface{}{"port": cfg.Server.Port})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Could not start HTTP server", map[string]interface{}{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...", map[string]interface{}{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Error during server shutdown", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Server stopped cleanly", map[string]interface{}{})
}
