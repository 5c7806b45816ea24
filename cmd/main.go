package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/estatesandstands/estates-service/internal/app"
	"github.com/estatesandstands/estates-service/internal/config"
	"github.com/estatesandstands/estates-service/internal/middleware"
	"github.com/estatesandstands/estates-service/internal/routes"
	"github.com/estatesandstands/estates-service/internal/utils"
)

func main() {
	utils.InitLogger(config.ResolvedAppName())

	// 1) Config
	cfg := config.LoadConfig()
	defer cfg.Close()

	// 2) Core application (listing store, services, notifier)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize application")
	}
	defer application.Close()

	// 3) Router
	router := routes.NewRouter(application)

	// 4) CORS
	origins := []string{"*"}
	if cfg.AppUrl != "" {
		origins = []string{cfg.AppUrl}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           c.Handler(router),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("Failed to listen on %s", srv.Addr)
	}

	go func() {
		utils.Logger.Infof("Starting %s on %s", cfg.AppName, srv.Addr)
		if err := srv.Serve(middleware.ContentLengthListener(ln)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Logger.Fatal("Server error: ", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	utils.Logger.Infof("Received %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.WithError(err).Error("Graceful shutdown failed")
		return
	}
	utils.Logger.Info("Server stopped")
}
