package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ebarbosa87/pixmart/internal/cache"
	"github.com/ebarbosa87/pixmart/internal/client"
	"github.com/ebarbosa87/pixmart/internal/config"
	"github.com/ebarbosa87/pixmart/internal/feed"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/network/router"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"github.com/ebarbosa87/pixmart/internal/worker"
)

func Run(config config.Config) {

	// an empty token means every gateway call would come back 401,
	// refuse to start instead
	if config.Gateway.AccessToken == "" {
		logger.Panic("payment gateway access token is not configured")
	}

	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("error create database:", err.Error())
	}
	if err := database.Initialize(); err != nil {
		logger.Panic("error initialize database:", err.Error())
	}
	defer database.Close()

	store := storage.NewStorage(database)

	balanceCache := cache.New(config.Store.RedisAddr)
	defer balanceCache.Close()

	httpClient := &http.Client{Timeout: config.Gateway.FetchTimeout}
	gateway := client.NewClient(config.Gateway.GatewayAddr, config.Gateway.AccessToken, httpClient)

	var objects client.ObjectStore
	if config.Store.ObjectStoreAddr != "" {
		objects = client.NewObjectStore(config.Store.ObjectStoreAddr, httpClient)
	}

	broker := feed.NewBroker(store.Notifications)

	router := router.NewRouter(config, store, gateway, objects, balanceCache, broker)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	worker := worker.NewPaymentWorker(router.Payments)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)
	broker.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	worker.Stop()
	broker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
