package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pastelaria/internal/config"
	"pastelaria/internal/db"
	"pastelaria/internal/httpserver"
	customerrepo "pastelaria/internal/repository/customer"
	orderrepo "pastelaria/internal/repository/order"
	productrepo "pastelaria/internal/repository/product"
	cartsvc "pastelaria/internal/service/cart"
	catalogsvc "pastelaria/internal/service/catalog"
	customersvc "pastelaria/internal/service/customer"
	ordersvc "pastelaria/internal/service/order"
	"pastelaria/internal/session"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	sessions := session.NewManager(cfg.SessionTTL)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Sessions:    sessions,
		CustomerSvc: customersvc.New(customerRepo),
		CatalogSvc:  catalogsvc.New(productRepo),
		CartSvc:     cartsvc.New(productRepo),
		OrderSvc:    ordersvc.New(orderRepo, logger),
		CORSOrigins: cfg.CORSOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
