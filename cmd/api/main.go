package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	authapi "github.com/millbooks/backend/internal/auth/api"
	"github.com/millbooks/backend/internal/ledger/adapter/repo"
	ledgerapi "github.com/millbooks/backend/internal/ledger/api"
	"github.com/millbooks/backend/internal/ledger/domain"
	"github.com/millbooks/backend/internal/ledger/service"
	"github.com/millbooks/backend/internal/platform/config"
	"github.com/millbooks/backend/internal/platform/database"
	"github.com/millbooks/backend/internal/platform/logger"
	"github.com/millbooks/backend/internal/platform/server"
	"github.com/millbooks/backend/internal/platform/token"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}

	appLogger, err := logger.New(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Error building logger: %s", err)
	}
	defer appLogger.Sync()

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		appLogger.Fatal("Database connection failed", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&domain.Account{},
		&domain.JournalEntry{},
		&domain.CreditEntry{},
		&domain.PurchaseInvoice{},
		&domain.SalesInvoice{},
	); err != nil {
		appLogger.Fatal("Migration failed", zap.Error(err))
	}

	accountRepo := repo.NewAccountRepo(db)
	journalRepo := repo.NewJournalRepo(db)
	purchaseRepo := repo.NewPurchaseInvoiceRepo(db)
	salesRepo := repo.NewSalesInvoiceRepo(db)

	accountSvc := service.NewAccountService(accountRepo)
	journalSvc := service.NewJournalService(accountRepo, journalRepo)
	invoiceSvc := service.NewInvoiceService(purchaseRepo, salesRepo)
	ledgerSvc := service.NewLedgerService(journalRepo, purchaseRepo, salesRepo)

	tokens := token.NewService(cfg.Auth)
	authHandler := authapi.NewHandler(cfg.Auth, tokens)
	ledgerHandler := ledgerapi.NewHandler(accountSvc, journalSvc, invoiceSvc, ledgerSvc)

	srv := server.New(
		appLogger,
		cfg.Server.Port,
		cfg.Server.Mode,
		tokens,
		authHandler,
		ledgerHandler,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server startup failed", zap.Error(err))
		}
	case <-ctx.Done():
		appLogger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Shutdown failed", zap.Error(err))
		}
	}
}
