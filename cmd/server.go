package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ethsql/internal/config"
	"ethsql/internal/core"
	"ethsql/internal/db"
	"ethsql/internal/ethereum"
	"ethsql/internal/http/handler"
	"ethsql/internal/http/handler/middleware"
	"ethsql/internal/http/payload"
	"ethsql/internal/http/server"
	"ethsql/internal/repository"
	"ethsql/pkg/jwt"
	"ethsql/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("ethsql", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger("ethsql", config.LogLevel)

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewTransactionRepository(dbConn)

	if err = repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to prepare database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}
	defer client.Close()

	ethService := ethereum.NewEthService(client)

	// ledger
	ledger := core.NewLedger(
		logger,
		repo,
		jwtService,
		ethService)

	// handler
	ledgerHlr := handler.NewLedgerHandler(
		logger,
		payload.Decoder{},
		ledger)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, ledgerHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetTransactions, ledgerHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetTransactionsRLP, ledgerHlr.HandleGetTransactionsRLP)
	mux.HandleFunc(handler.GetMyTransactions, ledgerHlr.HandleGetMyTransactions)
	mux.HandleFunc(handler.GetAllTransactions, ledgerHlr.HandleGetAllTransactions)
	mux.HandleFunc(handler.GetSenderSummary, ledgerHlr.HandleGetSenderSummary)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil && (err == nil || errors.Is(err, http.ErrServerClosed)) {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
