package cmd

import (
	"chirper/internal/config"
	"chirper/internal/core"
	"chirper/internal/db"
	"chirper/internal/http/handler"
	"chirper/internal/http/handler/middleware"
	"chirper/internal/http/payload"
	"chirper/internal/http/server"
	"chirper/internal/repository"
	"chirper/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("chirper", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewSocialRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// services
	accountService := core.NewAccountService(logger, repo)
	messageService := core.NewMessageService(logger, repo)

	// handler
	socialHlr := handler.NewSocialHandler(
		logger,
		payload.Decoder{},
		accountService,
		messageService)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, socialHlr.HandleRegister)
	mux.HandleFunc(handler.ListAccounts, socialHlr.HandleListAccounts)
	mux.HandleFunc(handler.Login, socialHlr.HandleLogin)
	mux.HandleFunc(handler.PostMessage, socialHlr.HandlePostMessage)
	mux.HandleFunc(handler.ListMessages, socialHlr.HandleListMessages)
	mux.HandleFunc(handler.GetMessage, socialHlr.HandleGetMessage)
	mux.HandleFunc(handler.DeleteMessage, socialHlr.HandleDeleteMessage)
	mux.HandleFunc(handler.UpdateMessage, socialHlr.HandleUpdateMessage)
	mux.HandleFunc(handler.MessagesByAccount, socialHlr.HandleMessagesByAccount)

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
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
