package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taskboard/internal/config"
	"taskboard/internal/core"
	"taskboard/internal/db"
	"taskboard/internal/http/handler"
	"taskboard/internal/http/handler/middleware"
	"taskboard/internal/http/payload"
	"taskboard/internal/http/server"
	"taskboard/internal/repository"
	"taskboard/pkg/jwt"
	"taskboard/pkg/log"
	"taskboard/web"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("taskboard", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewGormDB(config.DBDriver, config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewBoardRepository(dbConn)

	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// board service
	board := core.NewBoard(
		logger,
		repo,
		jwtService,
		config.TokenTTL)

	// handler
	boardHlr := handler.NewBoardHandler(
		logger,
		payload.DecodeValidator{},
		board)

	// middleware
	authMW := middleware.NewAuthMiddleware(logger, board)

	mux := http.NewServeMux()
	hdlr := middleware.NewMetricsMiddleware().Metrics(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Signup, boardHlr.HandleSignup)
	mux.HandleFunc(handler.Login, boardHlr.HandleLogin)
	mux.HandleFunc(handler.Verify, boardHlr.HandleVerify)
	mux.Handle(handler.ListTasks, authMW.Auth(http.HandlerFunc(boardHlr.HandleListTasks)))
	mux.Handle(handler.CreateTask, authMW.Auth(http.HandlerFunc(boardHlr.HandleCreateTask)))
	mux.Handle(handler.UpdateTask, authMW.Auth(http.HandlerFunc(boardHlr.HandleUpdateTask)))
	mux.Handle(handler.DeleteTask, authMW.Auth(http.HandlerFunc(boardHlr.HandleDeleteTask)))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /", web.Handler())

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
