// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/danielhkuo/loanflow/cliparse"
	"github.com/danielhkuo/loanflow/db"
	"github.com/danielhkuo/loanflow/logger"
	"github.com/danielhkuo/loanflow/middleware"
	"github.com/danielhkuo/loanflow/router"
)

func main() {
	// Optional .env overlay for local development
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		zap.S().Errorw("Error parsing flags", "error", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		zap.S().Errorw("Error building logger", "error", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Connect to the backing store
	dbConn, err := db.Open(cfg)
	if err != nil {
		log.Errorw("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		log.Errorw("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		log.Errorw("schema creation failed", "error", err)
		os.Exit(1)
	}
	log.Infow("Database schema ready", "type", cfg.DatabaseType)

	// Create router
	mux := router.NewRouter(dbConn, cfg, log)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	log.Infow("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Errorw("Server closed", "error", err)
	} else {
		log.Infow("Server closed")
	}
}
