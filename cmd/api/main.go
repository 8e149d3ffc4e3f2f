package main

import (
	"os"

	"github.com/selim/coursereg/internal/pkg/logger"
	"github.com/selim/coursereg/internal/server"
)

func main() {
	// Initialize the server with all its dependencies: config, logger,
	// the CSV-backed store, services, and the router.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
