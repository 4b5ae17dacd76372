// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package main

import (
	"context"
	"log"
	"os"

	"hello-swarm/internal/config"
	"hello-swarm/internal/console"
	"hello-swarm/internal/logging"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Diagnostics go to stderr so stdout only carries the session
	logger, err := logging.FromEnv(os.Stderr, cfg.Logging.Format, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Invalid logging environment: %v", err)
	}
	logger.Debug("Configuration loaded", "default_name", cfg.Greeting.DefaultName, "sum_a", cfg.Sum.A, "sum_b", cfg.Sum.B)

	session := &console.Session{
		Config: cfg,
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: logger,
		Args:   os.Args[1:],
	}

	if err := session.Run(context.Background()); err != nil {
		log.Fatalf("Greeter failed: %v", err)
	}
}
