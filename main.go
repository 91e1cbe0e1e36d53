// Package main is the entry point for the CityHive service.
package main

import (
	"context"
	"fmt"
	"os"

	"cityhive/bootstrap"
)

// run initializes and starts the CityHive service.
func run() error {
	ctx := context.Background()

	app, err := bootstrap.NewApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Start(ctx); err != nil {
		app.Shutdown()
		return fmt.Errorf("failed to start application: %w", err)
	}

	app.WaitForShutdown()

	app.Shutdown()

	return nil
}

// main is the entry point.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
