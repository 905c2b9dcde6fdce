// Package main is the entry point for the portfolio-cli application.
// It registers the maintenance sub-commands (migrate, seed, create-admin, test-email,
// storage and healthcheck) and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Brownie-08/Portfolio/cmd/portfolio-cli/internal/commands"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "portfolio-cli",
		Short: "Portfolio maintenance tool",
		Long: `portfolio-cli runs maintenance tasks against the portfolio database and storage.

Configuration is read from --config, then CONFIG_PATH, then ../../configs/rest-app.yaml.
Environment variables (and a .env file in the working directory) override the file.`,
	}
	rootCmd.PersistentFlags().StringP("config", "", "", "Path to the YAML configuration file")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDatabaseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}

	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	if err := commands.InitMailCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize mail commands: %w", err)
	}

	if err := commands.InitStorageCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize storage commands: %w", err)
	}

	if err := commands.InitHealthCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize health commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
