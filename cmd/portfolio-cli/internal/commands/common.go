package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const defaultConfigPath = "../../configs/rest-app.yaml"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the --config flag, then CONFIG_PATH, then the default location
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}

// openDatabase connects and brings the schema up to date
func openDatabase(cfg *config.RestConfig, log logger.Logger) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := persistence.AutoMigrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database schema is up to date")
	return db, nil
}

func closeDatabase(db *gorm.DB, log logger.Logger) {
	if err := persistence.CloseDB(db); err != nil {
		log.Warn("failed to close database: ", err)
	}
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
