package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const healthPath = "/healthz/"

// HealthCommandHandler probes a running server
type HealthCommandHandler struct {
	logger logger.Logger
	client *http.Client
	out    io.Writer
	exit   func(code int)
}

// NewHealthCommandHandler initializes a HealthCommandHandler with a short request timeout
func NewHealthCommandHandler() (*HealthCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &HealthCommandHandler{
		logger: loggerInstance,
		client: &http.Client{Timeout: 10 * time.Second},
		out:    os.Stdout,
		exit:   os.Exit,
	}, nil
}

// HealthcheckCmd prints the health report and exits non-zero when the server is unhealthy
func (commandHandler *HealthCommandHandler) HealthcheckCmd(cmd *cobra.Command, _ []string) {
	baseURL, err := cmd.Flags().GetString("url")
	if err != nil {
		commandHandler.logger.Error("invalid url flag ", err)
		commandHandler.exit(1)
		return
	}

	healthy, err := commandHandler.probe(context.Background(), baseURL)
	if err != nil {
		commandHandler.logger.Error(err)
		commandHandler.exit(1)
		return
	}
	if !healthy {
		commandHandler.exit(1)
	}
}

// probe fetches the health endpoint, prints the indented body and reports whether it returned 200
func (commandHandler *HealthCommandHandler) probe(ctx context.Context, baseURL string) (bool, error) {
	endpoint := strings.TrimRight(baseURL, "/") + healthPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := commandHandler.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to reach %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		return false, fmt.Errorf("unexpected response from %s (status %d)", endpoint, resp.StatusCode)
	}
	pretty.WriteByte('\n')
	if _, err := pretty.WriteTo(commandHandler.out); err != nil {
		return false, err
	}
	return resp.StatusCode == http.StatusOK, nil
}

// InitHealthCommands registers healthcheck
func InitHealthCommands(rootCmd *cobra.Command) error {
	handler, err := NewHealthCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create health command handler %w", err)
	}

	var healthcheckCmd = &cobra.Command{
		Use:   "healthcheck",
		Short: "Query the health endpoint of a running server",
		Run:   handler.HealthcheckCmd,
	}
	healthcheckCmd.Flags().StringP("url", "", "http://localhost:8000", "Base URL of the server")
	rootCmd.AddCommand(healthcheckCmd)

	return nil
}
