// Package opencode implements the clients.OpenCodeClient interface against
// an OpenCode server's HTTP command API.
package opencode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"linearcode/clients"
	"linearcode/models"
)

const defaultTimeout = 120 * time.Second

// healthRetryDelay is the fixed delay before the single health re-check.
// This is a one-shot retry, not a backoff policy.
const healthRetryDelay = 2 * time.Second

// OpenCodeClient delegates command execution to an OpenCode server
type OpenCodeClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenCodeClient creates a new OpenCode client against the given base URL
func NewOpenCodeClient(baseURL string) clients.OpenCodeClient {
	return &OpenCodeClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type executeRequest struct {
	Command string `json:"command"`
	Action  string `json:"action"`
}

type executeResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// ExecuteCommand sends a single extracted command to the OpenCode server and
// returns its per-command result. Network failures propagate as errors; an
// unsuccessful execution is a valid result, not an error.
func (c *OpenCodeClient) ExecuteCommand(
	ctx context.Context,
	command models.Command,
) (*models.CommandResult, error) {
	log.Printf("📤 Sending command to OpenCode server: %s", command.Action)

	payload, err := json.Marshal(executeRequest{Command: command.Raw, Action: command.Action})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal command request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/command",
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build command request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach OpenCode server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenCode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenCode server returned status %d: %s", resp.StatusCode, string(body))
	}

	var executed executeResponse
	if err := json.Unmarshal(body, &executed); err != nil {
		return nil, fmt.Errorf("failed to parse OpenCode response: %w", err)
	}

	result := &models.CommandResult{
		Command: command.Raw,
		Action:  command.Action,
		Success: executed.Success,
	}
	if executed.Success {
		result.Response = executed.Response
	} else {
		result.Response = executed.Error
		if result.Response == "" {
			result.Response = "command execution failed"
		}
	}

	log.Printf("📥 OpenCode result for %s: success=%v", command.Action, executed.Success)
	return result, nil
}

// Health checks OpenCode server readiness. On first failure, it retries
// exactly once after a fixed delay before giving up.
func (c *OpenCodeClient) Health(ctx context.Context) error {
	if err := c.checkHealth(ctx); err != nil {
		log.Printf("⚠️ OpenCode health check failed, retrying once: %v", err)
		select {
		case <-time.After(healthRetryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
		return c.checkHealth(ctx)
	}
	return nil
}

func (c *OpenCodeClient) checkHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach OpenCode server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OpenCode server health returned status %d", resp.StatusCode)
	}
	return nil
}
