// Package printnode implements the PrintGateway port against a PrintNode-style
// printer submission API. Jobs are posted to a single configured printer; the
// API authenticates with HTTP basic auth, the key as username and an empty
// password.
package printnode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const defaultBaseURL = "https://api.printnode.com"

const defaultTimeout = 15 * time.Second

const jobSource = "fulfillment"

// Config carries the client's connection settings. APIKey and PrinterID are
// required; BaseURL and Timeout fall back to defaults.
type Config struct {
	APIKey    string
	BaseURL   string
	PrinterID int64
	Timeout   time.Duration
}

// Client talks to the printer submission API. It implements ports.PrintGateway.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

var _ ports.PrintGateway = (*Client)(nil)

// NewClient creates a printer API client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errs.NewValueIsRequiredError("printnode api key")
	}
	if cfg.PrinterID <= 0 {
		return nil, errs.NewValueIsRequiredError("printer id")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type printJobRequest struct {
	PrinterID   int64  `json:"printerId"`
	Title       string `json:"title"`
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
	Source      string `json:"source"`
}

// CreateJob submits one print job to the configured printer and returns the
// remote job id.
func (c *Client) CreateJob(ctx context.Context, req ports.PrintRequest) (int64, error) {
	if req.Content == "" {
		return 0, errs.NewValueIsRequiredError("print content")
	}

	payload, err := json.Marshal(printJobRequest{
		PrinterID:   c.cfg.PrinterID,
		Title:       req.Title,
		ContentType: req.ContentType,
		Content:     req.Content,
		Source:      jobSource,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal print job: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/printjobs", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create print request: %w", err)
	}
	httpReq.SetBasicAuth(c.cfg.APIKey, "")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("failed to call printer api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read printer response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("printer api error (status %d): %s",
			resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var jobID int64
	if err := json.Unmarshal(raw, &jobID); err != nil {
		return 0, fmt.Errorf("failed to parse printer response: %w", err)
	}
	return jobID, nil
}
