package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// client wraps the portal's HTTP surface for the seeding run.
type client struct {
	baseURL string
	http    *http.Client
}

func newClient(config *Config) *client {
	return &client{
		baseURL: config.BaseURL,
		http:    &http.Client{Timeout: config.Timeout},
	}
}

// postScore submits one score and expects 201.
func (c *client) postScore(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/scores", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post score: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("post score: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// seriesResponse mirrors GET /api/scores.
type seriesResponse struct {
	LatestTimestamp int64 `json:"latestTimestamp"`
	Datasets        []struct {
		Label string `json:"label"`
		Data  []struct {
			X int64 `json:"x"`
			Y int64 `json:"y"`
		} `json:"data"`
	} `json:"datasets"`
}

// latestResponse mirrors GET /api/scores/latest.
type latestResponse struct {
	LatestTimestamp int64    `json:"latestTimestamp"`
	Labels          []string `json:"labels"`
	Datasets        []struct {
		Data []int64 `json:"data"`
	} `json:"datasets"`
}

func (c *client) fetchSeries(ctx context.Context) (*seriesResponse, error) {
	var out seriesResponse
	if err := c.getJSON(ctx, "/api/scores", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) fetchLatest(ctx context.Context) (*latestResponse, error) {
	var out latestResponse
	if err := c.getJSON(ctx, "/api/scores/latest", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
