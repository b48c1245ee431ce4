package smoke

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// product mirrors the catalog record shape returned by the API.
type product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    int     `json:"price"`
	Rating   float64 `json:"rating"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// teamResult mirrors the GET /team-builder response.
type teamResult struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Budget    float64   `json:"budget"`
	TotalCost int       `json:"total_cost"`
	Products  []product `json:"products"`
}

type floorResult struct {
	MinimumBudget int `json:"minimum_budget"`
}

type client struct {
	baseURL string
	http    *http.Client
}

func (c *client) getJSON(ctx context.Context, path string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s: %w", path, err)
	}
	return resp.StatusCode, nil
}

// fetchFloor retrieves the catalog's budget floor.
func (c *client) fetchFloor(ctx context.Context) (int, error) {
	var out floorResult
	status, err := c.getJSON(ctx, "/minimum-budget", &out)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("minimum-budget returned status %d", status)
	}
	return out.MinimumBudget, nil
}

// fetchTeam builds a team for the budget and returns the HTTP status with
// the decoded body.
func (c *client) fetchTeam(ctx context.Context, budget float64) (int, teamResult, error) {
	var out teamResult
	q := url.Values{"budget": []string{strconv.FormatFloat(budget, 'f', -1, 64)}}
	status, err := c.getJSON(ctx, "/team-builder?"+q.Encode(), &out)
	return status, out, err
}
