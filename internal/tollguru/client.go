// README: TollGuru API client; per-leg toll cost lookup over HTTP.
package tollguru

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"tollwise/internal/modules/estimate"
)

const (
	lookupPath = "/toll/v2/origin-destination-waypoints"
	// defaultVehicleType matches TollGuru's standard passenger car class.
	defaultVehicleType = "2AxlesAuto"
)

// Client calls the TollGuru origin-destination-waypoints endpoint. It is
// constructed explicitly from configuration; there is no package-level
// client. Timeouts are owned by the injected *http.Client.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, http: httpClient}
}

type apiAddress struct {
	Address string `json:"address"`
}

type apiVehicle struct {
	Type string `json:"type"`
}

type apiRequest struct {
	From          apiAddress   `json:"from"`
	To            apiAddress   `json:"to"`
	Waypoints     []apiAddress `json:"waypoints,omitempty"`
	Vehicle       apiVehicle   `json:"vehicle"`
	DepartureTime string       `json:"departure_time"`
	Currency      string       `json:"currency"`
}

type apiCost struct {
	Amount float64 `json:"amount"`
}

type apiRoute struct {
	Costs struct {
		Tag  *apiCost `json:"tag"`
		Cash *apiCost `json:"cash"`
	} `json:"costs"`
}

type apiResponse struct {
	Routes []apiRoute `json:"routes"`
}

// Lookup fetches the toll split for one leg. The cheapest route (routes[0])
// is used. Routes without tag or cash costs price the leg at zero, matching
// toll-free routes.
func (c *Client) Lookup(ctx context.Context, req estimate.LookupRequest) (estimate.LegTollCost, error) {
	if req.Origin == "" || req.Destination == "" {
		return estimate.LegTollCost{}, fmt.Errorf("origin and destination are required")
	}

	vehicleType := req.VehicleType
	if vehicleType == "" {
		vehicleType = defaultVehicleType
	}

	body := apiRequest{
		From:          apiAddress{Address: req.Origin},
		To:            apiAddress{Address: req.Destination},
		Vehicle:       apiVehicle{Type: vehicleType},
		DepartureTime: req.DepartureTime.Format(time.RFC3339),
		Currency:      req.Currency,
	}
	for _, w := range req.Waypoints {
		body.Waypoints = append(body.Waypoints, apiAddress{Address: w})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return estimate.LegTollCost{}, fmt.Errorf("tollguru: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+lookupPath, bytes.NewReader(payload))
	if err != nil {
		return estimate.LegTollCost{}, fmt.Errorf("tollguru: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return estimate.LegTollCost{}, fmt.Errorf("tollguru: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return estimate.LegTollCost{}, fmt.Errorf("tollguru: status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return estimate.LegTollCost{}, fmt.Errorf("tollguru: decode response: %w", err)
	}
	if len(out.Routes) == 0 {
		return estimate.LegTollCost{}, fmt.Errorf("tollguru: no routes in response")
	}

	costs := out.Routes[0].Costs
	if costs.Tag == nil || costs.Cash == nil {
		// Toll-free route.
		return estimate.LegTollCost{Tag: decimal.Zero, Cash: decimal.Zero}, nil
	}
	return estimate.LegTollCost{
		Tag:  decimal.NewFromFloat(costs.Tag.Amount),
		Cash: decimal.NewFromFloat(costs.Cash.Amount),
	}, nil
}
