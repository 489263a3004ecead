package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/catdl/catdl/internal/metrics"
	"github.com/catdl/catdl/internal/models"
)

// Endpoint labels used for metrics and logs
const (
	endpointShow     = "show"
	endpointCatalog  = "catalog"
	endpointMedia    = "media"
	endpointTransfer = "transfer"
)

// do executes req and records the outcome under endpoint
func do(httpClient *http.Client, req *http.Request, endpoint string) (*http.Response, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("do request: %w", err)
	}
	metrics.APIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// getJSON performs req and decodes a 200 response body into out.
// Non-200 responses are reported with the provider's error message when it sent one.
func getJSON(httpClient *http.Client, req *http.Request, endpoint string, out any) error {
	resp, err := do(httpClient, req, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode JSON response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var apiErr models.APIError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
		return fmt.Errorf("unexpected status code %d: %s (code %d)", resp.StatusCode, apiErr.Message, apiErr.Code)
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}
