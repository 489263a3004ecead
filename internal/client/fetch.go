package client

import (
	"context"
	"fmt"
	"io"
)

// Fetch opens a streaming download of rawURL. Any status outside 2xx is an error.
func (c *client) Fetch(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := newRequest(ctx, rawURL, "")
	if err != nil {
		return nil, err
	}

	resp, err := do(c.transferClient, req, endpointTransfer)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	return resp.Body, nil
}
