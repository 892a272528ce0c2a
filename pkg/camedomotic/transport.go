package camedomotic

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Protocol constants for the HTTP layer. The endpoint path and headers are
// fixed by the controller firmware, not configurable per call.
const (
	endpointPath = "/domo/"
	contentType  = "application/json"

	// Responses are small JSON documents; cap reads to guard against a
	// misbehaving server.
	maxResponseBytes = 1 << 20
)

// Transport posts one JSON request body to the controller and returns the
// JSON response body, or an error if the controller could not be reached.
// Implementations must be safe for concurrent use.
type Transport interface {
	Post(ctx context.Context, body []byte) ([]byte, error)
}

// httpTransport is the default Transport, backed by net/http.
type httpTransport struct {
	client   *http.Client
	endpoint string
}

func newHTTPTransport(client *http.Client, host string, port int) *httpTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpTransport{
		client:   client,
		endpoint: fmt.Sprintf("http://%s:%d%s", host, port, endpointPath),
	}
}

func (t *httpTransport) Post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Connection", "Keep-Alive")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
}
