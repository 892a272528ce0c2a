package camedomotic

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig) error

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	port           int
	requestTimeout time.Duration
	httpClient     *http.Client
	transport      Transport
	logger         *slog.Logger
	authAckCodes   []int
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		port:           80,
		requestTimeout: 10 * time.Second,
		authAckCodes:   []int{AckInvalidUser, AckSessionBusy},
	}
}

// WithPort sets the TCP port of the controller's HTTP endpoint.
// Default is 80.
func WithPort(port int) ClientOption {
	return func(c *clientConfig) error {
		if port < 1 || port > 65535 {
			return errors.New("port must be between 1 and 65535")
		}
		c.port = port
		return nil
	}
}

// WithRequestTimeout sets the per-command timeout applied when the caller's
// context carries no deadline. Default is 10 seconds.
func WithRequestTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) error {
		if d <= 0 {
			return errors.New("request timeout must be positive")
		}
		c.requestTimeout = d
		return nil
	}
}

// WithHTTPClient sets the http.Client used by the default transport.
// Ignored if WithTransport is also given.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) error {
		if client == nil {
			return errors.New("http client must not be nil")
		}
		c.httpClient = client
		return nil
	}
}

// WithTransport replaces the HTTP transport entirely. Intended for tests and
// for controllers reachable only through a custom channel.
func WithTransport(t Transport) ClientOption {
	return func(c *clientConfig) error {
		if t == nil {
			return errors.New("transport must not be nil")
		}
		c.transport = t
		return nil
	}
}

// WithLogger sets a structured logger for debug and error logging.
// By default, no logging is performed.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *clientConfig) error {
		c.logger = logger
		return nil
	}
}

// WithAuthAckCodes overrides the ack codes treated as authentication
// failures. Defaults to AckInvalidUser and AckSessionBusy.
func WithAuthAckCodes(codes ...int) ClientOption {
	return func(c *clientConfig) error {
		if len(codes) == 0 {
			return errors.New("at least one auth ack code is required")
		}
		for _, code := range codes {
			if code == AckSuccess {
				return errors.New("ack code 0 is reserved for success")
			}
		}
		c.authAckCodes = codes
		return nil
	}
}
