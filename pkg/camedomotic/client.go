package camedomotic

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Client talks to a single CAME Domotic controller. It manages the session
// lifecycle transparently: the first command triggers a login, an expired
// session triggers exactly one re-login and one retry of the failed command,
// and Close always attempts a logout. A Client is safe for concurrent use.
type Client struct {
	host           string
	username       string
	password       string
	transport      Transport
	requestTimeout time.Duration
	logger         *slog.Logger
	authAckCodes   map[int]struct{}

	seq         atomic.Int64
	loginFlight singleflight.Group

	mu      sync.Mutex
	session session
	closed  bool

	features featureCache
}

// NewClient creates a client for the controller at host. Construction never
// performs network I/O: the session is established lazily by the first
// command sent.
func NewClient(host, username, password string, opts ...ClientOption) (*Client, error) {
	if host == "" {
		return nil, ErrEmptyHost
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	transport := cfg.transport
	if transport == nil {
		transport = newHTTPTransport(cfg.httpClient, host, cfg.port)
	}

	authCodes := make(map[int]struct{}, len(cfg.authAckCodes))
	for _, code := range cfg.authAckCodes {
		authCodes[code] = struct{}{}
	}

	return &Client{
		host:           host,
		username:       username,
		password:       password,
		transport:      transport,
		requestTimeout: cfg.requestTimeout,
		logger:         cfg.logger,
		authAckCodes:   authCodes,
	}, nil
}

// Send issues a command with the given payload and returns the response
// payload. It is the single entry point used by all device accessors: it
// obtains a valid session (logging in on demand), frames the command with
// the next sequence number and the session token, and interprets the ack
// code. A session-expired ack triggers one forced re-login and one retry; a
// second expired ack is reported as an authentication failure.
func (c *Client) Send(ctx context.Context, command string, payload map[string]any) (map[string]any, error) {
	token, err := c.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	ack, err := c.exchange(ctx, command, payload, token)
	if err != nil {
		return nil, err
	}

	switch {
	case ack.Code == AckSuccess:
		return ack.Payload, nil
	case c.isAuthCode(ack.Code):
		// Session expired. Invalidate for everyone, re-login once and
		// retry the original command once.
		c.invalidateSession()
		if c.logger != nil {
			c.logger.Debug("session expired, re-authenticating", "command", command, "ack", ack.Code)
		}
		token, err = c.ensureSession(ctx)
		if err != nil {
			return nil, err
		}
		ack, err = c.exchange(ctx, command, payload, token)
		if err != nil {
			return nil, err
		}
		if ack.Code == AckSuccess {
			return ack.Payload, nil
		}
		if c.isAuthCode(ack.Code) {
			c.invalidateSession()
			return nil, &AuthError{Code: ack.Code, Message: "session could not be re-established"}
		}
		return nil, &ServerCommandError{Command: command, Code: ack.Code, Message: ackText(ack)}
	default:
		return nil, &ServerCommandError{Command: command, Code: ack.Code, Message: ackText(ack)}
	}
}

// exchange performs one framed request/response round trip: assign the next
// sequence number, encode, post, decode. It does not interpret the ack code
// beyond refreshing the session expiry clock on success.
func (c *Client) exchange(ctx context.Context, command string, payload map[string]any, token string) (*AckResult, error) {
	seq := c.seq.Add(1)

	body, err := encodeEnvelope(command, payload, seq, token)
	if err != nil {
		return nil, err
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	if c.logger != nil {
		c.logger.Debug("sending command", "command", command, "seq", seq)
	}

	raw, err := c.transport.Post(ctx, body)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("transport failure", "command", command, "seq", seq, "error", err)
		}
		return nil, &ServerUnreachableError{Host: c.host, Err: err}
	}

	ack, err := decodeAck(raw)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("malformed response", "command", command, "seq", seq, "error", err)
		}
		return nil, err
	}

	if c.logger != nil {
		c.logger.Debug("response received", "command", command, "seq", seq, "ack", ack.Code)
	}

	if ack.Code == AckSuccess {
		c.refreshSession()
	}
	return ack, nil
}

func (c *Client) isAuthCode(code int) bool {
	_, ok := c.authAckCodes[code]
	return ok
}

// Close logs out and clears the session state. The logout is best effort: a
// failure is logged and swallowed, and the local session is cleared on every
// path. Close is idempotent.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), c.requestTimeout)
	defer cancel()

	if err := c.logout(ctx); err != nil {
		if c.logger != nil {
			c.logger.Warn("logout failed during close", "error", err)
		}
	}
	return nil
}
