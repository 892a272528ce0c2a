package camedomotic

import (
	"context"
	"time"
)

// sessionSafeZone is subtracted from the server's keep-alive timeout so the
// client considers a session expired slightly before the server does.
const sessionSafeZone = 30 * time.Second

// session holds the authenticated-session state for one client: the token
// issued at login, the server keycode, and the local expiry clock. All fields
// are guarded by the client mutex; the session is only ever mutated by the
// login, logout and refresh paths.
type session struct {
	token      string
	keycode    string
	keepAlive  time.Duration
	expiresAt  time.Time
	generation uint64
}

func (s *session) valid(now time.Time) bool {
	return s.token != "" && now.Before(s.expiresAt)
}

// loginResult is the payload of a successful login response.
type loginResult struct {
	Token        string `json:"token"`
	Keycode      string `json:"keycode"`
	KeepAliveSec int    `json:"keepalive_sec"`
}

// IsSessionValid reports whether the client currently holds a usable session
// token. It never performs network I/O.
func (c *Client) IsSessionValid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.valid(time.Now())
}

// Keycode returns the controller's stable unique identifier, populated after
// the first successful login. Empty until then.
func (c *Client) Keycode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.keycode
}

// validToken returns the current token if the session is still valid.
func (c *Client) validToken() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.valid(time.Now()) {
		return c.session.token, true
	}
	return "", false
}

// sessionGeneration identifies the current session epoch. It advances on
// every login and on every invalidation, so cached per-session data can
// detect that it is stale.
func (c *Client) sessionGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.generation
}

// invalidateSession marks the session unusable for all callers, including
// ones with requests already in flight.
func (c *Client) invalidateSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.token != "" {
		c.session.generation++
	}
	c.session.token = ""
	c.session.expiresAt = time.Time{}
}

// refreshSession pushes the expiry clock forward after a successful exchange
// with the server, keeping the safe zone below the keep-alive timeout.
func (c *Client) refreshSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.token == "" || c.session.keepAlive <= 0 {
		return
	}
	c.session.expiresAt = time.Now().Add(c.session.keepAlive)
}

// ensureSession returns a valid session token, performing the login
// handshake if necessary. Concurrent callers that find the session invalid
// share a single login flight and observe the same outcome; the flight runs
// detached from any one caller's context so that a waiter's cancellation
// cannot abort a login other waiters depend on.
func (c *Client) ensureSession(ctx context.Context) (string, error) {
	if token, ok := c.validToken(); ok {
		return token, nil
	}

	ch := c.loginFlight.DoChan("login", func() (any, error) {
		// A previous flight may have completed between the validity
		// check and joining this one.
		if token, ok := c.validToken(); ok {
			return token, nil
		}
		return c.login(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// login performs the login handshake: credentials in, token out. During
// login the auth ack codes mean "bad credentials", and any other non-success
// ack is also an authentication failure.
func (c *Client) login(ctx context.Context) (string, error) {
	ack, err := c.exchange(ctx, cmdLogin, map[string]any{
		"username": c.username,
		"password": c.password,
	}, "")
	if err != nil {
		return "", err
	}
	if ack.Code != AckSuccess {
		return "", &AuthError{Code: ack.Code, Message: ackText(ack)}
	}

	var res loginResult
	if err := decodePayload(ack.Payload, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", &ProtocolError{Op: "decode " + cmdLogin, Err: errMissingToken}
	}

	c.mu.Lock()
	c.session.token = res.Token
	c.session.keycode = res.Keycode
	c.session.keepAlive = time.Duration(res.KeepAliveSec)*time.Second - sessionSafeZone
	if c.session.keepAlive <= 0 {
		c.session.keepAlive = sessionSafeZone
	}
	c.session.expiresAt = time.Now().Add(c.session.keepAlive)
	c.session.generation++
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("logged in", "keycode", res.Keycode, "keepalive_sec", res.KeepAliveSec)
	}
	return res.Token, nil
}

// logout sends the logout handshake if a token exists and clears the local
// session state regardless of the server's answer. A failed logout must
// never leave the client believing it still holds a session.
func (c *Client) logout(ctx context.Context) error {
	token, ok := c.validToken()
	c.invalidateSession()
	if !ok {
		return nil
	}

	ack, err := c.exchange(ctx, cmdLogout, nil, token)
	if err != nil {
		return err
	}
	if ack.Code != AckSuccess {
		return &ServerCommandError{Command: cmdLogout, Code: ack.Code, Message: ackText(ack)}
	}
	return nil
}

// KeepAlive refreshes the session without re-authenticating. If the session
// has already expired it performs a full login instead.
func (c *Client) KeepAlive(ctx context.Context) error {
	token, ok := c.validToken()
	if !ok {
		_, err := c.ensureSession(ctx)
		return err
	}

	ack, err := c.exchange(ctx, cmdKeepAlive, nil, token)
	if err != nil {
		return err
	}
	if ack.Code != AckSuccess {
		if c.isAuthCode(ack.Code) {
			c.invalidateSession()
			_, err := c.ensureSession(ctx)
			return err
		}
		return &ServerCommandError{Command: cmdKeepAlive, Code: ack.Code, Message: ackText(ack)}
	}
	return nil
}
