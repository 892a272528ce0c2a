package camedomotic

import (
	"errors"
	"fmt"
)

// The client reports failures through four error types:
//
//   - ServerUnreachableError: the transport could not reach the controller.
//   - AuthError: credentials rejected at login, or the session could not be
//     re-established after an expiry-triggered retry.
//   - ServerCommandError: well-formed response with a non-auth failure ack.
//   - ProtocolError: malformed or unparseable response.
//
// Only the session-expired case is corrected automatically (one re-login and
// one retry); every other error propagates to the caller unchanged.

// ErrEmptyHost is returned by NewClient when no host is given.
var ErrEmptyHost = errors.New("camedomotic: host must not be empty")

// AuthError reports a failed login or an unrecoverable session loss.
// Code is the ack code that caused it, or zero when none applies.
type AuthError struct {
	Code    int
	Message string
}

func (e *AuthError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("camedomotic: authentication failed (ack %d: %s)", e.Code, e.Message)
	}
	return fmt.Sprintf("camedomotic: authentication failed: %s", e.Message)
}

// ServerCommandError reports a non-success ack code unrelated to
// authentication. The failed command is not retried, since the protocol does
// not guarantee command idempotency.
type ServerCommandError struct {
	Command string
	Code    int
	Message string
}

func (e *ServerCommandError) Error() string {
	return fmt.Sprintf("camedomotic: command %q rejected (ack %d: %s)", e.Command, e.Code, e.Message)
}

// ProtocolError reports a response the client could not make sense of.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("camedomotic: protocol error: %s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// ServerUnreachableError reports a transport-level failure (DNS, connection,
// timeout). The client does not retry these.
type ServerUnreachableError struct {
	Host string
	Err  error
}

func (e *ServerUnreachableError) Error() string {
	return fmt.Sprintf("camedomotic: server %s unreachable: %v", e.Host, e.Err)
}

func (e *ServerUnreachableError) Unwrap() error { return e.Err }

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsServerCommandError reports whether err is a command rejection, returning
// the rejection when it is.
func IsServerCommandError(err error) (*ServerCommandError, bool) {
	var target *ServerCommandError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsServerUnreachable reports whether err is a transport failure.
func IsServerUnreachable(err error) bool {
	var target *ServerUnreachableError
	return errors.As(err, &target)
}

// IsProtocolError reports whether err is a malformed-response failure.
func IsProtocolError(err error) bool {
	var target *ProtocolError
	return errors.As(err, &target)
}
