// Package camedomotic provides a client for CAME Domotic home-automation
// controllers over their HTTP/JSON command protocol.
//
// # Basic Usage
//
//	client, err := camedomotic.NewClient("192.168.1.3", "admin", "admin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	lights, err := client.Lights(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Sessions
//
// The client manages the controller session on its own. Construction never
// touches the network: the first command logs in, and the session is renewed
// transparently when the controller reports it expired (the failed command is
// retried exactly once). Concurrent callers share a single login handshake.
// Closing the client logs out, best effort.
//
// # Configuration
//
// The client can be configured using functional options:
//
//	client, err := camedomotic.NewClient("192.168.1.3", "admin", "admin",
//	    camedomotic.WithPort(8080),
//	    camedomotic.WithRequestTimeout(5*time.Second),
//	    camedomotic.WithLogger(slog.Default()),
//	)
//
// # Errors
//
// Failures fall into four types: AuthError, ServerCommandError,
// ProtocolError and ServerUnreachableError. Use the IsXxx helpers or
// errors.As to classify them.
package camedomotic
