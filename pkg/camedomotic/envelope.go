package camedomotic

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Ack codes returned by CAME Domotic servers. Code 0 is success; every other
// value is a failure. Which failures count as authentication failures is
// context dependent: AckInvalidUser and AckSessionBusy mean "bad credentials"
// when returned to a login request, and "session expired" when returned to
// any other command. The set can be overridden with WithAuthAckCodes for
// firmware revisions that use different values.
const (
	AckSuccess        = 0
	AckInvalidUser    = 1
	AckSessionBusy    = 3
	AckBadJSON        = 4
	AckNoCommandTag   = 5
	AckUnknownCommand = 6
	AckNoClientID     = 7
	AckWrongClientID  = 8
	AckWrongAppCmd    = 9
	AckServiceDown    = 10
	AckWrongAppData   = 11
)

// Command names understood by the controller.
const (
	cmdLogin            = "login"
	cmdLogout           = "logout"
	cmdKeepAlive        = "keepalive"
	cmdFeatureList      = "feature_list"
	cmdLightList        = "light_list"
	cmdLightSwitch      = "light_switch"
	cmdOpeningList      = "openings_list"
	cmdOpeningMove      = "opening_move"
	cmdScenarioList     = "scenarios_list"
	cmdScenarioActivate = "scenario_activation"
	cmdThermoList       = "thermo_list"
	cmdMeterList        = "meters_list"
	cmdUserList         = "users_list"
	cmdStatusUpdate     = "status_update"
)

var ackMessages = map[int]string{
	AckInvalidUser:    "invalid user",
	AckSessionBusy:    "too many sessions during login",
	AckBadJSON:        "error occurred in JSON syntax",
	AckNoCommandTag:   "no session layer command tag",
	AckUnknownCommand: "unrecognized session layer command",
	AckNoClientID:     "no client ID in request",
	AckWrongClientID:  "wrong client ID in request",
	AckWrongAppCmd:    "wrong application command",
	AckServiceDown:    "no reply to application command, maybe service down",
	AckWrongAppData:   "wrong application data",
}

// AckMessage returns the documented meaning of an ack code.
func AckMessage(code int) string {
	if msg, ok := ackMessages[code]; ok {
		return msg
	}
	return fmt.Sprintf("unknown ack code %d", code)
}

var (
	errMissingAck   = errors.New("response has no ack code")
	errMissingToken = errors.New("login response has no token")
)

// ackText prefers the server's own message, falling back to the documented
// meaning of the code.
func ackText(ack *AckResult) string {
	if ack.Message != "" {
		return ack.Message
	}
	return AckMessage(ack.Code)
}

// envelope is the request frame sent to the controller. Every command carries
// a per-client strictly increasing sequence number; the session token is
// omitted only for the login handshake.
type envelope struct {
	Command string         `json:"command"`
	Seq     int64          `json:"seq"`
	Token   string         `json:"token,omitempty"`
	Payload map[string]any `json:"payload"`
}

// AckResult is the decoded response frame: the ack code plus whatever payload
// the controller attached. A non-success code is a normal AckResult, not a
// decode failure.
type AckResult struct {
	Code    int
	Message string
	Payload map[string]any
}

type responseFrame struct {
	Ack     *int           `json:"ack"`
	Message string         `json:"message"`
	Payload map[string]any `json:"payload"`
}

// encodeEnvelope serializes a command frame. Payload values come from typed
// callers, so a marshaling failure indicates a caller bug and is reported as
// a protocol error.
func encodeEnvelope(command string, payload map[string]any, seq int64, token string) ([]byte, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	raw, err := json.Marshal(envelope{
		Command: command,
		Seq:     seq,
		Token:   token,
		Payload: payload,
	})
	if err != nil {
		return nil, &ProtocolError{Op: "encode " + command, Err: err}
	}
	return raw, nil
}

// decodeAck parses a raw response body into an AckResult. A body that is not
// valid JSON, or that lacks the ack field, is a protocol error.
func decodeAck(raw []byte) (*AckResult, error) {
	var frame responseFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, &ProtocolError{Op: "decode response", Err: err}
	}
	if frame.Ack == nil {
		return nil, &ProtocolError{Op: "decode response", Err: errMissingAck}
	}
	return &AckResult{
		Code:    *frame.Ack,
		Message: frame.Message,
		Payload: frame.Payload,
	}, nil
}

// decodePayload maps a response payload onto a typed struct.
func decodePayload(payload map[string]any, v any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return &ProtocolError{Op: "decode payload", Err: err}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &ProtocolError{Op: "decode payload", Err: err}
	}
	return nil
}
