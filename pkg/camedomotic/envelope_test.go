package camedomotic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEnvelope_WithToken(t *testing.T) {
	raw, err := encodeEnvelope("light_switch", map[string]any{"act_id": 5}, 7, "abc123")
	require.NoError(t, err)

	expected := `{"command":"light_switch","seq":7,"token":"abc123","payload":{"act_id":5}}`
	assert.JSONEq(t, expected, string(raw))
}

func TestEncodeEnvelope_LoginOmitsToken(t *testing.T) {
	raw, err := encodeEnvelope("login", map[string]any{"username": "admin"}, 1, "")
	require.NoError(t, err)

	assert.NotContains(t, string(raw), `"token"`)
}

func TestEncodeEnvelope_NilPayload(t *testing.T) {
	raw, err := encodeEnvelope("logout", nil, 3, "abc123")
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"payload":{}`)
}

func TestEncodeEnvelope_UnserializablePayload(t *testing.T) {
	_, err := encodeEnvelope("bad", map[string]any{"ch": make(chan int)}, 1, "")
	assert.True(t, IsProtocolError(err))
}

func TestDecodeAck_Success(t *testing.T) {
	ack, err := decodeAck([]byte(`{"ack":0,"payload":{"token":"abc"}}`))
	require.NoError(t, err)

	assert.Equal(t, AckSuccess, ack.Code)
	assert.Equal(t, "abc", ack.Payload["token"])
}

func TestDecodeAck_FailureCodeIsNotAnError(t *testing.T) {
	// A well-formed failure ack decodes cleanly; interpreting the code is
	// the dispatcher's job.
	ack, err := decodeAck([]byte(`{"ack":10,"message":"service down"}`))
	require.NoError(t, err)

	assert.Equal(t, AckServiceDown, ack.Code)
	assert.Equal(t, "service down", ack.Message)
	assert.Nil(t, ack.Payload)
}

func TestDecodeAck_InvalidJSON(t *testing.T) {
	_, err := decodeAck([]byte("not json at all"))
	assert.True(t, IsProtocolError(err))
}

func TestDecodeAck_MissingAckField(t *testing.T) {
	_, err := decodeAck([]byte(`{"message":"hello"}`))
	require.Error(t, err)
	assert.True(t, IsProtocolError(err))
	assert.ErrorIs(t, err, errMissingAck)
}

func TestAckMessage(t *testing.T) {
	assert.Equal(t, "invalid user", AckMessage(AckInvalidUser))
	assert.Equal(t, "too many sessions during login", AckMessage(AckSessionBusy))
	assert.Contains(t, AckMessage(99), "unknown ack code 99")
}

func TestAckText_PrefersServerMessage(t *testing.T) {
	assert.Equal(t, "boom", ackText(&AckResult{Code: 10, Message: "boom"}))
	assert.Equal(t, AckMessage(10), ackText(&AckResult{Code: 10}))
}

func TestDecodePayload(t *testing.T) {
	var res loginResult
	err := decodePayload(map[string]any{
		"token":         "abc",
		"keycode":       "0000FFFF9999AAAA",
		"keepalive_sec": 900,
	}, &res)
	require.NoError(t, err)

	assert.Equal(t, "abc", res.Token)
	assert.Equal(t, "0000FFFF9999AAAA", res.Keycode)
	assert.Equal(t, 900, res.KeepAliveSec)
}
