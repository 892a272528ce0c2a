package camedomotic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func featureListPayload() map[string]any {
	return map[string]any{
		"keycode": "0000FFFF9999AAAA",
		"serial":  "0011ffee",
		"swver":   "1.2.3",
		"type":    "0",
		"board":   "3",
		"list":    []any{"lights", "openings", "scenarios"},
	}
}

func TestFeatures_DiscoveredOnce(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdFeatureList] = featureListPayload()
	client := newTestClient(t, ctrl)

	features, err := client.Features(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"lights", "openings", "scenarios"}, features)

	again, err := client.Features(context.Background())
	require.NoError(t, err)
	assert.Equal(t, features, again)

	// Second call must come from the cache.
	assert.Len(t, ctrl.requests(cmdFeatureList), 1)
}

func TestFeatures_RediscoveredAfterReLogin(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdFeatureList] = featureListPayload()
	client := newTestClient(t, ctrl)

	_, err := client.Features(context.Background())
	require.NoError(t, err)
	require.Len(t, ctrl.requests(cmdFeatureList), 1)

	// Force a re-login through the expired-session path.
	ctrl.expireSession()
	_, err = client.Send(context.Background(), "get_lights", nil)
	require.NoError(t, err)
	require.Equal(t, 2, ctrl.logins())

	_, err = client.Features(context.Background())
	require.NoError(t, err)
	assert.Len(t, ctrl.requests(cmdFeatureList), 2,
		"a new session must re-discover features")
}

func TestFeatures_InvalidatedByClose(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdFeatureList] = featureListPayload()
	client := newTestClient(t, ctrl)

	_, err := client.Features(context.Background())
	require.NoError(t, err)
	require.NoError(t, client.Close())

	client2 := newTestClient(t, ctrl)
	_, err = client2.Features(context.Background())
	require.NoError(t, err)
	assert.Len(t, ctrl.requests(cmdFeatureList), 2)
}

func TestSupportsFeature(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdFeatureList] = featureListPayload()
	client := newTestClient(t, ctrl)

	ok, err := client.SupportsFeature(context.Background(), FeatureLights)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SupportsFeature(context.Background(), FeatureEnergy)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestServerInfo_Fields(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdFeatureList] = featureListPayload()
	client := newTestClient(t, ctrl)

	info, err := client.ServerInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "0000FFFF9999AAAA", info.Keycode)
	assert.Equal(t, "0011ffee", info.Serial)
	assert.Equal(t, "1.2.3", info.Software)
	assert.Equal(t, "3", info.Board)
}
