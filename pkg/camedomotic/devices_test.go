package camedomotic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios_ListAndActivate(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdScenarioList] = map[string]any{
		"array": []any{
			map[string]any{"id": 1, "name": "Night", "status": 0, "user_defined": true},
			map[string]any{"id": 2, "name": "Away", "status": 2, "user_defined": false},
		},
	}
	client := newTestClient(t, ctrl)

	scenarios, err := client.Scenarios(context.Background())
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "Night", scenarios[0].Name)
	assert.True(t, scenarios[0].UserDefined)
	assert.Equal(t, ScenarioApplied, scenarios[1].Status)

	require.NoError(t, client.ActivateScenario(context.Background(), 2))
	reqs := ctrl.requests(cmdScenarioActivate)
	require.Len(t, reqs, 1)
	assert.EqualValues(t, 2, reqs[0].Payload["id"])
}

func TestThermoZones_List(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdThermoList] = map[string]any{
		"array": []any{
			map[string]any{
				"act_id":    7,
				"name":      "Room 1",
				"floor_ind": 37,
				"room_ind":  45,
				"temp_dec":  202,
				"set_point": 349,
				"mode":      2,
				"season":    "winter",
				"status":    0,
			},
		},
	}
	client := newTestClient(t, ctrl)

	zones, err := client.ThermoZones(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, 1)

	zone := zones[0]
	assert.Equal(t, 7, zone.ID)
	assert.Equal(t, "Room 1", zone.Name)
	assert.InDelta(t, 20.2, zone.Temperature(), 0.001)
	assert.InDelta(t, 34.9, zone.SetPointTemperature(), 0.001)
	assert.Equal(t, ThermoModeAuto, zone.Mode)
	assert.Equal(t, SeasonWinter, zone.Season)
}

func TestEnergyMeters_List(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdMeterList] = map[string]any{
		"array": []any{
			map[string]any{"id": 3, "name": "Main", "unit": "W", "instant_power": 1250.5},
		},
	}
	client := newTestClient(t, ctrl)

	meters, err := client.EnergyMeters(context.Background())
	require.NoError(t, err)
	require.Len(t, meters, 1)
	assert.Equal(t, "Main", meters[0].Name)
	assert.InDelta(t, 1250.5, meters[0].InstantPower, 0.001)
}

func TestUsers_List(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdUserList] = map[string]any{
		"users": []any{
			map[string]any{"name": "admin"},
			map[string]any{"name": "guest"},
		},
	}
	client := newTestClient(t, ctrl)

	users, err := client.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Name)
	assert.Equal(t, "guest", users[1].Name)
}

func TestUpdates_Drain(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdStatusUpdate] = map[string]any{
		"result": []any{
			map[string]any{"cmd_name": "thermo_zone_info_ind", "act_id": 7, "temp_dec": 202},
			map[string]any{"cmd_name": "light_switch_ind", "act_id": 1, "status": 1},
		},
	}
	client := newTestClient(t, ctrl)

	updates, err := client.Updates(context.Background())
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "thermo_zone_info_ind", updates[0].Kind())
	assert.Equal(t, "light_switch_ind", updates[1].Kind())
	assert.EqualValues(t, 202, updates[0]["temp_dec"])
}

func TestUpdates_Empty(t *testing.T) {
	ctrl := newFakeController()
	ctrl.payloads[cmdStatusUpdate] = map[string]any{"result": []any{}}
	client := newTestClient(t, ctrl)

	updates, err := client.Updates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, updates)
}
