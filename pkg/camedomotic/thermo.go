package camedomotic

import "context"

// ThermoSeason selects the heating/cooling season of a zone.
type ThermoSeason string

const (
	SeasonWinter ThermoSeason = "winter"
	SeasonSummer ThermoSeason = "summer"
)

// ThermoMode is the regulation mode of a thermo zone.
type ThermoMode int

const (
	ThermoModeOff    ThermoMode = 0
	ThermoModeManual ThermoMode = 1
	ThermoModeAuto   ThermoMode = 2
	ThermoModeJolly  ThermoMode = 3
)

// ThermoZone is a thermoregulation zone. The controller reports temperatures
// in tenths of a degree.
type ThermoZone struct {
	ID       int          `json:"act_id"`
	Name     string       `json:"name"`
	FloorID  int          `json:"floor_ind"`
	RoomID   int          `json:"room_ind"`
	TempDec  int          `json:"temp_dec"`
	SetPoint int          `json:"set_point"`
	Mode     ThermoMode   `json:"mode"`
	Season   ThermoSeason `json:"season"`
	Status   int          `json:"status"`
}

// Temperature returns the measured zone temperature in degrees.
func (z ThermoZone) Temperature() float64 { return float64(z.TempDec) / 10 }

// SetPointTemperature returns the configured target temperature in degrees.
func (z ThermoZone) SetPointTemperature() float64 { return float64(z.SetPoint) / 10 }

type thermoListResult struct {
	Zones []ThermoZone `json:"array"`
}

// ThermoZones returns all thermoregulation zones defined on the controller.
func (c *Client) ThermoZones(ctx context.Context) ([]ThermoZone, error) {
	payload, err := c.Send(ctx, cmdThermoList, map[string]any{
		"extended_infos": 0,
	})
	if err != nil {
		return nil, err
	}
	var res thermoListResult
	if err := decodePayload(payload, &res); err != nil {
		return nil, err
	}
	return res.Zones, nil
}
