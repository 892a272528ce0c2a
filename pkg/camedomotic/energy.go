package camedomotic

import "context"

// EnergyMeter is an energy measurement point defined on the controller.
type EnergyMeter struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	InstantPower float64 `json:"instant_power"`
}

type meterListResult struct {
	Meters []EnergyMeter `json:"array"`
}

// EnergyMeters returns all energy meters defined on the controller.
func (c *Client) EnergyMeters(ctx context.Context) ([]EnergyMeter, error) {
	payload, err := c.Send(ctx, cmdMeterList, nil)
	if err != nil {
		return nil, err
	}
	var res meterListResult
	if err := decodePayload(payload, &res); err != nil {
		return nil, err
	}
	return res.Meters, nil
}
