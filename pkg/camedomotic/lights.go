package camedomotic

import "context"

// LightStatus is the on/off state of a light.
type LightStatus int

const (
	LightOff LightStatus = 0
	LightOn  LightStatus = 1
)

// LightType distinguishes plain relay lights from dimmable ones.
type LightType string

const (
	LightTypeStepStep LightType = "STEP_STEP"
	LightTypeDimmer   LightType = "DIMMER"
)

// Light is a light actuator defined on the controller.
type Light struct {
	ID         int         `json:"act_id"`
	Name       string      `json:"name"`
	FloorID    int         `json:"floor_ind"`
	RoomID     int         `json:"room_ind"`
	Status     LightStatus `json:"status"`
	Type       LightType   `json:"type"`
	Brightness int         `json:"perc"`
}

// Dimmable reports whether the light supports brightness control.
func (l Light) Dimmable() bool { return l.Type == LightTypeDimmer }

// LightControl describes a requested light state change. Brightness is a
// percentage in [0,100]; nil leaves the current brightness unchanged and is
// ignored for non-dimmable lights.
type LightControl struct {
	ID         int
	Status     LightStatus
	Brightness *int
}

type lightListResult struct {
	Lights []Light `json:"array"`
}

// Lights returns all light devices defined on the controller.
func (c *Client) Lights(ctx context.Context) ([]Light, error) {
	payload, err := c.Send(ctx, cmdLightList, map[string]any{
		"topologic_scope": "plant",
	})
	if err != nil {
		return nil, err
	}
	var res lightListResult
	if err := decodePayload(payload, &res); err != nil {
		return nil, err
	}
	return res.Lights, nil
}

// SetLight switches a light on or off and, for dimmers, optionally adjusts
// its brightness.
func (c *Client) SetLight(ctx context.Context, ctl LightControl) error {
	payload := map[string]any{
		"act_id":        ctl.ID,
		"wanted_status": int(ctl.Status),
	}
	if ctl.Brightness != nil {
		perc := *ctl.Brightness
		if perc < 0 {
			perc = 0
		}
		if perc > 100 {
			perc = 100
		}
		payload["perc"] = perc
	}

	_, err := c.Send(ctx, cmdLightSwitch, payload)
	return err
}
