package camedomotic

import "context"

// OpeningStatus is the movement state of an opening.
type OpeningStatus int

const (
	OpeningStopped OpeningStatus = 0
	OpeningOpening OpeningStatus = 1
	OpeningClosing OpeningStatus = 2
)

// OpeningType identifies the kind of opening. Shutters are the only type the
// controller is known to report.
type OpeningType int

const (
	OpeningTypeShutter OpeningType = 0
)

// Opening is an opening device (shutter, awning, gate) defined on the
// controller. Open and close movements are driven by separate actuators.
type Opening struct {
	Name       string        `json:"name"`
	OpenActID  int           `json:"open_act_id"`
	CloseActID int           `json:"close_act_id"`
	FloorID    int           `json:"floor_ind"`
	RoomID     int           `json:"room_ind"`
	Status     OpeningStatus `json:"status"`
	Type       OpeningType   `json:"type"`
	Partials   []int         `json:"partial"`
}

type openingListResult struct {
	Openings []Opening `json:"array"`
}

// Openings returns all opening devices defined on the controller.
func (c *Client) Openings(ctx context.Context) ([]Opening, error) {
	payload, err := c.Send(ctx, cmdOpeningList, map[string]any{
		"topologic_scope": "plant",
	})
	if err != nil {
		return nil, err
	}
	var res openingListResult
	if err := decodePayload(payload, &res); err != nil {
		return nil, err
	}
	return res.Openings, nil
}

// MoveOpening starts or stops movement of an opening. Closing commands are
// addressed to the close actuator, everything else to the open actuator.
func (c *Client) MoveOpening(ctx context.Context, op Opening, status OpeningStatus) error {
	actID := op.OpenActID
	if status == OpeningClosing {
		actID = op.CloseActID
	}

	_, err := c.Send(ctx, cmdOpeningMove, map[string]any{
		"act_id":        actID,
		"wanted_status": int(status),
	})
	return err
}
