package camedomotic

import "context"

// Update is one status-change notification drained from the controller. The
// set of fields varies by device kind, so updates are exposed as raw maps;
// Kind identifies the originating device family.
type Update map[string]any

// Kind returns the update's command name (for example
// "thermo_zone_info_ind"), or an empty string if absent.
func (u Update) Kind() string {
	kind, _ := u["cmd_name"].(string)
	return kind
}

type updateListResult struct {
	Result []Update `json:"result"`
}

// Updates drains the chronological list of status updates accumulated on the
// server since the previous call.
func (c *Client) Updates(ctx context.Context) ([]Update, error) {
	payload, err := c.Send(ctx, cmdStatusUpdate, nil)
	if err != nil {
		return nil, err
	}
	var res updateListResult
	if err := decodePayload(payload, &res); err != nil {
		return nil, err
	}
	return res.Result, nil
}
