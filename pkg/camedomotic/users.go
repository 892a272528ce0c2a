package camedomotic

import "context"

// User is a user account defined on the controller.
type User struct {
	Name string `json:"name"`
}

type userListResult struct {
	Users []User `json:"users"`
}

// Users returns the user accounts defined on the controller.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	payload, err := c.Send(ctx, cmdUserList, nil)
	if err != nil {
		return nil, err
	}
	var res userListResult
	if err := decodePayload(payload, &res); err != nil {
		return nil, err
	}
	return res.Users, nil
}
