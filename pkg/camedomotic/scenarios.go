package camedomotic

import "context"

// ScenarioStatus is the execution state of a scenario.
type ScenarioStatus int

const (
	ScenarioNotApplied ScenarioStatus = 0
	ScenarioApplying   ScenarioStatus = 1
	ScenarioApplied    ScenarioStatus = 2
)

// Scenario is a pre-programmed sequence of device actions defined on the
// controller.
type Scenario struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Status      ScenarioStatus `json:"status"`
	UserDefined bool           `json:"user_defined"`
}

type scenarioListResult struct {
	Scenarios []Scenario `json:"array"`
}

// Scenarios returns all scenarios defined on the controller.
func (c *Client) Scenarios(ctx context.Context) ([]Scenario, error) {
	payload, err := c.Send(ctx, cmdScenarioList, nil)
	if err != nil {
		return nil, err
	}
	var res scenarioListResult
	if err := decodePayload(payload, &res); err != nil {
		return nil, err
	}
	return res.Scenarios, nil
}

// ActivateScenario triggers execution of a scenario by id.
func (c *Client) ActivateScenario(ctx context.Context, id int) error {
	_, err := c.Send(ctx, cmdScenarioActivate, map[string]any{
		"id": id,
	})
	return err
}
