package camedomotic

import (
	"context"
	"sync"
)

// featureCache remembers the controller's discovered capabilities for the
// lifetime of one session. The cache is keyed on the session generation: a
// logout or forced re-login bumps the generation, so the next lookup
// re-discovers the feature list instead of trusting data from a previous
// session (a firmware update between sessions can change it).
type featureCache struct {
	mu         sync.Mutex
	generation uint64
	info       *ServerInfo
}

func (f *featureCache) get(generation uint64) (*ServerInfo, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.info == nil || f.generation != generation {
		return nil, false
	}
	return f.info, true
}

func (f *featureCache) set(generation uint64, info *ServerInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generation = generation
	f.info = info
}

// Features returns the names of the functional blocks this controller
// exposes (for example "lights" or "openings"). The list is discovered on
// first use and cached until the session changes.
func (c *Client) Features(ctx context.Context) ([]string, error) {
	info, err := c.ServerInfo(ctx)
	if err != nil {
		return nil, err
	}
	return info.Features, nil
}

// SupportsFeature reports whether the controller exposes the named feature.
func (c *Client) SupportsFeature(ctx context.Context, name string) (bool, error) {
	features, err := c.Features(ctx)
	if err != nil {
		return false, err
	}
	for _, f := range features {
		if f == name {
			return true, nil
		}
	}
	return false, nil
}

// ServerInfo returns the controller description and feature list, cached per
// session like Features.
func (c *Client) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	if info, ok := c.features.get(c.sessionGeneration()); ok {
		return info, nil
	}

	payload, err := c.Send(ctx, cmdFeatureList, nil)
	if err != nil {
		return nil, err
	}

	var info ServerInfo
	if err := decodePayload(payload, &info); err != nil {
		return nil, err
	}

	// Read the generation after the send: the send itself may have
	// logged in and advanced it.
	c.features.set(c.sessionGeneration(), &info)

	if c.logger != nil {
		c.logger.Debug("features discovered", "features", info.Features)
	}
	return &info, nil
}
