// Package lookup resolves a food name to nutrition facts. The rest of the
// app treats a Provider as a black box: the remote API, the built-in table
// and the cache all sit behind the same interface.
package lookup

import (
	"context"
	"errors"
)

// ErrNoMatch means the provider answered but knows nothing about the food.
// Transport or decoding failures are returned as ordinary errors so callers
// can tell "unknown food" from "lookup unavailable".
var ErrNoMatch = errors.New("no match for food name")

// FoodFacts is the per-serving nutrition record a provider returns.
type FoodFacts struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	ServingSize string  `json:"serving_size"`
}

// Provider answers nutrition lookups by food name.
type Provider interface {
	Lookup(ctx context.Context, name string) (*FoodFacts, error)
}

// Chain tries each provider in order and returns the first answer. A
// provider that fails outright is skipped, so a dead remote API falls
// through to the static table. ErrNoMatch is only returned once a provider
// actually answered "unknown"; if every provider failed, the last failure
// is surfaced instead.
type Chain []Provider

func (c Chain) Lookup(ctx context.Context, name string) (*FoodFacts, error) {
	var lastErr error
	sawNoMatch := false
	for _, p := range c {
		facts, err := p.Lookup(ctx, name)
		if err == nil {
			return facts, nil
		}
		if errors.Is(err, ErrNoMatch) {
			sawNoMatch = true
			continue
		}
		lastErr = err
	}
	if lastErr != nil && !sawNoMatch {
		return nil, lastErr
	}
	return nil, ErrNoMatch
}
