// Package calculator keeps an editable set of input locations together with
// the most distant point for the current set, and notifies subscribers when
// either changes.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/NERVsystems/remotepoint/pkg/geo"
	"github.com/NERVsystems/remotepoint/pkg/search"
	"github.com/google/uuid"
)

// Subscriber receives the inputs and the current answer. output is nil when
// there are no inputs.
type Subscriber func(inputs []geo.Location, output *geo.Location)

type subscription struct {
	id uuid.UUID
	fn Subscriber
}

// Calculator is safe for concurrent use. Subscribers are called without
// internal state locks held but must not call Add or Remove themselves.
type Calculator struct {
	finder search.Finder
	logger *slog.Logger

	// update serializes Add and Remove so subscribers see states in order.
	update sync.Mutex

	mu          sync.RWMutex
	inputs      []geo.Location
	output      *geo.Location
	isolation   float64
	subscribers []subscription
}

// New creates a calculator with no inputs.
func New(finder search.Finder, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{finder: finder, logger: logger}
}

// Add inserts loc, replacing any input with exactly the same coordinates,
// and recomputes the answer.
func (c *Calculator) Add(ctx context.Context, loc geo.Location) (*geo.Location, error) {
	c.update.Lock()
	defer c.update.Unlock()

	inputs := c.Inputs()
	inputs = slices.DeleteFunc(inputs, func(l geo.Location) bool { return l == loc })
	inputs = append(inputs, loc)
	return c.recompute(ctx, inputs)
}

// Remove deletes every input with exactly the coordinates of loc and
// recomputes the answer.
func (c *Calculator) Remove(ctx context.Context, loc geo.Location) (*geo.Location, error) {
	c.update.Lock()
	defer c.update.Unlock()

	inputs := slices.DeleteFunc(c.Inputs(), func(l geo.Location) bool { return l == loc })
	return c.recompute(ctx, inputs)
}

// Inputs returns a copy of the current inputs in insertion order.
func (c *Calculator) Inputs() []geo.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.inputs)
}

// Output returns the current answer and its isolation, or nil when there are
// no inputs.
func (c *Calculator) Output() (*geo.Location, float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.output == nil {
		return nil, 0
	}
	out := *c.output
	return &out, c.isolation
}

// Subscribe registers fn, calls it immediately with the current state and
// returns an id for Unsubscribe.
func (c *Calculator) Subscribe(fn Subscriber) uuid.UUID {
	id := uuid.New()

	c.mu.Lock()
	c.subscribers = append(c.subscribers, subscription{id: id, fn: fn})
	inputs := slices.Clone(c.inputs)
	output := c.output
	c.mu.Unlock()

	fn(inputs, output)
	return id
}

// Unsubscribe removes a subscriber and reports whether it was registered.
func (c *Calculator) Unsubscribe(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.subscribers)
	c.subscribers = slices.DeleteFunc(c.subscribers, func(s subscription) bool { return s.id == id })
	return len(c.subscribers) != n
}

// recompute searches over inputs, stores the new state and notifies. On a
// search error the state is left unchanged.
func (c *Calculator) recompute(ctx context.Context, inputs []geo.Location) (*geo.Location, error) {
	var (
		output    *geo.Location
		isolation float64
	)

	res, err := c.finder.MostDistant(ctx, geo.PointsOf(inputs))
	switch {
	case errors.Is(err, search.ErrNoPoints):
		// No inputs means no answer.
	case err != nil:
		return nil, fmt.Errorf("failed to compute most distant point: %w", err)
	default:
		loc := geo.LocationOf(res.Point)
		output = &loc
		isolation = res.Isolation
	}

	c.mu.Lock()
	c.inputs = inputs
	c.output = output
	c.isolation = isolation
	subscribers := slices.Clone(c.subscribers)
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "inputs updated", "inputs", len(inputs), "has_output", output != nil)

	for _, s := range subscribers {
		s.fn(slices.Clone(inputs), output)
	}

	if output == nil {
		return nil, nil
	}
	out := *output
	return &out, nil
}
