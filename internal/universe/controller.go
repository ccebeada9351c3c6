package universe

import (
	"context"
	"sync"
)

// RunState is the run loop's position in its lifecycle.
type RunState int

const (
	Running RunState = iota
	Paused
	Stopped
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Controller gates a run loop between generations. It is safe to drive from
// goroutines other than the one running the loop. Stopped is terminal.
type Controller struct {
	mu      sync.Mutex
	state   RunState
	changed chan struct{}
}

// NewController returns a controller in the Running state.
func NewController() *Controller {
	return &Controller{changed: make(chan struct{})}
}

// State returns the current state.
func (c *Controller) State() RunState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pause holds the loop before its next generation.
func (c *Controller) Pause() { c.set(Paused) }

// Resume releases a paused loop.
func (c *Controller) Resume() { c.set(Running) }

// Toggle flips between Running and Paused.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Paused {
		c.transition(Running)
		return
	}
	c.transition(Paused)
}

// Stop ends the loop after its current generation.
func (c *Controller) Stop() { c.set(Stopped) }

// Await blocks while paused and returns the state that released it. It
// returns the context error if ctx ends first.
func (c *Controller) Await(ctx context.Context) (RunState, error) {
	for {
		c.mu.Lock()
		state, changed := c.state, c.changed
		c.mu.Unlock()
		if state != Paused {
			return state, nil
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return state, ctx.Err()
		}
	}
}

func (c *Controller) set(s RunState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transition(s)
}

// transition requires c.mu.
func (c *Controller) transition(s RunState) {
	if c.state == Stopped || c.state == s {
		return
	}
	c.state = s
	close(c.changed)
	c.changed = make(chan struct{})
}
