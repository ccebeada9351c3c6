// Package universe drives a topology and population store one generation at
// a time.
package universe

import (
	"context"
	"strconv"
	"strings"
	"time"

	"torus-ca/internal/core"
)

// Observer receives diagnostics after every committed generation. It must not
// affect simulation state.
type Observer interface {
	ObserveGeneration(generation uint64, population int, sweep time.Duration)
}

// Option configures a Universe at construction.
type Option func(*Universe)

// WithName labels the universe in parameter snapshots.
func WithName(name string) Option {
	return func(u *Universe) { u.name = name }
}

// WithSeeder sets the strategy Initialise uses to fill the population.
func WithSeeder(s core.Seeder) Option {
	return func(u *Universe) {
		if s != nil {
			u.seeder = s
		}
	}
}

// WithObserver attaches a diagnostics observer.
func WithObserver(o Observer) Option {
	return func(u *Universe) { u.observer = o }
}

// WithController shares a run controller, e.g. with a UI.
func WithController(c *Controller) Option {
	return func(u *Universe) {
		if c != nil {
			u.ctrl = c
		}
	}
}

// Universe owns one topology and one population store for its lifetime.
// Apart from its Controller it is not safe for concurrent use.
type Universe struct {
	name     string
	topo     core.Topology
	store    core.Store
	sampler  core.Sampler
	seeder   core.Seeder
	observer Observer
	ctrl     *Controller

	generation uint64
}

// New validates the collaborators and assembles a universe. The store must
// address exactly the topology's cells, a ranked sampler must match the
// topology's rank, and a store reporting its state capacity must hold every
// state the rule emits.
func New(topo core.Topology, store core.Store, sampler core.Sampler, opts ...Option) (*Universe, error) {
	if topo == nil {
		return nil, core.InvalidDependency("universe requires a topology")
	}
	if store == nil {
		return nil, core.InvalidDependency("universe requires a population store")
	}
	if sampler == nil {
		return nil, core.InvalidDependency("universe requires a neighborhood sampler")
	}
	if store.Size() != topo.Size() {
		return nil, core.InvalidDependency("store holds %d cells, topology spans %d", store.Size(), topo.Size())
	}
	if r, ok := sampler.(core.Ranked); ok && r.Rank() != len(topo.Dims()) {
		return nil, core.InvalidDependency("sampler rank %d, topology rank %d", r.Rank(), len(topo.Dims()))
	}
	rule, ruleOK := topo.Rule().(core.StateCounter)
	capacity, storeOK := store.(core.StateCounter)
	if ruleOK && storeOK && rule.States() > capacity.States() {
		return nil, core.InvalidDependency("rule emits %d states, store cells hold %d", rule.States(), capacity.States())
	}
	rng := core.NewRNG(1)
	u := &Universe{
		name:    "universe",
		topo:    topo,
		store:   store,
		sampler: sampler,
		seeder: func(int) core.State {
			if rng.Bool() {
				return 1
			}
			return 0
		},
		ctrl: NewController(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Name returns the universe label.
func (u *Universe) Name() string { return u.name }

// Dims returns the topology's declared dimensions.
func (u *Universe) Dims() core.Dims { return u.topo.Dims() }

// Controller returns the run controller gating Run.
func (u *Universe) Controller() *Controller { return u.ctrl }

// Generation returns how many generations have been committed since seeding.
func (u *Universe) Generation() uint64 { return u.generation }

// Population returns the number of non-zero cells in the committed generation.
func (u *Universe) Population() int { return u.store.PopulationCount() }

// Initialise seeds the population and resets the generation counter.
func (u *Universe) Initialise() {
	u.store.Seed(u.seeder)
	u.generation = 0
}

// Reseed replaces the seeding strategy and re-initialises.
func (u *Universe) Reseed(s core.Seeder) {
	if s != nil {
		u.seeder = s
	}
	u.Initialise()
}

// Current returns a view of the committed generation without stepping.
func (u *Universe) Current() core.Generation { return u.topo.Cells(u.store) }

// RunStep advances exactly one generation and returns a view of it.
func (u *Universe) RunStep() core.Generation {
	start := time.Now()
	gen := u.topo.Step(u.sampler, u.store)
	u.generation++
	if u.observer != nil {
		u.observer.ObserveGeneration(u.generation, u.store.PopulationCount(), time.Since(start))
	}
	return gen
}

// Run advances up to n generations, or until stopped when n is negative.
// Before each generation it waits out a pause; after drawing it waits on the
// pacer. It returns the number of generations run and ctx's error if the
// context ended the loop.
func (u *Universe) Run(ctx context.Context, n int, r core.Renderer, p core.Pacer) (int, error) {
	if r != nil {
		r.Resize(u.Dims())
	}
	done := 0
	for n < 0 || done < n {
		state, err := u.ctrl.Await(ctx)
		if err != nil {
			return done, err
		}
		if state == Stopped {
			return done, nil
		}
		gen := u.RunStep()
		done++
		if r != nil {
			r.Draw(gen)
		}
		if p != nil {
			if err := p.Wait(ctx); err != nil {
				return done, err
			}
		}
	}
	return done, nil
}

// Parameters reports the universe's configuration and progress.
func (u *Universe) Parameters() core.ParameterSnapshot {
	dims := u.Dims()
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "name", Label: "Rule", Value: u.name},
				{Key: "dims", Label: "Size", Value: strings.Join(parts, "x")},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.FormatUint(u.generation, 10)},
				{Key: "population", Label: "Population", Value: strconv.Itoa(u.Population())},
				{Key: "state", Label: "State", Value: u.ctrl.State().String()},
			},
		},
	}}
}
