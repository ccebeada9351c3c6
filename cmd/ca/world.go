package main

import (
	"log"
	"net/http"
	"time"

	"torus-ca/internal/app"
	"torus-ca/internal/metrics"
	"torus-ca/internal/universe"

	"github.com/prometheus/client_golang/prometheus"
)

// verboseObserver logs every committed generation.
type verboseObserver struct{ next universe.Observer }

func (v verboseObserver) ObserveGeneration(gen uint64, pop int, sweep time.Duration) {
	log.Printf("generation %d: population %d (%v)", gen, pop, sweep)
	if v.next != nil {
		v.next.ObserveGeneration(gen, pop, sweep)
	}
}

func buildWorld(cfg *app.Config) (*app.World, error) {
	var observer universe.Observer
	if cfg.Metrics != "" {
		reg := prometheus.NewRegistry()
		preset, err := app.ResolvePreset(cfg.Rule, cfg.Options)
		if err != nil {
			return nil, err
		}
		rec, err := metrics.NewRecorder(reg, preset.Name)
		if err != nil {
			return nil, err
		}
		observer = rec
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler(reg))
			log.Printf("serving metrics on %s", cfg.Metrics)
			if err := http.ListenAndServe(cfg.Metrics, mux); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}
	if cfg.Verbose {
		observer = verboseObserver{next: observer}
	}
	var opts []universe.Option
	if observer != nil {
		opts = append(opts, universe.WithObserver(observer))
	}
	return app.Build(*cfg, opts...)
}
