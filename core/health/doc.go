// Package health provides liveness and readiness handlers for orchestrator
// probes.
//
//	r.Get("/live", health.Liveness[*Context])
//	r.Get("/ready", health.Readiness[*Context](log, health.Check{
//		Name: "listener",
//		Fn:   func(context.Context) error { ... },
//	}))
package health
