// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the admin panel backend.
//
// # Available Jobs
//
// 1. DispatchSweepJob - Periodically bulk-assigns unassigned HIGH and URGENT
// orders to available drivers, draining the backlog left by best-effort
// assignment at order creation.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(backlogHandler, assignHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule is a six-field cron expression with a seconds field,
// configured through the environment (e.g. "*/30 * * * * *" for every 30
// seconds).
//
// # Error Handling
//
// Per-order assignment failures during a sweep are expected while the fleet
// is saturated and are not treated as errors; the orders stay unassigned and
// are retried on the next run. Failures to read the backlog or execute the
// sweep itself are logged.
package jobs
