// Package jobs provides scheduled background tasks for the pizzeria marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. AssignmentSweepJob - Runs every second to hand ready orders to free couriers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignReadyOrdersHandler, logger)
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
// The sweep job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps the wait between an order becoming ready
// and a courier departing as short as possible.
//
// # Error Handling
//
// - The sweep job ignores expected business outcomes (empty backlog, no free couriers)
// - Any other error is logged as it indicates a system issue
package jobs
