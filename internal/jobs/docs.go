// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. PrintDispatchJob - Runs every second to drain the print queue and submit
// pending label and packing slip documents to the printer service
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchPrintJobsHandler, logger)
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
// The dispatch job uses the cron expression "* * * * * *" which means it runs
// every second. This keeps the delay between a completed purchase and the
// physical printout small without coupling the purchase request to the printer.
//
// # Error Handling
//
// Printing is best-effort: failed submissions are logged and dropped, never
// retried, so a broken printer cannot block or grow the queue indefinitely.
package jobs
