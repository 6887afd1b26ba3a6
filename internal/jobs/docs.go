// Package jobs provides scheduled background tasks for the freight service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// ReconciliationJob runs ReconcileRuns on RECONCILE_SCHEDULE (every 30 seconds
// by default). It replaces one-off repair scripts: any parcel whose status lags
// behind its run's progress is corrected on the next tick.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, cfg.ReconcileSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A noop reconciliation is not an error and is logged at debug level. A lost
// optimistic write race is logged as a warning; every other failure as an error.
package jobs
