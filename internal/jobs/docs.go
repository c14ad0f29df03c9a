// Package jobs provides scheduled background tasks for the dispatch system.
//
// Jobs use github.com/robfig/cron/v3 with second-level cron specs.
//
// # Available Jobs
//
// AutoAssignJob assigns the oldest new order to the nearest free master on
// every tick. It goes through the same command handler as the HTTP assign
// endpoint, so every optimistic concurrency check applies to it as well.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(assignPendingHandler, "*/5 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - "no order" and "no free master" outcomes are expected and not logged
//   - version conflicts are logged at debug level and retried on the next tick
//   - every other error is logged at error level
package jobs
