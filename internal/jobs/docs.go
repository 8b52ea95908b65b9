// Package jobs provides scheduled background tasks for orderdesk.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and run independently of request
// handling; the resolution pipeline never waits on them.
//
// # Available Jobs
//
// RetryStateSweepJob evicts simulated-failure counters that were never cleared, e.g.
// because the process handling the resolution died mid-way. It is only needed for the
// in-memory tracker; the Redis tracker expires its keys on its own.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(logger, jobs.NewRetryStateSweepJob(tracker, ttl, "", logger))
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
