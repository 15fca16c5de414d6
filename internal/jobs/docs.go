// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// The only job today is StatsDigestJob, which aggregates the previous day's
// order and registration numbers and posts them to the admin channel. Jobs
// are coordinated through JobManager: StartAll on boot, StopAll on shutdown.
package jobs
