package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fiesta/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// statsQuerier is the slice of the stats query handler the job needs.
type statsQuerier interface {
	Handle(ctx context.Context, query queries.GetStatsQuery) (queries.GetStatsQueryResponse, error)
}

// DigestSender posts a digest text to the admin channel.
type DigestSender interface {
	AdminDigest(ctx context.Context, text string) error
}

// StatsDigestJob posts a daily summary of orders, revenue and registrations
// to the admin channel.
type StatsDigestJob struct {
	stats    statsQuerier
	sender   DigestSender
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatsDigestJob creates the digest job with a six-field cron schedule.
func NewStatsDigestJob(stats statsQuerier, sender DigestSender, schedule string, logger *slog.Logger) *StatsDigestJob {
	return &StatsDigestJob{
		stats:    stats,
		sender:   sender,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stats_digest_job"),
	}
}

// Start schedules the digest.
func (j *StatsDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(context.Background()); err != nil {
			j.logger.Error("stats digest failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("stats digest job started", "schedule", j.schedule)
	return nil
}

// Stop stops the digest job.
func (j *StatsDigestJob) Stop() {
	j.cron.Stop()
	j.logger.Info("stats digest job stopped")
}

// Run computes the stats for the last 24 hours and posts the digest. Exposed
// separately so an admin can trigger it on demand.
func (j *StatsDigestJob) Run(ctx context.Context) error {
	to := time.Now().UTC()
	from := to.Add(-24 * time.Hour)

	query, err := queries.NewGetStatsQuery(from, to)
	if err != nil {
		return err
	}

	response, err := j.stats.Handle(ctx, query)
	if err != nil {
		return err
	}

	return j.sender.AdminDigest(ctx, digestText(from, to, response))
}

// digestText renders the daily summary posted to the admin channel.
func digestText(from, to time.Time, stats queries.GetStatsQueryResponse) string {
	return fmt.Sprintf(
		"Daily digest %s - %s\n"+
			"Orders placed: %d\n"+
			"Delivered: %d\n"+
			"Canceled: %d\n"+
			"Active now: %d\n"+
			"Revenue: %d\n"+
			"New customers: %d",
		from.Format("2006-01-02 15:04"),
		to.Format("2006-01-02 15:04"),
		stats.OrdersPlaced,
		stats.OrdersDelivered,
		stats.OrdersCanceled,
		stats.OrdersActive,
		stats.Revenue,
		stats.NewUsers,
	)
}
