package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fiesta/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsQuerier struct {
	response queries.GetStatsQueryResponse
	err      error

	received queries.GetStatsQuery
}

func (f *fakeStatsQuerier) Handle(_ context.Context, query queries.GetStatsQuery) (queries.GetStatsQueryResponse, error) {
	f.received = query
	return f.response, f.err
}

type fakeDigestSender struct {
	err error

	sent []string
}

func (f *fakeDigestSender) AdminDigest(_ context.Context, text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatsDigestJob_Run(t *testing.T) {
	stats := &fakeStatsQuerier{
		response: queries.GetStatsQueryResponse{
			OrdersPlaced:    12,
			OrdersDelivered: 9,
			OrdersCanceled:  2,
			OrdersActive:    3,
			Revenue:         830000,
			NewUsers:        4,
		},
	}
	sender := &fakeDigestSender{}
	job := NewStatsDigestJob(stats, sender, "0 0 9 * * *", testLogger())

	require.NoError(t, job.Run(context.Background()))

	require.Len(t, sender.sent, 1)
	digest := sender.sent[0]
	assert.Contains(t, digest, "Orders placed: 12")
	assert.Contains(t, digest, "Delivered: 9")
	assert.Contains(t, digest, "Canceled: 2")
	assert.Contains(t, digest, "Active now: 3")
	assert.Contains(t, digest, "Revenue: 830000")
	assert.Contains(t, digest, "New customers: 4")

	// The queried period is the 24 hours before the run.
	assert.Equal(t, 24.0, stats.received.To().Sub(stats.received.From()).Hours())
}

func TestStatsDigestJob_Run_QueryFailure(t *testing.T) {
	stats := &fakeStatsQuerier{err: errors.New("connection refused")}
	sender := &fakeDigestSender{}
	job := NewStatsDigestJob(stats, sender, "0 0 9 * * *", testLogger())

	require.Error(t, job.Run(context.Background()))
	assert.Empty(t, sender.sent)
}

func TestStatsDigestJob_Run_SendFailure(t *testing.T) {
	stats := &fakeStatsQuerier{}
	sender := &fakeDigestSender{err: errors.New("chat not found")}
	job := NewStatsDigestJob(stats, sender, "0 0 9 * * *", testLogger())

	require.Error(t, job.Run(context.Background()))
}

func TestStatsDigestJob_StartRejectsBadSchedule(t *testing.T) {
	job := NewStatsDigestJob(&fakeStatsQuerier{}, &fakeDigestSender{}, "not a schedule", testLogger())
	require.Error(t, job.Start())
}

func TestJobManager_StartAll_BadScheduleFails(t *testing.T) {
	manager := NewJobManager(&fakeStatsQuerier{}, &fakeDigestSender{}, "nope", testLogger())
	require.Error(t, manager.StartAll())
}

func TestJobManager_StartAndStop(t *testing.T) {
	manager := NewJobManager(&fakeStatsQuerier{}, &fakeDigestSender{}, "0 0 9 * * *", testLogger())
	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
