package queries

import (
	"errors"
	"time"

	"fiesta/internal/pkg/guard"
)

var (
	ErrGetStatsQueryIsNotConstructed = errors.New(
		"GetStatsQuery must be created via NewGetStatsQuery constructor",
	)
	ErrPeriodIsInvalid = errors.New("period end must be after period start")
)

// GetStatsQuery aggregates order and registration numbers over a period.
// Feeds both the admin stats view and the daily digest.
type GetStatsQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetStatsQuery creates a stats query for the half-open period [from, to).
func NewGetStatsQuery(from, to time.Time) (GetStatsQuery, error) {
	if !to.After(from) {
		return GetStatsQuery{}, ErrPeriodIsInvalid
	}

	return GetStatsQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

// From returns the period start, inclusive.
func (q GetStatsQuery) From() time.Time {
	return q.from
}

// To returns the period end, exclusive.
func (q GetStatsQuery) To() time.Time {
	return q.to
}

// TopItemStat is one row of the most ordered items for the period.
type TopItemStat struct {
	Name string
	Qty  int
}

// GetStatsQueryResponse carries the aggregated period numbers. Revenue counts
// delivered orders only; OrdersActive is the current in-flight count
// regardless of period.
type GetStatsQueryResponse struct {
	OrdersPlaced    int
	OrdersDelivered int
	OrdersCanceled  int
	OrdersActive    int
	Revenue         int64
	NewUsers        int
	TopItems        []TopItemStat
}
