package queries

import (
	"errors"
	"time"

	"fiesta/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
	ErrTgIDIsRequired = errors.New("tg id is required")
)

// defaultUserOrdersLimit caps the history shown to a customer.
const defaultUserOrdersLimit = 10

// GetUserOrdersQuery retrieves a customer's order history, newest first.
type GetUserOrdersQuery struct {
	tgID  int64
	limit int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a history query for the given customer.
// A non-positive limit falls back to the default page size.
func NewGetUserOrdersQuery(tgID int64, limit int) (GetUserOrdersQuery, error) {
	if tgID == 0 {
		return GetUserOrdersQuery{}, ErrTgIDIsRequired
	}
	if limit <= 0 {
		limit = defaultUserOrdersLimit
	}

	return GetUserOrdersQuery{
		tgID:  tgID,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// TgID returns the customer's messenger account id.
func (q GetUserOrdersQuery) TgID() int64 {
	return q.tgID
}

// Limit returns the maximum number of rows.
func (q GetUserOrdersQuery) Limit() int {
	return q.limit
}

// GetUserOrdersQueryResponse is one history row.
type GetUserOrdersQueryResponse struct {
	Number    string
	Status    string
	Total     int64
	CreatedAt time.Time
}
