// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the outbound messenger and
// runtime settings. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"fiesta/internal/core/domain/model/kernel"
	"fiesta/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its storage id.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its storage id, items included.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetByNumber retrieves an order aggregate by its public order number.
	GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetAllActive retrieves orders that are not yet delivered or canceled,
	// oldest first. Used for the kitchen board and the daily digest.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetByUser retrieves the given user's orders, newest first, capped at
	// limit (0 means no cap).
	GetByUser(ctx context.Context, userID int64, limit int) ([]*order.Order, error)
}
