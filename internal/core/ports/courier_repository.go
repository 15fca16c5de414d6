package ports

import (
	"context"

	"fiesta/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate and assigns its storage id.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier aggregate by its storage id.
	Get(ctx context.Context, id int64) (*courier.Courier, error)

	// GetByIdentity retrieves the courier whose channel or private chat
	// address equals the given acting identity. The channel match is tried
	// first; several couriers may share a private chat history but a channel
	// address is unique per courier.
	GetByIdentity(ctx context.Context, identity int64) (*courier.Courier, error)

	// GetAllActive retrieves all couriers currently available for
	// assignments.
	GetAllActive(ctx context.Context) ([]*courier.Courier, error)
}
