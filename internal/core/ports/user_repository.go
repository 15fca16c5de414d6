package ports

import (
	"context"

	"fiesta/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate and assigns its storage id.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by their storage id.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByTgID retrieves a user by their messenger account id.
	GetByTgID(ctx context.Context, tgID int64) (*user.User, error)

	// CountReferrals counts the users registered with the given user as
	// their referrer.
	CountReferrals(ctx context.Context, userID int64) (int, error)

	// MarkRewardGranted atomically flips the one-time referral reward flag.
	// Returns user.ErrRewardAlreadyGranted when the flag was already set, so
	// concurrent grants cannot both issue a reward promo.
	MarkRewardGranted(ctx context.Context, userID int64) error
}
