// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence and (after commit) notification.
package commands

import (
	"context"

	"fiesta/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// PromoRepoFactory provides access to the promo repository within a transaction.
	PromoRepoFactory interface {
		PromoRepository() ports.PromoRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order status operations. The user
	// repository rides along to resolve the customer's chat for
	// notifications.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages the order placement transaction: the order
	// itself, the customer and the optional promo consumed alongside.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		PromoRepoFactory
		UserRepoFactory
	}

	// CreateOrderUoWFactory creates new order placement unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// AssignmentUoW manages transactions that coordinate an order with a
	// courier: assignment, acceptance and delivery.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		UserRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ReferralUoW manages transactions for user registration and referral
	// reward issuing.
	ReferralUoW interface {
		TxManager
		UserRepoFactory
		PromoRepoFactory
	}

	// ReferralUoWFactory creates new referral unit of work instances.
	ReferralUoWFactory interface {
		Create() ReferralUoW
	}
)
