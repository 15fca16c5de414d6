package commands

import (
	"errors"

	"fiesta/internal/pkg/guard"
)

var (
	ErrAssignCourierCommandIsNotConstructed = errors.New(
		"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
	)
	ErrCourierIDIsRequired = errors.New("courier id is required")
)

// AssignCourierCommand represents an admin picking a courier for an order.
// Reassignment uses the same command; the order aggregate resets the
// lifecycle back to the assigned stage.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	courierID int64

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign the courier to the order.
func NewAssignCourierCommand(orderID, courierID int64) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the storage id of the order.
func (c AssignCourierCommand) OrderID() int64 {
	return c.orderID
}

// CourierID returns the storage id of the courier to assign.
func (c AssignCourierCommand) CourierID() int64 {
	return c.courierID
}

func (c *AssignCourierCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID int64) error {
	if courierID <= 0 {
		return ErrCourierIDIsRequired
	}
	c.courierID = courierID
	return nil
}
