package order

import (
	"errors"
	"time"

	"fiesta/internal/core/domain/model/kernel"
	"fiesta/internal/pkg/errs"
)

// MinTotal is the smallest order total accepted, in sum. Carts below it are
// rejected at creation; restored historical orders are exempt.
const MinTotal int64 = 50000

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrIDAlreadyAssigned is returned when the storage-assigned id is set a
	// second time.
	ErrIDAlreadyAssigned = errors.New("order id is already assigned")

	// ErrChannelMessageIDAlreadySet is returned when a second admin-channel
	// message id is pushed onto an order. The id is captured exactly once,
	// right after the first send, and is never overwritten.
	ErrChannelMessageIDAlreadySet = errors.New("admin-channel message id is already set")
)

// Order is the aggregate root for the food-ordering lifecycle. It owns the
// status state machine, the courier assignment, the item snapshots, and the
// admin-channel message handle.
//
// Invariants:
//   - DeliveredAt is non-nil if and only if the status is DELIVERED
//   - the courier reference is set only once the order has reached
//     COURIER_ASSIGNED; reassignment replaces it, nothing ever clears it
//   - the order number is generated at creation and immutable
//   - status/courier/message-id fields mutate only through aggregate methods
//
// Orders are never deleted: the lifecycle leaves an append-only audit trail.
type Order struct {
	// id is the storage-assigned numeric identity, 0 until persisted
	id int64

	// number is the immutable, customer-facing order identifier
	number kernel.OrderNumber

	// userID references the owning user
	userID int64

	// customerName, phone and comment are a contact snapshot taken at order time
	customerName string
	phone        string
	comment      string

	// total is the monetary total in the base currency unit
	total int64

	status    Status
	createdAt time.Time
	updatedAt time.Time

	// deliveredAt is stamped at the DELIVERED transition, never supplied by a caller
	deliveredAt *time.Time

	location kernel.Location

	// courierID is the assigned courier (nil until COURIER_ASSIGNED)
	courierID *int64

	// channelMessageID is the single durable handle for editing the one
	// admin-channel message representing this order
	channelMessageID *int64

	// promoCode is the normalized promo code applied at creation, if any
	promoCode string

	items []Item

	isConstructed bool
}

// NewOrder creates an order in StatusNew with a freshly generated order
// number and the creation timestamps stamped. The storage id stays 0 until
// the repository persists the order.
func NewOrder(
	number kernel.OrderNumber,
	userID int64,
	customerName string,
	phone string,
	comment string,
	total int64,
	location kernel.Location,
	promoCode string,
	items []Item,
) (*Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}
	if userID <= 0 {
		return nil, errs.NewValueIsRequiredError("userID")
	}
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if phone == "" {
		return nil, errs.NewValueIsRequiredError("phone")
	}
	if total < MinTotal {
		return nil, errs.NewValueIsOutOfRangeError("total", total, MinTotal, nil)
	}
	if err := location.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	now := time.Now().UTC()
	return &Order{
		number:        number,
		userID:        userID,
		customerName:  customerName,
		phone:         phone,
		comment:       comment,
		total:         total,
		status:        StatusNew,
		createdAt:     now,
		updatedAt:     now,
		location:      location,
		promoCode:     promoCode,
		items:         items,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order aggregate from persistence. Unlike
// NewOrder it accepts the full persisted state, including the storage id,
// timestamps, courier assignment and channel message handle.
func RestoreOrder(
	id int64,
	number kernel.OrderNumber,
	userID int64,
	customerName string,
	phone string,
	comment string,
	total int64,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	deliveredAt *time.Time,
	location kernel.Location,
	courierID *int64,
	channelMessageID *int64,
	promoCode string,
	items []Item,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := number.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:               id,
		number:           number,
		userID:           userID,
		customerName:     customerName,
		phone:            phone,
		comment:          comment,
		total:            total,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		deliveredAt:      deliveredAt,
		location:         location,
		courierID:        courierID,
		channelMessageID: channelMessageID,
		promoCode:        promoCode,
		items:            items,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number.IsEqual(other.number)
}

// ID returns the storage-assigned numeric id, 0 for unpersisted orders.
func (o *Order) ID() int64 {
	return o.id
}

// SetID records the storage-assigned id after the first insert. It is called
// by the repository exactly once; any further call is a programming error.
func (o *Order) SetID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	o.id = id
	return nil
}

// Number returns the customer-facing order number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// UserID returns the owning user reference.
func (o *Order) UserID() int64 {
	return o.userID
}

// CustomerName returns the contact name snapshot.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the contact phone snapshot.
func (o *Order) Phone() string {
	return o.phone
}

// Comment returns the optional customer comment.
func (o *Order) Comment() string {
	return o.comment
}

// Total returns the monetary total in the base currency unit.
func (o *Order) Total() int64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-transition timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeliveredAt returns the delivery timestamp, nil unless the order is
// DELIVERED.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Location returns the delivery destination.
func (o *Order) Location() kernel.Location {
	return o.location
}

// CourierID returns the assigned courier's id, nil if unassigned.
func (o *Order) CourierID() *int64 {
	return o.courierID
}

// ChannelMessageID returns the admin-channel message handle, nil until the
// first successful send is recorded.
func (o *Order) ChannelMessageID() *int64 {
	return o.channelMessageID
}

// PromoCode returns the applied promo code, empty if none.
func (o *Order) PromoCode() string {
	return o.promoCode
}

// Items returns the order lines.
func (o *Order) Items() []Item {
	return o.items
}

// ChangeStatus applies a lifecycle transition. The transition graph is
// validated centrally here; callers decide *who* may request a transition,
// this method decides *whether* the transition itself is legal.
//
// Side effects: UpdatedAt is always stamped; DeliveredAt is stamped only on
// the transition to DELIVERED, with the transition time.
func (o *Order) ChangeStatus(target Status) error {
	if err := o.status.CanTransitionTo(target); err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = target
	o.updatedAt = now
	if target == StatusDelivered {
		o.deliveredAt = &now
	}
	return nil
}

// Assign sets the courier and moves the order to COURIER_ASSIGNED. It is
// legal from any non-terminal status; assigning over an existing courier
// replaces the reference (reassignment), it never clears it.
func (o *Order) Assign(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValueIsRequiredError("courierID")
	}
	if err := o.ChangeStatus(StatusCourierAssigned); err != nil {
		return err
	}
	o.courierID = &courierID
	return nil
}

// IsAssignedTo reports whether the given courier is the one assigned to this
// order. Used for the exclusivity check on courier-side actions.
func (o *Order) IsAssignedTo(courierID int64) bool {
	return o.courierID != nil && *o.courierID == courierID
}

// SetChannelMessageID records the admin-channel message id captured after the
// first send. The handle is write-once: a second call fails rather than
// overwriting, so a stray duplicate send can never hijack the existing
// message.
func (o *Order) SetChannelMessageID(messageID int64) error {
	if o.channelMessageID != nil {
		return ErrChannelMessageIDAlreadySet
	}
	if messageID == 0 {
		return errs.NewValueIsRequiredError("messageID")
	}
	o.channelMessageID = &messageID
	return nil
}

// IsClosed reports whether the order is in a closed state (DELIVERED or
// CANCELED) where admin-channel action buttons are retired.
func (o *Order) IsClosed() bool {
	return o.status.IsTerminal()
}
