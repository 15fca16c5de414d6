package courier

import (
	"errors"
	"time"

	"fiesta/internal/pkg/errs"
	"fiesta/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when a courier has neither a private
	// chat address nor a channel address; such a courier cannot be notified
	// and therefore cannot be assigned.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("chatID or channelID")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")
)

// Courier represents a delivery courier. It is an aggregate root that manages
// courier identity, chat addressing and availability.
//
// Business rules:
//   - at least one of {private chat address, channel address} must be present
//   - notifications prefer the channel address when both exist
//   - availability is a soft flag toggled by the courier or an admin
type Courier struct {
	// id is the storage-assigned numeric identity, 0 until persisted
	id int64

	// name is the human-readable name of the courier
	name string

	// chatID is the courier's private chat address (0 when absent)
	chatID int64

	// channelID is the courier's broadcast-channel address (0 when absent)
	channelID int64

	// isActive marks the courier as available for assignments
	isActive bool

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCourier creates an active courier with the given name and addresses.
// Either address may be 0, but not both.
func NewCourier(name string, chatID, channelID int64) (*Courier, error) {
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if chatID == 0 && channelID == 0 {
		return nil, ErrAddressIsRequired
	}

	return &Courier{
		name:      name,
		chatID:    chatID,
		channelID: channelID,
		isActive:  true,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreCourier reconstructs a courier aggregate from persistent storage.
func RestoreCourier(id int64, name string, chatID, channelID int64, isActive bool, createdAt time.Time) (*Courier, error) {
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if chatID == 0 && channelID == 0 {
		return nil, ErrAddressIsRequired
	}

	return &Courier{
		id:        id,
		name:      name,
		chatID:    chatID,
		channelID: channelID,
		isActive:  isActive,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the storage-assigned numeric id, 0 for unpersisted couriers.
func (c *Courier) ID() int64 {
	return c.id
}

// SetID records the storage-assigned id after the first insert.
func (c *Courier) SetID(id int64) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidError("courier id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// ChatID returns the private chat address, 0 when absent.
func (c *Courier) ChatID() int64 {
	return c.chatID
}

// ChannelID returns the broadcast-channel address, 0 when absent.
func (c *Courier) ChannelID() int64 {
	return c.channelID
}

// IsActive reports whether the courier is available for assignments.
func (c *Courier) IsActive() bool {
	return c.isActive
}

// CreatedAt returns the registration timestamp.
func (c *Courier) CreatedAt() time.Time {
	return c.createdAt
}

// SetActive toggles the courier's availability.
func (c *Courier) SetActive(active bool) {
	c.isActive = active
}

// NotificationAddress resolves the single chat address that order
// notifications for this courier go to: the channel when present, otherwise
// the private chat. Computing it once here keeps the rest of the code from
// branching on which field happens to be populated.
func (c *Courier) NotificationAddress() int64 {
	if c.channelID != 0 {
		return c.channelID
	}
	return c.chatID
}

// MatchesIdentity reports whether the given acting identity (a private chat
// id or the courier channel's chat id) belongs to this courier.
func (c *Courier) MatchesIdentity(identity int64) bool {
	if identity == 0 {
		return false
	}
	return c.channelID == identity || c.chatID == identity
}
