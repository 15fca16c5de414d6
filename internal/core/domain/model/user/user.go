package user

import (
	"errors"
	"time"

	"fiesta/internal/pkg/errs"
	"fiesta/internal/pkg/guard"
)

// ReferralRewardThreshold is how many registered referrals earn the referrer
// a one-time reward promo.
const ReferralRewardThreshold = 3

// ReferralRewardDiscountPercent is the discount carried by the reward promo.
const ReferralRewardDiscountPercent = 15

var (
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
	// ErrRewardAlreadyGranted is returned when the referral reward promo was
	// already issued to this user.
	ErrRewardAlreadyGranted = errors.New("referral reward already granted")
)

// User is a registered customer. The aggregate carries the messenger identity
// and the referral bookkeeping; order history lives on the Order side.
type User struct {
	id          int64
	tgID        int64
	username    string
	fullName    string
	refByUserID *int64
	promoGiven  bool
	joinedAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser registers a customer. refByUserID points at the referrer and is
// fixed at registration time; later registrations of the same account must
// not reattach the chain.
func NewUser(tgID int64, username, fullName string, refByUserID *int64) (*User, error) {
	if tgID == 0 {
		return nil, errs.NewValueIsRequiredError("tgID")
	}
	if refByUserID != nil && *refByUserID <= 0 {
		return nil, errs.NewValueIsRequiredError("refByUserID")
	}

	return &User{
		tgID:        tgID,
		username:    username,
		fullName:    fullName,
		refByUserID: refByUserID,
		joinedAt:    time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreUser reconstructs a user aggregate from persistent storage.
func RestoreUser(id, tgID int64, username, fullName string, refByUserID *int64, promoGiven bool, joinedAt time.Time) (*User, error) {
	if tgID == 0 {
		return nil, errs.NewValueIsRequiredError("tgID")
	}

	return &User{
		id:          id,
		tgID:        tgID,
		username:    username,
		fullName:    fullName,
		refByUserID: refByUserID,
		promoGiven:  promoGiven,
		joinedAt:    joinedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the storage-assigned numeric id, 0 for unpersisted users.
func (u *User) ID() int64 {
	return u.id
}

// SetID records the storage-assigned id after the first insert.
func (u *User) SetID(id int64) error {
	if u.id != 0 {
		return errs.NewValueIsInvalidError("user id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	u.id = id
	return nil
}

// TgID returns the messenger account id.
func (u *User) TgID() int64 {
	return u.tgID
}

// Username returns the messenger username, possibly empty.
func (u *User) Username() string {
	return u.username
}

// FullName returns the display name, possibly empty.
func (u *User) FullName() string {
	return u.fullName
}

// RefByUserID returns the referrer's user id, nil when the user joined
// without a referral link.
func (u *User) RefByUserID() *int64 {
	return u.refByUserID
}

// RewardGranted reports whether the referral reward promo was already issued.
func (u *User) RewardGranted() bool {
	return u.promoGiven
}

// JoinedAt returns the registration timestamp.
func (u *User) JoinedAt() time.Time {
	return u.joinedAt
}

// UpdateProfile refreshes the mutable profile fields on a returning
// customer. Empty values are ignored so a client that omits a field cannot
// wipe it.
func (u *User) UpdateProfile(username, fullName string) {
	if username != "" {
		u.username = username
	}
	if fullName != "" {
		u.fullName = fullName
	}
}

// GrantReward flips the one-time reward flag. The storage layer performs the
// matching conditional update so two concurrent grants cannot both succeed;
// this in-memory check catches the same race within one transaction.
func (u *User) GrantReward() error {
	if u.promoGiven {
		return ErrRewardAlreadyGranted
	}
	u.promoGiven = true
	return nil
}
