package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxNameLength bounds the display name
const MaxNameLength = 100

var emailValidator = validator.New()

// User is an enrolled EV driver with an accumulated wallet
type User struct {
	ID            uint64
	Email         string
	Name          string
	VehicleType   VehicleType
	RCImageID     *string         // Registration certificate image, optional
	CarbonCredits decimal.Decimal // Scale 6
	Balance       decimal.Decimal // INR, scale 2
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserUpdate carries a partial profile change. Nil fields are left untouched.
type UserUpdate struct {
	Name        *string
	VehicleType *VehicleType
	RCImageID   *string
}

// NormalizeEmail lower-cases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the syntax of an email address
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", errs.ErrInvalidEmail)
	}
	if err := emailValidator.Var(email, "email"); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidEmail, email)
	}
	return nil
}

// ValidateName checks that a display name is present and not oversized
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", errs.ErrInvalidName)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w: name longer than %d characters", errs.ErrInvalidName, MaxNameLength)
	}
	return nil
}

// NewUser creates a user with an empty wallet
func NewUser(email, name, vehicleType string, timeProvider coreport.TimeProvider) (*User, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	vt, err := ParseVehicleType(vehicleType)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		Email:         email,
		Name:          strings.TrimSpace(name),
		VehicleType:   vt,
		CarbonCredits: decimal.Zero,
		Balance:       decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return FormatAmount(u.Balance)
}

// GetCarbonCredits returns the credits as a string with 6 decimal places
func (u *User) GetCarbonCredits() string {
	return FormatCredits(u.CarbonCredits)
}

// ApplyReward adds an upload's reward to the wallet
func (u *User) ApplyReward(reward Reward, now time.Time) {
	u.Balance = u.Balance.Add(reward.RewardAmount).Round(MoneyScale)
	u.CarbonCredits = u.CarbonCredits.Add(reward.CarbonCredits).Round(CarbonCreditsScale)
	u.UpdatedAt = now
}

// CanWithdraw checks if the balance covers the requested amount
func (u *User) CanWithdraw(amount decimal.Decimal) bool {
	return u.Balance.GreaterThanOrEqual(amount)
}

// Validate checks the fields set on the update
func (upd UserUpdate) Validate() error {
	if upd.Name != nil {
		if err := ValidateName(*upd.Name); err != nil {
			return err
		}
	}
	if upd.VehicleType != nil && !upd.VehicleType.IsValid() {
		return fmt.Errorf("%w: %q", errs.ErrInvalidVehicleType, *upd.VehicleType)
	}
	return nil
}

// IsEmpty reports whether the update changes nothing
func (upd UserUpdate) IsEmpty() bool {
	return upd.Name == nil && upd.VehicleType == nil && upd.RCImageID == nil
}

// Apply merges the update into the user
func (upd UserUpdate) Apply(u *User, now time.Time) {
	if upd.Name != nil {
		u.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.VehicleType != nil {
		u.VehicleType = *upd.VehicleType
	}
	if upd.RCImageID != nil {
		id := *upd.RCImageID
		u.RCImageID = &id
	}
	u.UpdatedAt = now
}
