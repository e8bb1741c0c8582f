package loyalty

import (
	"errors"
	"fmt"
	"math"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

// Points awarded per rewarded action.
const (
	PointsOrderCompleted = 10
	PointsFirstOrder     = 20
	PointsReferral       = 50
	PointsReviewWritten  = 5

	// pointsPerNaira scales the spend-based part of an order reward.
	pointsPerNaira = 0.1
)

// PointsForOrder returns the reward for a completed order: a flat completion
// bonus plus a share of the order total, rounded down.
func PointsForOrder(total kernel.Money) int64 {
	return PointsOrderCompleted + int64(math.Floor(total.Amount()*pointsPerNaira))
}

// Account tracks a user's loyalty points. The spendable balance and the
// lifetime total diverge once points are spent; the tier follows the
// lifetime total only.
type Account struct {
	userID      kernel.UUID
	points      int64
	totalEarned int64
	tier        Tier
	updatedAt   time.Time

	isConstructed bool
}

// NewAccount creates an empty bronze account.
func NewAccount(userID kernel.UUID, now time.Time) (*Account, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		userID:        userID,
		tier:          TierBronze,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreAccount reconstructs an Account from persistence. The tier is
// recomputed from the lifetime total rather than trusted from the row.
func RestoreAccount(userID kernel.UUID, points, totalEarned int64, updatedAt time.Time) (*Account, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		userID:        userID,
		points:        points,
		totalEarned:   totalEarned,
		tier:          TierFor(totalEarned),
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) UserID() kernel.UUID  { return a.userID }
func (a *Account) Points() int64        { return a.points }
func (a *Account) TotalEarned() int64   { return a.totalEarned }
func (a *Account) Tier() Tier           { return a.tier }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// Earn credits points and promotes the tier when a threshold is crossed.
func (a *Account) Earn(points int64, now time.Time) error {
	if points <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"points is invalid",
			fmt.Errorf("earned points must be positive, got %d", points),
		)
	}

	a.points += points
	a.totalEarned += points
	a.tier = TierFor(a.totalEarned)
	a.updatedAt = now
	return nil
}

// Spend debits points from the spendable balance. The lifetime total and the
// tier are unaffected.
func (a *Account) Spend(points int64, now time.Time) error {
	if points <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"points is invalid",
			fmt.Errorf("spent points must be positive, got %d", points),
		)
	}
	if points > a.points {
		return errs.NewValueIsOutOfRangeError("points", points, 0, a.points)
	}

	a.points -= points
	a.updatedAt = now
	return nil
}
