// Package loyaltyrepo persists points accounts.
package loyaltyrepo

import (
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/loyalty"

	"github.com/google/uuid"
)

// AccountDTO maps a points account onto the loyalty_accounts table. The tier
// is not stored; it is recomputed from total_earned on restore.
type AccountDTO struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Points      int64     `gorm:""`
	TotalEarned int64     `gorm:""`
	UpdatedAt   time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "loyalty_accounts".
func (AccountDTO) TableName() string {
	return "loyalty_accounts"
}

func fromDomain(aggregate *loyalty.Account) AccountDTO {
	return AccountDTO{
		UserID:      aggregate.UserID().Bytes(),
		Points:      aggregate.Points(),
		TotalEarned: aggregate.TotalEarned(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto AccountDTO) (*loyalty.Account, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return loyalty.RestoreAccount(userID, dto.Points, dto.TotalEarned, dto.UpdatedAt)
}
