package loyaltyrepo

import (
	"context"
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/loyalty"
	"agromarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLoyaltyRepository implements ports.LoyaltyRepository using GORM.
type GormLoyaltyRepository struct {
	db *gorm.DB
}

// NewGormLoyaltyRepository creates a new GORM loyalty repository.
func NewGormLoyaltyRepository(db *gorm.DB) *GormLoyaltyRepository {
	return &GormLoyaltyRepository{db: db}
}

// Get retrieves the points account of a user.
func (r *GormLoyaltyRepository) Get(ctx context.Context, userID kernel.UUID) (*loyalty.Account, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loyalty account", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Upsert persists the account, creating the row on first reward.
func (r *GormLoyaltyRepository) Upsert(ctx context.Context, aggregate *loyalty.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"points", "total_earned", "updated_at"}),
	}).Create(&dto).Error
}
