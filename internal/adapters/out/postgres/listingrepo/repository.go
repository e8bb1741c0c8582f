package listingrepo

import (
	"context"
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/listing"
	"agromarket/internal/core/ports"
	"agromarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormListingRepository implements ports.ListingRepository using GORM.
type GormListingRepository struct {
	db *gorm.DB
}

// NewGormListingRepository creates a new GORM listing repository.
func NewGormListingRepository(db *gorm.DB) *GormListingRepository {
	return &GormListingRepository{db: db}
}

// Add saves a new listing to the database.
func (r *GormListingRepository) Add(ctx context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing listing to the database. The quantity and views
// columns are excluded: stock moves only through Reserve and Release, and
// views only through IncrementViews, so a stale aggregate cannot clobber
// concurrent counter updates.
func (r *GormListingRepository) Update(ctx context.Context, aggregate *listing.Listing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ListingDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "quantity", "views", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("listing", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a listing by ID.
func (r *GormListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ListingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("listing", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a listing permanently.
func (r *GormListingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ListingDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("listing", id.String())
	}

	return nil
}

// Reserve subtracts quantity from the remaining stock in one conditional
// update. The WHERE clause carries the stock check, so of two concurrent
// reservations against the same last units exactly one sees a row to update.
func (r *GormListingRepository) Reserve(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ListingDTO{}).
		Where("id = ? AND quantity >= ?", id.Bytes(), quantity.Value()).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity.Value()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ListingDTO{}).
			Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("listing", id.String())
		}
		return ports.ErrInsufficientStock
	}

	return nil
}

// Release returns a previously reserved quantity to the remaining stock.
func (r *GormListingRepository) Release(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ListingDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity.Value()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("listing", id.String())
	}

	return nil
}

// IncrementViews bumps the view counter without touching the rest of the row.
func (r *GormListingRepository) IncrementViews(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&ListingDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
