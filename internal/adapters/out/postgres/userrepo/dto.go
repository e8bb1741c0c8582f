// Package userrepo persists account aggregates.
package userrepo

import (
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO maps the account aggregate onto the users table.
type UserDTO struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Email        string      `gorm:"uniqueIndex"`
	Name         string      `gorm:""`
	Phone        string      `gorm:""`
	PasswordHash string      `gorm:""`
	Role         int         `gorm:"index"`
	Location     LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Bio          string      `gorm:""`
	Verified     bool        `gorm:""`
	VerifiedAt   *time.Time  `gorm:""`
	Active       bool        `gorm:""`
	CreatedAt    time.Time   `gorm:""`
	UpdatedAt    time.Time   `gorm:""`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// LocationDTO is the embedded Nigerian address within the users table.
type LocationDTO struct {
	State   string
	LGA     string
	Address string
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		Location: LocationDTO{
			State:   aggregate.Location().State,
			LGA:     aggregate.Location().LGA,
			Address: aggregate.Location().Address,
		},
		Bio:        aggregate.Bio(),
		Verified:   aggregate.Verified(),
		VerifiedAt: aggregate.VerifiedAt(),
		Active:     aggregate.Active(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Email,
		dto.Name,
		dto.Phone,
		dto.PasswordHash,
		user.Role(dto.Role),
		kernel.Location{State: dto.Location.State, LGA: dto.Location.LGA, Address: dto.Location.Address},
		dto.Bio,
		dto.Verified,
		dto.VerifiedAt,
		dto.Active,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
