package queries

import (
	"context"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUsersQueryHandler reads accounts for the admin console.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for account listing queries.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the account listing query, newest accounts first.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) (GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUsersQueryResponse{}, err
	}

	where := "1 = 1"
	args := []any{}
	if query.Role() != nil {
		where = "role = ?"
		args = append(args, int(*query.Role()))
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM users WHERE "+where, args...,
	).Scan(&total).Error
	if err != nil {
		return GetUsersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			name,
			phone,
			role,
			location_state,
			location_lga,
			location_address,
			bio,
			verified,
			active,
			created_at
		FROM users
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Rows()
	if err != nil {
		return GetUsersQueryResponse{}, err
	}
	defer rows.Close()

	users := make([]UserQueryResponse, 0, query.PageSize())
	for rows.Next() {
		var item UserQueryResponse
		var id uuid.UUID
		var role int

		err = rows.Scan(
			&id,
			&item.Email,
			&item.Name,
			&item.Phone,
			&role,
			&item.Location.State,
			&item.Location.LGA,
			&item.Location.Address,
			&item.Bio,
			&item.Verified,
			&item.Active,
			&item.CreatedAt,
		)
		if err != nil {
			return GetUsersQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetUsersQueryResponse{}, err
		}
		item.Role = user.Role(role)
		users = append(users, item)
	}

	if err = rows.Err(); err != nil {
		return GetUsersQueryResponse{}, err
	}

	return GetUsersQueryResponse{Users: users, Total: total}, nil
}
