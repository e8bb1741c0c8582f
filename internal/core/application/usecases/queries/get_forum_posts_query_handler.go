package queries

import (
	"context"

	"agromarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetForumPostsQueryHandler reads the community board from the database.
type GetForumPostsQueryHandler struct {
	db *gorm.DB
}

// NewGetForumPostsQueryHandler creates a handler for board queries.
func NewGetForumPostsQueryHandler(db *gorm.DB) GetForumPostsQueryHandler {
	return GetForumPostsQueryHandler{db: db}
}

// Handle executes the board query, newest posts first.
func (h GetForumPostsQueryHandler) Handle(
	ctx context.Context,
	query GetForumPostsQuery,
) (GetForumPostsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetForumPostsQueryResponse{}, err
	}

	where := "1 = 1"
	args := []any{}
	if query.Category() != "" {
		where = "category = ?"
		args = append(args, query.Category())
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM forum_posts WHERE "+where, args...,
	).Scan(&total).Error
	if err != nil {
		return GetForumPostsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			author_id,
			author_name,
			title,
			content,
			category,
			like_count,
			comment_count,
			views,
			created_at,
			updated_at
		FROM forum_posts
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Rows()
	if err != nil {
		return GetForumPostsQueryResponse{}, err
	}
	defer rows.Close()

	posts := make([]ForumPostQueryResponse, 0, query.PageSize())
	for rows.Next() {
		item, scanErr := scanForumPostRow(rows.Scan)
		if scanErr != nil {
			return GetForumPostsQueryResponse{}, scanErr
		}
		posts = append(posts, item)
	}

	if err = rows.Err(); err != nil {
		return GetForumPostsQueryResponse{}, err
	}

	return GetForumPostsQueryResponse{Posts: posts, Total: total}, nil
}

func scanForumPostRow(scan func(...any) error) (ForumPostQueryResponse, error) {
	var item ForumPostQueryResponse
	var id, authorID uuid.UUID

	err := scan(
		&id,
		&authorID,
		&item.AuthorName,
		&item.Title,
		&item.Content,
		&item.Category,
		&item.LikeCount,
		&item.CommentCount,
		&item.Views,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return ForumPostQueryResponse{}, err
	}

	if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ForumPostQueryResponse{}, err
	}
	if item.AuthorID, err = kernel.UUIDFromBytes(authorID[:]); err != nil {
		return ForumPostQueryResponse{}, err
	}

	return item, nil
}
