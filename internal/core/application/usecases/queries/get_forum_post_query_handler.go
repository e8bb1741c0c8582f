package queries

import (
	"context"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetForumPostQueryHandler reads one post with its comment thread from the
// database.
type GetForumPostQueryHandler struct {
	db *gorm.DB
}

// NewGetForumPostQueryHandler creates a handler for post detail queries.
func NewGetForumPostQueryHandler(db *gorm.DB) GetForumPostQueryHandler {
	return GetForumPostQueryHandler{db: db}
}

// Handle executes the post detail query. Comments come back oldest first.
func (h GetForumPostQueryHandler) Handle(
	ctx context.Context,
	query GetForumPostQuery,
) (GetForumPostQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetForumPostQueryResponse{}, err
	}

	postRows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.PostID().Bytes()).Rows()
	if err != nil {
		return GetForumPostQueryResponse{}, err
	}
	defer postRows.Close()

	if !postRows.Next() {
		if err = postRows.Err(); err != nil {
			return GetForumPostQueryResponse{}, err
		}
		return GetForumPostQueryResponse{}, errs.NewObjectNotFoundError("post", query.PostID().String())
	}

	post, err := scanForumPostRow(postRows.Scan)
	if err != nil {
		return GetForumPostQueryResponse{}, err
	}

	comments, err := h.comments(ctx, query.PostID())
	if err != nil {
		return GetForumPostQueryResponse{}, err
	}

	response := GetForumPostQueryResponse{Post: post, Comments: comments}
	if query.RequesterID() != nil {
		var liked int64
		err = h.db.WithContext(ctx).Raw(`
			SELECT COUNT(*) FROM forum_likes WHERE post_id = ? AND user_id = ?
		`, query.PostID().Bytes(), query.RequesterID().Bytes()).Scan(&liked).Error
		if err != nil {
			return GetForumPostQueryResponse{}, err
		}
		response.Liked = liked > 0
	}

	return response, nil
}

func (h GetForumPostQueryHandler) comments(
	ctx context.Context,
	postID kernel.UUID,
) ([]ForumCommentQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			author_id,
			author_name,
			content,
			created_at
		FROM forum_comments
		WHERE post_id = ?
		ORDER BY created_at
	`, postID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]ForumCommentQueryResponse, 0)
	for rows.Next() {
		var item ForumCommentQueryResponse
		var id, authorID uuid.UUID

		err = rows.Scan(&id, &authorID, &item.AuthorName, &item.Content, &item.CreatedAt)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.AuthorID, err = kernel.UUIDFromBytes(authorID[:]); err != nil {
			return nil, err
		}
		comments = append(comments, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
