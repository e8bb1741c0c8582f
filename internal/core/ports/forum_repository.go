package ports

import (
	"context"

	"agromarket/internal/core/domain/model/forum"
	"agromarket/internal/core/domain/model/kernel"
)

// ForumRepository defines the persistence contract for forum posts, their
// comments, and the per-user like rows behind the post counters.
type ForumRepository interface {
	// AddPost persists a new post.
	AddPost(ctx context.Context, aggregate *forum.Post) error

	// UpdatePost persists changes to an existing post.
	UpdatePost(ctx context.Context, aggregate *forum.Post) error

	// GetPost retrieves a post by its unique identifier.
	GetPost(ctx context.Context, id kernel.UUID) (*forum.Post, error)

	// DeletePost removes a post and its comments and likes.
	DeletePost(ctx context.Context, id kernel.UUID) error

	// AddComment persists a reply and bumps the post's comment counter.
	AddComment(ctx context.Context, aggregate *forum.Comment) error

	// ToggleLike adds the user's like when absent and removes it when
	// present, keeping the post's like counter in step. Returns whether the
	// post is liked by the user after the call.
	ToggleLike(ctx context.Context, postID, userID kernel.UUID) (bool, error)

	// IncrementViews bumps the post's view counter by one.
	IncrementViews(ctx context.Context, id kernel.UUID) error
}
