package queries

import (
	"errors"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrGetForumPostQueryIsNotConstructed = errors.New(
	"GetForumPostQuery must be created via NewGetForumPostQuery constructor",
)

// GetForumPostQuery retrieves one post together with its comment thread. When
// a requester is given, the response also says whether they liked the post.
type GetForumPostQuery struct {
	postID      kernel.UUID
	requesterID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetForumPostQuery creates a post detail query. A nil requester reads the
// post anonymously.
func NewGetForumPostQuery(postID kernel.UUID, requesterID *kernel.UUID) (GetForumPostQuery, error) {
	if err := postID.Validate(); err != nil {
		return GetForumPostQuery{}, err
	}
	if requesterID != nil {
		if err := requesterID.Validate(); err != nil {
			return GetForumPostQuery{}, err
		}
	}

	return GetForumPostQuery{
		postID:      postID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// PostID returns the identifier of the requested post.
func (q GetForumPostQuery) PostID() kernel.UUID { return q.postID }

// RequesterID returns the reading account, nil for anonymous reads.
func (q GetForumPostQuery) RequesterID() *kernel.UUID { return q.requesterID }

// Validate ensures the query was created through the constructor.
func (q GetForumPostQuery) Validate() error {
	return q.guard.Validate(ErrGetForumPostQueryIsNotConstructed)
}

// ForumCommentQueryResponse is the read model for one reply.
type ForumCommentQueryResponse struct {
	ID         kernel.UUID
	AuthorID   kernel.UUID
	AuthorName string
	Content    string
	CreatedAt  time.Time
}

// GetForumPostQueryResponse is the post detail read model.
type GetForumPostQueryResponse struct {
	Post     ForumPostQueryResponse
	Comments []ForumCommentQueryResponse
	Liked    bool
}
