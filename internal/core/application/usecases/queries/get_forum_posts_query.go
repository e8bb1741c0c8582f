package queries

import (
	"errors"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var ErrGetForumPostsQueryIsNotConstructed = errors.New(
	"GetForumPostsQuery must be created via NewGetForumPostsQuery constructor",
)

// GetForumPostsQuery retrieves the community board, newest posts first,
// optionally narrowed to one category.
type GetForumPostsQuery struct {
	category string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetForumPostsQuery creates a board query. An empty category matches
// every post.
func NewGetForumPostsQuery(category string, page, pageSize int) GetForumPostsQuery {
	return GetForumPostsQuery{
		category: category,
		page:     normalizePage(page),
		pageSize: normalizePageSize(pageSize),
		guard:    guard.NewConstructorGuard(),
	}
}

// Category returns the category filter, empty for all.
func (q GetForumPostsQuery) Category() string { return q.category }

// Page returns the one-based page number.
func (q GetForumPostsQuery) Page() int { return q.page }

// PageSize returns the number of rows per page.
func (q GetForumPostsQuery) PageSize() int { return q.pageSize }

// Validate ensures the query was created through the constructor.
func (q GetForumPostsQuery) Validate() error {
	return q.guard.Validate(ErrGetForumPostsQueryIsNotConstructed)
}

// ForumPostQueryResponse is the board read model for one post.
type ForumPostQueryResponse struct {
	ID           kernel.UUID
	AuthorID     kernel.UUID
	AuthorName   string
	Title        string
	Content      string
	Category     string
	LikeCount    int64
	CommentCount int64
	Views        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetForumPostsQueryResponse is one board page together with the total row
// count.
type GetForumPostsQueryResponse struct {
	Posts []ForumPostQueryResponse
	Total int64
}
