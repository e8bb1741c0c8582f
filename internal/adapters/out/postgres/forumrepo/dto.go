// Package forumrepo persists forum posts, comments, and per-user like rows.
package forumrepo

import (
	"time"

	"agromarket/internal/core/domain/model/forum"
	"agromarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PostDTO maps a forum post onto the forum_posts table.
type PostDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID     uuid.UUID `gorm:"type:uuid;index"`
	AuthorName   string    `gorm:""`
	Title        string    `gorm:""`
	Content      string    `gorm:""`
	Category     string    `gorm:"index"`
	LikeCount    int64     `gorm:""`
	CommentCount int64     `gorm:""`
	Views        int64     `gorm:""`
	CreatedAt    time.Time `gorm:""`
	UpdatedAt    time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "forum_posts".
func (PostDTO) TableName() string {
	return "forum_posts"
}

// CommentDTO maps a reply onto the forum_comments table.
type CommentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID     uuid.UUID `gorm:"type:uuid;index"`
	AuthorID   uuid.UUID `gorm:"type:uuid"`
	AuthorName string    `gorm:""`
	Content    string    `gorm:""`
	CreatedAt  time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "forum_comments".
func (CommentDTO) TableName() string {
	return "forum_comments"
}

// LikeDTO is one user's like on one post. The composite primary key makes a
// duplicate like a conflict instead of a second row.
type LikeDTO struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "forum_likes".
func (LikeDTO) TableName() string {
	return "forum_likes"
}

func fromDomain(aggregate *forum.Post) PostDTO {
	return PostDTO{
		ID:           aggregate.ID().Bytes(),
		AuthorID:     aggregate.AuthorID().Bytes(),
		AuthorName:   aggregate.AuthorName(),
		Title:        aggregate.Title(),
		Content:      aggregate.Content(),
		Category:     aggregate.Category(),
		LikeCount:    aggregate.LikeCount(),
		CommentCount: aggregate.CommentCount(),
		Views:        aggregate.Views(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto PostDTO) (*forum.Post, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	return forum.RestorePost(
		id, authorID,
		dto.AuthorName, dto.Title, dto.Content, dto.Category,
		dto.LikeCount, dto.CommentCount, dto.Views,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func commentFromDomain(aggregate *forum.Comment) CommentDTO {
	return CommentDTO{
		ID:         aggregate.ID().Bytes(),
		PostID:     aggregate.PostID().Bytes(),
		AuthorID:   aggregate.AuthorID().Bytes(),
		AuthorName: aggregate.AuthorName(),
		Content:    aggregate.Content(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}
