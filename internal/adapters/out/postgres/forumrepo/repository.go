package forumrepo

import (
	"context"
	"errors"
	"time"

	"agromarket/internal/core/domain/model/forum"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormForumRepository implements ports.ForumRepository using GORM.
type GormForumRepository struct {
	db *gorm.DB
}

// NewGormForumRepository creates a new GORM forum repository.
func NewGormForumRepository(db *gorm.DB) *GormForumRepository {
	return &GormForumRepository{db: db}
}

// AddPost saves a new post to the database.
func (r *GormForumRepository) AddPost(ctx context.Context, aggregate *forum.Post) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdatePost saves an existing post to the database. Counter columns are
// excluded; they move only through AddComment, ToggleLike, and
// IncrementViews.
func (r *GormForumRepository) UpdatePost(ctx context.Context, aggregate *forum.Post) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PostDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "like_count", "comment_count", "views", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("post", aggregate.ID().String())
	}

	return nil
}

// GetPost retrieves a post by ID.
func (r *GormForumRepository) GetPost(ctx context.Context, id kernel.UUID) (*forum.Post, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PostDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("post", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeletePost removes a post together with its comments and likes.
func (r *GormForumRepository) DeletePost(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&CommentDTO{}, "post_id = ?", id.Bytes()).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&LikeDTO{}, "post_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&PostDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("post", id.String())
	}

	return nil
}

// AddComment saves a reply and bumps the post's comment counter.
func (r *GormForumRepository) AddComment(ctx context.Context, aggregate *forum.Comment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := commentFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&PostDTO{}).
		Where("id = ?", dto.PostID).
		UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).Error
}

// ToggleLike flips the user's like on a post and keeps the counter in step.
// Returns whether the post is liked by the user after the call.
func (r *GormForumRepository) ToggleLike(ctx context.Context, postID, userID kernel.UUID) (bool, error) {
	if err := errors.Join(postID.Validate(), userID.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Delete(&LikeDTO{}, "post_id = ? AND user_id = ?", postID.Bytes(), userID.Bytes())
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected > 0 {
		return false, r.db.WithContext(ctx).Model(&PostDTO{}).
			Where("id = ?", postID.Bytes()).
			UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error
	}

	like := LikeDTO{PostID: postID.Bytes(), UserID: userID.Bytes(), CreatedAt: time.Now().UTC()}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		return false, err
	}

	return true, r.db.WithContext(ctx).Model(&PostDTO{}).
		Where("id = ?", postID.Bytes()).
		UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error
}

// IncrementViews bumps the post's view counter.
func (r *GormForumRepository) IncrementViews(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&PostDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
