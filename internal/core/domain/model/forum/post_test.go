package forum_test

import (
	"testing"
	"time"

	"agromarket/internal/core/domain/model/forum"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(t *testing.T, authorID kernel.UUID) *forum.Post {
	t.Helper()
	p, err := forum.NewPost(kernel.NewUUID(), authorID, "Amina Bello",
		"Best storage for yams?", "How do you store yams through the dry season?",
		"storage", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func TestNewPost(t *testing.T) {
	t.Run("valid_post", func(t *testing.T) {
		p := newTestPost(t, kernel.NewUUID())

		require.NoError(t, p.Validate())
		assert.Equal(t, "storage", p.Category())
		assert.EqualValues(t, 0, p.LikeCount())
		assert.EqualValues(t, 0, p.CommentCount())
		assert.EqualValues(t, 0, p.Views())
	})

	t.Run("empty_title_rejected", func(t *testing.T) {
		_, err := forum.NewPost(kernel.NewUUID(), kernel.NewUUID(), "Amina",
			"  ", "content", "general", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty_content_rejected", func(t *testing.T) {
		_, err := forum.NewPost(kernel.NewUUID(), kernel.NewUUID(), "Amina",
			"title", "", "general", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPost_Edit(t *testing.T) {
	authorID := kernel.NewUUID()

	t.Run("author_edits_selected_fields", func(t *testing.T) {
		p := newTestPost(t, authorID)
		now := time.Now()

		require.NoError(t, p.Edit(authorID, "", "Updated advice on yam barns", "", now))

		assert.Equal(t, "Best storage for yams?", p.Title())
		assert.Equal(t, "Updated advice on yam barns", p.Content())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("non_author_rejected", func(t *testing.T) {
		p := newTestPost(t, authorID)

		err := p.Edit(kernel.NewUUID(), "hijacked", "", "", time.Now())

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, "Best storage for yams?", p.Title())
	})
}

func TestNewComment(t *testing.T) {
	t.Run("valid_comment", func(t *testing.T) {
		c, err := forum.NewComment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Chidi", "Raised platforms with good airflow work well.", time.Now())

		require.NoError(t, err)
		require.NoError(t, c.Validate())
	})

	t.Run("empty_content_rejected", func(t *testing.T) {
		_, err := forum.NewComment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Chidi", "   ", time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_post_id_rejected", func(t *testing.T) {
		_, err := forum.NewComment(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			"Chidi", "hello", time.Now())

		require.Error(t, err)
	})
}

func TestRestorePost(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	p, err := forum.RestorePost(kernel.NewUUID(), kernel.NewUUID(), "Amina",
		"title", "content", "market-prices", 12, 4, 230, created, created)

	require.NoError(t, err)
	assert.EqualValues(t, 12, p.LikeCount())
	assert.EqualValues(t, 4, p.CommentCount())
	assert.EqualValues(t, 230, p.Views())
}
