package forum

import (
	"errors"
	"strings"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"
)

var (
	ErrPostIsNotConstructed    = errors.New("Post must be created via NewPost or RestorePost")
	ErrCommentIsNotConstructed = errors.New("Comment must be created via NewComment or RestoreComment")
)

// Post is a community forum thread. Author name is snapshotted so posts stay
// attributable after profile changes. Like and comment counters are
// maintained by the repository alongside their join rows.
type Post struct {
	id           kernel.UUID
	authorID     kernel.UUID
	authorName   string
	title        string
	content      string
	category     string
	likeCount    int64
	commentCount int64
	views        int64
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewPost creates a forum post with zeroed counters.
func NewPost(id, authorID kernel.UUID, authorName, title, content, category string, now time.Time) (*Post, error) {
	p := &Post{
		authorName:    authorName,
		category:      category,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setAuthorID(authorID),
		p.setTitle(title),
		p.setContent(content),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePost reconstructs a Post from persistence.
func RestorePost(
	id, authorID kernel.UUID,
	authorName, title, content, category string,
	likeCount, commentCount, views int64,
	createdAt, updatedAt time.Time,
) (*Post, error) {
	p := &Post{
		authorName:    authorName,
		category:      category,
		likeCount:     likeCount,
		commentCount:  commentCount,
		views:         views,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setAuthorID(authorID),
		p.setTitle(title),
		p.setContent(content),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Post) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPostIsNotConstructed
	}
	return nil
}

func (p *Post) ID() kernel.UUID       { return p.id }
func (p *Post) AuthorID() kernel.UUID { return p.authorID }
func (p *Post) AuthorName() string    { return p.authorName }
func (p *Post) Title() string         { return p.title }
func (p *Post) Content() string       { return p.content }
func (p *Post) Category() string      { return p.category }
func (p *Post) LikeCount() int64      { return p.likeCount }
func (p *Post) CommentCount() int64   { return p.commentCount }
func (p *Post) Views() int64          { return p.views }
func (p *Post) CreatedAt() time.Time  { return p.createdAt }
func (p *Post) UpdatedAt() time.Time  { return p.updatedAt }

// IsAuthor reports whether the account wrote the post.
func (p *Post) IsAuthor(accountID kernel.UUID) bool {
	return accountID.IsEqual(p.authorID)
}

// Edit replaces title, content, or category. Empty values keep the current
// ones. Only the author may edit.
func (p *Post) Edit(actorID kernel.UUID, title, content, category string, now time.Time) error {
	if !p.IsAuthor(actorID) {
		return errs.NewNotAuthorizedError("only the author can edit a post")
	}

	if title != "" {
		p.title = title
	}
	if content != "" {
		p.content = content
	}
	if category != "" {
		p.category = category
	}
	p.updatedAt = now
	return nil
}

func (p *Post) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Post) setAuthorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.authorID = id
	return nil
}

func (p *Post) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Post) setContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errs.NewValueIsRequiredError("content")
	}
	p.content = content
	return nil
}

// Comment is a reply on a forum post.
type Comment struct {
	id         kernel.UUID
	postID     kernel.UUID
	authorID   kernel.UUID
	authorName string
	content    string
	createdAt  time.Time

	isConstructed bool
}

// NewComment creates a reply on a post.
func NewComment(id, postID, authorID kernel.UUID, authorName, content string, now time.Time) (*Comment, error) {
	if err := errors.Join(id.Validate(), postID.Validate(), authorID.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, errs.NewValueIsRequiredError("content")
	}

	return &Comment{
		id:            id,
		postID:        postID,
		authorID:      authorID,
		authorName:    authorName,
		content:       content,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreComment reconstructs a Comment from persistence.
func RestoreComment(id, postID, authorID kernel.UUID, authorName, content string, createdAt time.Time) (*Comment, error) {
	if err := errors.Join(id.Validate(), postID.Validate(), authorID.Validate()); err != nil {
		return nil, err
	}

	return &Comment{
		id:            id,
		postID:        postID,
		authorID:      authorID,
		authorName:    authorName,
		content:       content,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (c *Comment) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCommentIsNotConstructed
	}
	return nil
}

func (c *Comment) ID() kernel.UUID       { return c.id }
func (c *Comment) PostID() kernel.UUID   { return c.postID }
func (c *Comment) AuthorID() kernel.UUID { return c.authorID }
func (c *Comment) AuthorName() string    { return c.authorName }
func (c *Comment) Content() string       { return c.content }
func (c *Comment) CreatedAt() time.Time  { return c.createdAt }
