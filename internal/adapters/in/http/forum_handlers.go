package http

import (
	"net/http"
	"strconv"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetForumPosts handles GET /api/forum/posts.
func (s *Server) GetForumPosts(ctx echo.Context) error {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	query := queries.NewGetForumPostsQuery(ctx.QueryParam("category"), page, pageSize)

	result, err := s.queries.GetForumPosts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]forumPostResponse, len(result.Posts))
	for i, item := range result.Posts {
		responses[i] = toForumPostResponse(item)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"posts": responses,
		"total": result.Total,
	})
}

// GetForumPost handles GET /api/forum/posts/:id. Authenticated readers get
// their like state back; every read counts as a view.
func (s *Server) GetForumPost(ctx echo.Context) error {
	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var requesterID *kernel.UUID
	if id, ok := currentUserID(ctx); ok {
		requesterID = &id
	}

	query, err := queries.NewGetForumPostQuery(postID, requesterID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetForumPost.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	if cmd, cmdErr := commands.NewRecordPostViewCommand(postID); cmdErr == nil {
		_ = s.commands.RecordPostView.Handle(ctx.Request().Context(), cmd)
	}

	comments := make([]forumCommentResponse, len(result.Comments))
	for i, item := range result.Comments {
		comments[i] = forumCommentResponse{
			ID:         item.ID.String(),
			AuthorID:   item.AuthorID.String(),
			AuthorName: item.AuthorName,
			Content:    item.Content,
			CreatedAt:  item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"post":     toForumPostResponse(result.Post),
		"comments": comments,
		"liked":    result.Liked,
	})
}

type forumPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// CreateForumPost handles POST /api/forum/posts.
func (s *Server) CreateForumPost(ctx echo.Context) error {
	authorID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	var req forumPostRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	postID := kernel.NewUUID()
	cmd, err := commands.NewCreateForumPostCommand(postID, authorID, req.Title, req.Content, req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateForumPost.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"id": postID.String()})
}

// EditForumPost handles PUT /api/forum/posts/:id. Absent fields keep their
// current values.
func (s *Server) EditForumPost(ctx echo.Context) error {
	actorID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req forumPostRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	cmd, err := commands.NewEditForumPostCommand(postID, actorID, req.Title, req.Content, req.Category)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.EditForumPost.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteForumPost handles DELETE /api/forum/posts/:id. Authors may delete
// their own posts, admins any post.
func (s *Server) DeleteForumPost(ctx echo.Context) error {
	actorID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteForumPostCommand(postID, actorID, currentRole(ctx) == user.RoleAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteForumPost.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type addForumCommentRequest struct {
	Content string `json:"content"`
}

// AddForumComment handles POST /api/forum/posts/:id/comments.
func (s *Server) AddForumComment(ctx echo.Context) error {
	authorID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req addForumCommentRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	commentID := kernel.NewUUID()
	cmd, err := commands.NewAddForumCommentCommand(commentID, postID, authorID, req.Content)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.AddForumComment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"id": commentID.String()})
}

// ToggleForumLike handles POST /api/forum/posts/:id/like.
func (s *Server) ToggleForumLike(ctx echo.Context) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewToggleForumLikeCommand(postID, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	liked, err := s.commands.ToggleForumLike.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"liked": liked})
}
