package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialnet/social-api/internal/api/metrics"
	"github.com/socialnet/social-api/internal/core/domain"
	"github.com/socialnet/social-api/internal/core/ports"
)

// PostHandler handles post CRUD and reactions.
type PostHandler struct {
	posts     ports.PostService
	reactions ports.ReactionService
}

func NewPostHandler(posts ports.PostService, reactions ports.ReactionService) *PostHandler {
	return &PostHandler{posts: posts, reactions: reactions}
}

// List returns the caller's own posts, newest first, each annotated with the
// caller's own reaction.
//
// @Summary      List own posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   postResponse
// @Failure      401  {object}  errorResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	views, err := h.posts.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	resp := make([]postResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toPostResponse(v.Post, v.UserReaction))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create creates a post owned by the caller from a multipart form. An
// optional Idempotency-Key header makes the creation replayable: a retried
// request returns the originally created post with 200 instead of 201.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string  false  "Key to prevent duplicate submissions"
// @Param        description      formData  string  true   "Post text"
// @Param        image            formData  file    false  "Attached image"
// @Success      201  {object}  postResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	description := c.FormValue("description")
	if description == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "description is required")
	}

	var image string
	if fh, err := c.FormFile("image"); err == nil {
		image, err = encodeImageFile(fh)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image upload")
	}

	result, err := h.posts.Create(c.Request().Context(), ports.CreatePostInput{
		UserID:         user.ID,
		Description:    description,
		Image:          image,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	} else {
		metrics.PostsCreatedTotal.Inc()
	}

	return c.JSON(status, toPostResponse(result.Post, nil))
}

// Delete removes a post owned by the caller. A post owned by someone else is
// reported as not found.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path  string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{postId} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.posts.Delete(c.Request().Context(), user.ID, c.Param("postId")); err != nil {
		return err
	}

	metrics.PostsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}

// React applies a like/dislike transition for the caller on a post and
// returns the updated counters plus the caller's current reaction.
//
// @Summary      React to a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path  string           true  "Post id"
// @Param        body    body  reactionRequest  true  "Reaction kind"
// @Success      200  {object}  reactionResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /posts/{postId}/react [post]
func (h *PostHandler) React(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req reactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	out, err := h.reactions.Apply(c.Request().Context(), user.ID, c.Param("postId"), domain.ReactionKind(req.ReactionType))
	if err != nil {
		return err
	}

	metrics.ReactionsAppliedTotal.WithLabelValues(string(out.Change), req.ReactionType).Inc()

	return c.JSON(http.StatusOK, reactionResponse{
		LikesCount:    out.LikesCount,
		DislikesCount: out.DislikesCount,
		UserReaction:  kindString(out.UserReaction),
	})
}

func toPostResponse(p *domain.Post, reaction *domain.ReactionKind) postResponse {
	return postResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		UserName:      p.UserName,
		Description:   p.Description,
		Image:         p.Image,
		LikesCount:    p.LikesCount,
		DislikesCount: p.DislikesCount,
		UserReaction:  kindString(reaction),
		CreatedAt:     p.CreatedAt,
	}
}

func kindString(k *domain.ReactionKind) *string {
	if k == nil {
		return nil
	}
	s := string(*k)
	return &s
}
