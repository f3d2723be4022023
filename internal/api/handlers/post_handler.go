package handlers

import (
	"errors"
	"net/http"

	"github.com/dasomcenter/dasom-api/internal/api/middleware"
	"github.com/dasomcenter/dasom-api/internal/application"
	"github.com/dasomcenter/dasom-api/internal/domain/post"
	"github.com/dasomcenter/dasom-api/pkg/response"
	"github.com/dasomcenter/dasom-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *application.PostService
}

func NewPostHandler(svc *application.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// List godoc
// @Summary List published posts
// @Tags posts
// @Produce json
// @Param category_id query int false "Category filter"
// @Param kind query string false "post or notice"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.ListResponse
// @Router /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	var q post.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid query: " + err.Error()})
		return
	}
	h.list(c, q)
}

// ListAll lists posts including unpublished ones for staff.
func (h *PostHandler) ListAll(c *gin.Context) {
	var q post.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid query: " + err.Error()})
		return
	}
	q.IncludeUnpublished = true
	h.list(c, q)
}

func (h *PostHandler) list(c *gin.Context, q post.ListQuery) {
	posts, total, err := h.svc.List(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	page := q.Page
	if page == 0 {
		page = 1
	}
	limit := q.Limit
	if limit == 0 {
		limit = 10
	}
	c.JSON(http.StatusOK, response.ListResponse{Items: posts, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Read a published post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} post.Post
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	p, err := h.svc.Get(id)
	if err != nil {
		c.JSON(statusForPostError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetAny returns a post regardless of publication state for staff editing.
func (h *PostHandler) GetAny(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	p, err := h.svc.GetAny(id)
	if err != nil {
		c.JSON(statusForPostError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create godoc
// @Summary Create a post or notice
// @Tags posts
// @Accept json
// @Produce json
// @Param input body post.CreatePostDTO true "Post"
// @Success 201 {object} post.Post
// @Router /admin/posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	var input post.CreatePostDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	created, err := h.svc.Create(claims.UserID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param input body post.UpdatePostDTO true "Fields to update"
// @Success 200 {object} post.Post
// @Router /admin/posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input post.UpdatePostDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	updated, err := h.svc.Update(id, input)
	if err != nil {
		c.JSON(statusForPostError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a post
// @Tags posts
// @Param id path int true "Post ID"
// @Success 200 {object} response.MessageResponse
// @Router /admin/posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.svc.Delete(id); err != nil {
		c.JSON(statusForPostError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "post deleted"})
}

func statusForPostError(err error) int {
	if errors.Is(err, application.ErrPostNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
