package handlers

import (
	"errors"
	"net/http"

	"github.com/dasomcenter/dasom-api/internal/application"
	"github.com/dasomcenter/dasom-api/internal/domain/category"
	"github.com/dasomcenter/dasom-api/pkg/response"
	"github.com/dasomcenter/dasom-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	svc *application.CategoryService
}

func NewCategoryHandler(svc *application.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Tree godoc
// @Summary Site navigation tree
// @Tags categories
// @Produce json
// @Success 200 {array} category.Node
// @Router /categories [get]
func (h *CategoryHandler) Tree(c *gin.Context) {
	nodes, err := h.svc.Tree()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, nodes)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param input body category.CreateCategoryDTO true "Category"
// @Success 201 {object} category.Category
// @Router /admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var input category.CreateCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	created, err := h.svc.Create(input)
	if err != nil {
		c.JSON(statusForCategoryError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param input body category.UpdateCategoryDTO true "Fields to update"
// @Success 200 {object} category.Category
// @Router /admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input category.UpdateCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	updated, err := h.svc.Update(id, input)
	if err != nil {
		c.JSON(statusForCategoryError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an empty category
// @Tags categories
// @Param id path int true "Category ID"
// @Success 200 {object} response.MessageResponse
// @Failure 409 {object} response.ErrorResponse "Category still has children or posts"
// @Router /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.svc.Delete(id); err != nil {
		c.JSON(statusForCategoryError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "category deleted"})
}

func statusForCategoryError(err error) int {
	switch {
	case errors.Is(err, application.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrSlugTaken), errors.Is(err, application.ErrCategoryInUse):
		return http.StatusConflict
	case errors.Is(err, application.ErrCategoryTooDeep):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
