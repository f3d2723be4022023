package handlers

import (
	"errors"
	"net/http"

	"github.com/dasomcenter/dasom-api/internal/application"
	"github.com/dasomcenter/dasom-api/internal/domain/program"
	"github.com/dasomcenter/dasom-api/pkg/response"
	"github.com/dasomcenter/dasom-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ProgramHandler struct {
	svc *application.ProgramService
}

func NewProgramHandler(svc *application.ProgramService) *ProgramHandler {
	return &ProgramHandler{svc: svc}
}

// List godoc
// @Summary List visible programs
// @Tags programs
// @Produce json
// @Success 200 {array} program.Program
// @Router /programs [get]
func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.svc.List(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, programs)
}

// ListAll lists programs including drafts for staff.
func (h *ProgramHandler) ListAll(c *gin.Context) {
	programs, err := h.svc.List(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, programs)
}

// Get godoc
// @Summary Program detail
// @Tags programs
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} program.Program
// @Failure 404 {object} response.ErrorResponse
// @Router /programs/{id} [get]
func (h *ProgramHandler) Get(c *gin.Context) {
	h.get(c, false)
}

// GetAny returns any program including drafts for staff.
func (h *ProgramHandler) GetAny(c *gin.Context) {
	h.get(c, true)
}

func (h *ProgramHandler) get(c *gin.Context, includeDraft bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	p, err := h.svc.Get(id, includeDraft)
	if err != nil {
		c.JSON(statusForProgramError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create godoc
// @Summary Create a program
// @Tags programs
// @Accept json
// @Produce json
// @Param input body program.CreateProgramDTO true "Program"
// @Success 201 {object} program.Program
// @Router /admin/programs [post]
func (h *ProgramHandler) Create(c *gin.Context) {
	var input program.CreateProgramDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	created, err := h.svc.Create(input)
	if err != nil {
		c.JSON(statusForProgramError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a program
// @Tags programs
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Param input body program.UpdateProgramDTO true "Fields to update"
// @Success 200 {object} program.Program
// @Router /admin/programs/{id} [put]
func (h *ProgramHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input program.UpdateProgramDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	updated, err := h.svc.Update(id, input)
	if err != nil {
		c.JSON(statusForProgramError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a program with its form
// @Tags programs
// @Param id path int true "Program ID"
// @Success 200 {object} response.MessageResponse
// @Router /admin/programs/{id} [delete]
func (h *ProgramHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.svc.Delete(id); err != nil {
		c.JSON(statusForProgramError(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "program deleted"})
}

func statusForProgramError(err error) int {
	switch {
	case errors.Is(err, application.ErrProgramNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrInvalidWindow):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
