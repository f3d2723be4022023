package handlers

import (
	"errors"
	"net/http"

	"github.com/dasomcenter/dasom-api/internal/application"
	"github.com/dasomcenter/dasom-api/internal/domain/form"
	"github.com/dasomcenter/dasom-api/internal/domain/formspec"
	"github.com/dasomcenter/dasom-api/pkg/response"
	"github.com/dasomcenter/dasom-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	svc *application.FormService
}

func NewFormHandler(svc *application.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// Get godoc
// @Summary Application form of a program
// @Tags forms
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} formspec.FormSpec
// @Failure 404 {object} response.ErrorResponse "Program or form not found"
// @Router /programs/{id}/form [get]
func (h *FormHandler) Get(c *gin.Context) {
	programID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}

	spec, err := h.svc.GetByProgram(programID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProgramNotFound), errors.Is(err, application.ErrFormNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, spec)
}

// Save godoc
// @Summary Replace the application form of a program
// @Tags forms
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Param input body form.SaveFormDTO true "Form definition"
// @Success 200 {object} formspec.FormSpec
// @Failure 422 {object} response.ValidationResponse "Invalid field definitions"
// @Router /admin/programs/{id}/form [put]
func (h *FormHandler) Save(c *gin.Context) {
	programID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input form.SaveFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	spec, err := h.svc.Save(programID, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProgramNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, formspec.ErrFieldNotFound):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			abortFieldErrors(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, spec)
}

// abortFieldErrors maps engine validation failures to 422 with the full
// field error list; anything else is a 500.
func abortFieldErrors(c *gin.Context, err error) {
	var verr *formspec.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, response.ValidationResponse{
			Error:  "validation failed",
			Fields: verr.Fields,
		})
		return
	}
	if errors.Is(err, formspec.ErrFormTitleRequired) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
}
