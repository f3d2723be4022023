package handlers

import (
	"errors"
	"net/http"

	"github.com/dasomcenter/dasom-api/internal/application"
	"github.com/dasomcenter/dasom-api/internal/api/middleware"
	"github.com/dasomcenter/dasom-api/internal/domain/user"
	"github.com/dasomcenter/dasom-api/pkg/response"
	"github.com/dasomcenter/dasom-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *application.UserService
}

func NewAuthHandler(svc *application.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Staff login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	usr, token, err := h.svc.Login(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UID:      usr.UID,
		Username: usr.Username,
		IsAdmin:  usr.IsAdmin(),
	})
}

// Me godoc
// @Summary Current session info
// @Tags auth
// @Produce json
// @Success 200 {object} user.User
// @Failure 401 {object} response.ErrorResponse
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	usr, err := h.svc.Get(claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// Register godoc
// @Summary Create a staff account
// @Tags users
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "Account info"
// @Success 201 {object} user.User
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Router /admin/users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	usr, err := h.svc.Register(input)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// ListUsers godoc
// @Summary List staff accounts
// @Tags users
// @Produce json
// @Success 200 {array} user.User
// @Router /admin/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser godoc
// @Summary Update a staff account
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateUserInput true "Fields to update"
// @Success 200 {object} user.User
// @Router /admin/users/{id} [put]
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input user.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	usr, err := h.svc.Update(id, input)
	if err != nil {
		status := statusForUserError(err)
		c.JSON(status, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUser godoc
// @Summary Delete a staff account
// @Tags users
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageResponse
// @Router /admin/users/{id} [delete]
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	if err := h.svc.Delete(id); err != nil {
		status := statusForUserError(err)
		c.JSON(status, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "user deleted"})
}

func statusForUserError(err error) int {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrLastAdmin):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
