package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dasomcenter/dasom-api/internal/application"
	"github.com/dasomcenter/dasom-api/internal/domain/apply"
	"github.com/dasomcenter/dasom-api/internal/domain/formspec"
	"github.com/dasomcenter/dasom-api/pkg/response"
	"github.com/dasomcenter/dasom-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ApplicationHandler struct {
	svc *application.ApplyService
}

func NewApplicationHandler(svc *application.ApplyService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Submit godoc
// @Summary Submit an application to a program
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Param input body apply.SubmitApplicationDTO true "Application"
// @Success 201 {object} apply.Application
// @Failure 403 {object} response.ErrorResponse "Consent missing, program closed or full"
// @Failure 422 {object} response.ValidationResponse "Answer validation failed"
// @Router /programs/{id}/applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	programID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input apply.SubmitApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	a, err := h.svc.Submit(programID, input)
	if err != nil {
		switch {
		case errors.Is(err, apply.ErrConsentRequired), errors.Is(err, apply.ErrNotAccepting),
			errors.Is(err, apply.ErrProgramFull):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrProgramNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		default:
			abortFieldErrors(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, a)
}

// List godoc
// @Summary List applications of a program
// @Tags applications
// @Produce json
// @Param id path int true "Program ID"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.ListResponse
// @Router /admin/programs/{id}/applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	programID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	list, total, err := h.svc.ListByProgram(programID, page, limit)
	if err != nil {
		if errors.Is(err, application.ErrProgramNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Items: list, Total: total, Page: page, Limit: limit})
}

// applicationDetail pairs the stored row with its rendered answers.
type applicationDetail struct {
	Application apply.Application      `json:"application"`
	Items       []formspec.DisplayItem `json:"items"`
}

// Get godoc
// @Summary Application detail with rendered answers
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} applicationDetail
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	a, items, err := h.svc.Get(id)
	if err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, applicationDetail{Application: a, Items: items})
}

// Review godoc
// @Summary Mark an application reviewed
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param input body apply.ReviewApplicationDTO true "Review note"
// @Success 200 {object} apply.Application
// @Router /admin/applications/{id}/review [post]
func (h *ApplicationHandler) Review(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input apply.ReviewApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payload: " + err.Error()})
		return
	}

	a, err := h.svc.Review(id, input.Note)
	if err != nil {
		if errors.Is(err, application.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// Stream pushes newly submitted applications of a program over WebSocket.
func (h *ApplicationHandler) Stream(c *gin.Context) {
	programID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	// Heartbeat handling
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx := c.Request.Context()
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	// Reader to consume control frames and detect close
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
		}
	}()

	var lastID uint
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fresh, err := h.svc.ListSince(programID, lastID)
			if err != nil {
				continue
			}
			if len(fresh) == 0 {
				continue
			}
			lastID = fresh[len(fresh)-1].AppID

			payload, _ := json.Marshal(fresh)
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}
}
