package handlers

import (
	"errors"
	"net/http"

	"github.com/dasomcenter/dasom-api/internal/application"
	"github.com/dasomcenter/dasom-api/internal/domain/formspec"
	"github.com/dasomcenter/dasom-api/pkg/response"
	"github.com/dasomcenter/dasom-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	svc *application.UploadService
}

func NewUploadHandler(svc *application.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload godoc
// @Summary Upload an application file
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Program ID"
// @Param field_id formData string true "Upload field ID"
// @Param file formData file true "File"
// @Success 201 {object} formspec.FileReference
// @Failure 422 {object} response.ValidationResponse "File constraints violated"
// @Router /programs/{id}/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	programID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	fieldID := c.PostForm("field_id")
	if fieldID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "field_id is required"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required: " + err.Error()})
		return
	}
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer f.Close()

	ref, err := h.svc.Upload(
		c.Request.Context(),
		programID,
		fieldID,
		header.Filename,
		header.Header.Get("Content-Type"),
		f,
		header.Size,
	)
	if err != nil {
		switch {
		case errors.Is(err, formspec.ErrFieldNotFound), errors.Is(err, application.ErrFieldNotUploadable):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrUploadFailed):
			c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: err.Error()})
		default:
			abortFieldErrors(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, ref)
}

// DownloadURL godoc
// @Summary Re-sign a stored object key for download
// @Tags uploads
// @Produce json
// @Param key query string true "Object key"
// @Param name query string false "Download filename"
// @Success 200 {object} map[string]string
// @Router /admin/uploads/url [get]
func (h *UploadHandler) DownloadURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "key is required"})
		return
	}
	url, err := h.svc.DownloadURL(c.Request.Context(), key, c.Query("name"))
	if err != nil {
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
