package transfer

import (
	"fmt"
	"io"
	"net/http"

	"sicservitium/internal/shared/apperror"
	"sicservitium/internal/shared/response"
	"sicservitium/internal/spreadsheet"
	transfererrors "sicservitium/internal/transfer/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("transfer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transfer.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("transfer request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Import(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.writeServiceError(c, transfererrors.ErrMissingFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeServiceError(c, transfererrors.ErrUnreadableFile)
		return
	}

	result, err := h.service.ImportEmployees(c.Request.Context(), header.Filename, data)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Export(c *gin.Context) {
	file, err := h.service.ExportEmployees(c.Request.Context(), c.Query("format"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	writeFile(c, file)
}

func (h *Handler) Template(c *gin.Context) {
	file, err := h.service.Template(c.Query("format"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	writeFile(c, file)
}

func writeFile(c *gin.Context, file spreadsheet.File) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
