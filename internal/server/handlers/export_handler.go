package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/service/export"
)

// ExportHandler triggers the spreadsheet backup. The service is nil when no
// sheet is configured.
type ExportHandler struct {
	svc    *export.Service
	logger *zap.Logger
}

// NewExportHandler constructs the HTTP handler adapter.
func NewExportHandler(svc *export.Service, logger *zap.Logger) *ExportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportHandler{svc: svc, logger: logger}
}

// Export rewrites the configured spreadsheet with the current collections.
func (h *ExportHandler) Export(c *gin.Context) {
	if h.svc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "sheet export is not configured"})
		return
	}

	if err := h.svc.ExportAll(c.Request.Context()); err != nil {
		h.logger.Error("herd export failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "unable to export herd data"})
		return
	}

	c.Status(http.StatusNoContent)
}
