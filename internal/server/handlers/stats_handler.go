package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/service/herd"
)

// StatsHandler serves the derived aggregate views: headline stats, the
// notification scan and the dashboard feed.
type StatsHandler struct {
	svc    *herd.Service
	logger *zap.Logger
}

// NewStatsHandler constructs the HTTP handler adapter.
func NewStatsHandler(svc *herd.Service, logger *zap.Logger) *StatsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsHandler{svc: svc, logger: logger}
}

// Stats returns the dashboard headline numbers.
func (h *StatsHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats())
}

// Notifications rescans the collections and returns the attention list.
func (h *StatsHandler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Notifications())
}

// Dashboard returns the landing-screen aggregate.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Dashboard())
}
