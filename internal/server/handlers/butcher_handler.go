package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
	"github.com/mamadbah2/rabbitry/internal/service/herd"
)

// ButcherHandler exposes the butcher record CRUD surface.
type ButcherHandler struct {
	svc    *herd.Service
	logger *zap.Logger
}

// NewButcherHandler constructs the HTTP handler adapter.
func NewButcherHandler(svc *herd.Service, logger *zap.Logger) *ButcherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ButcherHandler{svc: svc, logger: logger}
}

// List returns every butcher record.
func (h *ButcherHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListButcherRecords())
}

// Create validates and stores a new butcher record.
func (h *ButcherHandler) Create(c *gin.Context) {
	var in models.InsertButcherRecord
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid butcher payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.svc.CreateButcherRecord(in))
}

// Update applies a partial update to an existing butcher record.
func (h *ButcherHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.ButcherRecordPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid butcher patch", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, found := h.svc.UpdateButcherRecord(id, patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "butcher record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete removes a butcher record.
func (h *ButcherHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !h.svc.DeleteButcherRecord(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "butcher record not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
