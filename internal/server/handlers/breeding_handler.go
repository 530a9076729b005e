package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
	"github.com/mamadbah2/rabbitry/internal/service/herd"
)

// BreedingHandler exposes the breeding record CRUD surface. List responses
// carry the derived timeline alongside each raw record.
type BreedingHandler struct {
	svc    *herd.Service
	logger *zap.Logger
}

// NewBreedingHandler constructs the HTTP handler adapter.
func NewBreedingHandler(svc *herd.Service, logger *zap.Logger) *BreedingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BreedingHandler{svc: svc, logger: logger}
}

// List returns every breeding record with its timeline.
func (h *BreedingHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListBreedingRecords())
}

// Create validates and stores a new breeding record; a blank expected kindle
// date is defaulted to matingDate + 31 days.
func (h *BreedingHandler) Create(c *gin.Context) {
	var in models.InsertBreedingRecord
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid breeding payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.svc.CreateBreedingRecord(in))
}

// Update applies a partial update to an existing record.
func (h *BreedingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.BreedingRecordPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid breeding patch", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, found := h.svc.UpdateBreedingRecord(id, patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "breeding record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete removes a breeding record; its offspring rows stay.
func (h *BreedingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !h.svc.DeleteBreedingRecord(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "breeding record not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
