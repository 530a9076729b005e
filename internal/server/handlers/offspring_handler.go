package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
	"github.com/mamadbah2/rabbitry/internal/service/herd"
)

// OffspringHandler exposes the offspring CRUD surface.
type OffspringHandler struct {
	svc    *herd.Service
	logger *zap.Logger
}

// NewOffspringHandler constructs the HTTP handler adapter.
func NewOffspringHandler(svc *herd.Service, logger *zap.Logger) *OffspringHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OffspringHandler{svc: svc, logger: logger}
}

// List returns every kit, or one litter when ?breedingRecordId= is given.
func (h *OffspringHandler) List(c *gin.Context) {
	var breedingRecordID int
	if raw := c.Query("breedingRecordId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid breedingRecordId"})
			return
		}
		breedingRecordID = id
	}

	c.JSON(http.StatusOK, h.svc.ListOffspring(breedingRecordID))
}

// Create validates and stores a new kit.
func (h *OffspringHandler) Create(c *gin.Context) {
	var in models.InsertOffspring
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid offspring payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.svc.CreateOffspring(in))
}

// Update applies a partial update to an existing kit.
func (h *OffspringHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.OffspringPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid offspring patch", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offspring, found := h.svc.UpdateOffspring(id, patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "offspring not found"})
		return
	}
	c.JSON(http.StatusOK, offspring)
}

// Delete removes a kit.
func (h *OffspringHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !h.svc.DeleteOffspring(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "offspring not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
