package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
	"github.com/mamadbah2/rabbitry/internal/service/herd"
)

// RabbitHandler exposes the rabbit CRUD surface.
type RabbitHandler struct {
	svc    *herd.Service
	logger *zap.Logger
}

// NewRabbitHandler constructs the HTTP handler adapter.
func NewRabbitHandler(svc *herd.Service, logger *zap.Logger) *RabbitHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RabbitHandler{svc: svc, logger: logger}
}

// List returns every rabbit with derived age fields.
func (h *RabbitHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListRabbits())
}

// Get returns one rabbit by id.
func (h *RabbitHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rabbit, found := h.svc.GetRabbit(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "rabbit not found"})
		return
	}
	c.JSON(http.StatusOK, rabbit)
}

// Create validates and stores a new rabbit.
func (h *RabbitHandler) Create(c *gin.Context) {
	var in models.InsertRabbit
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid rabbit payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.svc.CreateRabbit(in))
}

// Update applies a partial update to an existing rabbit.
func (h *RabbitHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.RabbitPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid rabbit patch", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rabbit, found := h.svc.UpdateRabbit(id, patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "rabbit not found"})
		return
	}
	c.JSON(http.StatusOK, rabbit)
}

// Delete removes a rabbit. Records referencing it are left in place.
func (h *RabbitHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !h.svc.DeleteRabbit(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "rabbit not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
