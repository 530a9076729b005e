package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/rabbitry/internal/domain/models"
	"github.com/mamadbah2/rabbitry/internal/service/herd"
)

// ExpenseHandler exposes the expense CRUD surface plus the monthly summary.
type ExpenseHandler struct {
	svc    *herd.Service
	logger *zap.Logger
}

// NewExpenseHandler constructs the HTTP handler adapter.
func NewExpenseHandler(svc *herd.Service, logger *zap.Logger) *ExpenseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpenseHandler{svc: svc, logger: logger}
}

// List returns every expense, or the ?startDate=&endDate= range when both
// bounds are supplied.
func (h *ExpenseHandler) List(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	c.JSON(http.StatusOK, h.svc.ListExpenses(startDate, endDate))
}

// Summary returns the monthly totals and per-category breakdown.
func (h *ExpenseHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ExpenseOverview())
}

// Create validates and stores a new expense.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var in models.InsertExpense
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("invalid expense payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, h.svc.CreateExpense(in))
}

// Update applies a partial update to an existing expense.
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.ExpensePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid expense patch", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, found := h.svc.UpdateExpense(id, patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Delete removes an expense.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !h.svc.DeleteExpense(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
