package handlers

import (
	"net/http"

	"publiflow-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles HTTP requests for expense operations
type ExpenseHandler struct {
	expenseService service.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService service.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// ListExpenses handles GET /expenses
// @Summary List expenses
// @Tags finance
// @Produce json
// @Success 200 {array} service.ExpenseResponse "Expenses"
// @Security BearerAuth
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateExpense handles POST /expenses
// @Summary Record an expense
// @Tags finance
// @Accept json
// @Produce json
// @Param expense body service.CreateExpenseRequest true "Expense data"
// @Success 201 {object} service.ExpenseResponse "Successfully created expense"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// DeleteExpense handles DELETE /expenses/:id
// @Summary Delete an expense
// @Tags finance
// @Param id path string true "Expense ID (UUID)"
// @Success 204 "Expense deleted"
// @Failure 404 {object} ErrorResponse "Expense not found"
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "expense")
	if !ok {
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
