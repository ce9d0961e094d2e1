package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/testebank/testebank_backend/internal/apperrors"
	portssvc "github.com/testebank/testebank_backend/internal/core/ports/services"
	"github.com/testebank/testebank_backend/internal/dto"
	"github.com/testebank/testebank_backend/internal/middleware"
)

// DebtHandler handles the debt lifecycle.
type DebtHandler struct {
	debtService portssvc.DebtSvcFacade
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(ds portssvc.DebtSvcFacade) *DebtHandler {
	return &DebtHandler{debtService: ds}
}

func RegisterDebtRoutes(rg *gin.RouterGroup, ds portssvc.DebtSvcFacade) {
	h := NewDebtHandler(ds)
	debts := rg.Group("/debts")
	{
		debts.POST("", h.CreateDebt)
		debts.GET("", h.ListDebts)
		debts.POST("/:debtID/pay", h.PayDebt)
	}
}

// CreateDebt godoc
// @Summary Create a debt
// @Description Registers a new open debt. The due date is taken in DD/MM/YYYY form and validated as a real calendar date.
// @Tags debts
// @Accept json
// @Produce json
// @Param debt body dto.CreateDebtRequest true "New debt"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to create debt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create debt"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// ListDebts godoc
// @Summary List open debts
// @Description Returns the authenticated user's open debts ordered by due date.
// @Tags debts
// @Produce json
// @Success 200 {object} dto.ListDebtsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *DebtHandler) ListDebts(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list debts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDebtsResponse(debts))
}

// PayDebt godoc
// @Summary Pay a debt
// @Description Settles the debt atomically: records the payment, debits the balance and removes the debt.
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 200 {object} dto.PayDebtResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Debt not found"
// @Failure 422 {object} ErrorResponse "Balance does not cover the debt"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{debtID}/pay [post]
func (h *DebtHandler) PayDebt(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	debtID := c.Param("debtID")

	payment, balance, err := h.debtService.PayDebt(c.Request.Context(), userID, debtID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Debt not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Debt belongs to another user"})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Insufficient funds"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to pay debt", slog.String("error", err.Error()), slog.String("debt_id", debtID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to pay debt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PayDebtResponse{
		PaymentID:   payment.PaymentID,
		Description: payment.Description,
		Amount:      payment.Amount,
		PaidAt:      payment.PaidAt,
		Balance:     balance,
	})
}
