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

// BalanceHandler handles balance top-ups.
type BalanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(bs portssvc.BalanceSvcFacade) *BalanceHandler {
	return &BalanceHandler{balanceService: bs}
}

func RegisterBalanceRoutes(rg *gin.RouterGroup, bs portssvc.BalanceSvcFacade) {
	h := NewBalanceHandler(bs)
	rg.POST("/balance/deposits", h.AddFunds)
}

// AddFunds godoc
// @Summary Add funds to the balance
// @Description Credits the balance and appends the credit to the statement history.
// @Tags balance
// @Accept json
// @Produce json
// @Param deposit body dto.AddFundsRequest true "Amount to add"
// @Success 201 {object} dto.AddFundsResponse
// @Failure 400 {object} ErrorResponse "Amount is not a positive number"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance/deposits [post]
func (h *BalanceHandler) AddFunds(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.AddFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	credit, balance, err := h.balanceService.AddFunds(c.Request.Context(), userID, req.Amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to add funds", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add funds"})
		return
	}

	c.JSON(http.StatusCreated, dto.AddFundsResponse{
		CreditID:  credit.CreditID,
		Amount:    credit.Amount,
		CreatedAt: credit.CreatedAt,
		Balance:   balance,
	})
}
