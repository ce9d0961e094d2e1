package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/testebank/testebank_backend/internal/apperrors"
	portssvc "github.com/testebank/testebank_backend/internal/core/ports/services"
	"github.com/testebank/testebank_backend/internal/dto"
	"github.com/testebank/testebank_backend/internal/middleware"
)

// ProfileHandler serves the authenticated user's own profile.
type ProfileHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(bs portssvc.BalanceSvcFacade) *ProfileHandler {
	return &ProfileHandler{balanceService: bs}
}

func RegisterProfileRoutes(rg *gin.RouterGroup, bs portssvc.BalanceSvcFacade) {
	h := NewProfileHandler(bs)
	rg.GET("/me", h.GetMe)
}

// GetMe godoc
// @Summary Get own profile
// @Description Returns the authenticated user's profile with the current balance.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	user, err := h.balanceService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
