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

// StatementHandler serves the merged transaction statement.
type StatementHandler struct {
	statementService portssvc.StatementSvcFacade
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(ss portssvc.StatementSvcFacade) *StatementHandler {
	return &StatementHandler{statementService: ss}
}

func RegisterStatementRoutes(rg *gin.RouterGroup, ss portssvc.StatementSvcFacade) {
	h := NewStatementHandler(ss)
	rg.GET("/statement", h.GetStatement)
	rg.DELETE("/statement", h.ClearStatement)
}

// GetStatement godoc
// @Summary Get the transaction statement
// @Description Returns balance credits and debt payments merged into one list, newest first. Pass nextToken to page into older entries.
// @Tags statement
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /statement [get]
func (h *StatementHandler) GetStatement(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.statementService.GetStatement(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid nextToken"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(txns, nextToken))
}

// ClearStatement godoc
// @Summary Clear the transaction statement
// @Description Deletes all statement entries. The account balance is not changed.
// @Tags statement
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /statement [delete]
func (h *StatementHandler) ClearStatement(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.statementService.ClearStatement(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear statement"})
		return
	}

	c.Status(http.StatusNoContent)
}
