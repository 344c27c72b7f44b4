package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/application/depositservice"
	"github.com/Crypto1181/Caballo/internal/domain"
)

type DepositHandler struct {
	depositSvc depositservice.IDepositService
	logger     zerolog.Logger
}

func NewDepositHandler(depositSvc depositservice.IDepositService, logger zerolog.Logger) *DepositHandler {
	return &DepositHandler{
		depositSvc: depositSvc,
		logger:     logger,
	}
}

func (h *DepositHandler) InitiateDeposit(c *gin.Context) {
	userID := c.GetString("user_id")

	var req domain.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	initiation, err := h.depositSvc.InitiateDeposit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDepositAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Bad Request",
				"message": "Invalid amount",
			})
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Not Found",
				"message": "User profile not found",
			})
		case errors.Is(err, domain.ErrNoBrokerAccount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Bad Request",
				"message": "Alpaca account not found. Please complete onboarding.",
			})
		default:
			h.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to initiate deposit")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal Server Error",
				"message": "Failed to create payment intent",
			})
		}
		return
	}

	c.JSON(http.StatusOK, initiation)
}

func (h *DepositHandler) ListDeposits(c *gin.Context) {
	userID := c.GetString("user_id")

	deposits, err := h.depositSvc.ListDeposits(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to list deposits")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "Failed to retrieve deposits",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deposits": deposits,
		"total":    len(deposits),
	})
}
