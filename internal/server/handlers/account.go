package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/application/accountservice"
	"github.com/Crypto1181/Caballo/internal/domain"
)

type AccountHandler struct {
	accountSvc accountservice.IAccountService
	logger     zerolog.Logger
}

func NewAccountHandler(accountSvc accountservice.IAccountService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		accountSvc: accountSvc,
		logger:     logger,
	}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID := c.GetString("user_id")

	var req domain.AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	account, err := h.accountSvc.CreateAccount(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Not Found",
				"message": "User profile not found",
			})
		case errors.Is(err, domain.ErrBrokerAccountExists):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Bad Request",
				"message": "Alpaca account already exists",
			})
		default:
			h.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to create alpaca account")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal Server Error",
				"message": "Failed to create Alpaca account",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"account_id": account.ID,
		"account":    account,
	})
}
