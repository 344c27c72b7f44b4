package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/repositories/ledgerrepo"
)

type BalanceHandler struct {
	ledgerRepo ledgerrepo.ILedgerRepository
	logger     zerolog.Logger
}

func NewBalanceHandler(ledgerRepo ledgerrepo.ILedgerRepository, logger zerolog.Logger) *BalanceHandler {
	return &BalanceHandler{
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

func (h *BalanceHandler) ListBalances(c *gin.Context) {
	userID := c.GetString("user_id")

	balances, err := h.ledgerRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to list balances")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "Failed to retrieve balances",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balances": balances,
		"total":    len(balances),
	})
}
