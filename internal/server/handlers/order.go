package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/application/orderservice"
	"github.com/Crypto1181/Caballo/internal/domain"
)

type OrderHandler struct {
	orderSvc orderservice.IOrderService
	logger   zerolog.Logger
}

func NewOrderHandler(orderSvc orderservice.IOrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orderSvc: orderSvc,
		logger:   logger,
	}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID := c.GetString("user_id")

	var req domain.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	if req.Qty <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Invalid order parameters",
		})
		return
	}

	order, err := h.orderSvc.PlaceOrder(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound), errors.Is(err, domain.ErrNoBrokerAccount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Bad Request",
				"message": "Alpaca account not found. Please complete onboarding.",
			})
		default:
			h.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to place order")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal Server Error",
				"message": "Failed to place order",
			})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID := c.GetString("user_id")
	status := c.Query("status")

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 1000 {
			limit = l
		}
	}

	orders, err := h.orderSvc.ListOrders(c.Request.Context(), userID, status, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to list orders")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"total":  len(orders),
		"limit":  limit,
	})
}
