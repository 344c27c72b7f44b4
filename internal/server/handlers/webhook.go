package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/application/reconcilerservice"
	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/pkg/config"
	"github.com/Crypto1181/Caballo/pkg/signature"
)

type WebhookHandler struct {
	reconcilerSvc reconcilerservice.IReconcilerService
	webhookSecret string
	policy        config.WebhookConfig
	logger        zerolog.Logger
}

func NewWebhookHandler(reconcilerSvc reconcilerservice.IReconcilerService, webhookSecret string, policy config.WebhookConfig, logger zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		reconcilerSvc: reconcilerSvc,
		webhookSecret: webhookSecret,
		policy:        policy,
		logger:        logger,
	}
}

// HandleStripeWebhook ingests a payment processor delivery. The raw body
// is verified against the Stripe-Signature header before anything is
// parsed; every recognized-but-unactionable condition is still
// acknowledged with 200 so the processor stops redelivering.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Failed to read request body",
		})
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if sigHeader == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Missing Stripe-Signature header",
		})
		return
	}

	if !signature.Verify(body, sigHeader, h.webhookSecret) {
		h.logger.Warn().
			Str("client_ip", c.ClientIP()).
			Msg("Webhook signature verification failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Invalid signature",
		})
		return
	}

	event, err := domain.ParseEvent(body)
	if err != nil {
		if errors.Is(err, domain.ErrMissingEventField) {
			// Recognized event the gateway cannot act on; ack so the
			// processor does not redeliver it forever.
			h.logger.Warn().Err(err).Msg("Webhook event missing required field")
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Invalid payload",
		})
		return
	}

	outcome, err := h.reconcilerSvc.Reconcile(c.Request.Context(), event, body)
	if err != nil {
		h.logger.Error().Err(err).Str("event_type", event.Kind()).Msg("Webhook reconciliation failed")

		if h.policy.AckOnStorageFailure {
			// Partial side effects may already be applied; suppress
			// redelivery rather than risk a duplicate credit.
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "Failed to process webhook event",
		})
		return
	}

	h.logger.Debug().
		Str("event_type", event.Kind()).
		Str("outcome", string(outcome)).
		Msg("Webhook event processed")

	c.JSON(http.StatusOK, gin.H{"received": true})
}
