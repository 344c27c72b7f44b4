package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/application/reconcilerservice"
	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/pkg/config"
)

const testWebhookSecret = "whsec_test"

type fakeReconciler struct {
	outcome   reconcilerservice.Outcome
	err       error
	lastEvent domain.Event
	calls     int
}

func (f *fakeReconciler) Reconcile(ctx context.Context, event domain.Event, rawPayload json.RawMessage) (reconcilerservice.Outcome, error) {
	f.calls++
	f.lastEvent = event
	return f.outcome, f.err
}

func newWebhookRouter(reconciler *fakeReconciler, policy config.WebhookConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewWebhookHandler(reconciler, testWebhookSecret, policy, zerolog.Nop())
	router.POST("/webhooks/stripe", handler.HandleStripeWebhook)
	return router
}

func signBody(body []byte) string {
	ts := fmt.Sprintf("%d", time.Now().Unix())
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write([]byte(ts + "." + string(body)))
	return fmt.Sprintf("t=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func postWebhook(router *gin.Engine, body []byte, sigHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(body))
	if sigHeader != "" {
		req.Header.Set("Stripe-Signature", sigHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func succeededPayload(t *testing.T) []byte {
	t.Helper()
	return []byte(`{
		"type": "payment_intent.succeeded",
		"data": {
			"object": {
				"id": "pi_123",
				"amount": 5000,
				"metadata": {"user_id": "user-1", "alpaca_account_id": "acct-1"}
			}
		}
	}`)
}

func TestWebhook_MissingSignatureHeader(t *testing.T) {
	reconciler := &fakeReconciler{}
	router := newWebhookRouter(reconciler, config.WebhookConfig{})

	w := postWebhook(router, succeededPayload(t), "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if reconciler.calls != 0 {
		t.Fatal("reconciler must not run without a signature")
	}
}

func TestWebhook_InvalidSignature(t *testing.T) {
	reconciler := &fakeReconciler{}
	router := newWebhookRouter(reconciler, config.WebhookConfig{})

	body := succeededPayload(t)
	ts := time.Now().Unix()
	header := fmt.Sprintf("t=%d,v1=%s", ts, strings.Repeat("ab", 32))

	w := postWebhook(router, body, header)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if reconciler.calls != 0 {
		t.Fatal("reconciler must not run on a bad signature")
	}
}

func TestWebhook_ValidEventIsReconciled(t *testing.T) {
	reconciler := &fakeReconciler{outcome: reconcilerservice.OutcomeApplied}
	router := newWebhookRouter(reconciler, config.WebhookConfig{})

	body := succeededPayload(t)
	w := postWebhook(router, body, signBody(body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if reconciler.calls != 1 {
		t.Fatalf("expected 1 reconcile call, got %d", reconciler.calls)
	}

	event, ok := reconciler.lastEvent.(domain.PaymentSucceeded)
	if !ok {
		t.Fatalf("expected PaymentSucceeded event, got %T", reconciler.lastEvent)
	}
	if event.TransactionID != "pi_123" || event.AmountCents != 5000 {
		t.Fatalf("unexpected event: %+v", event)
	}

	var resp map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp["received"] {
		t.Fatal("expected received:true")
	}
}

func TestWebhook_UnrecognizedTypeStillAcked(t *testing.T) {
	reconciler := &fakeReconciler{outcome: reconcilerservice.OutcomeIgnored}
	router := newWebhookRouter(reconciler, config.WebhookConfig{})

	body := []byte(`{"type": "customer.created", "data": {"object": {}}}`)
	w := postWebhook(router, body, signBody(body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if reconciler.calls != 1 {
		t.Fatal("unrecognized events still reach the reconciler for the audit trail")
	}
}

func TestWebhook_MalformedJSONAfterValidSignature(t *testing.T) {
	reconciler := &fakeReconciler{}
	router := newWebhookRouter(reconciler, config.WebhookConfig{})

	body := []byte(`{not json`)
	w := postWebhook(router, body, signBody(body))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if reconciler.calls != 0 {
		t.Fatal("reconciler must not run on an unparseable payload")
	}
}

func TestWebhook_MissingRequiredFieldAcked(t *testing.T) {
	reconciler := &fakeReconciler{}
	router := newWebhookRouter(reconciler, config.WebhookConfig{})

	// Recognized type without a payment intent id. Acked so the
	// processor stops redelivering it.
	body := []byte(`{"type": "payment_intent.succeeded", "data": {"object": {"amount": 5000}}}`)
	w := postWebhook(router, body, signBody(body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if reconciler.calls != 0 {
		t.Fatal("incomplete events are dropped before the reconciler")
	}
}

func TestWebhook_StorageFailureAckPolicy(t *testing.T) {
	tests := []struct {
		name     string
		ack      bool
		wantCode int
	}{
		{"ack on failure", true, http.StatusOK},
		{"surface failure", false, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reconciler := &fakeReconciler{err: errors.New("write failed")}
			router := newWebhookRouter(reconciler, config.WebhookConfig{AckOnStorageFailure: tt.ack})

			body := succeededPayload(t)
			w := postWebhook(router, body, signBody(body))
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}
