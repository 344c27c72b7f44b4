// Package signature implements Stripe webhook signature verification.
//
// The Stripe-Signature header carries comma-separated key=value pairs of
// which only t (unix timestamp) and v1 (hex HMAC-SHA256) are consumed. The
// signed message is "<t>.<raw body>" keyed with the endpoint's webhook
// secret.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Timestamps further than this from the local clock are logged but still
// accepted; strict replay protection is the caller's concern.
const timestampTolerance = 300 * time.Second

// Verify reports whether signatureHeader is a valid signature over payload
// with the given shared secret. Any parse failure, missing field, missing
// header or missing secret yields false without computing the HMAC.
func Verify(payload []byte, signatureHeader, secret string) bool {
	return verifyAt(payload, signatureHeader, secret, time.Now())
}

func verifyAt(payload []byte, signatureHeader, secret string, now time.Time) bool {
	if signatureHeader == "" || secret == "" {
		return false
	}

	header := parseHeader(signatureHeader)
	timestamp := header["t"]
	providedHex := header["v1"]
	if timestamp == "" || providedHex == "" {
		return false
	}

	provided, err := hex.DecodeString(providedHex)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	// hmac.Equal is constant time for equal-length inputs and rejects
	// differing lengths up front; length is not secret.
	if !hmac.Equal(expected, provided) {
		return false
	}

	eventTime, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}

	if drift := now.Unix() - eventTime; drift > int64(timestampTolerance.Seconds()) || -drift > int64(timestampTolerance.Seconds()) {
		log.Warn().
			Int64("event_time", eventTime).
			Int64("drift_seconds", drift).
			Msg("Webhook timestamp outside tolerance window")
		// Logged only; the event is still accepted when the HMAC matches.
	}

	return true
}

func parseHeader(header string) map[string]string {
	fields := make(map[string]string)
	for _, element := range strings.Split(header, ",") {
		key, value, found := strings.Cut(element, "=")
		if !found {
			continue
		}
		fields[key] = value
	}
	return fields
}
