package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Crypto1181/Caballo/internal/domain"
	"github.com/Crypto1181/Caballo/internal/domain/interfaces"
	"github.com/Crypto1181/Caballo/pkg/config"
)

const defaultAlpacaBaseURL = "https://broker-api.sandbox.alpaca.markets"

type alpacaClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       zerolog.Logger
}

func NewAlpacaClient(cfg config.AlpacaConfig, logger zerolog.Logger) interfaces.BrokerClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAlpacaBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &alpacaClient{
		baseURL:      baseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *alpacaClient) CreateAccount(ctx context.Context, req *domain.AccountRequest) (*domain.BrokerAccount, error) {
	body := map[string]interface{}{
		"contact": map[string]interface{}{
			"email_address":  req.ContactEmail,
			"phone_number":   req.ContactPhoneNumber,
			"street_address": []string{req.ContactAddress},
			"city":           req.ContactCity,
			"state":          req.ContactState,
			"postal_code":    req.ContactPostalCode,
			"country":        req.ContactCountry,
		},
	}
	if req.GivenName != "" {
		body["given_name"] = req.GivenName
	}
	if req.FamilyName != "" {
		body["family_name"] = req.FamilyName
	}
	if req.TaxID != "" {
		body["tax_id"] = req.TaxID
	}
	if req.DateOfBirth != "" {
		body["date_of_birth"] = req.DateOfBirth
	}

	var account domain.BrokerAccount
	if err := c.makeRequest(ctx, http.MethodPost, "/v1/accounts", body, &account); err != nil {
		return nil, fmt.Errorf("failed to create alpaca account: %w", err)
	}

	return &account, nil
}

func (c *alpacaClient) PlaceOrder(ctx context.Context, accountID string, order *domain.BrokerOrderRequest) (*domain.BrokerOrder, error) {
	endpoint := fmt.Sprintf("/v1/trading/accounts/%s/orders", accountID)

	var placed domain.BrokerOrder
	if err := c.makeRequest(ctx, http.MethodPost, endpoint, order, &placed); err != nil {
		return nil, fmt.Errorf("failed to place order for account %s: %w", accountID, err)
	}

	return &placed, nil
}

func (c *alpacaClient) makeRequest(ctx context.Context, method, endpoint string, body interface{}, response interface{}) error {
	fullURL := c.baseURL + endpoint

	var reqBody []byte
	var err error
	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("url", fullURL).
			Str("body", string(respBody)).
			Msg("Alpaca request failed")
		return fmt.Errorf("alpaca error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if response != nil {
		if err := json.Unmarshal(respBody, response); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}
