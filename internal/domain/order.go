package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string          `json:"id" db:"id"`
	UserID        string          `json:"user_id" db:"user_id"`
	AlpacaOrderID string          `json:"alpaca_order_id" db:"alpaca_order_id"`
	ClientOrderID string          `json:"client_order_id" db:"client_order_id"`
	Symbol        string          `json:"symbol" db:"symbol"`
	Qty           decimal.Decimal `json:"qty" db:"qty"`
	Side          string          `json:"side" db:"side"`
	Type          string          `json:"type" db:"type"`
	TimeInForce   string          `json:"time_in_force" db:"time_in_force"`
	LimitPrice    *float64        `json:"limit_price,omitempty" db:"limit_price"`
	StopPrice     *float64        `json:"stop_price,omitempty" db:"stop_price"`
	Status        string          `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

type OrderRequest struct {
	Symbol      string   `json:"symbol" binding:"required"`
	Qty         float64  `json:"qty" binding:"required"`
	Side        string   `json:"side" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	TimeInForce string   `json:"time_in_force" binding:"required"`
	LimitPrice  *float64 `json:"limit_price,omitempty"`
	StopPrice   *float64 `json:"stop_price,omitempty"`
}

// BrokerOrderRequest is the order body forwarded to the broker API.
type BrokerOrderRequest struct {
	Symbol        string   `json:"symbol"`
	Qty           float64  `json:"qty"`
	Side          string   `json:"side"`
	Type          string   `json:"type"`
	TimeInForce   string   `json:"time_in_force"`
	ClientOrderID string   `json:"client_order_id"`
	LimitPrice    *float64 `json:"limit_price,omitempty"`
	StopPrice     *float64 `json:"stop_price,omitempty"`
}

// BrokerOrder is the broker API's view of a placed order.
type BrokerOrder struct {
	ID            string `json:"id"`
	ClientOrderID string `json:"client_order_id"`
	Symbol        string `json:"symbol"`
	Qty           string `json:"qty"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	TimeInForce   string `json:"time_in_force"`
	Status        string `json:"status"`
}
