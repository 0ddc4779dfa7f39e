package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Side is the order direction.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType selects the execution behavior on the exchange.
type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
)

// ValidationError reports a locally rejected order field.
// It is returned before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// OrderRequest is a single order submission.
// Price is only meaningful for LIMIT and STOP_LIMIT; StopPrice only for
// STOP_LIMIT. The constructors below keep those fields zero for types that
// do not carry them.
type OrderRequest struct {
	Symbol    string
	Side      Side
	Type      OrderType
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	StopPrice decimal.Decimal
}

// NewMarketOrder builds a MARKET order request.
func NewMarketOrder(symbol string, side Side, qty decimal.Decimal) OrderRequest {
	return OrderRequest{
		Symbol:   NormalizeSymbol(symbol),
		Side:     side,
		Type:     OrderTypeMarket,
		Quantity: qty,
	}
}

// NewLimitOrder builds a LIMIT order request.
func NewLimitOrder(symbol string, side Side, qty, price decimal.Decimal) OrderRequest {
	return OrderRequest{
		Symbol:   NormalizeSymbol(symbol),
		Side:     side,
		Type:     OrderTypeLimit,
		Quantity: qty,
		Price:    price,
	}
}

// NewStopLimitOrder builds a STOP_LIMIT order request.
func NewStopLimitOrder(symbol string, side Side, qty, price, stopPrice decimal.Decimal) OrderRequest {
	return OrderRequest{
		Symbol:    NormalizeSymbol(symbol),
		Side:      side,
		Type:      OrderTypeStopLimit,
		Quantity:  qty,
		Price:     price,
		StopPrice: stopPrice,
	}
}

// NormalizeSymbol trims and uppercases an exchange instrument identifier.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Validate checks the per-type field invariants.
// MARKET ignores Price and StopPrice entirely.
func (r OrderRequest) Validate() error {
	if r.Symbol == "" {
		return &ValidationError{Field: "symbol", Reason: "symbol is required"}
	}
	if r.Side != SideBuy && r.Side != SideSell {
		return &ValidationError{Field: "side", Reason: fmt.Sprintf("must be %s or %s", SideBuy, SideSell)}
	}
	if !r.Quantity.IsPositive() {
		return &ValidationError{Field: "quantity", Reason: "must be a positive number"}
	}

	switch r.Type {
	case OrderTypeMarket:
		return nil
	case OrderTypeLimit:
		if !r.Price.IsPositive() {
			return &ValidationError{Field: "price", Reason: "price required for limit orders"}
		}
	case OrderTypeStopLimit:
		if !r.Price.IsPositive() {
			return &ValidationError{Field: "price", Reason: "price required for stop-limit orders"}
		}
		if !r.StopPrice.IsPositive() {
			return &ValidationError{Field: "stop_price", Reason: "stop price required for stop-limit orders"}
		}
	default:
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown order type %q", r.Type)}
	}
	return nil
}

// OrderResult is the exchange's order confirmation, reported verbatim.
// Numeric fields stay as the strings the exchange sent.
type OrderResult struct {
	OrderID       int64  `json:"order_id"`
	ClientOrderID string `json:"client_order_id"`
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	OrigQty       string `json:"orig_qty"`
	ExecutedQty   string `json:"executed_qty"`
	Price         string `json:"price,omitempty"`
	StopPrice     string `json:"stop_price,omitempty"`
}
