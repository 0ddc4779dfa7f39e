package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vasudhaxkale/binance-trading-bot/internal/domain"
)

// Wire values for /fapi/v1/order. STOP_LIMIT is spelled "STOP" on the
// futures API (a stop order that triggers into a limit order).
const (
	wireTypeMarket = "MARKET"
	wireTypeLimit  = "LIMIT"
	wireTypeStop   = "STOP"

	timeInForceGTC = "GTC"
)

// orderParams builds the request parameters for the given order type.
// MARKET carries no price fields at all.
func orderParams(req domain.OrderRequest) (url.Values, error) {
	params := url.Values{}
	params.Set("symbol", req.Symbol)
	params.Set("side", string(req.Side))
	params.Set("quantity", req.Quantity.String())

	switch req.Type {
	case domain.OrderTypeMarket:
		params.Set("type", wireTypeMarket)
	case domain.OrderTypeLimit:
		params.Set("type", wireTypeLimit)
		params.Set("price", req.Price.String())
		params.Set("timeInForce", timeInForceGTC)
	case domain.OrderTypeStopLimit:
		params.Set("type", wireTypeStop)
		params.Set("price", req.Price.String())
		params.Set("stopPrice", req.StopPrice.String())
		params.Set("timeInForce", timeInForceGTC)
	default:
		return nil, &domain.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown order type %q", req.Type)}
	}

	return params, nil
}

// PlaceOrder submits a single order to /fapi/v1/order.
// The request is validated locally first; nothing is sent when validation
// fails. Rejections come back as *APIError and are never retried here.
func (c *Client) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	params, err := orderParams(req)
	if err != nil {
		return nil, err
	}
	params.Set("newClientOrderId", uuid.NewString())
	params.Set("newOrderRespType", "RESULT")

	body, err := c.do(ctx, http.MethodPost, "/fapi/v1/order", params)
	if err != nil {
		return nil, err
	}

	var resp orderResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal order response: %w", err)
	}

	return &domain.OrderResult{
		OrderID:       resp.OrderID,
		ClientOrderID: resp.ClientOrderID,
		Symbol:        resp.Symbol,
		Side:          resp.Side,
		Type:          resp.Type,
		Status:        resp.Status,
		OrigQty:       resp.OrigQty,
		ExecutedQty:   resp.ExecutedQty,
		Price:         resp.Price,
		StopPrice:     resp.StopPrice,
	}, nil
}

// AvailableBalance returns the available balance for an asset from
// /fapi/v2/balance. Used as the startup connection check.
func (c *Client) AvailableBalance(ctx context.Context, asset string) (decimal.Decimal, error) {
	body, err := c.do(ctx, http.MethodGet, "/fapi/v2/balance", nil)
	if err != nil {
		return decimal.Zero, err
	}

	var entries []balanceEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return decimal.Zero, fmt.Errorf("unmarshal balance response: %w", err)
	}

	for _, e := range entries {
		if e.Asset != asset {
			continue
		}
		bal, err := decimal.NewFromString(e.AvailableBalance)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parse balance %q: %w", e.AvailableBalance, err)
		}
		return bal, nil
	}

	return decimal.Zero, fmt.Errorf("asset %s not found in balance response", asset)
}
