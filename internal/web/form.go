package web

import (
	"github.com/shopspring/decimal"

	"github.com/vasudhaxkale/binance-trading-bot/internal/domain"
)

// OrderForm carries the raw fields of the order form, credentials included,
// exactly as the user typed them. One submission, one form.
type OrderForm struct {
	APIKey    string `form:"api_key" json:"api_key" validate:"required"`
	APISecret string `form:"api_secret" json:"api_secret" validate:"required"`
	Symbol    string `form:"symbol" json:"symbol" validate:"required"`
	Side      string `form:"side" json:"side" validate:"required,oneof=BUY SELL"`
	Type      string `form:"type" json:"type" validate:"required,oneof=MARKET LIMIT STOP_LIMIT"`
	Quantity  string `form:"quantity" json:"quantity" validate:"required"`
	Price     string `form:"price" json:"price"`
	StopPrice string `form:"stop_price" json:"stop_price"`
}

// ToOrderRequest parses the form's numeric strings and assembles the typed
// request for the submitted order type.
func (f OrderForm) ToOrderRequest() (domain.OrderRequest, error) {
	qty, err := decimal.NewFromString(f.Quantity)
	if err != nil {
		return domain.OrderRequest{}, &domain.ValidationError{Field: "quantity", Reason: "must be a number"}
	}

	side := domain.Side(f.Side)

	switch domain.OrderType(f.Type) {
	case domain.OrderTypeMarket:
		return domain.NewMarketOrder(f.Symbol, side, qty), nil

	case domain.OrderTypeLimit:
		price, err := parsePrice(f.Price, "price")
		if err != nil {
			return domain.OrderRequest{}, err
		}
		return domain.NewLimitOrder(f.Symbol, side, qty, price), nil

	case domain.OrderTypeStopLimit:
		price, err := parsePrice(f.Price, "price")
		if err != nil {
			return domain.OrderRequest{}, err
		}
		stop, err := parsePrice(f.StopPrice, "stop_price")
		if err != nil {
			return domain.OrderRequest{}, err
		}
		return domain.NewStopLimitOrder(f.Symbol, side, qty, price, stop), nil
	}

	return domain.OrderRequest{}, &domain.ValidationError{Field: "type", Reason: "unknown order type"}
}

func parsePrice(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, &domain.ValidationError{Field: field, Reason: "required for this order type"}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &domain.ValidationError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}
