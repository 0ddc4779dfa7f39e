package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/vasudhaxkale/binance-trading-bot/internal/domain"
	"github.com/vasudhaxkale/binance-trading-bot/internal/infra/binance"
)

// Exchange defines the order placement surface of the exchange client.
type Exchange interface {
	// PlaceOrder sends a new order to the exchange.
	PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error)

	// AvailableBalance returns the free balance for an asset.
	AvailableBalance(ctx context.Context, asset string) (decimal.Decimal, error)
}

// Bot runs the validate -> submit pipeline shared by the CLI and the web
// form. It holds no state beyond the exchange client; every submission is
// one atomic request/response.
type Bot struct {
	exchange Exchange
}

// New creates a bot on top of an exchange client.
func New(exchange Exchange) *Bot {
	return &Bot{exchange: exchange}
}

// Connect builds the real exchange client and verifies the credentials with
// a balance call, like a login probe. Fails fast on bad keys.
func Connect(ctx context.Context, apiKey, apiSecret string, testnet bool) (*Bot, error) {
	signer := binance.NewSigner(apiKey, apiSecret)
	client := binance.NewClient(signer, testnet)
	b := New(client)

	slog.Info("Bot initialized", slog.Bool("testnet", testnet))

	balance, err := b.exchange.AvailableBalance(ctx, "USDT")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to API: %w", err)
	}
	slog.Info("Account balance", slog.String("asset", "USDT"), slog.String("available", balance.StringFixed(2)))

	return b, nil
}

// PlaceOrder validates the request and forwards it to the exchange.
// Every attempt and outcome is logged; failures are never retried.
func (b *Bot) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error) {
	if err := req.Validate(); err != nil {
		slog.Error("Order rejected locally", slog.Any("error", err), slog.String("symbol", req.Symbol))
		return nil, err
	}

	slog.Info("Placing order",
		slog.String("symbol", req.Symbol),
		slog.String("side", string(req.Side)),
		slog.String("type", string(req.Type)),
		slog.String("quantity", req.Quantity.String()),
	)

	result, err := b.exchange.PlaceOrder(ctx, req)
	if err != nil {
		var apiErr *binance.APIError
		if errors.As(err, &apiErr) {
			slog.Error("Exchange rejected order",
				slog.Int64("code", apiErr.Code),
				slog.String("msg", apiErr.Msg),
			)
		} else {
			slog.Error("Order failed", slog.Any("error", err))
		}
		return nil, err
	}

	slog.Info("Order placed",
		slog.Int64("order_id", result.OrderID),
		slog.String("status", result.Status),
		slog.String("executed_qty", result.ExecutedQty),
	)

	return result, nil
}
