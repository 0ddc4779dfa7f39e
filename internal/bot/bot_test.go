package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vasudhaxkale/binance-trading-bot/internal/domain"
	"github.com/vasudhaxkale/binance-trading-bot/internal/infra/binance"
)

type fakeExchange struct {
	placed    []domain.OrderRequest
	result    *domain.OrderResult
	placeErr  error
	balance   decimal.Decimal
	balErr    error
	balCalled bool
}

func (f *fakeExchange) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error) {
	f.placed = append(f.placed, req)
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	return f.result, nil
}

func (f *fakeExchange) AvailableBalance(ctx context.Context, asset string) (decimal.Decimal, error) {
	f.balCalled = true
	return f.balance, f.balErr
}

func TestBot_PlaceOrder_Success(t *testing.T) {
	fx := &fakeExchange{result: &domain.OrderResult{OrderID: 42, Status: "NEW"}}
	b := New(fx)

	req := domain.NewLimitOrder("BTCUSDT", domain.SideBuy,
		decimal.RequireFromString("0.001"), decimal.RequireFromString("60000"))
	result, err := b.PlaceOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if result.OrderID != 42 {
		t.Errorf("OrderID = %d, want 42", result.OrderID)
	}
	if len(fx.placed) != 1 {
		t.Errorf("exchange called %d times, want 1", len(fx.placed))
	}
}

func TestBot_PlaceOrder_InvalidNeverReachesExchange(t *testing.T) {
	fx := &fakeExchange{}
	b := New(fx)

	tests := []struct {
		name string
		req  domain.OrderRequest
	}{
		{
			name: "limit without price",
			req: domain.OrderRequest{
				Symbol: "BTCUSDT", Side: domain.SideBuy,
				Type: domain.OrderTypeLimit, Quantity: decimal.RequireFromString("1"),
			},
		},
		{
			name: "stop limit without stop price",
			req: domain.OrderRequest{
				Symbol: "BTCUSDT", Side: domain.SideSell,
				Type: domain.OrderTypeStopLimit, Quantity: decimal.RequireFromString("1"),
				Price: decimal.RequireFromString("65000"),
			},
		},
		{
			name: "non-positive quantity",
			req: domain.OrderRequest{
				Symbol: "BTCUSDT", Side: domain.SideBuy,
				Type: domain.OrderTypeMarket, Quantity: decimal.Zero,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.PlaceOrder(context.Background(), tt.req)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *domain.ValidationError", err)
			}
		})
	}
	if len(fx.placed) != 0 {
		t.Errorf("exchange called %d times for invalid orders, want 0", len(fx.placed))
	}
}

func TestBot_PlaceOrder_ExchangeErrorPassedThrough(t *testing.T) {
	fx := &fakeExchange{placeErr: &binance.APIError{Status: 400, Code: -2019, Msg: "Margin is insufficient."}}
	b := New(fx)

	req := domain.NewMarketOrder("BTCUSDT", domain.SideBuy, decimal.RequireFromString("0.001"))
	_, err := b.PlaceOrder(context.Background(), req)

	var apiErr *binance.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *binance.APIError", err)
	}
	if apiErr.Code != -2019 {
		t.Errorf("Code = %d, want -2019", apiErr.Code)
	}
}
