package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/vasudhaxkale/binance-trading-bot/internal/domain"
	"github.com/vasudhaxkale/binance-trading-bot/internal/infra"
	"github.com/vasudhaxkale/binance-trading-bot/internal/infra/binance"
)

type fakeSubmitter struct {
	placed []domain.OrderRequest
	result *domain.OrderResult
	err    error
}

func (f *fakeSubmitter) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error) {
	f.placed = append(f.placed, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func runCLI(t *testing.T, args []string, sub *fakeSubmitter, connectErr error) (code int, stdout, stderr string) {
	t.Helper()
	var out, errw bytes.Buffer
	connects := 0
	code = run(context.Background(), args, infra.DefaultConfig(), &out, &errw,
		func(ctx context.Context, apiKey, apiSecret string, testnet bool) (submitter, error) {
			connects++
			if connectErr != nil {
				return nil, connectErr
			}
			return sub, nil
		})
	if sub != nil && len(sub.placed) > 0 && connects == 0 {
		t.Fatal("order placed without connecting")
	}
	return code, out.String(), errw.String()
}

func baseArgs() []string {
	return []string{
		"--api-key", "k", "--api-secret", "s",
		"--symbol", "BTCUSDT", "--side", "BUY",
		"--type", "MARKET", "--quantity", "0.001",
	}
}

func TestRun_MarketSuccess(t *testing.T) {
	sub := &fakeSubmitter{result: &domain.OrderResult{
		OrderID: 101, Symbol: "BTCUSDT", Side: "BUY", Type: "MARKET",
		Status: "FILLED", OrigQty: "0.001", ExecutedQty: "0.001",
	}}

	code, stdout, _ := runCLI(t, baseArgs(), sub, nil)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "ORDER EXECUTED SUCCESSFULLY") {
		t.Errorf("missing success banner in output:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Order ID:      101") {
		t.Errorf("missing order id in output:\n%s", stdout)
	}
	if len(sub.placed) != 1 || sub.placed[0].Type != domain.OrderTypeMarket {
		t.Errorf("unexpected placed orders: %+v", sub.placed)
	}
}

func TestRun_StopLimit(t *testing.T) {
	sub := &fakeSubmitter{result: &domain.OrderResult{
		OrderID: 102, Status: "NEW", Price: "65000", StopPrice: "64900",
	}}
	args := []string{
		"--api-key", "k", "--api-secret", "s",
		"--symbol", "btcusdt", "--side", "SELL",
		"--type", "STOP_LIMIT", "--quantity", "0.002",
		"--price", "65000", "--stop-price", "64900",
	}

	code, stdout, _ := runCLI(t, args, sub, nil)

	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "Stop Price:    64900") {
		t.Errorf("missing stop price in output:\n%s", stdout)
	}
	placed := sub.placed[0]
	if placed.Symbol != "BTCUSDT" {
		t.Errorf("symbol not normalized: %q", placed.Symbol)
	}
	if placed.StopPrice.String() != "64900" {
		t.Errorf("stop price = %s, want 64900", placed.StopPrice)
	}
}

func TestRun_ValidationFailuresExitNonZero(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]string) []string
		wantErr string
	}{
		{
			name: "limit without price",
			mutate: func(args []string) []string {
				args[9] = "LIMIT" // --type value
				return args
			},
			wantErr: "price",
		},
		{
			name: "zero quantity",
			mutate: func(args []string) []string {
				args[11] = "0" // --quantity value
				return args
			},
			wantErr: "quantity",
		},
		{
			name: "missing credentials",
			mutate: func(args []string) []string {
				return args[4:] // drop key/secret flags
			},
			wantErr: "credentials",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BINANCE_API_KEY", "")
			t.Setenv("BINANCE_API_SECRET", "")
			sub := &fakeSubmitter{}
			code, _, stderr := runCLI(t, tt.mutate(baseArgs()), sub, nil)

			if code == 0 {
				t.Fatal("exit code = 0, want non-zero")
			}
			if !strings.Contains(stderr, tt.wantErr) {
				t.Errorf("stderr %q does not mention %q", stderr, tt.wantErr)
			}
			if len(sub.placed) != 0 {
				t.Error("order reached exchange despite validation failure")
			}
		})
	}
}

func TestRun_ExchangeRejection(t *testing.T) {
	sub := &fakeSubmitter{err: &binance.APIError{Status: 400, Code: -2019, Msg: "Margin is insufficient."}}

	code, _, stderr := runCLI(t, baseArgs(), sub, nil)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "-2019") || !strings.Contains(stderr, "Margin is insufficient") {
		t.Errorf("stderr missing exchange code/msg: %q", stderr)
	}
}

func TestRun_ConnectFailure(t *testing.T) {
	code, _, stderr := runCLI(t, baseArgs(), nil, context.DeadlineExceeded)

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "ORDER FAILED") {
		t.Errorf("stderr missing failure banner: %q", stderr)
	}
}
