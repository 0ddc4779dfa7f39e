package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/vasudhaxkale/binance-trading-bot/internal/bot"
	"github.com/vasudhaxkale/binance-trading-bot/internal/domain"
	"github.com/vasudhaxkale/binance-trading-bot/internal/infra"
)

// Options holds the parsed command-line flags.
type Options struct {
	APIKey    string
	APISecret string
	Symbol    string
	Side      string
	Type      string
	Quantity  string
	Price     string
	StopPrice string
	Testnet   bool
}

// connectFunc is swapped out in tests.
type connectFunc func(ctx context.Context, apiKey, apiSecret string, testnet bool) (submitter, error)

type submitter interface {
	PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error)
}

func defaultConnect(ctx context.Context, apiKey, apiSecret string, testnet bool) (submitter, error) {
	return bot.Connect(ctx, apiKey, apiSecret, testnet)
}

// Parse reads the order flags. Credentials fall back to the config
// (which already carries the env overrides).
func Parse(args []string, cfg *infra.Config, stderr io.Writer) (*Options, error) {
	fs := flag.NewFlagSet("bot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &Options{}
	fs.StringVar(&opts.APIKey, "api-key", cfg.API.Binance.APIKey, "API Key")
	fs.StringVar(&opts.APISecret, "api-secret", cfg.API.Binance.APISecret, "API Secret")
	fs.StringVar(&opts.Symbol, "symbol", "", "Trading symbol (e.g. BTCUSDT)")
	fs.StringVar(&opts.Side, "side", "", "Order side: BUY or SELL")
	fs.StringVar(&opts.Type, "type", "MARKET", "Order type: MARKET, LIMIT or STOP_LIMIT")
	fs.StringVar(&opts.Quantity, "quantity", "", "Order quantity")
	fs.StringVar(&opts.Price, "price", "", "Order price (required for LIMIT/STOP_LIMIT)")
	fs.StringVar(&opts.StopPrice, "stop-price", "", "Stop price (required for STOP_LIMIT)")
	fs.BoolVar(&opts.Testnet, "testnet", cfg.API.Binance.Testnet, "Use the futures testnet")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.APIKey == "" || opts.APISecret == "" {
		return nil, fmt.Errorf("API credentials are required (flags or BINANCE_API_KEY/BINANCE_API_SECRET)")
	}
	return opts, nil
}

// buildRequest maps the flag strings onto a typed order request.
func buildRequest(opts *Options) (domain.OrderRequest, error) {
	qty, err := decimal.NewFromString(opts.Quantity)
	if err != nil {
		return domain.OrderRequest{}, &domain.ValidationError{Field: "quantity", Reason: "must be a number"}
	}
	side := domain.Side(opts.Side)

	switch domain.OrderType(opts.Type) {
	case domain.OrderTypeMarket:
		return domain.NewMarketOrder(opts.Symbol, side, qty), nil
	case domain.OrderTypeLimit:
		price, err := parseFlagPrice(opts.Price, "price")
		if err != nil {
			return domain.OrderRequest{}, err
		}
		return domain.NewLimitOrder(opts.Symbol, side, qty, price), nil
	case domain.OrderTypeStopLimit:
		price, err := parseFlagPrice(opts.Price, "price")
		if err != nil {
			return domain.OrderRequest{}, err
		}
		stop, err := parseFlagPrice(opts.StopPrice, "stop-price")
		if err != nil {
			return domain.OrderRequest{}, err
		}
		return domain.NewStopLimitOrder(opts.Symbol, side, qty, price, stop), nil
	}
	return domain.OrderRequest{}, &domain.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown order type %q", opts.Type)}
}

func parseFlagPrice(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, &domain.ValidationError{Field: field, Reason: "required for this order type"}
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &domain.ValidationError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}

// Run executes one order placement. Returns the process exit code.
func Run(ctx context.Context, args []string, cfg *infra.Config, stdout, stderr io.Writer) int {
	return run(ctx, args, cfg, stdout, stderr, defaultConnect)
}

func run(ctx context.Context, args []string, cfg *infra.Config, stdout, stderr io.Writer, connect connectFunc) int {
	opts, err := Parse(args, cfg, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return 1
	}

	req, err := buildRequest(opts)
	if err != nil {
		fmt.Fprintf(stderr, "❌ ORDER FAILED: %v\n", err)
		return 1
	}
	if err := req.Validate(); err != nil {
		fmt.Fprintf(stderr, "❌ ORDER FAILED: %v\n", err)
		return 1
	}

	b, err := connect(ctx, opts.APIKey, opts.APISecret, opts.Testnet)
	if err != nil {
		fmt.Fprintf(stderr, "❌ ORDER FAILED: %v\n", err)
		return 1
	}

	result, err := b.PlaceOrder(ctx, req)
	if err != nil {
		fmt.Fprintf(stderr, "❌ ORDER FAILED: %v\n", err)
		return 1
	}

	printResult(stdout, result)
	return 0
}

func printResult(w io.Writer, r *domain.OrderResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "✅ ORDER EXECUTED SUCCESSFULLY")
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "Order ID:      %d\n", r.OrderID)
	fmt.Fprintf(w, "Symbol:        %s\n", r.Symbol)
	fmt.Fprintf(w, "Side:          %s\n", r.Side)
	fmt.Fprintf(w, "Type:          %s\n", r.Type)
	fmt.Fprintf(w, "Quantity:      %s\n", r.OrigQty)
	if r.Price != "" && r.Price != "0" {
		fmt.Fprintf(w, "Price:         %s\n", r.Price)
	}
	if r.StopPrice != "" && r.StopPrice != "0" {
		fmt.Fprintf(w, "Stop Price:    %s\n", r.StopPrice)
	}
	fmt.Fprintf(w, "Status:        %s\n", r.Status)
	fmt.Fprintf(w, "Executed Qty:  %s\n", r.ExecutedQty)
	fmt.Fprintln(w, "========================================")
}
