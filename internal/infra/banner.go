package infra

import (
	"fmt"
)

// ANSI Color Codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
)

// PrintBanner displays the startup banner with mode-specific warnings.
func PrintBanner(cfg *Config) {
	color := ColorYellow
	mode := "TESTNET (PLAY MONEY)"
	if !cfg.API.Binance.Testnet {
		color = ColorRed
		mode = "MAINNET (REAL MONEY)"
	}

	fmt.Println()
	fmt.Printf("%s###########################################################%s\n", color, ColorReset)
	fmt.Printf("%s#                                                         #%s\n", color, ColorReset)
	fmt.Printf("%s#          🚀 Binance Futures Trading Bot                 #%s\n", color, ColorReset)
	fmt.Printf("%s#                                                         #%s\n", color, ColorReset)
	fmt.Printf("%s#   MODE:    %-36s #%s\n", color, mode, ColorReset)
	fmt.Printf("%s#   VERSION: %-36s #%s\n", color, cfg.App.Version, ColorReset)
	fmt.Printf("%s#                                                         #%s\n", color, ColorReset)

	if !cfg.API.Binance.Testnet {
		fmt.Printf("%s#   ⚠️  WARNING: ORDERS WILL USE REAL FUNDS  ⚠️           #%s\n", ColorRed, ColorReset)
	}

	fmt.Printf("%s###########################################################%s\n", color, ColorReset)
	fmt.Println()
}
