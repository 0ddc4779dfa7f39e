package binance

import "fmt"

// APIError is an order rejection or any other error reply from the exchange.
// Code and Msg carry the exchange's {"code":...,"msg":"..."} body verbatim.
type APIError struct {
	Status int
	Code   int64
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance: code=%d msg=%q (http %d)", e.Code, e.Msg, e.Status)
}

// apiErrorBody matches the JSON error body of every fapi endpoint.
type apiErrorBody struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

// orderResponse matches POST /fapi/v1/order with newOrderRespType=RESULT.
type orderResponse struct {
	OrderID       int64  `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Symbol        string `json:"symbol"`
	Side          string `json:"side"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	Price         string `json:"price"`
	StopPrice     string `json:"stopPrice"`
	TimeInForce   string `json:"timeInForce"`
	UpdateTime    int64  `json:"updateTime"`
}

// balanceEntry matches one element of GET /fapi/v2/balance.
type balanceEntry struct {
	AccountAlias     string `json:"accountAlias"`
	Asset            string `json:"asset"`
	Balance          string `json:"balance"`
	AvailableBalance string `json:"availableBalance"`
}
