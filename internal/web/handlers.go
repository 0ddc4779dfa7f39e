package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vasudhaxkale/binance-trading-bot/internal/bot"
	"github.com/vasudhaxkale/binance-trading-bot/internal/domain"
	"github.com/vasudhaxkale/binance-trading-bot/internal/infra/binance"
)

// Submitter is the slice of the bot pipeline the handler needs.
type Submitter interface {
	PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error)
}

// ConnectFunc builds a submitter for the credentials typed into the form.
// Swapped out in tests.
type ConnectFunc func(ctx context.Context, apiKey, apiSecret string, testnet bool) (Submitter, error)

func defaultConnect(ctx context.Context, apiKey, apiSecret string, testnet bool) (Submitter, error) {
	return bot.Connect(ctx, apiKey, apiSecret, testnet)
}

// OrderHandler serves the order form endpoints.
type OrderHandler struct {
	Connect   ConnectFunc
	Validator *validator.Validate
	Testnet   bool
}

func NewOrderHandler(testnet bool) *OrderHandler {
	return &OrderHandler{
		Connect:   defaultConnect,
		Validator: validator.New(),
		Testnet:   testnet,
	}
}

func formatValidationError(err error) map[string]string {
	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			fields[e.Field()] = "failed on tag '" + e.Tag() + "'"
		}
	}
	return fields
}

// GET /
func (h *OrderHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// POST /api/orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var form OrderForm

	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Validator.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"validation_errors": formatValidationError(err)})
		return
	}

	req, err := form.ToOrderRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.Connect(c.Request.Context(), form.APIKey, form.APISecret, h.Testnet)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	result, err := b.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		var apiErr *binance.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": apiErr.Error(),
				"code":  apiErr.Code,
				"msg":   apiErr.Msg,
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
