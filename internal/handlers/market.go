package handlers

import (
	"net/http"

	"tradesense/internal/services/market"

	"github.com/gin-gonic/gin"
)

// MarketHandler handles market data HTTP requests
type MarketHandler struct {
	quoteService market.QuoteServiceInterface
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(quoteService market.QuoteServiceInterface) *MarketHandler {
	return &MarketHandler{
		quoteService: quoteService,
	}
}

// GetQuote handles HTTP requests for a symbol's current price
// @Summary Get Quote
// @Description Get the current price for a symbol
// @Tags market
// @Produce json
// @Param symbol path string true "Symbol (e.g. BTC-USD, AAPL)"
// @Success 200 {object} map[string]interface{} "Current price"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /market/quote/{symbol} [get]
func (mh *MarketHandler) GetQuote(c *gin.Context) {
	symbol := c.Param("symbol")

	price, err := mh.quoteService.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol": symbol,
		"price":  price,
	})
}

// GetSupportedSymbols handles HTTP requests for the tradable symbol list
// @Summary Get Supported Symbols
// @Description Get the symbols the terminal can trade
// @Tags market
// @Produce json
// @Success 200 {object} map[string]interface{} "Supported symbols"
// @Router /market/symbols [get]
func (mh *MarketHandler) GetSupportedSymbols(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"symbols": mh.quoteService.GetSupportedSymbols(),
	})
}
