package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/app"
)

// QuoteHandler serves the quote endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// GetRandomQuote handles GET /quote.
//
// @Summary Get a random quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quote [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.RandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuote(*quote))
}

// SaveQuote handles POST /quote and answers with the whole saved list.
//
// @Summary Save a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.SaveQuoteRequest true "Quote to save"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /quote [post]
func (h *QuoteHandler) SaveQuote(c *gin.Context) {
	quote, err := dto.BindQuote(c)
	if err != nil {
		dto.HandleSaveError(c, err)
		return
	}

	saved, err := h.service.SaveQuote(c.Request.Context(), quote)
	if err != nil {
		dto.HandleSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotes(saved))
}

// ListSavedQuotes handles GET /quote/saved.
//
// @Summary List saved quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /quote/saved [get]
func (h *QuoteHandler) ListSavedQuotes(c *gin.Context) {
	saved, err := h.service.SavedQuotes(c.Request.Context())
	if err != nil {
		dto.HandleSaveError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuotes(saved))
}

// RegisterQuoteRoutes registers the quote routes on rg.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quote")
	quotes.GET("", h.GetRandomQuote)
	quotes.POST("", h.SaveQuote)
	quotes.GET("/saved", h.ListSavedQuotes)
}
