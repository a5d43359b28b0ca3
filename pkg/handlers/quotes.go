package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/pkg/models"
	"github.com/sannty/salescrm/pkg/quotes"
)

// QuoteHandler handles quote HTTP endpoints
type QuoteHandler struct {
	quotes    *quotes.Service
	validator *validator.Validate
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteSvc *quotes.Service) *QuoteHandler {
	return &QuoteHandler{quotes: quoteSvc, validator: validator.New()}
}

// updateLineItemRequest carries a line item change.
type updateLineItemRequest struct {
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// CreateQuote godoc
// @Summary Create a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body quotes.CreateQuoteRequest true "Quote data"
// @Success 201 {object} ent.Quote
// @Failure 400 {object} models.ErrorResponse
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req quotes.CreateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, userID := requestScope(c)
	created, err := h.quotes.Create(ctx, orgID, userID, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create quote"})
	}

	return c.JSON(http.StatusCreated, created)
}

// ListQuotes godoc
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param opportunity_id query int false "Filter by opportunity"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} ent.Quote
// @Router /quotes [get]
func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	result, err := h.quotes.List(ctx, orgID, queryIntPtr(c, "opportunity_id"), queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list quotes"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetQuote godoc
// @Summary Get a quote with its line items
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quote ID"
// @Success 200 {object} ent.Quote
// @Failure 404 {object} models.ErrorResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid quote ID"})
	}

	orgID, _ := requestScope(c)
	q, err := h.quotes.Get(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, quotes.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Quote not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch quote"})
	}

	return c.JSON(http.StatusOK, q)
}

// AddLineItem godoc
// @Summary Add a line item to a quote
// @Description Adds the item and refreshes the quote total in one transaction
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quote ID"
// @Param request body quotes.LineItemRequest true "Line item data"
// @Success 200 {object} ent.Quote
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /quotes/{id}/items [post]
func (h *QuoteHandler) AddLineItem(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid quote ID"})
	}

	var req quotes.LineItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, _ := requestScope(c)
	q, err := h.quotes.AddLineItem(ctx, orgID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, quotes.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Quote not found"})
		case errors.Is(err, quotes.ErrProductUnavailable):
			return c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: "Product not available"})
		default:
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to add line item"})
		}
	}

	return c.JSON(http.StatusOK, q)
}

// UpdateLineItem godoc
// @Summary Update a quote line item
// @Description Changes the item and refreshes the quote total in one transaction
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quote ID"
// @Param itemId path int true "Line item ID"
// @Param request body handlers.updateLineItemRequest true "Line item change"
// @Success 200 {object} ent.Quote
// @Failure 404 {object} models.ErrorResponse
// @Router /quotes/{id}/items/{itemId} [put]
func (h *QuoteHandler) UpdateLineItem(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid quote ID"})
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid line item ID"})
	}

	var req updateLineItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, _ := requestScope(c)
	q, err := h.quotes.UpdateLineItem(ctx, orgID, id, itemID, req.Quantity, req.UnitPrice)
	if err != nil {
		switch {
		case errors.Is(err, quotes.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Quote not found"})
		case errors.Is(err, quotes.ErrLineItemNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Line item not found"})
		default:
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update line item"})
		}
	}

	return c.JSON(http.StatusOK, q)
}

// DeleteLineItem godoc
// @Summary Delete a quote line item
// @Description Removes the item and refreshes the quote total in one transaction
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quote ID"
// @Param itemId path int true "Line item ID"
// @Success 200 {object} ent.Quote
// @Failure 404 {object} models.ErrorResponse
// @Router /quotes/{id}/items/{itemId} [delete]
func (h *QuoteHandler) DeleteLineItem(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid quote ID"})
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid line item ID"})
	}

	orgID, _ := requestScope(c)
	q, err := h.quotes.DeleteLineItem(ctx, orgID, id, itemID)
	if err != nil {
		switch {
		case errors.Is(err, quotes.ErrNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Quote not found"})
		case errors.Is(err, quotes.ErrLineItemNotFound):
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Line item not found"})
		default:
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete line item"})
		}
	}

	return c.JSON(http.StatusOK, q)
}

// RecalculateQuote godoc
// @Summary Recalculate a quote total
// @Description Re-sums the line items and stores the result; safe to repeat
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quote ID"
// @Success 200 {object} ent.Quote
// @Failure 404 {object} models.ErrorResponse
// @Router /quotes/{id}/recalculate [post]
func (h *QuoteHandler) RecalculateQuote(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid quote ID"})
	}

	orgID, _ := requestScope(c)
	q, err := h.quotes.RecalculateTotal(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, quotes.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Quote not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to recalculate quote"})
	}

	return c.JSON(http.StatusOK, q)
}
