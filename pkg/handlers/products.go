package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sannty/salescrm/pkg/models"
	"github.com/sannty/salescrm/pkg/products"
)

// ProductHandler handles product catalog HTTP endpoints. Write routes are
// mounted behind the admin/manager role middleware.
type ProductHandler struct {
	products  *products.Service
	validator *validator.Validate
}

// NewProductHandler creates a new product handler
func NewProductHandler(productSvc *products.Service) *ProductHandler {
	return &ProductHandler{products: productSvc, validator: validator.New()}
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body products.CreateProductRequest true "Product data"
// @Success 201 {object} ent.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	var req products.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, _ := requestScope(c)
	created, err := h.products.Create(ctx, orgID, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create product"})
	}

	return c.JSON(http.StatusCreated, created)
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active products"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} ent.Product
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	orgID, _ := requestScope(c)
	activeOnly := c.QueryParam("active") == "true"
	result, err := h.products.List(ctx, orgID, activeOnly, queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list products"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} ent.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid product ID"})
	}

	orgID, _ := requestScope(c)
	p, err := h.products.Get(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch product"})
	}

	return c.JSON(http.StatusOK, p)
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body products.UpdateProductRequest true "Fields to update"
// @Success 200 {object} ent.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid product ID"})
	}

	var req products.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed", Message: err.Error()})
	}

	orgID, _ := requestScope(c)
	updated, err := h.products.Update(ctx, orgID, id, req)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update product"})
	}

	return c.JSON(http.StatusOK, updated)
}

// RetireProduct godoc
// @Summary Retire a product
// @Description Deactivates the product so it cannot be quoted; existing line items keep their captured price
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} ent.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) RetireProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid product ID"})
	}

	orgID, _ := requestScope(c)
	p, err := h.products.Retire(ctx, orgID, id)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to retire product"})
	}

	return c.JSON(http.StatusOK, p)
}
