package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/product"
)

// ErrNotFound is returned when a product does not exist in the caller's
// organization.
var ErrNotFound = errors.New("product not found")

// Service handles product catalog logic. Write access is restricted to
// admins and managers at the handler layer.
type Service struct {
	db *ent.Client
}

// NewService creates a new product service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CreateProductRequest represents a request to create a product.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	Currency    string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// UpdateProductRequest represents a partial update. Nil fields are left
// untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// Create creates a product in an organization's catalog.
func (s *Service) Create(ctx context.Context, orgID int, req CreateProductRequest) (*ent.Product, error) {
	create := s.db.Product.Create().
		SetOrganizationID(orgID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetPrice(req.Price)
	if req.Currency != "" {
		create = create.SetCurrency(req.Currency)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// Get returns a product by ID scoped to an organization.
func (s *Service) Get(ctx context.Context, orgID, productID int) (*ent.Product, error) {
	p, err := s.db.Product.Query().
		Where(product.IDEQ(productID), product.OrganizationIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return p, nil
}

// List returns an organization's products ordered by name. When activeOnly
// is set, retired products are excluded.
func (s *Service) List(ctx context.Context, orgID int, activeOnly bool, limit, offset int) ([]*ent.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := s.db.Product.Query().
		Where(product.OrganizationIDEQ(orgID))
	if activeOnly {
		query = query.Where(product.IsActiveEQ(true))
	}

	return query.
		Order(ent.Asc(product.FieldName)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

// Update applies a partial update to a product. Price changes do not touch
// existing quote line items, which carry their own captured unit price.
func (s *Service) Update(ctx context.Context, orgID, productID int, req UpdateProductRequest) (*ent.Product, error) {
	p, err := s.Get(ctx, orgID, productID)
	if err != nil {
		return nil, err
	}

	update := s.db.Product.UpdateOneID(p.ID)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.Price != nil {
		update = update.SetPrice(*req.Price)
	}
	if req.IsActive != nil {
		update = update.SetIsActive(*req.IsActive)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

// Retire deactivates a product instead of deleting it, so line items on
// existing quotes keep their reference.
func (s *Service) Retire(ctx context.Context, orgID, productID int) (*ent.Product, error) {
	inactive := false
	return s.Update(ctx, orgID, productID, UpdateProductRequest{IsActive: &inactive})
}
