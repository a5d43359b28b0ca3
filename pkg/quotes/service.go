package quotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/product"
	"github.com/sannty/salescrm/ent/quote"
	"github.com/sannty/salescrm/ent/quotelineitem"
	"github.com/sannty/salescrm/pkg/activity"
)

var (
	// ErrNotFound is returned when a quote does not exist in the caller's
	// organization.
	ErrNotFound = errors.New("quote not found")
	// ErrLineItemNotFound is returned when a line item does not belong to
	// the given quote.
	ErrLineItemNotFound = errors.New("quote line item not found")
	// ErrProductUnavailable is returned when a line item references a
	// product outside the organization or an inactive one.
	ErrProductUnavailable = errors.New("product not available")
)

// Service handles quote business logic
type Service struct {
	db       *ent.Client
	observer *activity.Observer
}

// NewService creates a new quote service
func NewService(db *ent.Client, observer *activity.Observer) *Service {
	return &Service{db: db, observer: observer}
}

// CreateQuoteRequest represents a request to create a quote.
type CreateQuoteRequest struct {
	OpportunityID int    `json:"opportunity_id" validate:"required"`
	Title         string `json:"title" validate:"required"`
}

// LineItemRequest represents a request to add or change a quote line item.
// Quantity must be positive; a zero unit price means "use the product's
// current price".
type LineItemRequest struct {
	ProductID int     `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// Create creates a quote for an opportunity and records it on the activity
// timeline within the same transaction.
func (s *Service) Create(ctx context.Context, orgID, actorID int, req CreateQuoteRequest) (*ent.Quote, error) {
	opp, err := s.db.Opportunity.Get(ctx, req.OpportunityID)
	if err != nil || opp.OrganizationID != orgID {
		return nil, fmt.Errorf("opportunity %d not found", req.OpportunityID)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	created, err := tx.Quote.Create().
		SetOrganizationID(orgID).
		SetOpportunityID(opp.ID).
		SetTitle(req.Title).
		SetCreatedByID(actorID).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	s.observer.WithTx(tx).QuoteCreated(ctx, created, opp)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit quote creation: %w", err)
	}

	return created, nil
}

// Get returns a quote with its line items, scoped to an organization.
func (s *Service) Get(ctx context.Context, orgID, quoteID int) (*ent.Quote, error) {
	q, err := s.db.Quote.Query().
		Where(quote.IDEQ(quoteID), quote.OrganizationIDEQ(orgID)).
		WithLineItems().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	return q, nil
}

// List returns an organization's quotes, newest first, optionally filtered
// to one opportunity.
func (s *Service) List(ctx context.Context, orgID int, opportunityID *int, limit, offset int) ([]*ent.Quote, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := s.db.Quote.Query().
		Where(quote.OrganizationIDEQ(orgID))
	if opportunityID != nil {
		query = query.Where(quote.OpportunityIDEQ(*opportunityID))
	}

	return query.
		Order(ent.Desc(quote.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

// AddLineItem adds a line item and refreshes the quote's cached total in the
// same transaction. When the request carries no unit price the product's
// current price is captured, so later product price changes do not move
// existing quotes.
func (s *Service) AddLineItem(ctx context.Context, orgID, quoteID int, req LineItemRequest) (*ent.Quote, error) {
	q, err := s.Get(ctx, orgID, quoteID)
	if err != nil {
		return nil, err
	}

	p, err := s.db.Product.Query().
		Where(product.IDEQ(req.ProductID), product.OrganizationIDEQ(orgID), product.IsActiveEQ(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrProductUnavailable
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	unitPrice := req.UnitPrice
	if unitPrice == 0 {
		unitPrice = p.Price
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	_, err = tx.QuoteLineItem.Create().
		SetOrganizationID(orgID).
		SetQuoteID(q.ID).
		SetProductID(p.ID).
		SetQuantity(req.Quantity).
		SetUnitPrice(unitPrice).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to add line item: %w", err)
	}

	if err := recalculate(ctx, tx, q.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit line item: %w", err)
	}

	return s.Get(ctx, orgID, quoteID)
}

// UpdateLineItem changes a line item's quantity or unit price and refreshes
// the cached total in the same transaction.
func (s *Service) UpdateLineItem(ctx context.Context, orgID, quoteID, itemID int, quantity int, unitPrice float64) (*ent.Quote, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	q, err := s.Get(ctx, orgID, quoteID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	affected, err := tx.QuoteLineItem.Update().
		Where(quotelineitem.IDEQ(itemID), quotelineitem.QuoteIDEQ(q.ID)).
		SetQuantity(quantity).
		SetUnitPrice(unitPrice).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update line item: %w", err)
	}
	if affected == 0 {
		tx.Rollback()
		return nil, ErrLineItemNotFound
	}

	if err := recalculate(ctx, tx, q.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit line item update: %w", err)
	}

	return s.Get(ctx, orgID, quoteID)
}

// DeleteLineItem removes a line item and refreshes the cached total in the
// same transaction.
func (s *Service) DeleteLineItem(ctx context.Context, orgID, quoteID, itemID int) (*ent.Quote, error) {
	q, err := s.Get(ctx, orgID, quoteID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	affected, err := tx.QuoteLineItem.Delete().
		Where(quotelineitem.IDEQ(itemID), quotelineitem.QuoteIDEQ(q.ID)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to delete line item: %w", err)
	}
	if affected == 0 {
		tx.Rollback()
		return nil, ErrLineItemNotFound
	}

	if err := recalculate(ctx, tx, q.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit line item deletion: %w", err)
	}

	return s.Get(ctx, orgID, quoteID)
}

// RecalculateTotal re-sums a quote's line items and stores the result. The
// per-item mutations already keep the total fresh; this exists for repair
// after out-of-band writes and is safe to run any number of times.
func (s *Service) RecalculateTotal(ctx context.Context, orgID, quoteID int) (*ent.Quote, error) {
	q, err := s.Get(ctx, orgID, quoteID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	if err := recalculate(ctx, tx, q.ID); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit recalculation: %w", err)
	}

	return s.Get(ctx, orgID, quoteID)
}

// recalculate replaces the quote's cached total with a full re-sum of its
// line items, never an increment. A quote with no items goes back to zero.
func recalculate(ctx context.Context, tx *ent.Tx, quoteID int) error {
	items, err := tx.QuoteLineItem.Query().
		Where(quotelineitem.QuoteIDEQ(quoteID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load line items: %w", err)
	}

	var total float64
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}

	if err := tx.Quote.UpdateOneID(quoteID).SetTotalPrice(total).Exec(ctx); err != nil {
		return fmt.Errorf("failed to store quote total: %w", err)
	}
	return nil
}
