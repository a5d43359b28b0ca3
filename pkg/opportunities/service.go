package opportunities

import (
	"context"
	"errors"
	"fmt"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/pkg/activity"
)

// ErrNotFound is returned when an opportunity does not exist in the caller's
// organization.
var ErrNotFound = errors.New("opportunity not found")

// Service handles opportunity business logic
type Service struct {
	db       *ent.Client
	observer *activity.Observer
}

// NewService creates a new opportunity service
func NewService(db *ent.Client, observer *activity.Observer) *Service {
	return &Service{db: db, observer: observer}
}

// CreateOpportunityRequest represents a request to create an opportunity.
type CreateOpportunityRequest struct {
	Name      string  `json:"name" validate:"required"`
	AccountID int     `json:"account_id" validate:"required"`
	ContactID *int    `json:"contact_id,omitempty"`
	Amount    float64 `json:"amount" validate:"gte=0"`
	Stage     string  `json:"stage,omitempty" validate:"omitempty,oneof=qualification proposal negotiation won lost"`
	OwnerID   *int    `json:"owner_id,omitempty"`
}

// UpdateOpportunityRequest represents a partial update. Nil fields are left
// untouched.
type UpdateOpportunityRequest struct {
	Name      *string  `json:"name,omitempty"`
	ContactID *int     `json:"contact_id,omitempty"`
	Amount    *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Stage     *string  `json:"stage,omitempty" validate:"omitempty,oneof=qualification proposal negotiation won lost"`
	OwnerID   *int     `json:"owner_id,omitempty"`
}

// Create creates an opportunity and records it on the activity timeline in
// the same transaction. Unowned opportunities default to the actor.
func (s *Service) Create(ctx context.Context, orgID, actorID int, req CreateOpportunityRequest) (*ent.Opportunity, error) {
	ownerID := actorID
	if req.OwnerID != nil {
		ownerID = *req.OwnerID
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	create := tx.Opportunity.Create().
		SetOrganizationID(orgID).
		SetAccountID(req.AccountID).
		SetName(req.Name).
		SetAmount(req.Amount).
		SetOwnerID(ownerID)
	if req.ContactID != nil {
		create = create.SetContactID(*req.ContactID)
	}
	if req.Stage != "" {
		create = create.SetStage(opportunity.Stage(req.Stage))
	}

	created, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	s.observer.WithTx(tx).OpportunityCreated(ctx, created, actorID)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit opportunity creation: %w", err)
	}

	return created, nil
}

// Get returns an opportunity by ID scoped to an organization.
func (s *Service) Get(ctx context.Context, orgID, oppID int) (*ent.Opportunity, error) {
	opp, err := s.db.Opportunity.Query().
		Where(opportunity.IDEQ(oppID), opportunity.OrganizationIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch opportunity: %w", err)
	}
	return opp, nil
}

// List returns an organization's opportunities, newest first, optionally
// filtered by stage.
func (s *Service) List(ctx context.Context, orgID int, stage string, limit, offset int) ([]*ent.Opportunity, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := s.db.Opportunity.Query().
		Where(opportunity.OrganizationIDEQ(orgID))

	if stage != "" {
		query = query.Where(opportunity.StageEQ(opportunity.Stage(stage)))
	}

	return query.
		Order(ent.Desc(opportunity.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

// Update applies a partial update. The prior state is captured before the
// write so that stage transitions and significant amount changes land on the
// activity timeline within the same transaction.
func (s *Service) Update(ctx context.Context, orgID, actorID, oppID int, req UpdateOpportunityRequest) (*ent.Opportunity, error) {
	previous, err := s.Get(ctx, orgID, oppID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	update := tx.Opportunity.UpdateOneID(previous.ID)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.ContactID != nil {
		update = update.SetContactID(*req.ContactID)
	}
	if req.Amount != nil {
		update = update.SetAmount(*req.Amount)
	}
	if req.Stage != nil {
		update = update.SetStage(opportunity.Stage(*req.Stage))
	}
	if req.OwnerID != nil {
		update = update.SetOwnerID(*req.OwnerID)
	}

	next, err := update.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update opportunity: %w", err)
	}

	change := activity.OpportunityChange{Previous: previous, Next: next}
	observer := s.observer.WithTx(tx)
	observer.OpportunityStageChanged(ctx, change, actorID)
	observer.OpportunityAmountChanged(ctx, change, actorID)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit opportunity update: %w", err)
	}

	return next, nil
}

// Delete removes an opportunity from an organization.
func (s *Service) Delete(ctx context.Context, orgID, oppID int) error {
	affected, err := s.db.Opportunity.Delete().
		Where(opportunity.IDEQ(oppID), opportunity.OrganizationIDEQ(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete opportunity: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// PipelineValue sums the amounts of an organization's open opportunities,
// excluding won and lost deals.
func (s *Service) PipelineValue(ctx context.Context, orgID int) (float64, error) {
	open, err := s.db.Opportunity.Query().
		Where(
			opportunity.OrganizationIDEQ(orgID),
			opportunity.StageNotIn(opportunity.StageWon, opportunity.StageLost),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query pipeline: %w", err)
	}

	var total float64
	for _, opp := range open {
		total += opp.Amount
	}
	return total, nil
}
