package leads

import (
	"context"
	"errors"
	"fmt"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/pkg/activity"
	"github.com/sannty/salescrm/pkg/phone"
)

// ErrNotFound is returned when a lead does not exist in the caller's organization.
var ErrNotFound = errors.New("lead not found")

// Service handles lead business logic
type Service struct {
	db       *ent.Client
	observer *activity.Observer
}

// NewService creates a new lead service
func NewService(db *ent.Client, observer *activity.Observer) *Service {
	return &Service{db: db, observer: observer}
}

// CreateLeadRequest represents a request to create a lead.
type CreateLeadRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty"`
	Company      string `json:"company,omitempty"`
	Source       string `json:"source,omitempty"`
	AssignedToID *int   `json:"assigned_to,omitempty"`
}

// UpdateLeadRequest represents a partial update to a lead. Nil fields are
// left untouched.
type UpdateLeadRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty"`
	Company      *string `json:"company,omitempty"`
	Source       *string `json:"source,omitempty"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=new contacted qualified converted disqualified"`
	AssignedToID *int    `json:"assigned_to,omitempty"`
}

// Create creates a lead and records the creation on the activity timeline
// within the same transaction. Unassigned leads are assigned to the actor.
func (s *Service) Create(ctx context.Context, orgID, actorID int, req CreateLeadRequest) (*ent.Lead, error) {
	assignedTo := actorID
	if req.AssignedToID != nil {
		assignedTo = *req.AssignedToID
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	created, err := tx.Lead.Create().
		SetOrganizationID(orgID).
		SetName(req.Name).
		SetEmail(req.Email).
		SetPhone(phone.NormalizeOrKeep(req.Phone, "")).
		SetCompany(req.Company).
		SetSource(req.Source).
		SetAssignedToID(assignedTo).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.observer.WithTx(tx).LeadCreated(ctx, created)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lead creation: %w", err)
	}

	return created, nil
}

// Get returns a lead by ID scoped to an organization.
func (s *Service) Get(ctx context.Context, orgID, leadID int) (*ent.Lead, error) {
	l, err := s.db.Lead.Query().
		Where(lead.IDEQ(leadID), lead.OrganizationIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead: %w", err)
	}
	return l, nil
}

// List returns an organization's leads, newest first, optionally filtered by
// status.
func (s *Service) List(ctx context.Context, orgID int, status string, limit, offset int) ([]*ent.Lead, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := s.db.Lead.Query().
		Where(lead.OrganizationIDEQ(orgID))

	if status != "" {
		query = query.Where(lead.StatusEQ(lead.Status(status)))
	}

	return query.
		Order(ent.Desc(lead.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

// Update applies a partial update to a lead. The prior persisted state is
// captured first and compared after the write so that status transitions are
// recorded on the activity timeline inside the same transaction.
func (s *Service) Update(ctx context.Context, orgID, actorID, leadID int, req UpdateLeadRequest) (*ent.Lead, error) {
	previous, err := s.Get(ctx, orgID, leadID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	update := tx.Lead.UpdateOneID(previous.ID)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.Email != nil {
		update = update.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		update = update.SetPhone(phone.NormalizeOrKeep(*req.Phone, ""))
	}
	if req.Company != nil {
		update = update.SetCompany(*req.Company)
	}
	if req.Source != nil {
		update = update.SetSource(*req.Source)
	}
	if req.Status != nil {
		update = update.SetStatus(lead.Status(*req.Status))
	}
	if req.AssignedToID != nil {
		update = update.SetAssignedToID(*req.AssignedToID)
	}

	next, err := update.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	s.observer.WithTx(tx).LeadStatusChanged(ctx, activity.LeadChange{
		Previous: previous,
		Next:     next,
	}, actorID)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit lead update: %w", err)
	}

	return next, nil
}

// UpdateStatus transitions a lead to a new status. Setting the status a lead
// already has is a no-op and produces no activity entry.
func (s *Service) UpdateStatus(ctx context.Context, orgID, actorID, leadID int, status string) (*ent.Lead, error) {
	if err := lead.StatusValidator(lead.Status(status)); err != nil {
		return nil, fmt.Errorf("invalid lead status %q", status)
	}

	current, err := s.Get(ctx, orgID, leadID)
	if err != nil {
		return nil, err
	}
	if current.Status == lead.Status(status) {
		return current, nil
	}

	return s.Update(ctx, orgID, actorID, leadID, UpdateLeadRequest{Status: &status})
}

// Delete removes a lead from an organization.
func (s *Service) Delete(ctx context.Context, orgID, leadID int) error {
	affected, err := s.db.Lead.Delete().
		Where(lead.IDEQ(leadID), lead.OrganizationIDEQ(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
