package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/account"
)

// ErrNotFound is returned when an account does not exist in the caller's
// organization.
var ErrNotFound = errors.New("account not found")

// Service handles account business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new account service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name     string `json:"name" validate:"required"`
	Industry string `json:"industry,omitempty"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
}

// UpdateAccountRequest represents a partial update. Nil fields are left
// untouched.
type UpdateAccountRequest struct {
	Name     *string `json:"name,omitempty"`
	Industry *string `json:"industry,omitempty"`
	Website  *string `json:"website,omitempty" validate:"omitempty,url"`
}

// Create creates an account in an organization.
func (s *Service) Create(ctx context.Context, orgID int, req CreateAccountRequest) (*ent.Account, error) {
	created, err := s.db.Account.Create().
		SetOrganizationID(orgID).
		SetName(req.Name).
		SetIndustry(req.Industry).
		SetWebsite(req.Website).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return created, nil
}

// Get returns an account by ID with its contacts, scoped to an organization.
func (s *Service) Get(ctx context.Context, orgID, accountID int) (*ent.Account, error) {
	a, err := s.db.Account.Query().
		Where(account.IDEQ(accountID), account.OrganizationIDEQ(orgID)).
		WithContacts().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return a, nil
}

// List returns an organization's accounts ordered by name.
func (s *Service) List(ctx context.Context, orgID int, limit, offset int) ([]*ent.Account, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	return s.db.Account.Query().
		Where(account.OrganizationIDEQ(orgID)).
		Order(ent.Asc(account.FieldName)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

// Update applies a partial update to an account.
func (s *Service) Update(ctx context.Context, orgID, accountID int, req UpdateAccountRequest) (*ent.Account, error) {
	a, err := s.Get(ctx, orgID, accountID)
	if err != nil {
		return nil, err
	}

	update := s.db.Account.UpdateOneID(a.ID)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.Industry != nil {
		update = update.SetIndustry(*req.Industry)
	}
	if req.Website != nil {
		update = update.SetWebsite(*req.Website)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return updated, nil
}

// Delete removes an account from an organization.
func (s *Service) Delete(ctx context.Context, orgID, accountID int) error {
	affected, err := s.db.Account.Delete().
		Where(account.IDEQ(accountID), account.OrganizationIDEQ(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
