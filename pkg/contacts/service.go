package contacts

import (
	"context"
	"errors"
	"fmt"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/contact"
	"github.com/sannty/salescrm/pkg/phone"
)

// ErrNotFound is returned when a contact does not exist in the caller's
// organization.
var ErrNotFound = errors.New("contact not found")

// Service handles contact business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new contact service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CreateContactRequest represents a request to create a contact.
type CreateContactRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Title     string `json:"title,omitempty"`
	AccountID *int   `json:"account_id,omitempty"`
}

// UpdateContactRequest represents a partial update. Nil fields are left
// untouched.
type UpdateContactRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	Title     *string `json:"title,omitempty"`
	AccountID *int    `json:"account_id,omitempty"`
}

// Create creates a contact in an organization.
func (s *Service) Create(ctx context.Context, orgID int, req CreateContactRequest) (*ent.Contact, error) {
	create := s.db.Contact.Create().
		SetOrganizationID(orgID).
		SetName(req.Name).
		SetEmail(req.Email).
		SetPhone(phone.NormalizeOrKeep(req.Phone, "")).
		SetTitle(req.Title)
	if req.AccountID != nil {
		create = create.SetAccountID(*req.AccountID)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return created, nil
}

// Get returns a contact by ID scoped to an organization.
func (s *Service) Get(ctx context.Context, orgID, contactID int) (*ent.Contact, error) {
	c, err := s.db.Contact.Query().
		Where(contact.IDEQ(contactID), contact.OrganizationIDEQ(orgID)).
		WithAccount().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch contact: %w", err)
	}
	return c, nil
}

// List returns an organization's contacts ordered by name, optionally
// filtered by account.
func (s *Service) List(ctx context.Context, orgID int, accountID *int, limit, offset int) ([]*ent.Contact, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := s.db.Contact.Query().
		Where(contact.OrganizationIDEQ(orgID))
	if accountID != nil {
		query = query.Where(contact.AccountIDEQ(*accountID))
	}

	return query.
		Order(ent.Asc(contact.FieldName)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

// Update applies a partial update to a contact.
func (s *Service) Update(ctx context.Context, orgID, contactID int, req UpdateContactRequest) (*ent.Contact, error) {
	c, err := s.Get(ctx, orgID, contactID)
	if err != nil {
		return nil, err
	}

	update := s.db.Contact.UpdateOneID(c.ID)
	if req.Name != nil {
		update = update.SetName(*req.Name)
	}
	if req.Email != nil {
		update = update.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		update = update.SetPhone(phone.NormalizeOrKeep(*req.Phone, ""))
	}
	if req.Title != nil {
		update = update.SetTitle(*req.Title)
	}
	if req.AccountID != nil {
		update = update.SetAccountID(*req.AccountID)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return updated, nil
}

// Delete removes a contact from an organization.
func (s *Service) Delete(ctx context.Context, orgID, contactID int) error {
	affected, err := s.db.Contact.Delete().
		Where(contact.IDEQ(contactID), contact.OrganizationIDEQ(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
