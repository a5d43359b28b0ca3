package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/user"
)

var (
	// ErrNotFound is returned when an organization does not exist.
	ErrNotFound = errors.New("organization not found")
	// ErrAlreadyMember is returned when a user already belongs to an
	// organization.
	ErrAlreadyMember = errors.New("user already belongs to an organization")
)

// Service handles organization membership
type Service struct {
	db *ent.Client
}

// NewService creates a new organization service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// CreateRequest represents a request to create an organization.
type CreateRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description,omitempty"`
}

// Create creates an organization and makes the creating user its admin, in
// one transaction.
func (s *Service) Create(ctx context.Context, creatorID int, req CreateRequest) (*ent.Organization, error) {
	creator, err := s.db.User.Get(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if creator.OrganizationID != nil {
		return nil, ErrAlreadyMember
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	org, err := tx.Organization.Create().
		SetName(req.Name).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	if err := tx.User.UpdateOneID(creatorID).
		SetOrganizationID(org.ID).
		SetRole(user.RoleAdmin).
		Exec(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to attach creator: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit organization creation: %w", err)
	}

	return org, nil
}

// Get returns an organization by ID.
func (s *Service) Get(ctx context.Context, orgID int) (*ent.Organization, error) {
	org, err := s.db.Organization.Get(ctx, orgID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch organization: %w", err)
	}
	return org, nil
}

// Members lists an organization's users.
func (s *Service) Members(ctx context.Context, orgID int) ([]*ent.User, error) {
	return s.db.User.Query().
		Where(user.OrganizationIDEQ(orgID)).
		Order(ent.Asc(user.FieldUsername)).
		All(ctx)
}

// AddMember attaches a user to an organization with the given role. Users
// already belonging to an organization are rejected.
func (s *Service) AddMember(ctx context.Context, orgID, userID int, role string) (*ent.User, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u.OrganizationID != nil {
		return nil, ErrAlreadyMember
	}
	if err := user.RoleValidator(user.Role(role)); err != nil {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	updated, err := s.db.User.UpdateOneID(userID).
		SetOrganizationID(orgID).
		SetRole(user.Role(role)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return updated, nil
}

// RemoveMember detaches a user from an organization and drops them back to
// the sales rep role.
func (s *Service) RemoveMember(ctx context.Context, orgID, userID int) error {
	affected, err := s.db.User.Update().
		Where(user.IDEQ(userID), user.OrganizationIDEQ(orgID)).
		ClearOrganizationID().
		SetRole(user.RoleSalesRep).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %d is not a member of organization %d", userID, orgID)
	}
	return nil
}
