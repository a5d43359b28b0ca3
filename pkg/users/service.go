package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/user"
	"github.com/sannty/salescrm/pkg/auth"
	"github.com/sannty/salescrm/pkg/email"
	"github.com/sannty/salescrm/pkg/logger"
	"github.com/sannty/salescrm/pkg/models"
)

var (
	// ErrEmailTaken is returned when registering with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for a bad email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service handles user registration and authentication
type Service struct {
	db    *ent.Client
	email *email.Service
	log   logger.Logger
}

// NewService creates a new user service
func NewService(db *ent.Client, emailSvc *email.Service, log logger.Logger) *Service {
	return &Service{db: db, email: emailSvc, log: log}
}

// Register creates a user with a hashed password and sends a welcome email.
// The welcome email is best effort and never fails the registration.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*ent.User, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.db.User.Query().Where(user.EmailEQ(emailAddr)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleSalesRep
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	username, _, _ := strings.Cut(emailAddr, "@")

	created, err := s.db.User.Create().
		SetEmail(emailAddr).
		SetUsername(username).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetPasswordHash(hash).
		SetRole(role).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.email.SendWelcome(ctx, created); err != nil {
		s.log.Warn("failed to send welcome email", "user_id", created.ID, "error", err)
	}

	return created, nil
}

// Authenticate verifies an email/password pair and returns the user.
func (s *Service) Authenticate(ctx context.Context, emailAddr, password string) (*ent.User, error) {
	u, err := s.db.User.Query().
		Where(user.EmailEQ(strings.ToLower(strings.TrimSpace(emailAddr)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get returns a user by ID.
func (s *Service) Get(ctx context.Context, userID int) (*ent.User, error) {
	return s.db.User.Get(ctx, userID)
}

// ChangePassword verifies the current password and stores a new hash.
func (s *Service) ChangePassword(ctx context.Context, userID int, current, next string) error {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if !auth.CheckPassword(current, u.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.User.UpdateOneID(userID).SetPasswordHash(hash).Exec(ctx); err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}
	return nil
}

// UserInfo converts a user entity into its API representation.
func UserInfo(u *ent.User) models.UserInfo {
	return models.UserInfo{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Role:           string(u.Role),
		OrganizationID: u.OrganizationID,
	}
}
