package users

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sannty/salescrm/config"
	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/enttest"
	"github.com/sannty/salescrm/ent/user"
	"github.com/sannty/salescrm/pkg/auth"
	"github.com/sannty/salescrm/pkg/email"
	"github.com/sannty/salescrm/pkg/logger"
	"github.com/sannty/salescrm/pkg/models"
)

func setupUsers(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	log := logger.New("error", "text")
	emailSvc := email.NewService(&config.Config{EmailFrom: "crm@example.com", EmailFromName: "SalesCRM"}, log)
	return client, NewService(client, emailSvc, log)
}

func TestRegister(t *testing.T) {
	_, svc := setupUsers(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, models.RegisterRequest{
		Email:     "Jane.Smith@Example.com",
		Password:  "secret-password",
		FirstName: "Jane",
		LastName:  "Smith",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane.smith@example.com", u.Email)
	assert.Equal(t, "jane.smith", u.Username)
	assert.Equal(t, user.RoleSalesRep, u.Role)
	assert.True(t, auth.CheckPassword("secret-password", u.PasswordHash))

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, models.RegisterRequest{
			Email:    "jane.smith@example.com",
			Password: "another",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("malformed email still derives a username", func(t *testing.T) {
		u, err := svc.Register(ctx, models.RegisterRequest{
			Email:    "not-an-address",
			Password: "secret-password",
		})
		require.NoError(t, err)
		assert.Equal(t, "not-an-address", u.Username)
	})

	t.Run("explicit role is honored", func(t *testing.T) {
		admin, err := svc.Register(ctx, models.RegisterRequest{
			Email:    "boss@example.com",
			Password: "secret-password",
			Role:     "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, admin.Role)
	})
}

func TestAuthenticate(t *testing.T) {
	_, svc := setupUsers(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{
		Email:    "rep@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "REP@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "rep@example.com", u.Email)

	_, err = svc.Authenticate(ctx, "rep@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	_, svc := setupUsers(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, models.RegisterRequest{
		Email:    "rep@example.com",
		Password: "old-password",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(ctx, u.ID, "wrong", "new-password"), ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, "old-password", "new-password"))

	_, err = svc.Authenticate(ctx, "rep@example.com", "new-password")
	assert.NoError(t, err)
}
