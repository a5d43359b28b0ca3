package organization

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/enttest"
	"github.com/sannty/salescrm/ent/user"
)

func setupOrg(t *testing.T) (*ent.Client, *Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client, NewService(client)
}

func newUser(t *testing.T, client *ent.Client, email, username string) *ent.User {
	return client.User.Create().
		SetEmail(email).
		SetUsername(username).
		SetPasswordHash("x").
		SaveX(context.Background())
}

func TestCreateOrganization(t *testing.T) {
	client, svc := setupOrg(t)
	ctx := context.Background()

	creator := newUser(t, client, "founder@example.com", "founder")

	org, err := svc.Create(ctx, creator.ID, CreateRequest{Name: "Acme Sales"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Sales", org.Name)

	// Creator becomes the organization admin
	updated := client.User.GetX(ctx, creator.ID)
	require.NotNil(t, updated.OrganizationID)
	assert.Equal(t, org.ID, *updated.OrganizationID)
	assert.Equal(t, user.RoleAdmin, updated.Role)

	t.Run("second organization for the same user is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, creator.ID, CreateRequest{Name: "Another"})
		assert.ErrorIs(t, err, ErrAlreadyMember)
	})
}

func TestMembership(t *testing.T) {
	client, svc := setupOrg(t)
	ctx := context.Background()

	creator := newUser(t, client, "founder@example.com", "founder")
	org, err := svc.Create(ctx, creator.ID, CreateRequest{Name: "Acme Sales"})
	require.NoError(t, err)

	rep := newUser(t, client, "rep@example.com", "rep")

	added, err := svc.AddMember(ctx, org.ID, rep.ID, "sales_rep")
	require.NoError(t, err)
	assert.Equal(t, user.RoleSalesRep, added.Role)

	members, err := svc.Members(ctx, org.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	t.Run("joining twice is rejected", func(t *testing.T) {
		_, err := svc.AddMember(ctx, org.ID, rep.ID, "manager")
		assert.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		outsider := newUser(t, client, "x@example.com", "x")
		_, err := svc.AddMember(ctx, org.ID, outsider.ID, "wizard")
		assert.Error(t, err)
	})

	t.Run("removal detaches the user", func(t *testing.T) {
		require.NoError(t, svc.RemoveMember(ctx, org.ID, rep.ID))

		detached := client.User.GetX(ctx, rep.ID)
		assert.Nil(t, detached.OrganizationID)
	})

	t.Run("removing a non-member fails", func(t *testing.T) {
		stranger := newUser(t, client, "stranger@example.com", "stranger")
		assert.Error(t, svc.RemoveMember(ctx, org.ID, stranger.ID))
	})
}
