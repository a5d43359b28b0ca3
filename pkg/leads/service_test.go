package leads

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/lead"
)

func TestCreate(t *testing.T) {
	t.Run("assigns to the actor by default and logs creation", func(t *testing.T) {
		client, svc, org, u := setupService(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, org.ID, u.ID, CreateLeadRequest{
			Name:    "Jane Smith",
			Email:   "jane@acme.com",
			Company: "Acme",
		})
		require.NoError(t, err)

		assert.Equal(t, lead.StatusNew, created.Status)
		require.NotNil(t, created.AssignedToID)
		assert.Equal(t, u.ID, *created.AssignedToID)

		logs := client.InteractionLog.Query().AllX(ctx)
		require.Len(t, logs, 1)
		assert.Equal(t, "New lead created: Jane Smith from Acme", logs[0].Summary)
	})

	t.Run("normalizes the phone number when possible", func(t *testing.T) {
		_, svc, org, u := setupService(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, org.ID, u.ID, CreateLeadRequest{
			Name:  "Jane Smith",
			Email: "jane@acme.com",
			Phone: "+1 415 555 2671",
		})
		require.NoError(t, err)
		assert.Equal(t, "+14155552671", created.Phone)
	})

	t.Run("keeps an unparseable phone number verbatim", func(t *testing.T) {
		_, svc, org, u := setupService(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, org.ID, u.ID, CreateLeadRequest{
			Name:  "Jane Smith",
			Email: "jane@acme.com",
			Phone: "ext. 42",
		})
		require.NoError(t, err)
		assert.Equal(t, "ext. 42", created.Phone)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("status transition is logged once", func(t *testing.T) {
		client, svc, org, u := setupService(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, org.ID, u.ID, CreateLeadRequest{
			Name:  "Jane Smith",
			Email: "jane@acme.com",
		})
		require.NoError(t, err)

		updated, err := svc.UpdateStatus(ctx, org.ID, u.ID, created.ID, "qualified")
		require.NoError(t, err)
		assert.Equal(t, lead.StatusQualified, updated.Status)

		transitions := client.InteractionLog.Query().
			Where(interactionlog.SummaryContains("qualified as a potential customer")).
			CountX(ctx)
		assert.Equal(t, 1, transitions)
	})

	t.Run("setting the current status again is a no-op", func(t *testing.T) {
		client, svc, org, u := setupService(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, org.ID, u.ID, CreateLeadRequest{
			Name:  "Jane Smith",
			Email: "jane@acme.com",
		})
		require.NoError(t, err)
		before := client.InteractionLog.Query().CountX(ctx)

		_, err = svc.UpdateStatus(ctx, org.ID, u.ID, created.ID, "new")
		require.NoError(t, err)

		assert.Equal(t, before, client.InteractionLog.Query().CountX(ctx))
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		_, svc, org, u := setupService(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, org.ID, u.ID, CreateLeadRequest{
			Name:  "Jane Smith",
			Email: "jane@acme.com",
		})
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, org.ID, u.ID, created.ID, "frozen")
		assert.Error(t, err)
	})
}

func TestListScoping(t *testing.T) {
	client, svc, org, u := setupService(t)
	ctx := context.Background()

	otherOrg := client.Organization.Create().SetName("Other Org").SaveX(ctx)
	client.Lead.Create().
		SetOrganizationID(otherOrg.ID).
		SetName("Foreign").
		SetEmail("foreign@example.com").
		SaveX(ctx)

	_, err := svc.Create(ctx, org.ID, u.ID, CreateLeadRequest{Name: "Mine", Email: "mine@example.com"})
	require.NoError(t, err)

	listed, err := svc.List(ctx, org.ID, "", 50, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Mine", listed[0].Name)
}
