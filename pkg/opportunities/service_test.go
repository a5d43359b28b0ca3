package opportunities

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/enttest"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/pkg/activity"
	"github.com/sannty/salescrm/pkg/logger"
)

func setupOpportunities(t *testing.T) (*ent.Client, *Service, *ent.Organization, *ent.User, *ent.Account) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	org := client.Organization.Create().SetName("Test Org").SaveX(ctx)
	u := client.User.Create().
		SetEmail("rep@example.com").
		SetUsername("rep").
		SetPasswordHash("x").
		SetOrganizationID(org.ID).
		SaveX(ctx)
	acc := client.Account.Create().SetOrganizationID(org.ID).SetName("Acme").SaveX(ctx)

	observer := activity.NewObserver(activity.NewService(client), logger.Default())
	return client, NewService(client, observer), org, u, acc
}

func TestCreateOpportunity(t *testing.T) {
	client, svc, org, u, acc := setupOpportunities(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, org.ID, u.ID, CreateOpportunityRequest{
		Name:      "Acme Deal",
		AccountID: acc.ID,
		Amount:    25000,
	})
	require.NoError(t, err)
	assert.Equal(t, opportunity.StageQualification, created.Stage)
	require.NotNil(t, created.OwnerID)
	assert.Equal(t, u.ID, *created.OwnerID)

	logs := client.InteractionLog.Query().AllX(ctx)
	require.Len(t, logs, 1)
	assert.Equal(t, "New opportunity created: Acme Deal worth $25,000.00", logs[0].Summary)
}

func TestUpdateOpportunity(t *testing.T) {
	t.Run("stage change is logged", func(t *testing.T) {
		client, svc, org, u, acc := setupOpportunities(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, org.ID, u.ID, CreateOpportunityRequest{
			Name:      "Acme Deal",
			AccountID: acc.ID,
			Amount:    25000,
		})
		require.NoError(t, err)

		stage := "proposal"
		_, err = svc.Update(ctx, org.ID, u.ID, created.ID, UpdateOpportunityRequest{Stage: &stage})
		require.NoError(t, err)

		count := client.InteractionLog.Query().
			Where(interactionlog.SummaryContains("moved to proposal stage - preparing quote")).
			CountX(ctx)
		assert.Equal(t, 1, count)
	})

	t.Run("small amount change is not logged", func(t *testing.T) {
		client, svc, org, u, acc := setupOpportunities(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, org.ID, u.ID, CreateOpportunityRequest{
			Name:      "Acme Deal",
			AccountID: acc.ID,
			Amount:    10000,
		})
		require.NoError(t, err)
		before := client.InteractionLog.Query().CountX(ctx)

		amount := 10999.0
		_, err = svc.Update(ctx, org.ID, u.ID, created.ID, UpdateOpportunityRequest{Amount: &amount})
		require.NoError(t, err)

		assert.Equal(t, before, client.InteractionLog.Query().CountX(ctx))
	})

	t.Run("significant amount change is logged", func(t *testing.T) {
		client, svc, org, u, acc := setupOpportunities(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, org.ID, u.ID, CreateOpportunityRequest{
			Name:      "Acme Deal",
			AccountID: acc.ID,
			Amount:    10000,
		})
		require.NoError(t, err)

		amount := 11001.0
		_, err = svc.Update(ctx, org.ID, u.ID, created.ID, UpdateOpportunityRequest{Amount: &amount})
		require.NoError(t, err)

		count := client.InteractionLog.Query().
			Where(interactionlog.SummaryContains("increased from $10,000.00 to $11,001.00")).
			CountX(ctx)
		assert.Equal(t, 1, count)
	})
}

func TestPipelineValue(t *testing.T) {
	_, svc, org, u, acc := setupOpportunities(t)
	ctx := context.Background()

	mk := func(amount float64, stage string) {
		_, err := svc.Create(ctx, org.ID, u.ID, CreateOpportunityRequest{
			Name:      "Deal",
			AccountID: acc.ID,
			Amount:    amount,
			Stage:     stage,
		})
		require.NoError(t, err)
	}

	mk(10000, "qualification")
	mk(20000, "negotiation")
	mk(99999, "won")
	mk(5000, "lost")

	total, err := svc.PipelineValue(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, 30000.0, total)
}
