package leads

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/enttest"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/pkg/activity"
	"github.com/sannty/salescrm/pkg/logger"
)

// setupService creates an in-memory database with an org/user fixture
func setupService(t *testing.T) (*ent.Client, *Service, *ent.Organization, *ent.User) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	ctx := context.Background()
	org := client.Organization.Create().SetName("Test Org").SaveX(ctx)
	u := client.User.Create().
		SetEmail("rep@example.com").
		SetUsername("rep").
		SetFirstName("Sales").
		SetLastName("Rep").
		SetPasswordHash("x").
		SetOrganizationID(org.ID).
		SaveX(ctx)

	observer := activity.NewObserver(activity.NewService(client), logger.Default())
	return client, NewService(client, observer), org, u
}

func TestConvert(t *testing.T) {
	t.Run("qualified lead produces account, contact and opportunity", func(t *testing.T) {
		client, svc, org, u := setupService(t)
		ctx := context.Background()

		l := client.Lead.Create().
			SetOrganizationID(org.ID).
			SetName("Jane Smith").
			SetEmail("jane@acme.com").
			SetCompany("Acme").
			SetStatus(lead.StatusQualified).
			SetAssignedToID(u.ID).
			SaveX(ctx)

		result, err := svc.Convert(ctx, org.ID, u.ID, l.ID)
		require.NoError(t, err)

		assert.Equal(t, lead.StatusConverted, result.Lead.Status)
		assert.Equal(t, "Acme", result.Account.Name)
		assert.Equal(t, "Jane Smith", result.Contact.Name)
		assert.Equal(t, "jane@acme.com", result.Contact.Email)
		require.NotNil(t, result.Contact.AccountID)
		assert.Equal(t, result.Account.ID, *result.Contact.AccountID)

		assert.Equal(t, "Opportunity for Jane Smith", result.Opportunity.Name)
		assert.Equal(t, 0.0, result.Opportunity.Amount)
		assert.Equal(t, opportunity.StageQualification, result.Opportunity.Stage)
		require.NotNil(t, result.Opportunity.OwnerID)
		assert.Equal(t, u.ID, *result.Opportunity.OwnerID)

		// Conversion log references both the lead and the opportunity
		logs := client.InteractionLog.Query().
			Where(interactionlog.LeadIDEQ(l.ID)).
			AllX(ctx)
		require.Len(t, logs, 1)
		assert.Equal(t, "Lead Jane Smith successfully converted to opportunity: Opportunity for Jane Smith", logs[0].Summary)
		require.NotNil(t, logs[0].OpportunityID)
		assert.Equal(t, result.Opportunity.ID, *logs[0].OpportunityID)
	})

	t.Run("lead without company gets a synthesized account name", func(t *testing.T) {
		client, svc, org, u := setupService(t)
		ctx := context.Background()

		l := client.Lead.Create().
			SetOrganizationID(org.ID).
			SetName("Bob Jones").
			SetEmail("bob@example.com").
			SetStatus(lead.StatusQualified).
			SaveX(ctx)

		result, err := svc.Convert(ctx, org.ID, u.ID, l.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bob Jones Company", result.Account.Name)
	})

	t.Run("existing account and contact are reused", func(t *testing.T) {
		client, svc, org, u := setupService(t)
		ctx := context.Background()

		existingAccount := client.Account.Create().
			SetOrganizationID(org.ID).
			SetName("Acme").
			SaveX(ctx)
		existingContact := client.Contact.Create().
			SetOrganizationID(org.ID).
			SetAccountID(existingAccount.ID).
			SetName("Jane Smith").
			SetEmail("jane@acme.com").
			SaveX(ctx)

		l := client.Lead.Create().
			SetOrganizationID(org.ID).
			SetName("Jane Smith").
			SetEmail("jane@acme.com").
			SetCompany("Acme").
			SetStatus(lead.StatusQualified).
			SaveX(ctx)

		result, err := svc.Convert(ctx, org.ID, u.ID, l.ID)
		require.NoError(t, err)
		assert.Equal(t, existingAccount.ID, result.Account.ID)
		assert.Equal(t, existingContact.ID, result.Contact.ID)

		assert.Equal(t, 1, client.Account.Query().CountX(ctx))
		assert.Equal(t, 1, client.Contact.Query().CountX(ctx))
	})

	t.Run("non-qualified lead is rejected with no side effects", func(t *testing.T) {
		client, svc, org, u := setupService(t)
		ctx := context.Background()

		l := client.Lead.Create().
			SetOrganizationID(org.ID).
			SetName("Too Early").
			SetEmail("early@example.com").
			SetStatus(lead.StatusNew).
			SaveX(ctx)

		_, err := svc.Convert(ctx, org.ID, u.ID, l.ID)
		assert.ErrorIs(t, err, ErrNotQualified)

		assert.Equal(t, 0, client.Account.Query().CountX(ctx))
		assert.Equal(t, 0, client.Contact.Query().CountX(ctx))
		assert.Equal(t, 0, client.Opportunity.Query().CountX(ctx))
		assert.Equal(t, 0, client.InteractionLog.Query().CountX(ctx))

		unchanged := client.Lead.GetX(ctx, l.ID)
		assert.Equal(t, lead.StatusNew, unchanged.Status)
	})

	t.Run("converting twice fails the second time", func(t *testing.T) {
		client, svc, org, u := setupService(t)
		ctx := context.Background()

		l := client.Lead.Create().
			SetOrganizationID(org.ID).
			SetName("Jane Smith").
			SetEmail("jane@acme.com").
			SetCompany("Acme").
			SetStatus(lead.StatusQualified).
			SaveX(ctx)

		_, err := svc.Convert(ctx, org.ID, u.ID, l.ID)
		require.NoError(t, err)

		_, err = svc.Convert(ctx, org.ID, u.ID, l.ID)
		assert.ErrorIs(t, err, ErrNotQualified)
		assert.Equal(t, 1, client.Opportunity.Query().CountX(ctx))
	})

	t.Run("lead from another organization is not found", func(t *testing.T) {
		client, svc, org, u := setupService(t)
		ctx := context.Background()

		otherOrg := client.Organization.Create().SetName("Other Org").SaveX(ctx)
		l := client.Lead.Create().
			SetOrganizationID(otherOrg.ID).
			SetName("Foreign Lead").
			SetEmail("foreign@example.com").
			SetStatus(lead.StatusQualified).
			SaveX(ctx)

		_, err := svc.Convert(ctx, org.ID, u.ID, l.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
