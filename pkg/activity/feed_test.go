package activity

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/enttest"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/pkg/cache"
)

// setupFeed creates an in-memory database and a miniredis-backed cache
func setupFeed(t *testing.T) (*ent.Client, *Feed, *miniredis.Miniredis, *ent.Organization, *ent.User) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	redisCache := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

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

	feed := NewFeed(client, redisCache, 30*time.Second)
	return client, feed, mr, org, u
}

func TestDashboard(t *testing.T) {
	client, feed, _, org, u := setupFeed(t)
	ctx := context.Background()

	l := client.Lead.Create().
		SetOrganizationID(org.ID).
		SetName("Jane Smith").
		SetEmail("jane@acme.com").
		SetCompany("Acme").
		SetAssignedToID(u.ID).
		SaveX(ctx)
	acc := client.Account.Create().SetOrganizationID(org.ID).SetName("Acme").SaveX(ctx)
	opp := client.Opportunity.Create().
		SetOrganizationID(org.ID).
		SetAccountID(acc.ID).
		SetName("Acme Deal").
		SetAmount(12500).
		SetOwnerID(u.ID).
		SaveX(ctx)

	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetLeadID(l.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("New lead created: Jane Smith from Acme").
		SaveX(ctx)
	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetOpportunityID(opp.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("New opportunity created: Acme Deal worth $12,500.00").
		SaveX(ctx)

	views, err := feed.Dashboard(ctx, org.ID, nil, 7, 20)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byEntity := map[string]ActivityView{}
	for _, v := range views {
		byEntity[v.Entity.Type] = v
	}

	leadView := byEntity["lead"]
	assert.Equal(t, "Jane Smith", leadView.Entity.Name)
	assert.Equal(t, "Acme", leadView.Entity.Subtitle)
	assert.Equal(t, "Sales Rep", leadView.User.Name)

	oppView := byEntity["opportunity"]
	assert.Equal(t, "Acme Deal", oppView.Entity.Name)
	assert.Equal(t, "$12,500.00", oppView.Entity.Subtitle)
}

func TestDashboardEntityPrecedence(t *testing.T) {
	client, feed, _, org, u := setupFeed(t)
	ctx := context.Background()

	l := client.Lead.Create().
		SetOrganizationID(org.ID).
		SetName("Jane Smith").
		SetEmail("jane@acme.com").
		SetAssignedToID(u.ID).
		SaveX(ctx)
	acc := client.Account.Create().SetOrganizationID(org.ID).SetName("Acme").SaveX(ctx)
	opp := client.Opportunity.Create().
		SetOrganizationID(org.ID).
		SetAccountID(acc.ID).
		SetName("Acme Deal").
		SetOwnerID(u.ID).
		SaveX(ctx)

	// Both targets set: the lead wins
	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetLeadID(l.ID).
		SetOpportunityID(opp.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("conversion").
		SaveX(ctx)

	views, err := feed.Dashboard(ctx, org.ID, nil, 7, 20)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "lead", views[0].Entity.Type)
	assert.Equal(t, "No Company", views[0].Entity.Subtitle)
}

func TestDashboardUnknownEntity(t *testing.T) {
	client, feed, _, org, u := setupFeed(t)
	ctx := context.Background()

	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("untargeted note").
		SaveX(ctx)

	views, err := feed.Dashboard(ctx, org.ID, nil, 7, 20)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "unknown", views[0].Entity.Type)
	assert.Equal(t, "Unknown Entity", views[0].Entity.Name)
}

func TestDashboardCaching(t *testing.T) {
	client, feed, mr, org, u := setupFeed(t)
	ctx := context.Background()

	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("first").
		SaveX(ctx)

	views, err := feed.Dashboard(ctx, org.ID, nil, 7, 20)
	require.NoError(t, err)
	require.Len(t, views, 1)

	// A new entry does not appear until the cache expires
	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("second").
		SaveX(ctx)

	views, err = feed.Dashboard(ctx, org.ID, nil, 7, 20)
	require.NoError(t, err)
	assert.Len(t, views, 1)

	mr.FastForward(time.Minute)

	views, err = feed.Dashboard(ctx, org.ID, nil, 7, 20)
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestDashboardWindowing(t *testing.T) {
	client, feed, _, org, u := setupFeed(t)
	ctx := context.Background()

	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("old entry").
		SetTimestamp(time.Now().AddDate(0, 0, -30)).
		SaveX(ctx)
	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("recent entry").
		SaveX(ctx)

	views, err := feed.Dashboard(ctx, org.ID, nil, 7, 20)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "recent entry", views[0].Summary)
}

func TestDashboardScopesToOrganization(t *testing.T) {
	client, feed, _, org, u := setupFeed(t)
	ctx := context.Background()

	otherOrg := client.Organization.Create().SetName("Other Org").SaveX(ctx)
	otherUser := client.User.Create().
		SetEmail("other@example.com").
		SetUsername("other").
		SetPasswordHash("x").
		SetOrganizationID(otherOrg.ID).
		SaveX(ctx)

	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("mine").
		SaveX(ctx)
	client.InteractionLog.Create().
		SetOrganizationID(otherOrg.ID).
		SetUserID(otherUser.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("theirs").
		SaveX(ctx)

	views, err := feed.Dashboard(ctx, org.ID, nil, 7, 20)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "mine", views[0].Summary)
}

func TestUserSummary(t *testing.T) {
	client, feed, _, org, u := setupFeed(t)
	ctx := context.Background()

	l := client.Lead.Create().
		SetOrganizationID(org.ID).
		SetName("Jane Smith").
		SetEmail("jane@acme.com").
		SetAssignedToID(u.ID).
		SaveX(ctx)

	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetLeadID(l.ID).
		SetType(interactionlog.TypeCall).
		SetSummary("call").
		SaveX(ctx)
	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetLeadID(l.ID).
		SetType(interactionlog.TypeCall).
		SetSummary("another call").
		SaveX(ctx)
	client.InteractionLog.Create().
		SetOrganizationID(org.ID).
		SetUserID(u.ID).
		SetType(interactionlog.TypeNote).
		SetSummary("note").
		SaveX(ctx)

	summary, err := feed.UserSummary(ctx, org.ID, u.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalActivities)
	assert.Equal(t, 2, summary.ByType["call"])
	assert.Equal(t, 1, summary.ByType["note"])
	assert.Equal(t, 2, summary.ByEntity["leads"])
	assert.Equal(t, 30, summary.PeriodDays)
}
