package quotes

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/enttest"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/pkg/activity"
	"github.com/sannty/salescrm/pkg/logger"
)

type quoteFixture struct {
	client  *ent.Client
	svc     *Service
	org     *ent.Organization
	user    *ent.User
	opp     *ent.Opportunity
	widget  *ent.Product
	gadget  *ent.Product
	retired *ent.Product
}

func setupQuotes(t *testing.T) *quoteFixture {
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
	opp := client.Opportunity.Create().
		SetOrganizationID(org.ID).
		SetAccountID(acc.ID).
		SetName("Acme Deal").
		SetOwnerID(u.ID).
		SaveX(ctx)

	widget := client.Product.Create().SetOrganizationID(org.ID).SetName("Widget").SetPrice(50).SaveX(ctx)
	gadget := client.Product.Create().SetOrganizationID(org.ID).SetName("Gadget").SetPrice(25).SaveX(ctx)
	retired := client.Product.Create().SetOrganizationID(org.ID).SetName("Legacy").SetPrice(10).SetIsActive(false).SaveX(ctx)

	observer := activity.NewObserver(activity.NewService(client), logger.Default())
	return &quoteFixture{
		client:  client,
		svc:     NewService(client, observer),
		org:     org,
		user:    u,
		opp:     opp,
		widget:  widget,
		gadget:  gadget,
		retired: retired,
	}
}

func TestCreateQuote(t *testing.T) {
	f := setupQuotes(t)
	ctx := context.Background()

	q, err := f.svc.Create(ctx, f.org.ID, f.user.ID, CreateQuoteRequest{
		OpportunityID: f.opp.ID,
		Title:         "Initial offer",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, q.TotalPrice)

	logs := f.client.InteractionLog.Query().
		Where(interactionlog.OpportunityIDEQ(f.opp.ID)).
		AllX(ctx)
	require.Len(t, logs, 1)
	assert.Equal(t, "Quote created: Initial offer for $0.00", logs[0].Summary)
}

func TestListQuotesByOpportunity(t *testing.T) {
	f := setupQuotes(t)
	ctx := context.Background()

	acc := f.client.Account.Create().SetOrganizationID(f.org.ID).SetName("Globex").SaveX(ctx)
	otherOpp := f.client.Opportunity.Create().
		SetOrganizationID(f.org.ID).
		SetAccountID(acc.ID).
		SetName("Globex Deal").
		SetOwnerID(f.user.ID).
		SaveX(ctx)

	_, err := f.svc.Create(ctx, f.org.ID, f.user.ID, CreateQuoteRequest{
		OpportunityID: f.opp.ID,
		Title:         "Acme offer",
	})
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.org.ID, f.user.ID, CreateQuoteRequest{
		OpportunityID: otherOpp.ID,
		Title:         "Globex offer",
	})
	require.NoError(t, err)

	all, err := f.svc.List(ctx, f.org.ID, nil, 50, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := f.svc.List(ctx, f.org.ID, &f.opp.ID, 50, 0)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "Acme offer", scoped[0].Title)
}

func TestQuoteTotals(t *testing.T) {
	f := setupQuotes(t)
	ctx := context.Background()

	q, err := f.svc.Create(ctx, f.org.ID, f.user.ID, CreateQuoteRequest{
		OpportunityID: f.opp.ID,
		Title:         "Initial offer",
	})
	require.NoError(t, err)

	// 2 x $50.00
	q, err = f.svc.AddLineItem(ctx, f.org.ID, q.ID, LineItemRequest{
		ProductID: f.widget.ID,
		Quantity:  2,
		UnitPrice: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, q.TotalPrice)

	// + 1 x $25.00
	q, err = f.svc.AddLineItem(ctx, f.org.ID, q.ID, LineItemRequest{
		ProductID: f.gadget.ID,
		Quantity:  1,
		UnitPrice: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, 125.0, q.TotalPrice)

	// Deleting the $25.00 item drops the total back to $100.00
	var gadgetItem *ent.QuoteLineItem
	for _, item := range q.Edges.LineItems {
		if item.UnitPrice == 25 {
			gadgetItem = item
		}
	}
	require.NotNil(t, gadgetItem)

	q, err = f.svc.DeleteLineItem(ctx, f.org.ID, q.ID, gadgetItem.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, q.TotalPrice)
	assert.Len(t, q.Edges.LineItems, 1)
}

func TestUpdateLineItem(t *testing.T) {
	f := setupQuotes(t)
	ctx := context.Background()

	q, err := f.svc.Create(ctx, f.org.ID, f.user.ID, CreateQuoteRequest{
		OpportunityID: f.opp.ID,
		Title:         "Initial offer",
	})
	require.NoError(t, err)

	q, err = f.svc.AddLineItem(ctx, f.org.ID, q.ID, LineItemRequest{
		ProductID: f.widget.ID,
		Quantity:  2,
		UnitPrice: 50,
	})
	require.NoError(t, err)
	itemID := q.Edges.LineItems[0].ID

	q, err = f.svc.UpdateLineItem(ctx, f.org.ID, q.ID, itemID, 3, 40)
	require.NoError(t, err)
	assert.Equal(t, 120.0, q.TotalPrice)

	t.Run("missing item", func(t *testing.T) {
		_, err := f.svc.UpdateLineItem(ctx, f.org.ID, q.ID, itemID+999, 1, 10)
		assert.ErrorIs(t, err, ErrLineItemNotFound)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := f.svc.UpdateLineItem(ctx, f.org.ID, q.ID, itemID, 0, 10)
		assert.Error(t, err)
	})
}

func TestAddLineItemDefaultsToProductPrice(t *testing.T) {
	f := setupQuotes(t)
	ctx := context.Background()

	q, err := f.svc.Create(ctx, f.org.ID, f.user.ID, CreateQuoteRequest{
		OpportunityID: f.opp.ID,
		Title:         "Initial offer",
	})
	require.NoError(t, err)

	q, err = f.svc.AddLineItem(ctx, f.org.ID, q.ID, LineItemRequest{
		ProductID: f.widget.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, q.TotalPrice)
	assert.Equal(t, 50.0, q.Edges.LineItems[0].UnitPrice)

	// Later product price changes do not move the captured price
	f.client.Product.UpdateOneID(f.widget.ID).SetPrice(75).ExecX(ctx)

	q, err = f.svc.RecalculateTotal(ctx, f.org.ID, q.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, q.TotalPrice)
}

func TestAddLineItemRejectsUnavailableProducts(t *testing.T) {
	f := setupQuotes(t)
	ctx := context.Background()

	q, err := f.svc.Create(ctx, f.org.ID, f.user.ID, CreateQuoteRequest{
		OpportunityID: f.opp.ID,
		Title:         "Initial offer",
	})
	require.NoError(t, err)

	t.Run("inactive product", func(t *testing.T) {
		_, err := f.svc.AddLineItem(ctx, f.org.ID, q.ID, LineItemRequest{
			ProductID: f.retired.ID,
			Quantity:  1,
		})
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})

	t.Run("product from another organization", func(t *testing.T) {
		otherOrg := f.client.Organization.Create().SetName("Other Org").SaveX(ctx)
		foreign := f.client.Product.Create().SetOrganizationID(otherOrg.ID).SetName("Foreign").SetPrice(5).SaveX(ctx)

		_, err := f.svc.AddLineItem(ctx, f.org.ID, q.ID, LineItemRequest{
			ProductID: foreign.ID,
			Quantity:  1,
		})
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})
}

func TestRecalculateTotalIsIdempotent(t *testing.T) {
	f := setupQuotes(t)
	ctx := context.Background()

	q, err := f.svc.Create(ctx, f.org.ID, f.user.ID, CreateQuoteRequest{
		OpportunityID: f.opp.ID,
		Title:         "Initial offer",
	})
	require.NoError(t, err)

	q, err = f.svc.AddLineItem(ctx, f.org.ID, q.ID, LineItemRequest{
		ProductID: f.widget.ID,
		Quantity:  2,
		UnitPrice: 50,
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		q, err = f.svc.RecalculateTotal(ctx, f.org.ID, q.ID)
		require.NoError(t, err)
		assert.Equal(t, 100.0, q.TotalPrice)
	}
}
