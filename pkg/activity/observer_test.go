package activity

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/enttest"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/task"
	"github.com/sannty/salescrm/pkg/logger"
)

// setupObserver creates an in-memory database with an org/user fixture
func setupObserver(t *testing.T) (*ent.Client, *Observer, *ent.Organization, *ent.User) {
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

	observer := NewObserver(NewService(client), logger.Default())
	return client, observer, org, u
}

func allLogs(t *testing.T, client *ent.Client) []*ent.InteractionLog {
	logs, err := client.InteractionLog.Query().Order(ent.Asc(interactionlog.FieldID)).All(context.Background())
	require.NoError(t, err)
	return logs
}

func TestLeadCreated(t *testing.T) {
	client, observer, org, u := setupObserver(t)
	ctx := context.Background()

	t.Run("records creation with company", func(t *testing.T) {
		l := client.Lead.Create().
			SetOrganizationID(org.ID).
			SetName("Jane Smith").
			SetEmail("jane@acme.com").
			SetCompany("Acme").
			SetAssignedToID(u.ID).
			SaveX(ctx)

		observer.LeadCreated(ctx, l)

		logs := allLogs(t, client)
		require.Len(t, logs, 1)
		assert.Equal(t, "New lead created: Jane Smith from Acme", logs[0].Summary)
		assert.Equal(t, interactionlog.TypeNote, logs[0].Type)
		require.NotNil(t, logs[0].LeadID)
		assert.Equal(t, l.ID, *logs[0].LeadID)
		assert.Equal(t, u.ID, logs[0].UserID)
	})

	t.Run("missing company reads Unknown Company", func(t *testing.T) {
		l := client.Lead.Create().
			SetOrganizationID(org.ID).
			SetName("Bob Jones").
			SetEmail("bob@example.com").
			SetAssignedToID(u.ID).
			SaveX(ctx)

		observer.LeadCreated(ctx, l)

		logs := allLogs(t, client)
		assert.Equal(t, "New lead created: Bob Jones from Unknown Company", logs[len(logs)-1].Summary)
	})

	t.Run("unassigned lead is skipped", func(t *testing.T) {
		before := len(allLogs(t, client))

		l := client.Lead.Create().
			SetOrganizationID(org.ID).
			SetName("Nobody").
			SetEmail("nobody@example.com").
			SaveX(ctx)

		observer.LeadCreated(ctx, l)

		assert.Len(t, allLogs(t, client), before)
	})
}

func TestLeadStatusChanged(t *testing.T) {
	client, observer, org, u := setupObserver(t)
	ctx := context.Background()

	l := client.Lead.Create().
		SetOrganizationID(org.ID).
		SetName("Jane Smith").
		SetEmail("jane@acme.com").
		SetAssignedToID(u.ID).
		SaveX(ctx)

	t.Run("no prior state is not a transition", func(t *testing.T) {
		observer.LeadStatusChanged(ctx, LeadChange{Previous: nil, Next: l}, u.ID)
		assert.Empty(t, allLogs(t, client))
	})

	t.Run("unchanged status is skipped", func(t *testing.T) {
		observer.LeadStatusChanged(ctx, LeadChange{Previous: l, Next: l}, u.ID)
		assert.Empty(t, allLogs(t, client))
	})

	t.Run("transition uses the status message", func(t *testing.T) {
		next := client.Lead.UpdateOneID(l.ID).SetStatus(lead.StatusQualified).SaveX(ctx)

		observer.LeadStatusChanged(ctx, LeadChange{Previous: l, Next: next}, u.ID)

		logs := allLogs(t, client)
		require.Len(t, logs, 1)
		assert.Equal(t, "Lead Jane Smith qualified as a potential customer", logs[0].Summary)
		assert.Equal(t, u.ID, logs[0].UserID)
	})
}

func TestOpportunityStageChanged(t *testing.T) {
	client, observer, org, u := setupObserver(t)
	ctx := context.Background()

	acc := client.Account.Create().SetOrganizationID(org.ID).SetName("Acme").SaveX(ctx)
	opp := client.Opportunity.Create().
		SetOrganizationID(org.ID).
		SetAccountID(acc.ID).
		SetName("Big Deal").
		SetAmount(50000).
		SetOwnerID(u.ID).
		SaveX(ctx)

	t.Run("won stage gets the celebration message", func(t *testing.T) {
		next := client.Opportunity.UpdateOneID(opp.ID).SetStage(opportunity.StageWon).SaveX(ctx)

		observer.OpportunityStageChanged(ctx, OpportunityChange{Previous: opp, Next: next}, u.ID)

		logs := allLogs(t, client)
		require.Len(t, logs, 1)
		assert.Equal(t, "Opportunity Big Deal WON! Deal closed successfully", logs[0].Summary)
	})

	t.Run("unchanged stage is skipped", func(t *testing.T) {
		before := len(allLogs(t, client))
		current := client.Opportunity.GetX(ctx, opp.ID)
		observer.OpportunityStageChanged(ctx, OpportunityChange{Previous: current, Next: current}, u.ID)
		assert.Len(t, allLogs(t, client), before)
	})
}

func TestOpportunityAmountChanged(t *testing.T) {
	client, observer, org, u := setupObserver(t)
	ctx := context.Background()

	acc := client.Account.Create().SetOrganizationID(org.ID).SetName("Acme").SaveX(ctx)
	makeOpp := func(amount float64) *ent.Opportunity {
		return client.Opportunity.Create().
			SetOrganizationID(org.ID).
			SetAccountID(acc.ID).
			SetName("Deal").
			SetAmount(amount).
			SetOwnerID(u.ID).
			SaveX(ctx)
	}

	t.Run("change below the absolute floor is skipped", func(t *testing.T) {
		prev := makeOpp(10000)
		next := client.Opportunity.UpdateOneID(prev.ID).SetAmount(10999).SaveX(ctx)

		observer.OpportunityAmountChanged(ctx, OpportunityChange{Previous: prev, Next: next}, u.ID)

		assert.Empty(t, allLogs(t, client))
	})

	t.Run("change above both thresholds is recorded", func(t *testing.T) {
		prev := makeOpp(10000)
		next := client.Opportunity.UpdateOneID(prev.ID).SetAmount(11001).SaveX(ctx)

		observer.OpportunityAmountChanged(ctx, OpportunityChange{Previous: prev, Next: next}, u.ID)

		logs := allLogs(t, client)
		require.Len(t, logs, 1)
		assert.Equal(t, "Opportunity value increased from $10,000.00 to $11,001.00", logs[0].Summary)
	})

	t.Run("decrease reads decreased", func(t *testing.T) {
		before := len(allLogs(t, client))
		prev := makeOpp(50000)
		next := client.Opportunity.UpdateOneID(prev.ID).SetAmount(30000).SaveX(ctx)

		observer.OpportunityAmountChanged(ctx, OpportunityChange{Previous: prev, Next: next}, u.ID)

		logs := allLogs(t, client)
		require.Len(t, logs, before+1)
		assert.Equal(t, "Opportunity value decreased from $50,000.00 to $30,000.00", logs[len(logs)-1].Summary)
	})

	t.Run("zero on either side never qualifies", func(t *testing.T) {
		before := len(allLogs(t, client))

		prev := makeOpp(0)
		next := client.Opportunity.UpdateOneID(prev.ID).SetAmount(50000).SaveX(ctx)
		observer.OpportunityAmountChanged(ctx, OpportunityChange{Previous: prev, Next: next}, u.ID)

		prev2 := makeOpp(50000)
		next2 := client.Opportunity.UpdateOneID(prev2.ID).SetAmount(0).SaveX(ctx)
		observer.OpportunityAmountChanged(ctx, OpportunityChange{Previous: prev2, Next: next2}, u.ID)

		assert.Len(t, allLogs(t, client), before)
	})
}

func TestTaskCompleted(t *testing.T) {
	client, observer, org, u := setupObserver(t)
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

	makeTask := func(taskType task.Type, notes string, leadID, oppID *int) *ent.Task {
		create := client.Task.Create().
			SetOrganizationID(org.ID).
			SetTitle("Follow up").
			SetType(taskType).
			SetDueDate(time.Now().Add(24 * time.Hour)).
			SetOwnerID(u.ID).
			SetNotes(notes)
		if leadID != nil {
			create = create.SetLeadID(*leadID)
		}
		if oppID != nil {
			create = create.SetOpportunityID(*oppID)
		}
		return create.SaveX(ctx)
	}

	t.Run("call task against a lead", func(t *testing.T) {
		tk := makeTask(task.TypeCall, "", &l.ID, nil)

		observer.TaskCompleted(ctx, tk, l, nil, u.ID)

		logs := allLogs(t, client)
		require.Len(t, logs, 1)
		assert.Equal(t, "Task completed: completed call with Jane Smith", logs[0].Summary)
		assert.Equal(t, interactionlog.TypeCall, logs[0].Type)
		require.NotNil(t, logs[0].LeadID)
	})

	t.Run("lead wins over opportunity", func(t *testing.T) {
		before := len(allLogs(t, client))
		tk := makeTask(task.TypeMeeting, "", &l.ID, &opp.ID)

		observer.TaskCompleted(ctx, tk, l, opp, u.ID)

		logs := allLogs(t, client)
		require.Len(t, logs, before+1)
		last := logs[len(logs)-1]
		assert.Equal(t, "Task completed: held meeting with Jane Smith", last.Summary)
		assert.Nil(t, last.OpportunityID)
	})

	t.Run("demo task is recorded as a note", func(t *testing.T) {
		before := len(allLogs(t, client))
		tk := makeTask(task.TypeDemo, "", nil, &opp.ID)

		observer.TaskCompleted(ctx, tk, nil, opp, u.ID)

		logs := allLogs(t, client)
		require.Len(t, logs, before+1)
		last := logs[len(logs)-1]
		assert.Equal(t, "Task completed: conducted demo for Acme Deal", last.Summary)
		assert.Equal(t, interactionlog.TypeNote, last.Type)
	})

	t.Run("no relations reads unknown contact", func(t *testing.T) {
		before := len(allLogs(t, client))
		tk := makeTask(task.TypeEmail, "", nil, nil)

		observer.TaskCompleted(ctx, tk, nil, nil, u.ID)

		logs := allLogs(t, client)
		last := logs[len(logs)-1]
		require.Len(t, logs, before+1)
		assert.Equal(t, "Task completed: sent email to unknown contact", last.Summary)
	})

	t.Run("long notes are truncated at 100 characters", func(t *testing.T) {
		notes := strings.Repeat("a", 150)
		tk := makeTask(task.TypeCall, notes, &l.ID, nil)

		observer.TaskCompleted(ctx, tk, l, nil, u.ID)

		logs := allLogs(t, client)
		last := logs[len(logs)-1]
		expected := "Task completed: completed call with Jane Smith - Notes: " + strings.Repeat("a", 100) + "..."
		assert.Equal(t, expected, last.Summary)
	})

	t.Run("multibyte notes are truncated at 100 characters", func(t *testing.T) {
		notes := strings.Repeat("あ", 150)
		tk := makeTask(task.TypeCall, notes, &l.ID, nil)

		observer.TaskCompleted(ctx, tk, l, nil, u.ID)

		logs := allLogs(t, client)
		last := logs[len(logs)-1]
		expected := "Task completed: completed call with Jane Smith - Notes: " + strings.Repeat("あ", 100) + "..."
		assert.Equal(t, expected, last.Summary)
		assert.True(t, utf8.ValidString(last.Summary))
	})

	t.Run("short notes are kept verbatim", func(t *testing.T) {
		tk := makeTask(task.TypeCall, "went well", &l.ID, nil)

		observer.TaskCompleted(ctx, tk, l, nil, u.ID)

		logs := allLogs(t, client)
		last := logs[len(logs)-1]
		assert.Equal(t, "Task completed: completed call with Jane Smith - Notes: went well", last.Summary)
	})
}

func TestQuoteCreated(t *testing.T) {
	client, observer, org, u := setupObserver(t)
	ctx := context.Background()

	acc := client.Account.Create().SetOrganizationID(org.ID).SetName("Acme").SaveX(ctx)
	ct := client.Contact.Create().
		SetOrganizationID(org.ID).
		SetAccountID(acc.ID).
		SetName("Jane Smith").
		SetEmail("jane@acme.com").
		SaveX(ctx)
	opp := client.Opportunity.Create().
		SetOrganizationID(org.ID).
		SetAccountID(acc.ID).
		SetContactID(ct.ID).
		SetName("Acme Deal").
		SetOwnerID(u.ID).
		SaveX(ctx)
	q := client.Quote.Create().
		SetOrganizationID(org.ID).
		SetOpportunityID(opp.ID).
		SetTitle("Initial offer").
		SetCreatedByID(u.ID).
		SaveX(ctx)

	observer.QuoteCreated(ctx, q, opp)

	logs := allLogs(t, client)
	require.Len(t, logs, 1)
	assert.Equal(t, "Quote created: Initial offer for $0.00", logs[0].Summary)
	require.NotNil(t, logs[0].OpportunityID)
	assert.Equal(t, opp.ID, *logs[0].OpportunityID)
	require.NotNil(t, logs[0].ContactID)
	assert.Equal(t, ct.ID, *logs[0].ContactID)
}

func TestLeadConverted(t *testing.T) {
	client, observer, org, u := setupObserver(t)
	ctx := context.Background()

	l := client.Lead.Create().
		SetOrganizationID(org.ID).
		SetName("Jane Smith").
		SetEmail("jane@acme.com").
		SetStatus(lead.StatusConverted).
		SetAssignedToID(u.ID).
		SaveX(ctx)
	acc := client.Account.Create().SetOrganizationID(org.ID).SetName("Acme").SaveX(ctx)
	opp := client.Opportunity.Create().
		SetOrganizationID(org.ID).
		SetAccountID(acc.ID).
		SetName("Opportunity for Jane Smith").
		SetOwnerID(u.ID).
		SaveX(ctx)

	observer.LeadConverted(ctx, l, opp, u.ID)

	logs := allLogs(t, client)
	require.Len(t, logs, 1)
	assert.Equal(t, "Lead Jane Smith successfully converted to opportunity: Opportunity for Jane Smith", logs[0].Summary)
	require.NotNil(t, logs[0].LeadID)
	require.NotNil(t, logs[0].OpportunityID)
}
