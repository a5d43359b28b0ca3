package tasks

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/enttest"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/task"
	"github.com/sannty/salescrm/pkg/activity"
	"github.com/sannty/salescrm/pkg/logger"
)

func setupTasks(t *testing.T) (*ent.Client, *Service, *ent.Organization, *ent.User) {
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

	observer := activity.NewObserver(activity.NewService(client), logger.Default())
	return client, NewService(client, observer, logger.Default()), org, u
}

func TestCreate(t *testing.T) {
	_, svc, org, u := setupTasks(t)
	ctx := context.Background()

	due := time.Now().Add(72 * time.Hour)
	created, err := svc.Create(ctx, org.ID, u.ID, CreateTaskRequest{
		Title:   "Kickoff call",
		Type:    "call",
		DueDate: due,
	})
	require.NoError(t, err)

	// Every task carries a due date; the overdue sweep depends on it.
	assert.WithinDuration(t, due, created.DueDate, time.Second)
	assert.Equal(t, u.ID, created.OwnerID)
	assert.Equal(t, task.StatusPending, created.Status)
}

func TestMarkCompleted(t *testing.T) {
	t.Run("completion is logged against the related lead", func(t *testing.T) {
		client, svc, org, u := setupTasks(t)
		ctx := context.Background()

		l := client.Lead.Create().
			SetOrganizationID(org.ID).
			SetName("Jane Smith").
			SetEmail("jane@acme.com").
			SetAssignedToID(u.ID).
			SaveX(ctx)

		created, err := svc.Create(ctx, org.ID, u.ID, CreateTaskRequest{
			Title:   "Intro call",
			Type:    "call",
			DueDate: time.Now().Add(24 * time.Hour),
			LeadID:  &l.ID,
			Notes:   "went well",
		})
		require.NoError(t, err)

		completed, err := svc.MarkCompleted(ctx, org.ID, u.ID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, completed.Status)

		logs := client.InteractionLog.Query().AllX(ctx)
		require.Len(t, logs, 1)
		assert.Equal(t, interactionlog.TypeCall, logs[0].Type)
		assert.Equal(t, "Task completed: completed call with Jane Smith - Notes: went well", logs[0].Summary)
	})

	t.Run("completing twice logs only once", func(t *testing.T) {
		client, svc, org, u := setupTasks(t)
		ctx := context.Background()

		created, err := svc.Create(ctx, org.ID, u.ID, CreateTaskRequest{
			Title:   "Ping",
			Type:    "email",
			DueDate: time.Now().Add(24 * time.Hour),
		})
		require.NoError(t, err)

		_, err = svc.MarkCompleted(ctx, org.ID, u.ID, created.ID)
		require.NoError(t, err)
		_, err = svc.MarkCompleted(ctx, org.ID, u.ID, created.ID)
		require.NoError(t, err)

		assert.Equal(t, 1, client.InteractionLog.Query().CountX(ctx))
	})
}

func TestSweepOverdue(t *testing.T) {
	client, svc, org, u := setupTasks(t)
	ctx := context.Background()

	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	stale, err := svc.Create(ctx, org.ID, u.ID, CreateTaskRequest{
		Title:   "Stale",
		Type:    "call",
		DueDate: past,
	})
	require.NoError(t, err)

	fresh, err := svc.Create(ctx, org.ID, u.ID, CreateTaskRequest{
		Title:   "Fresh",
		Type:    "call",
		DueDate: future,
	})
	require.NoError(t, err)

	done, err := svc.Create(ctx, org.ID, u.ID, CreateTaskRequest{
		Title:   "Done",
		Type:    "call",
		DueDate: past,
	})
	require.NoError(t, err)
	_, err = svc.MarkCompleted(ctx, org.ID, u.ID, done.ID)
	require.NoError(t, err)

	affected, err := svc.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	assert.Equal(t, task.StatusOverdue, client.Task.GetX(ctx, stale.ID).Status)
	assert.Equal(t, task.StatusPending, client.Task.GetX(ctx, fresh.ID).Status)
	assert.Equal(t, task.StatusCompleted, client.Task.GetX(ctx, done.ID).Status)
}

func TestOverdue(t *testing.T) {
	_, svc, org, u := setupTasks(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	_, err := svc.Create(ctx, org.ID, u.ID, CreateTaskRequest{
		Title:   "Late",
		Type:    "meeting",
		DueDate: past,
	})
	require.NoError(t, err)

	overdue, err := svc.Overdue(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, "Late", overdue[0].Title)
}
