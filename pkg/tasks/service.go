package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/task"
	"github.com/sannty/salescrm/pkg/activity"
	"github.com/sannty/salescrm/pkg/logger"
)

// ErrNotFound is returned when a task does not exist in the caller's
// organization.
var ErrNotFound = errors.New("task not found")

// Service handles task business logic
type Service struct {
	db       *ent.Client
	observer *activity.Observer
	log      logger.Logger
}

// NewService creates a new task service
func NewService(db *ent.Client, observer *activity.Observer, log logger.Logger) *Service {
	return &Service{db: db, observer: observer, log: log}
}

// CreateTaskRequest represents a request to create a task.
type CreateTaskRequest struct {
	Title         string    `json:"title" validate:"required"`
	Type          string    `json:"type" validate:"required,oneof=call email meeting demo"`
	DueDate       time.Time `json:"due_date" validate:"required"`
	LeadID        *int      `json:"lead_id,omitempty"`
	OpportunityID *int      `json:"opportunity_id,omitempty"`
	OwnerID       *int      `json:"owner_id,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// UpdateTaskRequest represents a partial update. Nil fields are left
// untouched.
type UpdateTaskRequest struct {
	Title   *string    `json:"title,omitempty"`
	DueDate *time.Time `json:"due_date,omitempty"`
	Notes   *string    `json:"notes,omitempty"`
	OwnerID *int       `json:"owner_id,omitempty"`
}

// Create creates a task. Tasks without an explicit owner belong to the actor.
func (s *Service) Create(ctx context.Context, orgID, actorID int, req CreateTaskRequest) (*ent.Task, error) {
	ownerID := actorID
	if req.OwnerID != nil {
		ownerID = *req.OwnerID
	}

	create := s.db.Task.Create().
		SetOrganizationID(orgID).
		SetTitle(req.Title).
		SetType(task.Type(req.Type)).
		SetDueDate(req.DueDate).
		SetOwnerID(ownerID).
		SetNotes(req.Notes)
	if req.LeadID != nil {
		create = create.SetLeadID(*req.LeadID)
	}
	if req.OpportunityID != nil {
		create = create.SetOpportunityID(*req.OpportunityID)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// Get returns a task by ID scoped to an organization.
func (s *Service) Get(ctx context.Context, orgID, taskID int) (*ent.Task, error) {
	t, err := s.db.Task.Query().
		Where(task.IDEQ(taskID), task.OrganizationIDEQ(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return t, nil
}

// List returns an organization's tasks, soonest due first, optionally
// filtered by status and owner.
func (s *Service) List(ctx context.Context, orgID int, status string, ownerID *int, limit, offset int) ([]*ent.Task, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := s.db.Task.Query().
		Where(task.OrganizationIDEQ(orgID))
	if status != "" {
		query = query.Where(task.StatusEQ(task.Status(status)))
	}
	if ownerID != nil {
		query = query.Where(task.OwnerIDEQ(*ownerID))
	}

	return query.
		Order(ent.Asc(task.FieldDueDate)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

// Update applies a partial update to a task. Status changes go through
// MarkCompleted so that completions always hit the activity timeline.
func (s *Service) Update(ctx context.Context, orgID, taskID int, req UpdateTaskRequest) (*ent.Task, error) {
	t, err := s.Get(ctx, orgID, taskID)
	if err != nil {
		return nil, err
	}

	update := s.db.Task.UpdateOneID(t.ID)
	if req.Title != nil {
		update = update.SetTitle(*req.Title)
	}
	if req.DueDate != nil {
		update = update.SetDueDate(*req.DueDate)
	}
	if req.Notes != nil {
		update = update.SetNotes(*req.Notes)
	}
	if req.OwnerID != nil {
		update = update.SetOwnerID(*req.OwnerID)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// MarkCompleted transitions a task to completed and records the completion
// on the activity timeline in the same transaction. Completing an already
// completed task is a no-op.
func (s *Service) MarkCompleted(ctx context.Context, orgID, actorID, taskID int) (*ent.Task, error) {
	t, err := s.Get(ctx, orgID, taskID)
	if err != nil {
		return nil, err
	}
	if t.Status == task.StatusCompleted {
		return t, nil
	}

	var relatedLead *ent.Lead
	if t.LeadID != nil {
		relatedLead, err = s.db.Lead.Get(ctx, *t.LeadID)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load task lead: %w", err)
		}
	}
	var relatedOpp *ent.Opportunity
	if t.OpportunityID != nil {
		relatedOpp, err = s.db.Opportunity.Get(ctx, *t.OpportunityID)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to load task opportunity: %w", err)
		}
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	completed, err := tx.Task.UpdateOneID(t.ID).
		SetStatus(task.StatusCompleted).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	s.observer.WithTx(tx).TaskCompleted(ctx, completed, relatedLead, relatedOpp, actorID)

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit task completion: %w", err)
	}

	return completed, nil
}

// Delete removes a task from an organization.
func (s *Service) Delete(ctx context.Context, orgID, taskID int) error {
	affected, err := s.db.Task.Delete().
		Where(task.IDEQ(taskID), task.OrganizationIDEQ(orgID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Overdue returns an organization's pending tasks whose due date has passed.
func (s *Service) Overdue(ctx context.Context, orgID int) ([]*ent.Task, error) {
	return s.db.Task.Query().
		Where(
			task.OrganizationIDEQ(orgID),
			task.StatusEQ(task.StatusPending),
			task.DueDateLT(time.Now()),
		).
		Order(ent.Asc(task.FieldDueDate)).
		All(ctx)
}

// SweepOverdue flips pending tasks past their due date to overdue across all
// organizations. Run by the scheduler; returns the number of tasks touched.
func (s *Service) SweepOverdue(ctx context.Context) (int, error) {
	affected, err := s.db.Task.Update().
		Where(
			task.StatusEQ(task.StatusPending),
			task.DueDateLT(time.Now()),
		).
		SetStatus(task.StatusOverdue).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep overdue tasks: %w", err)
	}
	if affected > 0 {
		s.log.Info("marked tasks overdue", "count", affected)
	}
	return affected, nil
}
