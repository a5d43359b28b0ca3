package activity

import (
	"context"
	"time"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/pkg/metrics"
)

// Service persists InteractionLog rows. Logs are append-only: nothing in the
// application updates or deletes a row after Save.
type Service struct {
	db *ent.Client
}

// NewService creates a new activity log service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// WithTx returns a service bound to the given transaction, so log rows commit
// or roll back together with the entity writes they describe.
func (s *Service) WithTx(tx *ent.Tx) *Service {
	return &Service{db: tx.Client()}
}

// Entry represents one interaction log entry. Any subset of the lead, contact
// and opportunity targets may be set.
type Entry struct {
	OrganizationID int
	UserID         int
	LeadID         *int
	ContactID      *int
	OpportunityID  *int
	Type           interactionlog.Type
	Summary        string
}

// Log creates a new interaction log entry
func (s *Service) Log(ctx context.Context, entry Entry) (*ent.InteractionLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	create := s.db.InteractionLog.Create().
		SetOrganizationID(entry.OrganizationID).
		SetUserID(entry.UserID).
		SetType(entry.Type).
		SetSummary(entry.Summary)

	if entry.LeadID != nil {
		create = create.SetLeadID(*entry.LeadID)
	}
	if entry.ContactID != nil {
		create = create.SetContactID(*entry.ContactID)
	}
	if entry.OpportunityID != nil {
		create = create.SetOpportunityID(*entry.OpportunityID)
	}

	saved, err := create.Save(ctx)
	if err != nil {
		return nil, err
	}
	metrics.InteractionLogged(string(entry.Type))
	return saved, nil
}

// LogManual records a user-authored interaction (call notes, emails, ...)
// against any combination of targets. Used by the log-interaction endpoints.
func (s *Service) LogManual(ctx context.Context, orgID, userID int, logType, summary string, leadID, contactID, opportunityID *int) (*ent.InteractionLog, error) {
	t := interactionlog.Type(logType)
	if err := interactionlog.TypeValidator(t); err != nil {
		t = interactionlog.TypeNote
	}

	return s.Log(ctx, Entry{
		OrganizationID: orgID,
		UserID:         userID,
		LeadID:         leadID,
		ContactID:      contactID,
		OpportunityID:  opportunityID,
		Type:           t,
		Summary:        summary,
	})
}

// List returns interaction logs for an organization, newest first, optionally
// filtered to a single lead, contact or opportunity.
func (s *Service) List(ctx context.Context, orgID int, leadID, contactID, opportunityID *int, limit int) ([]*ent.InteractionLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := s.db.InteractionLog.Query().
		Where(interactionlog.OrganizationIDEQ(orgID))

	if leadID != nil {
		query = query.Where(interactionlog.LeadIDEQ(*leadID))
	}
	if contactID != nil {
		query = query.Where(interactionlog.ContactIDEQ(*contactID))
	}
	if opportunityID != nil {
		query = query.Where(interactionlog.OpportunityIDEQ(*opportunityID))
	}

	return query.
		Order(ent.Desc(interactionlog.FieldTimestamp)).
		Limit(limit).
		All(ctx)
}
