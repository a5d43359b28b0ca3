package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/predicate"
	"github.com/sannty/salescrm/pkg/cache"
)

// Feed provides read-side, dashboard-ready views over the interaction log.
type Feed struct {
	db    *ent.Client
	cache *cache.Client
	ttl   time.Duration
}

// NewFeed creates a new activity feed reader
func NewFeed(db *ent.Client, cache *cache.Client, ttl time.Duration) *Feed {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Feed{db: db, cache: cache, ttl: ttl}
}

// ActivityUser identifies the actor of an activity.
type ActivityUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ActivityEntity is the primary target of an activity as shown on the
// dashboard. Resolution precedence is lead > opportunity > contact.
type ActivityEntity struct {
	Type     string `json:"type"`
	ID       *int   `json:"id"`
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
}

// ActivityView is a single dashboard-formatted activity.
type ActivityView struct {
	ID        int            `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	User      ActivityUser   `json:"user"`
	Type      string         `json:"type"`
	Summary   string         `json:"summary"`
	Entity    ActivityEntity `json:"entity"`
}

// Summary aggregates a user's activity over a period.
type Summary struct {
	TotalActivities int            `json:"total_activities"`
	ByType          map[string]int `json:"by_type"`
	ByEntity        map[string]int `json:"by_entity"`
	PeriodDays      int            `json:"period_days"`
}

// Dashboard returns the formatted activity feed for an organization, looking
// back the given number of days, optionally filtered to one user. Results are
// cached briefly; the feed tolerates slightly stale reads.
func (f *Feed) Dashboard(ctx context.Context, orgID int, userID *int, days, limit int) ([]ActivityView, error) {
	if days <= 0 {
		days = 7
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	cacheKey := f.cacheKey(orgID, userID, days, limit)
	if f.cache != nil {
		if cached, err := f.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var views []ActivityView
			if err := json.Unmarshal([]byte(cached), &views); err == nil {
				return views, nil
			}
		}
	}

	logs, err := f.recent(ctx, orgID, userID, days, limit)
	if err != nil {
		return nil, err
	}

	views := make([]ActivityView, 0, len(logs))
	for _, l := range logs {
		views = append(views, formatView(l))
	}

	if f.cache != nil {
		if payload, err := json.Marshal(views); err == nil {
			_ = f.cache.Set(ctx, cacheKey, payload, f.ttl)
		}
	}

	return views, nil
}

func (f *Feed) cacheKey(orgID int, userID *int, days, limit int) string {
	user := "all"
	if userID != nil {
		user = fmt.Sprintf("%d", *userID)
	}
	return fmt.Sprintf("activity:feed:%d:%s:%d:%d", orgID, user, days, limit)
}

func (f *Feed) recent(ctx context.Context, orgID int, userID *int, days, limit int) ([]*ent.InteractionLog, error) {
	since := time.Now().AddDate(0, 0, -days)

	query := f.db.InteractionLog.Query().
		Where(
			interactionlog.OrganizationIDEQ(orgID),
			interactionlog.TimestampGTE(since),
		)

	if userID != nil {
		query = query.Where(interactionlog.UserIDEQ(*userID))
	}

	return query.
		WithUser().
		WithLead().
		WithContact(func(q *ent.ContactQuery) {
			q.WithAccount()
		}).
		WithOpportunity().
		Order(ent.Desc(interactionlog.FieldTimestamp)).
		Limit(limit).
		All(ctx)
}

// LeadTimeline returns the complete activity timeline for a lead, newest first.
func (f *Feed) LeadTimeline(ctx context.Context, orgID, leadID int) ([]*ent.InteractionLog, error) {
	return f.db.InteractionLog.Query().
		Where(
			interactionlog.OrganizationIDEQ(orgID),
			interactionlog.LeadIDEQ(leadID),
		).
		WithUser().
		Order(ent.Desc(interactionlog.FieldTimestamp)).
		All(ctx)
}

// OpportunityTimeline returns activities on the opportunity itself and on its
// related contact.
func (f *Feed) OpportunityTimeline(ctx context.Context, orgID int, opp *ent.Opportunity) ([]*ent.InteractionLog, error) {
	preds := []predicate.InteractionLog{interactionlog.OpportunityIDEQ(opp.ID)}
	if opp.ContactID != nil {
		preds = append(preds, interactionlog.ContactIDEQ(*opp.ContactID))
	}

	return f.db.InteractionLog.Query().
		Where(
			interactionlog.OrganizationIDEQ(orgID),
			interactionlog.Or(preds...),
		).
		WithUser().
		Order(ent.Desc(interactionlog.FieldTimestamp)).
		All(ctx)
}

// ContactTimeline returns direct contact activities plus activities on
// opportunities where the contact is the point of contact.
func (f *Feed) ContactTimeline(ctx context.Context, orgID, contactID int) ([]*ent.InteractionLog, error) {
	return f.db.InteractionLog.Query().
		Where(
			interactionlog.OrganizationIDEQ(orgID),
			interactionlog.Or(
				interactionlog.ContactIDEQ(contactID),
				interactionlog.HasOpportunityWith(opportunity.ContactIDEQ(contactID)),
			),
		).
		WithUser().
		Order(ent.Desc(interactionlog.FieldTimestamp)).
		All(ctx)
}

// UserSummary aggregates one user's activity over the last days.
func (f *Feed) UserSummary(ctx context.Context, orgID, userID, days int) (*Summary, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	logs, err := f.db.InteractionLog.Query().
		Where(
			interactionlog.OrganizationIDEQ(orgID),
			interactionlog.UserIDEQ(userID),
			interactionlog.TimestampGTE(since),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalActivities: len(logs),
		ByType:          map[string]int{},
		ByEntity:        map[string]int{"leads": 0, "contacts": 0, "opportunities": 0},
		PeriodDays:      days,
	}
	for _, l := range logs {
		summary.ByType[string(l.Type)]++
		if l.LeadID != nil {
			summary.ByEntity["leads"]++
		}
		if l.ContactID != nil {
			summary.ByEntity["contacts"]++
		}
		if l.OpportunityID != nil {
			summary.ByEntity["opportunities"]++
		}
	}

	return summary, nil
}

// formatView maps an interaction log row (with loaded edges) to its dashboard
// representation.
func formatView(l *ent.InteractionLog) ActivityView {
	view := ActivityView{
		ID:        l.ID,
		Timestamp: l.Timestamp,
		Type:      string(l.Type),
		Summary:   l.Summary,
	}

	if u := l.Edges.User; u != nil {
		name := strings.TrimSpace(u.FirstName + " " + u.LastName)
		if name == "" {
			name = u.Username
		}
		view.User = ActivityUser{ID: u.ID, Name: name, Email: u.Email}
	}

	switch {
	case l.Edges.Lead != nil:
		le := l.Edges.Lead
		subtitle := le.Company
		if subtitle == "" {
			subtitle = "No Company"
		}
		view.Entity = ActivityEntity{Type: "lead", ID: &le.ID, Name: le.Name, Subtitle: subtitle}
	case l.Edges.Opportunity != nil:
		op := l.Edges.Opportunity
		view.Entity = ActivityEntity{Type: "opportunity", ID: &op.ID, Name: op.Name, Subtitle: "$" + money(op.Amount)}
	case l.Edges.Contact != nil:
		co := l.Edges.Contact
		subtitle := ""
		if co.Edges.Account != nil {
			subtitle = co.Edges.Account.Name
		}
		view.Entity = ActivityEntity{Type: "contact", ID: &co.ID, Name: co.Name, Subtitle: subtitle}
	default:
		view.Entity = ActivityEntity{Type: "unknown", Name: "Unknown Entity"}
	}

	return view
}
