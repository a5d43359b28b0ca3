package activity

import (
	"context"
	"fmt"
	"math"

	"github.com/sannty/salescrm/ent"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/task"
	"github.com/sannty/salescrm/pkg/logger"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Observer derives interaction log entries from entity mutations. Callers
// invoke it explicitly after each write; there is no implicit hook machinery.
//
// Every method is best-effort: a failure to construct or persist a log entry
// is logged and swallowed, and never fails the entity write it describes.
type Observer struct {
	logs *Service
	log  logger.Logger
}

// NewObserver creates a new change observer
func NewObserver(logs *Service, log logger.Logger) *Observer {
	return &Observer{logs: logs, log: log}
}

// WithTx returns an observer whose log writes join the given transaction.
func (o *Observer) WithTx(tx *ent.Tx) *Observer {
	return &Observer{logs: o.logs.WithTx(tx), log: o.log}
}

// LeadChange carries the persisted state of a lead before and after a save.
// Previous is nil for a freshly created lead.
type LeadChange struct {
	Previous *ent.Lead
	Next     *ent.Lead
}

// OpportunityChange carries the persisted state of an opportunity before and
// after a save. Previous is nil for a freshly created opportunity.
type OpportunityChange struct {
	Previous *ent.Opportunity
	Next     *ent.Opportunity
}

var usd = message.NewPrinter(language.English)

// money formats an amount as "12,345.67"
func money(v float64) string {
	return usd.Sprintf("%.2f", v)
}

var leadStatusMessages = map[lead.Status]string{
	lead.StatusNew:          "marked as new",
	lead.StatusContacted:    "contacted for the first time",
	lead.StatusQualified:    "qualified as a potential customer",
	lead.StatusConverted:    "successfully converted to opportunity",
	lead.StatusDisqualified: "disqualified from sales process",
}

var leadStatusDisplay = map[lead.Status]string{
	lead.StatusNew:          "New",
	lead.StatusContacted:    "Contacted",
	lead.StatusQualified:    "Qualified",
	lead.StatusConverted:    "Converted",
	lead.StatusDisqualified: "Disqualified",
}

var opportunityStageMessages = map[opportunity.Stage]string{
	opportunity.StageQualification: "moved to qualification stage",
	opportunity.StageProposal:      "moved to proposal stage - preparing quote",
	opportunity.StageNegotiation:   "entered negotiation phase",
	opportunity.StageWon:           "WON! Deal closed successfully",
	opportunity.StageLost:          "marked as lost - opportunity closed",
}

var opportunityStageDisplay = map[opportunity.Stage]string{
	opportunity.StageQualification: "Qualification",
	opportunity.StageProposal:      "Proposal",
	opportunity.StageNegotiation:   "Negotiation",
	opportunity.StageWon:           "Closed Won",
	opportunity.StageLost:          "Closed Lost",
}

// emit writes an entry, suppressing any failure.
func (o *Observer) emit(ctx context.Context, entry Entry) {
	if _, err := o.logs.Log(ctx, entry); err != nil {
		o.log.Warn("activity log skipped", "error", err, "summary", entry.Summary)
	}
}

// LeadCreated records the creation of a lead. Skipped when the lead has no
// assigned user to attribute the activity to.
func (o *Observer) LeadCreated(ctx context.Context, l *ent.Lead) {
	if l.AssignedToID == nil {
		return
	}

	company := l.Company
	if company == "" {
		company = "Unknown Company"
	}

	o.emit(ctx, Entry{
		OrganizationID: l.OrganizationID,
		UserID:         *l.AssignedToID,
		LeadID:         &l.ID,
		Type:           interactionlog.TypeNote,
		Summary:        fmt.Sprintf("New lead created: %s from %s", l.Name, company),
	})
}

// LeadStatusChanged records a lead status transition. A change with no prior
// persisted state (Previous == nil) is not a transition and is skipped; the
// creation rule covers that save instead.
func (o *Observer) LeadStatusChanged(ctx context.Context, change LeadChange, actorID int) {
	if change.Previous == nil || change.Next == nil {
		return
	}
	if change.Previous.Status == change.Next.Status {
		return
	}

	action, ok := leadStatusMessages[change.Next.Status]
	if !ok {
		action = fmt.Sprintf("status changed to %s", displayLeadStatus(change.Next.Status))
	}

	userID := actorID
	if change.Next.AssignedToID != nil {
		userID = *change.Next.AssignedToID
	}

	o.emit(ctx, Entry{
		OrganizationID: change.Next.OrganizationID,
		UserID:         userID,
		LeadID:         &change.Next.ID,
		Type:           interactionlog.TypeNote,
		Summary:        fmt.Sprintf("Lead %s %s", change.Next.Name, action),
	})
}

// OpportunityCreated records the creation of an opportunity.
func (o *Observer) OpportunityCreated(ctx context.Context, opp *ent.Opportunity, actorID int) {
	o.emit(ctx, Entry{
		OrganizationID: opp.OrganizationID,
		UserID:         ownerOrActor(opp, actorID),
		OpportunityID:  &opp.ID,
		ContactID:      opp.ContactID,
		Type:           interactionlog.TypeNote,
		Summary:        fmt.Sprintf("New opportunity created: %s worth $%s", opp.Name, money(opp.Amount)),
	})
}

// OpportunityStageChanged records a pipeline stage transition.
func (o *Observer) OpportunityStageChanged(ctx context.Context, change OpportunityChange, actorID int) {
	if change.Previous == nil || change.Next == nil {
		return
	}
	if change.Previous.Stage == change.Next.Stage {
		return
	}

	action, ok := opportunityStageMessages[change.Next.Stage]
	if !ok {
		action = fmt.Sprintf("stage changed to %s", displayOpportunityStage(change.Next.Stage))
	}

	o.emit(ctx, Entry{
		OrganizationID: change.Next.OrganizationID,
		UserID:         ownerOrActor(change.Next, actorID),
		OpportunityID:  &change.Next.ID,
		ContactID:      change.Next.ContactID,
		Type:           interactionlog.TypeNote,
		Summary:        fmt.Sprintf("Opportunity %s %s", change.Next.Name, action),
	})
}

// OpportunityAmountChanged records a significant change in deal value: more
// than 10% of the old amount and at least $1000 in absolute terms. Amounts of
// zero on either side never qualify.
func (o *Observer) OpportunityAmountChanged(ctx context.Context, change OpportunityChange, actorID int) {
	if change.Previous == nil || change.Next == nil {
		return
	}

	oldAmount := change.Previous.Amount
	newAmount := change.Next.Amount
	if oldAmount == 0 || newAmount == 0 {
		return
	}

	diff := math.Abs(newAmount - oldAmount)
	if diff/math.Abs(oldAmount) <= 0.10 || diff < 1000 {
		return
	}

	direction := "increased"
	if newAmount < oldAmount {
		direction = "decreased"
	}

	o.emit(ctx, Entry{
		OrganizationID: change.Next.OrganizationID,
		UserID:         ownerOrActor(change.Next, actorID),
		OpportunityID:  &change.Next.ID,
		ContactID:      change.Next.ContactID,
		Type:           interactionlog.TypeNote,
		Summary:        fmt.Sprintf("Opportunity value %s from $%s to $%s", direction, money(oldAmount), money(newAmount)),
	})
}

// QuoteCreated records the creation of a quote against its opportunity.
func (o *Observer) QuoteCreated(ctx context.Context, q *ent.Quote, opp *ent.Opportunity) {
	entry := Entry{
		OrganizationID: q.OrganizationID,
		UserID:         q.CreatedByID,
		OpportunityID:  &q.OpportunityID,
		Type:           interactionlog.TypeNote,
		Summary:        fmt.Sprintf("Quote created: %s for $%s", q.Title, money(q.TotalPrice)),
	}
	if opp != nil {
		entry.ContactID = opp.ContactID
	}
	o.emit(ctx, entry)
}

var taskTypeActions = map[task.Type]string{
	task.TypeCall:    "completed call with",
	task.TypeEmail:   "sent email to",
	task.TypeMeeting: "held meeting with",
	task.TypeDemo:    "conducted demo for",
}

// TaskCompleted records the completion of a task. Invoked explicitly by the
// task workflow, never on plain saves. The related lead wins over the related
// opportunity when both are set; relatedLead and relatedOpp are the loaded
// relations and may be nil.
func (o *Observer) TaskCompleted(ctx context.Context, t *ent.Task, relatedLead *ent.Lead, relatedOpp *ent.Opportunity, actorID int) {
	action, ok := taskTypeActions[t.Type]
	if !ok {
		action = fmt.Sprintf("completed %s task for", t.Type)
	}

	var target string
	entry := Entry{
		OrganizationID: t.OrganizationID,
		UserID:         actorID,
	}
	switch {
	case relatedLead != nil:
		target = relatedLead.Name
		entry.LeadID = &relatedLead.ID
	case relatedOpp != nil:
		target = relatedOpp.Name
		entry.OpportunityID = &relatedOpp.ID
		entry.ContactID = relatedOpp.ContactID
	default:
		target = "unknown contact"
	}

	summary := fmt.Sprintf("Task completed: %s %s", action, target)
	if t.Notes != "" {
		notes := t.Notes
		ellipsis := ""
		// Truncate on characters, not bytes, so multibyte notes are
		// never split mid-rune.
		if runes := []rune(notes); len(runes) > 100 {
			notes = string(runes[:100])
			ellipsis = "..."
		}
		summary += fmt.Sprintf(" - Notes: %s%s", notes, ellipsis)
	}
	entry.Summary = summary

	// Demo has no interaction log counterpart; anything outside
	// call/email/meeting is recorded as a note.
	switch t.Type {
	case task.TypeCall:
		entry.Type = interactionlog.TypeCall
	case task.TypeEmail:
		entry.Type = interactionlog.TypeEmail
	case task.TypeMeeting:
		entry.Type = interactionlog.TypeMeeting
	default:
		entry.Type = interactionlog.TypeNote
	}

	o.emit(ctx, entry)
}

// LeadConverted records a successful lead-to-opportunity conversion.
func (o *Observer) LeadConverted(ctx context.Context, l *ent.Lead, opp *ent.Opportunity, actorID int) {
	o.emit(ctx, Entry{
		OrganizationID: l.OrganizationID,
		UserID:         actorID,
		LeadID:         &l.ID,
		OpportunityID:  &opp.ID,
		ContactID:      opp.ContactID,
		Type:           interactionlog.TypeNote,
		Summary:        fmt.Sprintf("Lead %s successfully converted to opportunity: %s", l.Name, opp.Name),
	})
}

func ownerOrActor(opp *ent.Opportunity, actorID int) int {
	if opp.OwnerID != nil {
		return *opp.OwnerID
	}
	return actorID
}

func displayLeadStatus(s lead.Status) string {
	if d, ok := leadStatusDisplay[s]; ok {
		return d
	}
	return string(s)
}

func displayOpportunityStage(s opportunity.Stage) string {
	if d, ok := opportunityStageDisplay[s]; ok {
		return d
	}
	return string(s)
}
