// Code generated by ent, DO NOT EDIT.

package interactionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sannty/salescrm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldUserID, v))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldLeadID, v))
}

// ContactID applies equality check predicate on the "contact_id" field. It's identical to ContactIDEQ.
func ContactID(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldContactID, v))
}

// OpportunityID applies equality check predicate on the "opportunity_id" field. It's identical to OpportunityIDEQ.
func OpportunityID(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldOpportunityID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldSummary, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldOrganizationID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotIn(FieldUserID, vs...))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDIsNil applies the IsNil predicate on the "lead_id" field.
func LeadIDIsNil() predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIsNull(FieldLeadID))
}

// LeadIDNotNil applies the NotNil predicate on the "lead_id" field.
func LeadIDNotNil() predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotNull(FieldLeadID))
}

// ContactIDEQ applies the EQ predicate on the "contact_id" field.
func ContactIDEQ(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldContactID, v))
}

// ContactIDNEQ applies the NEQ predicate on the "contact_id" field.
func ContactIDNEQ(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNEQ(FieldContactID, v))
}

// ContactIDIn applies the In predicate on the "contact_id" field.
func ContactIDIn(vs ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIn(FieldContactID, vs...))
}

// ContactIDNotIn applies the NotIn predicate on the "contact_id" field.
func ContactIDNotIn(vs ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotIn(FieldContactID, vs...))
}

// ContactIDIsNil applies the IsNil predicate on the "contact_id" field.
func ContactIDIsNil() predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIsNull(FieldContactID))
}

// ContactIDNotNil applies the NotNil predicate on the "contact_id" field.
func ContactIDNotNil() predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotNull(FieldContactID))
}

// OpportunityIDEQ applies the EQ predicate on the "opportunity_id" field.
func OpportunityIDEQ(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldOpportunityID, v))
}

// OpportunityIDNEQ applies the NEQ predicate on the "opportunity_id" field.
func OpportunityIDNEQ(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNEQ(FieldOpportunityID, v))
}

// OpportunityIDIn applies the In predicate on the "opportunity_id" field.
func OpportunityIDIn(vs ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIn(FieldOpportunityID, vs...))
}

// OpportunityIDNotIn applies the NotIn predicate on the "opportunity_id" field.
func OpportunityIDNotIn(vs ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotIn(FieldOpportunityID, vs...))
}

// OpportunityIDIsNil applies the IsNil predicate on the "opportunity_id" field.
func OpportunityIDIsNil() predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIsNull(FieldOpportunityID))
}

// OpportunityIDNotNil applies the NotNil predicate on the "opportunity_id" field.
func OpportunityIDNotNil() predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotNull(FieldOpportunityID))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotIn(FieldType, vs...))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldContainsFold(FieldSummary, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...int) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InteractionLog {
	return predicate.InteractionLog(sql.FieldLTE(FieldTimestamp, v))
}

// HasOrganization applies the HasEdge predicate on the "organization" edge.
func HasOrganization() predicate.InteractionLog {
	return predicate.InteractionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrganizationWith applies the HasEdge predicate on the "organization" edge with a given conditions (other predicates).
func HasOrganizationWith(preds ...predicate.Organization) predicate.InteractionLog {
	return predicate.InteractionLog(func(s *sql.Selector) {
		step := newOrganizationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.InteractionLog {
	return predicate.InteractionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.InteractionLog {
	return predicate.InteractionLog(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLead applies the HasEdge predicate on the "lead" edge.
func HasLead() predicate.InteractionLog {
	return predicate.InteractionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadWith applies the HasEdge predicate on the "lead" edge with a given conditions (other predicates).
func HasLeadWith(preds ...predicate.Lead) predicate.InteractionLog {
	return predicate.InteractionLog(func(s *sql.Selector) {
		step := newLeadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasContact applies the HasEdge predicate on the "contact" edge.
func HasContact() predicate.InteractionLog {
	return predicate.InteractionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContactTable, ContactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactWith applies the HasEdge predicate on the "contact" edge with a given conditions (other predicates).
func HasContactWith(preds ...predicate.Contact) predicate.InteractionLog {
	return predicate.InteractionLog(func(s *sql.Selector) {
		step := newContactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOpportunity applies the HasEdge predicate on the "opportunity" edge.
func HasOpportunity() predicate.InteractionLog {
	return predicate.InteractionLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OpportunityTable, OpportunityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOpportunityWith applies the HasEdge predicate on the "opportunity" edge with a given conditions (other predicates).
func HasOpportunityWith(preds ...predicate.Opportunity) predicate.InteractionLog {
	return predicate.InteractionLog(func(s *sql.Selector) {
		step := newOpportunityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InteractionLog) predicate.InteractionLog {
	return predicate.InteractionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InteractionLog) predicate.InteractionLog {
	return predicate.InteractionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InteractionLog) predicate.InteractionLog {
	return predicate.InteractionLog(sql.NotPredicates(p))
}
