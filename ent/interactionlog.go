// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sannty/salescrm/ent/contact"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/organization"
	"github.com/sannty/salescrm/ent/user"
)

// InteractionLog is the model entity for the InteractionLog schema.
type InteractionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User the activity is attributed to
	UserID int `json:"user_id,omitempty"`
	// Lead target (any subset of lead/contact/opportunity may be set)
	LeadID *int `json:"lead_id,omitempty"`
	// Contact target
	ContactID *int `json:"contact_id,omitempty"`
	// Opportunity target
	OpportunityID *int `json:"opportunity_id,omitempty"`
	// Kind of interaction
	Type interactionlog.Type `json:"type,omitempty"`
	// Human-readable description of the event
	Summary string `json:"summary,omitempty"`
	// Owning organization
	OrganizationID int `json:"organization_id,omitempty"`
	// When the activity happened
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InteractionLogQuery when eager-loading is set.
	Edges        InteractionLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InteractionLogEdges holds the relations/edges for other nodes in the graph.
type InteractionLogEdges struct {
	// Organization holds the value of the organization edge.
	Organization *Organization `json:"organization,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Lead holds the value of the lead edge.
	Lead *Lead `json:"lead,omitempty"`
	// Contact holds the value of the contact edge.
	Contact *Contact `json:"contact,omitempty"`
	// Opportunity holds the value of the opportunity edge.
	Opportunity *Opportunity `json:"opportunity,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// OrganizationOrErr returns the Organization value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InteractionLogEdges) OrganizationOrErr() (*Organization, error) {
	if e.Organization != nil {
		return e.Organization, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: organization.Label}
	}
	return nil, &NotLoadedError{edge: "organization"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InteractionLogEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InteractionLogEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// ContactOrErr returns the Contact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InteractionLogEdges) ContactOrErr() (*Contact, error) {
	if e.Contact != nil {
		return e.Contact, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: contact.Label}
	}
	return nil, &NotLoadedError{edge: "contact"}
}

// OpportunityOrErr returns the Opportunity value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InteractionLogEdges) OpportunityOrErr() (*Opportunity, error) {
	if e.Opportunity != nil {
		return e.Opportunity, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: opportunity.Label}
	}
	return nil, &NotLoadedError{edge: "opportunity"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InteractionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interactionlog.FieldID, interactionlog.FieldUserID, interactionlog.FieldLeadID, interactionlog.FieldContactID, interactionlog.FieldOpportunityID, interactionlog.FieldOrganizationID:
			values[i] = new(sql.NullInt64)
		case interactionlog.FieldType, interactionlog.FieldSummary:
			values[i] = new(sql.NullString)
		case interactionlog.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InteractionLog fields.
func (_m *InteractionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interactionlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interactionlog.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case interactionlog.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = new(int)
				*_m.LeadID = int(value.Int64)
			}
		case interactionlog.FieldContactID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field contact_id", values[i])
			} else if value.Valid {
				_m.ContactID = new(int)
				*_m.ContactID = int(value.Int64)
			}
		case interactionlog.FieldOpportunityID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field opportunity_id", values[i])
			} else if value.Valid {
				_m.OpportunityID = new(int)
				*_m.OpportunityID = int(value.Int64)
			}
		case interactionlog.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = interactionlog.Type(value.String)
			}
		case interactionlog.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case interactionlog.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = int(value.Int64)
			}
		case interactionlog.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InteractionLog.
// This includes values selected through modifiers, order, etc.
func (_m *InteractionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrganization queries the "organization" edge of the InteractionLog entity.
func (_m *InteractionLog) QueryOrganization() *OrganizationQuery {
	return NewInteractionLogClient(_m.config).QueryOrganization(_m)
}

// QueryUser queries the "user" edge of the InteractionLog entity.
func (_m *InteractionLog) QueryUser() *UserQuery {
	return NewInteractionLogClient(_m.config).QueryUser(_m)
}

// QueryLead queries the "lead" edge of the InteractionLog entity.
func (_m *InteractionLog) QueryLead() *LeadQuery {
	return NewInteractionLogClient(_m.config).QueryLead(_m)
}

// QueryContact queries the "contact" edge of the InteractionLog entity.
func (_m *InteractionLog) QueryContact() *ContactQuery {
	return NewInteractionLogClient(_m.config).QueryContact(_m)
}

// QueryOpportunity queries the "opportunity" edge of the InteractionLog entity.
func (_m *InteractionLog) QueryOpportunity() *OpportunityQuery {
	return NewInteractionLogClient(_m.config).QueryOpportunity(_m)
}

// Update returns a builder for updating this InteractionLog.
// Note that you need to call InteractionLog.Unwrap() before calling this method if this InteractionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InteractionLog) Update() *InteractionLogUpdateOne {
	return NewInteractionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InteractionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InteractionLog) Unwrap() *InteractionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InteractionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InteractionLog) String() string {
	var builder strings.Builder
	builder.WriteString("InteractionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.LeadID; v != nil {
		builder.WriteString("lead_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ContactID; v != nil {
		builder.WriteString("contact_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OpportunityID; v != nil {
		builder.WriteString("opportunity_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrganizationID))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InteractionLogs is a parsable slice of InteractionLog.
type InteractionLogs []*InteractionLog
