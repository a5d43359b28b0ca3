// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sannty/salescrm/ent/organization"
)

// Organization is the model entity for the Organization schema.
type Organization struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Organization name
	Name string `json:"name,omitempty"`
	// Organization description
	Description string `json:"description,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OrganizationQuery when eager-loading is set.
	Edges        OrganizationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OrganizationEdges holds the relations/edges for other nodes in the graph.
type OrganizationEdges struct {
	// Users belonging to this organization
	Users []*User `json:"users,omitempty"`
	// Accounts holds the value of the accounts edge.
	Accounts []*Account `json:"accounts,omitempty"`
	// Contacts holds the value of the contacts edge.
	Contacts []*Contact `json:"contacts,omitempty"`
	// Leads holds the value of the leads edge.
	Leads []*Lead `json:"leads,omitempty"`
	// Opportunities holds the value of the opportunities edge.
	Opportunities []*Opportunity `json:"opportunities,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Products holds the value of the products edge.
	Products []*Product `json:"products,omitempty"`
	// Quotes holds the value of the quotes edge.
	Quotes []*Quote `json:"quotes,omitempty"`
	// LineItems holds the value of the line_items edge.
	LineItems []*QuoteLineItem `json:"line_items,omitempty"`
	// Interactions holds the value of the interactions edge.
	Interactions []*InteractionLog `json:"interactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [10]bool
}

// UsersOrErr returns the Users value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) UsersOrErr() ([]*User, error) {
	if e.loadedTypes[0] {
		return e.Users, nil
	}
	return nil, &NotLoadedError{edge: "users"}
}

// AccountsOrErr returns the Accounts value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) AccountsOrErr() ([]*Account, error) {
	if e.loadedTypes[1] {
		return e.Accounts, nil
	}
	return nil, &NotLoadedError{edge: "accounts"}
}

// ContactsOrErr returns the Contacts value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) ContactsOrErr() ([]*Contact, error) {
	if e.loadedTypes[2] {
		return e.Contacts, nil
	}
	return nil, &NotLoadedError{edge: "contacts"}
}

// LeadsOrErr returns the Leads value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) LeadsOrErr() ([]*Lead, error) {
	if e.loadedTypes[3] {
		return e.Leads, nil
	}
	return nil, &NotLoadedError{edge: "leads"}
}

// OpportunitiesOrErr returns the Opportunities value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) OpportunitiesOrErr() ([]*Opportunity, error) {
	if e.loadedTypes[4] {
		return e.Opportunities, nil
	}
	return nil, &NotLoadedError{edge: "opportunities"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[5] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// ProductsOrErr returns the Products value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) ProductsOrErr() ([]*Product, error) {
	if e.loadedTypes[6] {
		return e.Products, nil
	}
	return nil, &NotLoadedError{edge: "products"}
}

// QuotesOrErr returns the Quotes value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) QuotesOrErr() ([]*Quote, error) {
	if e.loadedTypes[7] {
		return e.Quotes, nil
	}
	return nil, &NotLoadedError{edge: "quotes"}
}

// LineItemsOrErr returns the LineItems value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) LineItemsOrErr() ([]*QuoteLineItem, error) {
	if e.loadedTypes[8] {
		return e.LineItems, nil
	}
	return nil, &NotLoadedError{edge: "line_items"}
}

// InteractionsOrErr returns the Interactions value or an error if the edge
// was not loaded in eager-loading.
func (e OrganizationEdges) InteractionsOrErr() ([]*InteractionLog, error) {
	if e.loadedTypes[9] {
		return e.Interactions, nil
	}
	return nil, &NotLoadedError{edge: "interactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Organization) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case organization.FieldID:
			values[i] = new(sql.NullInt64)
		case organization.FieldName, organization.FieldDescription:
			values[i] = new(sql.NullString)
		case organization.FieldCreatedAt, organization.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Organization fields.
func (_m *Organization) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case organization.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case organization.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case organization.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case organization.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case organization.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Organization.
// This includes values selected through modifiers, order, etc.
func (_m *Organization) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUsers queries the "users" edge of the Organization entity.
func (_m *Organization) QueryUsers() *UserQuery {
	return NewOrganizationClient(_m.config).QueryUsers(_m)
}

// QueryAccounts queries the "accounts" edge of the Organization entity.
func (_m *Organization) QueryAccounts() *AccountQuery {
	return NewOrganizationClient(_m.config).QueryAccounts(_m)
}

// QueryContacts queries the "contacts" edge of the Organization entity.
func (_m *Organization) QueryContacts() *ContactQuery {
	return NewOrganizationClient(_m.config).QueryContacts(_m)
}

// QueryLeads queries the "leads" edge of the Organization entity.
func (_m *Organization) QueryLeads() *LeadQuery {
	return NewOrganizationClient(_m.config).QueryLeads(_m)
}

// QueryOpportunities queries the "opportunities" edge of the Organization entity.
func (_m *Organization) QueryOpportunities() *OpportunityQuery {
	return NewOrganizationClient(_m.config).QueryOpportunities(_m)
}

// QueryTasks queries the "tasks" edge of the Organization entity.
func (_m *Organization) QueryTasks() *TaskQuery {
	return NewOrganizationClient(_m.config).QueryTasks(_m)
}

// QueryProducts queries the "products" edge of the Organization entity.
func (_m *Organization) QueryProducts() *ProductQuery {
	return NewOrganizationClient(_m.config).QueryProducts(_m)
}

// QueryQuotes queries the "quotes" edge of the Organization entity.
func (_m *Organization) QueryQuotes() *QuoteQuery {
	return NewOrganizationClient(_m.config).QueryQuotes(_m)
}

// QueryLineItems queries the "line_items" edge of the Organization entity.
func (_m *Organization) QueryLineItems() *QuoteLineItemQuery {
	return NewOrganizationClient(_m.config).QueryLineItems(_m)
}

// QueryInteractions queries the "interactions" edge of the Organization entity.
func (_m *Organization) QueryInteractions() *InteractionLogQuery {
	return NewOrganizationClient(_m.config).QueryInteractions(_m)
}

// Update returns a builder for updating this Organization.
// Note that you need to call Organization.Unwrap() before calling this method if this Organization
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Organization) Update() *OrganizationUpdateOne {
	return NewOrganizationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Organization entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Organization) Unwrap() *Organization {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Organization is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Organization) String() string {
	var builder strings.Builder
	builder.WriteString("Organization(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Organizations is a parsable slice of Organization.
type Organizations []*Organization
