// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/organization"
	"github.com/sannty/salescrm/ent/quote"
	"github.com/sannty/salescrm/ent/user"
)

// Quote is the model entity for the Quote schema.
type Quote struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Opportunity the quote belongs to
	OpportunityID int `json:"opportunity_id,omitempty"`
	// Quote title
	Title string `json:"title,omitempty"`
	// Cached sum of line item totals; recomputed on every line item write
	TotalPrice float64 `json:"total_price,omitempty"`
	// User who created the quote
	CreatedByID int `json:"created_by_id,omitempty"`
	// Free-text notes
	Notes string `json:"notes,omitempty"`
	// Owning organization
	OrganizationID int `json:"organization_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuoteQuery when eager-loading is set.
	Edges        QuoteEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuoteEdges holds the relations/edges for other nodes in the graph.
type QuoteEdges struct {
	// Organization holds the value of the organization edge.
	Organization *Organization `json:"organization,omitempty"`
	// Opportunity holds the value of the opportunity edge.
	Opportunity *Opportunity `json:"opportunity,omitempty"`
	// CreatedBy holds the value of the created_by edge.
	CreatedBy *User `json:"created_by,omitempty"`
	// LineItems holds the value of the line_items edge.
	LineItems []*QuoteLineItem `json:"line_items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// OrganizationOrErr returns the Organization value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteEdges) OrganizationOrErr() (*Organization, error) {
	if e.Organization != nil {
		return e.Organization, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: organization.Label}
	}
	return nil, &NotLoadedError{edge: "organization"}
}

// OpportunityOrErr returns the Opportunity value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteEdges) OpportunityOrErr() (*Opportunity, error) {
	if e.Opportunity != nil {
		return e.Opportunity, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: opportunity.Label}
	}
	return nil, &NotLoadedError{edge: "opportunity"}
}

// CreatedByOrErr returns the CreatedBy value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteEdges) CreatedByOrErr() (*User, error) {
	if e.CreatedBy != nil {
		return e.CreatedBy, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "created_by"}
}

// LineItemsOrErr returns the LineItems value or an error if the edge
// was not loaded in eager-loading.
func (e QuoteEdges) LineItemsOrErr() ([]*QuoteLineItem, error) {
	if e.loadedTypes[3] {
		return e.LineItems, nil
	}
	return nil, &NotLoadedError{edge: "line_items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Quote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quote.FieldTotalPrice:
			values[i] = new(sql.NullFloat64)
		case quote.FieldID, quote.FieldOpportunityID, quote.FieldCreatedByID, quote.FieldOrganizationID:
			values[i] = new(sql.NullInt64)
		case quote.FieldTitle, quote.FieldNotes:
			values[i] = new(sql.NullString)
		case quote.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Quote fields.
func (_m *Quote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quote.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quote.FieldOpportunityID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field opportunity_id", values[i])
			} else if value.Valid {
				_m.OpportunityID = int(value.Int64)
			}
		case quote.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case quote.FieldTotalPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_price", values[i])
			} else if value.Valid {
				_m.TotalPrice = value.Float64
			}
		case quote.FieldCreatedByID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_by_id", values[i])
			} else if value.Valid {
				_m.CreatedByID = int(value.Int64)
			}
		case quote.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case quote.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = int(value.Int64)
			}
		case quote.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Quote.
// This includes values selected through modifiers, order, etc.
func (_m *Quote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrganization queries the "organization" edge of the Quote entity.
func (_m *Quote) QueryOrganization() *OrganizationQuery {
	return NewQuoteClient(_m.config).QueryOrganization(_m)
}

// QueryOpportunity queries the "opportunity" edge of the Quote entity.
func (_m *Quote) QueryOpportunity() *OpportunityQuery {
	return NewQuoteClient(_m.config).QueryOpportunity(_m)
}

// QueryCreatedBy queries the "created_by" edge of the Quote entity.
func (_m *Quote) QueryCreatedBy() *UserQuery {
	return NewQuoteClient(_m.config).QueryCreatedBy(_m)
}

// QueryLineItems queries the "line_items" edge of the Quote entity.
func (_m *Quote) QueryLineItems() *QuoteLineItemQuery {
	return NewQuoteClient(_m.config).QueryLineItems(_m)
}

// Update returns a builder for updating this Quote.
// Note that you need to call Quote.Unwrap() before calling this method if this Quote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Quote) Update() *QuoteUpdateOne {
	return NewQuoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Quote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Quote) Unwrap() *Quote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Quote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Quote) String() string {
	var builder strings.Builder
	builder.WriteString("Quote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("opportunity_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpportunityID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("total_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPrice))
	builder.WriteString(", ")
	builder.WriteString("created_by_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedByID))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrganizationID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Quotes is a parsable slice of Quote.
type Quotes []*Quote
