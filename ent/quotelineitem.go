// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sannty/salescrm/ent/organization"
	"github.com/sannty/salescrm/ent/product"
	"github.com/sannty/salescrm/ent/quote"
	"github.com/sannty/salescrm/ent/quotelineitem"
)

// QuoteLineItem is the model entity for the QuoteLineItem schema.
type QuoteLineItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Quote the line item belongs to
	QuoteID int `json:"quote_id,omitempty"`
	// Quoted product (null if the product was deleted)
	ProductID *int `json:"product_id,omitempty"`
	// Number of units
	Quantity int `json:"quantity,omitempty"`
	// Price per unit at quoting time
	UnitPrice float64 `json:"unit_price,omitempty"`
	// Owning organization
	OrganizationID int `json:"organization_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuoteLineItemQuery when eager-loading is set.
	Edges        QuoteLineItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuoteLineItemEdges holds the relations/edges for other nodes in the graph.
type QuoteLineItemEdges struct {
	// Organization holds the value of the organization edge.
	Organization *Organization `json:"organization,omitempty"`
	// Quote holds the value of the quote edge.
	Quote *Quote `json:"quote,omitempty"`
	// Product holds the value of the product edge.
	Product *Product `json:"product,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OrganizationOrErr returns the Organization value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteLineItemEdges) OrganizationOrErr() (*Organization, error) {
	if e.Organization != nil {
		return e.Organization, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: organization.Label}
	}
	return nil, &NotLoadedError{edge: "organization"}
}

// QuoteOrErr returns the Quote value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteLineItemEdges) QuoteOrErr() (*Quote, error) {
	if e.Quote != nil {
		return e.Quote, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: quote.Label}
	}
	return nil, &NotLoadedError{edge: "quote"}
}

// ProductOrErr returns the Product value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteLineItemEdges) ProductOrErr() (*Product, error) {
	if e.Product != nil {
		return e.Product, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: product.Label}
	}
	return nil, &NotLoadedError{edge: "product"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuoteLineItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quotelineitem.FieldUnitPrice:
			values[i] = new(sql.NullFloat64)
		case quotelineitem.FieldID, quotelineitem.FieldQuoteID, quotelineitem.FieldProductID, quotelineitem.FieldQuantity, quotelineitem.FieldOrganizationID:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuoteLineItem fields.
func (_m *QuoteLineItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quotelineitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quotelineitem.FieldQuoteID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quote_id", values[i])
			} else if value.Valid {
				_m.QuoteID = int(value.Int64)
			}
		case quotelineitem.FieldProductID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field product_id", values[i])
			} else if value.Valid {
				_m.ProductID = new(int)
				*_m.ProductID = int(value.Int64)
			}
		case quotelineitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case quotelineitem.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = value.Float64
			}
		case quotelineitem.FieldOrganizationID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value.Valid {
				_m.OrganizationID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuoteLineItem.
// This includes values selected through modifiers, order, etc.
func (_m *QuoteLineItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOrganization queries the "organization" edge of the QuoteLineItem entity.
func (_m *QuoteLineItem) QueryOrganization() *OrganizationQuery {
	return NewQuoteLineItemClient(_m.config).QueryOrganization(_m)
}

// QueryQuote queries the "quote" edge of the QuoteLineItem entity.
func (_m *QuoteLineItem) QueryQuote() *QuoteQuery {
	return NewQuoteLineItemClient(_m.config).QueryQuote(_m)
}

// QueryProduct queries the "product" edge of the QuoteLineItem entity.
func (_m *QuoteLineItem) QueryProduct() *ProductQuery {
	return NewQuoteLineItemClient(_m.config).QueryProduct(_m)
}

// Update returns a builder for updating this QuoteLineItem.
// Note that you need to call QuoteLineItem.Unwrap() before calling this method if this QuoteLineItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuoteLineItem) Update() *QuoteLineItemUpdateOne {
	return NewQuoteLineItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuoteLineItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuoteLineItem) Unwrap() *QuoteLineItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuoteLineItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuoteLineItem) String() string {
	var builder strings.Builder
	builder.WriteString("QuoteLineItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("quote_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuoteID))
	builder.WriteString(", ")
	if v := _m.ProductID; v != nil {
		builder.WriteString("product_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPrice))
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrganizationID))
	builder.WriteByte(')')
	return builder.String()
}

// QuoteLineItems is a parsable slice of QuoteLineItem.
type QuoteLineItems []*QuoteLineItem
