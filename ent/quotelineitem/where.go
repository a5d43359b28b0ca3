// Code generated by ent, DO NOT EDIT.

package quotelineitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sannty/salescrm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldLTE(FieldID, id))
}

// QuoteID applies equality check predicate on the "quote_id" field. It's identical to QuoteIDEQ.
func QuoteID(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldQuoteID, v))
}

// ProductID applies equality check predicate on the "product_id" field. It's identical to ProductIDEQ.
func ProductID(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldProductID, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldQuantity, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v float64) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldOrganizationID, v))
}

// QuoteIDEQ applies the EQ predicate on the "quote_id" field.
func QuoteIDEQ(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldQuoteID, v))
}

// QuoteIDNEQ applies the NEQ predicate on the "quote_id" field.
func QuoteIDNEQ(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNEQ(FieldQuoteID, v))
}

// QuoteIDIn applies the In predicate on the "quote_id" field.
func QuoteIDIn(vs ...int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldIn(FieldQuoteID, vs...))
}

// QuoteIDNotIn applies the NotIn predicate on the "quote_id" field.
func QuoteIDNotIn(vs ...int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNotIn(FieldQuoteID, vs...))
}

// ProductIDEQ applies the EQ predicate on the "product_id" field.
func ProductIDEQ(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldProductID, v))
}

// ProductIDNEQ applies the NEQ predicate on the "product_id" field.
func ProductIDNEQ(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNEQ(FieldProductID, v))
}

// ProductIDIn applies the In predicate on the "product_id" field.
func ProductIDIn(vs ...int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldIn(FieldProductID, vs...))
}

// ProductIDNotIn applies the NotIn predicate on the "product_id" field.
func ProductIDNotIn(vs ...int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNotIn(FieldProductID, vs...))
}

// ProductIDIsNil applies the IsNil predicate on the "product_id" field.
func ProductIDIsNil() predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldIsNull(FieldProductID))
}

// ProductIDNotNil applies the NotNil predicate on the "product_id" field.
func ProductIDNotNil() predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNotNull(FieldProductID))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldLTE(FieldQuantity, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v float64) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v float64) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...float64) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...float64) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v float64) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v float64) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v float64) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v float64) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldLTE(FieldUnitPrice, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...int) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// HasOrganization applies the HasEdge predicate on the "organization" edge.
func HasOrganization() predicate.QuoteLineItem {
	return predicate.QuoteLineItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrganizationWith applies the HasEdge predicate on the "organization" edge with a given conditions (other predicates).
func HasOrganizationWith(preds ...predicate.Organization) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(func(s *sql.Selector) {
		step := newOrganizationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuote applies the HasEdge predicate on the "quote" edge.
func HasQuote() predicate.QuoteLineItem {
	return predicate.QuoteLineItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuoteTable, QuoteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuoteWith applies the HasEdge predicate on the "quote" edge with a given conditions (other predicates).
func HasQuoteWith(preds ...predicate.Quote) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(func(s *sql.Selector) {
		step := newQuoteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProduct applies the HasEdge predicate on the "product" edge.
func HasProduct() predicate.QuoteLineItem {
	return predicate.QuoteLineItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductWith applies the HasEdge predicate on the "product" edge with a given conditions (other predicates).
func HasProductWith(preds ...predicate.Product) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(func(s *sql.Selector) {
		step := newProductStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuoteLineItem) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuoteLineItem) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuoteLineItem) predicate.QuoteLineItem {
	return predicate.QuoteLineItem(sql.NotPredicates(p))
}
