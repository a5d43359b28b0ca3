package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuoteLineItem holds the schema definition for the QuoteLineItem entity.
type QuoteLineItem struct {
	ent.Schema
}

// Fields of the QuoteLineItem.
func (QuoteLineItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("quote_id").
			Positive().
			Comment("Quote the line item belongs to"),
		field.Int("product_id").
			Optional().
			Nillable().
			Comment("Quoted product (null if the product was deleted)"),
		field.Int("quantity").
			Positive().
			Comment("Number of units"),
		field.Float("unit_price").
			Min(0).
			Comment("Price per unit at quoting time"),
		field.Int("organization_id").
			Positive().
			Comment("Owning organization"),
	}
}

// Edges of the QuoteLineItem.
func (QuoteLineItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("line_items").
			Field("organization_id").
			Unique().
			Required(),
		edge.From("quote", Quote.Type).
			Ref("line_items").
			Field("quote_id").
			Unique().
			Required(),
		edge.From("product", Product.Type).
			Ref("line_items").
			Field("product_id").
			Unique(),
	}
}

// Indexes of the QuoteLineItem.
func (QuoteLineItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quote_id"),
	}
}
