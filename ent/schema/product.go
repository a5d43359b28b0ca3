package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Product holds the schema definition for the Product entity.
type Product struct {
	ent.Schema
}

// Fields of the Product.
func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Product name"),
		field.Text("description").
			Optional().
			Comment("Product description"),
		field.Float("price").
			Min(0).
			Comment("List price per unit"),
		field.String("currency").
			Default("USD").
			MaxLen(3).
			Comment("ISO 4217 currency code"),
		field.Bool("is_active").
			Default(true).
			Comment("Whether the product can be quoted"),
		field.Int("organization_id").
			Positive().
			Comment("Owning organization"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Product.
func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("products").
			Field("organization_id").
			Unique().
			Required(),
		edge.To("line_items", QuoteLineItem.Type),
	}
}

// Indexes of the Product.
func (Product) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "is_active"),
	}
}
