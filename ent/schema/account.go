package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the schema definition for the Account entity.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Company name"),
		field.String("industry").
			Optional().
			Comment("Industry sector"),
		field.String("size").
			Optional().
			Comment("Company size (e.g. 1-10, 11-50)"),
		field.String("location").
			Optional().
			Comment("Headquarters location"),
		field.String("website").
			Optional().
			Comment("Company website URL"),
		field.Int("organization_id").
			Positive().
			Comment("Owning organization"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Account.
func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("accounts").
			Field("organization_id").
			Unique().
			Required(),
		edge.To("contacts", Contact.Type).
			Comment("Contacts working at this account"),
		edge.To("opportunities", Opportunity.Type).
			Comment("Opportunities against this account"),
	}
}

// Indexes of the Account.
func (Account) Indexes() []ent.Index {
	return []ent.Index{
		// Get-or-create during lead conversion looks accounts up by name
		// within an organization.
		index.Fields("organization_id", "name"),
	}
}
