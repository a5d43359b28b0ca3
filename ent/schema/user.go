package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("username").
			Unique().
			NotEmpty().
			Comment("Login username (defaults to email)"),
		field.String("first_name").
			Optional().
			Comment("First name"),
		field.String("last_name").
			Optional().
			Comment("Last name"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.Enum("role").
			Values("admin", "manager", "sales_rep").
			Default("sales_rep").
			Comment("User role for access control"),
		field.Int("organization_id").
			Optional().
			Nillable().
			Comment("Organization the user belongs to (null until assigned)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("users").
			Field("organization_id").
			Unique(),
		edge.To("assigned_leads", Lead.Type).
			Comment("Leads assigned to this user"),
		edge.To("opportunities", Opportunity.Type).
			Comment("Opportunities owned by this user"),
		edge.To("tasks", Task.Type).
			Comment("Tasks owned by this user"),
		edge.To("quotes", Quote.Type).
			Comment("Quotes created by this user"),
		edge.To("interactions", InteractionLog.Type).
			Comment("Interaction logs recorded by this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
	}
}
