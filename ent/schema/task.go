package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			Comment("Task title"),
		field.Enum("type").
			Values("call", "email", "meeting", "demo").
			Comment("Kind of sales activity"),
		field.Time("due_date").
			Comment("When the task is due"),
		field.Enum("status").
			Values("pending", "completed", "overdue").
			Default("pending").
			Comment("Task status"),
		field.Int("lead_id").
			Optional().
			Nillable().
			Comment("Related lead"),
		field.Int("opportunity_id").
			Optional().
			Nillable().
			Comment("Related opportunity"),
		field.Int("owner_id").
			Positive().
			Comment("User responsible for the task"),
		field.Text("notes").
			Optional().
			Comment("Free-text notes"),
		field.Int("organization_id").
			Positive().
			Comment("Owning organization"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("tasks").
			Field("organization_id").
			Unique().
			Required(),
		edge.From("lead", Lead.Type).
			Ref("tasks").
			Field("lead_id").
			Unique(),
		edge.From("opportunity", Opportunity.Type).
			Ref("tasks").
			Field("opportunity_id").
			Unique(),
		edge.From("owner", User.Type).
			Ref("tasks").
			Field("owner_id").
			Unique().
			Required(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "status"),
		index.Fields("organization_id", "due_date"),
		index.Fields("owner_id"),
	}
}
