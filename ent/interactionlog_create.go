// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sannty/salescrm/ent/contact"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/organization"
	"github.com/sannty/salescrm/ent/user"
)

// InteractionLogCreate is the builder for creating a InteractionLog entity.
type InteractionLogCreate struct {
	config
	mutation *InteractionLogMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *InteractionLogCreate) SetUserID(v int) *InteractionLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *InteractionLogCreate) SetLeadID(v int) *InteractionLogCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_c *InteractionLogCreate) SetNillableLeadID(v *int) *InteractionLogCreate {
	if v != nil {
		_c.SetLeadID(*v)
	}
	return _c
}

// SetContactID sets the "contact_id" field.
func (_c *InteractionLogCreate) SetContactID(v int) *InteractionLogCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_c *InteractionLogCreate) SetNillableContactID(v *int) *InteractionLogCreate {
	if v != nil {
		_c.SetContactID(*v)
	}
	return _c
}

// SetOpportunityID sets the "opportunity_id" field.
func (_c *InteractionLogCreate) SetOpportunityID(v int) *InteractionLogCreate {
	_c.mutation.SetOpportunityID(v)
	return _c
}

// SetNillableOpportunityID sets the "opportunity_id" field if the given value is not nil.
func (_c *InteractionLogCreate) SetNillableOpportunityID(v *int) *InteractionLogCreate {
	if v != nil {
		_c.SetOpportunityID(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *InteractionLogCreate) SetType(v interactionlog.Type) *InteractionLogCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *InteractionLogCreate) SetSummary(v string) *InteractionLogCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *InteractionLogCreate) SetOrganizationID(v int) *InteractionLogCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InteractionLogCreate) SetTimestamp(v time.Time) *InteractionLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InteractionLogCreate) SetNillableTimestamp(v *time.Time) *InteractionLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_c *InteractionLogCreate) SetOrganization(v *Organization) *InteractionLogCreate {
	return _c.SetOrganizationID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_c *InteractionLogCreate) SetUser(v *User) *InteractionLogCreate {
	return _c.SetUserID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *InteractionLogCreate) SetLead(v *Lead) *InteractionLogCreate {
	return _c.SetLeadID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_c *InteractionLogCreate) SetContact(v *Contact) *InteractionLogCreate {
	return _c.SetContactID(v.ID)
}

// SetOpportunity sets the "opportunity" edge to the Opportunity entity.
func (_c *InteractionLogCreate) SetOpportunity(v *Opportunity) *InteractionLogCreate {
	return _c.SetOpportunityID(v.ID)
}

// Mutation returns the InteractionLogMutation object of the builder.
func (_c *InteractionLogCreate) Mutation() *InteractionLogMutation {
	return _c.mutation
}

// Save creates the InteractionLog in the database.
func (_c *InteractionLogCreate) Save(ctx context.Context) (*InteractionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionLogCreate) SaveX(ctx context.Context) *InteractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interactionlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionLogCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InteractionLog.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := interactionlog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "InteractionLog.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := interactionlog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "InteractionLog.summary"`)}
	}
	if v, ok := _c.mutation.Summary(); ok {
		if err := interactionlog.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "InteractionLog.organization_id"`)}
	}
	if v, ok := _c.mutation.OrganizationID(); ok {
		if err := interactionlog.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.organization_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InteractionLog.timestamp"`)}
	}
	if len(_c.mutation.OrganizationIDs()) == 0 {
		return &ValidationError{Name: "organization", err: errors.New(`ent: missing required edge "InteractionLog.organization"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "InteractionLog.user"`)}
	}
	return nil
}

func (_c *InteractionLogCreate) sqlSave(ctx context.Context) (*InteractionLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InteractionLogCreate) createSpec() (*InteractionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &InteractionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interactionlog.Table, sqlgraph.NewFieldSpec(interactionlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(interactionlog.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(interactionlog.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interactionlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interactionlog.OrganizationTable,
			Columns: []string{interactionlog.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OrganizationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interactionlog.UserTable,
			Columns: []string{interactionlog.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interactionlog.LeadTable,
			Columns: []string{interactionlog.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LeadID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interactionlog.ContactTable,
			Columns: []string{interactionlog.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ContactID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OpportunityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interactionlog.OpportunityTable,
			Columns: []string{interactionlog.OpportunityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(opportunity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OpportunityID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InteractionLogCreateBulk is the builder for creating many InteractionLog entities in bulk.
type InteractionLogCreateBulk struct {
	config
	err      error
	builders []*InteractionLogCreate
}

// Save creates the InteractionLog entities in the database.
func (_c *InteractionLogCreateBulk) Save(ctx context.Context) ([]*InteractionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InteractionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InteractionLogCreateBulk) SaveX(ctx context.Context) []*InteractionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
