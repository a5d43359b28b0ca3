// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sannty/salescrm/ent/contact"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/lead"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/organization"
	"github.com/sannty/salescrm/ent/predicate"
	"github.com/sannty/salescrm/ent/user"
)

// InteractionLogUpdate is the builder for updating InteractionLog entities.
type InteractionLogUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionLogMutation
}

// Where appends a list predicates to the InteractionLogUpdate builder.
func (_u *InteractionLogUpdate) Where(ps ...predicate.InteractionLog) *InteractionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InteractionLogUpdate) SetUserID(v int) *InteractionLogUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionLogUpdate) SetNillableUserID(v *int) *InteractionLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *InteractionLogUpdate) SetLeadID(v int) *InteractionLogUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *InteractionLogUpdate) SetNillableLeadID(v *int) *InteractionLogUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *InteractionLogUpdate) ClearLeadID() *InteractionLogUpdate {
	_u.mutation.ClearLeadID()
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *InteractionLogUpdate) SetContactID(v int) *InteractionLogUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *InteractionLogUpdate) SetNillableContactID(v *int) *InteractionLogUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *InteractionLogUpdate) ClearContactID() *InteractionLogUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetOpportunityID sets the "opportunity_id" field.
func (_u *InteractionLogUpdate) SetOpportunityID(v int) *InteractionLogUpdate {
	_u.mutation.SetOpportunityID(v)
	return _u
}

// SetNillableOpportunityID sets the "opportunity_id" field if the given value is not nil.
func (_u *InteractionLogUpdate) SetNillableOpportunityID(v *int) *InteractionLogUpdate {
	if v != nil {
		_u.SetOpportunityID(*v)
	}
	return _u
}

// ClearOpportunityID clears the value of the "opportunity_id" field.
func (_u *InteractionLogUpdate) ClearOpportunityID() *InteractionLogUpdate {
	_u.mutation.ClearOpportunityID()
	return _u
}

// SetType sets the "type" field.
func (_u *InteractionLogUpdate) SetType(v interactionlog.Type) *InteractionLogUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *InteractionLogUpdate) SetNillableType(v *interactionlog.Type) *InteractionLogUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InteractionLogUpdate) SetSummary(v string) *InteractionLogUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InteractionLogUpdate) SetNillableSummary(v *string) *InteractionLogUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *InteractionLogUpdate) SetOrganizationID(v int) *InteractionLogUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *InteractionLogUpdate) SetNillableOrganizationID(v *int) *InteractionLogUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *InteractionLogUpdate) SetOrganization(v *Organization) *InteractionLogUpdate {
	return _u.SetOrganizationID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *InteractionLogUpdate) SetUser(v *User) *InteractionLogUpdate {
	return _u.SetUserID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *InteractionLogUpdate) SetLead(v *Lead) *InteractionLogUpdate {
	return _u.SetLeadID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *InteractionLogUpdate) SetContact(v *Contact) *InteractionLogUpdate {
	return _u.SetContactID(v.ID)
}

// SetOpportunity sets the "opportunity" edge to the Opportunity entity.
func (_u *InteractionLogUpdate) SetOpportunity(v *Opportunity) *InteractionLogUpdate {
	return _u.SetOpportunityID(v.ID)
}

// Mutation returns the InteractionLogMutation object of the builder.
func (_u *InteractionLogUpdate) Mutation() *InteractionLogMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *InteractionLogUpdate) ClearOrganization() *InteractionLogUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *InteractionLogUpdate) ClearUser() *InteractionLogUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *InteractionLogUpdate) ClearLead() *InteractionLogUpdate {
	_u.mutation.ClearLead()
	return _u
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *InteractionLogUpdate) ClearContact() *InteractionLogUpdate {
	_u.mutation.ClearContact()
	return _u
}

// ClearOpportunity clears the "opportunity" edge to the Opportunity entity.
func (_u *InteractionLogUpdate) ClearOpportunity() *InteractionLogUpdate {
	_u.mutation.ClearOpportunity()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionLogUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interactionlog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := interactionlog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := interactionlog.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := interactionlog.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.organization_id": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InteractionLog.organization"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InteractionLog.user"`)
	}
	return nil
}

func (_u *InteractionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionlog.Table, interactionlog.Columns, sqlgraph.NewFieldSpec(interactionlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(interactionlog.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(interactionlog.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.OrganizationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OpportunityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OpportunityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionLogUpdateOne is the builder for updating a single InteractionLog entity.
type InteractionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionLogMutation
}

// SetUserID sets the "user_id" field.
func (_u *InteractionLogUpdateOne) SetUserID(v int) *InteractionLogUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionLogUpdateOne) SetNillableUserID(v *int) *InteractionLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *InteractionLogUpdateOne) SetLeadID(v int) *InteractionLogUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *InteractionLogUpdateOne) SetNillableLeadID(v *int) *InteractionLogUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *InteractionLogUpdateOne) ClearLeadID() *InteractionLogUpdateOne {
	_u.mutation.ClearLeadID()
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *InteractionLogUpdateOne) SetContactID(v int) *InteractionLogUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *InteractionLogUpdateOne) SetNillableContactID(v *int) *InteractionLogUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *InteractionLogUpdateOne) ClearContactID() *InteractionLogUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetOpportunityID sets the "opportunity_id" field.
func (_u *InteractionLogUpdateOne) SetOpportunityID(v int) *InteractionLogUpdateOne {
	_u.mutation.SetOpportunityID(v)
	return _u
}

// SetNillableOpportunityID sets the "opportunity_id" field if the given value is not nil.
func (_u *InteractionLogUpdateOne) SetNillableOpportunityID(v *int) *InteractionLogUpdateOne {
	if v != nil {
		_u.SetOpportunityID(*v)
	}
	return _u
}

// ClearOpportunityID clears the value of the "opportunity_id" field.
func (_u *InteractionLogUpdateOne) ClearOpportunityID() *InteractionLogUpdateOne {
	_u.mutation.ClearOpportunityID()
	return _u
}

// SetType sets the "type" field.
func (_u *InteractionLogUpdateOne) SetType(v interactionlog.Type) *InteractionLogUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *InteractionLogUpdateOne) SetNillableType(v *interactionlog.Type) *InteractionLogUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InteractionLogUpdateOne) SetSummary(v string) *InteractionLogUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InteractionLogUpdateOne) SetNillableSummary(v *string) *InteractionLogUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *InteractionLogUpdateOne) SetOrganizationID(v int) *InteractionLogUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *InteractionLogUpdateOne) SetNillableOrganizationID(v *int) *InteractionLogUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *InteractionLogUpdateOne) SetOrganization(v *Organization) *InteractionLogUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// SetUser sets the "user" edge to the User entity.
func (_u *InteractionLogUpdateOne) SetUser(v *User) *InteractionLogUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetLead sets the "lead" edge to the Lead entity.
func (_u *InteractionLogUpdateOne) SetLead(v *Lead) *InteractionLogUpdateOne {
	return _u.SetLeadID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *InteractionLogUpdateOne) SetContact(v *Contact) *InteractionLogUpdateOne {
	return _u.SetContactID(v.ID)
}

// SetOpportunity sets the "opportunity" edge to the Opportunity entity.
func (_u *InteractionLogUpdateOne) SetOpportunity(v *Opportunity) *InteractionLogUpdateOne {
	return _u.SetOpportunityID(v.ID)
}

// Mutation returns the InteractionLogMutation object of the builder.
func (_u *InteractionLogUpdateOne) Mutation() *InteractionLogMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *InteractionLogUpdateOne) ClearOrganization() *InteractionLogUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *InteractionLogUpdateOne) ClearUser() *InteractionLogUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearLead clears the "lead" edge to the Lead entity.
func (_u *InteractionLogUpdateOne) ClearLead() *InteractionLogUpdateOne {
	_u.mutation.ClearLead()
	return _u
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *InteractionLogUpdateOne) ClearContact() *InteractionLogUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// ClearOpportunity clears the "opportunity" edge to the Opportunity entity.
func (_u *InteractionLogUpdateOne) ClearOpportunity() *InteractionLogUpdateOne {
	_u.mutation.ClearOpportunity()
	return _u
}

// Where appends a list predicates to the InteractionLogUpdate builder.
func (_u *InteractionLogUpdateOne) Where(ps ...predicate.InteractionLog) *InteractionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionLogUpdateOne) Select(field string, fields ...string) *InteractionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionLog entity.
func (_u *InteractionLogUpdateOne) Save(ctx context.Context) (*InteractionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionLogUpdateOne) SaveX(ctx context.Context) *InteractionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionLogUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interactionlog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := interactionlog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := interactionlog.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := interactionlog.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "InteractionLog.organization_id": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InteractionLog.organization"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InteractionLog.user"`)
	}
	return nil
}

func (_u *InteractionLogUpdateOne) sqlSave(ctx context.Context) (_node *InteractionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionlog.Table, interactionlog.Columns, sqlgraph.NewFieldSpec(interactionlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionlog.FieldID)
		for _, f := range fields {
			if !interactionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(interactionlog.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(interactionlog.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.OrganizationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LeadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LeadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OpportunityCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OpportunityIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InteractionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
