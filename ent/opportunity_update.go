// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sannty/salescrm/ent/account"
	"github.com/sannty/salescrm/ent/contact"
	"github.com/sannty/salescrm/ent/interactionlog"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/organization"
	"github.com/sannty/salescrm/ent/predicate"
	"github.com/sannty/salescrm/ent/quote"
	"github.com/sannty/salescrm/ent/task"
	"github.com/sannty/salescrm/ent/user"
)

// OpportunityUpdate is the builder for updating Opportunity entities.
type OpportunityUpdate struct {
	config
	hooks    []Hook
	mutation *OpportunityMutation
}

// Where appends a list predicates to the OpportunityUpdate builder.
func (_u *OpportunityUpdate) Where(ps ...predicate.Opportunity) *OpportunityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *OpportunityUpdate) SetName(v string) *OpportunityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableName(v *string) *OpportunityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *OpportunityUpdate) SetAccountID(v int) *OpportunityUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableAccountID(v *int) *OpportunityUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *OpportunityUpdate) SetContactID(v int) *OpportunityUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableContactID(v *int) *OpportunityUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *OpportunityUpdate) ClearContactID() *OpportunityUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *OpportunityUpdate) SetAmount(v float64) *OpportunityUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableAmount(v *float64) *OpportunityUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *OpportunityUpdate) AddAmount(v float64) *OpportunityUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *OpportunityUpdate) SetStage(v opportunity.Stage) *OpportunityUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableStage(v *opportunity.Stage) *OpportunityUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetCloseDate sets the "close_date" field.
func (_u *OpportunityUpdate) SetCloseDate(v time.Time) *OpportunityUpdate {
	_u.mutation.SetCloseDate(v)
	return _u
}

// SetNillableCloseDate sets the "close_date" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableCloseDate(v *time.Time) *OpportunityUpdate {
	if v != nil {
		_u.SetCloseDate(*v)
	}
	return _u
}

// ClearCloseDate clears the value of the "close_date" field.
func (_u *OpportunityUpdate) ClearCloseDate() *OpportunityUpdate {
	_u.mutation.ClearCloseDate()
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *OpportunityUpdate) SetOwnerID(v int) *OpportunityUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableOwnerID(v *int) *OpportunityUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// ClearOwnerID clears the value of the "owner_id" field.
func (_u *OpportunityUpdate) ClearOwnerID() *OpportunityUpdate {
	_u.mutation.ClearOwnerID()
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *OpportunityUpdate) SetOrganizationID(v int) *OpportunityUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *OpportunityUpdate) SetNillableOrganizationID(v *int) *OpportunityUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OpportunityUpdate) SetUpdatedAt(v time.Time) *OpportunityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *OpportunityUpdate) SetOrganization(v *Organization) *OpportunityUpdate {
	return _u.SetOrganizationID(v.ID)
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *OpportunityUpdate) SetAccount(v *Account) *OpportunityUpdate {
	return _u.SetAccountID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *OpportunityUpdate) SetContact(v *Contact) *OpportunityUpdate {
	return _u.SetContactID(v.ID)
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *OpportunityUpdate) SetOwner(v *User) *OpportunityUpdate {
	return _u.SetOwnerID(v.ID)
}

// AddQuoteIDs adds the "quotes" edge to the Quote entity by IDs.
func (_u *OpportunityUpdate) AddQuoteIDs(ids ...int) *OpportunityUpdate {
	_u.mutation.AddQuoteIDs(ids...)
	return _u
}

// AddQuotes adds the "quotes" edges to the Quote entity.
func (_u *OpportunityUpdate) AddQuotes(v ...*Quote) *OpportunityUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuoteIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *OpportunityUpdate) AddTaskIDs(ids ...int) *OpportunityUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *OpportunityUpdate) AddTasks(v ...*Task) *OpportunityUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddInteractionIDs adds the "interactions" edge to the InteractionLog entity by IDs.
func (_u *OpportunityUpdate) AddInteractionIDs(ids ...int) *OpportunityUpdate {
	_u.mutation.AddInteractionIDs(ids...)
	return _u
}

// AddInteractions adds the "interactions" edges to the InteractionLog entity.
func (_u *OpportunityUpdate) AddInteractions(v ...*InteractionLog) *OpportunityUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInteractionIDs(ids...)
}

// Mutation returns the OpportunityMutation object of the builder.
func (_u *OpportunityUpdate) Mutation() *OpportunityMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *OpportunityUpdate) ClearOrganization() *OpportunityUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *OpportunityUpdate) ClearAccount() *OpportunityUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *OpportunityUpdate) ClearContact() *OpportunityUpdate {
	_u.mutation.ClearContact()
	return _u
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *OpportunityUpdate) ClearOwner() *OpportunityUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearQuotes clears all "quotes" edges to the Quote entity.
func (_u *OpportunityUpdate) ClearQuotes() *OpportunityUpdate {
	_u.mutation.ClearQuotes()
	return _u
}

// RemoveQuoteIDs removes the "quotes" edge to Quote entities by IDs.
func (_u *OpportunityUpdate) RemoveQuoteIDs(ids ...int) *OpportunityUpdate {
	_u.mutation.RemoveQuoteIDs(ids...)
	return _u
}

// RemoveQuotes removes "quotes" edges to Quote entities.
func (_u *OpportunityUpdate) RemoveQuotes(v ...*Quote) *OpportunityUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuoteIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *OpportunityUpdate) ClearTasks() *OpportunityUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *OpportunityUpdate) RemoveTaskIDs(ids ...int) *OpportunityUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *OpportunityUpdate) RemoveTasks(v ...*Task) *OpportunityUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearInteractions clears all "interactions" edges to the InteractionLog entity.
func (_u *OpportunityUpdate) ClearInteractions() *OpportunityUpdate {
	_u.mutation.ClearInteractions()
	return _u
}

// RemoveInteractionIDs removes the "interactions" edge to InteractionLog entities by IDs.
func (_u *OpportunityUpdate) RemoveInteractionIDs(ids ...int) *OpportunityUpdate {
	_u.mutation.RemoveInteractionIDs(ids...)
	return _u
}

// RemoveInteractions removes "interactions" edges to InteractionLog entities.
func (_u *OpportunityUpdate) RemoveInteractions(v ...*InteractionLog) *OpportunityUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInteractionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OpportunityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OpportunityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OpportunityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OpportunityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OpportunityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := opportunity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OpportunityUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := opportunity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Opportunity.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountID(); ok {
		if err := opportunity.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "Opportunity.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := opportunity.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Opportunity.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := opportunity.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "Opportunity.organization_id": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Opportunity.organization"`)
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Opportunity.account"`)
	}
	return nil
}

func (_u *OpportunityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(opportunity.Table, opportunity.Columns, sqlgraph.NewFieldSpec(opportunity.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(opportunity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(opportunity.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(opportunity.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(opportunity.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CloseDate(); ok {
		_spec.SetField(opportunity.FieldCloseDate, field.TypeTime, value)
	}
	if _u.mutation.CloseDateCleared() {
		_spec.ClearField(opportunity.FieldCloseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(opportunity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.OrganizationTable,
			Columns: []string{opportunity.OrganizationColumn},
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
			Table:   opportunity.OrganizationTable,
			Columns: []string{opportunity.OrganizationColumn},
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
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.AccountTable,
			Columns: []string{opportunity.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.AccountTable,
			Columns: []string{opportunity.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
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
			Table:   opportunity.ContactTable,
			Columns: []string{opportunity.ContactColumn},
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
			Table:   opportunity.ContactTable,
			Columns: []string{opportunity.ContactColumn},
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
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.OwnerTable,
			Columns: []string{opportunity.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.OwnerTable,
			Columns: []string{opportunity.OwnerColumn},
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
	if _u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.QuotesTable,
			Columns: []string{opportunity.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuotesIDs(); len(nodes) > 0 && !_u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.QuotesTable,
			Columns: []string{opportunity.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.QuotesTable,
			Columns: []string{opportunity.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.TasksTable,
			Columns: []string{opportunity.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.TasksTable,
			Columns: []string{opportunity.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.TasksTable,
			Columns: []string{opportunity.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.InteractionsTable,
			Columns: []string{opportunity.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interactionlog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInteractionsIDs(); len(nodes) > 0 && !_u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.InteractionsTable,
			Columns: []string{opportunity.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interactionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.InteractionsTable,
			Columns: []string{opportunity.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interactionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{opportunity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OpportunityUpdateOne is the builder for updating a single Opportunity entity.
type OpportunityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OpportunityMutation
}

// SetName sets the "name" field.
func (_u *OpportunityUpdateOne) SetName(v string) *OpportunityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableName(v *string) *OpportunityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *OpportunityUpdateOne) SetAccountID(v int) *OpportunityUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableAccountID(v *int) *OpportunityUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *OpportunityUpdateOne) SetContactID(v int) *OpportunityUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableContactID(v *int) *OpportunityUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *OpportunityUpdateOne) ClearContactID() *OpportunityUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *OpportunityUpdateOne) SetAmount(v float64) *OpportunityUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableAmount(v *float64) *OpportunityUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *OpportunityUpdateOne) AddAmount(v float64) *OpportunityUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *OpportunityUpdateOne) SetStage(v opportunity.Stage) *OpportunityUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableStage(v *opportunity.Stage) *OpportunityUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetCloseDate sets the "close_date" field.
func (_u *OpportunityUpdateOne) SetCloseDate(v time.Time) *OpportunityUpdateOne {
	_u.mutation.SetCloseDate(v)
	return _u
}

// SetNillableCloseDate sets the "close_date" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableCloseDate(v *time.Time) *OpportunityUpdateOne {
	if v != nil {
		_u.SetCloseDate(*v)
	}
	return _u
}

// ClearCloseDate clears the value of the "close_date" field.
func (_u *OpportunityUpdateOne) ClearCloseDate() *OpportunityUpdateOne {
	_u.mutation.ClearCloseDate()
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *OpportunityUpdateOne) SetOwnerID(v int) *OpportunityUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableOwnerID(v *int) *OpportunityUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// ClearOwnerID clears the value of the "owner_id" field.
func (_u *OpportunityUpdateOne) ClearOwnerID() *OpportunityUpdateOne {
	_u.mutation.ClearOwnerID()
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *OpportunityUpdateOne) SetOrganizationID(v int) *OpportunityUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *OpportunityUpdateOne) SetNillableOrganizationID(v *int) *OpportunityUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OpportunityUpdateOne) SetUpdatedAt(v time.Time) *OpportunityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *OpportunityUpdateOne) SetOrganization(v *Organization) *OpportunityUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *OpportunityUpdateOne) SetAccount(v *Account) *OpportunityUpdateOne {
	return _u.SetAccountID(v.ID)
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *OpportunityUpdateOne) SetContact(v *Contact) *OpportunityUpdateOne {
	return _u.SetContactID(v.ID)
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *OpportunityUpdateOne) SetOwner(v *User) *OpportunityUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// AddQuoteIDs adds the "quotes" edge to the Quote entity by IDs.
func (_u *OpportunityUpdateOne) AddQuoteIDs(ids ...int) *OpportunityUpdateOne {
	_u.mutation.AddQuoteIDs(ids...)
	return _u
}

// AddQuotes adds the "quotes" edges to the Quote entity.
func (_u *OpportunityUpdateOne) AddQuotes(v ...*Quote) *OpportunityUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuoteIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *OpportunityUpdateOne) AddTaskIDs(ids ...int) *OpportunityUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *OpportunityUpdateOne) AddTasks(v ...*Task) *OpportunityUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddInteractionIDs adds the "interactions" edge to the InteractionLog entity by IDs.
func (_u *OpportunityUpdateOne) AddInteractionIDs(ids ...int) *OpportunityUpdateOne {
	_u.mutation.AddInteractionIDs(ids...)
	return _u
}

// AddInteractions adds the "interactions" edges to the InteractionLog entity.
func (_u *OpportunityUpdateOne) AddInteractions(v ...*InteractionLog) *OpportunityUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInteractionIDs(ids...)
}

// Mutation returns the OpportunityMutation object of the builder.
func (_u *OpportunityUpdateOne) Mutation() *OpportunityMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *OpportunityUpdateOne) ClearOrganization() *OpportunityUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *OpportunityUpdateOne) ClearAccount() *OpportunityUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *OpportunityUpdateOne) ClearContact() *OpportunityUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *OpportunityUpdateOne) ClearOwner() *OpportunityUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearQuotes clears all "quotes" edges to the Quote entity.
func (_u *OpportunityUpdateOne) ClearQuotes() *OpportunityUpdateOne {
	_u.mutation.ClearQuotes()
	return _u
}

// RemoveQuoteIDs removes the "quotes" edge to Quote entities by IDs.
func (_u *OpportunityUpdateOne) RemoveQuoteIDs(ids ...int) *OpportunityUpdateOne {
	_u.mutation.RemoveQuoteIDs(ids...)
	return _u
}

// RemoveQuotes removes "quotes" edges to Quote entities.
func (_u *OpportunityUpdateOne) RemoveQuotes(v ...*Quote) *OpportunityUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuoteIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *OpportunityUpdateOne) ClearTasks() *OpportunityUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *OpportunityUpdateOne) RemoveTaskIDs(ids ...int) *OpportunityUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *OpportunityUpdateOne) RemoveTasks(v ...*Task) *OpportunityUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearInteractions clears all "interactions" edges to the InteractionLog entity.
func (_u *OpportunityUpdateOne) ClearInteractions() *OpportunityUpdateOne {
	_u.mutation.ClearInteractions()
	return _u
}

// RemoveInteractionIDs removes the "interactions" edge to InteractionLog entities by IDs.
func (_u *OpportunityUpdateOne) RemoveInteractionIDs(ids ...int) *OpportunityUpdateOne {
	_u.mutation.RemoveInteractionIDs(ids...)
	return _u
}

// RemoveInteractions removes "interactions" edges to InteractionLog entities.
func (_u *OpportunityUpdateOne) RemoveInteractions(v ...*InteractionLog) *OpportunityUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInteractionIDs(ids...)
}

// Where appends a list predicates to the OpportunityUpdate builder.
func (_u *OpportunityUpdateOne) Where(ps ...predicate.Opportunity) *OpportunityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OpportunityUpdateOne) Select(field string, fields ...string) *OpportunityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Opportunity entity.
func (_u *OpportunityUpdateOne) Save(ctx context.Context) (*Opportunity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OpportunityUpdateOne) SaveX(ctx context.Context) *Opportunity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OpportunityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OpportunityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OpportunityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := opportunity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OpportunityUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := opportunity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Opportunity.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountID(); ok {
		if err := opportunity.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "Opportunity.account_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := opportunity.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Opportunity.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := opportunity.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "Opportunity.organization_id": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Opportunity.organization"`)
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Opportunity.account"`)
	}
	return nil
}

func (_u *OpportunityUpdateOne) sqlSave(ctx context.Context) (_node *Opportunity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(opportunity.Table, opportunity.Columns, sqlgraph.NewFieldSpec(opportunity.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Opportunity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, opportunity.FieldID)
		for _, f := range fields {
			if !opportunity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != opportunity.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(opportunity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(opportunity.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(opportunity.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(opportunity.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CloseDate(); ok {
		_spec.SetField(opportunity.FieldCloseDate, field.TypeTime, value)
	}
	if _u.mutation.CloseDateCleared() {
		_spec.ClearField(opportunity.FieldCloseDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(opportunity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.OrganizationTable,
			Columns: []string{opportunity.OrganizationColumn},
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
			Table:   opportunity.OrganizationTable,
			Columns: []string{opportunity.OrganizationColumn},
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
	if _u.mutation.AccountCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.AccountTable,
			Columns: []string{opportunity.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.AccountTable,
			Columns: []string{opportunity.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt),
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
			Table:   opportunity.ContactTable,
			Columns: []string{opportunity.ContactColumn},
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
			Table:   opportunity.ContactTable,
			Columns: []string{opportunity.ContactColumn},
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
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.OwnerTable,
			Columns: []string{opportunity.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   opportunity.OwnerTable,
			Columns: []string{opportunity.OwnerColumn},
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
	if _u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.QuotesTable,
			Columns: []string{opportunity.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuotesIDs(); len(nodes) > 0 && !_u.mutation.QuotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.QuotesTable,
			Columns: []string{opportunity.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.QuotesTable,
			Columns: []string{opportunity.QuotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.TasksTable,
			Columns: []string{opportunity.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.TasksTable,
			Columns: []string{opportunity.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.TasksTable,
			Columns: []string{opportunity.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.InteractionsTable,
			Columns: []string{opportunity.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interactionlog.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInteractionsIDs(); len(nodes) > 0 && !_u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.InteractionsTable,
			Columns: []string{opportunity.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interactionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   opportunity.InteractionsTable,
			Columns: []string{opportunity.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interactionlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Opportunity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{opportunity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
