// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sannty/salescrm/ent/opportunity"
	"github.com/sannty/salescrm/ent/organization"
	"github.com/sannty/salescrm/ent/predicate"
	"github.com/sannty/salescrm/ent/quote"
	"github.com/sannty/salescrm/ent/quotelineitem"
	"github.com/sannty/salescrm/ent/user"
)

// QuoteUpdate is the builder for updating Quote entities.
type QuoteUpdate struct {
	config
	hooks    []Hook
	mutation *QuoteMutation
}

// Where appends a list predicates to the QuoteUpdate builder.
func (_u *QuoteUpdate) Where(ps ...predicate.Quote) *QuoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOpportunityID sets the "opportunity_id" field.
func (_u *QuoteUpdate) SetOpportunityID(v int) *QuoteUpdate {
	_u.mutation.SetOpportunityID(v)
	return _u
}

// SetNillableOpportunityID sets the "opportunity_id" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableOpportunityID(v *int) *QuoteUpdate {
	if v != nil {
		_u.SetOpportunityID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuoteUpdate) SetTitle(v string) *QuoteUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableTitle(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *QuoteUpdate) SetTotalPrice(v float64) *QuoteUpdate {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableTotalPrice(v *float64) *QuoteUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *QuoteUpdate) AddTotalPrice(v float64) *QuoteUpdate {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetCreatedByID sets the "created_by_id" field.
func (_u *QuoteUpdate) SetCreatedByID(v int) *QuoteUpdate {
	_u.mutation.SetCreatedByID(v)
	return _u
}

// SetNillableCreatedByID sets the "created_by_id" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableCreatedByID(v *int) *QuoteUpdate {
	if v != nil {
		_u.SetCreatedByID(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *QuoteUpdate) SetNotes(v string) *QuoteUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableNotes(v *string) *QuoteUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *QuoteUpdate) ClearNotes() *QuoteUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *QuoteUpdate) SetOrganizationID(v int) *QuoteUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *QuoteUpdate) SetNillableOrganizationID(v *int) *QuoteUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *QuoteUpdate) SetOrganization(v *Organization) *QuoteUpdate {
	return _u.SetOrganizationID(v.ID)
}

// SetOpportunity sets the "opportunity" edge to the Opportunity entity.
func (_u *QuoteUpdate) SetOpportunity(v *Opportunity) *QuoteUpdate {
	return _u.SetOpportunityID(v.ID)
}

// SetCreatedBy sets the "created_by" edge to the User entity.
func (_u *QuoteUpdate) SetCreatedBy(v *User) *QuoteUpdate {
	return _u.SetCreatedByID(v.ID)
}

// AddLineItemIDs adds the "line_items" edge to the QuoteLineItem entity by IDs.
func (_u *QuoteUpdate) AddLineItemIDs(ids ...int) *QuoteUpdate {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the QuoteLineItem entity.
func (_u *QuoteUpdate) AddLineItems(v ...*QuoteLineItem) *QuoteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// Mutation returns the QuoteMutation object of the builder.
func (_u *QuoteUpdate) Mutation() *QuoteMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *QuoteUpdate) ClearOrganization() *QuoteUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearOpportunity clears the "opportunity" edge to the Opportunity entity.
func (_u *QuoteUpdate) ClearOpportunity() *QuoteUpdate {
	_u.mutation.ClearOpportunity()
	return _u
}

// ClearCreatedBy clears the "created_by" edge to the User entity.
func (_u *QuoteUpdate) ClearCreatedBy() *QuoteUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// ClearLineItems clears all "line_items" edges to the QuoteLineItem entity.
func (_u *QuoteUpdate) ClearLineItems() *QuoteUpdate {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to QuoteLineItem entities by IDs.
func (_u *QuoteUpdate) RemoveLineItemIDs(ids ...int) *QuoteUpdate {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to QuoteLineItem entities.
func (_u *QuoteUpdate) RemoveLineItems(v ...*QuoteLineItem) *QuoteUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuoteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteUpdate) check() error {
	if v, ok := _u.mutation.OpportunityID(); ok {
		if err := quote.OpportunityIDValidator(v); err != nil {
			return &ValidationError{Name: "opportunity_id", err: fmt.Errorf(`ent: validator failed for field "Quote.opportunity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := quote.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Quote.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedByID(); ok {
		if err := quote.CreatedByIDValidator(v); err != nil {
			return &ValidationError{Name: "created_by_id", err: fmt.Errorf(`ent: validator failed for field "Quote.created_by_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := quote.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "Quote.organization_id": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Quote.organization"`)
	}
	if _u.mutation.OpportunityCleared() && len(_u.mutation.OpportunityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Quote.opportunity"`)
	}
	if _u.mutation.CreatedByCleared() && len(_u.mutation.CreatedByIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Quote.created_by"`)
	}
	return nil
}

func (_u *QuoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(quote.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(quote.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(quote.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(quote.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(quote.FieldNotes, field.TypeString)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.OrganizationTable,
			Columns: []string{quote.OrganizationColumn},
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
			Table:   quote.OrganizationTable,
			Columns: []string{quote.OrganizationColumn},
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
	if _u.mutation.OpportunityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.OpportunityTable,
			Columns: []string{quote.OpportunityColumn},
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
			Table:   quote.OpportunityTable,
			Columns: []string{quote.OpportunityColumn},
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
	if _u.mutation.CreatedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.CreatedByTable,
			Columns: []string{quote.CreatedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.CreatedByTable,
			Columns: []string{quote.CreatedByColumn},
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
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.LineItemsTable,
			Columns: []string{quote.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotelineitem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.LineItemsTable,
			Columns: []string{quote.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotelineitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.LineItemsTable,
			Columns: []string{quote.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotelineitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuoteUpdateOne is the builder for updating a single Quote entity.
type QuoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuoteMutation
}

// SetOpportunityID sets the "opportunity_id" field.
func (_u *QuoteUpdateOne) SetOpportunityID(v int) *QuoteUpdateOne {
	_u.mutation.SetOpportunityID(v)
	return _u
}

// SetNillableOpportunityID sets the "opportunity_id" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableOpportunityID(v *int) *QuoteUpdateOne {
	if v != nil {
		_u.SetOpportunityID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuoteUpdateOne) SetTitle(v string) *QuoteUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableTitle(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *QuoteUpdateOne) SetTotalPrice(v float64) *QuoteUpdateOne {
	_u.mutation.ResetTotalPrice()
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableTotalPrice(v *float64) *QuoteUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// AddTotalPrice adds value to the "total_price" field.
func (_u *QuoteUpdateOne) AddTotalPrice(v float64) *QuoteUpdateOne {
	_u.mutation.AddTotalPrice(v)
	return _u
}

// SetCreatedByID sets the "created_by_id" field.
func (_u *QuoteUpdateOne) SetCreatedByID(v int) *QuoteUpdateOne {
	_u.mutation.SetCreatedByID(v)
	return _u
}

// SetNillableCreatedByID sets the "created_by_id" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableCreatedByID(v *int) *QuoteUpdateOne {
	if v != nil {
		_u.SetCreatedByID(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *QuoteUpdateOne) SetNotes(v string) *QuoteUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableNotes(v *string) *QuoteUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *QuoteUpdateOne) ClearNotes() *QuoteUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *QuoteUpdateOne) SetOrganizationID(v int) *QuoteUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *QuoteUpdateOne) SetNillableOrganizationID(v *int) *QuoteUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *QuoteUpdateOne) SetOrganization(v *Organization) *QuoteUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// SetOpportunity sets the "opportunity" edge to the Opportunity entity.
func (_u *QuoteUpdateOne) SetOpportunity(v *Opportunity) *QuoteUpdateOne {
	return _u.SetOpportunityID(v.ID)
}

// SetCreatedBy sets the "created_by" edge to the User entity.
func (_u *QuoteUpdateOne) SetCreatedBy(v *User) *QuoteUpdateOne {
	return _u.SetCreatedByID(v.ID)
}

// AddLineItemIDs adds the "line_items" edge to the QuoteLineItem entity by IDs.
func (_u *QuoteUpdateOne) AddLineItemIDs(ids ...int) *QuoteUpdateOne {
	_u.mutation.AddLineItemIDs(ids...)
	return _u
}

// AddLineItems adds the "line_items" edges to the QuoteLineItem entity.
func (_u *QuoteUpdateOne) AddLineItems(v ...*QuoteLineItem) *QuoteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineItemIDs(ids...)
}

// Mutation returns the QuoteMutation object of the builder.
func (_u *QuoteUpdateOne) Mutation() *QuoteMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *QuoteUpdateOne) ClearOrganization() *QuoteUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearOpportunity clears the "opportunity" edge to the Opportunity entity.
func (_u *QuoteUpdateOne) ClearOpportunity() *QuoteUpdateOne {
	_u.mutation.ClearOpportunity()
	return _u
}

// ClearCreatedBy clears the "created_by" edge to the User entity.
func (_u *QuoteUpdateOne) ClearCreatedBy() *QuoteUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// ClearLineItems clears all "line_items" edges to the QuoteLineItem entity.
func (_u *QuoteUpdateOne) ClearLineItems() *QuoteUpdateOne {
	_u.mutation.ClearLineItems()
	return _u
}

// RemoveLineItemIDs removes the "line_items" edge to QuoteLineItem entities by IDs.
func (_u *QuoteUpdateOne) RemoveLineItemIDs(ids ...int) *QuoteUpdateOne {
	_u.mutation.RemoveLineItemIDs(ids...)
	return _u
}

// RemoveLineItems removes "line_items" edges to QuoteLineItem entities.
func (_u *QuoteUpdateOne) RemoveLineItems(v ...*QuoteLineItem) *QuoteUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineItemIDs(ids...)
}

// Where appends a list predicates to the QuoteUpdate builder.
func (_u *QuoteUpdateOne) Where(ps ...predicate.Quote) *QuoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuoteUpdateOne) Select(field string, fields ...string) *QuoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quote entity.
func (_u *QuoteUpdateOne) Save(ctx context.Context) (*Quote, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteUpdateOne) SaveX(ctx context.Context) *Quote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteUpdateOne) check() error {
	if v, ok := _u.mutation.OpportunityID(); ok {
		if err := quote.OpportunityIDValidator(v); err != nil {
			return &ValidationError{Name: "opportunity_id", err: fmt.Errorf(`ent: validator failed for field "Quote.opportunity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := quote.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Quote.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedByID(); ok {
		if err := quote.CreatedByIDValidator(v); err != nil {
			return &ValidationError{Name: "created_by_id", err: fmt.Errorf(`ent: validator failed for field "Quote.created_by_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := quote.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "Quote.organization_id": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Quote.organization"`)
	}
	if _u.mutation.OpportunityCleared() && len(_u.mutation.OpportunityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Quote.opportunity"`)
	}
	if _u.mutation.CreatedByCleared() && len(_u.mutation.CreatedByIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Quote.created_by"`)
	}
	return nil
}

func (_u *QuoteUpdateOne) sqlSave(ctx context.Context) (_node *Quote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quote.Table, quote.Columns, sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quote.FieldID)
		for _, f := range fields {
			if !quote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quote.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(quote.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(quote.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalPrice(); ok {
		_spec.AddField(quote.FieldTotalPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(quote.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(quote.FieldNotes, field.TypeString)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.OrganizationTable,
			Columns: []string{quote.OrganizationColumn},
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
			Table:   quote.OrganizationTable,
			Columns: []string{quote.OrganizationColumn},
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
	if _u.mutation.OpportunityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.OpportunityTable,
			Columns: []string{quote.OpportunityColumn},
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
			Table:   quote.OpportunityTable,
			Columns: []string{quote.OpportunityColumn},
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
	if _u.mutation.CreatedByCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.CreatedByTable,
			Columns: []string{quote.CreatedByColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatedByIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quote.CreatedByTable,
			Columns: []string{quote.CreatedByColumn},
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
	if _u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.LineItemsTable,
			Columns: []string{quote.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotelineitem.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !_u.mutation.LineItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.LineItemsTable,
			Columns: []string{quote.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotelineitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quote.LineItemsTable,
			Columns: []string{quote.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotelineitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Quote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
