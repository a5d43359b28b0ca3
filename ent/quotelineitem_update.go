// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sannty/salescrm/ent/organization"
	"github.com/sannty/salescrm/ent/predicate"
	"github.com/sannty/salescrm/ent/product"
	"github.com/sannty/salescrm/ent/quote"
	"github.com/sannty/salescrm/ent/quotelineitem"
)

// QuoteLineItemUpdate is the builder for updating QuoteLineItem entities.
type QuoteLineItemUpdate struct {
	config
	hooks    []Hook
	mutation *QuoteLineItemMutation
}

// Where appends a list predicates to the QuoteLineItemUpdate builder.
func (_u *QuoteLineItemUpdate) Where(ps ...predicate.QuoteLineItem) *QuoteLineItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuoteID sets the "quote_id" field.
func (_u *QuoteLineItemUpdate) SetQuoteID(v int) *QuoteLineItemUpdate {
	_u.mutation.SetQuoteID(v)
	return _u
}

// SetNillableQuoteID sets the "quote_id" field if the given value is not nil.
func (_u *QuoteLineItemUpdate) SetNillableQuoteID(v *int) *QuoteLineItemUpdate {
	if v != nil {
		_u.SetQuoteID(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *QuoteLineItemUpdate) SetProductID(v int) *QuoteLineItemUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *QuoteLineItemUpdate) SetNillableProductID(v *int) *QuoteLineItemUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// ClearProductID clears the value of the "product_id" field.
func (_u *QuoteLineItemUpdate) ClearProductID() *QuoteLineItemUpdate {
	_u.mutation.ClearProductID()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *QuoteLineItemUpdate) SetQuantity(v int) *QuoteLineItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *QuoteLineItemUpdate) SetNillableQuantity(v *int) *QuoteLineItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *QuoteLineItemUpdate) AddQuantity(v int) *QuoteLineItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *QuoteLineItemUpdate) SetUnitPrice(v float64) *QuoteLineItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *QuoteLineItemUpdate) SetNillableUnitPrice(v *float64) *QuoteLineItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *QuoteLineItemUpdate) AddUnitPrice(v float64) *QuoteLineItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *QuoteLineItemUpdate) SetOrganizationID(v int) *QuoteLineItemUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *QuoteLineItemUpdate) SetNillableOrganizationID(v *int) *QuoteLineItemUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *QuoteLineItemUpdate) SetOrganization(v *Organization) *QuoteLineItemUpdate {
	return _u.SetOrganizationID(v.ID)
}

// SetQuote sets the "quote" edge to the Quote entity.
func (_u *QuoteLineItemUpdate) SetQuote(v *Quote) *QuoteLineItemUpdate {
	return _u.SetQuoteID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *QuoteLineItemUpdate) SetProduct(v *Product) *QuoteLineItemUpdate {
	return _u.SetProductID(v.ID)
}

// Mutation returns the QuoteLineItemMutation object of the builder.
func (_u *QuoteLineItemUpdate) Mutation() *QuoteLineItemMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *QuoteLineItemUpdate) ClearOrganization() *QuoteLineItemUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearQuote clears the "quote" edge to the Quote entity.
func (_u *QuoteLineItemUpdate) ClearQuote() *QuoteLineItemUpdate {
	_u.mutation.ClearQuote()
	return _u
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *QuoteLineItemUpdate) ClearProduct() *QuoteLineItemUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuoteLineItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteLineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuoteLineItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteLineItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteLineItemUpdate) check() error {
	if v, ok := _u.mutation.QuoteID(); ok {
		if err := quotelineitem.QuoteIDValidator(v); err != nil {
			return &ValidationError{Name: "quote_id", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.quote_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := quotelineitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := quotelineitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := quotelineitem.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.organization_id": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteLineItem.organization"`)
	}
	if _u.mutation.QuoteCleared() && len(_u.mutation.QuoteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteLineItem.quote"`)
	}
	return nil
}

func (_u *QuoteLineItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotelineitem.Table, quotelineitem.Columns, sqlgraph.NewFieldSpec(quotelineitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(quotelineitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(quotelineitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(quotelineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(quotelineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotelineitem.OrganizationTable,
			Columns: []string{quotelineitem.OrganizationColumn},
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
			Table:   quotelineitem.OrganizationTable,
			Columns: []string{quotelineitem.OrganizationColumn},
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
	if _u.mutation.QuoteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotelineitem.QuoteTable,
			Columns: []string{quotelineitem.QuoteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuoteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotelineitem.QuoteTable,
			Columns: []string{quotelineitem.QuoteColumn},
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
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotelineitem.ProductTable,
			Columns: []string{quotelineitem.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotelineitem.ProductTable,
			Columns: []string{quotelineitem.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotelineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuoteLineItemUpdateOne is the builder for updating a single QuoteLineItem entity.
type QuoteLineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuoteLineItemMutation
}

// SetQuoteID sets the "quote_id" field.
func (_u *QuoteLineItemUpdateOne) SetQuoteID(v int) *QuoteLineItemUpdateOne {
	_u.mutation.SetQuoteID(v)
	return _u
}

// SetNillableQuoteID sets the "quote_id" field if the given value is not nil.
func (_u *QuoteLineItemUpdateOne) SetNillableQuoteID(v *int) *QuoteLineItemUpdateOne {
	if v != nil {
		_u.SetQuoteID(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *QuoteLineItemUpdateOne) SetProductID(v int) *QuoteLineItemUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *QuoteLineItemUpdateOne) SetNillableProductID(v *int) *QuoteLineItemUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// ClearProductID clears the value of the "product_id" field.
func (_u *QuoteLineItemUpdateOne) ClearProductID() *QuoteLineItemUpdateOne {
	_u.mutation.ClearProductID()
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *QuoteLineItemUpdateOne) SetQuantity(v int) *QuoteLineItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *QuoteLineItemUpdateOne) SetNillableQuantity(v *int) *QuoteLineItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *QuoteLineItemUpdateOne) AddQuantity(v int) *QuoteLineItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *QuoteLineItemUpdateOne) SetUnitPrice(v float64) *QuoteLineItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *QuoteLineItemUpdateOne) SetNillableUnitPrice(v *float64) *QuoteLineItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *QuoteLineItemUpdateOne) AddUnitPrice(v float64) *QuoteLineItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *QuoteLineItemUpdateOne) SetOrganizationID(v int) *QuoteLineItemUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *QuoteLineItemUpdateOne) SetNillableOrganizationID(v *int) *QuoteLineItemUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *QuoteLineItemUpdateOne) SetOrganization(v *Organization) *QuoteLineItemUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// SetQuote sets the "quote" edge to the Quote entity.
func (_u *QuoteLineItemUpdateOne) SetQuote(v *Quote) *QuoteLineItemUpdateOne {
	return _u.SetQuoteID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *QuoteLineItemUpdateOne) SetProduct(v *Product) *QuoteLineItemUpdateOne {
	return _u.SetProductID(v.ID)
}

// Mutation returns the QuoteLineItemMutation object of the builder.
func (_u *QuoteLineItemUpdateOne) Mutation() *QuoteLineItemMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *QuoteLineItemUpdateOne) ClearOrganization() *QuoteLineItemUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// ClearQuote clears the "quote" edge to the Quote entity.
func (_u *QuoteLineItemUpdateOne) ClearQuote() *QuoteLineItemUpdateOne {
	_u.mutation.ClearQuote()
	return _u
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *QuoteLineItemUpdateOne) ClearProduct() *QuoteLineItemUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// Where appends a list predicates to the QuoteLineItemUpdate builder.
func (_u *QuoteLineItemUpdateOne) Where(ps ...predicate.QuoteLineItem) *QuoteLineItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuoteLineItemUpdateOne) Select(field string, fields ...string) *QuoteLineItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuoteLineItem entity.
func (_u *QuoteLineItemUpdateOne) Save(ctx context.Context) (*QuoteLineItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteLineItemUpdateOne) SaveX(ctx context.Context) *QuoteLineItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuoteLineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteLineItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteLineItemUpdateOne) check() error {
	if v, ok := _u.mutation.QuoteID(); ok {
		if err := quotelineitem.QuoteIDValidator(v); err != nil {
			return &ValidationError{Name: "quote_id", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.quote_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := quotelineitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := quotelineitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := quotelineitem.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.organization_id": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteLineItem.organization"`)
	}
	if _u.mutation.QuoteCleared() && len(_u.mutation.QuoteIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteLineItem.quote"`)
	}
	return nil
}

func (_u *QuoteLineItemUpdateOne) sqlSave(ctx context.Context) (_node *QuoteLineItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotelineitem.Table, quotelineitem.Columns, sqlgraph.NewFieldSpec(quotelineitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuoteLineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quotelineitem.FieldID)
		for _, f := range fields {
			if !quotelineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quotelineitem.FieldID {
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
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(quotelineitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(quotelineitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(quotelineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(quotelineitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotelineitem.OrganizationTable,
			Columns: []string{quotelineitem.OrganizationColumn},
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
			Table:   quotelineitem.OrganizationTable,
			Columns: []string{quotelineitem.OrganizationColumn},
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
	if _u.mutation.QuoteCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotelineitem.QuoteTable,
			Columns: []string{quotelineitem.QuoteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quote.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuoteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotelineitem.QuoteTable,
			Columns: []string{quotelineitem.QuoteColumn},
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
	if _u.mutation.ProductCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotelineitem.ProductTable,
			Columns: []string{quotelineitem.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotelineitem.ProductTable,
			Columns: []string{quotelineitem.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuoteLineItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotelineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
