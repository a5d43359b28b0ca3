// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sannty/salescrm/ent/organization"
	"github.com/sannty/salescrm/ent/product"
	"github.com/sannty/salescrm/ent/quote"
	"github.com/sannty/salescrm/ent/quotelineitem"
)

// QuoteLineItemCreate is the builder for creating a QuoteLineItem entity.
type QuoteLineItemCreate struct {
	config
	mutation *QuoteLineItemMutation
	hooks    []Hook
}

// SetQuoteID sets the "quote_id" field.
func (_c *QuoteLineItemCreate) SetQuoteID(v int) *QuoteLineItemCreate {
	_c.mutation.SetQuoteID(v)
	return _c
}

// SetProductID sets the "product_id" field.
func (_c *QuoteLineItemCreate) SetProductID(v int) *QuoteLineItemCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_c *QuoteLineItemCreate) SetNillableProductID(v *int) *QuoteLineItemCreate {
	if v != nil {
		_c.SetProductID(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *QuoteLineItemCreate) SetQuantity(v int) *QuoteLineItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *QuoteLineItemCreate) SetUnitPrice(v float64) *QuoteLineItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetOrganizationID sets the "organization_id" field.
func (_c *QuoteLineItemCreate) SetOrganizationID(v int) *QuoteLineItemCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_c *QuoteLineItemCreate) SetOrganization(v *Organization) *QuoteLineItemCreate {
	return _c.SetOrganizationID(v.ID)
}

// SetQuote sets the "quote" edge to the Quote entity.
func (_c *QuoteLineItemCreate) SetQuote(v *Quote) *QuoteLineItemCreate {
	return _c.SetQuoteID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *QuoteLineItemCreate) SetProduct(v *Product) *QuoteLineItemCreate {
	return _c.SetProductID(v.ID)
}

// Mutation returns the QuoteLineItemMutation object of the builder.
func (_c *QuoteLineItemCreate) Mutation() *QuoteLineItemMutation {
	return _c.mutation
}

// Save creates the QuoteLineItem in the database.
func (_c *QuoteLineItemCreate) Save(ctx context.Context) (*QuoteLineItem, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuoteLineItemCreate) SaveX(ctx context.Context) *QuoteLineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteLineItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteLineItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuoteLineItemCreate) check() error {
	if _, ok := _c.mutation.QuoteID(); !ok {
		return &ValidationError{Name: "quote_id", err: errors.New(`ent: missing required field "QuoteLineItem.quote_id"`)}
	}
	if v, ok := _c.mutation.QuoteID(); ok {
		if err := quotelineitem.QuoteIDValidator(v); err != nil {
			return &ValidationError{Name: "quote_id", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.quote_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "QuoteLineItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := quotelineitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "QuoteLineItem.unit_price"`)}
	}
	if v, ok := _c.mutation.UnitPrice(); ok {
		if err := quotelineitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.unit_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "QuoteLineItem.organization_id"`)}
	}
	if v, ok := _c.mutation.OrganizationID(); ok {
		if err := quotelineitem.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "QuoteLineItem.organization_id": %w`, err)}
		}
	}
	if len(_c.mutation.OrganizationIDs()) == 0 {
		return &ValidationError{Name: "organization", err: errors.New(`ent: missing required edge "QuoteLineItem.organization"`)}
	}
	if len(_c.mutation.QuoteIDs()) == 0 {
		return &ValidationError{Name: "quote", err: errors.New(`ent: missing required edge "QuoteLineItem.quote"`)}
	}
	return nil
}

func (_c *QuoteLineItemCreate) sqlSave(ctx context.Context) (*QuoteLineItem, error) {
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

func (_c *QuoteLineItemCreate) createSpec() (*QuoteLineItem, *sqlgraph.CreateSpec) {
	var (
		_node = &QuoteLineItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quotelineitem.Table, sqlgraph.NewFieldSpec(quotelineitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(quotelineitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(quotelineitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = value
	}
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_node.OrganizationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuoteIDs(); len(nodes) > 0 {
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
		_node.QuoteID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
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
		_node.ProductID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuoteLineItemCreateBulk is the builder for creating many QuoteLineItem entities in bulk.
type QuoteLineItemCreateBulk struct {
	config
	err      error
	builders []*QuoteLineItemCreate
}

// Save creates the QuoteLineItem entities in the database.
func (_c *QuoteLineItemCreateBulk) Save(ctx context.Context) ([]*QuoteLineItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuoteLineItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuoteLineItemMutation)
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
func (_c *QuoteLineItemCreateBulk) SaveX(ctx context.Context) []*QuoteLineItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteLineItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteLineItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
