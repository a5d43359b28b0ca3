// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
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

// InteractionLogQuery is the builder for querying InteractionLog entities.
type InteractionLogQuery struct {
	config
	ctx              *QueryContext
	order            []interactionlog.OrderOption
	inters           []Interceptor
	predicates       []predicate.InteractionLog
	withOrganization *OrganizationQuery
	withUser         *UserQuery
	withLead         *LeadQuery
	withContact      *ContactQuery
	withOpportunity  *OpportunityQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InteractionLogQuery builder.
func (_q *InteractionLogQuery) Where(ps ...predicate.InteractionLog) *InteractionLogQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InteractionLogQuery) Limit(limit int) *InteractionLogQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InteractionLogQuery) Offset(offset int) *InteractionLogQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InteractionLogQuery) Unique(unique bool) *InteractionLogQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InteractionLogQuery) Order(o ...interactionlog.OrderOption) *InteractionLogQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOrganization chains the current query on the "organization" edge.
func (_q *InteractionLogQuery) QueryOrganization() *OrganizationQuery {
	query := (&OrganizationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interactionlog.Table, interactionlog.FieldID, selector),
			sqlgraph.To(organization.Table, organization.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interactionlog.OrganizationTable, interactionlog.OrganizationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUser chains the current query on the "user" edge.
func (_q *InteractionLogQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interactionlog.Table, interactionlog.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interactionlog.UserTable, interactionlog.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLead chains the current query on the "lead" edge.
func (_q *InteractionLogQuery) QueryLead() *LeadQuery {
	query := (&LeadClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interactionlog.Table, interactionlog.FieldID, selector),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interactionlog.LeadTable, interactionlog.LeadColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryContact chains the current query on the "contact" edge.
func (_q *InteractionLogQuery) QueryContact() *ContactQuery {
	query := (&ContactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interactionlog.Table, interactionlog.FieldID, selector),
			sqlgraph.To(contact.Table, contact.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interactionlog.ContactTable, interactionlog.ContactColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOpportunity chains the current query on the "opportunity" edge.
func (_q *InteractionLogQuery) QueryOpportunity() *OpportunityQuery {
	query := (&OpportunityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interactionlog.Table, interactionlog.FieldID, selector),
			sqlgraph.To(opportunity.Table, opportunity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, interactionlog.OpportunityTable, interactionlog.OpportunityColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first InteractionLog entity from the query.
// Returns a *NotFoundError when no InteractionLog was found.
func (_q *InteractionLogQuery) First(ctx context.Context) (*InteractionLog, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{interactionlog.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InteractionLogQuery) FirstX(ctx context.Context) *InteractionLog {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first InteractionLog ID from the query.
// Returns a *NotFoundError when no InteractionLog ID was found.
func (_q *InteractionLogQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{interactionlog.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InteractionLogQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single InteractionLog entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one InteractionLog entity is found.
// Returns a *NotFoundError when no InteractionLog entities are found.
func (_q *InteractionLogQuery) Only(ctx context.Context) (*InteractionLog, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{interactionlog.Label}
	default:
		return nil, &NotSingularError{interactionlog.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InteractionLogQuery) OnlyX(ctx context.Context) *InteractionLog {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only InteractionLog ID in the query.
// Returns a *NotSingularError when more than one InteractionLog ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InteractionLogQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{interactionlog.Label}
	default:
		err = &NotSingularError{interactionlog.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InteractionLogQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of InteractionLogs.
func (_q *InteractionLogQuery) All(ctx context.Context) ([]*InteractionLog, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*InteractionLog, *InteractionLogQuery]()
	return withInterceptors[[]*InteractionLog](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InteractionLogQuery) AllX(ctx context.Context) []*InteractionLog {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of InteractionLog IDs.
func (_q *InteractionLogQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(interactionlog.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InteractionLogQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InteractionLogQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InteractionLogQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InteractionLogQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InteractionLogQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *InteractionLogQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InteractionLogQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InteractionLogQuery) Clone() *InteractionLogQuery {
	if _q == nil {
		return nil
	}
	return &InteractionLogQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]interactionlog.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.InteractionLog{}, _q.predicates...),
		withOrganization: _q.withOrganization.Clone(),
		withUser:         _q.withUser.Clone(),
		withLead:         _q.withLead.Clone(),
		withContact:      _q.withContact.Clone(),
		withOpportunity:  _q.withOpportunity.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOrganization tells the query-builder to eager-load the nodes that are connected to
// the "organization" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InteractionLogQuery) WithOrganization(opts ...func(*OrganizationQuery)) *InteractionLogQuery {
	query := (&OrganizationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOrganization = query
	return _q
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InteractionLogQuery) WithUser(opts ...func(*UserQuery)) *InteractionLogQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUser = query
	return _q
}

// WithLead tells the query-builder to eager-load the nodes that are connected to
// the "lead" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InteractionLogQuery) WithLead(opts ...func(*LeadQuery)) *InteractionLogQuery {
	query := (&LeadClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLead = query
	return _q
}

// WithContact tells the query-builder to eager-load the nodes that are connected to
// the "contact" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InteractionLogQuery) WithContact(opts ...func(*ContactQuery)) *InteractionLogQuery {
	query := (&ContactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContact = query
	return _q
}

// WithOpportunity tells the query-builder to eager-load the nodes that are connected to
// the "opportunity" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InteractionLogQuery) WithOpportunity(opts ...func(*OpportunityQuery)) *InteractionLogQuery {
	query := (&OpportunityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOpportunity = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID int `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.InteractionLog.Query().
//		GroupBy(interactionlog.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InteractionLogQuery) GroupBy(field string, fields ...string) *InteractionLogGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InteractionLogGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = interactionlog.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID int `json:"user_id,omitempty"`
//	}
//
//	client.InteractionLog.Query().
//		Select(interactionlog.FieldUserID).
//		Scan(ctx, &v)
func (_q *InteractionLogQuery) Select(fields ...string) *InteractionLogSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InteractionLogSelect{InteractionLogQuery: _q}
	sbuild.label = interactionlog.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InteractionLogSelect configured with the given aggregations.
func (_q *InteractionLogQuery) Aggregate(fns ...AggregateFunc) *InteractionLogSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InteractionLogQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !interactionlog.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *InteractionLogQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*InteractionLog, error) {
	var (
		nodes       = []*InteractionLog{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withOrganization != nil,
			_q.withUser != nil,
			_q.withLead != nil,
			_q.withContact != nil,
			_q.withOpportunity != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*InteractionLog).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &InteractionLog{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withOrganization; query != nil {
		if err := _q.loadOrganization(ctx, query, nodes, nil,
			func(n *InteractionLog, e *Organization) { n.Edges.Organization = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withUser; query != nil {
		if err := _q.loadUser(ctx, query, nodes, nil,
			func(n *InteractionLog, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLead; query != nil {
		if err := _q.loadLead(ctx, query, nodes, nil,
			func(n *InteractionLog, e *Lead) { n.Edges.Lead = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withContact; query != nil {
		if err := _q.loadContact(ctx, query, nodes, nil,
			func(n *InteractionLog, e *Contact) { n.Edges.Contact = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOpportunity; query != nil {
		if err := _q.loadOpportunity(ctx, query, nodes, nil,
			func(n *InteractionLog, e *Opportunity) { n.Edges.Opportunity = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InteractionLogQuery) loadOrganization(ctx context.Context, query *OrganizationQuery, nodes []*InteractionLog, init func(*InteractionLog), assign func(*InteractionLog, *Organization)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*InteractionLog)
	for i := range nodes {
		fk := nodes[i].OrganizationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(organization.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "organization_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InteractionLogQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*InteractionLog, init func(*InteractionLog), assign func(*InteractionLog, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*InteractionLog)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InteractionLogQuery) loadLead(ctx context.Context, query *LeadQuery, nodes []*InteractionLog, init func(*InteractionLog), assign func(*InteractionLog, *Lead)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*InteractionLog)
	for i := range nodes {
		if nodes[i].LeadID == nil {
			continue
		}
		fk := *nodes[i].LeadID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(lead.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "lead_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InteractionLogQuery) loadContact(ctx context.Context, query *ContactQuery, nodes []*InteractionLog, init func(*InteractionLog), assign func(*InteractionLog, *Contact)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*InteractionLog)
	for i := range nodes {
		if nodes[i].ContactID == nil {
			continue
		}
		fk := *nodes[i].ContactID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(contact.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "contact_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InteractionLogQuery) loadOpportunity(ctx context.Context, query *OpportunityQuery, nodes []*InteractionLog, init func(*InteractionLog), assign func(*InteractionLog, *Opportunity)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*InteractionLog)
	for i := range nodes {
		if nodes[i].OpportunityID == nil {
			continue
		}
		fk := *nodes[i].OpportunityID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(opportunity.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "opportunity_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *InteractionLogQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InteractionLogQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(interactionlog.Table, interactionlog.Columns, sqlgraph.NewFieldSpec(interactionlog.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionlog.FieldID)
		for i := range fields {
			if fields[i] != interactionlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOrganization != nil {
			_spec.Node.AddColumnOnce(interactionlog.FieldOrganizationID)
		}
		if _q.withUser != nil {
			_spec.Node.AddColumnOnce(interactionlog.FieldUserID)
		}
		if _q.withLead != nil {
			_spec.Node.AddColumnOnce(interactionlog.FieldLeadID)
		}
		if _q.withContact != nil {
			_spec.Node.AddColumnOnce(interactionlog.FieldContactID)
		}
		if _q.withOpportunity != nil {
			_spec.Node.AddColumnOnce(interactionlog.FieldOpportunityID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *InteractionLogQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(interactionlog.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = interactionlog.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// InteractionLogGroupBy is the group-by builder for InteractionLog entities.
type InteractionLogGroupBy struct {
	selector
	build *InteractionLogQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InteractionLogGroupBy) Aggregate(fns ...AggregateFunc) *InteractionLogGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InteractionLogGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InteractionLogQuery, *InteractionLogGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InteractionLogGroupBy) sqlScan(ctx context.Context, root *InteractionLogQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// InteractionLogSelect is the builder for selecting fields of InteractionLog entities.
type InteractionLogSelect struct {
	*InteractionLogQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InteractionLogSelect) Aggregate(fns ...AggregateFunc) *InteractionLogSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InteractionLogSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InteractionLogQuery, *InteractionLogSelect](ctx, _s.InteractionLogQuery, _s, _s.inters, v)
}

func (_s *InteractionLogSelect) sqlScan(ctx context.Context, root *InteractionLogQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
