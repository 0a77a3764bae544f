// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// MechanicalCompoundQuery is the builder for querying MechanicalCompound entities.
type MechanicalCompoundQuery struct {
	config
	ctx               *QueryContext
	order             []mechanicalcompound.OrderOption
	inters            []Interceptor
	predicates        []predicate.MechanicalCompound
	withOwner         *PatientQuery
	withAuthorPatient *PatientQuery
	withAuthorDoctor  *DoctorQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MechanicalCompoundQuery builder.
func (_q *MechanicalCompoundQuery) Where(ps ...predicate.MechanicalCompound) *MechanicalCompoundQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MechanicalCompoundQuery) Limit(limit int) *MechanicalCompoundQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MechanicalCompoundQuery) Offset(offset int) *MechanicalCompoundQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MechanicalCompoundQuery) Unique(unique bool) *MechanicalCompoundQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MechanicalCompoundQuery) Order(o ...mechanicalcompound.OrderOption) *MechanicalCompoundQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOwner chains the current query on the "owner" edge.
func (_q *MechanicalCompoundQuery) QueryOwner() *PatientQuery {
	query := (&PatientClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(mechanicalcompound.Table, mechanicalcompound.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mechanicalcompound.OwnerTable, mechanicalcompound.OwnerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuthorPatient chains the current query on the "author_patient" edge.
func (_q *MechanicalCompoundQuery) QueryAuthorPatient() *PatientQuery {
	query := (&PatientClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(mechanicalcompound.Table, mechanicalcompound.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mechanicalcompound.AuthorPatientTable, mechanicalcompound.AuthorPatientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuthorDoctor chains the current query on the "author_doctor" edge.
func (_q *MechanicalCompoundQuery) QueryAuthorDoctor() *DoctorQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(mechanicalcompound.Table, mechanicalcompound.FieldID, selector),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mechanicalcompound.AuthorDoctorTable, mechanicalcompound.AuthorDoctorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MechanicalCompound entity from the query.
// Returns a *NotFoundError when no MechanicalCompound was found.
func (_q *MechanicalCompoundQuery) First(ctx context.Context) (*MechanicalCompound, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{mechanicalcompound.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MechanicalCompoundQuery) FirstX(ctx context.Context) *MechanicalCompound {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MechanicalCompound ID from the query.
// Returns a *NotFoundError when no MechanicalCompound ID was found.
func (_q *MechanicalCompoundQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{mechanicalcompound.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MechanicalCompoundQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MechanicalCompound entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MechanicalCompound entity is found.
// Returns a *NotFoundError when no MechanicalCompound entities are found.
func (_q *MechanicalCompoundQuery) Only(ctx context.Context) (*MechanicalCompound, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{mechanicalcompound.Label}
	default:
		return nil, &NotSingularError{mechanicalcompound.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MechanicalCompoundQuery) OnlyX(ctx context.Context) *MechanicalCompound {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MechanicalCompound ID in the query.
// Returns a *NotSingularError when more than one MechanicalCompound ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MechanicalCompoundQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{mechanicalcompound.Label}
	default:
		err = &NotSingularError{mechanicalcompound.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MechanicalCompoundQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MechanicalCompounds.
func (_q *MechanicalCompoundQuery) All(ctx context.Context) ([]*MechanicalCompound, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MechanicalCompound, *MechanicalCompoundQuery]()
	return withInterceptors[[]*MechanicalCompound](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MechanicalCompoundQuery) AllX(ctx context.Context) []*MechanicalCompound {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MechanicalCompound IDs.
func (_q *MechanicalCompoundQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(mechanicalcompound.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MechanicalCompoundQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MechanicalCompoundQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MechanicalCompoundQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MechanicalCompoundQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MechanicalCompoundQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *MechanicalCompoundQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MechanicalCompoundQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MechanicalCompoundQuery) Clone() *MechanicalCompoundQuery {
	if _q == nil {
		return nil
	}
	return &MechanicalCompoundQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]mechanicalcompound.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.MechanicalCompound{}, _q.predicates...),
		withOwner:         _q.withOwner.Clone(),
		withAuthorPatient: _q.withAuthorPatient.Clone(),
		withAuthorDoctor:  _q.withAuthorDoctor.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOwner tells the query-builder to eager-load the nodes that are connected to
// the "owner" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MechanicalCompoundQuery) WithOwner(opts ...func(*PatientQuery)) *MechanicalCompoundQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOwner = query
	return _q
}

// WithAuthorPatient tells the query-builder to eager-load the nodes that are connected to
// the "author_patient" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MechanicalCompoundQuery) WithAuthorPatient(opts ...func(*PatientQuery)) *MechanicalCompoundQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuthorPatient = query
	return _q
}

// WithAuthorDoctor tells the query-builder to eager-load the nodes that are connected to
// the "author_doctor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MechanicalCompoundQuery) WithAuthorDoctor(opts ...func(*DoctorQuery)) *MechanicalCompoundQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuthorDoctor = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MechanicalCompound.Query().
//		GroupBy(mechanicalcompound.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *MechanicalCompoundQuery) GroupBy(field string, fields ...string) *MechanicalCompoundGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MechanicalCompoundGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = mechanicalcompound.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.MechanicalCompound.Query().
//		Select(mechanicalcompound.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *MechanicalCompoundQuery) Select(fields ...string) *MechanicalCompoundSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MechanicalCompoundSelect{MechanicalCompoundQuery: _q}
	sbuild.label = mechanicalcompound.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MechanicalCompoundSelect configured with the given aggregations.
func (_q *MechanicalCompoundQuery) Aggregate(fns ...AggregateFunc) *MechanicalCompoundSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MechanicalCompoundQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !mechanicalcompound.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
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

func (_q *MechanicalCompoundQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MechanicalCompound, error) {
	var (
		nodes       = []*MechanicalCompound{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withOwner != nil,
			_q.withAuthorPatient != nil,
			_q.withAuthorDoctor != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MechanicalCompound).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MechanicalCompound{config: _q.config}
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
	if query := _q.withOwner; query != nil {
		if err := _q.loadOwner(ctx, query, nodes, nil,
			func(n *MechanicalCompound, e *Patient) { n.Edges.Owner = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAuthorPatient; query != nil {
		if err := _q.loadAuthorPatient(ctx, query, nodes, nil,
			func(n *MechanicalCompound, e *Patient) { n.Edges.AuthorPatient = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAuthorDoctor; query != nil {
		if err := _q.loadAuthorDoctor(ctx, query, nodes, nil,
			func(n *MechanicalCompound, e *Doctor) { n.Edges.AuthorDoctor = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MechanicalCompoundQuery) loadOwner(ctx context.Context, query *PatientQuery, nodes []*MechanicalCompound, init func(*MechanicalCompound), assign func(*MechanicalCompound, *Patient)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*MechanicalCompound)
	for i := range nodes {
		fk := nodes[i].OwnerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(patient.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "owner_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MechanicalCompoundQuery) loadAuthorPatient(ctx context.Context, query *PatientQuery, nodes []*MechanicalCompound, init func(*MechanicalCompound), assign func(*MechanicalCompound, *Patient)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*MechanicalCompound)
	for i := range nodes {
		if nodes[i].AuthorPatientID == nil {
			continue
		}
		fk := *nodes[i].AuthorPatientID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(patient.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "author_patient_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MechanicalCompoundQuery) loadAuthorDoctor(ctx context.Context, query *DoctorQuery, nodes []*MechanicalCompound, init func(*MechanicalCompound), assign func(*MechanicalCompound, *Doctor)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*MechanicalCompound)
	for i := range nodes {
		if nodes[i].AuthorDoctorID == nil {
			continue
		}
		fk := *nodes[i].AuthorDoctorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(doctor.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "author_doctor_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *MechanicalCompoundQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MechanicalCompoundQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(mechanicalcompound.Table, mechanicalcompound.Columns, sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mechanicalcompound.FieldID)
		for i := range fields {
			if fields[i] != mechanicalcompound.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOwner != nil {
			_spec.Node.AddColumnOnce(mechanicalcompound.FieldOwnerID)
		}
		if _q.withAuthorPatient != nil {
			_spec.Node.AddColumnOnce(mechanicalcompound.FieldAuthorPatientID)
		}
		if _q.withAuthorDoctor != nil {
			_spec.Node.AddColumnOnce(mechanicalcompound.FieldAuthorDoctorID)
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

func (_q *MechanicalCompoundQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(mechanicalcompound.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = mechanicalcompound.Columns
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

// MechanicalCompoundGroupBy is the group-by builder for MechanicalCompound entities.
type MechanicalCompoundGroupBy struct {
	selector
	build *MechanicalCompoundQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MechanicalCompoundGroupBy) Aggregate(fns ...AggregateFunc) *MechanicalCompoundGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MechanicalCompoundGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MechanicalCompoundQuery, *MechanicalCompoundGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MechanicalCompoundGroupBy) sqlScan(ctx context.Context, root *MechanicalCompoundQuery, v any) error {
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

// MechanicalCompoundSelect is the builder for selecting fields of MechanicalCompound entities.
type MechanicalCompoundSelect struct {
	*MechanicalCompoundQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MechanicalCompoundSelect) Aggregate(fns ...AggregateFunc) *MechanicalCompoundSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MechanicalCompoundSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MechanicalCompoundQuery, *MechanicalCompoundSelect](ctx, _s.MechanicalCompoundQuery, _s, _s.inters, v)
}

func (_s *MechanicalCompoundSelect) sqlScan(ctx context.Context, root *MechanicalCompoundQuery, v any) error {
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
