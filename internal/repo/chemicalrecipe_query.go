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
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// ChemicalRecipeQuery is the builder for querying ChemicalRecipe entities.
type ChemicalRecipeQuery struct {
	config
	ctx               *QueryContext
	order             []chemicalrecipe.OrderOption
	inters            []Interceptor
	predicates        []predicate.ChemicalRecipe
	withOwner         *PatientQuery
	withAuthorPatient *PatientQuery
	withAuthorDoctor  *DoctorQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ChemicalRecipeQuery builder.
func (_q *ChemicalRecipeQuery) Where(ps ...predicate.ChemicalRecipe) *ChemicalRecipeQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ChemicalRecipeQuery) Limit(limit int) *ChemicalRecipeQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ChemicalRecipeQuery) Offset(offset int) *ChemicalRecipeQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ChemicalRecipeQuery) Unique(unique bool) *ChemicalRecipeQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ChemicalRecipeQuery) Order(o ...chemicalrecipe.OrderOption) *ChemicalRecipeQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOwner chains the current query on the "owner" edge.
func (_q *ChemicalRecipeQuery) QueryOwner() *PatientQuery {
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
			sqlgraph.From(chemicalrecipe.Table, chemicalrecipe.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chemicalrecipe.OwnerTable, chemicalrecipe.OwnerColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuthorPatient chains the current query on the "author_patient" edge.
func (_q *ChemicalRecipeQuery) QueryAuthorPatient() *PatientQuery {
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
			sqlgraph.From(chemicalrecipe.Table, chemicalrecipe.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chemicalrecipe.AuthorPatientTable, chemicalrecipe.AuthorPatientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuthorDoctor chains the current query on the "author_doctor" edge.
func (_q *ChemicalRecipeQuery) QueryAuthorDoctor() *DoctorQuery {
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
			sqlgraph.From(chemicalrecipe.Table, chemicalrecipe.FieldID, selector),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chemicalrecipe.AuthorDoctorTable, chemicalrecipe.AuthorDoctorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ChemicalRecipe entity from the query.
// Returns a *NotFoundError when no ChemicalRecipe was found.
func (_q *ChemicalRecipeQuery) First(ctx context.Context) (*ChemicalRecipe, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{chemicalrecipe.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ChemicalRecipeQuery) FirstX(ctx context.Context) *ChemicalRecipe {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ChemicalRecipe ID from the query.
// Returns a *NotFoundError when no ChemicalRecipe ID was found.
func (_q *ChemicalRecipeQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{chemicalrecipe.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ChemicalRecipeQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ChemicalRecipe entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ChemicalRecipe entity is found.
// Returns a *NotFoundError when no ChemicalRecipe entities are found.
func (_q *ChemicalRecipeQuery) Only(ctx context.Context) (*ChemicalRecipe, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{chemicalrecipe.Label}
	default:
		return nil, &NotSingularError{chemicalrecipe.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ChemicalRecipeQuery) OnlyX(ctx context.Context) *ChemicalRecipe {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ChemicalRecipe ID in the query.
// Returns a *NotSingularError when more than one ChemicalRecipe ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ChemicalRecipeQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{chemicalrecipe.Label}
	default:
		err = &NotSingularError{chemicalrecipe.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ChemicalRecipeQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ChemicalRecipes.
func (_q *ChemicalRecipeQuery) All(ctx context.Context) ([]*ChemicalRecipe, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ChemicalRecipe, *ChemicalRecipeQuery]()
	return withInterceptors[[]*ChemicalRecipe](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ChemicalRecipeQuery) AllX(ctx context.Context) []*ChemicalRecipe {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ChemicalRecipe IDs.
func (_q *ChemicalRecipeQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(chemicalrecipe.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ChemicalRecipeQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ChemicalRecipeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ChemicalRecipeQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ChemicalRecipeQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ChemicalRecipeQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ChemicalRecipeQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ChemicalRecipeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ChemicalRecipeQuery) Clone() *ChemicalRecipeQuery {
	if _q == nil {
		return nil
	}
	return &ChemicalRecipeQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]chemicalrecipe.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.ChemicalRecipe{}, _q.predicates...),
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
func (_q *ChemicalRecipeQuery) WithOwner(opts ...func(*PatientQuery)) *ChemicalRecipeQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOwner = query
	return _q
}

// WithAuthorPatient tells the query-builder to eager-load the nodes that are connected to
// the "author_patient" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChemicalRecipeQuery) WithAuthorPatient(opts ...func(*PatientQuery)) *ChemicalRecipeQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuthorPatient = query
	return _q
}

// WithAuthorDoctor tells the query-builder to eager-load the nodes that are connected to
// the "author_doctor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ChemicalRecipeQuery) WithAuthorDoctor(opts ...func(*DoctorQuery)) *ChemicalRecipeQuery {
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
//	client.ChemicalRecipe.Query().
//		GroupBy(chemicalrecipe.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *ChemicalRecipeQuery) GroupBy(field string, fields ...string) *ChemicalRecipeGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ChemicalRecipeGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = chemicalrecipe.Label
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
//	client.ChemicalRecipe.Query().
//		Select(chemicalrecipe.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ChemicalRecipeQuery) Select(fields ...string) *ChemicalRecipeSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ChemicalRecipeSelect{ChemicalRecipeQuery: _q}
	sbuild.label = chemicalrecipe.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ChemicalRecipeSelect configured with the given aggregations.
func (_q *ChemicalRecipeQuery) Aggregate(fns ...AggregateFunc) *ChemicalRecipeSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ChemicalRecipeQuery) prepareQuery(ctx context.Context) error {
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
		if !chemicalrecipe.ValidColumn(f) {
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

func (_q *ChemicalRecipeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ChemicalRecipe, error) {
	var (
		nodes       = []*ChemicalRecipe{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withOwner != nil,
			_q.withAuthorPatient != nil,
			_q.withAuthorDoctor != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ChemicalRecipe).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ChemicalRecipe{config: _q.config}
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
			func(n *ChemicalRecipe, e *Patient) { n.Edges.Owner = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAuthorPatient; query != nil {
		if err := _q.loadAuthorPatient(ctx, query, nodes, nil,
			func(n *ChemicalRecipe, e *Patient) { n.Edges.AuthorPatient = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAuthorDoctor; query != nil {
		if err := _q.loadAuthorDoctor(ctx, query, nodes, nil,
			func(n *ChemicalRecipe, e *Doctor) { n.Edges.AuthorDoctor = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ChemicalRecipeQuery) loadOwner(ctx context.Context, query *PatientQuery, nodes []*ChemicalRecipe, init func(*ChemicalRecipe), assign func(*ChemicalRecipe, *Patient)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ChemicalRecipe)
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
func (_q *ChemicalRecipeQuery) loadAuthorPatient(ctx context.Context, query *PatientQuery, nodes []*ChemicalRecipe, init func(*ChemicalRecipe), assign func(*ChemicalRecipe, *Patient)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ChemicalRecipe)
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
func (_q *ChemicalRecipeQuery) loadAuthorDoctor(ctx context.Context, query *DoctorQuery, nodes []*ChemicalRecipe, init func(*ChemicalRecipe), assign func(*ChemicalRecipe, *Doctor)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ChemicalRecipe)
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

func (_q *ChemicalRecipeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ChemicalRecipeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(chemicalrecipe.Table, chemicalrecipe.Columns, sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chemicalrecipe.FieldID)
		for i := range fields {
			if fields[i] != chemicalrecipe.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOwner != nil {
			_spec.Node.AddColumnOnce(chemicalrecipe.FieldOwnerID)
		}
		if _q.withAuthorPatient != nil {
			_spec.Node.AddColumnOnce(chemicalrecipe.FieldAuthorPatientID)
		}
		if _q.withAuthorDoctor != nil {
			_spec.Node.AddColumnOnce(chemicalrecipe.FieldAuthorDoctorID)
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

func (_q *ChemicalRecipeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(chemicalrecipe.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = chemicalrecipe.Columns
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

// ChemicalRecipeGroupBy is the group-by builder for ChemicalRecipe entities.
type ChemicalRecipeGroupBy struct {
	selector
	build *ChemicalRecipeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ChemicalRecipeGroupBy) Aggregate(fns ...AggregateFunc) *ChemicalRecipeGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ChemicalRecipeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChemicalRecipeQuery, *ChemicalRecipeGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ChemicalRecipeGroupBy) sqlScan(ctx context.Context, root *ChemicalRecipeQuery, v any) error {
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

// ChemicalRecipeSelect is the builder for selecting fields of ChemicalRecipe entities.
type ChemicalRecipeSelect struct {
	*ChemicalRecipeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ChemicalRecipeSelect) Aggregate(fns ...AggregateFunc) *ChemicalRecipeSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ChemicalRecipeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ChemicalRecipeQuery, *ChemicalRecipeSelect](ctx, _s.ChemicalRecipeQuery, _s, _s.inters, v)
}

func (_s *ChemicalRecipeSelect) sqlScan(ctx context.Context, root *ChemicalRecipeQuery, v any) error {
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
