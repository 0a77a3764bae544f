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
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstatepreset"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// MentalStatePresetQuery is the builder for querying MentalStatePreset entities.
type MentalStatePresetQuery struct {
	config
	ctx        *QueryContext
	order      []mentalstatepreset.OrderOption
	inters     []Interceptor
	predicates []predicate.MentalStatePreset
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MentalStatePresetQuery builder.
func (_q *MentalStatePresetQuery) Where(ps ...predicate.MentalStatePreset) *MentalStatePresetQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MentalStatePresetQuery) Limit(limit int) *MentalStatePresetQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MentalStatePresetQuery) Offset(offset int) *MentalStatePresetQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MentalStatePresetQuery) Unique(unique bool) *MentalStatePresetQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MentalStatePresetQuery) Order(o ...mentalstatepreset.OrderOption) *MentalStatePresetQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first MentalStatePreset entity from the query.
// Returns a *NotFoundError when no MentalStatePreset was found.
func (_q *MentalStatePresetQuery) First(ctx context.Context) (*MentalStatePreset, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{mentalstatepreset.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MentalStatePresetQuery) FirstX(ctx context.Context) *MentalStatePreset {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MentalStatePreset ID from the query.
// Returns a *NotFoundError when no MentalStatePreset ID was found.
func (_q *MentalStatePresetQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{mentalstatepreset.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MentalStatePresetQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MentalStatePreset entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MentalStatePreset entity is found.
// Returns a *NotFoundError when no MentalStatePreset entities are found.
func (_q *MentalStatePresetQuery) Only(ctx context.Context) (*MentalStatePreset, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{mentalstatepreset.Label}
	default:
		return nil, &NotSingularError{mentalstatepreset.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MentalStatePresetQuery) OnlyX(ctx context.Context) *MentalStatePreset {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MentalStatePreset ID in the query.
// Returns a *NotSingularError when more than one MentalStatePreset ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MentalStatePresetQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{mentalstatepreset.Label}
	default:
		err = &NotSingularError{mentalstatepreset.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MentalStatePresetQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MentalStatePresets.
func (_q *MentalStatePresetQuery) All(ctx context.Context) ([]*MentalStatePreset, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MentalStatePreset, *MentalStatePresetQuery]()
	return withInterceptors[[]*MentalStatePreset](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MentalStatePresetQuery) AllX(ctx context.Context) []*MentalStatePreset {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MentalStatePreset IDs.
func (_q *MentalStatePresetQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(mentalstatepreset.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MentalStatePresetQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MentalStatePresetQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MentalStatePresetQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MentalStatePresetQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MentalStatePresetQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *MentalStatePresetQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MentalStatePresetQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MentalStatePresetQuery) Clone() *MentalStatePresetQuery {
	if _q == nil {
		return nil
	}
	return &MentalStatePresetQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]mentalstatepreset.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.MentalStatePreset{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
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
//	client.MentalStatePreset.Query().
//		GroupBy(mentalstatepreset.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *MentalStatePresetQuery) GroupBy(field string, fields ...string) *MentalStatePresetGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MentalStatePresetGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = mentalstatepreset.Label
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
//	client.MentalStatePreset.Query().
//		Select(mentalstatepreset.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *MentalStatePresetQuery) Select(fields ...string) *MentalStatePresetSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MentalStatePresetSelect{MentalStatePresetQuery: _q}
	sbuild.label = mentalstatepreset.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MentalStatePresetSelect configured with the given aggregations.
func (_q *MentalStatePresetQuery) Aggregate(fns ...AggregateFunc) *MentalStatePresetSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MentalStatePresetQuery) prepareQuery(ctx context.Context) error {
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
		if !mentalstatepreset.ValidColumn(f) {
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

func (_q *MentalStatePresetQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MentalStatePreset, error) {
	var (
		nodes = []*MentalStatePreset{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MentalStatePreset).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MentalStatePreset{config: _q.config}
		nodes = append(nodes, node)
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
	return nodes, nil
}

func (_q *MentalStatePresetQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MentalStatePresetQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(mentalstatepreset.Table, mentalstatepreset.Columns, sqlgraph.NewFieldSpec(mentalstatepreset.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mentalstatepreset.FieldID)
		for i := range fields {
			if fields[i] != mentalstatepreset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *MentalStatePresetQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(mentalstatepreset.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = mentalstatepreset.Columns
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

// MentalStatePresetGroupBy is the group-by builder for MentalStatePreset entities.
type MentalStatePresetGroupBy struct {
	selector
	build *MentalStatePresetQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MentalStatePresetGroupBy) Aggregate(fns ...AggregateFunc) *MentalStatePresetGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MentalStatePresetGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MentalStatePresetQuery, *MentalStatePresetGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MentalStatePresetGroupBy) sqlScan(ctx context.Context, root *MentalStatePresetQuery, v any) error {
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

// MentalStatePresetSelect is the builder for selecting fields of MentalStatePreset entities.
type MentalStatePresetSelect struct {
	*MentalStatePresetQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MentalStatePresetSelect) Aggregate(fns ...AggregateFunc) *MentalStatePresetSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MentalStatePresetSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MentalStatePresetQuery, *MentalStatePresetSelect](ctx, _s.MentalStatePresetQuery, _s, _s.inters, v)
}

func (_s *MentalStatePresetSelect) sqlScan(ctx context.Context, root *MentalStatePresetQuery, v any) error {
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
