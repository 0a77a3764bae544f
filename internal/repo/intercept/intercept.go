// Code generated by ent, DO NOT EDIT.

package intercept

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/mobiusclinic/clinica_backend/internal/repo"
	"github.com/mobiusclinic/clinica_backend/internal/repo/awarenessmap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstatepreset"
	"github.com/mobiusclinic/clinica_backend/internal/repo/nightmaremap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/user"
	"github.com/mobiusclinic/clinica_backend/internal/repo/usersession"
)

// The Query interface represents an operation that queries a graph.
// By using this interface, users can write generic code that manipulates
// query builders of different types.
type Query interface {
	// Type returns the string representation of the query type.
	Type() string
	// Limit the number of records to be returned by this query.
	Limit(int)
	// Offset to start from.
	Offset(int)
	// Unique configures the query builder to filter duplicate records.
	Unique(bool)
	// Order specifies how the records should be ordered.
	Order(...func(*sql.Selector))
	// WhereP appends storage-level predicates to the query builder. Using this method, users
	// can use type-assertion to append predicates that do not depend on any generated package.
	WhereP(...func(*sql.Selector))
}

// The Func type is an adapter that allows ordinary functions to be used as interceptors.
// Unlike traversal functions, interceptors are skipped during graph traversals. Note that the
// implementation of Func is different from the one defined in entgo.io/ent.InterceptFunc.
type Func func(context.Context, Query) error

// Intercept calls f(ctx, q) and then applied the next Querier.
func (f Func) Intercept(next repo.Querier) repo.Querier {
	return repo.QuerierFunc(func(ctx context.Context, q repo.Query) (repo.Value, error) {
		query, err := NewQuery(q)
		if err != nil {
			return nil, err
		}
		if err := f(ctx, query); err != nil {
			return nil, err
		}
		return next.Query(ctx, q)
	})
}

// The TraverseFunc type is an adapter to allow the use of ordinary function as Traverser.
// If f is a function with the appropriate signature, TraverseFunc(f) is a Traverser that calls f.
type TraverseFunc func(context.Context, Query) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseFunc) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseFunc) Traverse(ctx context.Context, q repo.Query) error {
	query, err := NewQuery(q)
	if err != nil {
		return err
	}
	return f(ctx, query)
}

// The AwarenessMapFunc type is an adapter to allow the use of ordinary function as a Querier.
type AwarenessMapFunc func(context.Context, *repo.AwarenessMapQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f AwarenessMapFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.AwarenessMapQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.AwarenessMapQuery", q)
}

// The TraverseAwarenessMap type is an adapter to allow the use of ordinary function as Traverser.
type TraverseAwarenessMap func(context.Context, *repo.AwarenessMapQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseAwarenessMap) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseAwarenessMap) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.AwarenessMapQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.AwarenessMapQuery", q)
}

// The ChemicalRecipeFunc type is an adapter to allow the use of ordinary function as a Querier.
type ChemicalRecipeFunc func(context.Context, *repo.ChemicalRecipeQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f ChemicalRecipeFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.ChemicalRecipeQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.ChemicalRecipeQuery", q)
}

// The TraverseChemicalRecipe type is an adapter to allow the use of ordinary function as Traverser.
type TraverseChemicalRecipe func(context.Context, *repo.ChemicalRecipeQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseChemicalRecipe) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseChemicalRecipe) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.ChemicalRecipeQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.ChemicalRecipeQuery", q)
}

// The DoctorFunc type is an adapter to allow the use of ordinary function as a Querier.
type DoctorFunc func(context.Context, *repo.DoctorQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f DoctorFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.DoctorQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.DoctorQuery", q)
}

// The TraverseDoctor type is an adapter to allow the use of ordinary function as Traverser.
type TraverseDoctor func(context.Context, *repo.DoctorQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseDoctor) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseDoctor) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.DoctorQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.DoctorQuery", q)
}

// The MechanicalCompoundFunc type is an adapter to allow the use of ordinary function as a Querier.
type MechanicalCompoundFunc func(context.Context, *repo.MechanicalCompoundQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f MechanicalCompoundFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.MechanicalCompoundQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.MechanicalCompoundQuery", q)
}

// The TraverseMechanicalCompound type is an adapter to allow the use of ordinary function as Traverser.
type TraverseMechanicalCompound func(context.Context, *repo.MechanicalCompoundQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseMechanicalCompound) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseMechanicalCompound) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.MechanicalCompoundQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.MechanicalCompoundQuery", q)
}

// The MentalStateFunc type is an adapter to allow the use of ordinary function as a Querier.
type MentalStateFunc func(context.Context, *repo.MentalStateQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f MentalStateFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.MentalStateQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.MentalStateQuery", q)
}

// The TraverseMentalState type is an adapter to allow the use of ordinary function as Traverser.
type TraverseMentalState func(context.Context, *repo.MentalStateQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseMentalState) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseMentalState) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.MentalStateQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.MentalStateQuery", q)
}

// The MentalStatePresetFunc type is an adapter to allow the use of ordinary function as a Querier.
type MentalStatePresetFunc func(context.Context, *repo.MentalStatePresetQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f MentalStatePresetFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.MentalStatePresetQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.MentalStatePresetQuery", q)
}

// The TraverseMentalStatePreset type is an adapter to allow the use of ordinary function as Traverser.
type TraverseMentalStatePreset func(context.Context, *repo.MentalStatePresetQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseMentalStatePreset) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseMentalStatePreset) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.MentalStatePresetQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.MentalStatePresetQuery", q)
}

// The NightmareMapFunc type is an adapter to allow the use of ordinary function as a Querier.
type NightmareMapFunc func(context.Context, *repo.NightmareMapQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f NightmareMapFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.NightmareMapQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.NightmareMapQuery", q)
}

// The TraverseNightmareMap type is an adapter to allow the use of ordinary function as Traverser.
type TraverseNightmareMap func(context.Context, *repo.NightmareMapQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseNightmareMap) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseNightmareMap) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.NightmareMapQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.NightmareMapQuery", q)
}

// The PatientFunc type is an adapter to allow the use of ordinary function as a Querier.
type PatientFunc func(context.Context, *repo.PatientQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f PatientFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.PatientQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.PatientQuery", q)
}

// The TraversePatient type is an adapter to allow the use of ordinary function as Traverser.
type TraversePatient func(context.Context, *repo.PatientQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraversePatient) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraversePatient) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.PatientQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.PatientQuery", q)
}

// The UserFunc type is an adapter to allow the use of ordinary function as a Querier.
type UserFunc func(context.Context, *repo.UserQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f UserFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.UserQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.UserQuery", q)
}

// The TraverseUser type is an adapter to allow the use of ordinary function as Traverser.
type TraverseUser func(context.Context, *repo.UserQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseUser) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseUser) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.UserQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.UserQuery", q)
}

// The UserSessionFunc type is an adapter to allow the use of ordinary function as a Querier.
type UserSessionFunc func(context.Context, *repo.UserSessionQuery) (repo.Value, error)

// Query calls f(ctx, q).
func (f UserSessionFunc) Query(ctx context.Context, q repo.Query) (repo.Value, error) {
	if q, ok := q.(*repo.UserSessionQuery); ok {
		return f(ctx, q)
	}
	return nil, fmt.Errorf("unexpected query type %T. expect *repo.UserSessionQuery", q)
}

// The TraverseUserSession type is an adapter to allow the use of ordinary function as Traverser.
type TraverseUserSession func(context.Context, *repo.UserSessionQuery) error

// Intercept is a dummy implementation of Intercept that returns the next Querier in the pipeline.
func (f TraverseUserSession) Intercept(next repo.Querier) repo.Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseUserSession) Traverse(ctx context.Context, q repo.Query) error {
	if q, ok := q.(*repo.UserSessionQuery); ok {
		return f(ctx, q)
	}
	return fmt.Errorf("unexpected query type %T. expect *repo.UserSessionQuery", q)
}

// NewQuery returns the generic Query interface for the given typed query.
func NewQuery(q repo.Query) (Query, error) {
	switch q := q.(type) {
	case *repo.AwarenessMapQuery:
		return &query[*repo.AwarenessMapQuery, predicate.AwarenessMap, awarenessmap.OrderOption]{typ: repo.TypeAwarenessMap, tq: q}, nil
	case *repo.ChemicalRecipeQuery:
		return &query[*repo.ChemicalRecipeQuery, predicate.ChemicalRecipe, chemicalrecipe.OrderOption]{typ: repo.TypeChemicalRecipe, tq: q}, nil
	case *repo.DoctorQuery:
		return &query[*repo.DoctorQuery, predicate.Doctor, doctor.OrderOption]{typ: repo.TypeDoctor, tq: q}, nil
	case *repo.MechanicalCompoundQuery:
		return &query[*repo.MechanicalCompoundQuery, predicate.MechanicalCompound, mechanicalcompound.OrderOption]{typ: repo.TypeMechanicalCompound, tq: q}, nil
	case *repo.MentalStateQuery:
		return &query[*repo.MentalStateQuery, predicate.MentalState, mentalstate.OrderOption]{typ: repo.TypeMentalState, tq: q}, nil
	case *repo.MentalStatePresetQuery:
		return &query[*repo.MentalStatePresetQuery, predicate.MentalStatePreset, mentalstatepreset.OrderOption]{typ: repo.TypeMentalStatePreset, tq: q}, nil
	case *repo.NightmareMapQuery:
		return &query[*repo.NightmareMapQuery, predicate.NightmareMap, nightmaremap.OrderOption]{typ: repo.TypeNightmareMap, tq: q}, nil
	case *repo.PatientQuery:
		return &query[*repo.PatientQuery, predicate.Patient, patient.OrderOption]{typ: repo.TypePatient, tq: q}, nil
	case *repo.UserQuery:
		return &query[*repo.UserQuery, predicate.User, user.OrderOption]{typ: repo.TypeUser, tq: q}, nil
	case *repo.UserSessionQuery:
		return &query[*repo.UserSessionQuery, predicate.UserSession, usersession.OrderOption]{typ: repo.TypeUserSession, tq: q}, nil
	default:
		return nil, fmt.Errorf("unknown query type %T", q)
	}
}

type query[T any, P ~func(*sql.Selector), R ~func(*sql.Selector)] struct {
	typ string
	tq  interface {
		Limit(int) T
		Offset(int) T
		Unique(bool) T
		Order(...R) T
		Where(...P) T
	}
}

func (q query[T, P, R]) Type() string {
	return q.typ
}

func (q query[T, P, R]) Limit(limit int) {
	q.tq.Limit(limit)
}

func (q query[T, P, R]) Offset(offset int) {
	q.tq.Offset(offset)
}

func (q query[T, P, R]) Unique(unique bool) {
	q.tq.Unique(unique)
}

func (q query[T, P, R]) Order(orders ...func(*sql.Selector)) {
	rs := make([]R, len(orders))
	for i := range orders {
		rs[i] = orders[i]
	}
	q.tq.Order(rs...)
}

func (q query[T, P, R]) WhereP(ps ...func(*sql.Selector)) {
	p := make([]P, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	q.tq.Where(p...)
}
