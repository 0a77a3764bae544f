// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mobiusclinic/clinica_backend/internal/repo/awarenessmap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstatepreset"
	"github.com/mobiusclinic/clinica_backend/internal/repo/nightmaremap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/user"
	"github.com/mobiusclinic/clinica_backend/internal/repo/usersession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AwarenessMap is the client for interacting with the AwarenessMap builders.
	AwarenessMap *AwarenessMapClient
	// ChemicalRecipe is the client for interacting with the ChemicalRecipe builders.
	ChemicalRecipe *ChemicalRecipeClient
	// Doctor is the client for interacting with the Doctor builders.
	Doctor *DoctorClient
	// MechanicalCompound is the client for interacting with the MechanicalCompound builders.
	MechanicalCompound *MechanicalCompoundClient
	// MentalState is the client for interacting with the MentalState builders.
	MentalState *MentalStateClient
	// MentalStatePreset is the client for interacting with the MentalStatePreset builders.
	MentalStatePreset *MentalStatePresetClient
	// NightmareMap is the client for interacting with the NightmareMap builders.
	NightmareMap *NightmareMapClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AwarenessMap = NewAwarenessMapClient(c.config)
	c.ChemicalRecipe = NewChemicalRecipeClient(c.config)
	c.Doctor = NewDoctorClient(c.config)
	c.MechanicalCompound = NewMechanicalCompoundClient(c.config)
	c.MentalState = NewMentalStateClient(c.config)
	c.MentalStatePreset = NewMentalStatePresetClient(c.config)
	c.NightmareMap = NewNightmareMapClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		AwarenessMap:       NewAwarenessMapClient(cfg),
		ChemicalRecipe:     NewChemicalRecipeClient(cfg),
		Doctor:             NewDoctorClient(cfg),
		MechanicalCompound: NewMechanicalCompoundClient(cfg),
		MentalState:        NewMentalStateClient(cfg),
		MentalStatePreset:  NewMentalStatePresetClient(cfg),
		NightmareMap:       NewNightmareMapClient(cfg),
		Patient:            NewPatientClient(cfg),
		User:               NewUserClient(cfg),
		UserSession:        NewUserSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		AwarenessMap:       NewAwarenessMapClient(cfg),
		ChemicalRecipe:     NewChemicalRecipeClient(cfg),
		Doctor:             NewDoctorClient(cfg),
		MechanicalCompound: NewMechanicalCompoundClient(cfg),
		MentalState:        NewMentalStateClient(cfg),
		MentalStatePreset:  NewMentalStatePresetClient(cfg),
		NightmareMap:       NewNightmareMapClient(cfg),
		Patient:            NewPatientClient(cfg),
		User:               NewUserClient(cfg),
		UserSession:        NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AwarenessMap.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AwarenessMap, c.ChemicalRecipe, c.Doctor, c.MechanicalCompound, c.MentalState,
		c.MentalStatePreset, c.NightmareMap, c.Patient, c.User, c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AwarenessMap, c.ChemicalRecipe, c.Doctor, c.MechanicalCompound, c.MentalState,
		c.MentalStatePreset, c.NightmareMap, c.Patient, c.User, c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AwarenessMapMutation:
		return c.AwarenessMap.mutate(ctx, m)
	case *ChemicalRecipeMutation:
		return c.ChemicalRecipe.mutate(ctx, m)
	case *DoctorMutation:
		return c.Doctor.mutate(ctx, m)
	case *MechanicalCompoundMutation:
		return c.MechanicalCompound.mutate(ctx, m)
	case *MentalStateMutation:
		return c.MentalState.mutate(ctx, m)
	case *MentalStatePresetMutation:
		return c.MentalStatePreset.mutate(ctx, m)
	case *NightmareMapMutation:
		return c.NightmareMap.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AwarenessMapClient is a client for the AwarenessMap schema.
type AwarenessMapClient struct {
	config
}

// NewAwarenessMapClient returns a client for the AwarenessMap from the given config.
func NewAwarenessMapClient(c config) *AwarenessMapClient {
	return &AwarenessMapClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `awarenessmap.Hooks(f(g(h())))`.
func (c *AwarenessMapClient) Use(hooks ...Hook) {
	c.hooks.AwarenessMap = append(c.hooks.AwarenessMap, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `awarenessmap.Intercept(f(g(h())))`.
func (c *AwarenessMapClient) Intercept(interceptors ...Interceptor) {
	c.inters.AwarenessMap = append(c.inters.AwarenessMap, interceptors...)
}

// Create returns a builder for creating a AwarenessMap entity.
func (c *AwarenessMapClient) Create() *AwarenessMapCreate {
	mutation := newAwarenessMapMutation(c.config, OpCreate)
	return &AwarenessMapCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AwarenessMap entities.
func (c *AwarenessMapClient) CreateBulk(builders ...*AwarenessMapCreate) *AwarenessMapCreateBulk {
	return &AwarenessMapCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AwarenessMapClient) MapCreateBulk(slice any, setFunc func(*AwarenessMapCreate, int)) *AwarenessMapCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AwarenessMapCreateBulk{err: fmt.Errorf("calling to AwarenessMapClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AwarenessMapCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AwarenessMapCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AwarenessMap.
func (c *AwarenessMapClient) Update() *AwarenessMapUpdate {
	mutation := newAwarenessMapMutation(c.config, OpUpdate)
	return &AwarenessMapUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AwarenessMapClient) UpdateOne(_m *AwarenessMap) *AwarenessMapUpdateOne {
	mutation := newAwarenessMapMutation(c.config, OpUpdateOne, withAwarenessMap(_m))
	return &AwarenessMapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AwarenessMapClient) UpdateOneID(id uuid.UUID) *AwarenessMapUpdateOne {
	mutation := newAwarenessMapMutation(c.config, OpUpdateOne, withAwarenessMapID(id))
	return &AwarenessMapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AwarenessMap.
func (c *AwarenessMapClient) Delete() *AwarenessMapDelete {
	mutation := newAwarenessMapMutation(c.config, OpDelete)
	return &AwarenessMapDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AwarenessMapClient) DeleteOne(_m *AwarenessMap) *AwarenessMapDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AwarenessMapClient) DeleteOneID(id uuid.UUID) *AwarenessMapDeleteOne {
	builder := c.Delete().Where(awarenessmap.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AwarenessMapDeleteOne{builder}
}

// Query returns a query builder for AwarenessMap.
func (c *AwarenessMapClient) Query() *AwarenessMapQuery {
	return &AwarenessMapQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAwarenessMap},
		inters: c.Interceptors(),
	}
}

// Get returns a AwarenessMap entity by its id.
func (c *AwarenessMapClient) Get(ctx context.Context, id uuid.UUID) (*AwarenessMap, error) {
	return c.Query().Where(awarenessmap.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AwarenessMapClient) GetX(ctx context.Context, id uuid.UUID) *AwarenessMap {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a AwarenessMap.
func (c *AwarenessMapClient) QueryPatient(_m *AwarenessMap) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(awarenessmap.Table, awarenessmap.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, awarenessmap.PatientTable, awarenessmap.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AwarenessMapClient) Hooks() []Hook {
	return c.hooks.AwarenessMap
}

// Interceptors returns the client interceptors.
func (c *AwarenessMapClient) Interceptors() []Interceptor {
	return c.inters.AwarenessMap
}

func (c *AwarenessMapClient) mutate(ctx context.Context, m *AwarenessMapMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AwarenessMapCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AwarenessMapUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AwarenessMapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AwarenessMapDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AwarenessMap mutation op: %q", m.Op())
	}
}

// ChemicalRecipeClient is a client for the ChemicalRecipe schema.
type ChemicalRecipeClient struct {
	config
}

// NewChemicalRecipeClient returns a client for the ChemicalRecipe from the given config.
func NewChemicalRecipeClient(c config) *ChemicalRecipeClient {
	return &ChemicalRecipeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chemicalrecipe.Hooks(f(g(h())))`.
func (c *ChemicalRecipeClient) Use(hooks ...Hook) {
	c.hooks.ChemicalRecipe = append(c.hooks.ChemicalRecipe, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chemicalrecipe.Intercept(f(g(h())))`.
func (c *ChemicalRecipeClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChemicalRecipe = append(c.inters.ChemicalRecipe, interceptors...)
}

// Create returns a builder for creating a ChemicalRecipe entity.
func (c *ChemicalRecipeClient) Create() *ChemicalRecipeCreate {
	mutation := newChemicalRecipeMutation(c.config, OpCreate)
	return &ChemicalRecipeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChemicalRecipe entities.
func (c *ChemicalRecipeClient) CreateBulk(builders ...*ChemicalRecipeCreate) *ChemicalRecipeCreateBulk {
	return &ChemicalRecipeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChemicalRecipeClient) MapCreateBulk(slice any, setFunc func(*ChemicalRecipeCreate, int)) *ChemicalRecipeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChemicalRecipeCreateBulk{err: fmt.Errorf("calling to ChemicalRecipeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChemicalRecipeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChemicalRecipeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChemicalRecipe.
func (c *ChemicalRecipeClient) Update() *ChemicalRecipeUpdate {
	mutation := newChemicalRecipeMutation(c.config, OpUpdate)
	return &ChemicalRecipeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChemicalRecipeClient) UpdateOne(_m *ChemicalRecipe) *ChemicalRecipeUpdateOne {
	mutation := newChemicalRecipeMutation(c.config, OpUpdateOne, withChemicalRecipe(_m))
	return &ChemicalRecipeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChemicalRecipeClient) UpdateOneID(id uuid.UUID) *ChemicalRecipeUpdateOne {
	mutation := newChemicalRecipeMutation(c.config, OpUpdateOne, withChemicalRecipeID(id))
	return &ChemicalRecipeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChemicalRecipe.
func (c *ChemicalRecipeClient) Delete() *ChemicalRecipeDelete {
	mutation := newChemicalRecipeMutation(c.config, OpDelete)
	return &ChemicalRecipeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChemicalRecipeClient) DeleteOne(_m *ChemicalRecipe) *ChemicalRecipeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChemicalRecipeClient) DeleteOneID(id uuid.UUID) *ChemicalRecipeDeleteOne {
	builder := c.Delete().Where(chemicalrecipe.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChemicalRecipeDeleteOne{builder}
}

// Query returns a query builder for ChemicalRecipe.
func (c *ChemicalRecipeClient) Query() *ChemicalRecipeQuery {
	return &ChemicalRecipeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChemicalRecipe},
		inters: c.Interceptors(),
	}
}

// Get returns a ChemicalRecipe entity by its id.
func (c *ChemicalRecipeClient) Get(ctx context.Context, id uuid.UUID) (*ChemicalRecipe, error) {
	return c.Query().Where(chemicalrecipe.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChemicalRecipeClient) GetX(ctx context.Context, id uuid.UUID) *ChemicalRecipe {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a ChemicalRecipe.
func (c *ChemicalRecipeClient) QueryOwner(_m *ChemicalRecipe) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chemicalrecipe.Table, chemicalrecipe.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chemicalrecipe.OwnerTable, chemicalrecipe.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthorPatient queries the author_patient edge of a ChemicalRecipe.
func (c *ChemicalRecipeClient) QueryAuthorPatient(_m *ChemicalRecipe) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chemicalrecipe.Table, chemicalrecipe.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chemicalrecipe.AuthorPatientTable, chemicalrecipe.AuthorPatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthorDoctor queries the author_doctor edge of a ChemicalRecipe.
func (c *ChemicalRecipeClient) QueryAuthorDoctor(_m *ChemicalRecipe) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chemicalrecipe.Table, chemicalrecipe.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chemicalrecipe.AuthorDoctorTable, chemicalrecipe.AuthorDoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChemicalRecipeClient) Hooks() []Hook {
	return c.hooks.ChemicalRecipe
}

// Interceptors returns the client interceptors.
func (c *ChemicalRecipeClient) Interceptors() []Interceptor {
	return c.inters.ChemicalRecipe
}

func (c *ChemicalRecipeClient) mutate(ctx context.Context, m *ChemicalRecipeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChemicalRecipeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChemicalRecipeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChemicalRecipeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChemicalRecipeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ChemicalRecipe mutation op: %q", m.Op())
	}
}

// DoctorClient is a client for the Doctor schema.
type DoctorClient struct {
	config
}

// NewDoctorClient returns a client for the Doctor from the given config.
func NewDoctorClient(c config) *DoctorClient {
	return &DoctorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctor.Hooks(f(g(h())))`.
func (c *DoctorClient) Use(hooks ...Hook) {
	c.hooks.Doctor = append(c.hooks.Doctor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctor.Intercept(f(g(h())))`.
func (c *DoctorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Doctor = append(c.inters.Doctor, interceptors...)
}

// Create returns a builder for creating a Doctor entity.
func (c *DoctorClient) Create() *DoctorCreate {
	mutation := newDoctorMutation(c.config, OpCreate)
	return &DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Doctor entities.
func (c *DoctorClient) CreateBulk(builders ...*DoctorCreate) *DoctorCreateBulk {
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorClient) MapCreateBulk(slice any, setFunc func(*DoctorCreate, int)) *DoctorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorCreateBulk{err: fmt.Errorf("calling to DoctorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Doctor.
func (c *DoctorClient) Update() *DoctorUpdate {
	mutation := newDoctorMutation(c.config, OpUpdate)
	return &DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorClient) UpdateOne(_m *Doctor) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctor(_m))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorClient) UpdateOneID(id uuid.UUID) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctorID(id))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Doctor.
func (c *DoctorClient) Delete() *DoctorDelete {
	mutation := newDoctorMutation(c.config, OpDelete)
	return &DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorClient) DeleteOne(_m *Doctor) *DoctorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorClient) DeleteOneID(id uuid.UUID) *DoctorDeleteOne {
	builder := c.Delete().Where(doctor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorDeleteOne{builder}
}

// Query returns a query builder for Doctor.
func (c *DoctorClient) Query() *DoctorQuery {
	return &DoctorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctor},
		inters: c.Interceptors(),
	}
}

// Get returns a Doctor entity by its id.
func (c *DoctorClient) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return c.Query().Where(doctor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorClient) GetX(ctx context.Context, id uuid.UUID) *Doctor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Doctor.
func (c *DoctorClient) QueryUser(_m *Doctor) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, doctor.UserTable, doctor.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthoredChemicalRecipes queries the authored_chemical_recipes edge of a Doctor.
func (c *DoctorClient) QueryAuthoredChemicalRecipes(_m *Doctor) *ChemicalRecipeQuery {
	query := (&ChemicalRecipeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(chemicalrecipe.Table, chemicalrecipe.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, doctor.AuthoredChemicalRecipesTable, doctor.AuthoredChemicalRecipesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthoredMechanicalCompounds queries the authored_mechanical_compounds edge of a Doctor.
func (c *DoctorClient) QueryAuthoredMechanicalCompounds(_m *Doctor) *MechanicalCompoundQuery {
	query := (&MechanicalCompoundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(mechanicalcompound.Table, mechanicalcompound.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, doctor.AuthoredMechanicalCompoundsTable, doctor.AuthoredMechanicalCompoundsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DoctorClient) Hooks() []Hook {
	return c.hooks.Doctor
}

// Interceptors returns the client interceptors.
func (c *DoctorClient) Interceptors() []Interceptor {
	return c.inters.Doctor
}

func (c *DoctorClient) mutate(ctx context.Context, m *DoctorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Doctor mutation op: %q", m.Op())
	}
}

// MechanicalCompoundClient is a client for the MechanicalCompound schema.
type MechanicalCompoundClient struct {
	config
}

// NewMechanicalCompoundClient returns a client for the MechanicalCompound from the given config.
func NewMechanicalCompoundClient(c config) *MechanicalCompoundClient {
	return &MechanicalCompoundClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mechanicalcompound.Hooks(f(g(h())))`.
func (c *MechanicalCompoundClient) Use(hooks ...Hook) {
	c.hooks.MechanicalCompound = append(c.hooks.MechanicalCompound, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mechanicalcompound.Intercept(f(g(h())))`.
func (c *MechanicalCompoundClient) Intercept(interceptors ...Interceptor) {
	c.inters.MechanicalCompound = append(c.inters.MechanicalCompound, interceptors...)
}

// Create returns a builder for creating a MechanicalCompound entity.
func (c *MechanicalCompoundClient) Create() *MechanicalCompoundCreate {
	mutation := newMechanicalCompoundMutation(c.config, OpCreate)
	return &MechanicalCompoundCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MechanicalCompound entities.
func (c *MechanicalCompoundClient) CreateBulk(builders ...*MechanicalCompoundCreate) *MechanicalCompoundCreateBulk {
	return &MechanicalCompoundCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MechanicalCompoundClient) MapCreateBulk(slice any, setFunc func(*MechanicalCompoundCreate, int)) *MechanicalCompoundCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MechanicalCompoundCreateBulk{err: fmt.Errorf("calling to MechanicalCompoundClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MechanicalCompoundCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MechanicalCompoundCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MechanicalCompound.
func (c *MechanicalCompoundClient) Update() *MechanicalCompoundUpdate {
	mutation := newMechanicalCompoundMutation(c.config, OpUpdate)
	return &MechanicalCompoundUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MechanicalCompoundClient) UpdateOne(_m *MechanicalCompound) *MechanicalCompoundUpdateOne {
	mutation := newMechanicalCompoundMutation(c.config, OpUpdateOne, withMechanicalCompound(_m))
	return &MechanicalCompoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MechanicalCompoundClient) UpdateOneID(id uuid.UUID) *MechanicalCompoundUpdateOne {
	mutation := newMechanicalCompoundMutation(c.config, OpUpdateOne, withMechanicalCompoundID(id))
	return &MechanicalCompoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MechanicalCompound.
func (c *MechanicalCompoundClient) Delete() *MechanicalCompoundDelete {
	mutation := newMechanicalCompoundMutation(c.config, OpDelete)
	return &MechanicalCompoundDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MechanicalCompoundClient) DeleteOne(_m *MechanicalCompound) *MechanicalCompoundDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MechanicalCompoundClient) DeleteOneID(id uuid.UUID) *MechanicalCompoundDeleteOne {
	builder := c.Delete().Where(mechanicalcompound.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MechanicalCompoundDeleteOne{builder}
}

// Query returns a query builder for MechanicalCompound.
func (c *MechanicalCompoundClient) Query() *MechanicalCompoundQuery {
	return &MechanicalCompoundQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMechanicalCompound},
		inters: c.Interceptors(),
	}
}

// Get returns a MechanicalCompound entity by its id.
func (c *MechanicalCompoundClient) Get(ctx context.Context, id uuid.UUID) (*MechanicalCompound, error) {
	return c.Query().Where(mechanicalcompound.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MechanicalCompoundClient) GetX(ctx context.Context, id uuid.UUID) *MechanicalCompound {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a MechanicalCompound.
func (c *MechanicalCompoundClient) QueryOwner(_m *MechanicalCompound) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mechanicalcompound.Table, mechanicalcompound.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mechanicalcompound.OwnerTable, mechanicalcompound.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthorPatient queries the author_patient edge of a MechanicalCompound.
func (c *MechanicalCompoundClient) QueryAuthorPatient(_m *MechanicalCompound) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mechanicalcompound.Table, mechanicalcompound.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mechanicalcompound.AuthorPatientTable, mechanicalcompound.AuthorPatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthorDoctor queries the author_doctor edge of a MechanicalCompound.
func (c *MechanicalCompoundClient) QueryAuthorDoctor(_m *MechanicalCompound) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mechanicalcompound.Table, mechanicalcompound.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mechanicalcompound.AuthorDoctorTable, mechanicalcompound.AuthorDoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MechanicalCompoundClient) Hooks() []Hook {
	return c.hooks.MechanicalCompound
}

// Interceptors returns the client interceptors.
func (c *MechanicalCompoundClient) Interceptors() []Interceptor {
	return c.inters.MechanicalCompound
}

func (c *MechanicalCompoundClient) mutate(ctx context.Context, m *MechanicalCompoundMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MechanicalCompoundCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MechanicalCompoundUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MechanicalCompoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MechanicalCompoundDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MechanicalCompound mutation op: %q", m.Op())
	}
}

// MentalStateClient is a client for the MentalState schema.
type MentalStateClient struct {
	config
}

// NewMentalStateClient returns a client for the MentalState from the given config.
func NewMentalStateClient(c config) *MentalStateClient {
	return &MentalStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mentalstate.Hooks(f(g(h())))`.
func (c *MentalStateClient) Use(hooks ...Hook) {
	c.hooks.MentalState = append(c.hooks.MentalState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mentalstate.Intercept(f(g(h())))`.
func (c *MentalStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MentalState = append(c.inters.MentalState, interceptors...)
}

// Create returns a builder for creating a MentalState entity.
func (c *MentalStateClient) Create() *MentalStateCreate {
	mutation := newMentalStateMutation(c.config, OpCreate)
	return &MentalStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MentalState entities.
func (c *MentalStateClient) CreateBulk(builders ...*MentalStateCreate) *MentalStateCreateBulk {
	return &MentalStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MentalStateClient) MapCreateBulk(slice any, setFunc func(*MentalStateCreate, int)) *MentalStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MentalStateCreateBulk{err: fmt.Errorf("calling to MentalStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MentalStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MentalStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MentalState.
func (c *MentalStateClient) Update() *MentalStateUpdate {
	mutation := newMentalStateMutation(c.config, OpUpdate)
	return &MentalStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MentalStateClient) UpdateOne(_m *MentalState) *MentalStateUpdateOne {
	mutation := newMentalStateMutation(c.config, OpUpdateOne, withMentalState(_m))
	return &MentalStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MentalStateClient) UpdateOneID(id uuid.UUID) *MentalStateUpdateOne {
	mutation := newMentalStateMutation(c.config, OpUpdateOne, withMentalStateID(id))
	return &MentalStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MentalState.
func (c *MentalStateClient) Delete() *MentalStateDelete {
	mutation := newMentalStateMutation(c.config, OpDelete)
	return &MentalStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MentalStateClient) DeleteOne(_m *MentalState) *MentalStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MentalStateClient) DeleteOneID(id uuid.UUID) *MentalStateDeleteOne {
	builder := c.Delete().Where(mentalstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MentalStateDeleteOne{builder}
}

// Query returns a query builder for MentalState.
func (c *MentalStateClient) Query() *MentalStateQuery {
	return &MentalStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMentalState},
		inters: c.Interceptors(),
	}
}

// Get returns a MentalState entity by its id.
func (c *MentalStateClient) Get(ctx context.Context, id uuid.UUID) (*MentalState, error) {
	return c.Query().Where(mentalstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MentalStateClient) GetX(ctx context.Context, id uuid.UUID) *MentalState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a MentalState.
func (c *MentalStateClient) QueryPatient(_m *MentalState) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mentalstate.Table, mentalstate.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, mentalstate.PatientTable, mentalstate.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MentalStateClient) Hooks() []Hook {
	return c.hooks.MentalState
}

// Interceptors returns the client interceptors.
func (c *MentalStateClient) Interceptors() []Interceptor {
	return c.inters.MentalState
}

func (c *MentalStateClient) mutate(ctx context.Context, m *MentalStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MentalStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MentalStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MentalStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MentalStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MentalState mutation op: %q", m.Op())
	}
}

// MentalStatePresetClient is a client for the MentalStatePreset schema.
type MentalStatePresetClient struct {
	config
}

// NewMentalStatePresetClient returns a client for the MentalStatePreset from the given config.
func NewMentalStatePresetClient(c config) *MentalStatePresetClient {
	return &MentalStatePresetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mentalstatepreset.Hooks(f(g(h())))`.
func (c *MentalStatePresetClient) Use(hooks ...Hook) {
	c.hooks.MentalStatePreset = append(c.hooks.MentalStatePreset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mentalstatepreset.Intercept(f(g(h())))`.
func (c *MentalStatePresetClient) Intercept(interceptors ...Interceptor) {
	c.inters.MentalStatePreset = append(c.inters.MentalStatePreset, interceptors...)
}

// Create returns a builder for creating a MentalStatePreset entity.
func (c *MentalStatePresetClient) Create() *MentalStatePresetCreate {
	mutation := newMentalStatePresetMutation(c.config, OpCreate)
	return &MentalStatePresetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MentalStatePreset entities.
func (c *MentalStatePresetClient) CreateBulk(builders ...*MentalStatePresetCreate) *MentalStatePresetCreateBulk {
	return &MentalStatePresetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MentalStatePresetClient) MapCreateBulk(slice any, setFunc func(*MentalStatePresetCreate, int)) *MentalStatePresetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MentalStatePresetCreateBulk{err: fmt.Errorf("calling to MentalStatePresetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MentalStatePresetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MentalStatePresetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MentalStatePreset.
func (c *MentalStatePresetClient) Update() *MentalStatePresetUpdate {
	mutation := newMentalStatePresetMutation(c.config, OpUpdate)
	return &MentalStatePresetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MentalStatePresetClient) UpdateOne(_m *MentalStatePreset) *MentalStatePresetUpdateOne {
	mutation := newMentalStatePresetMutation(c.config, OpUpdateOne, withMentalStatePreset(_m))
	return &MentalStatePresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MentalStatePresetClient) UpdateOneID(id uuid.UUID) *MentalStatePresetUpdateOne {
	mutation := newMentalStatePresetMutation(c.config, OpUpdateOne, withMentalStatePresetID(id))
	return &MentalStatePresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MentalStatePreset.
func (c *MentalStatePresetClient) Delete() *MentalStatePresetDelete {
	mutation := newMentalStatePresetMutation(c.config, OpDelete)
	return &MentalStatePresetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MentalStatePresetClient) DeleteOne(_m *MentalStatePreset) *MentalStatePresetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MentalStatePresetClient) DeleteOneID(id uuid.UUID) *MentalStatePresetDeleteOne {
	builder := c.Delete().Where(mentalstatepreset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MentalStatePresetDeleteOne{builder}
}

// Query returns a query builder for MentalStatePreset.
func (c *MentalStatePresetClient) Query() *MentalStatePresetQuery {
	return &MentalStatePresetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMentalStatePreset},
		inters: c.Interceptors(),
	}
}

// Get returns a MentalStatePreset entity by its id.
func (c *MentalStatePresetClient) Get(ctx context.Context, id uuid.UUID) (*MentalStatePreset, error) {
	return c.Query().Where(mentalstatepreset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MentalStatePresetClient) GetX(ctx context.Context, id uuid.UUID) *MentalStatePreset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MentalStatePresetClient) Hooks() []Hook {
	return c.hooks.MentalStatePreset
}

// Interceptors returns the client interceptors.
func (c *MentalStatePresetClient) Interceptors() []Interceptor {
	return c.inters.MentalStatePreset
}

func (c *MentalStatePresetClient) mutate(ctx context.Context, m *MentalStatePresetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MentalStatePresetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MentalStatePresetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MentalStatePresetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MentalStatePresetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MentalStatePreset mutation op: %q", m.Op())
	}
}

// NightmareMapClient is a client for the NightmareMap schema.
type NightmareMapClient struct {
	config
}

// NewNightmareMapClient returns a client for the NightmareMap from the given config.
func NewNightmareMapClient(c config) *NightmareMapClient {
	return &NightmareMapClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `nightmaremap.Hooks(f(g(h())))`.
func (c *NightmareMapClient) Use(hooks ...Hook) {
	c.hooks.NightmareMap = append(c.hooks.NightmareMap, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `nightmaremap.Intercept(f(g(h())))`.
func (c *NightmareMapClient) Intercept(interceptors ...Interceptor) {
	c.inters.NightmareMap = append(c.inters.NightmareMap, interceptors...)
}

// Create returns a builder for creating a NightmareMap entity.
func (c *NightmareMapClient) Create() *NightmareMapCreate {
	mutation := newNightmareMapMutation(c.config, OpCreate)
	return &NightmareMapCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NightmareMap entities.
func (c *NightmareMapClient) CreateBulk(builders ...*NightmareMapCreate) *NightmareMapCreateBulk {
	return &NightmareMapCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NightmareMapClient) MapCreateBulk(slice any, setFunc func(*NightmareMapCreate, int)) *NightmareMapCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NightmareMapCreateBulk{err: fmt.Errorf("calling to NightmareMapClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NightmareMapCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NightmareMapCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NightmareMap.
func (c *NightmareMapClient) Update() *NightmareMapUpdate {
	mutation := newNightmareMapMutation(c.config, OpUpdate)
	return &NightmareMapUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NightmareMapClient) UpdateOne(_m *NightmareMap) *NightmareMapUpdateOne {
	mutation := newNightmareMapMutation(c.config, OpUpdateOne, withNightmareMap(_m))
	return &NightmareMapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NightmareMapClient) UpdateOneID(id uuid.UUID) *NightmareMapUpdateOne {
	mutation := newNightmareMapMutation(c.config, OpUpdateOne, withNightmareMapID(id))
	return &NightmareMapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NightmareMap.
func (c *NightmareMapClient) Delete() *NightmareMapDelete {
	mutation := newNightmareMapMutation(c.config, OpDelete)
	return &NightmareMapDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NightmareMapClient) DeleteOne(_m *NightmareMap) *NightmareMapDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NightmareMapClient) DeleteOneID(id uuid.UUID) *NightmareMapDeleteOne {
	builder := c.Delete().Where(nightmaremap.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NightmareMapDeleteOne{builder}
}

// Query returns a query builder for NightmareMap.
func (c *NightmareMapClient) Query() *NightmareMapQuery {
	return &NightmareMapQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNightmareMap},
		inters: c.Interceptors(),
	}
}

// Get returns a NightmareMap entity by its id.
func (c *NightmareMapClient) Get(ctx context.Context, id uuid.UUID) (*NightmareMap, error) {
	return c.Query().Where(nightmaremap.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NightmareMapClient) GetX(ctx context.Context, id uuid.UUID) *NightmareMap {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a NightmareMap.
func (c *NightmareMapClient) QueryPatient(_m *NightmareMap) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(nightmaremap.Table, nightmaremap.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, nightmaremap.PatientTable, nightmaremap.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NightmareMapClient) Hooks() []Hook {
	return c.hooks.NightmareMap
}

// Interceptors returns the client interceptors.
func (c *NightmareMapClient) Interceptors() []Interceptor {
	return c.inters.NightmareMap
}

func (c *NightmareMapClient) mutate(ctx context.Context, m *NightmareMapMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NightmareMapCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NightmareMapUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NightmareMapUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NightmareMapDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown NightmareMap mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Patient.
func (c *PatientClient) QueryUser(_m *Patient) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, patient.UserTable, patient.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMentalState queries the mental_state edge of a Patient.
func (c *PatientClient) QueryMentalState(_m *Patient) *MentalStateQuery {
	query := (&MentalStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(mentalstate.Table, mentalstate.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, patient.MentalStateTable, patient.MentalStateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAwarenessMap queries the awareness_map edge of a Patient.
func (c *PatientClient) QueryAwarenessMap(_m *Patient) *AwarenessMapQuery {
	query := (&AwarenessMapClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(awarenessmap.Table, awarenessmap.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, patient.AwarenessMapTable, patient.AwarenessMapColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNightmareMap queries the nightmare_map edge of a Patient.
func (c *PatientClient) QueryNightmareMap(_m *Patient) *NightmareMapQuery {
	query := (&NightmareMapClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(nightmaremap.Table, nightmaremap.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, patient.NightmareMapTable, patient.NightmareMapColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChemicalRecipes queries the chemical_recipes edge of a Patient.
func (c *PatientClient) QueryChemicalRecipes(_m *Patient) *ChemicalRecipeQuery {
	query := (&ChemicalRecipeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(chemicalrecipe.Table, chemicalrecipe.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.ChemicalRecipesTable, patient.ChemicalRecipesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMechanicalCompounds queries the mechanical_compounds edge of a Patient.
func (c *PatientClient) QueryMechanicalCompounds(_m *Patient) *MechanicalCompoundQuery {
	query := (&MechanicalCompoundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(mechanicalcompound.Table, mechanicalcompound.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.MechanicalCompoundsTable, patient.MechanicalCompoundsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthoredChemicalRecipes queries the authored_chemical_recipes edge of a Patient.
func (c *PatientClient) QueryAuthoredChemicalRecipes(_m *Patient) *ChemicalRecipeQuery {
	query := (&ChemicalRecipeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(chemicalrecipe.Table, chemicalrecipe.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.AuthoredChemicalRecipesTable, patient.AuthoredChemicalRecipesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthoredMechanicalCompounds queries the authored_mechanical_compounds edge of a Patient.
func (c *PatientClient) QueryAuthoredMechanicalCompounds(_m *Patient) *MechanicalCompoundQuery {
	query := (&MechanicalCompoundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(mechanicalcompound.Table, mechanicalcompound.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.AuthoredMechanicalCompoundsTable, patient.AuthoredMechanicalCompoundsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a User.
func (c *UserClient) QueryPatient(_m *User) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.PatientTable, user.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDoctor queries the doctor edge of a User.
func (c *UserClient) QueryDoctor(_m *User) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.DoctorTable, user.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a User.
func (c *UserClient) QuerySessions(_m *User) *UserSessionQuery {
	query := (&UserSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(usersession.Table, usersession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.SessionsTable, user.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AwarenessMap, ChemicalRecipe, Doctor, MechanicalCompound, MentalState,
		MentalStatePreset, NightmareMap, Patient, User, UserSession []ent.Hook
	}
	inters struct {
		AwarenessMap, ChemicalRecipe, Doctor, MechanicalCompound, MentalState,
		MentalStatePreset, NightmareMap, Patient, User, UserSession []ent.Interceptor
	}
)
