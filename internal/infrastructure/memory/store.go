// Package memory implementa un almacén transaccional en memoria con los mismos puertos que
// el adaptador PostgreSQL. Las transacciones trabajan sobre una copia del estado que solo se
// publica al hacer Commit; los savepoints restauran una instantánea si el callback falla.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/accounting-setup/internal/application/setup"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

var _ setup.TxRunner = (*Store)(nil)

type propKey struct {
	companyID string
	id        string
}

type state struct {
	companies     map[string]entity.Company
	accounts      map[string]entity.Account
	journals      map[string]entity.Journal
	categories    map[string]entity.ProductCategory
	categoryProps map[propKey]entity.ProductCategory
	partners      map[string]entity.Partner
	partnerProps  map[propKey]entity.PartnerAccounts
	defaults      map[string]entity.DefaultValue
}

func newState() state {
	return state{
		companies:     map[string]entity.Company{},
		accounts:      map[string]entity.Account{},
		journals:      map[string]entity.Journal{},
		categories:    map[string]entity.ProductCategory{},
		categoryProps: map[propKey]entity.ProductCategory{},
		partners:      map[string]entity.Partner{},
		partnerProps:  map[propKey]entity.PartnerAccounts{},
		defaults:      map[string]entity.DefaultValue{},
	}
}

// clone copia profunda: las entidades son structs sin punteros.
func (s state) clone() state {
	out := newState()
	for k, v := range s.companies {
		out.companies[k] = v
	}
	for k, v := range s.accounts {
		out.accounts[k] = v
	}
	for k, v := range s.journals {
		out.journals[k] = v
	}
	for k, v := range s.categories {
		out.categories[k] = v
	}
	for k, v := range s.categoryProps {
		out.categoryProps[k] = v
	}
	for k, v := range s.partners {
		out.partners[k] = v
	}
	for k, v := range s.partnerProps {
		out.partnerProps[k] = v
	}
	for k, v := range s.defaults {
		out.defaults[k] = v
	}
	return out
}

// Op identifica una operación de escritura o lectura para inyectar fallos.
type Op string

const (
	OpCreateAccount     Op = "create_account"
	OpCreateJournal     Op = "create_journal"
	OpUpdateValuation   Op = "update_valuation"
	OpSetExpenseAccount Op = "set_expense_account"
	OpReadPartner       Op = "read_partner"
	OpWritePartner      Op = "write_partner"
	OpSetDefault        Op = "set_default"
	OpReadCompany       Op = "read_company"
)

// Store almacén en memoria. Es seguro para uso concurrente; las transacciones se serializan.
type Store struct {
	mu    sync.Mutex
	state state

	faultsMu sync.Mutex
	faults   map[Op]map[string]error
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{state: newState(), faults: map[Op]map[string]error{}}
}

// FailOn hace que op falle con err para el registro id ("*" = cualquier registro).
func (s *Store) FailOn(op Op, id string, err error) {
	s.faultsMu.Lock()
	defer s.faultsMu.Unlock()
	if s.faults[op] == nil {
		s.faults[op] = map[string]error{}
	}
	s.faults[op][id] = err
}

func (s *Store) fault(op Op, id string) error {
	s.faultsMu.Lock()
	defer s.faultsMu.Unlock()
	byID := s.faults[op]
	if byID == nil {
		return nil
	}
	if err, ok := byID[id]; ok {
		return err
	}
	return byID["*"]
}

// Run ejecuta fn sobre una copia del estado y la publica solo si fn no devuelve error.
func (s *Store) Run(ctx context.Context, fn func(tx setup.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	working := s.state.clone()
	tx := &memTx{store: s, state: &working}
	if err := fn(tx); err != nil {
		return err
	}
	s.state = working
	return nil
}

// Repositories devuelve repositorios fuera de transacción (cada llamada toma el lock).
func (s *Store) Repositories() setup.Repositories {
	return reposFor(s, &s.state, s.lock)
}

func (s *Store) lock() func() {
	s.mu.Lock()
	return s.mu.Unlock
}

func noLock() func() { return func() {} }

type memTx struct {
	store *Store
	state *state
}

func (t *memTx) Repos() setup.Repositories {
	return reposFor(t.store, t.state, noLock)
}

// Savepoint guarda una instantánea y la restaura si fn falla.
func (t *memTx) Savepoint(ctx context.Context, fn func(repos setup.Repositories) error) error {
	snapshot := t.state.clone()
	if err := fn(t.Repos()); err != nil {
		*t.state = snapshot
		return err
	}
	return nil
}

func reposFor(s *Store, st *state, lock func() func()) setup.Repositories {
	base := repoBase{store: s, state: st, lock: lock}
	return setup.Repositories{
		Accounts:   &AccountRepo{base},
		Journals:   &JournalRepo{base},
		Categories: &CategoryRepo{base},
		Partners:   &PartnerRepo{base},
		Defaults:   &DefaultValueRepo{base},
		Companies:  &CompanyRepo{base},
	}
}

type repoBase struct {
	store *Store
	state *state
	lock  func() func()
}

// sortedKeys orden estable para listados.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
