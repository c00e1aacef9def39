package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/accounting-setup/internal/application/setup"
)

var _ setup.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx setup.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&pgTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Repositories devuelve repositorios sobre el pool, fuera de transacción.
func Repositories(q Querier) setup.Repositories {
	return setup.Repositories{
		Accounts:   NewAccountRepository(q),
		Journals:   NewJournalRepository(q),
		Categories: NewCategoryRepository(q),
		Partners:   NewPartnerRepository(q),
		Defaults:   NewDefaultValueRepository(q),
		Companies:  NewCompanyRepository(q),
	}
}

type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Repos() setup.Repositories {
	return Repositories(t.tx)
}

// Savepoint: Begin sobre una pgx.Tx crea un SAVEPOINT; Rollback vuelve a él y Commit lo libera.
func (t *pgTx) Savepoint(ctx context.Context, fn func(repos setup.Repositories) error) error {
	sp, err := t.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	defer func() { _ = sp.Rollback(ctx) }()

	if err := fn(Repositories(sp)); err != nil {
		return err
	}
	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	return nil
}
