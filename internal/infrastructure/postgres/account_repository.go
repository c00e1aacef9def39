package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

const accountColumns = `id, code, name, account_type, internal_group, reconcile, created_at, updated_at`

func scanAccount(row interface{ Scan(dest ...any) error }) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(&a.ID, &a.Code, &a.Name, &a.Type, &a.InternalGroup, &a.Reconcile, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	a, err := scanAccount(r.q.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// GetByCode obtiene una cuenta por código.
func (r *AccountRepo) GetByCode(ctx context.Context, code string) (*entity.Account, error) {
	a, err := scanAccount(r.q.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE code = $1`, code))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by code: %w", err)
	}
	return a, nil
}

// GetByCodeAndTypes obtiene una cuenta por código si su tipo está en types.
func (r *AccountRepo) GetByCodeAndTypes(ctx context.Context, code string, types []string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = $1 AND account_type = ANY($2)`
	a, err := scanAccount(r.q.QueryRow(ctx, query, code, types))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by code and type: %w", err)
	}
	return a, nil
}

// Create persiste una nueva cuenta.
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, code, name, account_type, internal_group, reconcile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		account.ID, account.Code, account.Name, account.Type, account.InternalGroup, account.Reconcile,
		account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}
