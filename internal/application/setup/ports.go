package setup

import (
	"context"

	"github.com/jhoicas/accounting-setup/internal/domain/repository"
)

// Repositories agrupa los repositorios atados a una misma transacción.
type Repositories struct {
	Accounts   repository.AccountRepository
	Journals   repository.JournalRepository
	Categories repository.CategoryRepository
	Partners   repository.PartnerRepository
	Defaults   repository.DefaultValueRepository
	Companies  repository.CompanyRepository
}

// Tx es la unidad de trabajo de una ejecución de la configuración.
type Tx interface {
	Repos() Repositories
	// Savepoint ejecuta fn en un punto de guardado: si fn falla solo se deshace lo hecho
	// dentro de fn y la transacción externa sigue usable.
	Savepoint(ctx context.Context, fn func(repos Repositories) error) error
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Tx) error) error
}
