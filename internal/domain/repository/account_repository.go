package repository

import (
	"context"

	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para el plan contable.
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByCode(ctx context.Context, code string) (*entity.Account, error)
	// GetByCodeAndTypes busca por código restringiendo a los tipos indicados.
	GetByCodeAndTypes(ctx context.Context, code string, types []string) (*entity.Account, error)
	Create(ctx context.Context, account *entity.Account) error
}
