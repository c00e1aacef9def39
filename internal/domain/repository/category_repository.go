package repository

import (
	"context"

	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para categorías de producto.
// Las propiedades de valoración dependen de la empresa, que se pasa explícitamente.
type CategoryRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.ProductCategory, error)
	ListByValuation(ctx context.Context, companyID, valuation string) ([]*entity.ProductCategory, error)
	UpdateValuation(ctx context.Context, companyID, categoryID string, settings entity.ValuationSettings) error
	SetExpenseAccount(ctx context.Context, companyID, categoryID, accountID string) error
}
