package repository

import (
	"context"

	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// DefaultValueRepository define el puerto del registro de valores por defecto,
// indexado por (modelo, campo, empresa).
type DefaultValueRepository interface {
	Get(ctx context.Context, model, field, companyID string) (*entity.DefaultValue, error)
	ListByModel(ctx context.Context, model, companyID string) ([]*entity.DefaultValue, error)
	// Set inserta o reemplaza el valor de (Model, Field, CompanyID).
	Set(ctx context.Context, value *entity.DefaultValue) error
	// DeleteFields elimina los valores de los campos indicados y devuelve cuántos borró.
	DeleteFields(ctx context.Context, model string, fields []string, companyID string) (int64, error)
}
