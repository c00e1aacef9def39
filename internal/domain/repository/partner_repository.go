package repository

import (
	"context"

	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// PartnerRepository define el puerto de persistencia para terceros.
type PartnerRepository interface {
	Create(ctx context.Context, partner *entity.Partner) error
	GetByID(ctx context.Context, id string) (*entity.Partner, error)
	// ListTopLevel devuelve los terceros sin padre (excluye contactos hijos).
	ListTopLevel(ctx context.Context) ([]*entity.Partner, error)
	// AccountProperties resuelve las cuentas AR/AP del tercero en la empresa indicada.
	AccountProperties(ctx context.Context, companyID, partnerID string) (entity.PartnerAccounts, error)
	// SetAccountProperties escribe solo los campos no vacíos de accounts.
	SetAccountProperties(ctx context.Context, companyID, partnerID string, accounts entity.PartnerAccounts) error
}
