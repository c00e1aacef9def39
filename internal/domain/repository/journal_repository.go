package repository

import (
	"context"

	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// JournalRepository define el puerto de persistencia para diarios contables (por empresa).
type JournalRepository interface {
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Journal, error)
	// GetByCompanyAndName compara el nombre sin distinguir mayúsculas; name llega normalizado NFC.
	GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Journal, error)
	Create(ctx context.Context, journal *entity.Journal) error
}
