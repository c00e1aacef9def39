package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación de PartnerRepository. Las cuentas AR/AP viven en
// partner_properties, una fila por (tercero, empresa).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

// Create persiste un nuevo tercero.
func (r *PartnerRepo) Create(ctx context.Context, partner *entity.Partner) error {
	query := `
		INSERT INTO partners (id, name, parent_id, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		partner.ID, partner.Name, nullable(partner.ParentID), partner.Email, partner.Phone,
		partner.CreatedAt, partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert partner: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

// GetByID obtiene un tercero por ID.
func (r *PartnerRepo) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	query := `
		SELECT id, name, COALESCE(parent_id::text, ''), email, phone, created_at, updated_at
		FROM partners WHERE id = $1`
	var p entity.Partner
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.ParentID, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return &p, nil
}

// ListTopLevel lista los terceros sin padre.
func (r *PartnerRepo) ListTopLevel(ctx context.Context) ([]*entity.Partner, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM partners WHERE parent_id IS NULL ORDER BY name, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	var list []*entity.Partner
	for rows.Next() {
		var p entity.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return list, nil
}

// AccountProperties devuelve las cuentas AR/AP del tercero en la empresa; vacías si no hay fila.
func (r *PartnerRepo) AccountProperties(ctx context.Context, companyID, partnerID string) (entity.PartnerAccounts, error) {
	query := `
		SELECT COALESCE(receivable_account_id::text, ''), COALESCE(payable_account_id::text, '')
		FROM partner_properties WHERE partner_id = $1 AND company_id = $2`
	var acc entity.PartnerAccounts
	err := r.q.QueryRow(ctx, query, partnerID, companyID).Scan(&acc.ReceivableAccountID, &acc.PayableAccountID)
	if err != nil && !isNoRows(err) {
		return entity.PartnerAccounts{}, fmt.Errorf("get partner accounts: %w", err)
	}
	return acc, nil
}

// SetAccountProperties escribe solo los campos no vacíos; COALESCE conserva los demás.
func (r *PartnerRepo) SetAccountProperties(ctx context.Context, companyID, partnerID string, accounts entity.PartnerAccounts) error {
	query := `
		INSERT INTO partner_properties (partner_id, company_id, receivable_account_id, payable_account_id, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (partner_id, company_id) DO UPDATE SET
			receivable_account_id = COALESCE(EXCLUDED.receivable_account_id, partner_properties.receivable_account_id),
			payable_account_id = COALESCE(EXCLUDED.payable_account_id, partner_properties.payable_account_id),
			updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		partnerID, companyID, nullable(accounts.ReceivableAccountID), nullable(accounts.PayableAccountID),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("set partner accounts: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("set partner accounts: %w", err)
	}
	return nil
}
