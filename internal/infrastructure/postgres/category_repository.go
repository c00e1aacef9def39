package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository. Las propiedades de valoración viven en
// product_category_properties, una fila por (categoría, empresa).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categorySelect = `
	SELECT c.id, COALESCE(c.parent_id::text, ''), c.name,
	       COALESCE(p.cost_method, ''), COALESCE(p.valuation, ''),
	       COALESCE(p.stock_journal_id::text, ''), COALESCE(p.valuation_account_id::text, ''),
	       COALESCE(p.input_account_id::text, ''), COALESCE(p.output_account_id::text, ''),
	       COALESCE(p.expense_account_id::text, '')
	FROM product_categories c
	LEFT JOIN product_category_properties p ON p.category_id = c.id AND p.company_id = $1`

func (r *CategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ProductCategory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*entity.ProductCategory
	for rows.Next() {
		var c entity.ProductCategory
		if err := rows.Scan(
			&c.ID, &c.ParentID, &c.Name, &c.CostMethod, &c.Valuation,
			&c.StockJournalID, &c.ValuationAccountID, &c.InputAccountID, &c.OutputAccountID, &c.ExpenseAccountID,
		); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListByCompany lista todas las categorías con sus propiedades en la empresa.
func (r *CategoryRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.ProductCategory, error) {
	list, err := r.list(ctx, categorySelect+` ORDER BY c.name, c.id`, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// ListByValuation lista las categorías cuyo modo de valoración en la empresa es valuation.
func (r *CategoryRepo) ListByValuation(ctx context.Context, companyID, valuation string) ([]*entity.ProductCategory, error) {
	list, err := r.list(ctx, categorySelect+` WHERE p.valuation = $2 ORDER BY c.name, c.id`, companyID, valuation)
	if err != nil {
		return nil, fmt.Errorf("list categories by valuation: %w", err)
	}
	return list, nil
}

// UpdateValuation inserta o actualiza las propiedades de valoración de la categoría.
func (r *CategoryRepo) UpdateValuation(ctx context.Context, companyID, categoryID string, s entity.ValuationSettings) error {
	query := `
		INSERT INTO product_category_properties (
			category_id, company_id, cost_method, valuation, stock_journal_id,
			valuation_account_id, input_account_id, output_account_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (category_id, company_id) DO UPDATE SET
			cost_method = EXCLUDED.cost_method,
			valuation = EXCLUDED.valuation,
			stock_journal_id = EXCLUDED.stock_journal_id,
			valuation_account_id = EXCLUDED.valuation_account_id,
			input_account_id = EXCLUDED.input_account_id,
			output_account_id = EXCLUDED.output_account_id,
			updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		categoryID, companyID, s.CostMethod, s.Valuation, nullable(s.StockJournalID),
		nullable(s.ValuationAccountID), nullable(s.InputAccountID), nullable(s.OutputAccountID),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("update category valuation: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("update category valuation: %w", err)
	}
	return nil
}

// SetExpenseAccount fija la cuenta de gasto de la categoría en la empresa.
func (r *CategoryRepo) SetExpenseAccount(ctx context.Context, companyID, categoryID, accountID string) error {
	query := `
		INSERT INTO product_category_properties (category_id, company_id, expense_account_id, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (category_id, company_id) DO UPDATE SET
			expense_account_id = EXCLUDED.expense_account_id,
			updated_at = now()`
	_, err := r.q.Exec(ctx, query, categoryID, companyID, nullable(accountID))
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("set category expense account: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("set category expense account: %w", err)
	}
	return nil
}
