package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/domain/repository"
)

var _ repository.DefaultValueRepository = (*DefaultValueRepo)(nil)

// DefaultValueRepo registro de valores por defecto sobre la tabla default_values.
type DefaultValueRepo struct {
	q Querier
}

// NewDefaultValueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDefaultValueRepository(q Querier) *DefaultValueRepo {
	return &DefaultValueRepo{q: q}
}

// Get obtiene el valor de (model, field, companyID).
func (r *DefaultValueRepo) Get(ctx context.Context, model, field, companyID string) (*entity.DefaultValue, error) {
	query := `
		SELECT id, model, field, company_id, value, created_at
		FROM default_values WHERE model = $1 AND field = $2 AND company_id = $3`
	var dv entity.DefaultValue
	err := r.q.QueryRow(ctx, query, model, field, companyID).Scan(
		&dv.ID, &dv.Model, &dv.Field, &dv.CompanyID, &dv.Value, &dv.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get default value: %w", err)
	}
	return &dv, nil
}

// ListByModel lista los valores por defecto del modelo en la empresa.
func (r *DefaultValueRepo) ListByModel(ctx context.Context, model, companyID string) ([]*entity.DefaultValue, error) {
	query := `
		SELECT id, model, field, company_id, value, created_at
		FROM default_values WHERE model = $1 AND company_id = $2 ORDER BY field`
	rows, err := r.q.Query(ctx, query, model, companyID)
	if err != nil {
		return nil, fmt.Errorf("list default values: %w", err)
	}
	defer rows.Close()

	var list []*entity.DefaultValue
	for rows.Next() {
		var dv entity.DefaultValue
		if err := rows.Scan(&dv.ID, &dv.Model, &dv.Field, &dv.CompanyID, &dv.Value, &dv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan default value: %w", err)
		}
		list = append(list, &dv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list default values: %w", err)
	}
	return list, nil
}

// Set inserta o reemplaza el valor de (Model, Field, CompanyID).
func (r *DefaultValueRepo) Set(ctx context.Context, value *entity.DefaultValue) error {
	query := `
		INSERT INTO default_values (id, model, field, company_id, value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (model, field, company_id) DO UPDATE SET value = EXCLUDED.value`
	_, err := r.q.Exec(ctx, query,
		value.ID, value.Model, value.Field, value.CompanyID, value.Value, value.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("set default value: %w", err)
	}
	return nil
}

// DeleteFields borra los valores de los campos indicados en la empresa.
func (r *DefaultValueRepo) DeleteFields(ctx context.Context, model string, fields []string, companyID string) (int64, error) {
	query := `DELETE FROM default_values WHERE model = $1 AND field = ANY($2) AND company_id = $3`
	tag, err := r.q.Exec(ctx, query, model, fields, companyID)
	if err != nil {
		return 0, fmt.Errorf("delete default values: %w", err)
	}
	return tag.RowsAffected(), nil
}
