package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/domain/repository"
)

var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo implementación de JournalRepository.
type JournalRepo struct {
	q Querier
}

// NewJournalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJournalRepository(q Querier) *JournalRepo {
	return &JournalRepo{q: q}
}

const journalColumns = `id, company_id, code, name, journal_type, created_at, updated_at`

func (r *JournalRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Journal, error) {
	var j entity.Journal
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&j.ID, &j.CompanyID, &j.Code, &j.Name, &j.Type, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

// GetByCompanyAndCode obtiene el diario de la empresa con ese código.
func (r *JournalRepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Journal, error) {
	j, err := r.getOne(ctx,
		`SELECT `+journalColumns+` FROM journals WHERE company_id = $1 AND code = $2`, companyID, code)
	if err != nil {
		return nil, fmt.Errorf("get journal by code: %w", err)
	}
	return j, nil
}

// GetByCompanyAndName compara contra el nombre almacenado normalizado en NFC y en minúsculas.
func (r *JournalRepo) GetByCompanyAndName(ctx context.Context, companyID, name string) (*entity.Journal, error) {
	query := `
		SELECT ` + journalColumns + ` FROM journals
		WHERE company_id = $1 AND lower(btrim(normalize(name, NFC))) = $2
		ORDER BY created_at LIMIT 1`
	j, err := r.getOne(ctx, query, companyID, name)
	if err != nil {
		return nil, fmt.Errorf("get journal by name: %w", err)
	}
	return j, nil
}

// Create persiste un nuevo diario.
func (r *JournalRepo) Create(ctx context.Context, journal *entity.Journal) error {
	query := `
		INSERT INTO journals (id, company_id, code, name, journal_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		journal.ID, journal.CompanyID, journal.Code, journal.Name, journal.Type,
		journal.CreatedAt, journal.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert journal: %w", err)
	}
	return nil
}
