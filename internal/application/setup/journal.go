package setup

import (
	"context"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// ensureJournal busca el diario de valoración por (código, empresa) y luego por nombre;
// si no existe lo crea como diario general. No poder crearlo es fatal.
func (r *run) ensureJournal(ctx context.Context) (*entity.Journal, error) {
	code := r.opts.JournalCode
	journal, err := r.repos.Journals.GetByCompanyAndCode(ctx, r.companyID, code)
	if err != nil {
		return nil, unexpected("stock journal", err)
	}
	if journal == nil {
		journal, err = r.repos.Journals.GetByCompanyAndName(ctx, r.companyID, NormalizeName(r.opts.JournalName))
		if err != nil {
			return nil, unexpected("stock journal", err)
		}
	}
	if journal != nil {
		r.log.Info().Str("code", journal.Code).Msg("el diario ya existe")
		if journal.Code != code {
			r.report.addEnsured(false, "Journal %s (matched by name)", journal.Code)
		} else {
			r.report.addEnsured(false, "Journal %s", journal.Code)
		}
		return journal, nil
	}

	now := r.now()
	journal = &entity.Journal{
		ID:        r.newID(),
		CompanyID: r.companyID,
		Code:      code,
		Name:      norm.NFC.String(r.opts.JournalName),
		Type:      entity.JournalTypeGeneral,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.repos.Journals.Create(ctx, journal); err != nil {
		r.log.Error().Err(err).Str("code", code).Msg("error creando el diario")
		return nil, &domain.SetupError{Step: "stock journal", Code: code, Err: domain.ErrJournalCreate, Cause: err}
	}
	r.log.Info().Str("code", code).Msg("diario creado")
	r.report.Counts.JournalsCreated++
	r.report.addEnsured(true, "Journal %s", code)
	return journal, nil
}

// NormalizeName normaliza un nombre para compararlo: NFC, sin espacios extremos y en
// minúsculas. Los nombres vietnamitas pueden llegar con diacríticos compuestos o descompuestos.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(name)))
}
