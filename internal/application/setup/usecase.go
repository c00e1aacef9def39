// Package setup implementa la configuración única de valoración de inventario y cuentas
// AR/AP: asegura cuentas y diario, aplica FIFO + tiempo real a las categorías y fija las
// cuentas por defecto de los terceros. Cada paso es idempotente; volver a ejecutar converge
// al mismo estado final.
package setup

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/domain/valuation"
)

// UseCase ejecuta el pipeline de configuración dentro de una única transacción.
type UseCase struct {
	txRunner TxRunner
	log      zerolog.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, log zerolog.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, log: log, now: time.Now}
}

// Apply ejecuta todos los pasos en orden para la empresa indicada y devuelve el reporte.
// Un error fatal (*domain.SetupError) revierte todo lo escrito; los fallos por categoría o
// tercero se registran y se cuentan sin abortar. Con DryRun se ejecuta todo y se revierte.
func (uc *UseCase) Apply(ctx context.Context, companyID string, opts Options) (*Report, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	mode, err := opts.Validate()
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     uuid.New().String(),
		CompanyID: companyID,
		DryRun:    opts.DryRun,
		StartedAt: uc.now(),
	}
	log := uc.log.With().Str("run_id", report.RunID).Str("company_id", companyID).Logger()
	log.Info().Bool("dry_run", opts.DryRun).Str("partners_mode", string(mode)).Msg("iniciando configuración contable")

	err = uc.txRunner.Run(ctx, func(tx Tx) error {
		r := &run{
			tx:        tx,
			repos:     tx.Repos(),
			companyID: companyID,
			opts:      opts,
			mode:      mode,
			report:    report,
			log:       log,
			newID:     func() string { return uuid.New().String() },
			now:       uc.now,
		}
		if err := r.execute(ctx); err != nil {
			return err
		}
		if opts.DryRun {
			return domain.ErrDryRun
		}
		return nil
	})
	report.FinishedAt = uc.now()

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrDryRun):
		log.Info().Msg("simulación terminada, cambios revertidos")
	default:
		var setupErr *domain.SetupError
		if !errors.As(err, &setupErr) {
			setupErr = &domain.SetupError{Step: "setup", Err: domain.ErrUnexpected, Cause: err}
		}
		log.Error().Err(setupErr).Msg("configuración abortada, transacción revertida")
		return nil, setupErr
	}

	log.Info().
		Int("categories_updated", report.Counts.CategoriesUpdated).
		Int("expense_updated", report.Counts.ExpenseUpdated).
		Int("partners_updated", report.Counts.PartnersUpdated).
		Msg("configuración completada")
	return report, nil
}

// run estado de una ejecución (vive solo dentro de la transacción).
type run struct {
	tx        Tx
	repos     Repositories
	companyID string
	opts      Options
	mode      valuation.PartnerUpdateMode
	report    *Report
	log       zerolog.Logger
	newID     func() string
	now       func() time.Time
}

// execute orden fijo: cuentas transitorias → cuenta de valoración → diario → categorías →
// cuenta de gasto → cuentas AR/AP → valores por defecto → terceros existentes.
func (r *run) execute(ctx context.Context) error {
	r.resolveCompanyName(ctx)

	input, err := r.ensureAccount(ctx, r.opts.InputCode, r.opts.InputCode+" Interim Received")
	if err != nil {
		return err
	}
	output, err := r.ensureAccount(ctx, r.opts.OutputCode, r.opts.OutputCode+" Interim Delivered")
	if err != nil {
		return err
	}

	stockValuation, err := r.requireAccount(ctx, r.opts.ValuationCode, "stock valuation")
	if err != nil {
		return err
	}
	r.report.add(StatusPresent, "Account %s", r.opts.ValuationCode)

	journal, err := r.ensureJournal(ctx)
	if err != nil {
		return err
	}

	if r.opts.ApplyToCategories {
		settings := valuation.FIFORealTime(journal.ID, stockValuation.ID, input.ID, output.ID)
		updated, total, err := r.applyValuation(ctx, settings)
		if err != nil {
			return err
		}
		r.report.add(StatusDone, "Applied FIFO+Real-time: %d/%d categories", updated, total)
	}

	if r.opts.SetExpenseAccount {
		if err := r.setExpenseAccounts(ctx); err != nil {
			return err
		}
	}

	receivable, err := r.requireAccount(ctx, r.opts.ARCode, "accounts receivable")
	if err != nil {
		return err
	}
	payable, err := r.requireAccount(ctx, r.opts.APCode, "accounts payable")
	if err != nil {
		return err
	}
	r.report.add(StatusInfo, "Found: AR=%s, AP=%s", r.opts.ARCode, r.opts.APCode)

	if r.opts.SetPartnerDefaults {
		if r.setPartnerDefaults(ctx, receivable.ID, payable.ID) {
			r.report.add(StatusDone, "Set default AR/AP for new partners")
		} else {
			r.report.add(StatusWarning, "Could not set partner defaults (no impact)")
		}
	}

	if r.mode != valuation.PartnerUpdateNo {
		updated, total, err := r.updateExistingPartners(ctx, receivable.ID, payable.ID)
		if err != nil {
			return err
		}
		r.report.add(StatusDone, "Updated partners: %d/%d (%s)", updated, total, r.mode.Label())
	}
	return nil
}

// resolveCompanyName rellena el nombre de la empresa para el pie del reporte; si no se
// puede leer se usa el ID. La lectura va en un savepoint: en PostgreSQL un error
// invalidaría el resto de la transacción.
func (r *run) resolveCompanyName(ctx context.Context) {
	r.report.CompanyName = r.companyID
	var company *entity.Company
	err := r.tx.Savepoint(ctx, func(repos Repositories) error {
		if repos.Companies == nil {
			return nil
		}
		var err error
		company, err = repos.Companies.GetByID(ctx, r.companyID)
		return err
	})
	if err != nil {
		r.log.Warn().Err(err).Msg("no se pudo leer la empresa")
		return
	}
	if company != nil && company.Name != "" {
		r.report.CompanyName = company.Name
	}
}

// unexpected envuelve un error de lectura como fatal.
func unexpected(step string, err error) error {
	return &domain.SetupError{Step: step, Err: domain.ErrUnexpected, Cause: err}
}
