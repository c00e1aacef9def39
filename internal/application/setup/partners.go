package setup

import (
	"context"

	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/domain/valuation"
)

// setPartnerDefaults registra AR/AP como valores por defecto de los terceros nuevos de la
// empresa: borra los anteriores y escribe los nuevos en un savepoint. Es best-effort: un
// fallo se registra como advertencia y devuelve false.
func (r *run) setPartnerDefaults(ctx context.Context, receivableID, payableID string) bool {
	err := r.tx.Savepoint(ctx, func(repos Repositories) error {
		fields := []string{entity.FieldPartnerReceivable, entity.FieldPartnerPayable}
		if _, err := repos.Defaults.DeleteFields(ctx, entity.ModelPartner, fields, r.companyID); err != nil {
			return err
		}
		values := map[string]string{
			entity.FieldPartnerReceivable: receivableID,
			entity.FieldPartnerPayable:    payableID,
		}
		for _, field := range fields {
			dv := &entity.DefaultValue{
				ID:        r.newID(),
				Model:     entity.ModelPartner,
				Field:     field,
				CompanyID: r.companyID,
				Value:     values[field],
				CreatedAt: r.now(),
			}
			if err := repos.Defaults.Set(ctx, dv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.log.Warn().Err(err).Msg("no se pudieron fijar los valores por defecto AR/AP, se omite el paso")
		return false
	}
	r.log.Info().Str("ar", r.opts.ARCode).Str("ap", r.opts.APCode).Msg("valores por defecto AR/AP fijados")
	return true
}

// updateExistingPartners actualiza AR/AP de los terceros de primer nivel según el modo.
// En missing_only un tercero cuyas propiedades no se pueden leer se omite; los fallos de
// escritura se cuentan y no abortan el lote.
func (r *run) updateExistingPartners(ctx context.Context, receivableID, payableID string) (updated, total int, err error) {
	partners, err := r.repos.Partners.ListTopLevel(ctx)
	if err != nil {
		return 0, 0, unexpected("partners", err)
	}

	var skipped, failed int
	for _, p := range partners {
		var current entity.PartnerAccounts
		if r.mode == valuation.PartnerUpdateMissingOnly {
			err := r.tx.Savepoint(ctx, func(repos Repositories) error {
				var err error
				current, err = repos.Partners.AccountProperties(ctx, r.companyID, p.ID)
				return err
			})
			if err != nil {
				r.log.Debug().Err(err).Str("partner", p.Name).Msg("no se pudieron leer las cuentas del tercero")
				skipped++
				continue
			}
		}

		changes := valuation.PartnerChanges(r.mode, current, receivableID, payableID)
		if changes == nil {
			continue
		}
		err := r.tx.Savepoint(ctx, func(repos Repositories) error {
			return repos.Partners.SetAccountProperties(ctx, r.companyID, p.ID, *changes)
		})
		if err != nil {
			r.log.Warn().Err(err).Str("partner", p.Name).Msg("no se pudo actualizar el tercero")
			failed++
			continue
		}
		updated++
	}

	if failed > 0 {
		r.log.Warn().Int("failed", failed).Msg("hay terceros que no se pudieron actualizar")
	}
	if skipped > 0 {
		r.log.Info().Int("skipped", skipped).Msg("terceros omitidos por no poder leer sus cuentas")
	}

	r.report.Counts.PartnersUpdated = updated
	r.report.Counts.PartnersTotal = len(partners)
	r.report.Counts.PartnersSkipped = skipped
	r.report.Counts.PartnersFailed = failed
	return updated, len(partners), nil
}
