package setup

import (
	"context"

	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/domain/valuation"
)

// applyValuation escribe FIFO + tiempo real, el diario y las tres cuentas en todas las
// categorías. Cada escritura va en su propio savepoint: un fallo se registra y la categoría
// no cuenta como actualizada, pero el paso nunca aborta.
func (r *run) applyValuation(ctx context.Context, settings entity.ValuationSettings) (updated, total int, err error) {
	categories, err := r.repos.Categories.ListByCompany(ctx, r.companyID)
	if err != nil {
		return 0, 0, unexpected("categories", err)
	}

	for _, cat := range categories {
		err := r.tx.Savepoint(ctx, func(repos Repositories) error {
			return repos.Categories.UpdateValuation(ctx, r.companyID, cat.ID, settings)
		})
		if err != nil {
			r.log.Warn().Err(err).Str("category", cat.Name).Msg("no se pudo actualizar la categoría")
			continue
		}
		updated++
	}

	r.report.Counts.CategoriesUpdated = updated
	r.report.Counts.CategoriesTotal = len(categories)
	return updated, len(categories), nil
}

// expenseAccount busca la cuenta de gasto por el código preferido y luego por el de respaldo,
// siempre restringida a tipos de gasto.
func (r *run) expenseAccount(ctx context.Context) (*entity.Account, error) {
	for _, code := range []string{r.opts.ExpenseCode, r.opts.ExpenseFallbackCode} {
		if code == "" {
			continue
		}
		account, err := r.repos.Accounts.GetByCodeAndTypes(ctx, code, valuation.ExpenseTypes())
		if err != nil {
			return nil, err
		}
		if account != nil {
			return account, nil
		}
	}
	return nil, nil
}

// setExpenseAccounts asigna la cuenta de gasto a las categorías en tiempo real que no
// tienen una cuenta de gasto válida. Si no hay cuenta de gasto el paso se omite sin abortar.
func (r *run) setExpenseAccounts(ctx context.Context) error {
	expense, err := r.expenseAccount(ctx)
	if err != nil {
		return unexpected("expense account", err)
	}
	if expense == nil {
		reason := "no valid expense account found (" + r.opts.ExpenseCode
		if r.opts.ExpenseFallbackCode != "" {
			reason += " or " + r.opts.ExpenseFallbackCode
		}
		reason += ")"
		r.log.Warn().Str("code", r.opts.ExpenseCode).Msg("no se encontró cuenta de gasto, se omite el paso")
		r.report.add(StatusWarning, "Expense: %s", reason)
		return nil
	}

	categories, err := r.repos.Categories.ListByValuation(ctx, r.companyID, valuation.ValuationRealTime)
	if err != nil {
		return unexpected("expense account", err)
	}

	updated := 0
	for _, cat := range categories {
		changed := false
		err := r.tx.Savepoint(ctx, func(repos Repositories) error {
			var current *entity.Account
			if cat.ExpenseAccountID != "" {
				acc, err := repos.Accounts.GetByID(ctx, cat.ExpenseAccountID)
				if err != nil {
					return err
				}
				current = acc
			}
			if !valuation.NeedsExpenseAccount(current) {
				return nil
			}
			if err := repos.Categories.SetExpenseAccount(ctx, r.companyID, cat.ID, expense.ID); err != nil {
				return err
			}
			changed = true
			return nil
		})
		if err != nil {
			r.log.Warn().Err(err).Str("category", cat.Name).Msg("no se pudo asignar la cuenta de gasto")
			continue
		}
		if changed {
			updated++
		}
	}

	r.report.Counts.ExpenseUpdated = updated
	r.report.Counts.ExpenseTotal = len(categories)
	r.report.add(StatusDone, "Set expense account: %d/%d categories", updated, len(categories))
	return nil
}
