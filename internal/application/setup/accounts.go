package setup

import (
	"context"

	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// ensureAccount busca la cuenta por código y la crea (activo corriente, sin conciliación)
// si no existe. No poder crearla es fatal: los pasos siguientes la necesitan.
func (r *run) ensureAccount(ctx context.Context, code, name string) (*entity.Account, error) {
	account, err := r.repos.Accounts.GetByCode(ctx, code)
	if err != nil {
		return nil, unexpected("interim account", err)
	}
	if account != nil {
		r.log.Info().Str("code", code).Str("name", account.Name).Msg("la cuenta ya existe")
		r.report.addEnsured(false, "Account %s", code)
		return account, nil
	}

	now := r.now()
	account = &entity.Account{
		ID:            r.newID(),
		Code:          code,
		Name:          name,
		Type:          entity.AccountTypeCurrentAssets,
		InternalGroup: entity.InternalGroupAsset,
		Reconcile:     false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := r.repos.Accounts.Create(ctx, account); err != nil {
		r.log.Error().Err(err).Str("code", code).Msg("error creando la cuenta")
		return nil, &domain.SetupError{Step: "interim account", Code: code, Err: domain.ErrAccountCreate, Cause: err}
	}
	r.log.Info().Str("code", code).Str("name", name).Msg("cuenta creada")
	r.report.Counts.AccountsCreated++
	r.report.addEnsured(true, "Account %s", code)
	return account, nil
}

// requireAccount búsqueda estricta: la cuenta debe existir previamente y nunca se crea,
// porque no se puede adivinar su naturaleza.
func (r *run) requireAccount(ctx context.Context, code, label string) (*entity.Account, error) {
	account, err := r.repos.Accounts.GetByCode(ctx, code)
	if err != nil {
		return nil, unexpected(label, err)
	}
	if account == nil {
		return nil, &domain.SetupError{Step: label, Code: code, Err: domain.ErrRequiredAccountMissing}
	}
	return account, nil
}
