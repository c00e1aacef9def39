// Package partner crea terceros aplicando el registro de valores por defecto: las cuentas
// AR/AP que no se indican se toman de lo fijado por la configuración contable.
package partner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/accounting-setup/internal/application/dto"
	"github.com/jhoicas/accounting-setup/internal/application/setup"
	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// UseCase casos de uso de terceros.
type UseCase struct {
	txRunner setup.TxRunner
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner setup.TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner, now: time.Now}
}

// Create crea un tercero. Las cuentas AR/AP se resuelven por código; las omitidas se
// completan con los valores por defecto de la empresa, si existen.
func (uc *UseCase) Create(ctx context.Context, companyID string, in dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if companyID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.PartnerResponse
	err := uc.txRunner.Run(ctx, func(tx setup.Tx) error {
		repos := tx.Repos()
		if in.ParentID != "" {
			parent, err := repos.Partners.GetByID(ctx, in.ParentID)
			if err != nil {
				return err
			}
			if parent == nil {
				return fmt.Errorf("%w: tercero padre %s", domain.ErrNotFound, in.ParentID)
			}
		}

		var accounts entity.PartnerAccounts
		var applied []string
		fields := []struct {
			code  string
			field string
			dst   *string
		}{
			{in.ReceivableCode, entity.FieldPartnerReceivable, &accounts.ReceivableAccountID},
			{in.PayableCode, entity.FieldPartnerPayable, &accounts.PayableAccountID},
		}
		for _, f := range fields {
			if f.code != "" {
				acc, err := repos.Accounts.GetByCode(ctx, f.code)
				if err != nil {
					return err
				}
				if acc == nil {
					return fmt.Errorf("%w: la cuenta %s no existe", domain.ErrInvalidInput, f.code)
				}
				*f.dst = acc.ID
				continue
			}
			dv, err := repos.Defaults.Get(ctx, entity.ModelPartner, f.field, companyID)
			if err != nil {
				return err
			}
			if dv != nil && dv.Value != "" {
				*f.dst = dv.Value
				applied = append(applied, f.field)
			}
		}

		now := uc.now()
		p := &entity.Partner{
			ID:        uuid.New().String(),
			Name:      in.Name,
			ParentID:  in.ParentID,
			Email:     in.Email,
			Phone:     in.Phone,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repos.Partners.Create(ctx, p); err != nil {
			return err
		}
		if accounts != (entity.PartnerAccounts{}) {
			if err := repos.Partners.SetAccountProperties(ctx, companyID, p.ID, accounts); err != nil {
				return err
			}
		}

		out = &dto.PartnerResponse{
			ID:                  p.ID,
			Name:                p.Name,
			ParentID:            p.ParentID,
			Email:               p.Email,
			Phone:               p.Phone,
			ReceivableAccountID: accounts.ReceivableAccountID,
			PayableAccountID:    accounts.PayableAccountID,
			DefaultsApplied:     applied,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Defaults devuelve las cuentas AR/AP registradas como valor por defecto para la empresa.
func (uc *UseCase) Defaults(ctx context.Context, companyID string) (*dto.PartnerDefaultsResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	out := &dto.PartnerDefaultsResponse{CompanyID: companyID}
	err := uc.txRunner.Run(ctx, func(tx setup.Tx) error {
		repos := tx.Repos()
		values, err := repos.Defaults.ListByModel(ctx, entity.ModelPartner, companyID)
		if err != nil {
			return err
		}
		for _, dv := range values {
			item := &dto.DefaultAccountResponse{Field: dv.Field, AccountID: dv.Value}
			acc, err := repos.Accounts.GetByID(ctx, dv.Value)
			if err != nil {
				return err
			}
			if acc != nil {
				item.AccountCode = acc.Code
				item.AccountName = acc.Name
			}
			switch dv.Field {
			case entity.FieldPartnerReceivable:
				out.Receivable = item
			case entity.FieldPartnerPayable:
				out.Payable = item
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
