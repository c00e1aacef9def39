package partner_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounting-setup/internal/application/dto"
	"github.com/jhoicas/accounting-setup/internal/application/partner"
	"github.com/jhoicas/accounting-setup/internal/application/setup"
	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/infrastructure/memory"
)

const companyID = "company-1"

// configuredStore plan contable mínimo con la configuración ya aplicada.
func configuredStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	store.AddCompany(companyID, "Demo")
	store.AddAccount("1561", "Stock", entity.AccountTypeCurrentAssets)
	store.AddAccount("1311", "AR", entity.AccountTypeReceivable)
	store.AddAccount("3311", "AP", entity.AccountTypePayable)
	store.AddAccount("1312", "AR otros", entity.AccountTypeReceivable)

	_, err := setup.NewUseCase(store, zerolog.Nop()).Apply(context.Background(), companyID, setup.DefaultOptions())
	require.NoError(t, err)
	return store
}

func TestCreate_UsaValoresPorDefecto(t *testing.T) {
	store := configuredStore(t)
	uc := partner.NewUseCase(store)

	out, err := uc.Create(context.Background(), companyID, dto.CreatePartnerRequest{Name: "Khách mới"})

	require.NoError(t, err)
	ar := store.AccountByCode("1311").ID
	ap := store.AccountByCode("3311").ID
	assert.Equal(t, ar, out.ReceivableAccountID)
	assert.Equal(t, ap, out.PayableAccountID)
	assert.ElementsMatch(t, []string{entity.FieldPartnerReceivable, entity.FieldPartnerPayable}, out.DefaultsApplied)
	assert.Equal(t, entity.PartnerAccounts{ReceivableAccountID: ar, PayableAccountID: ap},
		store.PartnerAccounts(companyID, out.ID))
}

func TestCreate_CuentaExplicitaTienePrioridad(t *testing.T) {
	store := configuredStore(t)
	uc := partner.NewUseCase(store)

	out, err := uc.Create(context.Background(), companyID, dto.CreatePartnerRequest{Name: "Khách", ReceivableCode: "1312"})

	require.NoError(t, err)
	assert.Equal(t, store.AccountByCode("1312").ID, out.ReceivableAccountID)
	assert.Equal(t, store.AccountByCode("3311").ID, out.PayableAccountID)
	assert.Equal(t, []string{entity.FieldPartnerPayable}, out.DefaultsApplied)
}

func TestCreate_SinValoresPorDefecto(t *testing.T) {
	store := memory.NewStore()
	uc := partner.NewUseCase(store)

	out, err := uc.Create(context.Background(), companyID, dto.CreatePartnerRequest{Name: "Khách"})

	require.NoError(t, err)
	assert.Empty(t, out.ReceivableAccountID)
	assert.Empty(t, out.DefaultsApplied)
	assert.Empty(t, store.PartnerAccounts(companyID, out.ID))
}

func TestCreate_OtraEmpresaNoHeredaDefaults(t *testing.T) {
	store := configuredStore(t)
	uc := partner.NewUseCase(store)

	out, err := uc.Create(context.Background(), "company-2", dto.CreatePartnerRequest{Name: "Khách"})

	require.NoError(t, err)
	assert.Empty(t, out.ReceivableAccountID)
	assert.Empty(t, out.PayableAccountID)
}

func TestCreate_Errores(t *testing.T) {
	store := configuredStore(t)
	uc := partner.NewUseCase(store)
	ctx := context.Background()

	_, err := uc.Create(ctx, companyID, dto.CreatePartnerRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, companyID, dto.CreatePartnerRequest{Name: "Khách", PayableCode: "9999"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, companyID, dto.CreatePartnerRequest{Name: "Anh", ParentID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDefaults(t *testing.T) {
	store := configuredStore(t)
	uc := partner.NewUseCase(store)

	out, err := uc.Defaults(context.Background(), companyID)

	require.NoError(t, err)
	require.NotNil(t, out.Receivable)
	require.NotNil(t, out.Payable)
	assert.Equal(t, "1311", out.Receivable.AccountCode)
	assert.Equal(t, "3311", out.Payable.AccountCode)
	assert.Equal(t, entity.FieldPartnerPayable, out.Payable.Field)
}

func TestDefaults_EmpresaSinConfigurar(t *testing.T) {
	uc := partner.NewUseCase(memory.NewStore())

	out, err := uc.Defaults(context.Background(), companyID)

	require.NoError(t, err)
	assert.Nil(t, out.Receivable)
	assert.Nil(t, out.Payable)
}
