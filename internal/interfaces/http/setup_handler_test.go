package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounting-setup/internal/application/dto"
	"github.com/jhoicas/accounting-setup/internal/application/partner"
	"github.com/jhoicas/accounting-setup/internal/application/setup"
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
	"github.com/jhoicas/accounting-setup/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/accounting-setup/internal/interfaces/http"
)

// buildAPI router completo sobre el almacén en memoria.
func buildAPI(store *memory.Store) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SetupUC:       setup.NewUseCase(store, zerolog.Nop()),
		PartnerUC:     partner.NewUseCase(store),
		SetupDefaults: setup.DefaultOptions(),
		JWTSecret:     testJWTSecret,
		Log:           zerolog.Nop(),
	})
	return app
}

func chartStore() *memory.Store {
	store := memory.NewStore()
	store.AddCompany(testCompanyID, "Demo")
	store.AddAccount("1561", "Stock", entity.AccountTypeCurrentAssets)
	store.AddAccount("1311", "AR", entity.AccountTypeReceivable)
	store.AddAccount("3311", "AP", entity.AccountTypePayable)
	store.AddAccount("6320", "COGS", entity.AccountTypeDirectCost)
	store.AddCategory("all", "All", "")
	return store
}

func post(t *testing.T, app *fiber.App, path, authHeader string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(http.MethodPost, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestApplySetup_OK(t *testing.T) {
	store := chartStore()
	app := buildAPI(store)

	resp := post(t, app, "/api/setup/apply", tokenForRole(t, apphttp.RoleAdmin), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.SetupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, testCompanyID, out.CompanyID)
	assert.Equal(t, "Demo", out.CompanyName)
	assert.Equal(t, 2, out.Counts.AccountsCreated)
	assert.Equal(t, 1, out.Counts.CategoriesUpdated)
	require.NotEmpty(t, out.Steps)
	assert.Equal(t, "✓ Created: Account 1568", out.Steps[0].Line)
	assert.Contains(t, out.Text, "Company: Demo")
	assert.NotNil(t, store.AccountByCode("1568"))
}

func TestApplySetup_DryRunDesdeBody(t *testing.T) {
	store := chartStore()
	app := buildAPI(store)

	resp := post(t, app, "/api/setup/apply", tokenForRole(t, apphttp.RoleAdmin), dto.ApplySetupRequest{DryRun: true})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, store.AccountByCode("1568"))
}

func TestApplySetup_SinToken_401(t *testing.T) {
	resp := post(t, buildAPI(chartStore()), "/api/setup/apply", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestApplySetup_NoAdmin_403(t *testing.T) {
	resp := post(t, buildAPI(chartStore()), "/api/setup/apply", tokenForRole(t, apphttp.RoleAccountant), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestApplySetup_SinCuentaValoracion_422(t *testing.T) {
	store := memory.NewStore()
	store.AddAccount("1311", "AR", entity.AccountTypeReceivable)
	store.AddAccount("3311", "AP", entity.AccountTypePayable)

	resp := post(t, buildAPI(store), "/api/setup/apply", tokenForRole(t, apphttp.RoleAdmin), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "SETUP_FAILED", out.Code)
	assert.Contains(t, out.Message, "1561")
}

func TestApplySetup_ModoInvalido_400(t *testing.T) {
	resp := post(t, buildAPI(chartStore()), "/api/setup/apply", tokenForRole(t, apphttp.RoleAdmin),
		dto.ApplySetupRequest{UpdateExistingPartners: "sometimes"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestApplySetup_FormatoPDF(t *testing.T) {
	resp := post(t, buildAPI(chartStore()), "/api/setup/apply?format=pdf", tokenForRole(t, apphttp.RoleAdmin), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestApplySetup_FormatoTexto(t *testing.T) {
	resp := post(t, buildAPI(chartStore()), "/api/setup/apply?format=text", tokenForRole(t, apphttp.RoleAdmin), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "✓ Configuration completed")
	assert.Contains(t, string(body), "○ Found: AR=1311, AP=3311")
}

func TestCreatePartner_UsaDefaults(t *testing.T) {
	store := chartStore()
	app := buildAPI(store)
	admin := tokenForRole(t, apphttp.RoleAdmin)

	applied := post(t, app, "/api/setup/apply", admin, nil)
	applied.Body.Close()
	require.Equal(t, http.StatusOK, applied.StatusCode)

	resp := post(t, app, "/api/partners", admin, dto.CreatePartnerRequest{Name: "Khách mới"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.PartnerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, store.AccountByCode("1311").ID, out.ReceivableAccountID)
	assert.Equal(t, store.AccountByCode("3311").ID, out.PayableAccountID)
}

func TestCreatePartner_SinNombre_400(t *testing.T) {
	resp := post(t, buildAPI(chartStore()), "/api/partners", tokenForRole(t, apphttp.RoleAdmin), dto.CreatePartnerRequest{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSetupDefaults(t *testing.T) {
	store := chartStore()
	app := buildAPI(store)
	admin := tokenForRole(t, apphttp.RoleAdmin)
	post(t, app, "/api/setup/apply", admin, nil).Body.Close()

	resp := get(t, app, "/api/setup/defaults", admin)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.PartnerDefaultsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.Receivable)
	assert.Equal(t, "1311", out.Receivable.AccountCode)
}

func TestMergeOptions(t *testing.T) {
	off := false
	opts := apphttp.MergeOptions(setup.DefaultOptions(), dto.ApplySetupRequest{
		ARCode:             "131",
		SetPartnerDefaults: &off,
	})

	assert.Equal(t, "131", opts.ARCode)
	assert.Equal(t, "3311", opts.APCode)
	assert.False(t, opts.SetPartnerDefaults)
	assert.True(t, opts.SetExpenseAccount)
	assert.Equal(t, "632", opts.ExpenseFallbackCode, "sin el campo se conserva el respaldo")
}

func TestMergeOptions_RespaldoVacioLoDesactiva(t *testing.T) {
	empty := ""
	opts := apphttp.MergeOptions(setup.DefaultOptions(), dto.ApplySetupRequest{ExpenseFallbackCode: &empty})

	assert.Empty(t, opts.ExpenseFallbackCode)
}
