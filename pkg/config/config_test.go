package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/accounting-setup/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	testChdir(t, t.TempDir())

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "1561", cfg.Setup.ValuationCode)
	assert.Equal(t, "Định giá tồn kho", cfg.Setup.JournalName)
	assert.Equal(t, "632", cfg.Setup.ExpenseFallbackCode)
	assert.True(t, cfg.Setup.SetExpenseAccount)
	assert.Equal(t, "missing_only", cfg.Setup.UpdateExistingPartners)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SETUP_AR_CODE", "131")
	t.Setenv("SETUP_SET_PARTNER_DEFAULTS", "false")
	t.Setenv("SETUP_COMPANY_ID", "c-1")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, "131", cfg.Setup.ARCode)
	assert.False(t, cfg.Setup.SetPartnerDefaults)
	assert.Equal(t, "c-1", cfg.Setup.CompanyID)
}

func TestLoad_VariableVaciaAnulaElDefecto(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("SETUP_EXPENSE_FALLBACK_CODE", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Setup.ExpenseFallbackCode)
	assert.Equal(t, "6320", cfg.Setup.ExpenseCode)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "acc", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/acc?sslmode=disable", db.ConnectionString())

	db.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", db.ConnectionString())
}

// testChdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
