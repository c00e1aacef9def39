package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/accounting-setup/internal/domain"
)

func TestSetupError_CuentaFaltante(t *testing.T) {
	err := &domain.SetupError{Step: "stock valuation", Code: "1561", Err: domain.ErrRequiredAccountMissing}

	assert.Equal(t, "missing account 1561 (stock valuation): create it first", err.Error())
	assert.ErrorIs(t, err, domain.ErrRequiredAccountMissing)
}

func TestSetupError_CreacionEnvuelveCausa(t *testing.T) {
	cause := errors.New("duplicate key")
	err := &domain.SetupError{
		Step:  "interim account",
		Code:  "1568",
		Err:   domain.ErrAccountCreate,
		Cause: cause,
	}

	assert.ErrorIs(t, err, domain.ErrAccountCreate)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "cannot create account 1568: duplicate key", err.Error())
}

func TestSetupError_Inesperado(t *testing.T) {
	err := &domain.SetupError{Step: "categories", Err: domain.ErrUnexpected, Cause: errors.New("boom")}

	var setupErr *domain.SetupError
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &setupErr))
	assert.ErrorIs(t, err, domain.ErrUnexpected)
	assert.Equal(t, "unexpected error in categories: boom", err.Error())
}
