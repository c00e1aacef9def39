package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrAccountCreate          = errors.New("no se pudo crear la cuenta")
	ErrJournalCreate          = errors.New("no se pudo crear el diario")
	ErrRequiredAccountMissing = errors.New("falta una cuenta obligatoria")
	ErrUnexpected             = errors.New("error inesperado")
	ErrDryRun                 = errors.New("ejecución en modo simulación")
)

// SetupError es un error fatal de la configuración: aborta toda la ejecución y
// la transacción se revierte. El mensaje está pensado para mostrarse al usuario.
type SetupError struct {
	Step  string // paso del pipeline donde ocurrió
	Code  string // código de cuenta o diario involucrado (puede ir vacío)
	Err   error  // error sentinela (ErrAccountCreate, ErrRequiredAccountMissing, ...)
	Cause error  // causa original del driver, si la hay
}

func (e *SetupError) Error() string {
	switch {
	case errors.Is(e.Err, ErrRequiredAccountMissing):
		return fmt.Sprintf("missing account %s (%s): create it first", e.Code, e.Step)
	case errors.Is(e.Err, ErrAccountCreate):
		return fmt.Sprintf("cannot create account %s: %v", e.Code, e.Cause)
	case errors.Is(e.Err, ErrJournalCreate):
		return fmt.Sprintf("cannot create journal %s: %v", e.Code, e.Cause)
	}
	if e.Cause != nil {
		return fmt.Sprintf("unexpected error in %s: %v", e.Step, e.Cause)
	}
	return fmt.Sprintf("unexpected error in %s: %v", e.Step, e.Err)
}

// Unwrap permite errors.Is/As tanto con el sentinela como con la causa.
func (e *SetupError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}
