// Package valuation contiene las reglas de dominio de la configuración de valoración de
// inventario: métodos de costo, modos de valoración y qué cuentas se consideran de gasto.
package valuation

import (
	"github.com/jhoicas/accounting-setup/internal/domain/entity"
)

// Métodos de costo.
const (
	CostMethodStandard = "standard"
	CostMethodFIFO     = "fifo"
	CostMethodAverage  = "average"
)

// Modos de valoración.
const (
	ValuationManual   = "manual_periodic"
	ValuationRealTime = "real_time"
)

// expenseTypes son los tipos de cuenta válidos como cuenta de gasto (costo de ventas) de una categoría.
var expenseTypes = map[string]struct{}{
	entity.AccountTypeExpense:    {},
	entity.AccountTypeDirectCost: {},
}

// ExpenseTypes devuelve los tipos de cuenta de gasto aceptados.
func ExpenseTypes() []string {
	return []string{entity.AccountTypeExpense, entity.AccountTypeDirectCost}
}

// IsExpenseType informa si el tipo de cuenta es de gasto.
func IsExpenseType(accountType string) bool {
	_, ok := expenseTypes[accountType]
	return ok
}

// FIFORealTime construye los valores que se escriben en cada categoría.
func FIFORealTime(journalID, valuationID, inputID, outputID string) entity.ValuationSettings {
	return entity.ValuationSettings{
		CostMethod:         CostMethodFIFO,
		Valuation:          ValuationRealTime,
		StockJournalID:     journalID,
		ValuationAccountID: valuationID,
		InputAccountID:     inputID,
		OutputAccountID:    outputID,
	}
}

// NeedsExpenseAccount decide si se debe asignar la cuenta de gasto a una categoría:
// solo cuando no tiene ninguna o la actual no es de gasto. Nunca se pisa una cuenta de
// gasto elegida explícitamente.
func NeedsExpenseAccount(current *entity.Account) bool {
	return current == nil || !IsExpenseType(current.Type)
}
