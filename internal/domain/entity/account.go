package entity

import "time"

// Tipos de cuenta del plan contable (mismos valores que usa el ERP anfitrión).
const (
	AccountTypeReceivable       = "asset_receivable"
	AccountTypeCash             = "asset_cash"
	AccountTypeCurrentAssets    = "asset_current"
	AccountTypeNonCurrentAssets = "asset_non_current"
	AccountTypePrepayments      = "asset_prepayments"
	AccountTypeFixedAssets      = "asset_fixed"
	AccountTypePayable          = "liability_payable"
	AccountTypeCreditCard       = "liability_credit_card"
	AccountTypeCurrentLiability = "liability_current"
	AccountTypeNonCurrentLiab   = "liability_non_current"
	AccountTypeEquity           = "equity"
	AccountTypeUnaffectedEarn   = "equity_unaffected"
	AccountTypeIncome           = "income"
	AccountTypeOtherIncome      = "income_other"
	AccountTypeExpense          = "expense"
	AccountTypeDepreciation     = "expense_depreciation"
	AccountTypeDirectCost       = "expense_direct_cost"
	AccountTypeOffBalance       = "off_balance"
)

// Grupos internos del plan contable.
const (
	InternalGroupAsset      = "asset"
	InternalGroupLiability  = "liability"
	InternalGroupEquity     = "equity"
	InternalGroupIncome     = "income"
	InternalGroupExpense    = "expense"
	InternalGroupOffBalance = "off_balance"
)

// Account representa una cuenta del plan contable. Se busca por código; no tiene empresa.
type Account struct {
	ID            string
	Code          string // ej. "1568"
	Name          string
	Type          string // ver constantes AccountType*
	InternalGroup string
	Reconcile     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
