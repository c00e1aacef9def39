package entity

import "time"

// Tipos de diario.
const (
	JournalTypeSale     = "sale"
	JournalTypePurchase = "purchase"
	JournalTypeCash     = "cash"
	JournalTypeBank     = "bank"
	JournalTypeGeneral  = "general"
)

// Journal representa un diario contable de una empresa.
type Journal struct {
	ID        string
	CompanyID string
	Code      string // código único por empresa, ej. "STK"
	Name      string
	Type      string // ver constantes JournalType*
	CreatedAt time.Time
	UpdatedAt time.Time
}
