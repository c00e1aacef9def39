package entity

import "time"

// Modelos y campos conocidos del registro de valores por defecto.
const (
	ModelPartner           = "res.partner"
	FieldPartnerReceivable = "property_account_receivable_id"
	FieldPartnerPayable    = "property_account_payable_id"
)

// DefaultValue es un valor de respaldo que se consulta al construir un registro de Model
// cuando omite Field, acotado a la empresa CompanyID.
type DefaultValue struct {
	ID        string
	Model     string
	Field     string
	CompanyID string
	Value     string
	CreatedAt time.Time
}
