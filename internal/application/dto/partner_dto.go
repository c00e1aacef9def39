package dto

// CreatePartnerRequest body para POST /api/partners. Si no se indican las cuentas AR/AP se
// usan los valores por defecto registrados para la empresa.
type CreatePartnerRequest struct {
	Name           string `json:"name"`
	ParentID       string `json:"parent_id,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	ReceivableCode string `json:"receivable_code,omitempty"`
	PayableCode    string `json:"payable_code,omitempty"`
}

// PartnerResponse tercero en respuestas.
type PartnerResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	ParentID            string   `json:"parent_id,omitempty"`
	Email               string   `json:"email,omitempty"`
	Phone               string   `json:"phone,omitempty"`
	ReceivableAccountID string   `json:"receivable_account_id,omitempty"`
	PayableAccountID    string   `json:"payable_account_id,omitempty"`
	DefaultsApplied     []string `json:"defaults_applied,omitempty"` // campos tomados del registro
}
