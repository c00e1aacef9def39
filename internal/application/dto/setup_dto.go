package dto

// ApplySetupRequest body para POST /api/setup/apply. Los campos omitidos toman el valor
// configurado en el servidor (SETUP_*); los booleanos se envían como punteros para
// distinguir "false" de "no enviado".
type ApplySetupRequest struct {
	ValuationCode          string  `json:"valuation_code,omitempty"`
	InputCode              string  `json:"input_code,omitempty"`
	OutputCode             string  `json:"output_code,omitempty"`
	JournalCode            string  `json:"journal_code,omitempty"`
	JournalName            string  `json:"journal_name,omitempty"`
	ExpenseCode            string  `json:"expense_code,omitempty"`
	ExpenseFallbackCode    *string `json:"expense_fallback_code,omitempty"`    // "" desactiva el respaldo
	SetExpenseAccount      *bool   `json:"set_expense_account,omitempty"`
	ApplyToCategories      *bool   `json:"apply_to_categories,omitempty"`
	ARCode                 string  `json:"ar_code,omitempty"`
	APCode                 string  `json:"ap_code,omitempty"`
	SetPartnerDefaults     *bool   `json:"set_partner_defaults,omitempty"`
	UpdateExistingPartners string  `json:"update_existing_partners,omitempty"` // no, missing_only, all
	DryRun                 bool    `json:"dry_run,omitempty"`
}

// SetupStep línea del reporte.
type SetupStep struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Line    string `json:"line"`
}

// SetupCounts contadores de la ejecución.
type SetupCounts struct {
	AccountsCreated   int `json:"accounts_created"`
	JournalsCreated   int `json:"journals_created"`
	CategoriesUpdated int `json:"categories_updated"`
	CategoriesTotal   int `json:"categories_total"`
	ExpenseUpdated    int `json:"expense_updated"`
	ExpenseTotal      int `json:"expense_total"`
	PartnersUpdated   int `json:"partners_updated"`
	PartnersTotal     int `json:"partners_total"`
	PartnersSkipped   int `json:"partners_skipped"`
	PartnersFailed    int `json:"partners_failed"`
}

// SetupResponse resultado de POST /api/setup/apply.
type SetupResponse struct {
	RunID       string      `json:"run_id"`
	CompanyID   string      `json:"company_id"`
	CompanyName string      `json:"company_name"`
	DryRun      bool        `json:"dry_run"`
	Steps       []SetupStep `json:"steps"`
	Counts      SetupCounts `json:"counts"`
	Text        string      `json:"text"` // reporte listo para mostrar
}

// PartnerDefaultsResponse valores por defecto AR/AP vigentes de la empresa.
type PartnerDefaultsResponse struct {
	CompanyID  string                 `json:"company_id"`
	Receivable *DefaultAccountResponse `json:"receivable,omitempty"`
	Payable    *DefaultAccountResponse `json:"payable,omitempty"`
}

// DefaultAccountResponse cuenta registrada como valor por defecto.
type DefaultAccountResponse struct {
	Field       string `json:"field"`
	AccountID   string `json:"account_id"`
	AccountCode string `json:"account_code,omitempty"`
	AccountName string `json:"account_name,omitempty"`
}
