package setup

import (
	"fmt"
	"strings"

	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/domain/valuation"
	"github.com/jhoicas/accounting-setup/pkg/config"
)

// Options son los parámetros reconocidos por la acción de configuración.
type Options struct {
	ValuationCode          string `json:"valuation_code" yaml:"valuation_code"`
	InputCode              string `json:"input_code" yaml:"input_code"`
	OutputCode             string `json:"output_code" yaml:"output_code"`
	JournalCode            string `json:"journal_code" yaml:"journal_code"`
	JournalName            string `json:"journal_name" yaml:"journal_name"`
	ExpenseCode            string `json:"expense_code" yaml:"expense_code"`
	ExpenseFallbackCode    string `json:"expense_fallback_code" yaml:"expense_fallback_code"`
	SetExpenseAccount      bool   `json:"set_expense_account" yaml:"set_expense_account"`
	ApplyToCategories      bool   `json:"apply_to_categories" yaml:"apply_to_categories"`
	ARCode                 string `json:"ar_code" yaml:"ar_code"`
	APCode                 string `json:"ap_code" yaml:"ap_code"`
	SetPartnerDefaults     bool   `json:"set_partner_defaults" yaml:"set_partner_defaults"`
	UpdateExistingPartners string `json:"update_existing_partners" yaml:"update_existing_partners"`
	DryRun                 bool   `json:"dry_run" yaml:"dry_run"`
}

// DefaultOptions devuelve la configuración estándar del plan contable vietnamita (VAS).
func DefaultOptions() Options {
	return Options{
		ValuationCode:          "1561",
		InputCode:              "1568",
		OutputCode:             "1569",
		JournalCode:            "STK",
		JournalName:            "Định giá tồn kho",
		ExpenseCode:            "6320",
		ExpenseFallbackCode:    "632",
		SetExpenseAccount:      true,
		ApplyToCategories:      true,
		ARCode:                 "1311",
		APCode:                 "3311",
		SetPartnerDefaults:     true,
		UpdateExistingPartners: string(valuation.PartnerUpdateMissingOnly),
	}
}

// OptionsFromConfig opciones tomadas de las variables SETUP_*.
func OptionsFromConfig(c config.SetupConfig) Options {
	return Options{
		ValuationCode:          c.ValuationCode,
		InputCode:              c.InputCode,
		OutputCode:             c.OutputCode,
		JournalCode:            c.JournalCode,
		JournalName:            c.JournalName,
		ExpenseCode:            c.ExpenseCode,
		ExpenseFallbackCode:    c.ExpenseFallbackCode,
		SetExpenseAccount:      c.SetExpenseAccount,
		ApplyToCategories:      c.ApplyToCategories,
		ARCode:                 c.ARCode,
		APCode:                 c.APCode,
		SetPartnerDefaults:     c.SetPartnerDefaults,
		UpdateExistingPartners: c.UpdateExistingPartners,
	}
}

// Validate comprueba los campos obligatorios y devuelve el modo de actualización de terceros.
func (o *Options) Validate() (valuation.PartnerUpdateMode, error) {
	o.trim()
	required := []struct{ name, value string }{
		{"valuation_code", o.ValuationCode},
		{"input_code", o.InputCode},
		{"output_code", o.OutputCode},
		{"journal_code", o.JournalCode},
		{"journal_name", o.JournalName},
		{"expense_code", o.ExpenseCode},
		{"ar_code", o.ARCode},
		{"ap_code", o.APCode},
	}
	for _, f := range required {
		if f.value == "" {
			return "", fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, f.name)
		}
	}
	if o.UpdateExistingPartners == "" {
		o.UpdateExistingPartners = string(valuation.PartnerUpdateMissingOnly)
	}
	return valuation.ParsePartnerUpdateMode(o.UpdateExistingPartners)
}

func (o *Options) trim() {
	for _, p := range []*string{
		&o.ValuationCode, &o.InputCode, &o.OutputCode, &o.JournalCode, &o.JournalName,
		&o.ExpenseCode, &o.ExpenseFallbackCode, &o.ARCode, &o.APCode, &o.UpdateExistingPartners,
	} {
		*p = strings.TrimSpace(*p)
	}
}
