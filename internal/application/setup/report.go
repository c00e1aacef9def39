package setup

import (
	"fmt"
	"time"
)

// StepStatus resultado de un paso del pipeline.
type StepStatus string

const (
	StatusCreated StepStatus = "created" // se creó el registro
	StatusPresent StepStatus = "present" // ya existía
	StatusDone    StepStatus = "done"    // actualización masiva aplicada
	StatusInfo    StepStatus = "info"
	StatusWarning StepStatus = "warning" // paso omitido o parcial, no aborta
)

// Symbol marca usada en el reporte de texto.
func (s StepStatus) Symbol() string {
	switch s {
	case StatusCreated, StatusDone:
		return "✓"
	case StatusWarning:
		return "⚠"
	}
	return "○"
}

// Step línea del reporte.
type Step struct {
	Status  StepStatus `json:"status" yaml:"status"`
	Message string     `json:"message" yaml:"message"`
}

// String formatea la línea tal como se muestra al usuario.
func (s Step) String() string {
	switch s.Status {
	case StatusCreated:
		return s.Status.Symbol() + " Created: " + s.Message
	case StatusPresent:
		return s.Status.Symbol() + " Already present: " + s.Message
	}
	return s.Status.Symbol() + " " + s.Message
}

// Counts contadores de la ejecución.
type Counts struct {
	AccountsCreated   int `json:"accounts_created" yaml:"accounts_created"`
	JournalsCreated   int `json:"journals_created" yaml:"journals_created"`
	CategoriesUpdated int `json:"categories_updated" yaml:"categories_updated"`
	CategoriesTotal   int `json:"categories_total" yaml:"categories_total"`
	ExpenseUpdated    int `json:"expense_updated" yaml:"expense_updated"`
	ExpenseTotal      int `json:"expense_total" yaml:"expense_total"`
	PartnersUpdated   int `json:"partners_updated" yaml:"partners_updated"`
	PartnersTotal     int `json:"partners_total" yaml:"partners_total"`
	PartnersSkipped   int `json:"partners_skipped" yaml:"partners_skipped"`
	PartnersFailed    int `json:"partners_failed" yaml:"partners_failed"`
}

// Report resultado ordenado de una ejecución.
type Report struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	CompanyID   string    `json:"company_id" yaml:"company_id"`
	CompanyName string    `json:"company_name" yaml:"company_name"`
	DryRun      bool      `json:"dry_run" yaml:"dry_run"`
	Steps       []Step    `json:"steps" yaml:"steps"`
	Counts      Counts    `json:"counts" yaml:"counts"`
	StartedAt   time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt  time.Time `json:"finished_at" yaml:"finished_at"`
}

// Lines devuelve las líneas del reporte en orden.
func (r *Report) Lines() []string {
	out := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		out = append(out, s.String())
	}
	return out
}

func (r *Report) add(status StepStatus, format string, args ...any) {
	r.Steps = append(r.Steps, Step{Status: status, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) addEnsured(created bool, format string, args ...any) {
	if created {
		r.add(StatusCreated, format, args...)
		return
	}
	r.add(StatusPresent, format, args...)
}
