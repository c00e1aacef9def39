package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/accounting-setup/internal/application/dto"
	"github.com/jhoicas/accounting-setup/internal/application/setup"
	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/infrastructure/report"
)

// SetupHandler expone la configuración contable como acción HTTP (solo admin).
type SetupHandler struct {
	uc       *setup.UseCase
	defaults setup.Options
	log      zerolog.Logger
}

// NewSetupHandler construye el handler; defaults son las opciones del servidor (SETUP_*).
func NewSetupHandler(uc *setup.UseCase, defaults setup.Options, log zerolog.Logger) *SetupHandler {
	return &SetupHandler{uc: uc, defaults: defaults, log: log}
}

// Apply ejecuta la configuración para la empresa del token.
// POST /api/setup/apply?format=json|text|yaml|pdf
func (h *SetupHandler) Apply(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ApplySetupRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	format := report.FormatJSON
	if q := c.Query("format"); q != "" {
		f, err := report.ParseFormat(q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		format = f
	}

	rep, err := h.uc.Apply(c.UserContext(), companyID, MergeOptions(h.defaults, in))
	if err != nil {
		var setupErr *domain.SetupError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrUnexpected):
			h.log.Error().Err(err).Str("company_id", companyID).Msg("error inesperado en la configuración")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		case errors.As(err, &setupErr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "SETUP_FAILED", Message: setupErr.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	switch format {
	case report.FormatPDF:
		doc, err := report.PDF(rep)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="setup-`+rep.RunID+`.pdf"`)
		return c.Send(doc)
	case report.FormatText:
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(report.Text(rep))
	case report.FormatYAML:
		c.Set(fiber.HeaderContentType, "application/yaml")
		return report.Render(c.Response().BodyWriter(), rep, report.FormatYAML)
	}
	return c.JSON(toSetupResponse(rep))
}

// MergeOptions aplica sobre base los campos enviados en la petición.
func MergeOptions(base setup.Options, in dto.ApplySetupRequest) setup.Options {
	opts := base
	strs := []struct {
		src string
		dst *string
	}{
		{in.ValuationCode, &opts.ValuationCode},
		{in.InputCode, &opts.InputCode},
		{in.OutputCode, &opts.OutputCode},
		{in.JournalCode, &opts.JournalCode},
		{in.JournalName, &opts.JournalName},
		{in.ExpenseCode, &opts.ExpenseCode},
		{in.ARCode, &opts.ARCode},
		{in.APCode, &opts.APCode},
		{in.UpdateExistingPartners, &opts.UpdateExistingPartners},
	}
	for _, s := range strs {
		if s.src != "" {
			*s.dst = s.src
		}
	}
	if in.ExpenseFallbackCode != nil {
		opts.ExpenseFallbackCode = *in.ExpenseFallbackCode
	}
	if in.SetExpenseAccount != nil {
		opts.SetExpenseAccount = *in.SetExpenseAccount
	}
	if in.ApplyToCategories != nil {
		opts.ApplyToCategories = *in.ApplyToCategories
	}
	if in.SetPartnerDefaults != nil {
		opts.SetPartnerDefaults = *in.SetPartnerDefaults
	}
	opts.DryRun = opts.DryRun || in.DryRun
	return opts
}

func toSetupResponse(r *setup.Report) dto.SetupResponse {
	steps := make([]dto.SetupStep, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, dto.SetupStep{Status: string(s.Status), Message: s.Message, Line: s.String()})
	}
	c := r.Counts
	return dto.SetupResponse{
		RunID:       r.RunID,
		CompanyID:   r.CompanyID,
		CompanyName: r.CompanyName,
		DryRun:      r.DryRun,
		Steps:       steps,
		Counts: dto.SetupCounts{
			AccountsCreated:   c.AccountsCreated,
			JournalsCreated:   c.JournalsCreated,
			CategoriesUpdated: c.CategoriesUpdated,
			CategoriesTotal:   c.CategoriesTotal,
			ExpenseUpdated:    c.ExpenseUpdated,
			ExpenseTotal:      c.ExpenseTotal,
			PartnersUpdated:   c.PartnersUpdated,
			PartnersTotal:     c.PartnersTotal,
			PartnersSkipped:   c.PartnersSkipped,
			PartnersFailed:    c.PartnersFailed,
		},
		Text: report.Text(r),
	}
}
