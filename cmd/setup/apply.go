package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/accounting-setup/internal/application/setup"
	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/infrastructure/memory"
	"github.com/jhoicas/accounting-setup/internal/infrastructure/postgres"
	"github.com/jhoicas/accounting-setup/internal/infrastructure/report"
)

type applyFlags struct {
	company     string
	format      string
	output      string
	store       string
	seed        string
	optionsFile string
	opts        setup.Options
}

func newApplyCmd(app *cli) *cobra.Command {
	var f applyFlags
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Ejecuta la configuración contable para una empresa",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.apply(cmd, &f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.company, "company", "", "ID de la empresa (por defecto SETUP_COMPANY_ID)")
	fl.StringVar(&f.format, "format", "text", "formato del reporte: text, json, yaml o pdf")
	fl.StringVarP(&f.output, "output", "o", "", "archivo de salida (por defecto stdout)")
	fl.StringVar(&f.store, "store", "postgres", "almacén: postgres o memory")
	fl.StringVar(&f.seed, "seed", "", "YAML con los datos iniciales del almacén en memoria")
	fl.StringVar(&f.optionsFile, "options", "", "YAML con las opciones de la configuración")

	fl.StringVar(&f.opts.ValuationCode, "valuation-code", "", "código de la cuenta de valoración")
	fl.StringVar(&f.opts.InputCode, "input-code", "", "código de la cuenta transitoria de entrada")
	fl.StringVar(&f.opts.OutputCode, "output-code", "", "código de la cuenta transitoria de salida")
	fl.StringVar(&f.opts.JournalCode, "journal-code", "", "código del diario de valoración")
	fl.StringVar(&f.opts.JournalName, "journal-name", "", "nombre del diario de valoración")
	fl.StringVar(&f.opts.ExpenseCode, "expense-code", "", "código de la cuenta de gasto")
	fl.StringVar(&f.opts.ExpenseFallbackCode, "expense-fallback-code", "", "código de gasto alternativo")
	fl.BoolVar(&f.opts.SetExpenseAccount, "set-expense-account", true, "asignar la cuenta de gasto a las categorías")
	fl.BoolVar(&f.opts.ApplyToCategories, "apply-to-categories", true, "aplicar FIFO + tiempo real a las categorías")
	fl.StringVar(&f.opts.ARCode, "ar-code", "", "código de la cuenta por cobrar")
	fl.StringVar(&f.opts.APCode, "ap-code", "", "código de la cuenta por pagar")
	fl.BoolVar(&f.opts.SetPartnerDefaults, "set-partner-defaults", true, "registrar AR/AP por defecto para terceros nuevos")
	fl.StringVar(&f.opts.UpdateExistingPartners, "update-partners", "", "terceros existentes: no, missing_only o all")
	fl.BoolVar(&f.opts.DryRun, "dry-run", false, "ejecutar todo y revertir")
	return cmd
}

func (app *cli) apply(cmd *cobra.Command, f *applyFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := report.ParseFormat(f.format)
	if err != nil {
		return app.fail(err)
	}
	companyID := f.company
	if companyID == "" {
		companyID = app.cfg.Setup.CompanyID
	}
	if companyID == "" {
		return app.fail(fmt.Errorf("%w: --company o SETUP_COMPANY_ID es obligatorio", domain.ErrInvalidInput))
	}
	opts, err := app.resolveOptions(cmd, f)
	if err != nil {
		return app.fail(err)
	}

	runner, closeFn, err := app.openStore(ctx, f)
	if err != nil {
		return app.fail(err)
	}
	defer closeFn()

	rep, err := setup.NewUseCase(runner, app.log).Apply(ctx, companyID, opts)
	if err != nil {
		return app.fail(err)
	}

	// Se renderiza en memoria para no dejar un archivo a medias si falla el formato.
	var buf bytes.Buffer
	if err := report.Render(&buf, rep, format); err != nil {
		return app.fail(err)
	}
	if f.output == "" {
		_, err = buf.WriteTo(app.stdout)
		return err
	}
	file, err := os.Create(f.output)
	if err != nil {
		return app.fail(fmt.Errorf("crear %s: %w", f.output, err))
	}
	if _, err := buf.WriteTo(file); err != nil {
		_ = file.Close()
		return app.fail(fmt.Errorf("escribir %s: %w", f.output, err))
	}
	if err := file.Close(); err != nil {
		return app.fail(fmt.Errorf("cerrar %s: %w", f.output, err))
	}
	return nil
}

// resolveOptions: SETUP_* → archivo --options → flags indicados explícitamente.
func (app *cli) resolveOptions(cmd *cobra.Command, f *applyFlags) (setup.Options, error) {
	opts := setup.OptionsFromConfig(app.cfg.Setup)
	if f.optionsFile != "" {
		raw, err := os.ReadFile(f.optionsFile)
		if err != nil {
			return opts, fmt.Errorf("leer opciones: %w", err)
		}
		if err := yaml.Unmarshal(raw, &opts); err != nil {
			return opts, fmt.Errorf("%w: opciones YAML: %v", domain.ErrInvalidInput, err)
		}
	}

	changed := cmd.Flags().Changed
	strs := []struct {
		flag string
		src  string
		dst  *string
	}{
		{"valuation-code", f.opts.ValuationCode, &opts.ValuationCode},
		{"input-code", f.opts.InputCode, &opts.InputCode},
		{"output-code", f.opts.OutputCode, &opts.OutputCode},
		{"journal-code", f.opts.JournalCode, &opts.JournalCode},
		{"journal-name", f.opts.JournalName, &opts.JournalName},
		{"expense-code", f.opts.ExpenseCode, &opts.ExpenseCode},
		{"expense-fallback-code", f.opts.ExpenseFallbackCode, &opts.ExpenseFallbackCode},
		{"ar-code", f.opts.ARCode, &opts.ARCode},
		{"ap-code", f.opts.APCode, &opts.APCode},
		{"update-partners", f.opts.UpdateExistingPartners, &opts.UpdateExistingPartners},
	}
	for _, s := range strs {
		if changed(s.flag) {
			*s.dst = s.src
		}
	}
	bools := []struct {
		flag string
		src  bool
		dst  *bool
	}{
		{"set-expense-account", f.opts.SetExpenseAccount, &opts.SetExpenseAccount},
		{"apply-to-categories", f.opts.ApplyToCategories, &opts.ApplyToCategories},
		{"set-partner-defaults", f.opts.SetPartnerDefaults, &opts.SetPartnerDefaults},
		{"dry-run", f.opts.DryRun, &opts.DryRun},
	}
	for _, b := range bools {
		if changed(b.flag) {
			*b.dst = b.src
		}
	}
	return opts, nil
}

func (app *cli) openStore(ctx context.Context, f *applyFlags) (setup.TxRunner, func(), error) {
	switch strings.ToLower(f.store) {
	case "memory":
		if f.seed == "" {
			return memory.NewStore(), func() {}, nil
		}
		file, err := os.Open(f.seed)
		if err != nil {
			return nil, nil, fmt.Errorf("abrir seed: %w", err)
		}
		defer file.Close()
		store, err := memory.LoadSeed(file)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "postgres", "":
		pool, err := postgres.NewPool(ctx, app.cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewTxRunner(pool), pool.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: almacén desconocido %q", domain.ErrInvalidInput, f.store)
}

// fail escribe el error para el usuario y lo devuelve para el código de salida.
func (app *cli) fail(err error) error {
	var setupErr *domain.SetupError
	if errors.As(err, &setupErr) {
		fmt.Fprintf(app.stderr, "✗ %s\n", setupErr.Error())
	} else {
		fmt.Fprintf(app.stderr, "error: %v\n", err)
	}
	return err
}
