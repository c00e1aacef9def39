package report

import (
	"fmt"
	"strings"
	"unicode"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/accounting-setup/internal/application/setup"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 30, Green: 130, Blue: 60}
	colorAmber   = &props.Color{Red: 190, Green: 120, Blue: 0}
)

// ── Documento ─────────────────────────────────────────────────────────────────

// PDF genera el reporte en A4 y devuelve sus bytes.
func PDF(r *setup.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Accounting setup report", true).
		WithAuthor(latin(r.CompanyName), true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	for _, s := range r.Steps {
		m.AddRows(stepRow(s))
	}
	m.AddRows(line.NewRow(4))
	m.AddRows(countsRows(r.Counts)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *setup.Report) core.Row {
	title := "Configuration completed"
	if r.DryRun {
		title = "Dry run: no changes were saved"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
		),
		col.New(4).Add(
			text.New(r.FinishedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Run "+r.RunID, props.Text{Size: 6, Align: align.Right, Top: 8, Color: colorGray}),
		),
	)
}

// stepRow una fila por paso; el símbolo se sustituye por una marca ASCII (fuente core).
func stepRow(s setup.Step) core.Row {
	mark, color := "[=]", colorGray
	switch s.Status {
	case setup.StatusCreated, setup.StatusDone:
		mark, color = "[+]", colorGreen
	case setup.StatusWarning:
		mark, color = "[!]", colorAmber
	}
	body := strings.TrimSpace(strings.TrimPrefix(s.String(), s.Status.Symbol()))
	return row.New(7).Add(
		col.New(1).Add(text.New(mark, props.Text{Style: fontstyle.Bold, Size: 9, Color: color, Top: 1})),
		col.New(11).Add(text.New(latin(body), props.Text{Size: 10, Top: 1})),
	)
}

func countsRows(c setup.Counts) []core.Row {
	pairs := []struct {
		label string
		value string
	}{
		{"Accounts created", fmt.Sprint(c.AccountsCreated)},
		{"Journals created", fmt.Sprint(c.JournalsCreated)},
		{"Categories valued", fmt.Sprintf("%d/%d", c.CategoriesUpdated, c.CategoriesTotal)},
		{"Expense account set", fmt.Sprintf("%d/%d", c.ExpenseUpdated, c.ExpenseTotal)},
		{"Partners updated", fmt.Sprintf("%d/%d", c.PartnersUpdated, c.PartnersTotal)},
		{"Partners skipped / failed", fmt.Sprintf("%d / %d", c.PartnersSkipped, c.PartnersFailed)},
	}
	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(p.label, props.Text{Size: 9, Color: colorGray})),
			col.New(6).Add(text.New(p.value, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		))
	}
	return rows
}

func footerRow(r *setup.Report) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New("Company: "+latin(r.CompanyName), props.Text{Size: 9, Color: colorGray, Top: 2})),
	)
}

// latin reduce el texto a caracteres que la fuente core puede dibujar: quita los
// diacríticos vietnamitas (đ no se descompone y se sustituye aparte).
func latin(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
}
