// Package report convierte el reporte de una ejecución de la configuración contable en
// texto, JSON, YAML o PDF.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/accounting-setup/internal/application/setup"
	"github.com/jhoicas/accounting-setup/internal/domain"
)

// Format formato de salida del reporte.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatPDF  Format = "pdf"
)

// ParseFormat valida el formato; vacío equivale a texto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: formato de reporte desconocido %q", domain.ErrInvalidInput, s)
}

// Title encabezado del reporte.
func Title(r *setup.Report) string {
	if r.DryRun {
		return "○ Dry run: no changes were saved"
	}
	return "✓ Configuration completed"
}

// Text reporte legible: encabezado, una línea por paso y la empresa al pie.
func Text(r *setup.Report) string {
	var b strings.Builder
	b.WriteString(Title(r))
	b.WriteString("\n\n")
	for _, line := range r.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\nCompany: ")
	b.WriteString(r.CompanyName)
	b.WriteByte('\n')
	return b.String()
}

// Render escribe el reporte en w con el formato indicado.
func Render(w io.Writer, r *setup.Report, f Format) error {
	switch f {
	case FormatText, "":
		_, err := io.WriteString(w, Text(r))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
		return enc.Close()
	case FormatPDF:
		doc, err := PDF(r)
		if err != nil {
			return err
		}
		_, err = w.Write(doc)
		return err
	}
	return fmt.Errorf("%w: formato de reporte desconocido %q", domain.ErrInvalidInput, string(f))
}
