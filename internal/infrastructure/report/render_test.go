package report_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/accounting-setup/internal/application/setup"
	"github.com/jhoicas/accounting-setup/internal/domain"
	"github.com/jhoicas/accounting-setup/internal/infrastructure/report"
)

func sampleReport() *setup.Report {
	return &setup.Report{
		RunID:       "run-1",
		CompanyID:   "c1",
		CompanyName: "Công ty Đại Phát",
		Steps: []setup.Step{
			{Status: setup.StatusCreated, Message: "Account 1568"},
			{Status: setup.StatusPresent, Message: "Account 1561"},
			{Status: setup.StatusDone, Message: "Applied FIFO+Real-time: 3/3 categories"},
			{Status: setup.StatusWarning, Message: "Could not set partner defaults (no impact)"},
		},
		Counts:     setup.Counts{AccountsCreated: 1, CategoriesUpdated: 3, CategoriesTotal: 3},
		StartedAt:  time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 1, 2, 10, 0, 1, 0, time.UTC),
	}
}

func TestText(t *testing.T) {
	want := "✓ Configuration completed\n\n" +
		"✓ Created: Account 1568\n" +
		"○ Already present: Account 1561\n" +
		"✓ Applied FIFO+Real-time: 3/3 categories\n" +
		"⚠ Could not set partner defaults (no impact)\n" +
		"\nCompany: Công ty Đại Phát\n"
	assert.Equal(t, want, report.Text(sampleReport()))
}

func TestText_DryRun(t *testing.T) {
	r := sampleReport()
	r.DryRun = true
	assert.Contains(t, report.Text(r), "○ Dry run: no changes were saved\n")
}

func TestParseFormat(t *testing.T) {
	f, err := report.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, report.FormatText, f)

	f, err = report.ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, report.FormatYAML, f)

	_, err = report.ParseFormat("html")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleReport(), report.FormatJSON))

	var got struct {
		RunID       string `json:"run_id"`
		CompanyName string `json:"company_name"`
		Steps       []struct {
			Status string `json:"status"`
		} `json:"steps"`
		Counts struct {
			CategoriesUpdated int `json:"categories_updated"`
		} `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, "Công ty Đại Phát", got.CompanyName)
	require.Len(t, got.Steps, 4)
	assert.Equal(t, "warning", got.Steps[3].Status)
	assert.Equal(t, 3, got.Counts.CategoriesUpdated)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleReport(), report.FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "c1", got["company_id"])
	assert.Len(t, got["steps"], 4)
}

func TestRender_PDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleReport(), report.FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
