package exporter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string {
	return &s
}

func sampleDataset() *domain.CleanedDataset {
	return &domain.CleanedDataset{
		Columns: []string{
			domain.ColumnEntityName,
			domain.ColumnImpressions,
			domain.ColumnSpend,
			domain.ColumnActions,
			domain.ColumnActionType,
			domain.ColumnActionTargetID,
			domain.ColumnLinkClicks,
			domain.ColumnDate,
		},
		Rows: []domain.CleanedRow{
			{
				InsightsRow: domain.InsightsRow{
					AccountID:   "act_1",
					EntityName:  "Campanha, Verão",
					Impressions: 1200,
					Spend:       10.5,
					Actions:     []domain.Action{{ActionType: "link_click", Value: strPtr("3")}},
					DateStart:   "2024-08-22",
				},
				ActionType: strPtr("link_click"),
				LinkClicks: 3,
				Date:       "2024-08-22",
			},
			{
				InsightsRow: domain.InsightsRow{AccountID: "act_2", EntityName: "Outra", Actions: []domain.Action{}, DateStart: "2024-08-23"},
				Date:        "2024-08-23",
			},
		},
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{FormatCSV, FormatJSON, FormatXLSX} {
		e, err := New(format)
		require.NoError(t, err)
		assert.Equal(t, format, e.Format())
	}

	_, err := New("parquet")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExport_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "insights.csv")

	e, err := New(FormatCSV)
	require.NoError(t, err)
	require.NoError(t, e.Export(sampleDataset(), path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"account_id", "entity_name", "impressions", "spend", "actions", "action_type", "action_target_id", "link_clicks", "date"}, records[0])
	assert.Equal(t, []string{"act_1", "Campanha, Verão", "1200", "10.5", `[{"action_type":"link_click","value":"3"}]`, "link_click", "", "3", "2024-08-22"}, records[1])
	assert.Equal(t, []string{"act_2", "Outra", "0", "0", "[]", "", "", "0", "2024-08-23"}, records[2])
}

func TestExport_JSONToStdout(t *testing.T) {
	var buf bytes.Buffer

	e, err := New(FormatJSON)
	require.NoError(t, err)
	require.NoError(t, e.WithStdout(&buf).Export(sampleDataset(), Stdout))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var row map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &row))
	assert.Equal(t, "act_1", row["account_id"])
	assert.Equal(t, "link_click", row["action_type"])
	assert.Equal(t, 3.0, row["link_clicks"])
	assert.Nil(t, row["action_target_id"])
}

func TestExport_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insights.xlsx")

	e, err := New(FormatXLSX)
	require.NoError(t, err)
	require.NoError(t, e.Export(sampleDataset(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "account_id", rows[0][0])
	assert.Equal(t, "Campanha, Verão", rows[1][1])
	assert.Equal(t, "1200", rows[1][2])
}

func TestExport_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer

	e, err := New(FormatCSV)
	require.NoError(t, err)
	require.NoError(t, e.WithStdout(&buf).Export(&domain.CleanedDataset{}, Stdout))

	assert.Equal(t, "account_id\n", buf.String())
}

type failingCloseFile struct {
	bytes.Buffer
	closed bool
}

func (f *failingCloseFile) Close() error {
	f.closed = true
	return errors.New("no space left on device")
}

func TestExport_CloseError(t *testing.T) {
	file := &failingCloseFile{}

	e, err := New(FormatCSV)
	require.NoError(t, err)
	e.create = func(path string) (io.WriteCloser, error) { return file, nil }

	err = e.Export(sampleDataset(), "insights.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error closing insights.csv")
	assert.Contains(t, err.Error(), "no space left on device")
	assert.True(t, file.closed)
	assert.NotEmpty(t, file.String())
}
