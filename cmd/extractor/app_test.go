package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-insights-extractor/internal/config"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "run"}
	cmd.Flags().StringSlice(flagAccounts, nil, "")
	cmd.Flags().Int(flagDays, 0, "")
	cmd.Flags().String(flagBaseDate, "", "")
	cmd.Flags().String(flagLevel, "", "")
	cmd.Flags().String(flagFormat, "", "")
	cmd.Flags().String(flagOutput, "", "")
	return cmd
}

func TestApplyFlags(t *testing.T) {
	extraction := config.Extraction{
		AccountIDs:   []string{"act_env"},
		LastDays:     30,
		BaseDate:     "2024-08-22",
		Level:        "campaign",
		OutputFormat: "csv",
		OutputPath:   "insights.csv",
	}

	cmd := newRunCmd()
	require.NoError(t, cmd.Flags().Set(flagAccounts, "act_1, act_2"))
	require.NoError(t, cmd.Flags().Set(flagDays, "7"))
	require.NoError(t, cmd.Flags().Set(flagLevel, "ad"))
	require.NoError(t, cmd.Flags().Set(flagOutput, "-"))

	require.NoError(t, applyFlags(cmd, &extraction))

	assert.Equal(t, []string{"act_1", "act_2"}, extraction.AccountIDs)
	assert.Equal(t, 7, extraction.LastDays)
	assert.Equal(t, "ad", extraction.Level)
	assert.Equal(t, "-", extraction.OutputPath)
	assert.Equal(t, "2024-08-22", extraction.BaseDate)
	assert.Equal(t, "csv", extraction.OutputFormat)
}

func TestBuildExtraction(t *testing.T) {
	cfg := &config.Config{
		Extraction: config.Extraction{
			AccountIDs:        []string{"act_1"},
			LastDays:          10,
			BaseDate:          "2024-08-22",
			Level:             "adset",
			TimeIncrement:     1,
			MaxConcurrentJobs: 2,
			OutputFormat:      "json",
			OutputPath:        "out.jsonl",
		},
	}

	service, request, err := buildExtraction(cfg)
	require.NoError(t, err)
	assert.NotNil(t, service)
	assert.Equal(t, domain.LevelAdSet, request.Params.Level)
	assert.Equal(t, time.Date(2024, 8, 22, 0, 0, 0, 0, time.Local), request.Params.FloorDate)
	assert.Equal(t, "out.jsonl", request.OutputPath)

	cfg.Extraction.OutputFormat = "parquet"
	_, _, err = buildExtraction(cfg)
	assert.Error(t, err)
}
