package exporter

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Insights"

type xlsxEncoder struct{}

func (xlsxEncoder) encode(w io.Writer, dataset *domain.CleanedDataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(err, "failed to rename sheet")
	}

	headers := Headers(dataset)
	if err := setRow(f, 1, toAny(headers)); err != nil {
		return errors.Wrap(err, "failed to write headers")
	}

	for i, row := range dataset.Rows {
		if err := setRow(f, i+2, Values(row, dataset.Columns)); err != nil {
			return errors.Wrapf(err, "failed to write record %d", i)
		}
	}

	return f.Write(w)
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SheetName, cell, &values)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
