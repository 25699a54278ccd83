package exporter

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
)

type csvEncoder struct{}

func (csvEncoder) encode(w io.Writer, dataset *domain.CleanedDataset) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Headers(dataset)); err != nil {
		return errors.Wrap(err, "failed to write headers")
	}

	for i, row := range dataset.Rows {
		if err := writer.Write(Strings(Values(row, dataset.Columns))); err != nil {
			return errors.Wrapf(err, "failed to write record %d", i)
		}
	}

	writer.Flush()
	return writer.Error()
}
