package exporter

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
)

// jsonEncoder grava uma linha JSON por registro
type jsonEncoder struct{}

func (jsonEncoder) encode(w io.Writer, dataset *domain.CleanedDataset) error {
	encoder := json.NewEncoder(w)
	for i, row := range dataset.Rows {
		if err := encoder.Encode(row); err != nil {
			return errors.Wrapf(err, "failed to encode record %d", i)
		}
	}
	return nil
}
