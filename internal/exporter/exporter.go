package exporter

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
)

// Formatos de saída suportados
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Stdout é o caminho que direciona a saída para o stdout
const Stdout = "-"

var ErrUnsupportedFormat = errors.New("exporter: unsupported format")

//go:generate mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks
type Exporter interface {
	Export(dataset *domain.CleanedDataset, path string) error
}

type encoder interface {
	encode(w io.Writer, dataset *domain.CleanedDataset) error
}

type FileExporter struct {
	format  string
	encoder encoder
	stdout  io.Writer
	create  func(path string) (io.WriteCloser, error)
}

func createFile(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// New cria o exportador para o formato informado
func New(format string) (*FileExporter, error) {
	var enc encoder
	switch format {
	case FormatCSV:
		enc = csvEncoder{}
	case FormatJSON:
		enc = jsonEncoder{}
	case FormatXLSX:
		enc = xlsxEncoder{}
	default:
		return nil, errors.Wrap(ErrUnsupportedFormat, format)
	}

	return &FileExporter{format: format, encoder: enc, stdout: os.Stdout, create: createFile}, nil
}

// WithStdout troca o destino usado quando o caminho é "-"
func (e *FileExporter) WithStdout(w io.Writer) *FileExporter {
	e.stdout = w
	return e
}

func (e *FileExporter) Format() string {
	return e.format
}

// Export grava o dataset no caminho informado, sobrescrevendo o arquivo existente
func (e *FileExporter) Export(dataset *domain.CleanedDataset, path string) error {
	if path == Stdout {
		return errors.Wrap(e.encoder.encode(e.stdout, dataset), "exporter: error writing to stdout")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "exporter: error creating directory %s", dir)
		}
	}

	file, err := e.create(path)
	if err != nil {
		return errors.Wrapf(err, "exporter: error creating file %s", path)
	}

	if err := e.encoder.encode(file, dataset); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "exporter: error writing %s", path)
	}

	// o flush final acontece no Close; um erro aqui significa arquivo incompleto
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "exporter: error closing %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":   path,
		"format": e.format,
		"rows":   dataset.Len(),
	}).Info("exporter: dataset written")

	return nil
}
