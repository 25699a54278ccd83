package insighting

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
	"github.com/vfg2006/ads-insights-extractor/pkg/metrics"
)

// DerivedColumns são as colunas acrescentadas por Flatten
var DerivedColumns = []string{
	domain.ColumnActionType,
	domain.ColumnActionTargetID,
	domain.ColumnActionDestination,
	domain.ColumnLinkClicks,
	domain.ColumnDate,
}

// Flatten transforma a lista de ações de cada linha em colunas escalares e normaliza date_start.
// O dataset de entrada não é alterado.
//
// action_type, action_target_id e action_destination vêm sempre da primeira ação da lista,
// qualquer que seja o tipo dela; link_clicks vem da primeira ação do tipo link_click.
func Flatten(dataset *domain.Dataset) (*domain.CleanedDataset, error) {
	for _, column := range []string{domain.ColumnActions, domain.ColumnDateStart} {
		if !dataset.HasColumn(column) {
			return nil, &domain.SchemaError{Column: column}
		}
	}

	cleaned := &domain.CleanedDataset{
		Columns: cleanedColumns(dataset.Columns),
		Rows:    make([]domain.CleanedRow, 0, len(dataset.Rows)),
	}

	for _, row := range dataset.Rows {
		cleaned.Rows = append(cleaned.Rows, flattenRow(row))
	}

	return cleaned, nil
}

func cleanedColumns(columns []string) []string {
	out := append([]string(nil), columns...)
	for _, derived := range DerivedColumns {
		found := false
		for _, c := range columns {
			if c == derived {
				found = true
				break
			}
		}
		if !found {
			out = append(out, derived)
		}
	}
	return out
}

func flattenRow(row domain.InsightsRow) domain.CleanedRow {
	cleaned := domain.CleanedRow{InsightsRow: row.Clone()}
	if cleaned.Actions == nil {
		cleaned.Actions = []domain.Action{}
	}

	if actions := cleaned.Actions; len(actions) > 0 {
		first := actions[0]
		// action_type ausente ou vazio resultam igualmente em nulo
		if first.ActionType != "" {
			actionType := first.ActionType
			cleaned.ActionType = &actionType
		}
		cleaned.ActionTargetID = first.ActionTargetID
		cleaned.ActionDestination = first.ActionDestination
		cleaned.LinkClicks = linkClicks(row, actions)
	}

	date, _, _ := strings.Cut(row.DateStart, "T")
	cleaned.DateStart = date
	cleaned.Date = date

	return cleaned
}

// linkClicks devolve o valor da primeira ação link_click. Valor ausente ou inválido conta como 0.
func linkClicks(row domain.InsightsRow, actions []domain.Action) float64 {
	for _, action := range actions {
		if action.ActionType != domain.ActionTypeLinkClick {
			continue
		}

		if action.Value == nil {
			return 0
		}

		value, err := strconv.ParseFloat(*action.Value, 64)
		if err != nil {
			metrics.LinkClickParseErrors.Inc()
			logrus.WithFields(logrus.Fields{
				"account_id": row.AccountID,
				"entity_id":  row.EntityID,
				"date_start": row.DateStart,
				"value":      *action.Value,
				"error":      err.Error(),
			}).Warn("insights: error converting link_click value to float")
			return 0
		}

		return value
	}

	return 0
}
