package exporter

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-insights-extractor/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Headers devolve o cabeçalho exportado: account_id seguido das colunas do dataset
func Headers(dataset *domain.CleanedDataset) []string {
	return append([]string{"account_id"}, dataset.Columns...)
}

// Values devolve os valores tipados de uma linha na ordem de Headers. Ponteiros nil viram nil.
func Values(row domain.CleanedRow, columns []string) []any {
	values := make([]any, 0, len(columns)+1)
	values = append(values, row.AccountID)

	for _, column := range columns {
		values = append(values, value(row, column))
	}
	return values
}

func value(row domain.CleanedRow, column string) any {
	switch column {
	case domain.ColumnEntityName:
		return row.EntityName
	case domain.ColumnEntityID:
		return row.EntityID
	case domain.ColumnImpressions:
		return row.Impressions
	case domain.ColumnClicks:
		return row.Clicks
	case domain.ColumnSpend:
		return row.Spend
	case domain.ColumnActions:
		return encodeList(row.Actions)
	case domain.ColumnActionValues:
		return encodeList(row.ActionValues)
	case domain.ColumnDateStart:
		return row.DateStart
	case domain.ColumnDateStop:
		return row.DateStop
	case domain.ColumnActionType:
		return deref(row.ActionType)
	case domain.ColumnActionTargetID:
		return deref(row.ActionTargetID)
	case domain.ColumnActionDestination:
		return deref(row.ActionDestination)
	case domain.ColumnLinkClicks:
		return row.LinkClicks
	case domain.ColumnDate:
		return row.Date
	}
	return nil
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// listas são exportadas como JSON para manter uma célula por campo
func encodeList(list any) string {
	b, err := json.Marshal(list)
	if err != nil {
		return ""
	}
	return string(b)
}

// Strings converte os valores de uma linha para texto
func Strings(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		switch t := v.(type) {
		case nil:
			out[i] = ""
		case string:
			out[i] = t
		case int64:
			out[i] = strconv.FormatInt(t, 10)
		case float64:
			out[i] = strconv.FormatFloat(t, 'f', -1, 64)
		}
	}
	return out
}
