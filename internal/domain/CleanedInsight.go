package domain

// Colunas derivadas pelo achatamento das ações
const (
	ColumnActionType        = "action_type"
	ColumnActionTargetID    = "action_target_id"
	ColumnActionDestination = "action_destination"
	ColumnLinkClicks        = "link_clicks"
	ColumnDate              = "date"
)

// CleanedRow é uma linha do dataset bruto acrescida das colunas derivadas das ações
type CleanedRow struct {
	InsightsRow
	ActionType        *string `json:"action_type"`
	ActionTargetID    *string `json:"action_target_id"`
	ActionDestination *string `json:"action_destination"`
	LinkClicks        float64 `json:"link_clicks"`
	Date              string  `json:"date"`
}

// CleanedDataset é o dataset bruto tratado
type CleanedDataset struct {
	Columns []string     `json:"columns"`
	Rows    []CleanedRow `json:"rows"`
}

func (d *CleanedDataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Dataset devolve as linhas tratadas como dataset bruto, permitindo reprocessar o resultado
func (d *CleanedDataset) Dataset() *Dataset {
	out := &Dataset{
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([]InsightsRow, 0, len(d.Rows)),
	}
	for _, r := range d.Rows {
		out.Rows = append(out.Rows, r.InsightsRow.Clone())
	}
	return out
}
