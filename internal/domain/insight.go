package domain

import (
	"time"
)

// Level representa o nível de agregação das métricas de anúncios
type Level string

const (
	LevelCampaign Level = "campaign"
	LevelAdSet    Level = "adset"
	LevelAd       Level = "ad"
)

func (l Level) IsValid() bool {
	switch l {
	case LevelCampaign, LevelAdSet, LevelAd:
		return true
	}
	return false
}

// Colunas do dataset bruto
const (
	ColumnEntityName   = "entity_name"
	ColumnEntityID     = "entity_id"
	ColumnImpressions  = "impressions"
	ColumnClicks       = "clicks"
	ColumnSpend        = "spend"
	ColumnActions      = "actions"
	ColumnActionValues = "action_values"
	ColumnDateStart    = "date_start"
	ColumnDateStop     = "date_stop"
)

// ActionTypeLinkClick é o tipo de ação usado para a coluna link_clicks
const ActionTypeLinkClick = "link_click"

// TimeRange é um intervalo de datas inclusivo, sem hora
type TimeRange struct {
	Since time.Time `json:"since"`
	Until time.Time `json:"until"`
}

// Action é uma interação atribuída a um anúncio. Campos opcionais ficam nil quando ausentes.
type Action struct {
	ActionType        string  `json:"action_type"`
	ActionTargetID    *string `json:"action_target_id,omitempty"`
	ActionDestination *string `json:"action_destination,omitempty"`
	Value             *string `json:"value,omitempty"`
}

// ActionValue é o valor monetário de um tipo de ação
type ActionValue struct {
	ActionType string  `json:"action_type"`
	Value      *string `json:"value,omitempty"`
}

// InsightsRow é uma linha retornada pelo provedor de insights para (conta, nível, período)
type InsightsRow struct {
	AccountID    string        `json:"account_id"`
	EntityName   string        `json:"entity_name"`
	EntityID     string        `json:"entity_id"`
	Impressions  int64         `json:"impressions"`
	Clicks       int64         `json:"clicks"`
	Spend        float64       `json:"spend"`
	Actions      []Action      `json:"actions"`
	ActionValues []ActionValue `json:"action_values"`
	DateStart    string        `json:"date_start"`
	DateStop     string        `json:"date_stop"`
}

// Clone devolve uma cópia da linha que não compartilha slices com a original
func (r InsightsRow) Clone() InsightsRow {
	out := r
	if r.Actions != nil {
		out.Actions = make([]Action, len(r.Actions))
		for i, a := range r.Actions {
			out.Actions[i] = Action{
				ActionType:        a.ActionType,
				ActionTargetID:    clonePtr(a.ActionTargetID),
				ActionDestination: clonePtr(a.ActionDestination),
				Value:             clonePtr(a.Value),
			}
		}
	}
	if r.ActionValues != nil {
		out.ActionValues = make([]ActionValue, len(r.ActionValues))
		for i, v := range r.ActionValues {
			out.ActionValues[i] = ActionValue{ActionType: v.ActionType, Value: clonePtr(v.Value)}
		}
	}
	return out
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// Dataset é o resultado bruto de uma extração. Columns vazio significa schema ausente.
type Dataset struct {
	Columns []string      `json:"columns"`
	Rows    []InsightsRow `json:"rows"`
	// TimeRange é o período efetivamente consultado
	TimeRange TimeRange `json:"time_range"`
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// InsightsRequest agrupa os parâmetros enviados ao provedor para uma conta
type InsightsRequest struct {
	TimeRange     TimeRange
	Level         Level
	TimeIncrement int
	Fields        []string
}

// FetchParams são os parâmetros de uma extração multi-conta
type FetchParams struct {
	AccountIDs    []string
	DaysBack      int
	FloorDate     time.Time
	Level         Level
	TimeIncrement int
}

// AccountResult é o resultado da consulta de uma conta: linhas ou erro
type AccountResult struct {
	AccountID string
	Rows      []InsightsRow
	Err       error
}

func (r AccountResult) Failed() bool {
	return r.Err != nil
}
