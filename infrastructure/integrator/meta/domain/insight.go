package metadomain

// Action como retornado pela Graph API em actions/action_values
type Action struct {
	ActionType        string  `json:"action_type"`
	ActionTargetID    *string `json:"action_target_id,omitempty"`
	ActionDestination *string `json:"action_destination,omitempty"`
	Value             *string `json:"value,omitempty"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// InsightRecord é uma linha de /insights. Números chegam como string.
type InsightRecord struct {
	AccountID    string   `json:"account_id"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdSetID      string   `json:"adset_id"`
	AdSetName    string   `json:"adset_name"`
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Spend        string   `json:"spend"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

type InsightsResponse struct {
	Data   []InsightRecord `json:"data"`
	Paging *Paging         `json:"paging,omitempty"`
}

// InsightsParams são os parâmetros de /{account}/insights
type InsightsParams struct {
	Since         string
	Until         string
	Level         string
	TimeIncrement int
	Fields        []string
}
