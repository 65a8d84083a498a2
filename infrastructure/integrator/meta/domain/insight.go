package metadomain

// Action é um par (tipo de ação, valor) como a API devolve. O valor vem
// sempre como string, mesmo sendo numérico.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

// AccountInsight é a linha bruta de insights agregados no nível da conta.
// Todas as métricas numéricas chegam como strings; a normalização acontece
// na agregação, nunca aqui.
type AccountInsight struct {
	AccountID   string   `json:"account_id"`
	AccountName string   `json:"account_name"`
	Spend       string   `json:"spend"`
	Impressions string   `json:"impressions"`
	Clicks      string   `json:"clicks"`
	Reach       string   `json:"reach"`
	Frequency   string   `json:"frequency"`
	Actions     []Action `json:"actions"`
	DateStart   string   `json:"date_start"`
	DateStop    string   `json:"date_stop"`
}

// CampaignInsight é a linha bruta de insights no nível de campanha.
type CampaignInsight struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Frequency    string   `json:"frequency"`
	Actions      []Action `json:"actions"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
}

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
