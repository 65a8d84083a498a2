package metadomain

// LeadField é um campo preenchido no formulário de lead.
type LeadField struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// LeadgenEntry é um lead bruto como a API devolve.
type LeadgenEntry struct {
	ID           string      `json:"id"`
	CreatedTime  string      `json:"created_time"`
	CampaignName string      `json:"campaign_name"`
	Platform     string      `json:"platform"`
	FieldData    []LeadField `json:"field_data"`
}

// Field devolve o primeiro valor do campo com o nome dado, ou vazio.
func (l *LeadgenEntry) Field(name string) string {
	for _, field := range l.FieldData {
		if field.Name == name && len(field.Values) > 0 {
			return field.Values[0]
		}
	}
	return ""
}
