package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelectKPI(t *testing.T) {
	tests := []struct {
		name     string
		cfg      KPIConfig
		summary  *InsightSummary
		expected KPIType
	}{
		{
			name:     "Modo manual vence mesmo com leads presentes",
			cfg:      KPIConfig{Mode: KPIModeManual, Type: KPITypeClick},
			summary:  &InsightSummary{Leads: 10},
			expected: KPITypeClick,
		},
		{
			name:     "Modo auto com leads destaca LEAD",
			cfg:      KPIConfig{Mode: KPIModeAuto},
			summary:  &InsightSummary{Leads: 3, Messages: 8},
			expected: KPITypeLead,
		},
		{
			name:     "Modo auto sem leads mas com conversas destaca MESSAGE",
			cfg:      KPIConfig{Mode: KPIModeAuto},
			summary:  &InsightSummary{Leads: 0, Messages: 8},
			expected: KPITypeMessage,
		},
		{
			name:     "Modo auto sem resultados cai para CLICK",
			cfg:      KPIConfig{Mode: KPIModeAuto},
			summary:  &InsightSummary{Clicks: 100},
			expected: KPITypeClick,
		},
		{
			name:     "Modo manual sem tipo configurado usa a precedência automática",
			cfg:      KPIConfig{Mode: KPIModeManual},
			summary:  &InsightSummary{Leads: 1},
			expected: KPITypeLead,
		},
		{
			name:     "Resumo nil cai para CLICK",
			cfg:      KPIConfig{Mode: KPIModeAuto},
			summary:  nil,
			expected: KPITypeClick,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SelectKPI(tt.cfg, tt.summary))
		})
	}
}

func TestProjectLocation(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		timezone string
		expected *time.Location
	}{
		{
			name:     "Fuso válido é resolvido",
			timezone: "America/Sao_Paulo",
			expected: saoPaulo,
		},
		{
			name:     "Fuso vazio cai para UTC",
			timezone: "",
			expected: time.UTC,
		},
		{
			name:     "Fuso inválido cai para UTC",
			timezone: "Lua/Mare_Tranquillitatis",
			expected: time.UTC,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := &Project{ID: "P1", Timezone: tt.timezone}
			assert.Equal(t, tt.expected, project.Location())
		})
	}
}
