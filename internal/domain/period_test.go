package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolvePeriod(t *testing.T) {
	// 01:00 UTC do dia 15 ainda é dia 14 em São Paulo (UTC-3)
	now := time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC)

	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		key      PeriodKey
		timezone string
		custom   *DateRange
		wantFrom time.Time
		wantTo   time.Time
		wantErr  bool
	}{
		{
			name:     "Hoje segue o calendário local, não o UTC",
			key:      PeriodToday,
			timezone: "America/Sao_Paulo",
			wantFrom: time.Date(2024, 6, 14, 0, 0, 0, 0, saoPaulo),
			wantTo:   time.Date(2024, 6, 14, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:     "Ontem é o dia local anterior independente da hora",
			key:      PeriodYesterday,
			timezone: "America/Sao_Paulo",
			wantFrom: time.Date(2024, 6, 13, 0, 0, 0, 0, saoPaulo),
			wantTo:   time.Date(2024, 6, 13, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:     "Semana são os 7 dias locais terminando em ontem",
			key:      PeriodWeek,
			timezone: "America/Sao_Paulo",
			wantFrom: time.Date(2024, 6, 7, 0, 0, 0, 0, saoPaulo),
			wantTo:   time.Date(2024, 6, 13, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:     "Mês são os 30 dias locais terminando em ontem",
			key:      PeriodMonth,
			timezone: "America/Sao_Paulo",
			wantFrom: time.Date(2024, 5, 15, 0, 0, 0, 0, saoPaulo),
			wantTo:   time.Date(2024, 6, 13, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:     "Custom normaliza as datas para meia-noite local",
			key:      PeriodCustom,
			timezone: "America/Sao_Paulo",
			custom: &DateRange{
				From: time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC),
				To:   time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
			},
			wantFrom: time.Date(2024, 6, 1, 0, 0, 0, 0, saoPaulo),
			wantTo:   time.Date(2024, 6, 10, 0, 0, 0, 0, saoPaulo),
		},
		{
			name:     "Custom sem datas deve falhar",
			key:      PeriodCustom,
			timezone: "America/Sao_Paulo",
			wantErr:  true,
		},
		{
			name:     "Custom com from depois de to deve falhar",
			key:      PeriodCustom,
			timezone: "America/Sao_Paulo",
			custom: &DateRange{
				From: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			wantErr: true,
		},
		{
			name:     "Fuso desconhecido deve falhar",
			key:      PeriodToday,
			timezone: "Marte/Olympus_Mons",
			wantErr:  true,
		},
		{
			name:     "Chave de período desconhecida deve falhar",
			key:      PeriodKey("fortnight"),
			timezone: "America/Sao_Paulo",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ResolvePeriod(tt.key, tt.timezone, now, tt.custom)

			if tt.wantErr {
				assert.Error(t, err)
				var invalid *InvalidPeriodError
				assert.ErrorAs(t, err, &invalid)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.key, resolved.Key)
			assert.True(t, tt.wantFrom.Equal(resolved.Period.From), "From: esperado %v, obtido %v", tt.wantFrom, resolved.Period.From)
			assert.True(t, tt.wantTo.Equal(resolved.Period.To), "To: esperado %v, obtido %v", tt.wantTo, resolved.Period.To)

			// O limite superior UTC é exclusivo: meia-noite local do dia seguinte
			assert.True(t, resolved.FromUTC.Equal(tt.wantFrom.UTC()))
			assert.True(t, resolved.ToUTC.Equal(tt.wantTo.AddDate(0, 0, 1).UTC()))
		})
	}
}

func TestResolvePeriodAheadOfUTC(t *testing.T) {
	// 23:00 UTC do dia 14 já é dia 15 em Tóquio (UTC+9)
	now := time.Date(2024, 6, 14, 23, 0, 0, 0, time.UTC)

	resolved, err := ResolvePeriod(PeriodToday, "Asia/Tokyo", now, nil)
	assert.NoError(t, err)

	assert.Equal(t, "2024-06-15", resolved.Period.From.Format(time.DateOnly))
	assert.True(t, resolved.FromUTC.Equal(time.Date(2024, 6, 14, 15, 0, 0, 0, time.UTC)))
	assert.True(t, resolved.ToUTC.Equal(time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC)))
}

func TestLocalDate(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	instant := time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-06-14", LocalDate(instant, saoPaulo))
	assert.Equal(t, "2024-06-15", LocalDate(instant, time.UTC))
}
