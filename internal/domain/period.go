package domain

import (
	"fmt"
	"time"
)

// PeriodKey identifica um período lógico de relatório.
type PeriodKey string

const (
	PeriodToday     PeriodKey = "today"
	PeriodYesterday PeriodKey = "yesterday"
	PeriodWeek      PeriodKey = "week"
	PeriodMonth     PeriodKey = "month"
	PeriodCustom    PeriodKey = "custom"
)

// DateRange representa um intervalo de datas de calendário (inclusivo).
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ResolvedPeriod é o resultado da resolução de um período lógico: as datas
// de calendário locais do projeto e os instantes UTC correspondentes.
// ToUTC é o limite superior exclusivo (meia-noite local do dia seguinte a To).
type ResolvedPeriod struct {
	Key     PeriodKey
	Period  DateRange
	FromUTC time.Time
	ToUTC   time.Time
}

// ResolvePeriod converte uma chave de período e um fuso IANA em um intervalo
// concreto. Todos os limites são calculados primeiro no calendário local do
// projeto (meia-noite a meia-noite) e só então convertidos para UTC.
//
// "yesterday" é o dia de calendário local imediatamente anterior a "today"
// no instante de avaliação, independente da hora do dia. "week" são os 7
// dias locais terminando em ontem; "month" são os 30 dias locais terminando
// em ontem.
func ResolvePeriod(key PeriodKey, timezone string, now time.Time, custom *DateRange) (*ResolvedPeriod, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, &InvalidPeriodError{Reason: fmt.Sprintf("unknown timezone %q", timezone)}
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	yesterday := today.AddDate(0, 0, -1)

	var from, to time.Time

	switch key {
	case PeriodToday:
		from, to = today, today
	case PeriodYesterday:
		from, to = yesterday, yesterday
	case PeriodWeek:
		from, to = yesterday.AddDate(0, 0, -6), yesterday
	case PeriodMonth:
		from, to = yesterday.AddDate(0, 0, -29), yesterday
	case PeriodCustom:
		if custom == nil || custom.From.IsZero() || custom.To.IsZero() {
			return nil, &InvalidPeriodError{Reason: "custom period requires both from and to"}
		}
		if custom.From.After(custom.To) {
			return nil, &InvalidPeriodError{Reason: "custom period has from after to"}
		}
		from = time.Date(custom.From.Year(), custom.From.Month(), custom.From.Day(), 0, 0, 0, 0, loc)
		to = time.Date(custom.To.Year(), custom.To.Month(), custom.To.Day(), 0, 0, 0, 0, loc)
	default:
		return nil, &InvalidPeriodError{Reason: fmt.Sprintf("unknown period key %q", key)}
	}

	return &ResolvedPeriod{
		Key:     key,
		Period:  DateRange{From: from, To: to},
		FromUTC: from.UTC(),
		ToUTC:   to.AddDate(0, 0, 1).UTC(),
	}, nil
}

// LocalDate devolve a data de calendário (formato time.DateOnly) de um
// instante no fuso informado.
func LocalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(time.DateOnly)
}
