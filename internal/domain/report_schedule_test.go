package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportModePeriods(t *testing.T) {
	assert.Equal(t, []PeriodKey{PeriodToday, PeriodYesterday}, ReportModeShort.Periods())
	assert.Equal(t, []PeriodKey{PeriodToday, PeriodYesterday, PeriodWeek, PeriodMonth}, ReportModeFull.Periods())

	// Modo desconhecido cai para o conjunto curto
	assert.Equal(t, []PeriodKey{PeriodToday, PeriodYesterday}, ReportMode("extended").Periods())
}

func TestScheduleStateSlotStamp(t *testing.T) {
	state := &ScheduleState{ProjectID: "P1"}

	assert.False(t, state.SlotDispatchedOn("09:00", "2024-06-15"))

	state.MarkSlotDispatched("09:00", "2024-06-15")

	assert.True(t, state.SlotDispatchedOn("09:00", "2024-06-15"))
	// O carimbo vale para a data local, não para sempre
	assert.False(t, state.SlotDispatchedOn("09:00", "2024-06-16"))
	assert.False(t, state.SlotDispatchedOn("18:00", "2024-06-15"))

	var nilState *ScheduleState
	assert.False(t, nilState.SlotDispatchedOn("09:00", "2024-06-15"))
}
