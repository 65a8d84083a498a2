package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeLeadBatch(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		snap     *LeadListSnapshot
		batch    []*Lead
		validate func(t *testing.T, merged *LeadListSnapshot)
	}{
		{
			name: "Lead novo entra com status new e tipo pela heurística do telefone",
			snap: nil,
			batch: []*Lead{
				{ID: "L1", Name: "Maria", Phone: "+5511999990000", CreatedAt: now.Add(-time.Hour)},
				{ID: "L2", Name: "João", CreatedAt: now.Add(-2 * time.Hour)},
			},
			validate: func(t *testing.T, merged *LeadListSnapshot) {
				assert.Len(t, merged.Leads, 2)

				assert.Equal(t, "L1", merged.Leads[0].ID)
				assert.Equal(t, LeadStatusNew, merged.Leads[0].Status)
				assert.Equal(t, LeadTypeLead, merged.Leads[0].Type)

				assert.Equal(t, "L2", merged.Leads[1].ID)
				assert.Equal(t, LeadTypeMessage, merged.Leads[1].Type)
			},
		},
		{
			name: "Lead existente nunca tem o status rebaixado pela mescla",
			snap: &LeadListSnapshot{
				ProjectID: "P1",
				Leads: []*Lead{
					{ID: "L1", Name: "Maria", Status: LeadStatusDone, Type: LeadTypeLead, CreatedAt: now.Add(-24 * time.Hour)},
				},
			},
			batch: []*Lead{
				{ID: "L1", Name: "Maria Silva", Phone: "+5511888880000", CreatedAt: now.Add(-24 * time.Hour)},
			},
			validate: func(t *testing.T, merged *LeadListSnapshot) {
				assert.Len(t, merged.Leads, 1)
				assert.Equal(t, LeadStatusDone, merged.Leads[0].Status)
				assert.Equal(t, "Maria Silva", merged.Leads[0].Name)
				assert.Equal(t, "+5511888880000", merged.Leads[0].Phone)
			},
		},
		{
			name: "Ordenação por CreatedAt decrescente com desempate pelo id",
			snap: nil,
			batch: []*Lead{
				{ID: "L3", CreatedAt: now.Add(-3 * time.Hour)},
				{ID: "L1", CreatedAt: now.Add(-time.Hour)},
				{ID: "L2", CreatedAt: now.Add(-time.Hour)},
			},
			validate: func(t *testing.T, merged *LeadListSnapshot) {
				assert.Equal(t, "L1", merged.Leads[0].ID)
				assert.Equal(t, "L2", merged.Leads[1].ID)
				assert.Equal(t, "L3", merged.Leads[2].ID)
			},
		},
		{
			name: "Lead sem id é ignorado",
			snap: nil,
			batch: []*Lead{
				{ID: "", Name: "Anônimo", CreatedAt: now},
				nil,
				{ID: "L1", Name: "Maria", CreatedAt: now},
			},
			validate: func(t *testing.T, merged *LeadListSnapshot) {
				assert.Len(t, merged.Leads, 1)
				assert.Equal(t, "L1", merged.Leads[0].ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := MergeLeadBatch(tt.snap, "P1", tt.batch, time.UTC, now)

			assert.Equal(t, "P1", merged.ProjectID)
			assert.Equal(t, len(merged.Leads), merged.Stats.Total)
			tt.validate(t, merged)
		})
	}
}

func TestMergeLeadBatchIdempotente(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	batch := []*Lead{
		{ID: "L1", Name: "Maria", Phone: "+5511999990000", CreatedAt: now.Add(-time.Hour)},
		{ID: "L2", Name: "João", CreatedAt: now.Add(-2 * time.Hour)},
	}

	first := MergeLeadBatch(nil, "P1", batch, time.UTC, now)
	second := MergeLeadBatch(first, "P1", batch, time.UTC, now)

	assert.Equal(t, first.Stats, second.Stats)
	assert.Equal(t, len(first.Leads), len(second.Leads))
	for i := range first.Leads {
		assert.Equal(t, *first.Leads[i], *second.Leads[i])
	}
}

func TestComputeLeadStats(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	// 01:00 UTC do dia 15 ainda é dia 14 em São Paulo
	now := time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC)

	leads := []*Lead{
		// 20:30 locais do dia 14: conta como hoje
		{ID: "L1", CreatedAt: time.Date(2024, 6, 14, 23, 30, 0, 0, time.UTC)},
		// dia 15 em UTC mas ainda dia 14 local: conta como hoje
		{ID: "L2", CreatedAt: time.Date(2024, 6, 15, 0, 30, 0, 0, time.UTC)},
		// dia 13 local: não conta
		{ID: "L3", CreatedAt: time.Date(2024, 6, 13, 12, 0, 0, 0, time.UTC)},
	}

	stats := ComputeLeadStats(leads, saoPaulo, now)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Today)
}

func TestValidLeadStatus(t *testing.T) {
	assert.True(t, ValidLeadStatus(LeadStatusNew))
	assert.True(t, ValidLeadStatus(LeadStatusProcessing))
	assert.True(t, ValidLeadStatus(LeadStatusDone))
	assert.False(t, ValidLeadStatus(LeadStatus("archived")))
}
