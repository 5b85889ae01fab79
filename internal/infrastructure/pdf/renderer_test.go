package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/report"
)

func TestRender_ProducesPDF(t *testing.T) {
	closed := time.Date(2026, 6, 2, 15, 0, 0, 0, time.UTC)
	data := report.Data{
		Title:             "Relatório de Chamados",
		GeneratedAt:       time.Date(2026, 6, 3, 10, 30, 0, 0, time.UTC),
		FilterSummary:     []string{"Status: Fechado"},
		TotalTickets:      1,
		DistinctCompanies: 1,
		DistinctUsers:     1,
		CountsByStatus:    map[string]int{"Fechado": 1},
		Rows: []report.Row{
			{
				TicketID:       101,
				CreatedAt:      time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
				CompanyName:    "Acme Segurança Ltda",
				CNPJ:           "12.345.678/0001-95",
				Manufacturer:   "ControliD",
				EquipmentModel: "iDAccess Pro Prox",
				CreatorName:    "João Souza",
				Status:         "Fechado",
				ClosedAt:       &closed,
			},
		},
	}

	out, err := NewRenderer().Render(data)
	require.NoError(t, err)
	assert.True(t, len(out) > 500)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_EmptyResultStillRendersSummary(t *testing.T) {
	data := report.Data{
		Title:          "Relatório de Chamados",
		GeneratedAt:    time.Now(),
		FilterSummary:  []string{"Status: Fechado", "De: 01/01/2030"},
		CountsByStatus: map[string]int{},
	}

	out, err := NewRenderer().Render(data)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
