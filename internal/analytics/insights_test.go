package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nexgestao/analytics-api/internal/domain"
)

func TestEvaluateInsights(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	manyClients := make([]domain.Client, 0, 12)
	for i := 0; i < 12; i++ {
		manyClients = append(manyClients, domain.Client{ID: fmt.Sprintf("C%d", i), Name: fmt.Sprintf("Cliente %d", i)})
	}

	pendingOrders := func(n int) []domain.Order {
		orders := make([]domain.Order, 0, n)
		for i := 0; i < n; i++ {
			orders = append(orders, domain.Order{
				ID:        fmt.Sprintf("O%d", i),
				Status:    domain.OrderStatusPending,
				CreatedAt: now,
			})
		}
		return orders
	}

	tests := []struct {
		name        string
		snapshot    domain.Snapshot
		expectedIDs []string
		validate    func(t *testing.T, insights []domain.Insight)
	}{
		{
			name:        "Snapshot vazio não dispara nenhuma regra",
			snapshot:    domain.Snapshot{},
			expectedIDs: []string{},
		},
		{
			name: "Reunião dentro de 24h dispara com prioridade alta",
			snapshot: domain.Snapshot{
				Meetings: []domain.Meeting{
					{ID: "M1", StartAt: now.Add(3 * time.Hour), Status: "scheduled"},
				},
			},
			expectedIDs: []string{InsightUpcomingMeeting},
			validate: func(t *testing.T, insights []domain.Insight) {
				assert.Equal(t, domain.InsightPriorityHigh, insights[0].Priority)
				assert.Equal(t, domain.InsightKindWarning, insights[0].Kind)
				assert.Equal(t, "/meetings", insights[0].Action.Target)
				assert.Equal(t, now, insights[0].GeneratedAt)
			},
		},
		{
			name: "Reunião fora da janela ou no limite exato não dispara",
			snapshot: domain.Snapshot{
				Meetings: []domain.Meeting{
					{ID: "M1", StartAt: now, Status: "scheduled"},
					{ID: "M2", StartAt: now.Add(24 * time.Hour), Status: "scheduled"},
					{ID: "M3", StartAt: now.Add(-1 * time.Hour), Status: "scheduled"},
				},
			},
			expectedIDs: []string{},
		},
		{
			name:     "Seis pendentes sem reunião próxima dispara apenas a regra de pendentes",
			snapshot: domain.Snapshot{Orders: pendingOrders(6)},
			expectedIDs: []string{
				InsightPendingOrders,
			},
			validate: func(t *testing.T, insights []domain.Insight) {
				assert.Contains(t, insights[0].Message, "6")
				assert.Equal(t, domain.InsightPriorityMedium, insights[0].Priority)
			},
		},
		{
			name:        "Cinco pendentes não atinge o limite da regra",
			snapshot:    domain.Snapshot{Orders: pendingOrders(5)},
			expectedIDs: []string{},
		},
		{
			name: "Clientes sem pedidos disparam recomendação com a contagem literal",
			snapshot: domain.Snapshot{
				Orders: []domain.Order{
					{ID: "O1", ClientID: stringPtr("C1"), Status: domain.OrderStatusCompleted, CreatedAt: now},
				},
				Clients: []domain.Client{
					{ID: "C1", Name: "Loja A"},
					{ID: "C2", Name: "Loja B"},
					{ID: "C3", Name: "Loja C"},
				},
			},
			expectedIDs: []string{InsightInactiveClients},
			validate: func(t *testing.T, insights []domain.Insight) {
				assert.Contains(t, insights[0].Message, "2")
				assert.Equal(t, domain.InsightPriorityLow, insights[0].Priority)
				assert.Equal(t, domain.InsightKindRecommendation, insights[0].Kind)
			},
		},
		{
			name: "Regra de clientes inativos exige ambas as coleções não vazias",
			snapshot: domain.Snapshot{
				Clients: []domain.Client{{ID: "C1", Name: "Loja A"}},
			},
			expectedIDs: []string{},
		},
		{
			name: "Base grande sem campanha ativa dispara recomendação de campanha",
			snapshot: domain.Snapshot{
				Clients: manyClients,
				Campaigns: []domain.Campaign{
					{ID: "CP1", Status: domain.CampaignStatusCompleted},
					{ID: "CP2", Status: domain.CampaignStatusDraft},
				},
				Orders: pendingOrders(1),
			},
			expectedIDs: []string{InsightInactiveClients, InsightNoActiveCampaigns},
		},
		{
			name: "Campanha ativa suprime a regra de campanhas",
			snapshot: domain.Snapshot{
				Clients:   manyClients,
				Campaigns: []domain.Campaign{{ID: "CP1", Status: domain.CampaignStatusActive}},
			},
			expectedIDs: []string{},
		},
		{
			name: "Várias regras disparam na ordem fixa de avaliação",
			snapshot: domain.Snapshot{
				Orders:   pendingOrders(7),
				Clients:  manyClients,
				Meetings: []domain.Meeting{{ID: "M1", StartAt: now.Add(time.Hour)}},
			},
			expectedIDs: []string{
				InsightUpcomingMeeting,
				InsightPendingOrders,
				InsightInactiveClients,
				InsightNoActiveCampaigns,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights := EvaluateInsights(tt.snapshot, now)

			ids := make([]string, 0, len(insights))
			for _, insight := range insights {
				ids = append(ids, insight.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)

			if tt.validate != nil {
				tt.validate(t, insights)
			}
		})
	}
}

func TestEvaluateInsights_Idempotente(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	snapshot := domain.Snapshot{
		Orders:   []domain.Order{{ID: "O1", Status: domain.OrderStatusPending, CreatedAt: now}},
		Clients:  []domain.Client{{ID: "C1", Name: "Loja A"}},
		Meetings: []domain.Meeting{{ID: "M1", StartAt: now.Add(2 * time.Hour)}},
	}

	first := EvaluateInsights(snapshot, now)
	second := EvaluateInsights(snapshot, now)

	assert.Equal(t, first, second)
}
