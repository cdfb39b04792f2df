package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/nexgestao/analytics-api/infrastructure/repository/mocks"
	"github.com/nexgestao/analytics-api/internal/analytics"
	"github.com/nexgestao/analytics-api/internal/domain"
)

func floatPtr(f float64) *float64 { return &f }

func stringPtr(s string) *string { return &s }

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *mocks.MockOrderRepository, *mocks.MockClientRepository, *mocks.MockMeetingRepository, *mocks.MockCampaignRepository) {
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	meetingRepo := mocks.NewMockMeetingRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		orderRepo:    orderRepo,
		clientRepo:   clientRepo,
		meetingRepo:  meetingRepo,
		campaignRepo: campaignRepo,
	}

	return service, orderRepo, clientRepo, meetingRepo, campaignRepo
}

func TestService_GetDashboardKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, orderRepo, clientRepo, meetingRepo, campaignRepo := newServiceWithMocks(ctrl)

	baseDate := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{ID: "O1", ClientID: stringPtr("C1"), Amount: floatPtr(1000), Status: domain.OrderStatusCompleted, CreatedAt: baseDate},
		{ID: "O2", ClientID: stringPtr("C2"), Amount: floatPtr(500), Status: domain.OrderStatusPending, CreatedAt: baseDate},
	}
	clients := []domain.Client{{ID: "C1", Name: "Loja A"}, {ID: "C2", Name: "Loja B"}}

	orderRepo.EXPECT().ListOrders("ACC001").Return(orders, nil)
	clientRepo.EXPECT().ListClients("ACC001").Return(clients, nil)
	meetingRepo.EXPECT().ListMeetings("ACC001").Return([]domain.Meeting{}, nil)
	campaignRepo.EXPECT().ListCampaigns("ACC001").Return([]domain.Campaign{}, nil)

	kpis, err := service.GetDashboardKPIs("ACC001")

	assert.NoError(t, err)
	assert.Equal(t, 1000.0, kpis.TotalRevenue)
	assert.Equal(t, 2, kpis.TotalOrders)
	assert.Equal(t, 2, kpis.TotalClients)
	assert.Equal(t, 500.0, kpis.AvgOrderValue)
	assert.Equal(t, 2, kpis.ActiveClients)
}

func TestService_LoadSnapshot_PropagaErroDeRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, orderRepo, clientRepo, meetingRepo, campaignRepo := newServiceWithMocks(ctrl)

	repoErr := errors.New("conexão recusada")
	orderRepo.EXPECT().ListOrders("ACC001").Return(nil, repoErr)
	clientRepo.EXPECT().ListClients("ACC001").Return([]domain.Client{}, nil)
	meetingRepo.EXPECT().ListMeetings("ACC001").Return([]domain.Meeting{}, nil)
	campaignRepo.EXPECT().ListCampaigns("ACC001").Return([]domain.Campaign{}, nil)

	snapshot, err := service.LoadSnapshot("ACC001")

	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, repoErr)
}

func TestService_GetClientRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, orderRepo, clientRepo, _, _ := newServiceWithMocks(ctrl)

	baseDate := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	orderRepo.EXPECT().ListOrders("ACC001").Return([]domain.Order{
		{ID: "O1", ClientID: stringPtr("C1"), Amount: floatPtr(300), Status: domain.OrderStatusCompleted, CreatedAt: baseDate},
		{ID: "O2", ClientID: stringPtr("C2"), Amount: floatPtr(900), Status: domain.OrderStatusCompleted, CreatedAt: baseDate},
	}, nil)
	clientRepo.EXPECT().ListClients("ACC001").Return([]domain.Client{
		{ID: "C1", Name: "Loja A"},
		{ID: "C2", Name: "Loja B"},
	}, nil)

	response, err := service.GetClientRanking("ACC001")

	assert.NoError(t, err)
	assert.Len(t, response.Ranking, 2)
	assert.Equal(t, "C2", response.Ranking[0].ClientID)
	assert.Equal(t, "C1", response.Ranking[1].ClientID)
	assert.False(t, response.LastUpdate.IsZero())
}

func TestService_GetInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, orderRepo, clientRepo, meetingRepo, campaignRepo := newServiceWithMocks(ctrl)

	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	pending := make([]domain.Order, 0, 6)
	for i := 0; i < 6; i++ {
		pending = append(pending, domain.Order{Status: domain.OrderStatusPending, CreatedAt: now})
	}

	orderRepo.EXPECT().ListOrders("ACC001").Return(pending, nil)
	clientRepo.EXPECT().ListClients("ACC001").Return([]domain.Client{}, nil)
	meetingRepo.EXPECT().ListMeetings("ACC001").Return([]domain.Meeting{}, nil)
	campaignRepo.EXPECT().ListCampaigns("ACC001").Return([]domain.Campaign{}, nil)

	insights, err := service.GetInsights("ACC001", now)

	assert.NoError(t, err)
	assert.Len(t, insights, 1)
	assert.Equal(t, analytics.InsightPendingOrders, insights[0].ID)
	assert.Contains(t, insights[0].Message, "6")
}

func TestMonthOverMonthGrowth(t *testing.T) {
	reference := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	completed := func(amount float64, createdAt time.Time) domain.Order {
		return domain.Order{Amount: &amount, Status: domain.OrderStatusCompleted, CreatedAt: createdAt}
	}

	tests := []struct {
		name     string
		orders   []domain.Order
		expected float64
	}{
		{
			name:     "Sem receita em nenhum mês o crescimento é zero",
			orders:   nil,
			expected: 0,
		},
		{
			name: "Receita no mês atual sem histórico anterior vale 100",
			orders: []domain.Order{
				completed(500, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)),
			},
			expected: 100,
		},
		{
			name: "Crescimento calculado sobre o mês anterior",
			orders: []domain.Order{
				completed(1000, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
				completed(1200, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)),
			},
			expected: 20,
		},
		{
			name: "Queda de receita produz crescimento negativo",
			orders: []domain.Order{
				completed(1000, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
				completed(700, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)),
			},
			expected: -30,
		},
		{
			name: "Meses fora da janela são ignorados",
			orders: []domain.Order{
				completed(9999, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
				completed(1000, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
				completed(1100, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)),
			},
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, monthOverMonthGrowth(tt.orders, reference), 1e-9)
		})
	}
}
