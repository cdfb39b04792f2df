package scheduler

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/nexgestao/analytics-api/infrastructure/repository/mocks"
	"github.com/nexgestao/analytics-api/internal/domain"
	"github.com/nexgestao/analytics-api/internal/usecases/reporting"
)

func newServiceWithMocks(ctrl *gomock.Controller) (
	*InsightRefreshService,
	*mocks.MockOrderRepository,
	*mocks.MockClientRepository,
	*mocks.MockMeetingRepository,
	*mocks.MockCampaignRepository,
) {
	orderRepo := mocks.NewMockOrderRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)
	meetingRepo := mocks.NewMockMeetingRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)

	reporter := reporting.NewService(orderRepo, clientRepo, meetingRepo, campaignRepo)

	service := &InsightRefreshService{
		reporter:       reporter,
		clientRepo:     clientRepo,
		cachedInsights: make(map[string][]domain.Insight),
		lastRefreshAt:  make(map[string]time.Time),
	}

	return service, orderRepo, clientRepo, meetingRepo, campaignRepo
}

func TestInsightRefreshService_RefreshInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, orderRepo, clientRepo, meetingRepo, campaignRepo := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().ListAccountIDs().Return([]string{"ACC001"}, nil)

	// Snapshot da conta: sete pedidos pendentes disparam o insight de backlog
	pendingOrders := make([]domain.Order, 0, 7)
	for i := 0; i < 7; i++ {
		pendingOrders = append(pendingOrders, domain.Order{
			ID:     fmt.Sprintf("ORD%03d", i+1),
			Status: domain.OrderStatusPending,
		})
	}

	orderRepo.EXPECT().ListOrders("ACC001").Return(pendingOrders, nil)
	clientRepo.EXPECT().ListClients("ACC001").Return([]domain.Client{}, nil)
	meetingRepo.EXPECT().ListMeetings("ACC001").Return([]domain.Meeting{}, nil)
	campaignRepo.EXPECT().ListCampaigns("ACC001").Return([]domain.Campaign{}, nil)

	err := service.RefreshInsights()
	assert.NoError(t, err)

	insights, refreshedAt, ok := service.GetCachedInsights("ACC001")
	assert.True(t, ok)
	assert.False(t, refreshedAt.IsZero())

	ids := make([]string, 0, len(insights))
	for _, insight := range insights {
		ids = append(ids, insight.ID)
	}
	assert.Contains(t, ids, "pending_orders")

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.NotEmpty(t, status["last_run_id"])
	assert.NotEqual(t, time.Time{}, status["last_sync_completed_at"])
}

func TestInsightRefreshService_RefreshInsights_SemContas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, clientRepo, _, _ := newServiceWithMocks(ctrl)

	clientRepo.EXPECT().ListAccountIDs().Return([]string{}, nil)

	err := service.RefreshInsights()
	assert.NoError(t, err)

	_, _, ok := service.GetCachedInsights("ACC001")
	assert.False(t, ok)
}

func TestInsightRefreshService_RefreshInsights_ErroAoListarContas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, clientRepo, _, _ := newServiceWithMocks(ctrl)

	expectedErr := errors.New("erro de banco")
	clientRepo.EXPECT().ListAccountIDs().Return(nil, expectedErr)

	err := service.RefreshInsights()
	assert.ErrorIs(t, err, expectedErr)
}

func TestInsightRefreshService_RefreshInsights_JaEmExecucao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newServiceWithMocks(ctrl)
	service.syncRunning = true

	err := service.RefreshInsights()
	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_running"])
	assert.Equal(t, time.Time{}, status["last_sync_started_at"])
}

func TestInsightRefreshService_RefreshAccounts_ErroEmUmaConta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, orderRepo, clientRepo, meetingRepo, campaignRepo := newServiceWithMocks(ctrl)

	// ACC001 falha no snapshot; ACC002 é processada normalmente
	orderRepo.EXPECT().ListOrders("ACC001").Return(nil, errors.New("erro de banco"))
	clientRepo.EXPECT().ListClients("ACC001").Return([]domain.Client{}, nil)
	meetingRepo.EXPECT().ListMeetings("ACC001").Return([]domain.Meeting{}, nil)
	campaignRepo.EXPECT().ListCampaigns("ACC001").Return([]domain.Campaign{}, nil)

	orderRepo.EXPECT().ListOrders("ACC002").Return([]domain.Order{}, nil)
	clientRepo.EXPECT().ListClients("ACC002").Return([]domain.Client{}, nil)
	meetingRepo.EXPECT().ListMeetings("ACC002").Return([]domain.Meeting{}, nil)
	campaignRepo.EXPECT().ListCampaigns("ACC002").Return([]domain.Campaign{}, nil)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	service.refreshAccounts([]string{"ACC001", "ACC002"}, now)

	_, _, ok := service.GetCachedInsights("ACC001")
	assert.False(t, ok)

	insights, refreshedAt, ok := service.GetCachedInsights("ACC002")
	assert.True(t, ok)
	assert.Equal(t, now, refreshedAt)

	// Conta vazia sem campanhas ainda não dispara a regra de campanhas (menos de 10 clientes)
	for _, insight := range insights {
		assert.NotEqual(t, "no_active_campaigns", insight.ID)
	}
}
