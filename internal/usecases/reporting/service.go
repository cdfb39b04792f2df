// Package reporting liga os repositórios ao pipeline puro de agregação: cada
// operação carrega um snapshot da conta e delega o cálculo ao pacote
// analytics. Todo estado vive no snapshot passado por argumento — o serviço
// não guarda cache nem resultados entre chamadas.
package reporting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nexgestao/analytics-api/infrastructure/repository"
	"github.com/nexgestao/analytics-api/internal/analytics"
	"github.com/nexgestao/analytics-api/internal/domain"
	"github.com/nexgestao/analytics-api/pkg/utils"
)

type Service struct {
	orderRepo    repository.OrderRepository
	clientRepo   repository.ClientRepository
	meetingRepo  repository.MeetingRepository
	campaignRepo repository.CampaignRepository
}

func NewService(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	meetingRepo repository.MeetingRepository,
	campaignRepo repository.CampaignRepository,
) Reporter {
	return &Service{
		orderRepo:    orderRepo,
		clientRepo:   clientRepo,
		meetingRepo:  meetingRepo,
		campaignRepo: campaignRepo,
	}
}

// LoadSnapshot busca as quatro coleções da conta em paralelo e devolve uma
// foto consistente para uma passada de cálculo.
func (s *Service) LoadSnapshot(accountID string) (*domain.Snapshot, error) {
	var (
		snapshot domain.Snapshot

		ordersErr    error
		clientsErr   error
		meetingsErr  error
		campaignsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		snapshot.Orders, ordersErr = s.orderRepo.ListOrders(accountID)
	}()

	go func() {
		defer wg.Done()
		snapshot.Clients, clientsErr = s.clientRepo.ListClients(accountID)
	}()

	go func() {
		defer wg.Done()
		snapshot.Meetings, meetingsErr = s.meetingRepo.ListMeetings(accountID)
	}()

	go func() {
		defer wg.Done()
		snapshot.Campaigns, campaignsErr = s.campaignRepo.ListCampaigns(accountID)
	}()

	wg.Wait()

	for _, err := range []error{ordersErr, clientsErr, meetingsErr, campaignsErr} {
		if err != nil {
			logrus.WithError(err).WithField("account_id", accountID).
				Error("Erro ao carregar snapshot da conta")
			return nil, err
		}
	}

	return &snapshot, nil
}

func (s *Service) GetDashboardKPIs(accountID string) (*domain.KPISet, error) {
	snapshot, err := s.LoadSnapshot(accountID)
	if err != nil {
		return nil, err
	}

	kpis := analytics.ComputeKPIs(snapshot.Orders, snapshot.Clients)
	return &kpis, nil
}

func (s *Service) GetRevenueSeries(accountID string) (domain.ChartSeries, error) {
	orders, err := s.orderRepo.ListOrders(accountID)
	if err != nil {
		return nil, err
	}

	return analytics.MonthlyRevenueSeries(orders), nil
}

func (s *Service) GetStatusDistribution(accountID string) (domain.ChartSeries, error) {
	orders, err := s.orderRepo.ListOrders(accountID)
	if err != nil {
		return nil, err
	}

	return analytics.StatusDistribution(orders), nil
}

func (s *Service) GetClientRanking(accountID string) (*domain.ClientRankingResponse, error) {
	var (
		orders  []domain.Order
		clients []domain.Client

		ordersErr  error
		clientsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		orders, ordersErr = s.orderRepo.ListOrders(accountID)
	}()

	go func() {
		defer wg.Done()
		clients, clientsErr = s.clientRepo.ListClients(accountID)
	}()

	wg.Wait()

	if ordersErr != nil {
		return nil, ordersErr
	}
	if clientsErr != nil {
		return nil, clientsErr
	}

	return &domain.ClientRankingResponse{
		Ranking:    analytics.TopClientsByRevenue(orders, clients),
		LastUpdate: time.Now(),
	}, nil
}

// GetRevenueForecast calcula a taxa de crescimento da receita do mês corrente
// em relação ao mês anterior e a classifica pela tabela fixa de regras.
func (s *Service) GetRevenueForecast(accountID string) (*domain.RevenueForecast, error) {
	orders, err := s.orderRepo.ListOrders(accountID)
	if err != nil {
		return nil, err
	}

	growth := monthOverMonthGrowth(orders, time.Now())
	forecast := analytics.ClassifyGrowth(growth)
	forecast.GrowthRatePercent = utils.RoundWithTwoDecimalPlace(forecast.GrowthRatePercent)

	return &forecast, nil
}

func (s *Service) GetInsights(accountID string, now time.Time) ([]domain.Insight, error) {
	snapshot, err := s.LoadSnapshot(accountID)
	if err != nil {
		return nil, err
	}

	return analytics.EvaluateInsights(*snapshot, now), nil
}

// monthOverMonthGrowth calcula o crescimento percentual da receita concluída
// do mês de referência sobre o mês anterior. Divisão protegida: sem receita
// no mês anterior, o crescimento é 100 quando há receita no mês atual e 0
// caso contrário.
func monthOverMonthGrowth(orders []domain.Order, reference time.Time) float64 {
	currentMonth := utils.FirstDayOfMonth(reference)
	previousMonth := utils.FirstDayOfMonth(currentMonth.AddDate(0, 0, -1))

	sameMonth := func(date, month time.Time) bool {
		return date.Year() == month.Year() && date.Month() == month.Month()
	}

	var current, previous float64
	for _, order := range orders {
		if order.Status != domain.OrderStatusCompleted {
			continue
		}

		switch {
		case sameMonth(order.CreatedAt, currentMonth):
			current += order.UsableAmount()
		case sameMonth(order.CreatedAt, previousMonth):
			previous += order.UsableAmount()
		}
	}

	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}

	return (current - previous) / previous * 100
}
