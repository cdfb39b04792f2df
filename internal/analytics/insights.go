package analytics

import (
	"fmt"
	"time"

	"github.com/nexgestao/analytics-api/internal/domain"
)

// IDs fixos das regras de insight. O ID identifica a regra, não a instância:
// cada avaliação emite no máximo um insight por regra.
const (
	InsightUpcomingMeeting   = "upcoming_meeting"
	InsightPendingOrders     = "pending_orders"
	InsightInactiveClients   = "inactive_clients"
	InsightNoActiveCampaigns = "no_active_campaigns"
)

const (
	pendingOrdersThreshold = 5
	minClientsForCampaigns = 10
	upcomingMeetingWindow  = 24 * time.Hour
)

// EvaluateInsights avalia o conjunto fixo de regras de negócio sobre o
// snapshot e retorna os insights disparados, na ordem fixa das regras.
// Nenhuma regra depende do resultado de outra. O instante de referência é um
// argumento explícito para manter a avaliação determinística e testável.
func EvaluateInsights(snapshot domain.Snapshot, now time.Time) []domain.Insight {
	insights := make([]domain.Insight, 0, 4)

	if insight := evalUpcomingMeeting(snapshot.Meetings, now); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := evalPendingOrders(snapshot.Orders, now); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := evalInactiveClients(snapshot.Orders, snapshot.Clients, now); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := evalNoActiveCampaigns(snapshot.Campaigns, snapshot.Clients, now); insight != nil {
		insights = append(insights, *insight)
	}

	return insights
}

// evalUpcomingMeeting dispara quando alguma reunião começa estritamente entre
// agora e as próximas 24 horas.
func evalUpcomingMeeting(meetings []domain.Meeting, now time.Time) *domain.Insight {
	limit := now.Add(upcomingMeetingWindow)

	for _, meeting := range meetings {
		if meeting.StartAt.After(now) && meeting.StartAt.Before(limit) {
			return &domain.Insight{
				ID:       InsightUpcomingMeeting,
				Kind:     domain.InsightKindWarning,
				Title:    "Reunião nas próximas 24 horas",
				Message:  "Você tem pelo menos uma reunião agendada para as próximas 24 horas.",
				Priority: domain.InsightPriorityHigh,
				Action: &domain.InsightAction{
					Label:  "Ver agenda",
					Target: "/meetings",
				},
				GeneratedAt: now,
			}
		}
	}

	return nil
}

// evalPendingOrders dispara quando há mais pedidos pendentes do que o limite.
func evalPendingOrders(orders []domain.Order, now time.Time) *domain.Insight {
	pending := 0
	for _, order := range orders {
		if order.Status == domain.OrderStatusPending {
			pending++
		}
	}

	if pending <= pendingOrdersThreshold {
		return nil
	}

	return &domain.Insight{
		ID:       InsightPendingOrders,
		Kind:     domain.InsightKindWarning,
		Title:    "Pedidos pendentes acumulando",
		Message:  fmt.Sprintf("Existem %d pedidos pendentes aguardando andamento.", pending),
		Priority: domain.InsightPriorityMedium,
		Action: &domain.InsightAction{
			Label:  "Ver pedidos",
			Target: "/orders?status=pending",
		},
		GeneratedAt: now,
	}
}

// evalInactiveClients só avalia quando ambas as coleções são não vazias, e
// conta clientes do snapshot sem nenhum pedido associado.
func evalInactiveClients(orders []domain.Order, clients []domain.Client, now time.Time) *domain.Insight {
	if len(orders) == 0 || len(clients) == 0 {
		return nil
	}

	clientsWithOrders := make(map[string]struct{})
	for _, order := range orders {
		if order.ClientID != nil {
			clientsWithOrders[*order.ClientID] = struct{}{}
		}
	}

	inactive := 0
	for _, client := range clients {
		if _, has := clientsWithOrders[client.ID]; !has {
			inactive++
		}
	}

	if inactive == 0 {
		return nil
	}

	return &domain.Insight{
		ID:       InsightInactiveClients,
		Kind:     domain.InsightKindRecommendation,
		Title:    "Clientes sem pedidos",
		Message:  fmt.Sprintf("%d clientes cadastrados ainda não fizeram nenhum pedido. Considere uma ação de reengajamento.", inactive),
		Priority: domain.InsightPriorityLow,
		Action: &domain.InsightAction{
			Label:  "Ver clientes",
			Target: "/clients",
		},
		GeneratedAt: now,
	}
}

// evalNoActiveCampaigns dispara quando não há campanha ativa e a base de
// clientes já é grande o suficiente para justificar uma.
func evalNoActiveCampaigns(campaigns []domain.Campaign, clients []domain.Client, now time.Time) *domain.Insight {
	active := 0
	for _, campaign := range campaigns {
		if campaign.Status == domain.CampaignStatusActive {
			active++
		}
	}

	if active > 0 || len(clients) <= minClientsForCampaigns {
		return nil
	}

	return &domain.Insight{
		ID:       InsightNoActiveCampaigns,
		Kind:     domain.InsightKindRecommendation,
		Title:    "Nenhuma campanha ativa",
		Message:  "Sua base de clientes já é relevante e não há nenhuma campanha de marketing ativa no momento.",
		Priority: domain.InsightPriorityMedium,
		Action: &domain.InsightAction{
			Label:  "Criar campanha",
			Target: "/campaigns/new",
		},
		GeneratedAt: now,
	}
}
