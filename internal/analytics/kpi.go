// Package analytics implementa o pipeline de agregação de relatórios: funções
// puras e determinísticas que transformam um snapshot de registros do domínio
// em artefatos derivados (KPIs, séries, distribuições, rankings, previsões e
// insights). Nenhuma função lê estado ambiente nem faz I/O; chamadas repetidas
// com o mesmo snapshot produzem resultados idênticos.
package analytics

import "github.com/nexgestao/analytics-api/internal/domain"

// ComputeKPIs calcula o conjunto completo de métricas escalares a partir das
// coleções de pedidos e clientes de uma mesma conta. Coleções vazias produzem
// um KPISet zerado, nunca erro; toda divisão é protegida contra denominador
// zero.
func ComputeKPIs(orders []domain.Order, clients []domain.Client) domain.KPISet {
	kpis := domain.KPISet{
		TotalOrders:  len(orders),
		TotalClients: len(clients),
	}

	activeClients := make(map[string]struct{})
	for _, order := range orders {
		switch order.Status {
		case domain.OrderStatusCompleted:
			kpis.CompletedOrders++
			kpis.TotalRevenue += order.UsableAmount()
		case domain.OrderStatusPending:
			kpis.PendingOrders++
		}

		// Cliente ativo é qualquer cliente referenciado por um pedido,
		// independentemente do status do pedido.
		if order.ClientID != nil {
			activeClients[*order.ClientID] = struct{}{}
		}
	}
	kpis.ActiveClients = len(activeClients)

	if kpis.TotalOrders > 0 {
		kpis.AvgOrderValue = kpis.TotalRevenue / float64(kpis.TotalOrders)
		kpis.ConversionRatePercent = float64(kpis.CompletedOrders) / float64(kpis.TotalOrders) * 100
	}

	return kpis
}
