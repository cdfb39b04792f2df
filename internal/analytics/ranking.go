package analytics

import (
	"sort"

	"github.com/nexgestao/analytics-api/internal/domain"
)

// MaxRankingEntries limita o ranking aos maiores clientes.
const MaxRankingEntries = 5

// TopClientsByRevenue agrega receita e contagem de pedidos concluídos por
// cliente e retorna até MaxRankingEntries posições em ordem decrescente de
// receita. O nome de exibição é resolvido na coleção de clientes; referências
// não resolvidas recebem o rótulo fixo de cliente desconhecido. Empates de
// receita preservam a ordem do primeiro pedido encontrado na entrada
// (ordenação estável).
func TopClientsByRevenue(orders []domain.Order, clients []domain.Client) []domain.ClientRankingItem {
	namesByID := make(map[string]string, len(clients))
	for _, client := range clients {
		namesByID[client.ID] = client.Name
	}

	indexByClient := make(map[string]int)
	entries := make([]domain.ClientRankingItem, 0)

	for _, order := range orders {
		if order.Status != domain.OrderStatusCompleted || order.ClientID == nil {
			continue
		}

		clientID := *order.ClientID
		idx, exists := indexByClient[clientID]
		if !exists {
			name, found := namesByID[clientID]
			if !found {
				name = domain.UnknownClientName
			}

			entries = append(entries, domain.ClientRankingItem{
				ClientID: clientID,
				Name:     name,
			})
			idx = len(entries) - 1
			indexByClient[clientID] = idx
		}

		entries[idx].TotalRevenue += order.UsableAmount()
		entries[idx].OrderCount++
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalRevenue > entries[j].TotalRevenue
	})

	if len(entries) > MaxRankingEntries {
		entries = entries[:MaxRankingEntries]
	}

	return entries
}
