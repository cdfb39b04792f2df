package domain

import "time"

// ClientRankingItem é uma posição do ranking de clientes por receita.
type ClientRankingItem struct {
	ClientID     string  `json:"client_id"`
	Name         string  `json:"name"`
	TotalRevenue float64 `json:"total_revenue"`
	OrderCount   int     `json:"order_count"`
}

type ClientRankingResponse struct {
	Ranking    []ClientRankingItem `json:"ranking"`
	LastUpdate time.Time           `json:"last_update"`
}
