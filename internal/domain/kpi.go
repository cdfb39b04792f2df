package domain

// KPISet agrega as métricas escalares do dashboard. Recalculado por inteiro a
// cada invocação a partir do snapshot atual; nunca mutado parcialmente.
// Percentuais são mantidos sem arredondamento — a camada de exibição decide a
// precisão.
type KPISet struct {
	TotalRevenue          float64 `json:"total_revenue"`
	TotalOrders           int     `json:"total_orders"`
	TotalClients          int     `json:"total_clients"`
	AvgOrderValue         float64 `json:"avg_order_value"`
	ConversionRatePercent float64 `json:"conversion_rate_percent"`
	ActiveClients         int     `json:"active_clients"`
	CompletedOrders       int     `json:"completed_orders"`
	PendingOrders         int     `json:"pending_orders"`
}
