package reporting

import (
	"time"

	"github.com/nexgestao/analytics-api/internal/domain"
)

// Reporter define as operações de relatório do dashboard para uma conta.
type Reporter interface {
	// LoadSnapshot carrega uma foto consistente das coleções da conta.
	LoadSnapshot(accountID string) (*domain.Snapshot, error)

	// GetDashboardKPIs calcula o conjunto de KPIs do snapshot atual.
	GetDashboardKPIs(accountID string) (*domain.KPISet, error)

	// GetRevenueSeries retorna a série mensal de receita dos pedidos concluídos.
	GetRevenueSeries(accountID string) (domain.ChartSeries, error)

	// GetStatusDistribution retorna a distribuição de pedidos por status.
	GetStatusDistribution(accountID string) (domain.ChartSeries, error)

	// GetClientRanking retorna o ranking de clientes por receita.
	GetClientRanking(accountID string) (*domain.ClientRankingResponse, error)

	// GetRevenueForecast classifica o crescimento mês a mês da receita.
	GetRevenueForecast(accountID string) (*domain.RevenueForecast, error)

	// GetInsights avalia as regras de negócio sobre o snapshot atual.
	GetInsights(accountID string, now time.Time) ([]domain.Insight, error)
}
