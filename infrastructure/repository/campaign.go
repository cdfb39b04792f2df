package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nexgestao/analytics-api/infrastructure/database/postgres"
	"github.com/nexgestao/analytics-api/internal/domain"
)

const campaignsTable = "campaigns cp"

type CampaignRepository interface {
	ListCampaigns(accountID string) ([]domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) ListCampaigns(accountID string) ([]domain.Campaign, error) {
	query, args, err := squirrel.
		Select("cp.id", "cp.status").
		From(campaignsTable).
		Where(squirrel.Eq{"cp.account_id": accountID}).
		OrderBy("cp.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		var campaign domain.Campaign
		if err := rows.Scan(&campaign.ID, &campaign.Status); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}
