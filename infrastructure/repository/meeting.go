package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nexgestao/analytics-api/infrastructure/database/postgres"
	"github.com/nexgestao/analytics-api/internal/domain"
)

const meetingsTable = "meetings m"

type MeetingRepository interface {
	ListMeetings(accountID string) ([]domain.Meeting, error)
}

type meetingRepository struct {
	conn *postgres.Connection
}

func NewMeetingRepository(conn *postgres.Connection) MeetingRepository {
	return &meetingRepository{
		conn: conn,
	}
}

func (r *meetingRepository) ListMeetings(accountID string) ([]domain.Meeting, error) {
	query, args, err := squirrel.
		Select("m.id", "m.start_at", "m.status").
		From(meetingsTable).
		Where(squirrel.Eq{"m.account_id": accountID}).
		OrderBy("m.start_at ASC").
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

	meetings := make([]domain.Meeting, 0)
	for rows.Next() {
		var meeting domain.Meeting
		if err := rows.Scan(&meeting.ID, &meeting.StartAt, &meeting.Status); err != nil {
			return nil, fmt.Errorf("erro ao escanear reunião: %w", err)
		}
		meetings = append(meetings, meeting)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return meetings, nil
}
