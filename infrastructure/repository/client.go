package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nexgestao/analytics-api/infrastructure/database/postgres"
	"github.com/nexgestao/analytics-api/internal/domain"
)

const clientsTable = "clients c"

type ClientRepository interface {
	ListClients(accountID string) ([]domain.Client, error)
	ListAccountIDs() ([]string, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) ListClients(accountID string) ([]domain.Client, error) {
	query, args, err := squirrel.
		Select("c.id", "c.name", "c.created_at").
		From(clientsTable).
		Where(squirrel.Eq{"c.account_id": accountID}).
		OrderBy("c.created_at ASC").
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

	clients := make([]domain.Client, 0)
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(&client.ID, &client.Name, &client.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return clients, nil
}

func (r *clientRepository) ListAccountIDs() ([]string, error) {
	query, _, err := squirrel.
		Select("DISTINCT c.account_id").
		From(clientsTable).
		OrderBy("c.account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accountIDs := make([]string, 0)
	for rows.Next() {
		var accountID string
		if err := rows.Scan(&accountID); err != nil {
			return nil, fmt.Errorf("erro ao escanear conta: %w", err)
		}
		accountIDs = append(accountIDs, accountID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return accountIDs, nil
}
