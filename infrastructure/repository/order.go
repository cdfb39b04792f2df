// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/nexgestao/analytics-api/infrastructure/database/postgres"
	"github.com/nexgestao/analytics-api/internal/domain"
)

const ordersTable = "orders o"

type OrderRepository interface {
	ListOrders(accountID string) ([]domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// ListOrders retorna todos os pedidos da conta, em ordem de criação.
func (r *orderRepository) ListOrders(accountID string) ([]domain.Order, error) {
	query, args, err := squirrel.
		Select(
			"o.id",
			"o.client_id",
			"o.amount",
			"o.status",
			"o.created_at",
			"o.due_at",
		).
		From(ordersTable).
		Where(squirrel.Eq{"o.account_id": accountID}).
		OrderBy("o.created_at ASC").
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

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID,
			&order.ClientID,
			&order.Amount,
			&order.Status,
			&order.CreatedAt,
			&order.DueAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}

		// Valores negativos são coagidos a zero no núcleo de cálculo;
		// aqui apenas deixamos rastro do problema de qualidade de dados.
		if order.Amount != nil && *order.Amount < 0 {
			logrus.WithFields(logrus.Fields{
				"order_id": order.ID,
				"amount":   *order.Amount,
			}).Warn("Pedido com valor negativo carregado do banco")
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}
