// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type OrderStatus string

const (
	OrderStatusDraft      OrderStatus = "draft"
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order representa um pedido do cliente. Amount é nulo quando o pedido ainda
// não foi precificado; só tem significado financeiro quando o status é completed.
type Order struct {
	ID        string      `json:"id"`
	ClientID  *string     `json:"client_id"`
	Amount    *float64    `json:"amount"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	DueAt     *time.Time  `json:"due_at"`
}

// UsableAmount retorna o valor do pedido tratando nulos e valores corrompidos
// (negativos) como zero, nunca como erro.
func (o Order) UsableAmount() float64 {
	if o.Amount == nil || *o.Amount < 0 {
		return 0
	}
	return *o.Amount
}
