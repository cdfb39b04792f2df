package domain

import "time"

// Client representa um cliente da conta. O ID é único dentro de um snapshot;
// um pedido pode referenciar um cliente fora do snapshot fornecido.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UnknownClientName é o nome exibido quando o cliente referenciado por um
// pedido não está presente no snapshot.
const UnknownClientName = "Cliente desconhecido"
