package domain

import "time"

type Meeting struct {
	ID      string    `json:"id"`
	StartAt time.Time `json:"start_at"`
	Status  string    `json:"status"`
}
