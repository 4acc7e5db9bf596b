package domain

import "time"

// Supplier запись таблицы учетных данных поставщиков
type Supplier struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
