package create_booking

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	SupplierID    int64              // ID поставщика (из токена)
	SupplierName  string             // Имя поставщика (из токена)
	SupplierEmail string             // Email для подтверждения (из токена)
	Date          time.Time          // Дата поставки (без времени)
	Units         int                // Количество паллет
	StartTimes    []types.TimeString // Выбранные слоты: 1 или 2 смежных
	OrderRefs     []string           // Номера заказов поставки (минимум один)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64              // ID записи в хранилище
	Code         string             // Публичный код бронирования
	Date         string             // Дата в формате хранилища
	OccupiedTime string             // Кодировка слотов ("HH:MM:SS[, HH:MM:SS]")
	StartTimes   []types.TimeString // Каноничные слоты
	Units        int                // Количество паллет
	OrderRefs    string             // Номера заказов через ", "
	CreatedAt    time.Time          // Время создания записи
}
