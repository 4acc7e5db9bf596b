package check_slot

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

// Request модель запроса оптимистичной проверки выбранного варианта
type Request struct {
	SupplierID int64              // ID поставщика (для логирования)
	Date       time.Time          // Дата поставки
	Units      int                // Количество паллет
	StartTimes []types.TimeString // Выбранные слоты: 1 для обычной, 2 смежных для крупной
}

// Response модель ответа успешной проверки
type Response struct {
	Date         time.Time          // Дата поставки
	StartTimes   []types.TimeString // Подтвержденные к выбору слоты
	OccupiedTime string             // Кодировка для хранилища ("HH:MM:SS[, HH:MM:SS]")
}
