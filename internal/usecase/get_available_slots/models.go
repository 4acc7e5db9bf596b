package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SupplierID int64     // ID поставщика (для логирования, не влияет на результат)
	Date       time.Time // Дата поставки (без времени)
	Units      int       // Количество паллет в поставке
}

// Response модель ответа со списком доступных вариантов
type Response struct {
	Date    time.Time // Дата, на которую запрашивались слоты
	Units   int       // Запрошенное количество паллет
	Options []Option  // Доступные варианты в порядке каталога
}

// Option один бронируемый вариант: одиночный получасовой слот или
// сдвоенный часовой (два смежных свободных слота)
type Option struct {
	StartTimes      []types.TimeString // 1 слот для обычной поставки, 2 для крупной
	DurationMinutes int                // 30 или 60
}
