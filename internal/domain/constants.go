package domain

import "github.com/m04kA/SMC-DeliveryBooking/pkg/types"

// Business rule constants
const (
	// SlotDurationMinutes длительность базового слота
	SlotDurationMinutes = 30

	// HighVolumeUnitThreshold с этого количества паллет требуется сдвоенный часовой слот
	HighVolumeUnitThreshold = 5
)

// Working hours (fixed for the single delivery gate, not configurable per deployment)
const (
	WeekdayOpenTime  types.TimeString = "09:00"
	WeekdayCloseTime types.TimeString = "16:00"

	SaturdayOpenTime  types.TimeString = "09:00"
	SaturdayCloseTime types.TimeString = "12:00"
)

// Storage format constants
const (
	// DateFormat формат даты "YYYY-MM-DD"
	DateFormat = "2006-01-02"

	// StoredTimeFormat формат времени слота в хранилище ("HH:MM:SS")
	StoredTimeFormat = "15:04:05"

	// StoredDateSuffix суффикс полуночи, с которым дата пишется в хранилище
	StoredDateSuffix = " 00:00:00"

	// OccupiedTimeSeparator разделитель слотов в поле occupied_time сдвоенного бронирования
	OccupiedTimeSeparator = ", "

	// OrderRefSeparator разделитель номеров заказов в одной записи
	OrderRefSeparator = ", "
)
