package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date    string            `json:"date"`
	Units   int               `json:"units"`
	Options []AvailableOption `json:"options"`
}

// AvailableOption один бронируемый вариант
type AvailableOption struct {
	StartTimes      []string `json:"startTimes"` // 1 слот или 2 смежных
	DurationMinutes int      `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	options := make([]AvailableOption, len(resp.Options))
	for i, opt := range resp.Options {
		startTimes := make([]string, len(opt.StartTimes))
		for j, slot := range opt.StartTimes {
			startTimes[j] = slot.String()
		}
		options[i] = AvailableOption{
			StartTimes:      startTimes,
			DurationMinutes: opt.DurationMinutes,
		}
	}

	return &AvailableSlotsResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Units:   resp.Units,
		Options: options,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(supplierID int64, dateStr string, units int) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		SupplierID: supplierID,
		Date:       date,
		Units:      units,
	}, nil
}
