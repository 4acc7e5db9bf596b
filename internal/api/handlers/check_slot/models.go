package check_slot

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	checkSlot "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/check_slot"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

// CheckSlotRequest HTTP request model
type CheckSlotRequest struct {
	Date       string   `json:"date"`       // "2025-10-15"
	Units      int      `json:"units"`      // количество паллет
	StartTimes []string `json:"startTimes"` // "HH:MM", 1 слот или 2 смежных
}

// CheckSlotResponse HTTP response model
type CheckSlotResponse struct {
	Date         string   `json:"date"`
	StartTimes   []string `json:"startTimes"`
	OccupiedTime string   `json:"occupiedTime"` // кодировка хранилища
	Available    bool     `json:"available"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckSlotRequest) ToUseCaseRequest(supplierID int64) (*checkSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTimes := make([]types.TimeString, 0, len(r.StartTimes))
	for _, raw := range r.StartTimes {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		startTimes = append(startTimes, slot)
	}

	return &checkSlot.Request{
		SupplierID: supplierID,
		Date:       date,
		Units:      r.Units,
		StartTimes: startTimes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlot.Response) *CheckSlotResponse {
	startTimes := make([]string, len(resp.StartTimes))
	for i, slot := range resp.StartTimes {
		startTimes[i] = slot.String()
	}

	return &CheckSlotResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		StartTimes:   startTimes,
		OccupiedTime: resp.OccupiedTime,
		Available:    true,
	}
}
