package create_booking

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-DeliveryBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date       string   `json:"date"`       // "2025-10-15"
	Units      int      `json:"units"`      // количество паллет
	StartTimes []string `json:"startTimes"` // "HH:MM", 1 слот или 2 смежных
	OrderRefs  []string `json:"orderRefs"`  // номера заказов, минимум один
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64    `json:"id"`
	Code         string   `json:"code"`
	Date         string   `json:"date"` // "2025-10-15"
	StartTimes   []string `json:"startTimes"`
	OccupiedTime string   `json:"occupiedTime"`
	Units        int      `json:"units"`
	OrderRefs    string   `json:"orderRefs"`
	CreatedAt    string   `json:"createdAt"` // ISO 8601
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Данные поставщика берутся из токена, а не из тела запроса.
func (r *CreateBookingRequest) ToUseCaseRequest(supplier *middleware.SupplierClaims) (*createBooking.Request, error) {
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

	return &createBooking.Request{
		SupplierID:    supplier.SupplierID,
		SupplierName:  supplier.Name,
		SupplierEmail: supplier.Email,
		Date:          date,
		Units:         r.Units,
		StartTimes:    startTimes,
		OrderRefs:     r.OrderRefs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	startTimes := make([]string, len(resp.StartTimes))
	for i, slot := range resp.StartTimes {
		startTimes[i] = slot.String()
	}

	// Дата хранится с суффиксом "00:00:00", наружу отдается только день
	date := resp.Date
	if len(date) > len(domain.DateFormat) {
		date = date[:len(domain.DateFormat)]
	}

	return &BookingResponse{
		ID:           resp.ID,
		Code:         resp.Code,
		Date:         date,
		StartTimes:   startTimes,
		OccupiedTime: resp.OccupiedTime,
		Units:        resp.Units,
		OrderRefs:    resp.OrderRefs,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
