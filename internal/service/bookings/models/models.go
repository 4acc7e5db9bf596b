package models

import (
	"time"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// Response модели

// ReservationResponse ответ с данными бронирования поставки
type ReservationResponse struct {
	ID           int64    `json:"id"`
	Code         string   `json:"code"`
	Date         string   `json:"date"`       // "2025-10-15"
	StartTimes   []string `json:"startTimes"` // "HH:MM", один или два слота
	OccupiedTime string   `json:"occupiedTime"`
	Units        int      `json:"units"`
	OrderRefs    string   `json:"orderRefs"`
	Upcoming     bool     `json:"upcoming"`

	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO.
// Дата отдается без суффикса времени, слоты в каноничном виде "HH:MM".
func FromDomainReservation(r *domain.Reservation, now time.Time) *ReservationResponse {
	if r == nil {
		return nil
	}

	date := r.Date
	if day, err := r.Day(); err == nil {
		date = day.Format(domain.DateFormat)
	}

	slots := r.SlotTimes()
	startTimes := make([]string, 0, len(slots))
	for _, slot := range slots {
		startTimes = append(startTimes, slot.String())
	}

	return &ReservationResponse{
		ID:           r.ID,
		Code:         r.Code,
		Date:         date,
		StartTimes:   startTimes,
		OccupiedTime: r.OccupiedTime,
		Units:        r.Units,
		OrderRefs:    r.OrderRefs,
		Upcoming:     r.IsUpcoming(now),
		CreatedAt:    r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, now time.Time) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r, now))
	}
	return resp
}
