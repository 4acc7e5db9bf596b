package check_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

type fakeFreshFetcher struct {
	reservations []*domain.Reservation
	err          error
	calls        int
}

func (f *fakeFreshFetcher) GetByDateFresh(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	f.calls++
	return f.reservations, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_SingleSlot_Free(t *testing.T) {
	fetcher := &fakeFreshFetcher{}
	uc := NewUseCase(fetcher, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       monday,
		Units:      2,
		StartTimes: []types.TimeString{"11:00"},
	})

	require.NoError(t, err)
	assert.Equal(t, "11:00:00", resp.OccupiedTime)
	assert.Equal(t, 1, fetcher.calls, "re-check must force a fresh fetch")
}

func TestExecute_SingleSlot_Conflict(t *testing.T) {
	fetcher := &fakeFreshFetcher{reservations: []*domain.Reservation{
		{Date: "2025-10-13", OccupiedTime: "11:00:00"},
	}}
	uc := NewUseCase(fetcher, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:       monday,
		Units:      2,
		StartTimes: []types.TimeString{"11:00"},
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_Pair_EitherHalfOccupiedConflicts(t *testing.T) {
	// вторая половина пары занята как часть чужого сдвоенного бронирования
	fetcher := &fakeFreshFetcher{reservations: []*domain.Reservation{
		{Date: "2025-10-13 00:00:00", OccupiedTime: "14:30:00, 15:00:00"},
	}}
	uc := NewUseCase(fetcher, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:       monday,
		Units:      8,
		StartTimes: []types.TimeString{"14:00", "14:30"},
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_Pair_Free(t *testing.T) {
	uc := NewUseCase(&fakeFreshFetcher{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:       monday,
		Units:      8,
		StartTimes: []types.TimeString{"14:00", "14:30"},
	})

	require.NoError(t, err)
	assert.Equal(t, "14:00:00, 14:30:00", resp.OccupiedTime)
}

func TestExecute_SelectionValidation(t *testing.T) {
	uc := NewUseCase(&fakeFreshFetcher{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "high volume with one slot",
			req:  &Request{Date: monday, Units: 6, StartTimes: []types.TimeString{"14:00"}},
		},
		{
			name: "high volume with non-contiguous slots",
			req:  &Request{Date: monday, Units: 6, StartTimes: []types.TimeString{"14:00", "15:00"}},
		},
		{
			name: "regular with two slots",
			req:  &Request{Date: monday, Units: 2, StartTimes: []types.TimeString{"14:00", "14:30"}},
		},
		{
			name: "slot outside catalog",
			req:  &Request{Date: monday, Units: 2, StartTimes: []types.TimeString{"16:00"}},
		},
		{
			name: "sunday has no catalog",
			req: &Request{
				Date:       time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC),
				Units:      2,
				StartTimes: []types.TimeString{"09:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		})
	}
}

func TestExecute_FetchFailure(t *testing.T) {
	fetcher := &fakeFreshFetcher{err: errors.New("store down")}
	uc := NewUseCase(fetcher, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Date:       monday,
		Units:      2,
		StartTimes: []types.TimeString{"11:00"},
	})

	assert.ErrorIs(t, err, ErrFetchFailed)
}
