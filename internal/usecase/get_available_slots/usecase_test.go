package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

type fakeFetcher struct {
	reservations []*domain.Reservation
	err          error
	calls        int
}

func (f *fakeFetcher) GetByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	f.calls++
	return f.reservations, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_WeekdaySingles(t *testing.T) {
	fetcher := &fakeFetcher{reservations: []*domain.Reservation{
		{Date: "2025-10-13", OccupiedTime: "09:00:00"},
		{Date: "2025-10-13 00:00:00", OccupiedTime: "10:00:00"},
	}}
	uc := NewUseCase(fetcher, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, Units: 2})

	require.NoError(t, err)
	assert.Len(t, resp.Options, 12)
}

func TestExecute_Sunday_EmptyOptionsNoFetch(t *testing.T) {
	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{}
	uc := NewUseCase(fetcher, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: sunday, Units: 2})

	require.NoError(t, err)
	assert.Empty(t, resp.Options)
	assert.Zero(t, fetcher.calls, "empty catalog must not hit the store")
}

func TestExecute_FetchFailure_Propagates(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("store unavailable")}
	uc := NewUseCase(fetcher, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, Units: 2})

	assert.Nil(t, resp, "no partial result on fetch failure")
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeFetcher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Units: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: monday, Units: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_HighVolumePairs(t *testing.T) {
	fetcher := &fakeFetcher{}
	uc := NewUseCase(fetcher, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday, Units: 6})

	require.NoError(t, err)
	require.Len(t, resp.Options, 13)
	assert.Len(t, resp.Options[0].StartTimes, 2)
}
