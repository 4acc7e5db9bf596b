package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/reservation"
)

var testNow = time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

type fakeRepo struct {
	bySupplier []*domain.Reservation
	byCode     *domain.Reservation
	getErr     error
	deleteErr  error
	deleted    []string
}

func (f *fakeRepo) GetBySupplier(_ context.Context, _ int64) ([]*domain.Reservation, error) {
	return f.bySupplier, f.getErr
}

func (f *fakeRepo) GetByCode(_ context.Context, _ string) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byCode, nil
}

func (f *fakeRepo) DeleteByCode(_ context.Context, code string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, code)
	return nil
}

type fakeCache struct {
	invalidated []time.Time
	err         error
}

func (f *fakeCache) Invalidate(_ context.Context, date time.Time) error {
	f.invalidated = append(f.invalidated, date)
	return f.err
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo, cache *fakeCache) *Service {
	svc := NewService(repo, cache, nopLogger{})
	svc.timeProvider = fixedClock{now: testNow}
	return svc
}

func upcomingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           1,
		Code:         "abc-123",
		Date:         "2025-10-13 00:00:00",
		OccupiedTime: "11:00:00",
		SupplierID:   7,
		Units:        2,
		OrderRefs:    "PO-1001",
	}
}

func TestGetSupplierBookings(t *testing.T) {
	past := upcomingReservation()
	past.Code = "old-1"
	past.Date = "2025-09-01"
	past.OccupiedTime = "14:00:00, 14:30:00"

	repo := &fakeRepo{bySupplier: []*domain.Reservation{upcomingReservation(), past}}
	svc := newTestService(repo, &fakeCache{})

	resp, err := svc.GetSupplierBookings(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, resp.Reservations, 2)

	assert.Equal(t, "2025-10-13", resp.Reservations[0].Date)
	assert.Equal(t, []string{"11:00"}, resp.Reservations[0].StartTimes)
	assert.True(t, resp.Reservations[0].Upcoming)

	assert.Equal(t, []string{"14:00", "14:30"}, resp.Reservations[1].StartTimes)
	assert.False(t, resp.Reservations[1].Upcoming)
}

func TestGetSupplierBookings_Empty(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeCache{})

	resp, err := svc.GetSupplierBookings(context.Background(), 7)

	require.NoError(t, err)
	assert.Empty(t, resp.Reservations)
}

func TestGetSupplierBookings_RepositoryFailure(t *testing.T) {
	repo := &fakeRepo{getErr: errors.New("db down")}
	svc := newTestService(repo, &fakeCache{})

	_, err := svc.GetSupplierBookings(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeRepo{byCode: upcomingReservation()}
	cache := &fakeCache{}
	svc := newTestService(repo, cache)

	err := svc.Cancel(context.Background(), "abc-123", 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"abc-123"}, repo.deleted)
	require.Len(t, cache.invalidated, 1)
	assert.Equal(t, "2025-10-13", cache.invalidated[0].Format(domain.DateFormat))
}

func TestCancel_NotFound(t *testing.T) {
	repo := &fakeRepo{getErr: reservationRepo.ErrReservationNotFound}
	svc := newTestService(repo, &fakeCache{})

	err := svc.Cancel(context.Background(), "missing", 7)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_ForeignReservation(t *testing.T) {
	repo := &fakeRepo{byCode: upcomingReservation()}
	svc := newTestService(repo, &fakeCache{})

	err := svc.Cancel(context.Background(), "abc-123", 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestCancel_PastReservation(t *testing.T) {
	res := upcomingReservation()
	res.Date = "2025-09-01 00:00:00"
	repo := &fakeRepo{byCode: res}
	svc := newTestService(repo, &fakeCache{})

	err := svc.Cancel(context.Background(), "abc-123", 7)

	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, repo.deleted)
}

func TestCancel_DeleteFailure(t *testing.T) {
	repo := &fakeRepo{byCode: upcomingReservation(), deleteErr: errors.New("db down")}
	svc := newTestService(repo, &fakeCache{})

	err := svc.Cancel(context.Background(), "abc-123", 7)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCancel_CacheFailure_StillSucceeds(t *testing.T) {
	repo := &fakeRepo{byCode: upcomingReservation()}
	cache := &fakeCache{err: errors.New("redis down")}
	svc := newTestService(repo, cache)

	err := svc.Cancel(context.Background(), "abc-123", 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"abc-123"}, repo.deleted)
}
