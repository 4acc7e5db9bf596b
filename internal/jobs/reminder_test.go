package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

var testNow = time.Date(2025, 10, 12, 8, 0, 0, 0, time.UTC)

type fakeFetcher struct {
	reservations []*domain.Reservation
	err          error
	requested    []time.Time
}

func (f *fakeFetcher) GetByDate(_ context.Context, date time.Time) ([]*domain.Reservation, error) {
	f.requested = append(f.requested, date)
	return f.reservations, f.err
}

type fakeMailer struct {
	sent    []string
	failFor map[string]bool
}

func (f *fakeMailer) SendBookingReminder(res *domain.Reservation) error {
	if f.failFor[res.Code] {
		return errors.New("sendgrid down")
	}
	f.sent = append(f.sent, res.Code)
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestJob(fetcher *fakeFetcher, mailer *fakeMailer) *ReminderJob {
	job := NewReminderJob(fetcher, mailer, nopLogger{})
	job.timeProvider = fixedClock{now: testNow}
	return job
}

func TestRun_SendsRemindersForTomorrow(t *testing.T) {
	fetcher := &fakeFetcher{reservations: []*domain.Reservation{
		{Code: "res-1", Date: "2025-10-13 00:00:00", OccupiedTime: "11:00:00"},
		{Code: "res-2", Date: "2025-10-13 00:00:00", OccupiedTime: "14:00:00, 14:30:00"},
	}}
	mailer := &fakeMailer{}
	job := newTestJob(fetcher, mailer)

	job.run()

	require.Len(t, fetcher.requested, 1)
	assert.Equal(t, "2025-10-13", fetcher.requested[0].Format(domain.DateFormat))
	assert.Equal(t, []string{"res-1", "res-2"}, mailer.sent)
}

func TestRun_SingleFailureDoesNotStopOthers(t *testing.T) {
	fetcher := &fakeFetcher{reservations: []*domain.Reservation{
		{Code: "res-1", Date: "2025-10-13"},
		{Code: "res-2", Date: "2025-10-13"},
		{Code: "res-3", Date: "2025-10-13"},
	}}
	mailer := &fakeMailer{failFor: map[string]bool{"res-2": true}}
	job := newTestJob(fetcher, mailer)

	job.run()

	assert.Equal(t, []string{"res-1", "res-3"}, mailer.sent)
}

func TestRun_FetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("store down")}
	mailer := &fakeMailer{}
	job := newTestJob(fetcher, mailer)

	job.run()

	assert.Empty(t, mailer.sent)
}

func TestStart_InvalidSpec(t *testing.T) {
	job := newTestJob(&fakeFetcher{}, &fakeMailer{})

	err := job.Start("not a cron spec")
	assert.Error(t, err)
}
