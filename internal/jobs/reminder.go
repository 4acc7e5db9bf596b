package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReminderJob ежедневная рассылка напоминаний о завтрашних поставках
type ReminderJob struct {
	fetcher      ReservationFetcher
	mailer       Mailer
	timeProvider TimeProvider
	logger       Logger
	cron         *cron.Cron
}

// NewReminderJob создает новый экземпляр задачи напоминаний
func NewReminderJob(fetcher ReservationFetcher, mailer Mailer, logger Logger) *ReminderJob {
	return &ReminderJob{
		fetcher:      fetcher,
		mailer:       mailer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		cron:         cron.New(),
	}
}

// Start регистрирует задачу по cron-выражению и запускает планировщик
func (j *ReminderJob) Start(spec string) error {
	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	j.cron.Start()
	j.logger.Info("ReminderJob: scheduled with spec %q", spec)
	return nil
}

// Stop останавливает планировщик и дожидается завершения запущенной задачи
func (j *ReminderJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	j.logger.Info("ReminderJob: stopped")
}

func (j *ReminderJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tomorrow := j.timeProvider.Now().AddDate(0, 0, 1)
	j.logger.Info("ReminderJob: sending reminders for %s", tomorrow.Format(domain.DateFormat))

	reservations, err := j.fetcher.GetByDate(ctx, tomorrow)
	if err != nil {
		j.logger.Error("ReminderJob: failed to fetch reservations for %s: %v",
			tomorrow.Format(domain.DateFormat), err)
		return
	}

	sent := 0
	for _, reservation := range reservations {
		if err := j.mailer.SendBookingReminder(reservation); err != nil {
			// Неудачное письмо не прерывает рассылку остальным поставщикам
			j.logger.Warn("ReminderJob: failed to send reminder for %s: %v", reservation.Code, err)
			continue
		}
		sent++
	}

	j.logger.Info("ReminderJob: sent %d of %d reminders for %s",
		sent, len(reservations), tomorrow.Format(domain.DateFormat))
}
