package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// ReservationCache кеш списков бронирований по дате поверх Redis.
//
// Кеш только ускоряет отрисовку списка слотов; он никогда не участвует в
// проверке конфликтов - GetByDateFresh всегда идет в хранилище напрямую.
// Недоступность Redis деградирует до прямого чтения, а не до ошибки:
// ошибкой доступности считается только отказ самого хранилища.
type ReservationCache struct {
	client *redis.Client // nil, если кеш выключен
	repo   ReservationFetcher
	ttl    time.Duration
	log    Logger
}

// New создает кеш. client == nil выключает кеширование (прямое чтение).
func New(client *redis.Client, repo ReservationFetcher, ttl time.Duration, log Logger) *ReservationCache {
	return &ReservationCache{
		client: client,
		repo:   repo,
		ttl:    ttl,
		log:    log,
	}
}

// GetByDate возвращает бронирования на дату, по возможности из кеша
func (c *ReservationCache) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	if c.client == nil {
		return c.repo.GetByDate(ctx, date)
	}

	key := c.key(date)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var reservations []*domain.Reservation
		if err := json.Unmarshal(payload, &reservations); err == nil {
			c.log.Debug("cache hit for %s (%d reservations)", key, len(reservations))
			return reservations, nil
		}
		c.log.Warn("cache: corrupted payload for %s, falling back to store", key)
	} else if err != redis.Nil {
		c.log.Warn("cache: redis get failed for %s: %v", key, err)
	}

	reservations, err := c.repo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, reservations)
	return reservations, nil
}

// GetByDateFresh принудительно читает из хранилища, минуя кеш.
// Используется повторной проверкой конфликтов перед подтверждением.
// Свежий результат попутно кладется в кеш.
func (c *ReservationCache) GetByDateFresh(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	reservations, err := c.repo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	if c.client != nil {
		c.store(ctx, c.key(date), reservations)
	}
	return reservations, nil
}

// Invalidate сбрасывает кеш даты (после записи или отмены бронирования)
func (c *ReservationCache) Invalidate(ctx context.Context, date time.Time) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.key(date)).Err()
}

func (c *ReservationCache) key(date time.Time) string {
	return "reservations:" + date.Format(domain.DateFormat)
}

// store кладет список в кеш; ошибка кеша не влияет на результат
func (c *ReservationCache) store(ctx context.Context, key string, reservations []*domain.Reservation) {
	payload, err := json.Marshal(reservations)
	if err != nil {
		c.log.Warn("cache: failed to marshal %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("cache: redis set failed for %s: %v", key, err)
	}
}
