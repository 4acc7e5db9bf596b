package get_available_slots

import (
	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

// buildOptions computes the bookable options for a catalog and an occupied set.
// Pure and deterministic: identical inputs always yield identical output in
// catalog order, which is what makes the commit-time re-check meaningful.
func buildOptions(catalog []types.TimeString, occupied domain.OccupiedSet, units int) []Option {
	if units >= domain.HighVolumeUnitThreshold {
		return buildPairedOptions(catalog, occupied)
	}
	return buildSingleOptions(catalog, occupied)
}

// buildSingleOptions возвращает все свободные одиночные слоты каталога
func buildSingleOptions(catalog []types.TimeString, occupied domain.OccupiedSet) []Option {
	options := make([]Option, 0, len(catalog))

	for _, slot := range catalog {
		if occupied.Contains(slot) {
			continue
		}
		options = append(options, Option{
			StartTimes:      []types.TimeString{slot},
			DurationMinutes: domain.SlotDurationMinutes,
		})
	}

	return options
}

// buildPairedOptions возвращает сдвоенные часовые варианты: пары смежных
// слотов, оба из которых свободны.
//
// Пары оцениваются независимо по каждому стартовому индексу, без разбиения
// каталога: слот может быть второй половиной одной пары и первой половиной
// следующей. Пересечение вариантов допустимо намеренно - фактический
// двойной захват слота отсекает повторная проверка перед записью.
func buildPairedOptions(catalog []types.TimeString, occupied domain.OccupiedSet) []Option {
	options := make([]Option, 0)

	for i := 0; i+1 < len(catalog); i++ {
		first, second := catalog[i], catalog[i+1]

		// смежность по построению каталога, но проверяем явно
		expected, err := first.AddMinutes(domain.SlotDurationMinutes)
		if err != nil || expected != second {
			continue
		}

		if occupied.Contains(first) || occupied.Contains(second) {
			continue
		}

		options = append(options, Option{
			StartTimes:      []types.TimeString{first, second},
			DurationMinutes: 2 * domain.SlotDurationMinutes,
		})
	}

	return options
}
