package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

var (
	// 2025-10-13 понедельник, 2025-10-18 суббота, 2025-10-19 воскресенье
	monday   = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
)

func TestSlotCatalog_Sunday_Empty(t *testing.T) {
	assert.Empty(t, SlotCatalog(sunday))
}

func TestSlotCatalog_Weekday(t *testing.T) {
	for day := 0; day < 5; day++ {
		date := monday.AddDate(0, 0, day)
		catalog := SlotCatalog(date)

		require.Len(t, catalog, 14, "weekday %s", date.Weekday())
		assert.Equal(t, types.TimeString("09:00"), catalog[0])
		assert.Equal(t, types.TimeString("15:30"), catalog[len(catalog)-1])

		// слоты идут с шагом ровно 30 минут
		for i := 0; i < len(catalog)-1; i++ {
			next, err := catalog[i].AddMinutes(SlotDurationMinutes)
			require.NoError(t, err)
			assert.Equal(t, next, catalog[i+1])
		}
	}
}

func TestSlotCatalog_Saturday(t *testing.T) {
	catalog := SlotCatalog(saturday)

	require.Len(t, catalog, 6)
	assert.Equal(t, types.TimeString("09:00"), catalog[0])
	assert.Equal(t, types.TimeString("11:30"), catalog[len(catalog)-1])
}

func TestSlotCatalog_Deterministic(t *testing.T) {
	first := SlotCatalog(monday)
	second := SlotCatalog(monday)
	assert.Equal(t, first, second)
}

func TestInCatalog(t *testing.T) {
	assert.True(t, InCatalog(monday, "11:00"))
	assert.True(t, InCatalog(monday, "15:30"))
	assert.False(t, InCatalog(monday, "16:00"))
	assert.False(t, InCatalog(saturday, "12:00"))
	assert.False(t, InCatalog(sunday, "09:00"))
}
