package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/types"
)

var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func occupiedSet(slots ...types.TimeString) domain.OccupiedSet {
	set := make(domain.OccupiedSet)
	for _, slot := range slots {
		set.Add(slot)
	}
	return set
}

func TestBuildOptions_SingleSlots_ExcludesOccupied(t *testing.T) {
	catalog := domain.SlotCatalog(monday)
	occupied := occupiedSet("09:00", "10:00")

	options := buildOptions(catalog, occupied, 2)

	require.Len(t, options, 12)
	for _, opt := range options {
		require.Len(t, opt.StartTimes, 1)
		assert.Equal(t, 30, opt.DurationMinutes)
		assert.NotEqual(t, types.TimeString("09:00"), opt.StartTimes[0])
		assert.NotEqual(t, types.TimeString("10:00"), opt.StartTimes[0])
	}

	// порядок каталога сохраняется
	assert.Equal(t, types.TimeString("09:30"), options[0].StartTimes[0])
	assert.Equal(t, types.TimeString("15:30"), options[len(options)-1].StartTimes[0])
}

func TestBuildOptions_Pairs_EmptyOccupied(t *testing.T) {
	catalog := domain.SlotCatalog(monday)

	options := buildOptions(catalog, occupiedSet(), 6)

	// все 13 смежных пар каталога: (09:00,09:30) ... (15:30,16:00) -> 15:30 последняя первая половина
	require.Len(t, options, 13)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, options[0].StartTimes)
	assert.Equal(t, []types.TimeString{"15:00", "15:30"}, options[len(options)-1].StartTimes)
	for _, opt := range options {
		assert.Equal(t, 60, opt.DurationMinutes)
	}
}

func TestBuildOptions_Pairs_EitherSlotOccupiedInvalidatesPair(t *testing.T) {
	catalog := domain.SlotCatalog(monday)

	options := buildOptions(catalog, occupiedSet("09:30"), 6)

	starts := make(map[types.TimeString]bool)
	for _, opt := range options {
		starts[opt.StartTimes[0]] = true
		// ни одна половина пары не занята
		assert.NotContains(t, opt.StartTimes, types.TimeString("09:30"))
	}

	assert.False(t, starts["09:00"], "(09:00,09:30) must be excluded")
	assert.False(t, starts["09:30"], "(09:30,10:00) must be excluded")
	assert.True(t, starts["10:00"], "(10:00,10:30) must remain")
	require.Len(t, options, 11)
}

func TestBuildOptions_Pairs_OverlappingPairsAllowed(t *testing.T) {
	catalog := domain.SlotCatalog(monday)

	options := buildOptions(catalog, occupiedSet(), 6)

	// 09:30 встречается и как вторая половина первой пары, и как первая половина второй
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, options[0].StartTimes)
	assert.Equal(t, []types.TimeString{"09:30", "10:00"}, options[1].StartTimes)
}

func TestBuildOptions_ThresholdBoundary(t *testing.T) {
	catalog := domain.SlotCatalog(monday)

	// 4 паллеты - одиночные слоты, 5 паллет - пары
	singles := buildOptions(catalog, occupiedSet(), 4)
	pairs := buildOptions(catalog, occupiedSet(), 5)

	require.NotEmpty(t, singles)
	require.NotEmpty(t, pairs)
	assert.Len(t, singles[0].StartTimes, 1)
	assert.Len(t, pairs[0].StartTimes, 2)
}

func TestBuildOptions_Idempotent(t *testing.T) {
	catalog := domain.SlotCatalog(monday)
	occupied := occupiedSet("11:00", "14:30")

	first := buildOptions(catalog, occupied, 6)
	second := buildOptions(catalog, occupied, 6)

	assert.Equal(t, first, second)
}

func TestBuildOptions_Saturday_Pairs(t *testing.T) {
	saturday := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	catalog := domain.SlotCatalog(saturday)

	options := buildOptions(catalog, occupiedSet(), 8)

	// 6 слотов субботы дают 5 смежных пар
	require.Len(t, options, 5)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, options[0].StartTimes)
	assert.Equal(t, []types.TimeString{"11:00", "11:30"}, options[len(options)-1].StartTimes)
}
