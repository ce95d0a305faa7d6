package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkingDays(t *testing.T) {
	t.Run("Excludes weekends", func(t *testing.T) {
		//** Arrange
		start, end := NewWorkingDay(2025, time.March, 1), NewWorkingDay(2025, time.March, 10)

		//** Act
		days := WorkingDays(start, end, []time.Weekday{time.Saturday, time.Sunday})

		//** Assert
		require.Len(t, days, 6)
		assert.Equal(t, NewWorkingDay(2025, time.March, 3), days[0])
		assert.Equal(t, NewWorkingDay(2025, time.March, 10), days[5])
		for _, day := range days {
			assert.NotEqual(t, time.Saturday, day.Weekday())
			assert.NotEqual(t, time.Sunday, day.Weekday())
		}
	})

	t.Run("Inclusive bounds", func(t *testing.T) {
		day := NewWorkingDay(2025, time.March, 5)
		assert.Equal(t, []WorkingDay{day}, WorkingDays(day, day, nil))
	})

	t.Run("Empty range", func(t *testing.T) {
		days := WorkingDays(NewWorkingDay(2025, time.March, 5), NewWorkingDay(2025, time.March, 4), nil)
		assert.NotNil(t, days)
		assert.Empty(t, days)
	})

	t.Run("Crosses month and daylight-saving boundaries", func(t *testing.T) {
		days := WorkingDays(NewWorkingDay(2025, time.March, 28), NewWorkingDay(2025, time.April, 2), nil)
		assert.Len(t, days, 6)
		assert.Equal(t, NewWorkingDay(2025, time.April, 1), days[4])
	})
}

func TestStrategyCalendar(t *testing.T) {
	start, end := NewWorkingDay(2025, time.March, 3), NewWorkingDay(2025, time.March, 9)
	excluded := []time.Weekday{time.Monday, time.Saturday, time.Sunday}

	assert.Len(t, StrategyGreedy.WorkingDays(start, end, excluded), 4)
	assert.Len(t, StrategyDivideAndConquer.WorkingDays(start, end, excluded), 5)
}

func TestWorkingDayConversions(t *testing.T) {
	day, err := ParseWorkingDay("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, WorkingDay{Year: 2024, Month: time.February, Day: 29}, day)
	assert.Equal(t, "2024-02-29", day.String())
	assert.Equal(t, NewWorkingDay(2024, time.March, 1), day.AddDays(1))
	assert.Equal(t, NewWorkingDay(2024, time.March, 1), NewWorkingDay(2024, time.February, 30))
	assert.True(t, day.Before(day.AddDays(1)))

	_, err = ParseWorkingDay("2025-02-29")
	assert.Error(t, err)
	_, err = ParseWorkingDay("03/03/2025")
	assert.Error(t, err)
}
