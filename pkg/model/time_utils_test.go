package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinutesOfDay(t *testing.T) {
	valid := map[string]int{
		"00:00": 0,
		"7:30":  450,
		"10:00": 600,
		"23:59": 1439,
		"24:00": MinutesPerDay,
		" 9:05": 545,
	}
	for text, expected := range valid {
		t.Run(text, func(t *testing.T) {
			minutes, err := MinutesOfDay(text)

			assert.NoError(t, err)
			assert.Equal(t, expected, minutes)
		})
	}

	invalid := []string{"", "10", "10:0", "10:000", "100:00", "ab:cd", "-1:00", "25:00", "24:30", "12:60", "12:5a"}
	for _, text := range invalid {
		t.Run("Invalid "+text, func(t *testing.T) {
			_, err := MinutesOfDay(text)

			var formatErr *FormatError
			assert.True(t, errors.As(err, &formatErr))
			assert.Equal(t, text, formatErr.Input)
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "07:05", FormatMinutes(425))
	assert.Equal(t, "24:00", FormatMinutes(MinutesPerDay))
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(600, 660, 630, 690))
	assert.True(t, Overlaps(600, 720, 630, 660))
	assert.False(t, Overlaps(600, 660, 660, 720), "touching intervals do not overlap")
	assert.False(t, Overlaps(660, 720, 600, 660))
}
