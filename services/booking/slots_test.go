package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlotsGrid(t *testing.T) {
	slots := TimeSlots()

	assert.Len(t, slots, 20)
	assert.Equal(t, "8:00 AM", slots[0])
	assert.Equal(t, "11:30 AM", slots[7])
	assert.Equal(t, "12:00 PM", slots[8])
	assert.Equal(t, "5:30 PM", slots[19])
}

func TestValidTimeSlot(t *testing.T) {
	assert.True(t, ValidTimeSlot("8:00 AM"))
	assert.True(t, ValidTimeSlot("12:30 PM"))
	assert.True(t, ValidTimeSlot("5:30 PM"))

	assert.False(t, ValidTimeSlot("7:30 AM"))
	assert.False(t, ValidTimeSlot("6:00 PM"))
	assert.False(t, ValidTimeSlot("9:15 AM"))
	assert.False(t, ValidTimeSlot("08:00 AM"))
	assert.False(t, ValidTimeSlot(""))
}
