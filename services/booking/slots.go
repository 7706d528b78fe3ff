package booking

import "fmt"

// TimeSlots returns the fixed half-hour appointment grid: 8:00 AM through
// 5:30 PM, twenty slots, the last one ending at 6:00 PM.
func TimeSlots() []string {
	slots := make([]string, 0, 20)
	for minutes := 8 * 60; minutes < 18*60; minutes += 30 {
		slots = append(slots, slotLabel(minutes))
	}
	return slots
}

// ValidTimeSlot reports whether label is one of the fixed grid slots.
func ValidTimeSlot(label string) bool {
	for _, s := range TimeSlots() {
		if s == label {
			return true
		}
	}
	return false
}

func slotLabel(minutesFromMidnight int) string {
	hour := minutesFromMidnight / 60
	minute := minutesFromMidnight % 60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, suffix)
}
