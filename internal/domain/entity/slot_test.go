package entity_test

import (
	"testing"

	"medibook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func slotAt(hospitalID, date, start, end string) *entity.Slot {
	return &entity.Slot{
		HospitalID: hospitalID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
	}
}

func TestSlotConflictsWith(t *testing.T) {
	base := slotAt("h1", "2025-07-20", "10:00", "11:00")

	tests := []struct {
		name     string
		other    *entity.Slot
		conflict bool
	}{
		{"overlapping tail", slotAt("h1", "2025-07-20", "10:30", "11:30"), true},
		{"overlapping head", slotAt("h1", "2025-07-20", "09:30", "10:30"), true},
		{"contained", slotAt("h1", "2025-07-20", "10:15", "10:45"), true},
		{"containing", slotAt("h1", "2025-07-20", "09:00", "12:00"), true},
		{"identical", slotAt("h1", "2025-07-20", "10:00", "11:00"), true},
		{"back to back after", slotAt("h1", "2025-07-20", "11:00", "12:00"), false},
		{"back to back before", slotAt("h1", "2025-07-20", "09:00", "10:00"), false},
		{"different date", slotAt("h1", "2025-07-21", "10:00", "11:00"), false},
		{"different hospital", slotAt("h2", "2025-07-20", "10:00", "11:00"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.conflict, base.ConflictsWith(tt.other))
			// The predicate is symmetric.
			assert.Equal(t, tt.conflict, tt.other.ConflictsWith(base))
		})
	}
}

func TestSlotWhen(t *testing.T) {
	slot := slotAt("h1", "2025-07-20", "10:00", "10:30")
	assert.Equal(t, "2025-07-20 10:00", slot.When())
}
