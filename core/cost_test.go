package core

import (
	"testing"
	"time"

	"worktime/models"

	"github.com/stretchr/testify/assert"
)

func ratedEntry(rate *float64, durationHours float64) models.TimeEntry {
	return models.TimeEntry{
		Person:        models.Person{HourlyRate: rate},
		Date:          day(2024, time.March, 4),
		DurationHours: durationHours,
	}
}

func TestTotalCost(t *testing.T) {
	entries := []models.TimeEntry{
		ratedEntry(hours(50), 2),    // 100
		ratedEntry(hours(33.33), 3), // 99.99
		ratedEntry(nil, 8),          // no rate, contributes nothing
		ratedEntry(hours(0), 8),     // zero rate, contributes nothing
	}

	assert.Equal(t, 199.99, TotalCost(entries))
}

func TestTotalCostEmptySet(t *testing.T) {
	assert.Equal(t, 0.0, TotalCost(nil))
}

func TestTotalCostRounding(t *testing.T) {
	entries := []models.TimeEntry{
		ratedEntry(hours(10), 1.0/3.0), // 3.333... -> rounds into the total
	}

	assert.Equal(t, 3.33, TotalCost(entries))
}

func TestTotalCostRoundsHalfToEven(t *testing.T) {
	entries := []models.TimeEntry{
		ratedEntry(hours(0.5), 2.25), // 1.125; the half rounds to the even neighbor
	}

	assert.Equal(t, 1.12, TotalCost(entries))
}

func TestEntryCost(t *testing.T) {
	assert.Equal(t, 100.0, EntryCost(ratedEntry(hours(50), 2)))
	assert.Equal(t, 0.0, EntryCost(ratedEntry(nil, 2)))
	assert.Equal(t, 0.0, EntryCost(ratedEntry(hours(0), 2)))
}
