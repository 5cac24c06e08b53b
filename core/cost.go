package core

import "worktime/models"

// TotalCost sums hourly rate times duration over an entry set, rounded to
// two decimals. Entries whose person has no rate, or a zero rate,
// contribute nothing.
func TotalCost(entries []models.TimeEntry) float64 {
	var total float64
	for _, entry := range entries {
		rate := entry.Person.HourlyRate
		if rate == nil || *rate == 0 {
			continue
		}
		total += *rate * entry.DurationHours
	}
	return round2(total)
}

// EntryCost is the cost of a single entry, zero when the person has no
// rate. Used by the CSV export.
func EntryCost(entry models.TimeEntry) float64 {
	rate := entry.Person.HourlyRate
	if rate == nil || *rate == 0 {
		return 0
	}
	return *rate * entry.DurationHours
}
