package core

import (
	"math"
	"sort"
	"time"

	"worktime/models"
)

// topProjectLimit caps the per-project breakdown shown on the dashboard.
const topProjectLimit = 5

// GroupHours is one row of a per-project or per-person breakdown.
type GroupHours struct {
	Name  string
	Hours float64
}

// DayHours is one row of the per-day breakdown.
type DayHours struct {
	Date  time.Time
	Hours float64
}

// DashboardData is the full set of KPIs derived from one filtered entry
// set. Every field is independently derivable from the same entries.
type DashboardData struct {
	TotalHours        float64
	AverageDailyHours float64
	ActiveProjects    int
	ActivePeople      int
	TopProject        *GroupHours
	TopPerson         *GroupHours
	PeakDay           *DayHours
	HoursByProject    []GroupHours
	HoursByPerson     []GroupHours
	HoursByDay        []DayHours
}

// Aggregate computes dashboard metrics over a filtered entry set.
//
// HoursByProject is sorted descending by hours and truncated to the top
// five; ActiveProjects counts rows of that capped slice, so it can
// undercount when more than five projects have hours. That mirrors the
// reporting behavior this replaces and is kept deliberately. Ties keep
// the order entries come back from the repository.
func Aggregate(entries []models.TimeEntry) DashboardData {
	var data DashboardData

	var total float64
	for _, entry := range entries {
		total += entry.DurationHours
	}
	data.TotalHours = total

	data.HoursByProject = groupHours(entries,
		func(e models.TimeEntry) uint { return e.ProjectID },
		func(e models.TimeEntry) string { return e.Project.Name },
	)
	if len(data.HoursByProject) > topProjectLimit {
		data.HoursByProject = data.HoursByProject[:topProjectLimit]
	}

	data.HoursByPerson = groupHours(entries,
		func(e models.TimeEntry) uint { return e.PersonID },
		func(e models.TimeEntry) string { return e.Person.FullName },
	)

	data.HoursByDay = groupByDay(entries)

	for _, row := range data.HoursByProject {
		if row.Hours > 0 {
			data.ActiveProjects++
		}
	}
	for _, row := range data.HoursByPerson {
		if row.Hours > 0 {
			data.ActivePeople++
		}
	}

	if dayCount := len(data.HoursByDay); dayCount > 0 {
		data.AverageDailyHours = round2(total / float64(dayCount))
	}

	for i := range data.HoursByDay {
		if data.PeakDay == nil || data.HoursByDay[i].Hours > data.PeakDay.Hours {
			peak := data.HoursByDay[i]
			data.PeakDay = &peak
		}
	}

	if len(data.HoursByProject) > 0 {
		top := data.HoursByProject[0]
		data.TopProject = &top
	}
	if len(data.HoursByPerson) > 0 {
		top := data.HoursByPerson[0]
		data.TopPerson = &top
	}

	return data
}

// groupHours sums hours per key in first-seen order, then sorts
// descending by hours. The stable sort keeps the repository order for
// equal totals.
func groupHours(entries []models.TimeEntry, key func(models.TimeEntry) uint, label func(models.TimeEntry) string) []GroupHours {
	index := make(map[uint]int)
	var rows []GroupHours
	for _, entry := range entries {
		k := key(entry)
		i, seen := index[k]
		if !seen {
			i = len(rows)
			index[k] = i
			rows = append(rows, GroupHours{Name: label(entry)})
		}
		rows[i].Hours += entry.DurationHours
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Hours > rows[j].Hours
	})
	return rows
}

func groupByDay(entries []models.TimeEntry) []DayHours {
	index := make(map[time.Time]int)
	var rows []DayHours
	for _, entry := range entries {
		day := time.Date(entry.Date.Year(), entry.Date.Month(), entry.Date.Day(), 0, 0, 0, 0, time.UTC)
		i, seen := index[day]
		if !seen {
			i = len(rows)
			index[day] = i
			rows = append(rows, DayHours{Date: day})
		}
		rows[i].Hours += entry.DurationHours
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows
}

// round2 rounds to two decimals, halves to the even neighbor.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
