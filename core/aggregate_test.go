package core

import (
	"fmt"
	"testing"
	"time"

	"worktime/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(projectID, personID uint, date time.Time, durationHours float64) models.TimeEntry {
	return models.TimeEntry{
		ProjectID:     projectID,
		Project:       models.Project{ID: projectID, Name: fmt.Sprintf("project-%d", projectID)},
		PersonID:      personID,
		Person:        models.Person{ID: personID, FullName: fmt.Sprintf("person-%d", personID)},
		Date:          date,
		DurationHours: durationHours,
	}
}

func TestAggregateEmptySet(t *testing.T) {
	data := Aggregate(nil)

	assert.Equal(t, 0.0, data.TotalHours)
	assert.Equal(t, 0.0, data.AverageDailyHours)
	assert.Equal(t, 0, data.ActiveProjects)
	assert.Equal(t, 0, data.ActivePeople)
	assert.Nil(t, data.PeakDay)
	assert.Nil(t, data.TopProject)
	assert.Nil(t, data.TopPerson)
	assert.Empty(t, data.HoursByProject)
	assert.Empty(t, data.HoursByPerson)
	assert.Empty(t, data.HoursByDay)
}

func TestAggregateTwoDaysTwoPeople(t *testing.T) {
	d1 := day(2024, time.March, 4)
	d2 := day(2024, time.March, 5)
	entries := []models.TimeEntry{
		entry(1, 1, d1, 4),
		entry(1, 2, d2, 3),
	}

	data := Aggregate(entries)

	assert.Equal(t, 7.0, data.TotalHours)
	require.Len(t, data.HoursByDay, 2)
	assert.Equal(t, 4.0, data.HoursByDay[0].Hours)
	assert.Equal(t, 3.0, data.HoursByDay[1].Hours)
	assert.Equal(t, 3.5, data.AverageDailyHours)
	assert.Equal(t, 1, data.ActiveProjects)
	assert.Equal(t, 2, data.ActivePeople)
	require.NotNil(t, data.PeakDay)
	assert.True(t, data.PeakDay.Date.Equal(d1))
	assert.Equal(t, 4.0, data.PeakDay.Hours)
}

func TestAggregateProjectCapAtFive(t *testing.T) {
	d := day(2024, time.March, 4)
	var entries []models.TimeEntry
	for i := uint(1); i <= 7; i++ {
		entries = append(entries, entry(i, 1, d, float64(i)))
	}

	data := Aggregate(entries)

	require.Len(t, data.HoursByProject, 5)
	assert.Equal(t, "project-7", data.HoursByProject[0].Name)
	assert.Equal(t, 7.0, data.HoursByProject[0].Hours)
	assert.Equal(t, "project-3", data.HoursByProject[4].Name)

	// The active-project count is taken over the capped slice, so seven
	// busy projects still report as five.
	assert.Equal(t, 5, data.ActiveProjects)
	assert.Equal(t, 1, data.ActivePeople)

	require.NotNil(t, data.TopProject)
	assert.Equal(t, "project-7", data.TopProject.Name)
}

func TestAggregatePersonGroupingIsUncapped(t *testing.T) {
	d := day(2024, time.March, 4)
	var entries []models.TimeEntry
	var total float64
	for i := uint(1); i <= 8; i++ {
		entries = append(entries, entry(1, i, d, float64(i)))
		total += float64(i)
	}

	data := Aggregate(entries)

	require.Len(t, data.HoursByPerson, 8)
	var sum float64
	for _, row := range data.HoursByPerson {
		sum += row.Hours
	}
	assert.Equal(t, total, sum)
	assert.Equal(t, total, data.TotalHours)
	assert.Equal(t, "person-8", data.HoursByPerson[0].Name)
}

func TestAggregateTiesKeepInputOrder(t *testing.T) {
	d := day(2024, time.March, 4)
	entries := []models.TimeEntry{
		entry(3, 1, d, 2),
		entry(1, 1, d, 2),
		entry(2, 1, d, 2),
	}

	data := Aggregate(entries)

	require.Len(t, data.HoursByProject, 3)
	assert.Equal(t, "project-3", data.HoursByProject[0].Name)
	assert.Equal(t, "project-1", data.HoursByProject[1].Name)
	assert.Equal(t, "project-2", data.HoursByProject[2].Name)
}

func TestAggregateDaysSortedAscending(t *testing.T) {
	entries := []models.TimeEntry{
		entry(1, 1, day(2024, time.March, 6), 1),
		entry(1, 1, day(2024, time.March, 4), 1),
		entry(1, 1, day(2024, time.March, 5), 1),
	}

	data := Aggregate(entries)

	require.Len(t, data.HoursByDay, 3)
	assert.True(t, data.HoursByDay[0].Date.Equal(day(2024, time.March, 4)))
	assert.True(t, data.HoursByDay[2].Date.Equal(day(2024, time.March, 6)))
}

func TestAggregatePeakDayTieGoesToEarliestDate(t *testing.T) {
	d1 := day(2024, time.March, 4)
	d2 := day(2024, time.March, 5)
	entries := []models.TimeEntry{
		entry(1, 1, d2, 5),
		entry(1, 1, d1, 5),
	}

	data := Aggregate(entries)

	require.NotNil(t, data.PeakDay)
	assert.True(t, data.PeakDay.Date.Equal(d1))
}

func TestAggregateAverageIsRounded(t *testing.T) {
	entries := []models.TimeEntry{
		entry(1, 1, day(2024, time.March, 4), 1),
		entry(1, 1, day(2024, time.March, 5), 1),
		entry(1, 1, day(2024, time.March, 6), 1.5),
	}

	data := Aggregate(entries)

	// 3.5 / 3 = 1.1666... rounds to 1.17.
	assert.Equal(t, 1.17, data.AverageDailyHours)
}

func TestAggregateAverageRoundsHalfToEven(t *testing.T) {
	entries := []models.TimeEntry{
		entry(1, 1, day(2024, time.March, 4), 1),
		entry(1, 1, day(2024, time.March, 5), 1.25),
	}

	data := Aggregate(entries)

	// 2.25 / 2 = 1.125; the half rounds to the even neighbor.
	assert.Equal(t, 1.12, data.AverageDailyHours)
}

func TestAggregateMergesMultipleEntriesPerGroup(t *testing.T) {
	d := day(2024, time.March, 4)
	entries := []models.TimeEntry{
		entry(1, 1, d, 2),
		entry(1, 1, d, 3),
		entry(2, 1, d, 4),
	}

	data := Aggregate(entries)

	require.Len(t, data.HoursByProject, 2)
	assert.Equal(t, "project-1", data.HoursByProject[0].Name)
	assert.Equal(t, 5.0, data.HoursByProject[0].Hours)
	require.Len(t, data.HoursByDay, 1)
	assert.Equal(t, 9.0, data.HoursByDay[0].Hours)
}
