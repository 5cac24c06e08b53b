package core

import (
	"testing"
	"time"

	"worktime/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entryFinderStub serves entries for one person and date from memory, the
// way the repository adapter would.
type entryFinderStub struct {
	entries []models.TimeEntry
}

func (s *entryFinderStub) FindForPersonOnDate(personID uint, date time.Time, excludeID uint) ([]models.TimeEntry, error) {
	var out []models.TimeEntry
	for _, entry := range s.entries {
		if entry.PersonID != personID || !entry.Date.Equal(date) {
			continue
		}
		if excludeID != 0 && entry.ID == excludeID {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func rangedEntry(id, personID uint, date time.Time, startHour, startMin, endHour, endMin int) models.TimeEntry {
	return models.TimeEntry{
		ID:        id,
		PersonID:  personID,
		Date:      date,
		StartTime: clock(startHour, startMin),
		EndTime:   clock(endHour, endMin),
	}
}

func TestOverlapValidatorRejectsIntersectingRange(t *testing.T) {
	d := day(2024, time.March, 4)
	validator := OverlapValidator{Entries: &entryFinderStub{entries: []models.TimeEntry{
		rangedEntry(1, 7, d, 9, 0, 10, 30),
	}}}

	err := validator.Validate(7, d, clock(10, 0), clock(11, 0), 0)
	require.Error(t, err)
	assert.True(t, IsKind(err, OverlapConflict))
}

func TestOverlapValidatorAllowsBackToBackEntries(t *testing.T) {
	d := day(2024, time.March, 4)
	validator := OverlapValidator{Entries: &entryFinderStub{entries: []models.TimeEntry{
		rangedEntry(1, 7, d, 9, 0, 10, 0),
	}}}

	require.NoError(t, validator.Validate(7, d, clock(10, 0), clock(11, 0), 0))
}

func TestOverlapValidatorIsSymmetric(t *testing.T) {
	d := day(2024, time.March, 4)

	a := rangedEntry(1, 7, d, 9, 0, 11, 0)
	b := rangedEntry(2, 7, d, 10, 0, 12, 0)

	against := func(existing models.TimeEntry, candidate models.TimeEntry) error {
		validator := OverlapValidator{Entries: &entryFinderStub{entries: []models.TimeEntry{existing}}}
		return validator.Validate(candidate.PersonID, candidate.Date, candidate.StartTime, candidate.EndTime, 0)
	}

	assert.True(t, IsKind(against(a, b), OverlapConflict))
	assert.True(t, IsKind(against(b, a), OverlapConflict))
}

func TestOverlapValidatorExemptsEntriesWithoutRange(t *testing.T) {
	d := day(2024, time.March, 4)
	validator := OverlapValidator{Entries: &entryFinderStub{entries: []models.TimeEntry{
		rangedEntry(1, 7, d, 9, 0, 17, 0),
	}}}

	// Candidate without a full range never participates.
	require.NoError(t, validator.Validate(7, d, nil, nil, 0))
	require.NoError(t, validator.Validate(7, d, clock(9, 0), nil, 0))
	require.NoError(t, validator.Validate(7, d, nil, clock(17, 0), 0))
}

func TestOverlapValidatorSkipsObstaclesWithoutRange(t *testing.T) {
	d := day(2024, time.March, 4)
	durationOnly := models.TimeEntry{ID: 1, PersonID: 7, Date: d, DurationHours: 8}
	validator := OverlapValidator{Entries: &entryFinderStub{entries: []models.TimeEntry{durationOnly}}}

	require.NoError(t, validator.Validate(7, d, clock(9, 0), clock(17, 0), 0))
}

func TestOverlapValidatorIgnoresOtherPeopleAndDays(t *testing.T) {
	d := day(2024, time.March, 4)
	validator := OverlapValidator{Entries: &entryFinderStub{entries: []models.TimeEntry{
		rangedEntry(1, 8, d, 9, 0, 17, 0),
		rangedEntry(2, 7, day(2024, time.March, 5), 9, 0, 17, 0),
	}}}

	require.NoError(t, validator.Validate(7, d, clock(9, 0), clock(17, 0), 0))
}

func TestOverlapValidatorExcludesEntryBeingEdited(t *testing.T) {
	d := day(2024, time.March, 4)
	validator := OverlapValidator{Entries: &entryFinderStub{entries: []models.TimeEntry{
		rangedEntry(42, 7, d, 9, 0, 11, 0),
	}}}

	// Re-saving the same range over itself must not conflict.
	require.NoError(t, validator.Validate(7, d, clock(9, 0), clock(11, 0), 42))

	err := validator.Validate(7, d, clock(9, 0), clock(11, 0), 0)
	assert.True(t, IsKind(err, OverlapConflict))
}
