package core

import (
	"testing"

	"worktime/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureEntitiesActive(t *testing.T) {
	active := &models.Project{IsActive: true}
	inactive := &models.Project{IsActive: false}
	activePerson := &models.Person{IsActive: true}
	inactivePerson := &models.Person{IsActive: false}

	require.NoError(t, EnsureEntitiesActive(active, activePerson))

	err := EnsureEntitiesActive(inactive, activePerson)
	require.Error(t, err)
	assert.True(t, IsKind(err, InactiveProject))

	err = EnsureEntitiesActive(active, inactivePerson)
	require.Error(t, err)
	assert.True(t, IsKind(err, InactivePerson))
}

func TestEnsureEntitiesActiveChecksProjectFirst(t *testing.T) {
	err := EnsureEntitiesActive(&models.Project{}, &models.Person{})
	require.Error(t, err)
	assert.True(t, IsKind(err, InactiveProject))
}
