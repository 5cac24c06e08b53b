package core

import "worktime/models"

// EnsureEntitiesActive rejects submissions that target a disabled project
// or person. The project is checked first, so when both are inactive the
// project failure is the one surfaced.
func EnsureEntitiesActive(project *models.Project, person *models.Person) error {
	if !project.IsActive {
		return newValidationError(InactiveProject, "the selected project is not active")
	}
	if !person.IsActive {
		return newValidationError(InactivePerson, "the selected person is not active")
	}
	return nil
}
