package validator

import (
	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
)

var developerKeys = []string{"name", "email"}

// DeveloperKeys returns the keys a developer payload must carry.
func DeveloperKeys() []string {
	return append([]string(nil), developerKeys...)
}

func developerFields(p models.DeveloperPayload) map[string]bool {
	return map[string]bool{
		"name":  p.Name != nil,
		"email": p.Email != nil,
	}
}

// Developer validates a creation payload.
func Developer(p models.DeveloperPayload) (models.DeveloperRequest, error) {
	if err := requireKeys(developerKeys, developerFields(p)); err != nil {
		return models.DeveloperRequest{}, err
	}
	return models.DeveloperRequest{Name: *p.Name, Email: *p.Email}, nil
}

// DeveloperUpdate merges a partial payload over the stored developer and
// validates the result.
func DeveloperUpdate(stored models.Developer, p models.DeveloperPayload) (models.DeveloperRequest, error) {
	if p.HasID() {
		return models.DeveloperRequest{}, errs.NewImmutableFieldError("id")
	}
	if !anyPresent(developerFields(p)) {
		return models.DeveloperRequest{}, errs.NewNoUpdatableFieldError(DeveloperKeys())
	}
	return Developer(mergeDeveloper(stored.Payload(), p))
}

func mergeDeveloper(base, patch models.DeveloperPayload) models.DeveloperPayload {
	if patch.Name != nil {
		base.Name = patch.Name
	}
	if patch.Email != nil {
		base.Email = patch.Email
	}
	return base
}
