package validator

import (
	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
)

var developerInfoKeys = []string{"developerSince", "preferredOS"}

func DeveloperInfoKeys() []string {
	return append([]string(nil), developerInfoKeys...)
}

func developerInfoFields(p models.DeveloperInfoPayload) map[string]bool {
	return map[string]bool{
		"developerSince": p.DeveloperSince != nil,
		"preferredOS":    p.PreferredOS != nil,
	}
}

// DeveloperInfo validates a creation payload.
func DeveloperInfo(p models.DeveloperInfoPayload) (models.DeveloperInfoRequest, error) {
	if err := requireKeys(developerInfoKeys, developerInfoFields(p)); err != nil {
		return models.DeveloperInfoRequest{}, err
	}
	since, err := parseDate("developerSince", *p.DeveloperSince)
	if err != nil {
		return models.DeveloperInfoRequest{}, err
	}
	return models.DeveloperInfoRequest{
		DeveloperSince: since,
		PreferredOS:    *p.PreferredOS,
	}, nil
}

// DeveloperInfoUpdate merges a partial payload over the stored infos.
func DeveloperInfoUpdate(stored models.DeveloperInfo, p models.DeveloperInfoPayload) (models.DeveloperInfoRequest, error) {
	if err := RequireDeveloperInfoUpdate(p); err != nil {
		return models.DeveloperInfoRequest{}, err
	}
	return DeveloperInfo(mergeDeveloperInfo(stored.Payload(), p))
}

// RequireDeveloperInfoUpdate applies the checks an infos update can make
// before the stored infos are loaded.
func RequireDeveloperInfoUpdate(p models.DeveloperInfoPayload) error {
	if p.HasID() {
		return errs.NewImmutableFieldError("id")
	}
	if !anyPresent(developerInfoFields(p)) {
		return errs.NewNoUpdatableFieldError(DeveloperInfoKeys())
	}
	return nil
}

func mergeDeveloperInfo(base, patch models.DeveloperInfoPayload) models.DeveloperInfoPayload {
	if patch.DeveloperSince != nil {
		base.DeveloperSince = patch.DeveloperSince
	}
	if patch.PreferredOS != nil {
		base.PreferredOS = patch.PreferredOS
	}
	return base
}
