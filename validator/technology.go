package validator

import (
	"context"
	"time"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
)

// TechnologyName checks a name against the catalog.
func TechnologyName(name string) error {
	if !models.IsSupportedTechnology(name) {
		return errs.NewUnsupportedValueError("Technology not supported.", "name",
			append([]string(nil), models.TechnologyCatalog...))
	}
	return nil
}

// Technology validates the body of a technology link request and returns the
// requested name.
func Technology(p models.TechnologyPayload) (string, error) {
	if p.Name == nil || *p.Name == "" {
		return "", errs.NewValidationError([]string{"name"})
	}
	if err := TechnologyName(*p.Name); err != nil {
		return "", err
	}
	return *p.Name, nil
}

// ProjectTechnology resolves a catalog name to its technology row and builds
// the link for projectID, stamped with addedIn.
func ProjectTechnology(ctx context.Context, technologies TechnologyLookup, projectID int64, name string, addedIn time.Time) (models.ProjectTechnologyRequest, error) {
	if err := TechnologyName(name); err != nil {
		return models.ProjectTechnologyRequest{}, err
	}

	technology, err := technologies.FindByName(ctx, name)
	if err != nil {
		if errs.IsNotFound(err) {
			return models.ProjectTechnologyRequest{}, errs.NewEntityNotFoundError("Technology")
		}
		return models.ProjectTechnologyRequest{}, err
	}

	return models.ProjectTechnologyRequest{
		AddedIn:      addedIn,
		ProjectID:    projectID,
		TechnologyID: technology.ID,
	}, nil
}
