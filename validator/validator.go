// Package validator turns partial API payloads into complete, validated
// write-time records. Every function is a pure step from payload (and the
// stored record, for updates) to a request or an *errs.ApiErr; the only
// outside calls go through the lookup interfaces below.
package validator

import (
	"context"

	"gorm.io/datatypes"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
)

// DeveloperLookup resolves a developer by primary key. A miss must return an
// error matching errs.ErrNotFound.
type DeveloperLookup interface {
	FindByID(ctx context.Context, id int64) (*models.Developer, error)
}

// TechnologyLookup resolves a catalog technology by name. A miss must return
// an error matching errs.ErrNotFound.
type TechnologyLookup interface {
	FindByName(ctx context.Context, name string) (*models.Technology, error)
}

// requireKeys fails with the full list of required keys as soon as one of
// them is absent. Presence is about the key, not the value: "" is present.
func requireKeys(required []string, present map[string]bool) error {
	for _, key := range required {
		if !present[key] {
			return errs.NewValidationError(required)
		}
	}
	return nil
}

func anyPresent(present map[string]bool) bool {
	for _, ok := range present {
		if ok {
			return true
		}
	}
	return false
}

func parseDate(field, value string) (datatypes.Date, error) {
	d, err := models.ParseDate(value)
	if err != nil {
		return datatypes.Date{}, errs.NewInvalidFieldError(field, err.Error())
	}
	return d, nil
}
