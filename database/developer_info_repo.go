package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
	"github.com/rpupo63/developer-projects-backend/queries"
)

type DeveloperInfoRepo struct {
	db *gorm.DB
}

func NewDeveloperInfoRepo(db *gorm.DB) *DeveloperInfoRepo {
	return &DeveloperInfoRepo{db}
}

func (r *DeveloperInfoRepo) FindByID(ctx context.Context, id int64) (*models.DeveloperInfo, error) {
	stmt, err := build(queries.DeveloperInfoByID(id))
	if err != nil {
		return nil, err
	}
	info, err := first[models.DeveloperInfo](ctx, r.db, stmt, "Developer info")
	if err != nil {
		return nil, errs.NewDatabaseError("find", "developer info", err)
	}
	return info, nil
}

// AddForDeveloper inserts the infos row and points the developer at it, in
// one transaction.
func (r *DeveloperInfoRepo) AddForDeveloper(ctx context.Context, developerID int64, info models.DeveloperInfoRequest) (*models.DeveloperInfo, error) {
	var created *models.DeveloperInfo
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stmt, err := build(queries.InsertDeveloperInfo(info))
		if err != nil {
			return err
		}
		created, err = first[models.DeveloperInfo](ctx, tx, stmt, "Developer info")
		if err != nil {
			return errs.NewDatabaseError("create", "developer info", err)
		}

		stmt, err = build(queries.LinkDeveloperInfo(developerID, created.ID))
		if err != nil {
			return err
		}
		if _, err := first[models.Developer](ctx, tx, stmt, "Developer"); err != nil {
			return errs.NewDatabaseError("link", "developer info", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *DeveloperInfoRepo) Update(ctx context.Context, id int64, info models.DeveloperInfoRequest) (*models.DeveloperInfo, error) {
	stmt, err := build(queries.UpdateDeveloperInfo(id, info))
	if err != nil {
		return nil, err
	}
	updated, err := first[models.DeveloperInfo](ctx, r.db, stmt, "Developer info")
	if err != nil {
		return nil, errs.NewDatabaseError("update", "developer info", err)
	}
	return updated, nil
}
