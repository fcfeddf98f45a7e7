package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
	"github.com/rpupo63/developer-projects-backend/queries"
)

type DeveloperRepo struct {
	db *gorm.DB
}

func NewDeveloperRepo(db *gorm.DB) *DeveloperRepo {
	return &DeveloperRepo{db}
}

// FindByID returns a developer by its ID
func (r *DeveloperRepo) FindByID(ctx context.Context, id int64) (*models.Developer, error) {
	stmt, err := build(queries.DeveloperByID(id))
	if err != nil {
		return nil, err
	}
	developer, err := first[models.Developer](ctx, r.db, stmt, "Developer")
	if err != nil {
		return nil, errs.NewDatabaseError("find", "developer", err)
	}
	return developer, nil
}

// FindByEmail returns the developer registered with email
func (r *DeveloperRepo) FindByEmail(ctx context.Context, email string) (*models.Developer, error) {
	stmt, err := build(queries.DeveloperByEmail(email))
	if err != nil {
		return nil, err
	}
	developer, err := first[models.Developer](ctx, r.db, stmt, "Developer")
	if err != nil {
		return nil, errs.NewDatabaseError("find", "developer", err)
	}
	return developer, nil
}

// FindAllDetailed returns every developer with its infos
func (r *DeveloperRepo) FindAllDetailed(ctx context.Context) ([]models.DeveloperDetail, error) {
	stmt, err := build(queries.DevelopersDetailed())
	if err != nil {
		return nil, err
	}
	rows, err := all[models.DeveloperDetail](ctx, r.db, stmt)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "developers", err)
	}
	return rows, nil
}

// FindDetailedByID returns one developer with its infos
func (r *DeveloperRepo) FindDetailedByID(ctx context.Context, id int64) (*models.DeveloperDetail, error) {
	stmt, err := build(queries.DeveloperDetailedByID(id))
	if err != nil {
		return nil, err
	}
	row, err := first[models.DeveloperDetail](ctx, r.db, stmt, "Developer")
	if err != nil {
		return nil, errs.NewDatabaseError("find", "developer", err)
	}
	return row, nil
}

// FindWithProjects returns the first row of the developer -> infos ->
// projects -> technologies chain
func (r *DeveloperRepo) FindWithProjects(ctx context.Context, id int64) (*models.DeveloperProjectsDetail, error) {
	stmt, err := build(queries.DeveloperWithProjects(id))
	if err != nil {
		return nil, err
	}
	row, err := first[models.DeveloperProjectsDetail](ctx, r.db, stmt, "Developer")
	if err != nil {
		return nil, errs.NewDatabaseError("find", "developer projects", err)
	}
	return row, nil
}

// Add inserts a new developer into the database
func (r *DeveloperRepo) Add(ctx context.Context, developer models.DeveloperRequest) (*models.Developer, error) {
	stmt, err := build(queries.InsertDeveloper(developer))
	if err != nil {
		return nil, err
	}
	created, err := first[models.Developer](ctx, r.db, stmt, "Developer")
	if err != nil {
		return nil, errs.NewDatabaseError("create", "developer", err)
	}
	return created, nil
}

// Update replaces the stored fields of developer id
func (r *DeveloperRepo) Update(ctx context.Context, id int64, developer models.DeveloperRequest) (*models.Developer, error) {
	stmt, err := build(queries.UpdateDeveloper(id, developer))
	if err != nil {
		return nil, err
	}
	updated, err := first[models.Developer](ctx, r.db, stmt, "Developer")
	if err != nil {
		return nil, errs.NewDatabaseError("update", "developer", err)
	}
	return updated, nil
}

// Delete removes the developer and its linked infos in one transaction
func (r *DeveloperRepo) Delete(ctx context.Context, developer *models.Developer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if developer.DeveloperInfosID != nil {
			stmt, err := build(queries.DeleteDeveloperInfo(*developer.DeveloperInfosID))
			if err != nil {
				return err
			}
			if _, err := exec(ctx, tx, stmt); err != nil {
				return errs.NewDatabaseError("delete", "developer info", err)
			}
		}

		stmt, err := build(queries.DeleteDeveloper(developer.ID))
		if err != nil {
			return err
		}
		affected, err := exec(ctx, tx, stmt)
		if err != nil {
			return errs.NewDatabaseError("delete", "developer", err)
		}
		if affected == 0 {
			return errs.NewEntityNotFoundError("Developer")
		}
		return nil
	})
}
