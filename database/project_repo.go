package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
	"github.com/rpupo63/developer-projects-backend/queries"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	stmt, err := build(queries.ProjectByID(id))
	if err != nil {
		return nil, err
	}
	project, err := first[models.Project](ctx, r.db, stmt, "Project")
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return project, nil
}

// FindAllDetailed returns all projects, one row per linked technology
func (r *ProjectRepo) FindAllDetailed(ctx context.Context) ([]models.ProjectDetail, error) {
	stmt, err := build(queries.ProjectsDetailed())
	if err != nil {
		return nil, err
	}
	rows, err := all[models.ProjectDetail](ctx, r.db, stmt)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "projects", err)
	}
	return rows, nil
}

// FindDetailedByID returns the joined rows of one project
func (r *ProjectRepo) FindDetailedByID(ctx context.Context, id int64) ([]models.ProjectDetail, error) {
	stmt, err := build(queries.ProjectDetailedByID(id))
	if err != nil {
		return nil, err
	}
	rows, err := all[models.ProjectDetail](ctx, r.db, stmt)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return rows, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project models.ProjectRequest) (*models.Project, error) {
	stmt, err := build(queries.InsertProject(project))
	if err != nil {
		return nil, err
	}
	created, err := first[models.Project](ctx, r.db, stmt, "Project")
	if err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}
	return created, nil
}

// Update replaces the stored fields of project id
func (r *ProjectRepo) Update(ctx context.Context, id int64, project models.ProjectRequest) (*models.Project, error) {
	stmt, err := build(queries.UpdateProject(id, project))
	if err != nil {
		return nil, err
	}
	updated, err := first[models.Project](ctx, r.db, stmt, "Project")
	if err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}
	return updated, nil
}

// Delete removes a project and its technology links in one transaction
func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stmt, err := build(queries.DeleteProjectTechnologies(id))
		if err != nil {
			return err
		}
		if _, err := exec(ctx, tx, stmt); err != nil {
			return errs.NewDatabaseError("delete", "project technologies", err)
		}

		stmt, err = build(queries.DeleteProject(id))
		if err != nil {
			return err
		}
		affected, err := exec(ctx, tx, stmt)
		if err != nil {
			return errs.NewDatabaseError("delete", "project", err)
		}
		if affected == 0 {
			return errs.NewEntityNotFoundError("Project")
		}
		return nil
	})
}
