package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
	"github.com/rpupo63/developer-projects-backend/queries"
)

type ProjectTechnologyRepo struct {
	db *gorm.DB
}

func NewProjectTechnologyRepo(db *gorm.DB) *ProjectTechnologyRepo {
	return &ProjectTechnologyRepo{db}
}

// FindLink returns the link between a project and a technology id
func (r *ProjectTechnologyRepo) FindLink(ctx context.Context, projectID, technologyID int64) (*models.ProjectTechnology, error) {
	stmt, err := build(queries.ProjectTechnologyLink(projectID, technologyID))
	if err != nil {
		return nil, err
	}
	link, err := first[models.ProjectTechnology](ctx, r.db, stmt, "Project technology")
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project technology", err)
	}
	return link, nil
}

// FindByName returns the link between a project and the technology called name
func (r *ProjectTechnologyRepo) FindByName(ctx context.Context, projectID int64, name string) (*models.ProjectTechnology, error) {
	stmt, err := build(queries.ProjectTechnologyByName(projectID, name))
	if err != nil {
		return nil, err
	}
	link, err := first[models.ProjectTechnology](ctx, r.db, stmt, "Project technology")
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project technology", err)
	}
	return link, nil
}

// Add inserts a project technology link
func (r *ProjectTechnologyRepo) Add(ctx context.Context, link models.ProjectTechnologyRequest) (*models.ProjectTechnology, error) {
	stmt, err := build(queries.InsertProjectTechnology(link))
	if err != nil {
		return nil, err
	}
	created, err := first[models.ProjectTechnology](ctx, r.db, stmt, "Project technology")
	if err != nil {
		return nil, errs.NewDatabaseError("create", "project technology", err)
	}
	return created, nil
}

// Delete removes a project technology link by id
func (r *ProjectTechnologyRepo) Delete(ctx context.Context, id int64) error {
	stmt, err := build(queries.DeleteProjectTechnology(id))
	if err != nil {
		return err
	}
	affected, err := exec(ctx, r.db, stmt)
	if err != nil {
		return errs.NewDatabaseError("delete", "project technology", err)
	}
	if affected == 0 {
		return errs.NewEntityNotFoundError("Project technology")
	}
	return nil
}
