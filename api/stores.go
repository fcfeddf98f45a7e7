package api

import (
	"context"

	"github.com/rpupo63/developer-projects-backend/database"
	"github.com/rpupo63/developer-projects-backend/models"
)

// Lookups that find nothing must return an error wrapping errs.ErrNotFound.

type developerStore interface {
	FindByID(ctx context.Context, id int64) (*models.Developer, error)
	FindByEmail(ctx context.Context, email string) (*models.Developer, error)
	FindAllDetailed(ctx context.Context) ([]models.DeveloperDetail, error)
	FindDetailedByID(ctx context.Context, id int64) (*models.DeveloperDetail, error)
	FindWithProjects(ctx context.Context, id int64) (*models.DeveloperProjectsDetail, error)
	Add(ctx context.Context, developer models.DeveloperRequest) (*models.Developer, error)
	Update(ctx context.Context, id int64, developer models.DeveloperRequest) (*models.Developer, error)
	Delete(ctx context.Context, developer *models.Developer) error
}

type developerInfoStore interface {
	FindByID(ctx context.Context, id int64) (*models.DeveloperInfo, error)
	AddForDeveloper(ctx context.Context, developerID int64, info models.DeveloperInfoRequest) (*models.DeveloperInfo, error)
	Update(ctx context.Context, id int64, info models.DeveloperInfoRequest) (*models.DeveloperInfo, error)
}

type projectStore interface {
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	FindAllDetailed(ctx context.Context) ([]models.ProjectDetail, error)
	FindDetailedByID(ctx context.Context, id int64) ([]models.ProjectDetail, error)
	Add(ctx context.Context, project models.ProjectRequest) (*models.Project, error)
	Update(ctx context.Context, id int64, project models.ProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type technologyStore interface {
	FindByName(ctx context.Context, name string) (*models.Technology, error)
	FindAll(ctx context.Context) ([]models.Technology, error)
}

type projectTechnologyStore interface {
	FindLink(ctx context.Context, projectID, technologyID int64) (*models.ProjectTechnology, error)
	FindByName(ctx context.Context, projectID int64, name string) (*models.ProjectTechnology, error)
	Add(ctx context.Context, link models.ProjectTechnologyRequest) (*models.ProjectTechnology, error)
	Delete(ctx context.Context, id int64) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

// stores is everything the handlers read from and write to.
type stores struct {
	developers          developerStore
	developerInfos      developerInfoStore
	projects            projectStore
	technologies        technologyStore
	projectTechnologies projectTechnologyStore
	health              pinger
}

func storesFrom(db database.Database) stores {
	return stores{
		developers:          db.DeveloperRepo(),
		developerInfos:      db.DeveloperInfoRepo(),
		projects:            db.ProjectRepo(),
		technologies:        db.TechnologyRepo(),
		projectTechnologies: db.ProjectTechnologyRepo(),
		health:              db,
	}
}
