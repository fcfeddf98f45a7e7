package queries

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/rpupo63/developer-projects-backend/models"
)

func TechnologyByName(name string) (Statement, error) {
	return selectBy(Technologies, "name", name)
}

func AllTechnologies() (Statement, error) {
	return build(sq.Select("*").From(Technologies).OrderBy(quote("id")))
}

// SeedTechnologies inserts the catalog names, skipping those already present.
func SeedTechnologies(names []string) (Statement, error) {
	q := sq.Insert(Technologies).Columns(quote("name"))
	for _, name := range names {
		q = q.Values(name)
	}
	return build(q.Suffix(`ON CONFLICT ("name") DO NOTHING`))
}

func InsertProjectTechnology(r models.ProjectTechnologyRequest) (Statement, error) {
	return Insert(ProjectsTechnologies, r)
}

// ProjectTechnologyLink loads the link between a project and a technology id.
func ProjectTechnologyLink(projectID, technologyID int64) (Statement, error) {
	return build(sq.Select("*").
		From(ProjectsTechnologies).
		Where(sq.Eq{quote("projectId"): projectID}).
		Where(sq.Eq{quote("technologyId"): technologyID}))
}

// ProjectTechnologyByName loads the link between a project and a technology
// named in the catalog.
func ProjectTechnologyByName(projectID int64, name string) (Statement, error) {
	return build(sq.Select("pt.*").
		From("projects_technologies pt").
		Join(joinTechnologies).
		Where(sq.Eq{`pt."projectId"`: projectID}).
		Where(sq.Eq{"t.name": name}))
}

func DeleteProjectTechnology(id int64) (Statement, error) {
	return DeleteByID(ProjectsTechnologies, id)
}

// DeleteProjectTechnologies removes every technology link of a project.
func DeleteProjectTechnologies(projectID int64) (Statement, error) {
	return deleteBy(ProjectsTechnologies, "projectId", projectID)
}
