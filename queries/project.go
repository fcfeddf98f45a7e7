package queries

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/rpupo63/developer-projects-backend/models"
)

var projectDetailColumns = []string{
	`p.id "projectID"`,
	`p.name "projectName"`,
	`p.description "projectDescription"`,
	`p."estimatedTime" "projectEstimatedTime"`,
	`p.repository "projectRepository"`,
	`p."startDate" "projectStartDate"`,
	`p."endDate" "projectEndDate"`,
	`p."developerId" "projectDeveloperID"`,
	`t.id "technologyID"`,
	`t.name "technologyName"`,
}

const (
	joinProjectsTechnologies = `projects_technologies pt ON pt."projectId" = p.id`
	joinTechnologies         = `technologies t ON t.id = pt."technologyId"`
)

func InsertProject(r models.ProjectRequest) (Statement, error) {
	return Insert(Projects, r)
}

func UpdateProject(id int64, r models.ProjectRequest) (Statement, error) {
	return Update(Projects, id, r)
}

func ProjectByID(id int64) (Statement, error) {
	return SelectByID(Projects, id)
}

func DeleteProject(id int64) (Statement, error) {
	return DeleteByID(Projects, id)
}

func projectsDetailed() sq.SelectBuilder {
	return sq.Select(projectDetailColumns...).
		From("projects p").
		LeftJoin(joinProjectsTechnologies).
		LeftJoin(joinTechnologies)
}

// ProjectsDetailed lists every project with its technologies, one row per
// linked technology.
func ProjectsDetailed() (Statement, error) {
	return build(projectsDetailed().OrderBy("p.id", "t.id"))
}

func ProjectDetailedByID(id int64) (Statement, error) {
	return build(projectsDetailed().
		Where(sq.Eq{"p.id": id}).
		OrderBy("t.id"))
}
