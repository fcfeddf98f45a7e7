package queries

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/rpupo63/developer-projects-backend/models"
)

var developerDetailColumns = []string{
	`d.id "developerID"`,
	`d.name "developerName"`,
	`d.email "developerEmail"`,
	`di.id "developerInfoID"`,
	`di."developerSince" "developerInfoDeveloperSince"`,
	`di."preferredOS" "developerInfoPreferredOS"`,
}

const joinDeveloperInfos = `developer_infos di ON di.id = d."developerInfosId"`

func InsertDeveloper(r models.DeveloperRequest) (Statement, error) {
	return Insert(Developers, r)
}

func UpdateDeveloper(id int64, r models.DeveloperRequest) (Statement, error) {
	return Update(Developers, id, r)
}

func DeveloperByID(id int64) (Statement, error) {
	return SelectByID(Developers, id)
}

func DeveloperByEmail(email string) (Statement, error) {
	return selectBy(Developers, "email", email)
}

func DeleteDeveloper(id int64) (Statement, error) {
	return DeleteByID(Developers, id)
}

// LinkDeveloperInfo points the developer at its infos row.
func LinkDeveloperInfo(developerID, developerInfoID int64) (Statement, error) {
	return build(sq.Update(Developers).
		Set(quote("developerInfosId"), developerInfoID).
		Where(sq.Eq{quote("id"): developerID}).
		Suffix("RETURNING *"))
}

func developersDetailed() sq.SelectBuilder {
	return sq.Select(developerDetailColumns...).
		From("developers d").
		LeftJoin(joinDeveloperInfos)
}

// DevelopersDetailed lists every developer with its infos, one row each.
func DevelopersDetailed() (Statement, error) {
	return build(developersDetailed().OrderBy("d.id"))
}

// DeveloperDetailedByID is DevelopersDetailed narrowed to one developer.
func DeveloperDetailedByID(id int64) (Statement, error) {
	return build(developersDetailed().Where(sq.Eq{"d.id": id}))
}

// DeveloperWithProjects walks developer -> infos -> projects -> technologies.
// Every join is LEFT so a developer without infos or projects still yields a row.
func DeveloperWithProjects(id int64) (Statement, error) {
	columns := append(append([]string(nil), developerDetailColumns...), projectDetailColumns...)
	return build(sq.Select(columns...).
		From("developers d").
		LeftJoin(joinDeveloperInfos).
		LeftJoin(`projects p ON p."developerId" = d.id`).
		LeftJoin(joinProjectsTechnologies).
		LeftJoin(joinTechnologies).
		Where(sq.Eq{"d.id": id}).
		OrderBy("p.id", "t.id"))
}
