// Package queries builds every SQL statement the service runs. Column sets
// come from the validated records (models.Record) and fixed lists below, so
// no caller input ever reaches an identifier; all values are bind
// parameters. Placeholders are '?', rebound per dialect by gorm.
package queries

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/rpupo63/developer-projects-backend/models"
)

const (
	Developers           = "developers"
	DeveloperInfos       = "developer_infos"
	Projects             = "projects"
	Technologies         = "technologies"
	ProjectsTechnologies = "projects_technologies"
)

// Statement is a SQL string with its bind arguments.
type Statement struct {
	SQL  string
	Args []any
}

func build(q sq.Sqlizer) (Statement, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return Statement{}, err
	}
	return Statement{SQL: sql, Args: args}, nil
}

// quote renders a column name as a postgres quoted identifier, keeping the
// camelCase names intact.
func quote(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Insert writes record into table and returns the inserted row.
func Insert(table string, record models.Record) (Statement, error) {
	assignments := record.Assignments()
	columns := make([]string, 0, len(assignments))
	values := make([]any, 0, len(assignments))
	for _, a := range assignments {
		columns = append(columns, quote(a.Column))
		values = append(values, a.Value)
	}

	return build(sq.Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING *"))
}

// Update assigns every column of record on the row with primary key id and
// returns the updated row.
func Update(table string, id int64, record models.Record) (Statement, error) {
	q := sq.Update(table)
	for _, a := range record.Assignments() {
		q = q.Set(quote(a.Column), a.Value)
	}

	return build(q.
		Where(sq.Eq{quote("id"): id}).
		Suffix("RETURNING *"))
}

// SelectByID loads the row of table with primary key id.
func SelectByID(table string, id int64) (Statement, error) {
	return selectBy(table, "id", id)
}

func selectBy(table, column string, value any) (Statement, error) {
	return build(sq.Select("*").
		From(table).
		Where(sq.Eq{quote(column): value}))
}

// DeleteByID removes the row of table with primary key id.
func DeleteByID(table string, id int64) (Statement, error) {
	return deleteBy(table, "id", id)
}

func deleteBy(table, column string, value any) (Statement, error) {
	return build(sq.Delete(table).
		Where(sq.Eq{quote(column): value}))
}
